package pbncore

import (
	"fmt"
	"sort"
)

// minRegionArea discards traced polygons below this absolute area
// regardless of Settings.MinRegionSize (spec.md section 4.4 is explicit
// that the two thresholds are independent).
const minRegionArea = 50.0

type segment struct {
	from, to Point
}

// cellCase packs the four pixel-center samples around a marching-squares
// cell into a 4-bit index: TL=8, TR=4, BL=2, BR=1.
func cellCase(tl, tr, bl, br bool) int {
	c := 0
	if tl {
		c |= 8
	}
	if tr {
		c |= 4
	}
	if bl {
		c |= 2
	}
	if br {
		c |= 1
	}
	return c
}

// cellSegments returns the 0, 1 or 2 directed boundary segments inside a
// cell at grid-cell coordinate (cx, cy), whose four corners sample the
// pixel centers (cx,cy), (cx+1,cy), (cx,cy+1), (cx+1,cy+1). Segments are
// directed so that foreground lies on their left, which automatically
// gives outer rings and hole rings opposite winding once linked (spec.md
// section 4.4). Cases 6 and 9 are the diagonal saddle cases; this table
// resolves them by keeping diagonally-touching foreground pixels as
// separate shapes, matching the 4-connectivity used in Cleanup.
func cellSegments(cx, cy int, tl, tr, bl, br bool) []segment {
	t := Point{X: float64(cx) + 0.5, Y: float64(cy)}
	b := Point{X: float64(cx) + 0.5, Y: float64(cy) + 1}
	l := Point{X: float64(cx), Y: float64(cy) + 0.5}
	r := Point{X: float64(cx) + 1, Y: float64(cy) + 0.5}

	switch cellCase(tl, tr, bl, br) {
	case 0:
		return nil
	case 1: // BR
		return []segment{{b, r}}
	case 2: // BL
		return []segment{{l, b}}
	case 3: // BL,BR
		return []segment{{l, r}}
	case 4: // TR
		return []segment{{r, t}}
	case 5: // TR,BR
		return []segment{{b, t}}
	case 6: // TR,BL (saddle)
		return []segment{{r, t}, {l, b}}
	case 7: // TR,BL,BR
		return []segment{{l, t}}
	case 8: // TL
		return []segment{{t, l}}
	case 9: // TL,BR (saddle)
		return []segment{{t, l}, {b, r}}
	case 10: // TL,BL
		return []segment{{t, b}}
	case 11: // TL,BL,BR
		return []segment{{t, r}}
	case 12: // TL,TR
		return []segment{{r, l}}
	case 13: // TL,TR,BR
		return []segment{{b, l}}
	case 14: // TL,TR,BL
		return []segment{{r, b}}
	case 15:
		return nil
	}
	return nil
}

func pointKey(p Point) int64 {
	// coordinates are always multiples of 0.5; doubling gives exact ints.
	x := int64(p.X*2 + 0.5)
	if p.X < 0 {
		x = int64(p.X*2 - 0.5)
	}
	y := int64(p.Y*2 + 0.5)
	if p.Y < 0 {
		y = int64(p.Y*2 - 0.5)
	}
	return x*4000000000 + y
}

// traceRings runs marching squares over a binary mask and links the
// resulting directed segments into closed rings.
func traceRings(mask []bool, w, h int) []Ring {
	at := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return mask[y*w+x]
	}

	var segments []segment
	for cy := -1; cy < h; cy++ {
		for cx := -1; cx < w; cx++ {
			tl := at(cx, cy)
			tr := at(cx+1, cy)
			bl := at(cx, cy+1)
			br := at(cx+1, cy+1)
			segments = append(segments, cellSegments(cx, cy, tl, tr, bl, br)...)
		}
	}
	if len(segments) == 0 {
		return nil
	}

	outgoing := make(map[int64][]int, len(segments))
	for i, s := range segments {
		k := pointKey(s.from)
		outgoing[k] = append(outgoing[k], i)
	}

	visited := make([]bool, len(segments))
	var rings []Ring

	for start := range segments {
		if visited[start] {
			continue
		}
		var ring Ring
		cur := start
		for {
			visited[cur] = true
			ring = append(ring, segments[cur].from)
			toKey := pointKey(segments[cur].to)
			candidates := outgoing[toKey]
			next := -1
			for _, idx := range candidates {
				if !visited[idx] {
					next = idx
					break
				}
			}
			if next == -1 {
				// ring closes back on the starting segment
				ring = append(ring, segments[start].from)
				break
			}
			cur = next
		}
		rings = append(rings, ring)
	}
	return rings
}

// ExtractRegions traces each palette index's occupied pixels into nested
// polygons, per spec.md section 4.4. Regions with outer-ring area below
// minRegionArea are dropped, independent of the cleanup size threshold.
// It also returns one *InternalError per hole ring that traced without a
// containing outer ring (a marching-squares precondition violation); the
// hole is dropped and tracing continues.
func ExtractRegions(lm LabelMap, k int) ([]Region, []error) {
	w, h := lm.Width, lm.Height
	var regions []Region
	var dropped []error

	for color := 0; color < k; color++ {
		mask := make([]bool, w*h)
		any := false
		for i, lbl := range lm.Labels {
			if int(lbl) == color {
				mask[i] = true
				any = true
			}
		}
		if !any {
			continue
		}

		rings := traceRings(mask, w, h)
		if len(rings) == 0 {
			continue
		}

		type outerCandidate struct {
			ring Ring
			area float64
		}
		var outers []outerCandidate
		var holes []Ring
		for _, ring := range rings {
			area := shoelaceArea(ring)
			if area > 0 {
				outers = append(outers, outerCandidate{ring: ring, area: area})
			} else if area < 0 {
				holes = append(holes, ring)
			}
		}
		sort.Slice(outers, func(i, j int) bool { return outers[i].area < outers[j].area })

		built := make([]Region, len(outers))
		for i, o := range outers {
			built[i] = Region{ColorIndex: color, Outer: o.ring}
		}
		for _, hole := range holes {
			rep := hole[0]
			matched := false
			for i := range built {
				if pointInRing(rep, built[i].Outer) {
					built[i].Holes = append(built[i].Holes, hole)
					matched = true
					break
				}
			}
			if !matched {
				dropped = append(dropped, &InternalError{
					Stage: StageContours,
					Msg:   fmt.Sprintf("hole ring traced for color index %d has no enclosing outer ring", color),
				})
			}
		}

		for i, o := range outers {
			if o.area < minRegionArea {
				continue
			}
			regions = append(regions, built[i])
		}
	}

	return regions, dropped
}
