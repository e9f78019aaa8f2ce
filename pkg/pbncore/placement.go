package pbncore

import "container/heap"

// placementPrecision stops the quadtree search once a cell's side is
// smaller than this, per spec.md section 4.5.
const placementPrecision = 1.0

type placementCell struct {
	x, y, half float64
	d          float64 // signed distance of the cell center to the polygon boundary
	max        float64 // upper bound on distance achievable anywhere in this cell
}

type cellQueue []*placementCell

func (q cellQueue) Len() int            { return len(q) }
func (q cellQueue) Less(i, j int) bool  { return q[i].max > q[j].max }
func (q cellQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(*placementCell)) }
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func newPlacementCell(x, y, half float64, r Region) *placementCell {
	d := signedDistance(Point{X: x, Y: y}, r)
	return &placementCell{x: x, y: y, half: half, d: d, max: d + half*sqrt2}
}

const sqrt2 = 1.4142135623730951

// PlaceLabel finds a point well inside r using Mapbox's polylabel
// algorithm: a priority-queue-driven quadtree search for the pole of
// inaccessibility, per spec.md section 4.5. It reports false if r's
// outer ring has fewer than 3 vertices or zero area.
func PlaceLabel(r Region) (Point, bool) {
	if len(r.Outer) < 4 { // closed ring: first == last, so >=4 total points
		return Point{}, false
	}
	minX, minY, maxX, maxY := ringBounds(r.Outer)
	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return Point{}, false
	}

	cellSize := width
	if height < cellSize {
		cellSize = height
	}
	half := cellSize / 2
	if half <= 0 {
		return Point{}, false
	}

	var best *placementCell

	queue := &cellQueue{}
	heap.Init(queue)

	for x := minX; x < maxX; x += cellSize {
		for y := minY; y < maxY; y += cellSize {
			cell := newPlacementCell(x+half, y+half, half, r)
			heap.Push(queue, cell)
		}
	}

	centroid := ringCentroid(r.Outer)
	best = newPlacementCell(centroid.X, centroid.Y, 0, r)

	for queue.Len() > 0 {
		cell := heap.Pop(queue).(*placementCell)
		if cell.d > best.d {
			best = cell
		}
		if cell.max-best.d <= placementPrecision {
			continue
		}
		quarter := cell.half / 2
		if quarter < placementPrecision/4 {
			continue
		}
		heap.Push(queue, newPlacementCell(cell.x-quarter, cell.y-quarter, quarter, r))
		heap.Push(queue, newPlacementCell(cell.x+quarter, cell.y-quarter, quarter, r))
		heap.Push(queue, newPlacementCell(cell.x-quarter, cell.y+quarter, quarter, r))
		heap.Push(queue, newPlacementCell(cell.x+quarter, cell.y+quarter, quarter, r))
	}

	if best.d <= 0 {
		return Point{}, false
	}
	return Point{X: best.x, Y: best.y}, true
}
