package pbncore

import "math"

// shoelaceArea returns the signed area of ring via the shoelace formula.
// Positive by this package's tracing convention denotes an outer ring;
// negative denotes a hole (spec.md section 4.4's orientation convention,
// fixed here and documented rather than re-derived per call site).
func shoelaceArea(ring Ring) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		p0 := ring[i]
		p1 := ring[i+1]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2.0
}

// pointInRing reports whether p is inside ring using the standard
// ray-casting test (spec.md section 4.5).
func pointInRing(p Point, ring Ring) bool {
	inside := false
	n := len(ring)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := ring[i]
		pj := ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// pointInPolygon reports whether p lies inside r's outer ring and
// outside every hole.
func pointInPolygon(p Point, r Region) bool {
	if !pointInRing(p, r.Outer) {
		return false
	}
	for _, hole := range r.Holes {
		if pointInRing(p, hole) {
			return false
		}
	}
	return true
}

func distToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		dx0 := p.X - a.X
		dy0 := p.Y - a.Y
		return math.Sqrt(dx0*dx0 + dy0*dy0)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := a.X + t*dx
	projY := a.Y + t*dy
	ddx := p.X - projX
	ddy := p.Y - projY
	return math.Sqrt(ddx*ddx + ddy*ddy)
}

func distToRing(p Point, ring Ring) float64 {
	best := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		d := distToSegment(p, ring[i], ring[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

// distanceToBoundary returns the minimum distance from p to any segment
// of r's outer ring or its holes.
func distanceToBoundary(p Point, r Region) float64 {
	best := distToRing(p, r.Outer)
	for _, hole := range r.Holes {
		if d := distToRing(p, hole); d < best {
			best = d
		}
	}
	return best
}

// signedDistance is positive when p is inside r (outside all holes,
// inside the outer ring) and negative otherwise, per spec.md section 4.5.
func signedDistance(p Point, r Region) float64 {
	d := distanceToBoundary(p, r)
	if pointInPolygon(p, r) {
		return d
	}
	return -d
}

func ringBounds(ring Ring) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range ring {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

func ringCentroid(ring Ring) Point {
	n := len(ring)
	if n < 2 {
		if n == 1 {
			return ring[0]
		}
		return Point{}
	}
	// excludes the closing duplicate point
	sumX, sumY := 0.0, 0.0
	count := n - 1
	for i := 0; i < count; i++ {
		sumX += ring[i].X
		sumY += ring[i].Y
	}
	return Point{X: sumX / float64(count), Y: sumY / float64(count)}
}
