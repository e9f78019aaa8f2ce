package pbncore

import "testing"

func unitSquareRing() Ring {
	return Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
}

func TestShoelaceAreaSquare(t *testing.T) {
	area := shoelaceArea(unitSquareRing())
	if area != 100 && area != -100 {
		t.Fatalf("area = %v, want +-100", area)
	}
}

func TestPointInRing(t *testing.T) {
	ring := unitSquareRing()
	if !pointInRing(Point{X: 5, Y: 5}, ring) {
		t.Error("center should be inside")
	}
	if pointInRing(Point{X: 20, Y: 20}, ring) {
		t.Error("far point should be outside")
	}
}

func TestPointInPolygonExcludesHoles(t *testing.T) {
	outer := unitSquareRing()
	hole := Ring{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 4}}
	r := Region{Outer: outer, Holes: []Ring{hole}}

	if !pointInPolygon(Point{X: 1, Y: 1}, r) {
		t.Error("point outside hole, inside outer, should be in polygon")
	}
	if pointInPolygon(Point{X: 5, Y: 5}, r) {
		t.Error("point inside hole should not be in polygon")
	}
}
