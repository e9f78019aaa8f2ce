package pbncore

import "testing"

func TestPlaceLabelSquareNearCenter(t *testing.T) {
	w, h := 100, 100
	labels := make([]uint8, w*h)
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 1)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	p, ok := PlaceLabel(regions[0])
	if !ok {
		t.Fatal("expected a placement for a solid square")
	}
	if p.X < 45 || p.X > 55 || p.Y < 45 || p.Y > 55 {
		t.Fatalf("placement %+v not near image center", p)
	}
}

func TestPlaceLabelInsideOuterAndOutsideHoles(t *testing.T) {
	w, h := 100, 100
	labels := make([]uint8, w*h)
	for y := 45; y < 55; y++ {
		for x := 45; x < 55; x++ {
			labels[y*w+x] = 1
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 2)

	for _, r := range regions {
		p, ok := PlaceLabel(r)
		if !ok {
			t.Fatalf("no placement for region with color %d", r.ColorIndex)
		}
		if !pointInPolygon(p, r) {
			t.Fatalf("placement %+v for color %d is not strictly inside its region", p, r.ColorIndex)
		}
	}
}

func TestPlaceLabelRejectsDegenerateRing(t *testing.T) {
	r := Region{Outer: Ring{{X: 0, Y: 0}}}
	if _, ok := PlaceLabel(r); ok {
		t.Fatal("expected false for a degenerate outer ring")
	}
}
