package pbncore

import "testing"

func TestExtractRegionsCheckerboardAllFilteredByArea(t *testing.T) {
	// 4x4 checkerboard: every connected component is a single pixel
	// (area 1), so every region is discarded by the area-50 filter even
	// though the label map itself is untouched.
	w, h := 4, 4
	labels := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 1 {
				labels[y*w+x] = 1
			}
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 2)
	if len(regions) != 0 {
		t.Fatalf("got %d regions, want 0 (all below area threshold)", len(regions))
	}
}

func TestExtractRegionsSolidImageOneRegion(t *testing.T) {
	w, h := 100, 100
	labels := make([]uint8, w*h) // all label 0
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 1)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	area := shoelaceArea(regions[0].Outer)
	if area < 9900 || area > 10100 {
		t.Fatalf("outer area = %v, want ~10000", area)
	}
	if len(regions[0].Holes) != 0 {
		t.Fatalf("solid image produced %d holes, want 0", len(regions[0].Holes))
	}
}

func TestExtractRegionsSmallSquareAbsorbedLeavesSingleRegion(t *testing.T) {
	w, h := 100, 100
	labels := make([]uint8, w*h) // all blue (label 0) after absorption
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 2)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1 (red square already absorbed)", len(regions))
	}
}

func TestExtractRegionsLargeSquareSurvivesWithHole(t *testing.T) {
	w, h := 100, 100
	labels := make([]uint8, w*h)
	for y := 45; y < 55; y++ {
		for x := 45; x < 55; x++ {
			labels[y*w+x] = 1
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 2)

	var blue, red *Region
	for i := range regions {
		if regions[i].ColorIndex == 0 {
			blue = &regions[i]
		} else {
			red = &regions[i]
		}
	}
	if blue == nil || red == nil {
		t.Fatalf("expected one region per color, got %d regions", len(regions))
	}
	if len(blue.Holes) != 1 {
		t.Fatalf("blue region has %d holes, want 1", len(blue.Holes))
	}
	redArea := shoelaceArea(red.Outer)
	if redArea < 90 || redArea > 110 {
		t.Fatalf("red area = %v, want ~100", redArea)
	}
}

func TestExtractRegionsAreaFilterIndependentOfMinRegionSize(t *testing.T) {
	// A 6x6 block (area 36) survives cleanup with min_region_size=0 but
	// must still be discarded by the fixed 50 sq px contour threshold.
	w, h := 20, 20
	labels := make([]uint8, w*h)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			labels[y*w+x] = 1
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	regions, _ := ExtractRegions(lm, 2)
	for _, r := range regions {
		if r.ColorIndex == 1 {
			t.Fatalf("36-pixel region survived despite 50 sq px area filter")
		}
	}
}
