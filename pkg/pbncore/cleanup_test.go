package pbncore

import "testing"

func TestCleanupAbsorbsSmallComponent(t *testing.T) {
	// 5x5 all label 0 except a single-pixel label 1 in the middle.
	w, h := 5, 5
	labels := make([]uint8, w*h)
	labels[2*w+2] = 1
	lm := LabelMap{Width: w, Height: h, Labels: labels}

	out := Cleanup(lm, 4)
	for i, l := range out.Labels {
		if l != 0 {
			t.Fatalf("pixel %d still labeled %d after cleanup, want 0", i, l)
		}
	}
}

func TestCleanupLeavesLargeComponentsAlone(t *testing.T) {
	w, h := 10, 10
	labels := make([]uint8, w*h)
	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			labels[y*w+x] = 1
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	out := Cleanup(lm, 4)
	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			if out.Labels[y*w+x] != 1 {
				t.Fatalf("pixel (%d,%d) changed despite large component", x, y)
			}
		}
	}
}

func TestCleanupIdempotent(t *testing.T) {
	w, h := 12, 12
	labels := make([]uint8, w*h)
	for i := range labels {
		if (i%w+i/w)%3 == 0 {
			labels[i] = 1
		}
	}
	lm := LabelMap{Width: w, Height: h, Labels: labels}

	once := Cleanup(lm, 5)
	twice := Cleanup(once, 5)
	for i := range once.Labels {
		if once.Labels[i] != twice.Labels[i] {
			t.Fatalf("pixel %d changed on second cleanup pass: %d vs %d", i, once.Labels[i], twice.Labels[i])
		}
	}
}

func TestCleanupLeavesIsolatedComponentWithoutNeighbor(t *testing.T) {
	// whole image one label: component has no differing neighbor to merge into.
	w, h := 3, 3
	labels := make([]uint8, w*h)
	lm := LabelMap{Width: w, Height: h, Labels: labels}
	out := Cleanup(lm, 100)
	for _, l := range out.Labels {
		if l != 0 {
			t.Fatalf("uniform image changed under cleanup")
		}
	}
}
