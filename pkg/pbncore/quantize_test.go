package pbncore

import (
	"errors"
	"testing"
)

func TestQuantizeRejectsNonPositiveK(t *testing.T) {
	lab := ToLabBuffer(solidImage(4, 4, 255, 0, 0))
	if _, _, err := Quantize(lab, 0, 1); err == nil {
		t.Fatal("expected error for k=0")
	}
	_, _, err := Quantize(lab, -1, 1)
	if err == nil {
		t.Fatal("expected error for k=-1")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestQuantizeLabelsWithinRange(t *testing.T) {
	lab := ToLabBuffer(checkerboardImage(8, 8))
	_, labels, err := Quantize(lab, 2, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range labels.Labels {
		if int(l) >= 2 {
			t.Fatalf("label %d out of range for k=2", l)
		}
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	lab := ToLabBuffer(squareOnBackgroundImage(40, 40, 10))
	p1, l1, err := Quantize(lab, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	p2, l2, err := Quantize(lab, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("centroid %d differs across runs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
	for i := range l1.Labels {
		if l1.Labels[i] != l2.Labels[i] {
			t.Fatalf("label %d differs across runs", i)
		}
	}
}

func TestQuantizeSolidImageSingleCluster(t *testing.T) {
	lab := ToLabBuffer(solidImage(10, 10, 128, 64, 200))
	_, labels, err := Quantize(lab, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	first := labels.Labels[0]
	for _, l := range labels.Labels {
		if l != first {
			t.Fatalf("solid-color image produced mixed labels: %d and %d", first, l)
		}
	}
}
