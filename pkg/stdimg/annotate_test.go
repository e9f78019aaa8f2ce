package stdimg

import (
	"image/color"
	"testing"
)

func TestAnnotateBasic(t *testing.T) {
	src := makeSolidNRGBA(100, 50, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	out, err := Annotate(src, "12", "", 12, 10, 20, color.Black)
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if out == nil {
		t.Fatalf("annotate returned nil image")
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("annotate changed bounds: got %v want %v", out.Bounds(), src.Bounds())
	}
}

func TestAnnotateRegionLabelCentered(t *testing.T) {
	src := makeSolidNRGBA(100, 50, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	out, err := AnnotateRegionLabel(src, "7", 50, 25, color.Black)
	if err != nil {
		t.Fatalf("annotate region label failed: %v", err)
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("annotate changed bounds: got %v want %v", out.Bounds(), src.Bounds())
	}
}

func TestParseHexColorForms(t *testing.T) {
	cases := []string{"#000", "#000f", "#ff0000", "#ff0000ff", "red"}
	for _, c := range cases {
		if _, err := parseHexColor(c); err != nil {
			t.Errorf("parseHexColor(%q) failed: %v", c, err)
		}
	}
	if _, err := parseHexColor("not-a-color"); err == nil {
		t.Errorf("expected error for unsupported color")
	}
}
