package stdimg

import (
	"image/color"
	"testing"
)

func TestCompositeBasic(t *testing.T) {
	bg := makeSolidNRGBA(80, 60, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	fg := makeSolidNRGBA(20, 20, color.NRGBA{R: 0, G: 0, B: 255, A: 128})

	out := Composite(bg, fg, "OVER", 10, 5)
	if out == nil {
		t.Fatalf("composite returned nil")
	}
	idx := out.PixOffset(12, 7)
	r, g, b := out.Pix[idx+0], out.Pix[idx+1], out.Pix[idx+2]
	if r == 255 && g == 0 && b == 0 {
		t.Fatalf("expected composite to modify pixel, got pure background")
	}
}

func TestStackVerticalDimensions(t *testing.T) {
	top := makeSolidNRGBA(40, 20, color.NRGBA{R: 255, A: 255})
	bottom := makeSolidNRGBA(60, 10, color.NRGBA{B: 255, A: 255})
	out := StackVertical(top, bottom)
	if out.Bounds().Dx() != 60 {
		t.Fatalf("got width %d, want 60 (widest of the two panels)", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 30 {
		t.Fatalf("got height %d, want 30 (sum of both panels)", out.Bounds().Dy())
	}
	topPixel := out.PixOffset(5, 5)
	if out.Pix[topPixel+0] != 255 {
		t.Fatalf("expected top panel's red to appear in the upper band")
	}
	bottomPixel := out.PixOffset(5, 25)
	if out.Pix[bottomPixel+2] != 255 {
		t.Fatalf("expected bottom panel's blue to appear in the lower band")
	}
}

func TestCompositeOutsideBoundsIsNoOp(t *testing.T) {
	bg := makeSolidNRGBA(10, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	fg := makeSolidNRGBA(4, 4, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	out := Composite(bg, fg, "OVER", 100, 100)
	idx := out.PixOffset(0, 0)
	if out.Pix[idx+0] != 1 || out.Pix[idx+1] != 2 || out.Pix[idx+2] != 3 {
		t.Fatalf("expected background untouched when composite offset is out of bounds")
	}
}
