package stdimg

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyCommandStdlibResize(t *testing.T) {
	src := makeSolidNRGBA(40, 20, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out, err := ApplyCommandStdlib(src, "resize", []string{"20", "10"})
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA")
	}
	if nrgba.Bounds().Dx() != 20 || nrgba.Bounds().Dy() != 10 {
		t.Fatalf("unexpected size: %v", nrgba.Bounds())
	}
}

func TestApplyCommandStdlibTrim(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= 3 && x < 7 && y >= 3 && y < 7 {
				c = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
			}
			i := src.PixOffset(x, y)
			src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	out, err := ApplyCommandStdlib(src, "trim", []string{"10"})
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	nrgba := out.(*image.NRGBA)
	if nrgba.Bounds().Dx() != 4 || nrgba.Bounds().Dy() != 4 {
		t.Fatalf("unexpected trimmed size: %v", nrgba.Bounds())
	}
}

func TestApplyCommandStdlibUnknown(t *testing.T) {
	src := makeSolidNRGBA(4, 4, color.NRGBA{A: 255})
	if _, err := ApplyCommandStdlib(src, "blur", nil); err == nil {
		t.Fatalf("expected error for removed/unknown command")
	}
}

func TestBoundLongestEdge(t *testing.T) {
	src := makeSolidNRGBA(4000, 2000, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	out := BoundLongestEdge(src, 1200)
	if out.Bounds().Dx() != 1200 {
		t.Fatalf("expected width bounded to 1200, got %d", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 600 {
		t.Fatalf("expected aspect-preserved height 600, got %d", out.Bounds().Dy())
	}

	small := makeSolidNRGBA(100, 50, color.NRGBA{A: 255})
	out2 := BoundLongestEdge(small, 1200)
	if out2.Bounds().Dx() != 100 || out2.Bounds().Dy() != 50 {
		t.Fatalf("expected unchanged size for image under bound, got %v", out2.Bounds())
	}
}
