package pbnexport

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mosaicforge/pbncore/pkg/pbncore"
)

func makeTestResult(t *testing.T) pbncore.Result {
	t.Helper()
	const w, h = 16, 16
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if x < w/2 {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 200, 20, 20, 255
			} else {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 20, 20, 200, 255
			}
		}
	}
	input := pbncore.ProcessInput{
		Pixels:   pbncore.PixelBuffer{Width: w, Height: h, Pix: pix},
		Settings: pbncore.Settings{KColors: 2, MinRegionSize: 1, Seed: 1},
	}
	result, err := pbncore.Process(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	return result
}

func TestWriteSVGProducesValidDocument(t *testing.T) {
	result := makeTestResult(t)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, result); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Fatalf("expected document to start with <svg, got %q", out[:20])
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("expected closing </svg> tag")
	}
	if len(result.Regions) > 0 && !strings.Contains(out, "<path") {
		t.Errorf("expected at least one <path> for %d regions", len(result.Regions))
	}
}

func TestRenderFilledPreviewMatchesDimensions(t *testing.T) {
	result := makeTestResult(t)
	img := RenderFilledPreview(result)
	if img.Bounds().Dx() != result.Width || img.Bounds().Dy() != result.Height {
		t.Fatalf("got %v, want %dx%d", img.Bounds(), result.Width, result.Height)
	}
}

func TestRenderOutlinePreview(t *testing.T) {
	result := makeTestResult(t)
	img, err := RenderOutlinePreview(result)
	if err != nil {
		t.Fatalf("RenderOutlinePreview failed: %v", err)
	}
	if img.Bounds().Dx() != result.Width || img.Bounds().Dy() != result.Height {
		t.Fatalf("got %v, want %dx%d", img.Bounds(), result.Width, result.Height)
	}
}

func TestRenderPalettePanel(t *testing.T) {
	result := makeTestResult(t)
	img, err := RenderPalettePanel(result, 8)
	if err != nil {
		t.Fatalf("RenderPalettePanel failed: %v", err)
	}
	if img.Bounds().Dy() != 8 {
		t.Fatalf("expected panel height 8, got %d", img.Bounds().Dy())
	}
	if img.Bounds().Dx() != 8*len(result.Palette) {
		t.Fatalf("expected panel width %d, got %d", 8*len(result.Palette), img.Bounds().Dx())
	}
}

func TestRenderComposedPreviewStacksLegendBelow(t *testing.T) {
	result := makeTestResult(t)
	img, err := RenderComposedPreview(result, 8)
	if err != nil {
		t.Fatalf("RenderComposedPreview failed: %v", err)
	}
	wantHeight := result.Height + 8
	if img.Bounds().Dy() != wantHeight {
		t.Fatalf("got height %d, want %d", img.Bounds().Dy(), wantHeight)
	}
}

func TestWritePNGAndWebP(t *testing.T) {
	result := makeTestResult(t)
	img := RenderFilledPreview(result)

	var pngBuf bytes.Buffer
	if err := WritePNG(&pngBuf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	if pngBuf.Len() == 0 {
		t.Fatalf("expected non-empty PNG output")
	}

	var webpBuf bytes.Buffer
	if err := WriteWebP(&webpBuf, img); err != nil {
		t.Fatalf("WriteWebP failed: %v", err)
	}
	if webpBuf.Len() == 0 {
		t.Fatalf("expected non-empty WebP output")
	}
}
