package pbnexport

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mosaicforge/pbncore/pkg/pbncore"
	"github.com/mosaicforge/pbncore/pkg/stdimg"
)

// RenderPalettePanel draws a legend strip: one swatchSize x swatchSize
// square per palette entry, filled with its RGB color and labeled with
// its 1-based number, laid out in a single row the way a paint set's
// color card reads left to right.
func RenderPalettePanel(result pbncore.Result, swatchSize int) (*image.NRGBA, error) {
	if swatchSize <= 0 {
		swatchSize = 32
	}
	n := len(result.Palette)
	width := swatchSize * n
	if width == 0 {
		width = swatchSize
	}
	out := image.NewNRGBA(image.Rect(0, 0, width, swatchSize))

	for i, c := range result.Palette {
		r, g, b := pbncore.LabToRGB(c)
		x0 := i * swatchSize
		for y := 0; y < swatchSize; y++ {
			for x := x0; x < x0+swatchSize; x++ {
				off := out.PixOffset(x, y)
				out.Pix[off+0], out.Pix[off+1], out.Pix[off+2], out.Pix[off+3] = r, g, b, 255
			}
		}
	}

	black := color.NRGBA{A: 255}
	for i := range result.Palette {
		x0 := i * swatchSize
		label := fmt.Sprintf("%d", i+1)
		annotated, err := stdimg.AnnotateRegionLabel(out, label, x0+swatchSize/2, swatchSize/2, black)
		if err != nil {
			return nil, err
		}
		out = annotated
	}
	return out, nil
}
