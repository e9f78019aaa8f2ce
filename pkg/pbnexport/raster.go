package pbnexport

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mosaicforge/pbncore/pkg/pbncore"
	"github.com/mosaicforge/pbncore/pkg/stdimg"
)

// RenderFilledPreview paints result.Labels as flat palette colors, the
// way a filled-in paint-by-numbers canvas looks once solved. It is the
// raster counterpart to WriteSVG's vector output, built directly from
// the label map (not by rasterizing the traced polygons back down)
// since the map is already the ground truth the polygons were traced
// from.
func RenderFilledPreview(result pbncore.Result) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, result.Width, result.Height))
	rgb := make([][3]uint8, len(result.Palette))
	for i, c := range result.Palette {
		r, g, b := pbncore.LabToRGB(c)
		rgb[i] = [3]uint8{r, g, b}
	}
	for i, lbl := range result.Labels.Labels {
		var c [3]uint8
		if int(lbl) < len(rgb) {
			c = rgb[lbl]
		}
		off := i * 4
		out.Pix[off+0] = c[0]
		out.Pix[off+1] = c[1]
		out.Pix[off+2] = c[2]
		out.Pix[off+3] = 255
	}
	return out
}

// RenderOutlinePreview draws the blank template a person fills in by
// hand: white background, each region's outer ring and holes traced in
// black, and each placement's number drawn at its position using
// stdimg's stdlib font renderer.
func RenderOutlinePreview(result pbncore.Result) (*image.NRGBA, error) {
	out := image.NewNRGBA(image.Rect(0, 0, result.Width, result.Height))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			i := out.PixOffset(x, y)
			out.Pix[i+0], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = white.R, white.G, white.B, white.A
		}
	}

	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	for _, region := range result.Regions {
		drawRing(out, region.Outer, black)
		for _, hole := range region.Holes {
			drawRing(out, hole, black)
		}
	}

	var err error
	for _, p := range result.Placements {
		label := fmt.Sprintf("%d", p.Label)
		var annotated *image.NRGBA
		annotated, err = stdimg.AnnotateRegionLabel(out, label, int(p.X), int(p.Y), black)
		if err != nil {
			return nil, err
		}
		out = annotated
	}
	return out, nil
}

// RenderComposedPreview stacks a palette legend beneath the filled
// preview into a single canvas via stdimg.StackVertical.
func RenderComposedPreview(result pbncore.Result, swatchSize int) (*image.NRGBA, error) {
	filled := RenderFilledPreview(result)
	legend, err := RenderPalettePanel(result, swatchSize)
	if err != nil {
		return nil, err
	}

	return stdimg.StackVertical(filled, legend), nil
}

// drawRing plots every edge of a closed ring onto dst using a
// Bresenham-style integer line walk, the simplest correct way to turn
// half-integer polygon vertices into pixel-grid strokes without
// pulling in a vector rasterizer.
func drawRing(dst *image.NRGBA, ring pbncore.Ring, c color.NRGBA) {
	for i := 0; i+1 < len(ring); i++ {
		drawLine(dst, ring[i], ring[i+1], c)
	}
}

func drawLine(dst *image.NRGBA, a, b pbncore.Point, c color.NRGBA) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		setPixel(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func setPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	b := dst.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := dst.PixOffset(x, y)
	dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = c.R, c.G, c.B, c.A
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
