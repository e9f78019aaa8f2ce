// Package pbnexport renders a pbncore.Result into the consumer-facing
// formats named in spec.md section 6: an SVG template (one path per
// outline, one text element per number), a filled PNG preview, a
// numbered outline PNG preview, and a palette swatch legend. None of this is part of the
// core pipeline — pbncore.Process never produces pixels or markup,
// only the polygon/placement data these exporters consume.
package pbnexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/mosaicforge/pbncore/pkg/pbncore"
)

// WriteSVG renders result as a standalone SVG document: one <path> per
// region (outer ring plus holes, combined with the evenodd fill rule
// so the holes show through) and one <text> per label placement.
// Coordinates are emitted exactly as pbncore produced them — pixel
// (0,0) top-left, X right, Y down, per spec.md section 6 — so the
// document is already in the source image's coordinate system.
func WriteSVG(w io.Writer, result pbncore.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		result.Width, result.Height, result.Width, result.Height)

	for _, region := range result.Regions {
		fill := "#ffffff"
		if region.ColorIndex >= 0 && region.ColorIndex < len(result.Palette) {
			r, g, bch := pbncore.LabToRGB(result.Palette[region.ColorIndex])
			fill = fmt.Sprintf("#%02x%02x%02x", r, g, bch)
		}
		var d strings.Builder
		writeRingPath(&d, region.Outer)
		for _, hole := range region.Holes {
			writeRingPath(&d, hole)
		}
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" fill-rule="evenodd" stroke="#000000" stroke-width="1"/>`+"\n",
			d.String(), fill)
	}

	for _, p := range result.Placements {
		fmt.Fprintf(&b, `  <text x="%g" y="%g" font-size="10" text-anchor="middle" dominant-baseline="middle" fill="#000000">%d</text>`+"\n",
			p.X, p.Y, p.Label)
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// writeRingPath appends one ring's "move to / line to" path data,
// closed with Z, per the "move to / line to" form spec.md section 6
// allows as a pre-serialized path representation.
func writeRingPath(d *strings.Builder, ring pbncore.Ring) {
	if len(ring) == 0 {
		return
	}
	fmt.Fprintf(d, "M%g,%g ", ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		fmt.Fprintf(d, "L%g,%g ", p.X, p.Y)
	}
	d.WriteString("Z ")
}
