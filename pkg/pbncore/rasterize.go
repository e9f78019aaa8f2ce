package pbncore

// RasterizeRegions reproduces a label map from a polygon set by testing
// each pixel center against every region (spec.md section 8, property
// P5). It exists for round-trip verification and for exporters that
// only carry the polygon representation forward; the pipeline itself
// never needs to rasterize back, since Process already carries the
// label map alongside the regions it was traced from.
//
// Pixels not covered by any region (possible only at degenerate
// boundary cases) retain label 0.
func RasterizeRegions(regions []Region, width, height int) LabelMap {
	out := LabelMap{Width: width, Height: height, Labels: make([]uint8, width*height)}
	for _, r := range regions {
		minX, minY, maxX, maxY := ringBounds(r.Outer)
		x0 := int(minX)
		if x0 < 0 {
			x0 = 0
		}
		y0 := int(minY)
		if y0 < 0 {
			y0 = 0
		}
		x1 := int(maxX) + 1
		if x1 > width {
			x1 = width
		}
		y1 := int(maxY) + 1
		if y1 > height {
			y1 = height
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if pointInPolygon(Point{X: float64(x), Y: float64(y)}, r) {
					out.Labels[y*width+x] = uint8(r.ColorIndex)
				}
			}
		}
	}
	return out
}
