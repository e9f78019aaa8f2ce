package stdimg

import (
	"fmt"
	"image"
	"strconv"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ApplyCommandStdlib applies one preprocessing command to an image.Image
// and returns a new image. It implements the small stdlib-only subset
// of the original ImageMagick-backed editor that still makes sense
// ahead of paint-by-numbers quantization: resizing a source photo down
// to a workable resolution and trimming a scanner/matte border.
func ApplyCommandStdlib(img image.Image, commandName string, args []string) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	src := ToNRGBA(img)
	switch commandName {
	case "resize":
		if len(args) != 2 {
			return nil, fmt.Errorf("resize requires 2 args: width height")
		}
		// An empty argument takes the documented default of 0 (preserve aspect).
		w, h := 0, 0
		var err error
		if args[0] != "" {
			if w, err = strconv.Atoi(args[0]); err != nil {
				return nil, fmt.Errorf("invalid width: %w", err)
			}
		}
		if args[1] != "" {
			if h, err = strconv.Atoi(args[1]); err != nil {
				return nil, fmt.Errorf("invalid height: %w", err)
			}
		}
		return AdaptiveResize(src, w, h, 3.0), nil

	case "trim":
		if len(args) != 1 {
			return nil, fmt.Errorf("trim requires 1 arg: fuzz")
		}
		fuzz, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fuzz: %w", err)
		}
		return Trim(src, fuzz), nil

	default:
		return nil, fmt.Errorf("unknown command: %s", commandName)
	}
}

// BoundLongestEdge downscales src so its longest edge is at most max
// pixels, preserving aspect ratio. Photos from a phone camera routinely
// arrive at 3000-4000px on a side; running k-means training and
// per-label contour tracing at that resolution is wasted work once the
// output is a hand-paintable template. Images already at or under max
// are returned unchanged (as *image.NRGBA).
func BoundLongestEdge(img image.Image, max int) *image.NRGBA {
	src := ToNRGBA(img)
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= max || max <= 0 {
		return src
	}
	scale := float64(max) / float64(longest)
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return AdaptiveResize(src, nw, nh, 3.0)
}
