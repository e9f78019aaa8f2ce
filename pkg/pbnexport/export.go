package pbnexport

import (
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// WritePNG encodes img as PNG, the lossless format spec.md section 6
// names for the numbered-outline and filled-preview raster outputs.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteWebP encodes img as WebP using a pure-Go encoder, so preview
// exports don't require cgo or a system libwebp.
func WriteWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}
