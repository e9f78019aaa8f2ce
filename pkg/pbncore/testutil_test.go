package pbncore

func solidImage(w, h int, r, g, b uint8) PixelBuffer {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		pix[off] = r
		pix[off+1] = g
		pix[off+2] = b
		pix[off+3] = 255
	}
	return PixelBuffer{Width: w, Height: h, Pix: pix}
}

func checkerboardImage(w, h int) PixelBuffer {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 4
			var v uint8
			if (x+y)%2 == 0 {
				v = 0
			} else {
				v = 255
			}
			pix[off] = v
			pix[off+1] = v
			pix[off+2] = v
			pix[off+3] = 255
		}
	}
	return PixelBuffer{Width: w, Height: h, Pix: pix}
}

func splitImage(w, h int) PixelBuffer {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 4
			if x < w/2 {
				pix[off] = 255
			} else {
				pix[off+2] = 255
			}
			pix[off+3] = 255
		}
	}
	return PixelBuffer{Width: w, Height: h, Pix: pix}
}

func squareOnBackgroundImage(w, h, squareSize int) PixelBuffer {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4+2] = 255
		pix[i*4+3] = 255
	}
	x0 := (w - squareSize) / 2
	y0 := (h - squareSize) / 2
	for y := y0; y < y0+squareSize; y++ {
		for x := x0; x < x0+squareSize; x++ {
			off := (y*w + x) * 4
			pix[off] = 255
			pix[off+1] = 0
			pix[off+2] = 0
		}
	}
	return PixelBuffer{Width: w, Height: h, Pix: pix}
}
