package pbncore

import (
	"math"
	"testing"
)

func TestRGBToLabBlack(t *testing.T) {
	c := RGBToLab(0, 0, 0)
	if c.L > 0.5 || c.L < -0.5 {
		t.Errorf("black L = %v, want ~0", c.L)
	}
	if c.A > 0.5 || c.A < -0.5 || c.B > 0.5 || c.B < -0.5 {
		t.Errorf("black a,b = %v,%v, want ~0,0", c.A, c.B)
	}
}

func TestRGBToLabWhite(t *testing.T) {
	c := RGBToLab(255, 255, 255)
	if c.L < 99 || c.L > 101 {
		t.Errorf("white L = %v, want ~100", c.L)
	}
}

func TestToLabBufferDimensions(t *testing.T) {
	px := PixelBuffer{Width: 3, Height: 2, Pix: make([]byte, 3*2*4)}
	lab := ToLabBuffer(px)
	if lab.Width != 3 || lab.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", lab.Width, lab.Height)
	}
	if len(lab.Lab) != 6 {
		t.Fatalf("got %d Lab samples, want 6", len(lab.Lab))
	}
}

func TestLabToRGBRoundTrip(t *testing.T) {
	cases := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 64, 200}, {0, 0, 0}, {255, 255, 255}}
	for _, want := range cases {
		lab := RGBToLab(want[0], want[1], want[2])
		r, g, b := LabToRGB(lab)
		if absDiff(int(r), int(want[0])) > 2 || absDiff(int(g), int(want[1])) > 2 || absDiff(int(b), int(want[2])) > 2 {
			t.Errorf("round trip %v -> %+v -> (%d,%d,%d), want within 2 of original", want, lab, r, g, b)
		}
	}
}

func absDiff(a, b int) int {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

func TestLabFInvMatchesCube(t *testing.T) {
	// labFInv should invert labF for values within its cube-root regime.
	got := labFInv(math.Cbrt(0.5))
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("labFInv(cbrt(0.5)) = %v, want ~0.5", got)
	}
}

func TestToLabBufferMatchesPerPixelConversion(t *testing.T) {
	px := PixelBuffer{Width: 2, Height: 1, Pix: []byte{255, 0, 0, 255, 0, 0, 255, 255}}
	lab := ToLabBuffer(px)
	want0 := RGBToLab(255, 0, 0)
	want1 := RGBToLab(0, 0, 255)
	if lab.Lab[0] != want0 {
		t.Errorf("pixel 0 = %+v, want %+v", lab.Lab[0], want0)
	}
	if lab.Lab[1] != want1 {
		t.Errorf("pixel 1 = %+v, want %+v", lab.Lab[1], want1)
	}
}
