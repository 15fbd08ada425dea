package fill

import (
	"image"
	"testing"
)

// opaqueRamp is a Ramp that cannot be evaluated per pixel.
type opaqueRamp struct{}

func (opaqueRamp) AddColorStop(float64, RGBA) {}

func TestPixmapFillRect(t *testing.T) {
	pm := NewPixmap(4, 2)
	ramp := pm.CreateLinearRamp(0, 0, 4, 0)
	ramp.AddColorStop(0, Black)
	ramp.AddColorStop(1, White)
	pm.SetFill(ramp)
	pm.FillRect(0, 0, 4, 2)

	// Pixel centers sit at t = 0.125, 0.375, 0.625, 0.875.
	want := []uint8{32, 96, 159, 223}
	for y := 0; y < 2; y++ {
		for x, w := range want {
			i := (y*4 + x) * 4
			if got := pm.Data()[i]; got != w {
				t.Errorf("pixel (%d,%d) R = %d, want %d", x, y, got, w)
			}
			if a := pm.Data()[i+3]; a != 255 {
				t.Errorf("pixel (%d,%d) A = %d, want 255", x, y, a)
			}
		}
	}
}

func TestPixmapFillRectClipped(t *testing.T) {
	pm := NewPixmap(3, 3)
	ramp := pm.CreateLinearRamp(0, 0, 3, 0)
	ramp.AddColorStop(0, Red)
	pm.SetFill(ramp)
	pm.FillRect(2, 2, 10, 10)

	if got := pm.GetPixel(2, 2); got != Red {
		t.Errorf("GetPixel(2,2) = %+v, want red", got)
	}
	if got := pm.GetPixel(1, 1); got != Transparent {
		t.Errorf("GetPixel(1,1) = %+v, want transparent", got)
	}
}

func TestPixmapFillWithoutPainter(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetFill(opaqueRamp{})
	pm.FillRect(0, 0, 2, 2)
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("FillRect with an opaque ramp should not paint")
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(1, 0, RGBA{R: 1, A: 0.5})

	img, ok := pm.Image().(*image.NRGBA)
	if !ok {
		t.Fatalf("Image() = %T, want *image.NRGBA", pm.Image())
	}
	if got := img.NRGBAAt(1, 0); got.R != 255 || got.A != 128 {
		t.Errorf("NRGBAAt(1,0) = %+v, want straight alpha red", got)
	}

	// The image is a copy.
	img.Pix[0] = 9
	if pm.Data()[0] != 0 {
		t.Error("Image() shares memory with the pixmap")
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(0, 5, Red)
	if got := pm.GetPixel(3, 3); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want transparent", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("GetPixel(0,0) = %+v, want untouched", got)
	}
}
