package fill

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular straight-alpha RGBA pixel buffer.
// It is the Surface of SoftwareRasterizer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
	fill   painter
}

// painter is a fill that can be evaluated per pixel.
type painter interface {
	ColorAt(x, y float64) RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// CreateLinearRamp implements Surface.
func (p *Pixmap) CreateLinearRamp(x0, y0, x1, y1 float64) Ramp {
	return NewLinearRamp(x0, y0, x1, y1)
}

// SetFill implements Surface. Ramps that cannot be evaluated per pixel
// leave the pixmap without a fill, and FillRect becomes a no-op.
func (p *Pixmap) SetFill(r Ramp) {
	p.fill, _ = r.(painter)
}

// FillRect implements Surface. Each pixel is sampled at its center and
// replaces the previous contents.
func (p *Pixmap) FillRect(x, y, w, h int) {
	if p.fill == nil {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p.SetPixel(px, py, p.fill.ColorAt(float64(px)+0.5, float64(py)+0.5))
		}
	}
}

// Image implements Surface.
func (p *Pixmap) Image() image.Image {
	return p.ToImage()
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
