package fill

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// TextureOptions configures how a Texture is addressed when sampled.
type TextureOptions struct {
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	Filter       gputypes.FilterMode
}

// GradientTextureOptions are the options used for gradient ramps: the ramp
// axis (U) clamps at offsets 0 and 1, the perpendicular axis (V) repeats.
func GradientTextureOptions() TextureOptions {
	return TextureOptions{
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeRepeat,
		Filter:       gputypes.FilterModeLinear,
	}
}

// Texture is an immutable RGBA8 image with sampling configuration and a
// process-unique identity.
type Texture struct {
	id     uint64
	width  int
	height int
	pix    []uint8 // straight alpha RGBA, 4 bytes per pixel
	opts   TextureOptions
}

// NewTexture copies img into a new texture.
func NewTexture(img image.Image, opts TextureOptions) *Texture {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Texture{
		id:     nextTextureID(),
		width:  b.Dx(),
		height: b.Dy(),
		pix:    dst.Pix,
		opts:   opts,
	}
}

// ID returns the texture's process-unique identity.
func (t *Texture) ID() uint64 { return t.id }

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Format returns the GPU format matching Data.
func (t *Texture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// AddressModeU returns the addressing mode along the ramp axis.
func (t *Texture) AddressModeU() gputypes.AddressMode { return t.opts.AddressModeU }

// AddressModeV returns the addressing mode across the ramp axis.
func (t *Texture) AddressModeV() gputypes.AddressMode { return t.opts.AddressModeV }

// Filter returns the magnification/minification filter.
func (t *Texture) Filter() gputypes.FilterMode { return t.opts.Filter }

// Data returns a copy of the texel data, row-major, 4 bytes per texel.
func (t *Texture) Data() []byte {
	out := make([]byte, len(t.pix))
	copy(out, t.pix)
	return out
}

// Image returns a copy of the texture as an image.
func (t *Texture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	copy(img.Pix, t.pix)
	return img
}

// Texel returns the texel at (x, y), or Transparent outside the texture.
func (t *Texture) Texel(x, y int) RGBA {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Transparent
	}
	i := (y*t.width + x) * 4
	return RGBA{
		R: float64(t.pix[i+0]) / 255,
		G: float64(t.pix[i+1]) / 255,
		B: float64(t.pix[i+2]) / 255,
		A: float64(t.pix[i+3]) / 255,
	}
}

// Sample returns the nearest texel for normalized coordinates (u, v),
// applying the texture's address modes. Repeat wraps, MirrorRepeat wraps
// every other period backwards, and every other mode clamps to the edge.
func (t *Texture) Sample(u, v float64) RGBA {
	if t.width == 0 || t.height == 0 {
		return Transparent
	}
	x := address(u, t.width, t.opts.AddressModeU)
	y := address(v, t.height, t.opts.AddressModeV)
	return t.Texel(x, y)
}

// address maps a normalized coordinate to a texel index.
func address(c float64, size int, mode gputypes.AddressMode) int {
	switch {
	case math.IsNaN(c), math.IsInf(c, -1):
		return 0
	case math.IsInf(c, 1):
		return size - 1
	}
	switch mode {
	case gputypes.AddressModeRepeat:
		c -= math.Floor(c)
	case gputypes.AddressModeMirrorRepeat:
		c = math.Abs(c - 2*math.Floor(c/2)) // [0, 2)
		if c > 1 {
			c = 2 - c
		}
	}
	i := int(math.Floor(c * float64(size)))
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
