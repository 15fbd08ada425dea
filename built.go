package fill

import (
	"strconv"
	"strings"
	"sync"
)

// Built is the immutable result of Gradient.Build: the ramp texture and
// the transform from texture space to shape space, together with a
// frozen copy of the definition they were produced from.
//
// A Built value has no mutators and is safe for concurrent use. Its style
// key is computed on first use and memoized.
type Built struct {
	id        uint64
	kind      Kind
	start     Point
	end       Point
	space     TextureSpace
	size      int
	stops     []ColorStop
	texture   *Texture
	transform Matrix
	inverse   Matrix

	keyOnce sync.Once
	key     string
}

// ID returns the ID of the gradient this was built from.
func (b *Built) ID() uint64 { return b.id }

// Kind returns the gradient kind.
func (b *Built) Kind() Kind { return b.kind }

// Endpoints returns the gradient axis as read at build time.
func (b *Built) Endpoints() (x0, y0, x1, y1 float64) {
	return b.start.X, b.start.Y, b.end.X, b.end.Y
}

// Space returns the texture space of the transform.
func (b *Built) Space() TextureSpace { return b.space }

// TextureSize returns the side length of the ramp texture.
func (b *Built) TextureSize() int { return b.size }

// Stops returns a copy of the stops the texture was rasterized from.
func (b *Built) Stops() []ColorStop {
	out := make([]ColorStop, len(b.stops))
	copy(out, b.stops)
	return out
}

// Texture returns the ramp texture.
func (b *Built) Texture() *Texture { return b.texture }

// Transform returns the forward transform from texture space to shape
// space. Renderers invert it to compute texture coordinates.
func (b *Built) Transform() Matrix { return b.transform }

// InverseTransform returns the shape-to-texture transform. It is the
// zero matrix when the endpoints coincide or the axis is too short to
// invert.
func (b *Built) InverseTransform() Matrix { return b.inverse }

// StyleKey returns a string identifying this gradient's render state:
// gradient ID, stops, texture ID, transform coefficients and endpoints.
// Equal inputs give equal keys; gradients with different IDs never share
// a key, whatever their content.
func (b *Built) StyleKey() string {
	b.keyOnce.Do(func() {
		b.key = b.styleKey()
	})
	return b.key
}

func (b *Built) styleKey() string {
	var sb strings.Builder
	sb.WriteString("fill-gradient-")
	sb.WriteString(strconv.FormatUint(b.id, 10))
	for _, s := range b.stops {
		sb.WriteByte('-')
		sb.WriteString(formatFloat(s.Offset))
		sb.WriteByte('-')
		sb.WriteString(s.Hexa())
	}
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(b.texture.ID(), 10))
	for _, v := range b.transform.Array() {
		sb.WriteByte('-')
		sb.WriteString(formatFloat(v))
	}
	for _, v := range [4]float64{b.start.X, b.start.Y, b.end.X, b.end.Y} {
		sb.WriteByte('-')
		sb.WriteString(formatFloat(v))
	}

	return sb.String()
}

// UVTransform returns the matrix taking shape-space points to normalized
// texture coordinates: the inverse transform, further divided by the
// texture size in SpaceGlobal. In SpaceLocal the input points are
// coordinates in the shape's unit square.
func (b *Built) UVTransform() Matrix {
	if b.space == SpaceLocal {
		return b.inverse
	}
	s := float64(b.size)
	return Scale(1/s, 1/s).Multiply(b.inverse)
}

// UV returns normalized texture coordinates for a shape-space point.
func (b *Built) UV(x, y float64) (u, v float64) {
	p := b.UVTransform().TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// ColorAt returns the gradient color at a shape-space point, sampling the
// texture the way a renderer would.
func (b *Built) ColorAt(x, y float64) RGBA {
	u, v := b.UV(x, y)
	return b.texture.Sample(u, v)
}

func formatFloat(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
