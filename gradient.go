package fill

import (
	"fmt"
	"log/slog"
)

// Kind identifies the gradient geometry.
type Kind uint8

const (
	// KindLinear varies color along the segment between two endpoints.
	KindLinear Kind = iota
	// KindRadial is reserved; no constructor produces it yet.
	KindRadial
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// TextureSpace selects the coordinate space of the derived transform.
type TextureSpace uint8

const (
	// SpaceGlobal keeps the transform in absolute shape coordinates.
	SpaceGlobal TextureSpace = iota
	// SpaceLocal maps the consuming shape's own unit square.
	SpaceLocal
)

// String returns the space name.
func (s TextureSpace) String() string {
	switch s {
	case SpaceGlobal:
		return "global"
	case SpaceLocal:
		return "local"
	}
	return fmt.Sprintf("TextureSpace(%d)", uint8(s))
}

// Gradient is an unbuilt gradient definition.
//
// Endpoints, Space and stops may change until Build is called. Build
// freezes the definition into a Built value; afterwards AddColorStop
// rejects new stops and records ErrAlreadyBuilt.
//
// Gradient is NOT safe for concurrent use.
//
// Example:
//
//	g := fill.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, "#ff0000").
//	    AddColorStop(1, "blue")
//	b, err := g.Build()
type Gradient struct {
	// Endpoints of the gradient axis in shape units.
	X0, Y0, X1, Y1 float64

	// Space selects the texture space read by Build.
	Space TextureSpace

	id    uint64
	kind  Kind
	stops []ColorStop
	cfg   Config
	err   error
	built *Built
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
// By default it builds a DefaultTextureSize texture in SpaceGlobal.
func NewLinearGradient(x0, y0, x1, y1 float64, opts ...Option) *Gradient {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Gradient{
		X0:    x0,
		Y0:    y0,
		X1:    x1,
		Y1:    y1,
		Space: o.space,
		id:    nextGradientID(),
		kind:  KindLinear,
		cfg:   o.cfg,
	}
}

// LinearStyle is a flat description of a linear gradient: parallel lists
// of packed 0xRRGGBB colors and stop offsets.
type LinearStyle struct {
	X0, Y0, X1, Y1 float64
	Colors         []uint32
	Stops          []float64
}

// NewGradientFromStyle creates a gradient from a LinearStyle.
// Colors without a matching offset are spread evenly over [0, 1].
func NewGradientFromStyle(s LinearStyle, opts ...Option) *Gradient {
	g := NewLinearGradient(s.X0, s.Y0, s.X1, s.Y1, opts...)
	n := len(s.Colors)
	for i, c := range s.Colors {
		var offset float64
		switch {
		case i < len(s.Stops):
			offset = s.Stops[i]
		case n > 1:
			offset = float64(i) / float64(n-1)
		}
		g.AddColorStop(offset, c)
	}
	return g
}

// ID returns the process-unique identity of the gradient.
// Built values keep the same ID.
func (g *Gradient) ID() uint64 { return g.id }

// Kind returns the gradient kind.
func (g *Gradient) Kind() Kind { return g.kind }

// Stops returns a copy of the color stops in insertion order.
func (g *Gradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Config returns the build configuration.
func (g *Gradient) Config() Config { return g.cfg }

// AddColorStop appends a color stop and returns g for chaining.
//
// src is anything ParseColor accepts. The offset is not validated;
// out-of-range and out-of-order offsets are left to the rasterizer.
// An unparseable color drops the stop and records the error, as does
// any call after Build. See Err.
func (g *Gradient) AddColorStop(offset float64, src any) *Gradient {
	if g.built != nil {
		g.setErr(fmt.Errorf("%w: stop at offset %v dropped", ErrAlreadyBuilt, offset))
		g.logger().Warn("fill: color stop added after build",
			slog.Uint64("gradient", g.id),
			slog.Float64("offset", offset))
		return g
	}

	c, err := ParseColor(src)
	if err != nil {
		g.setErr(fmt.Errorf("fill: color stop at offset %v: %w", offset, err))
		return g
	}

	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	return g
}

// Err returns the first error recorded by AddColorStop, if any.
func (g *Gradient) Err() error { return g.err }

func (g *Gradient) setErr(err error) {
	if g.err == nil {
		g.err = err
	}
}

// Built returns the built state, if Build has succeeded.
func (g *Gradient) Built() (*Built, bool) {
	return g.built, g.built != nil
}

// Build rasterizes the stops into a texture and derives the texture
// transform. It runs once: later calls return the same *Built and nil.
//
// Build fails, leaving g unbuilt, if AddColorStop recorded an error, the
// texture size is not positive, or the rasterizer fails.
func (g *Gradient) Build() (*Built, error) {
	if g.built != nil {
		return g.built, nil
	}
	if g.err != nil {
		return nil, g.err
	}

	size := g.cfg.TextureSize
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTextureSize, size)
	}
	if g.cfg.Rasterizer == nil {
		return nil, ErrNilRasterizer
	}

	tex, err := rasterize(g.cfg.Rasterizer, size, g.stops)
	if err != nil {
		return nil, fmt.Errorf("fill: rasterize gradient %d: %w", g.id, err)
	}

	start, end := Pt(g.X0, g.Y0), Pt(g.X1, g.Y1)
	m := deriveTransform(start, end, size, g.Space)

	g.built = &Built{
		id:        g.id,
		kind:      g.kind,
		start:     start,
		end:       end,
		space:     g.Space,
		size:      size,
		stops:     g.Stops(),
		texture:   tex,
		transform: m,
		inverse:   invertOrCollapse(start, end, m),
	}

	g.logger().Debug("fill: gradient built",
		slog.Uint64("gradient", g.id),
		slog.Int("stops", len(g.stops)),
		slog.Int("size", size),
		slog.String("space", g.Space.String()),
		slog.Uint64("texture", tex.ID()))

	return g.built, nil
}

// StyleKey returns the style key of the built gradient.
// It returns ErrNotBuilt before Build.
func (g *Gradient) StyleKey() (string, error) {
	if g.built == nil {
		return "", ErrNotBuilt
	}
	return g.built.StyleKey(), nil
}

// Clone returns an unbuilt copy of g with a new ID, the same endpoints,
// space, configuration and stops. Options override the copied settings.
// Cloning is how a built gradient is changed.
func (g *Gradient) Clone(opts ...Option) *Gradient {
	o := gradientOptions{cfg: g.cfg, space: g.Space}
	for _, opt := range opts {
		opt(&o)
	}
	return &Gradient{
		X0:    g.X0,
		Y0:    g.Y0,
		X1:    g.X1,
		Y1:    g.Y1,
		Space: o.space,
		id:    nextGradientID(),
		kind:  g.kind,
		stops: g.Stops(),
		cfg:   o.cfg,
	}
}

func (g *Gradient) logger() *slog.Logger {
	if g.cfg.Logger != nil {
		return g.cfg.Logger
	}
	return Logger()
}
