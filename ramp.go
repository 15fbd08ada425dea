package fill

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position along the gradient axis, nominally 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Hexa returns the stop color in canonical "#rrggbbaa" form.
func (s ColorStop) Hexa() string {
	return s.Color.Hexa()
}

// Ramp is a linear color ramp created by a Surface.
type Ramp interface {
	// AddColorStop inserts a stop. Offsets outside [0, 1] are clamped,
	// and a stop whose offset equals earlier stops is placed after them.
	AddColorStop(offset float64, c RGBA)
}

// LinearRamp is the software Ramp: colors vary along the axis from
// Start to End and are constant across it.
type LinearRamp struct {
	Start Point
	End   Point
	stops []ColorStop // sorted by offset, stable for equal offsets
}

// NewLinearRamp creates a ramp from (x0, y0) to (x1, y1) with no stops.
func NewLinearRamp(x0, y0, x1, y1 float64) *LinearRamp {
	return &LinearRamp{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddColorStop implements Ramp.
func (r *LinearRamp) AddColorStop(offset float64, c RGBA) {
	offset = clamp01(offset)
	// Upper bound keeps insertion order among equal offsets.
	i := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Offset > offset
	})
	r.stops = append(r.stops, ColorStop{})
	copy(r.stops[i+1:], r.stops[i:])
	r.stops[i] = ColorStop{Offset: offset, Color: c}
}

// Stops returns the stops in sampling order.
func (r *LinearRamp) Stops() []ColorStop {
	out := make([]ColorStop, len(r.stops))
	copy(out, r.stops)
	return out
}

// ColorAt returns the ramp color at the given point.
func (r *LinearRamp) ColorAt(x, y float64) RGBA {
	axis := r.End.Sub(r.Start)
	lengthSq := axis.Dot(axis)

	// A zero-length ramp paints nothing.
	if lengthSq == 0 {
		return Transparent
	}

	// Project point onto the ramp axis
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Pt(x, y).Sub(r.Start).Dot(axis) / lengthSq
	return r.colorAtOffset(t)
}

// colorAtOffset returns the interpolated color at offset t.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func (r *LinearRamp) colorAtOffset(t float64) RGBA {
	stops := r.stops
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = clamp01(t)

	// First stop strictly after t; equal offsets resolve to the later stop.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	lo, hi := stops[idx-1], stops[idx]
	return lo.Color.Lerp(hi.Color, (t-lo.Offset)/(hi.Offset-lo.Offset))
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
