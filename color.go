package fill

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Hexa returns the canonical "#rrggbbaa" form of the color.
// Two colors with equal Hexa rasterize identically.
func (c RGBA) Hexa() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// ParseColor normalizes a loosely typed color source.
//
// Accepted sources:
//   - RGBA, *RGBA and any color.Color
//   - hex strings "rgb", "rgba", "rrggbb", "rrggbbaa", with or without '#'
//   - CSS/SVG color names ("red", "CornflowerBlue") and "transparent"
//   - packed integers 0xRRGGBB (always opaque); float64 is accepted
//     when it holds an integral value
//
// Anything else yields an error wrapping ErrInvalidColor.
func ParseColor(src any) (RGBA, error) {
	switch v := src.(type) {
	case RGBA:
		return v, nil
	case *RGBA:
		if v == nil {
			break
		}
		return *v, nil
	case string:
		return parseColorString(v)
	case int:
		return packed(int64(v))
	case int32:
		return packed(int64(v))
	case int64:
		return packed(v)
	case uint:
		return packed(int64(min(v, 1<<24)))
	case uint32:
		return packed(int64(v))
	case uint64:
		return packed(int64(min(v, 1<<24)))
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return packed(int64(v))
		}
	case color.Color:
		if v != nil {
			return FromColor(v), nil
		}
	}
	return RGBA{}, fmt.Errorf("%w: %v (%T)", ErrInvalidColor, src, src)
}

// packed decodes a 0xRRGGBB number.
func packed(v int64) (RGBA, error) {
	if v < 0 || v > 0xffffff {
		return RGBA{}, fmt.Errorf("%w: packed value %#x out of range", ErrInvalidColor, v)
	}
	return RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}

func parseColorString(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] == '#' {
		if c, ok := parseHex(s[1:]); ok {
			return c, nil
		}
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// A Caser is stateful; one per call keeps ParseColor goroutine-safe.
	name := cases.Fold().String(s)
	if name == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	if c, ok := parseHex(s); ok {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// parseHex decodes "rgb", "rgba", "rrggbb" and "rrggbbaa".
func parseHex(hex string) (RGBA, bool) {
	var n [8]uint32
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok || i >= len(n) {
			return RGBA{}, false
		}
		n[i] = d
	}

	var r, g, b, a uint32
	switch len(hex) {
	case 3:
		r, g, b, a = n[0]*17, n[1]*17, n[2]*17, 255
	case 4:
		r, g, b, a = n[0]*17, n[1]*17, n[2]*17, n[3]*17
	case 6:
		r, g, b, a = n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5], 255
	case 8:
		r, g, b, a = n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5], n[6]<<4|n[7]
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// to8 converts a [0, 1] component to a byte, rounding to nearest.
func to8(x float64) uint8 {
	return uint8(clamp255(math.Round(x * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
