package fill

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Scaled returns m followed by a scale. Chained calls compose in call order:
//
//	Identity().Scaled(2, 1).Rotated(a).Translated(x, y)
//
// scales first, then rotates, then translates.
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return Scale(sx, sy).Multiply(m)
}

// Rotated returns m followed by a rotation (angle in radians).
func (m Matrix) Rotated(angle float64) Matrix {
	return Rotate(angle).Multiply(m)
}

// Translated returns m followed by a translation.
func (m Matrix) Translated(tx, ty float64) Matrix {
	return Translate(tx, ty).Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse of m. ok is false when the linear part is
// singular, or so close to it that the inverse overflows; the returned
// matrix is then the zero matrix.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	invDet := 1 / det
	if det == 0 || math.IsInf(invDet, 0) || math.IsNaN(invDet) {
		return Matrix{}, false
	}
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// Array returns the full 3x3 matrix flattened in row-major order:
// a, b, c, d, e, f, 0, 0, 1.
func (m Matrix) Array() [9]float64 {
	return [9]float64{m.A, m.B, m.C, m.D, m.E, m.F, 0, 0, 1}
}
