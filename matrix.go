package media

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine map stored as the top two rows of a 3x3 matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Its layout matches f64.Aff3, which the geometry engine works with.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a matrix that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a matrix that scales about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a matrix that rotates about the origin by angle radians,
// clockwise on a y-down screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m*other, the map that applies other and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	a, b := m.aff3(), other.aff3()
	return fromAff3(f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	})
}

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	return Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// Invert returns the inverse of m. For a singular or non-finite matrix it
// returns the identity and false.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	return Matrix{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.C*m.E) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.C*m.D - m.A*m.F) / det,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func (m Matrix) aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

func fromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}
