package media

import "math"

// Transform produces an affine matrix. A nil Transform is the identity.
type Transform interface {
	Value() Matrix
}

// MatrixTransform is an arbitrary affine transform.
type MatrixTransform struct {
	Matrix Matrix
}

// Value implements Transform.
func (t MatrixTransform) Value() Matrix { return t.Matrix }

// TranslateTransform moves by (X, Y).
type TranslateTransform struct {
	X, Y float64
}

// Value implements Transform.
func (t TranslateTransform) Value() Matrix { return Translate(t.X, t.Y) }

// ScaleTransform scales about the center point.
type ScaleTransform struct {
	ScaleX, ScaleY   float64
	CenterX, CenterY float64
}

// Value implements Transform.
func (t ScaleTransform) Value() Matrix {
	return Translate(t.CenterX, t.CenterY).
		Multiply(Scale(t.ScaleX, t.ScaleY)).
		Multiply(Translate(-t.CenterX, -t.CenterY))
}

// RotateTransform rotates by Angle degrees about the center point.
type RotateTransform struct {
	Angle            float64
	CenterX, CenterY float64
}

// Value implements Transform.
func (t RotateTransform) Value() Matrix {
	return Translate(t.CenterX, t.CenterY).
		Multiply(Rotate(t.Angle * math.Pi / 180)).
		Multiply(Translate(-t.CenterX, -t.CenterY))
}

// TransformGroup applies its children in order.
type TransformGroup []Transform

// Value implements Transform.
func (g TransformGroup) Value() Matrix {
	m := Identity()
	for _, t := range g {
		m = transformValue(t).Multiply(m)
	}
	return m
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return MatrixTransform{Matrix: Identity()}
}

func transformValue(t Transform) Matrix {
	if t == nil {
		return Identity()
	}
	return t.Value()
}

// isIdentityTransform reports whether t is nil or maps every point to itself.
func isIdentityTransform(t Transform) bool {
	return t == nil || t.Value().IsIdentity()
}
