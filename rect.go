package media

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
//
// The empty rectangle has positive infinite position and negative infinite
// size, so that its union with any rectangle is that rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	return Rect{
		X:      math.Inf(1),
		Y:      math.Inf(1),
		Width:  math.Inf(-1),
		Height: math.Inf(-1),
	}
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(p, q Point) Rect {
	x0, x1 := math.Min(p.X, q.X), math.Max(p.X, q.X)
	y0, y1 := math.Min(p.Y, q.Y), math.Max(p.Y, q.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// IsEmpty reports whether r is the empty rectangle.
func (r Rect) IsEmpty() bool {
	return r.Width < 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	if r.IsEmpty() {
		return math.Inf(-1)
	}
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	if r.IsEmpty() {
		return math.Inf(-1)
	}
	return r.Y + r.Height
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	switch {
	case r.IsEmpty():
		return s
	case s.IsEmpty():
		return r
	}
	x0, y0 := math.Min(r.X, s.X), math.Min(r.Y, s.Y)
	x1, y1 := math.Max(r.Right(), s.Right()), math.Max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Transform returns the bounds of r mapped through m.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	for _, p := range []Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	} {
		q := m.TransformPoint(p)
		out = out.Union(Rect{X: q.X, Y: q.Y})
	}
	return out
}
