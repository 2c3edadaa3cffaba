package stroke

import (
	"math"

	"github.com/gogpu/media/internal/pathdata"
)

// Point is the shared path buffer point type.
type Point = pathdata.Point

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

func sub(p, q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

func add(p Point, v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapFlat ends the stroke exactly at the endpoint.
	LineCapFlat LineCap = iota
	// LineCapSquare extends the stroke by half the width.
	LineCapSquare
	// LineCapRound adds a semicircle.
	LineCapRound
	// LineCapTriangle adds a triangle whose apex is half the width away.
	LineCapTriangle
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

// Style defines the stroke parameters.
type Style struct {
	Width      float64
	StartCap   LineCap
	EndCap     LineCap
	DashCap    LineCap
	Join       LineJoin
	MiterLimit float64

	// Dashes alternates dash and gap lengths in absolute units.
	// Empty means a solid stroke.
	Dashes     []float64
	DashOffset float64
}

// DefaultStyle returns a 1-unit solid stroke with flat caps and miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// Polyline is one flattened subpath to be stroked.
type Polyline struct {
	Points []Point
	Closed bool

	// StartCap and EndCap override the style's caps for this polyline.
	// Dash pieces use the style's DashCap at interior ends.
	StartCap LineCap
	EndCap   LineCap
}

// StrokeExpander converts stroked polylines to filled rings.
type StrokeExpander struct {
	style Style

	// Tolerance for arc approximation in round caps and joins.
	tolerance float64

	halfWidth float64
	left      []Point
	right     []Point
	out       [][]Point
}

// NewStrokeExpander creates a new stroke expander with the given style.
func NewStrokeExpander(style Style) *StrokeExpander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	return &StrokeExpander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the arc flattening tolerance.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand converts the stroked polylines to filled rings. The rings are to be
// filled with the non-zero rule.
func (e *StrokeExpander) Expand(lines []Polyline) [][]Point {
	e.out = nil
	e.halfWidth = math.Abs(e.style.Width) / 2
	if e.halfWidth == 0 || math.IsNaN(e.halfWidth) {
		return nil
	}

	for _, pl := range lines {
		if len(e.style.Dashes) > 0 {
			for _, d := range Dash(pl, e.style.Dashes, e.style.DashOffset, e.style.DashCap) {
				e.expandOne(d)
			}
			continue
		}
		e.expandOne(pl)
	}
	return e.out
}

func (e *StrokeExpander) expandOne(pl Polyline) {
	pts := dedupe(pl.Points, pl.Closed)
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		e.dot(pts[0], pl)
		return
	case pl.Closed && len(pts) == 2:
		pl.Closed = false
		pts = append(pts, pts[0])
	}

	if pl.Closed {
		e.expandClosed(pts)
	} else {
		e.expandOpen(pts, pl.StartCap, pl.EndCap)
	}
}

// expandOpen builds a single ring: left side forward, end cap, right side
// backward, start cap.
func (e *StrokeExpander) expandOpen(pts []Point, startCap, endCap LineCap) {
	e.left = e.left[:0]
	e.right = e.right[:0]

	n := len(pts)
	startNorm := e.normal(pts[0], pts[1])
	e.left = append(e.left, add(pts[0], startNorm))
	e.right = append(e.right, add(pts[0], startNorm.Neg()))

	for i := 1; i < n-1; i++ {
		e.join(pts[i-1], pts[i], pts[i+1])
	}

	endNorm := e.normal(pts[n-2], pts[n-1])
	e.left = append(e.left, add(pts[n-1], endNorm))
	e.right = append(e.right, add(pts[n-1], endNorm.Neg()))

	ring := make([]Point, 0, len(e.left)+len(e.right)+16)
	ring = append(ring, e.left...)
	ring = e.applyCap(ring, endCap, pts[n-1], endNorm, sub(pts[n-1], pts[n-2]).Normalize())
	for i := len(e.right) - 1; i >= 0; i-- {
		ring = append(ring, e.right[i])
	}
	ring = e.applyCap(ring, startCap, pts[0], startNorm.Neg(), sub(pts[0], pts[1]).Normalize())
	e.emit(ring)
}

// expandClosed builds the left ring forward and the right ring backward.
func (e *StrokeExpander) expandClosed(pts []Point) {
	e.left = e.left[:0]
	e.right = e.right[:0]

	n := len(pts)
	for i := 0; i < n; i++ {
		e.join(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
	}

	e.emit(append([]Point(nil), e.left...))
	back := make([]Point, 0, len(e.right))
	for i := len(e.right) - 1; i >= 0; i-- {
		back = append(back, e.right[i])
	}
	e.emit(back)
}

// normal returns the left normal of segment p0->p1 scaled to half the width.
func (e *StrokeExpander) normal(p0, p1 Point) Vec2 {
	return sub(p1, p0).Normalize().Perp().Scale(e.halfWidth)
}

// join appends the offsets at vertex p between segments prev->p and p->next.
func (e *StrokeExpander) join(prev, p, next Point) {
	d0 := sub(p, prev).Normalize()
	d1 := sub(next, p).Normalize()
	n0 := d0.Perp().Scale(e.halfWidth)
	n1 := d1.Perp().Scale(e.halfWidth)
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)

	// Skip the join if the direction change is insignificant.
	if dot > 0 && math.Abs(cross) < 1e-9 {
		e.left = append(e.left, add(p, n1))
		e.right = append(e.right, add(p, n1.Neg()))
		return
	}

	if cross > 0 {
		// Left turn: the left side is inner, the right side outer.
		e.left = append(e.left, add(p, n0), p, add(p, n1))
		e.right = e.outerJoin(e.right, p, n0.Neg(), n1.Neg(), d0, d1)
	} else {
		e.right = append(e.right, add(p, n0.Neg()), p, add(p, n1.Neg()))
		e.left = e.outerJoin(e.left, p, n0, n1, d0, d1)
	}
}

// outerJoin appends the outer side of a join from p+a to p+b.
func (e *StrokeExpander) outerJoin(dst []Point, p Point, a, b, d0, d1 Vec2) []Point {
	pa := add(p, a)
	pb := add(p, b)

	switch e.style.Join {
	case LineJoinRound:
		dst = append(dst, pa)
		sweep := math.Atan2(a.Cross(b), a.Dot(b))
		dst = e.arc(dst, p, a, sweep)
		return append(dst, pb)
	case LineJoinMiter:
		// Miter length relative to half width is 1/cos(theta/2).
		cosHalf := math.Sqrt((1 + d0.Dot(d1)) / 2)
		if cosHalf > 1e-12 && 1/cosHalf <= e.style.MiterLimit {
			bisector := a.Add(b).Normalize().Scale(e.halfWidth / cosHalf)
			return append(dst, pa, add(p, bisector), pb)
		}
	}
	return append(dst, pa, pb)
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// applyCap appends the cap at center going from center+norm to center-norm.
// dir is the unit direction pointing out of the stroke.
func (e *StrokeExpander) applyCap(ring []Point, capStyle LineCap, center Point, norm, dir Vec2) []Point {
	out := dir.Scale(e.halfWidth)
	switch capStyle {
	case LineCapSquare:
		ring = append(ring, add(add(center, norm), out), add(add(center, norm.Neg()), out))
	case LineCapRound:
		sweep := math.Pi
		if norm.Cross(out) < 0 {
			sweep = -math.Pi
		}
		ring = e.arc(ring, center, norm, sweep)
	case LineCapTriangle:
		ring = append(ring, add(center, out))
	}
	return ring
}

// arc appends flattened arc points around center starting at center+from and
// sweeping by sweep radians. The start and end points are not appended.
func (e *StrokeExpander) arc(dst []Point, center Point, from Vec2, sweep float64) []Point {
	radius := from.Length()
	if radius == 0 {
		return dst
	}
	// Chord error r(1-cos(step/2)) <= tolerance.
	step := math.Pi / 2
	if e.tolerance < radius {
		step = 2 * math.Acos(1-e.tolerance/radius)
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 2 {
		n = 2
	}
	start := from.Angle()
	for i := 1; i < n; i++ {
		a := start + sweep*float64(i)/float64(n)
		dst = append(dst, Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return dst
}

// dot handles a zero-length polyline. Only round and square caps produce
// output, matching the behavior of dotted strokes.
func (e *StrokeExpander) dot(p Point, pl Polyline) {
	hw := e.halfWidth
	switch pl.StartCap {
	case LineCapRound:
		ring := []Point{{X: p.X + hw, Y: p.Y}}
		ring = e.arc(ring, p, Vec2{X: hw}, 2*math.Pi)
		e.emit(ring)
	case LineCapSquare:
		e.emit([]Point{
			{X: p.X - hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y + hw},
			{X: p.X - hw, Y: p.Y + hw},
		})
	}
}

func (e *StrokeExpander) emit(ring []Point) {
	if len(ring) >= 3 {
		e.out = append(e.out, ring)
	}
}

// dedupe drops consecutive duplicate points, including a closing point that
// repeats the first one of a closed polyline.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
