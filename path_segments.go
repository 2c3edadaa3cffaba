package media

import (
	"math"

	"github.com/gogpu/media/internal/pathdata"
)

// PathSegment is one piece of a figure outline.
// This is a sealed interface - only types in this package implement it.
//
// Segment types:
//   - *LineSegment, *PolyLineSegment: straight lines
//   - *BezierSegment, *PolyBezierSegment: cubic Béziers
//   - *QuadraticBezierSegment, *PolyQuadraticBezierSegment: quadratic Béziers
//   - *ArcSegment: an elliptical arc
type PathSegment interface {
	// segmentMarker is an unexported method that seals this interface.
	segmentMarker()

	// Options returns the stroke options of the segment.
	Options() SegmentOptions

	// EndPoint returns the point the segment ends at, and false when the
	// segment has no points.
	EndPoint() (Point, bool)

	isCurved() bool
	clone() PathSegment

	// encode appends the segment, starting at from, to the buffer records.
	encode(from Point, out []pathdata.Segment) []pathdata.Segment
}

// SegmentOptions controls how a segment is stroked. The zero value strokes
// the segment with a regular join.
type SegmentOptions struct {
	// Unstroked excludes the segment from strokes. It is still filled.
	Unstroked bool
	// SmoothJoin marks the join with the previous segment as smooth.
	SmoothJoin bool
}

// Options returns the options.
func (o SegmentOptions) Options() SegmentOptions { return o }

func (o SegmentOptions) flags() uint8 {
	var f uint8
	if !o.Unstroked {
		f |= pathdata.SegmentStroked
	}
	if o.SmoothJoin {
		f |= pathdata.SegmentSmoothJoin
	}
	return f
}

func toDataPoints(pts []Point) []pathdata.Point {
	out := make([]pathdata.Point, len(pts))
	for i, p := range pts {
		out[i] = pathdata.Point{X: p.X, Y: p.Y}
	}
	return out
}

func lastPoint(pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// LineSegment is a straight line to Point.
type LineSegment struct {
	Point Point
	SegmentOptions
}

func (*LineSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *LineSegment) EndPoint() (Point, bool) { return s.Point, true }

func (*LineSegment) isCurved() bool { return false }

func (s *LineSegment) clone() PathSegment { c := *s; return &c }

func (s *LineSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindLine,
		Flags:  s.flags(),
		Points: toDataPoints([]Point{s.Point}),
	})
}

// PolyLineSegment is a run of straight lines through Points.
type PolyLineSegment struct {
	Points []Point
	SegmentOptions
}

func (*PolyLineSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *PolyLineSegment) EndPoint() (Point, bool) { return lastPoint(s.Points) }

func (*PolyLineSegment) isCurved() bool { return false }

func (s *PolyLineSegment) clone() PathSegment {
	return &PolyLineSegment{Points: append([]Point(nil), s.Points...), SegmentOptions: s.SegmentOptions}
}

func (s *PolyLineSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	if len(s.Points) == 0 {
		return out
	}
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindLine,
		Flags:  s.flags(),
		Points: toDataPoints(s.Points),
	})
}

// BezierSegment is a cubic Bézier with control points Point1 and Point2
// ending at Point3.
type BezierSegment struct {
	Point1, Point2, Point3 Point
	SegmentOptions
}

func (*BezierSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *BezierSegment) EndPoint() (Point, bool) { return s.Point3, true }

func (*BezierSegment) isCurved() bool { return true }

func (s *BezierSegment) clone() PathSegment { c := *s; return &c }

func (s *BezierSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindCubic,
		Flags:  s.flags(),
		Points: toDataPoints([]Point{s.Point1, s.Point2, s.Point3}),
	})
}

// PolyBezierSegment is a run of cubic Béziers, three points each.
// Trailing points that do not make a full curve are ignored.
type PolyBezierSegment struct {
	Points []Point
	SegmentOptions
}

func (*PolyBezierSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *PolyBezierSegment) EndPoint() (Point, bool) { return lastPoint(s.Points[:len(s.Points)/3*3]) }

func (s *PolyBezierSegment) isCurved() bool { return len(s.Points) >= 3 }

func (s *PolyBezierSegment) clone() PathSegment {
	return &PolyBezierSegment{Points: append([]Point(nil), s.Points...), SegmentOptions: s.SegmentOptions}
}

func (s *PolyBezierSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	n := len(s.Points) / 3 * 3
	if n == 0 {
		return out
	}
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindCubic,
		Flags:  s.flags(),
		Points: toDataPoints(s.Points[:n]),
	})
}

// QuadraticBezierSegment is a quadratic Bézier with control point Point1
// ending at Point2.
type QuadraticBezierSegment struct {
	Point1, Point2 Point
	SegmentOptions
}

func (*QuadraticBezierSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *QuadraticBezierSegment) EndPoint() (Point, bool) { return s.Point2, true }

func (*QuadraticBezierSegment) isCurved() bool { return true }

func (s *QuadraticBezierSegment) clone() PathSegment { c := *s; return &c }

func (s *QuadraticBezierSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindQuad,
		Flags:  s.flags(),
		Points: toDataPoints([]Point{s.Point1, s.Point2}),
	})
}

// PolyQuadraticBezierSegment is a run of quadratic Béziers, two points each.
// A trailing odd point is ignored.
type PolyQuadraticBezierSegment struct {
	Points []Point
	SegmentOptions
}

func (*PolyQuadraticBezierSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *PolyQuadraticBezierSegment) EndPoint() (Point, bool) {
	return lastPoint(s.Points[:len(s.Points)/2*2])
}

func (s *PolyQuadraticBezierSegment) isCurved() bool { return len(s.Points) >= 2 }

func (s *PolyQuadraticBezierSegment) clone() PathSegment {
	return &PolyQuadraticBezierSegment{Points: append([]Point(nil), s.Points...), SegmentOptions: s.SegmentOptions}
}

func (s *PolyQuadraticBezierSegment) encode(_ Point, out []pathdata.Segment) []pathdata.Segment {
	n := len(s.Points) / 2 * 2
	if n == 0 {
		return out
	}
	return append(out, pathdata.Segment{
		Kind:   pathdata.KindQuad,
		Flags:  s.flags(),
		Points: toDataPoints(s.Points[:n]),
	})
}

// SweepDirection is the direction an arc is drawn in.
type SweepDirection int

const (
	// SweepCounterclockwise draws in the direction of decreasing angles.
	SweepCounterclockwise SweepDirection = iota
	// SweepClockwise draws in the direction of increasing angles, which is
	// clockwise on a y-down screen.
	SweepClockwise
)

// ArcSegment is an elliptical arc ending at Point, with radii Size and the
// ellipse rotated by RotationAngle degrees.
type ArcSegment struct {
	Point          Point
	Size           Point
	RotationAngle  float64
	IsLargeArc     bool
	SweepDirection SweepDirection
	SegmentOptions
}

func (*ArcSegment) segmentMarker() {}

// EndPoint implements PathSegment.
func (s *ArcSegment) EndPoint() (Point, bool) { return s.Point, true }

func (*ArcSegment) isCurved() bool { return true }

func (s *ArcSegment) clone() PathSegment { c := *s; return &c }

// encode converts the arc to cubic Béziers. Arcs with a zero radius become
// a line, and arcs that end where they start are dropped.
func (s *ArcSegment) encode(from Point, out []pathdata.Segment) []pathdata.Segment {
	pts := arcToCubics(from, s.Point, math.Abs(s.Size.X), math.Abs(s.Size.Y),
		s.RotationAngle*math.Pi/180, s.IsLargeArc, s.SweepDirection == SweepClockwise)
	switch {
	case pts == nil:
		return out
	case len(pts) == 1:
		return append(out, pathdata.Segment{Kind: pathdata.KindLine, Flags: s.flags(), Points: toDataPoints(pts)})
	}
	return append(out, pathdata.Segment{Kind: pathdata.KindCubic, Flags: s.flags(), Points: toDataPoints(pts)})
}

// arcToCubics approximates the endpoint-parameterized arc from p0 to p1.
// It returns nil for a degenerate arc, a single point for a straight line,
// and otherwise three points per cubic with at most 90 degrees per cubic.
func arcToCubics(p0, p1 Point, rx, ry, phi float64, large, sweep bool) []Point {
	if p0 == p1 {
		return nil
	}
	if rx == 0 || ry == 0 {
		return []Point{p1}
	}

	// Center parameterization, SVG implementation notes F.6.5.
	sinPhi, cosPhi := math.Sincos(phi)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale up radii that cannot reach the end point.
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := dTheta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	at := func(theta float64) (pt, deriv Point) {
		sin, cos := math.Sincos(theta)
		pt = Point{
			X: cx + rx*cos*cosPhi - ry*sin*sinPhi,
			Y: cy + rx*cos*sinPhi + ry*sin*cosPhi,
		}
		deriv = Point{
			X: -rx*sin*cosPhi - ry*cos*sinPhi,
			Y: -rx*sin*sinPhi + ry*cos*cosPhi,
		}
		return pt, deriv
	}

	out := make([]Point, 0, 3*n)
	a, da := at(theta1)
	for i := 1; i <= n; i++ {
		b, db := at(theta1 + step*float64(i))
		if i == n {
			b = p1
		}
		out = append(out, a.Add(da.Mul(alpha)), b.Sub(db.Mul(alpha)), b)
		a, da = b, db
	}
	return out
}
