package media

import (
	"math"

	"github.com/gogpu/media/internal/pathdata"
)

// kappa places cubic control points for a quarter ellipse:
// 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// RectangleGeometry is an axis-aligned rectangle with optionally rounded
// corners.
type RectangleGeometry struct {
	geometryBase
	rect             Rect
	radiusX, radiusY float64
}

// NewRectangleGeometry returns a rectangle geometry with square corners.
func NewRectangleGeometry(r Rect) *RectangleGeometry {
	g := &RectangleGeometry{rect: r}
	g.self = g
	return g
}

// NewRoundedRectangleGeometry returns a rectangle geometry whose corners are
// quarter ellipses with radii rx and ry.
func NewRoundedRectangleGeometry(r Rect, rx, ry float64) *RectangleGeometry {
	g := NewRectangleGeometry(r)
	g.radiusX, g.radiusY = rx, ry
	return g
}

// Rect returns the rectangle.
func (g *RectangleGeometry) Rect() Rect { return g.rect }

// SetRect changes the rectangle.
func (g *RectangleGeometry) SetRect(r Rect) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.rect = r
	return nil
}

// Radii returns the corner radii.
func (g *RectangleGeometry) Radii() (rx, ry float64) { return g.radiusX, g.radiusY }

// SetRadii changes the corner radii.
func (g *RectangleGeometry) SetRadii(rx, ry float64) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.radiusX, g.radiusY = rx, ry
	return nil
}

// rounded reports whether the corners are drawn as arcs, and the radii
// limited to half the size.
func (g *RectangleGeometry) rounded() (rx, ry float64, ok bool) {
	rx = math.Min(math.Abs(g.radiusX), g.rect.Width/2)
	ry = math.Min(math.Abs(g.radiusY), g.rect.Height/2)
	return rx, ry, rx > 0 && ry > 0
}

func (g *RectangleGeometry) obviouslyEmpty() bool { return g.rect.IsEmpty() }

// IsEmpty implements Geometry.
func (g *RectangleGeometry) IsEmpty() bool { return g.rect.IsEmpty() }

// MayHaveCurves implements Geometry.
func (g *RectangleGeometry) MayHaveCurves() bool {
	_, _, ok := g.rounded()
	return ok
}

// Clone implements Geometry.
func (g *RectangleGeometry) Clone() Geometry {
	c := NewRoundedRectangleGeometry(g.rect, g.radiusX, g.radiusY)
	c.transform = g.transform
	return c
}

// PathGeometryData implements Geometry.
func (g *RectangleGeometry) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	d := PathGeometryData{FillRule: FillRuleEvenOdd, Matrix: g.matrix(), SerializedData: pathdata.EmptyBuffer()}
	if g.rect.IsEmpty() {
		return d, nil
	}
	d.SerializedData = pathdata.Encode([]pathdata.Figure{g.figure().encode()})
	return d, nil
}

func (g *RectangleGeometry) figure() *PathFigure {
	r := g.rect
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.Width, r.Y+r.Height
	rx, ry, ok := g.rounded()
	if !ok {
		return NewPathFigure(Pt(x0, y0), true, &PolyLineSegment{
			Points: []Point{Pt(x1, y0), Pt(x1, y1), Pt(x0, y1)},
		})
	}

	kx, ky := rx*kappa, ry*kappa
	return NewPathFigure(Pt(x0+rx, y0), true,
		&LineSegment{Point: Pt(x1-rx, y0)},
		&BezierSegment{Point1: Pt(x1-rx+kx, y0), Point2: Pt(x1, y0+ry-ky), Point3: Pt(x1, y0+ry)},
		&LineSegment{Point: Pt(x1, y1-ry)},
		&BezierSegment{Point1: Pt(x1, y1-ry+ky), Point2: Pt(x1-rx+kx, y1), Point3: Pt(x1-rx, y1)},
		&LineSegment{Point: Pt(x0+rx, y1)},
		&BezierSegment{Point1: Pt(x0+rx-kx, y1), Point2: Pt(x0, y1-ry+ky), Point3: Pt(x0, y1-ry)},
		&LineSegment{Point: Pt(x0, y0+ry)},
		&BezierSegment{Point1: Pt(x0, y0+ry-ky), Point2: Pt(x0+rx-kx, y0), Point3: Pt(x0+rx, y0)},
	)
}

// Area implements Geometry. Rectangles without rounded corners are
// measured directly.
func (g *RectangleGeometry) Area(tol float64, kind ToleranceType) (float64, error) {
	g.readPreamble()
	if g.rect.IsEmpty() {
		return 0, nil
	}
	if _, _, rounded := g.rounded(); rounded {
		return g.geometryBase.Area(tol, kind)
	}
	m := g.matrix()
	a := math.Abs(g.rect.Width * g.rect.Height * (m.A*m.E - m.B*m.D))
	if math.IsNaN(a) || math.IsInf(a, 0) {
		Logger().Debug("geometry: bad number absorbed", "op", "area")
		return 0, nil
	}
	return a, nil
}

// EllipseGeometry is an ellipse given by its center and radii.
type EllipseGeometry struct {
	geometryBase
	center           Point
	radiusX, radiusY float64
}

// NewEllipseGeometry returns an ellipse geometry.
func NewEllipseGeometry(center Point, rx, ry float64) *EllipseGeometry {
	g := &EllipseGeometry{center: center, radiusX: rx, radiusY: ry}
	g.self = g
	return g
}

// Center returns the center point.
func (g *EllipseGeometry) Center() Point { return g.center }

// Radii returns the radii.
func (g *EllipseGeometry) Radii() (rx, ry float64) { return g.radiusX, g.radiusY }

// SetEllipse changes the center and radii.
func (g *EllipseGeometry) SetEllipse(center Point, rx, ry float64) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.center, g.radiusX, g.radiusY = center, rx, ry
	return nil
}

func (g *EllipseGeometry) obviouslyEmpty() bool { return false }

// IsEmpty implements Geometry.
func (g *EllipseGeometry) IsEmpty() bool { return false }

// MayHaveCurves implements Geometry.
func (g *EllipseGeometry) MayHaveCurves() bool { return true }

// Clone implements Geometry.
func (g *EllipseGeometry) Clone() Geometry {
	c := NewEllipseGeometry(g.center, g.radiusX, g.radiusY)
	c.transform = g.transform
	return c
}

// PathGeometryData implements Geometry. The ellipse is four cubic Béziers
// starting at the rightmost point.
func (g *EllipseGeometry) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	cx, cy := g.center.X, g.center.Y
	rx, ry := math.Abs(g.radiusX), math.Abs(g.radiusY)
	ox, oy := rx*kappa, ry*kappa

	f := NewPathFigure(Pt(cx+rx, cy), true, &PolyBezierSegment{Points: []Point{
		Pt(cx+rx, cy+oy), Pt(cx+ox, cy+ry), Pt(cx, cy+ry),
		Pt(cx-ox, cy+ry), Pt(cx-rx, cy+oy), Pt(cx-rx, cy),
		Pt(cx-rx, cy-oy), Pt(cx-ox, cy-ry), Pt(cx, cy-ry),
		Pt(cx+ox, cy-ry), Pt(cx+rx, cy-oy), Pt(cx+rx, cy),
	}})
	return PathGeometryData{
		FillRule:       FillRuleEvenOdd,
		Matrix:         g.matrix(),
		SerializedData: pathdata.Encode([]pathdata.Figure{f.encode()}),
	}, nil
}

// LineGeometry is a single straight line. It has no interior.
type LineGeometry struct {
	geometryBase
	start, end Point
}

// NewLineGeometry returns a line geometry from start to end.
func NewLineGeometry(start, end Point) *LineGeometry {
	g := &LineGeometry{start: start, end: end}
	g.self = g
	return g
}

// Points returns the end points.
func (g *LineGeometry) Points() (start, end Point) { return g.start, g.end }

// SetPoints changes the end points.
func (g *LineGeometry) SetPoints(start, end Point) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.start, g.end = start, end
	return nil
}

func (g *LineGeometry) obviouslyEmpty() bool { return false }

// IsEmpty implements Geometry.
func (g *LineGeometry) IsEmpty() bool { return false }

// MayHaveCurves implements Geometry.
func (g *LineGeometry) MayHaveCurves() bool { return false }

// Clone implements Geometry.
func (g *LineGeometry) Clone() Geometry {
	c := NewLineGeometry(g.start, g.end)
	c.transform = g.transform
	return c
}

// PathGeometryData implements Geometry.
func (g *LineGeometry) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	f := &PathFigure{StartPoint: g.start, Segments: []PathSegment{&LineSegment{Point: g.end}}}
	return PathGeometryData{
		FillRule:       FillRuleEvenOdd,
		Matrix:         g.matrix(),
		SerializedData: pathdata.Encode([]pathdata.Figure{f.encode()}),
	}, nil
}
