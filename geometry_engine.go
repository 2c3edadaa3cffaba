package media

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/media/internal/pathdata"
	"github.com/gogpu/media/internal/stroke"
	"github.com/gogpu/media/internal/tess"
)

// PathSegmentType is the type of a segment reported to a FigureSink.
type PathSegmentType uint8

const (
	// SegmentTypeLine consumes one point.
	SegmentTypeLine PathSegmentType = iota + 1
	// SegmentTypeBezier consumes three points: two control points and the
	// end point of a cubic Bézier.
	SegmentTypeBezier
)

// FigureSink receives the figures produced by a GeometryEngine.
//
// points[0] is the start of the figure; each entry of types consumes the
// next one or three points. The slices are only valid during the call.
type FigureSink interface {
	AddFigure(points []Point, types []PathSegmentType, closed bool)
}

// FigureSinkFunc adapts a function to the FigureSink interface.
type FigureSinkFunc func(points []Point, types []PathSegmentType, closed bool)

// AddFigure implements FigureSink.
func (f FigureSinkFunc) AddFigure(points []Point, types []PathSegmentType, closed bool) {
	f(points, types, closed)
}

// GeometryEngine is the tessellation core behind geometry queries.
//
// Every call receives engine-ready path data and a flattening tolerance.
// A pen passed to Bounds, HitTest or HitTestGeometry means the stroke
// region is queried instead of the fill. Implementations return an error
// wrapping ErrBadNumber when they meet NaN or infinite values; geometry
// queries turn it into an empty result. Any other error is returned to the
// caller of the query.
//
// Implementations must be safe for concurrent use.
type GeometryEngine interface {
	Bounds(data PathGeometryData, pen *Pen, tol float64, kind ToleranceType) (Rect, error)
	Area(data PathGeometryData, tol float64, kind ToleranceType) (float64, error)
	HitTest(data PathGeometryData, pen *Pen, pt Point, tol float64, kind ToleranceType) (bool, error)
	HitTestGeometry(data PathGeometryData, pen *Pen, other PathGeometryData, tol float64, kind ToleranceType) (IntersectionDetail, error)
	Flatten(data PathGeometryData, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error)
	Widen(data PathGeometryData, pen *Pen, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error)
	Outline(data PathGeometryData, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error)
	Combine(a, b PathGeometryData, mode GeometryCombineMode, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error)
}

type engineBox struct{ GeometryEngine }

var enginePtr atomic.Pointer[engineBox]

func init() {
	enginePtr.Store(&engineBox{tessEngine{}})
}

// SetGeometryEngine sets the process-wide geometry engine.
// Pass nil to restore the built-in engine.
//
// SetGeometryEngine is safe for concurrent use.
func SetGeometryEngine(e GeometryEngine) {
	if e == nil {
		e = tessEngine{}
	}
	enginePtr.Store(&engineBox{e})
	propagateLogger(e, Logger())
	Logger().Debug("geometry engine replaced", "engine", fmt.Sprintf("%T", e))
}

func geometryEngine() GeometryEngine {
	return enginePtr.Load().GeometryEngine
}

// figureCollector builds path figures from engine output.
type figureCollector struct {
	figures []*PathFigure
}

func (c *figureCollector) AddFigure(points []Point, types []PathSegmentType, closed bool) {
	if len(points) == 0 {
		return
	}
	f := &PathFigure{StartPoint: points[0], IsClosed: closed, IsFilled: true}
	i := 1
	for k := 0; k < len(types); {
		t := types[k]
		per := 1
		if t == SegmentTypeBezier {
			per = 3
		}
		// Runs of one type become one segment.
		n := 0
		for k < len(types) && types[k] == t && i+(n+1)*per <= len(points) {
			n++
			k++
		}
		if n == 0 {
			break
		}
		run := append([]Point(nil), points[i:i+n*per]...)
		i += n * per
		if t == SegmentTypeBezier {
			f.Segments = append(f.Segments, &PolyBezierSegment{Points: run})
		} else {
			f.Segments = append(f.Segments, &PolyLineSegment{Points: run})
		}
	}
	c.figures = append(c.figures, f)
}

// transformSink maps every reported point through m.
type transformSink struct {
	m    Matrix
	next FigureSink
}

func (s transformSink) AddFigure(points []Point, types []PathSegmentType, closed bool) {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = s.m.TransformPoint(p)
	}
	s.next.AddFigure(out, types, closed)
}

// tessEngine is the built-in engine.
type tessEngine struct{}

func tessPath(d PathGeometryData) tess.Path {
	return tess.Path{
		Data:     d.SerializedData,
		Matrix:   d.Matrix.aff3(),
		FillRule: pathdata.FillRule(d.FillRule),
	}
}

func tessTolerance(tol float64, kind ToleranceType) tess.Tolerance {
	return tess.Tolerance{Value: tol, Relative: kind == ToleranceRelative}
}

func tessStyle(pen *Pen) *stroke.Style {
	if pen == nil {
		return nil
	}
	s := pen.strokeStyle()
	return &s
}

func tessError(err error) error {
	if errors.Is(err, tess.ErrBadNumber) {
		return fmt.Errorf("%w: %w", ErrBadNumber, err)
	}
	return err
}

func emitTo(sink FigureSink) func(tess.Figure) {
	return func(f tess.Figure) {
		if len(f.Points) == 0 {
			return
		}
		pts := make([]Point, len(f.Points))
		for i, p := range f.Points {
			pts[i] = Point{X: p.X, Y: p.Y}
		}
		types := make([]PathSegmentType, len(pts)-1)
		for i := range types {
			types[i] = SegmentTypeLine
		}
		sink.AddFigure(pts, types, f.Closed)
	}
}

func (tessEngine) Bounds(data PathGeometryData, pen *Pen, tol float64, kind ToleranceType) (Rect, error) {
	r, ok, err := tess.Bounds(tessPath(data), tessStyle(pen), tessTolerance(tol, kind))
	if err != nil {
		return EmptyRect(), tessError(err)
	}
	if !ok {
		return EmptyRect(), nil
	}
	return Rect{X: r.MinX, Y: r.MinY, Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY}, nil
}

func (tessEngine) Area(data PathGeometryData, tol float64, kind ToleranceType) (float64, error) {
	a, err := tess.Area(tessPath(data), tessTolerance(tol, kind))
	return a, tessError(err)
}

func (tessEngine) HitTest(data PathGeometryData, pen *Pen, pt Point, tol float64, kind ToleranceType) (bool, error) {
	hit, err := tess.HitTest(tessPath(data), tessStyle(pen), tess.Point{X: pt.X, Y: pt.Y}, tessTolerance(tol, kind))
	return hit, tessError(err)
}

func (tessEngine) HitTestGeometry(data PathGeometryData, pen *Pen, other PathGeometryData, tol float64, kind ToleranceType) (IntersectionDetail, error) {
	d, err := tess.HitTestGeometry(tessPath(data), tessStyle(pen), tessPath(other), tessTolerance(tol, kind))
	return IntersectionDetail(d), tessError(err)
}

func (tessEngine) Flatten(data PathGeometryData, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error) {
	rule, err := tess.Flatten(tessPath(data), tessTolerance(tol, kind), emitTo(sink))
	return FillRule(rule), tessError(err)
}

func (tessEngine) Widen(data PathGeometryData, pen *Pen, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error) {
	rule, err := tess.Widen(tessPath(data), pen.strokeStyle(), tessTolerance(tol, kind), emitTo(sink))
	return FillRule(rule), tessError(err)
}

func (tessEngine) Outline(data PathGeometryData, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error) {
	rule, err := tess.Outline(tessPath(data), tessTolerance(tol, kind), emitTo(sink))
	return FillRule(rule), tessError(err)
}

func (tessEngine) Combine(a, b PathGeometryData, mode GeometryCombineMode, tol float64, kind ToleranceType, sink FigureSink) (FillRule, error) {
	rule, err := tess.Combine(tessPath(a), tessPath(b), tess.CombineMode(mode), tessTolerance(tol, kind), emitTo(sink))
	return FillRule(rule), tessError(err)
}
