package media

import (
	"errors"
	"fmt"

	"github.com/gogpu/media/internal/pathdata"
)

// FillRule selects how the interior of a geometry is determined.
type FillRule int

const (
	// FillRuleEvenOdd fills a point when a ray from it crosses the outline
	// an odd number of times.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonzero fills a point when the winding number is not zero.
	FillRuleNonzero
)

// String returns the fill rule name.
func (r FillRule) String() string {
	if r == FillRuleNonzero {
		return "Nonzero"
	}
	return "EvenOdd"
}

// ToleranceType says how a flattening tolerance is interpreted.
type ToleranceType int

const (
	// ToleranceAbsolute is a distance in the geometry's units.
	ToleranceAbsolute ToleranceType = iota
	// ToleranceRelative is a fraction of the geometry's extent.
	ToleranceRelative
)

// DefaultFlatteningTolerance is the absolute tolerance used by queries that
// do not take one.
const DefaultFlatteningTolerance = 0.25

// IntersectionDetail classifies how two geometries relate.
type IntersectionDetail int

const (
	IntersectionNotCalculated IntersectionDetail = iota
	// IntersectionEmpty means the geometries do not overlap.
	IntersectionEmpty
	// IntersectionFullyInside means the receiver lies inside the argument.
	IntersectionFullyInside
	// IntersectionFullyContains means the receiver contains the argument.
	IntersectionFullyContains
	// IntersectionIntersects means the geometries overlap partially.
	IntersectionIntersects
)

// String returns the detail name.
func (d IntersectionDetail) String() string {
	switch d {
	case IntersectionEmpty:
		return "Empty"
	case IntersectionFullyInside:
		return "FullyInside"
	case IntersectionFullyContains:
		return "FullyContains"
	case IntersectionIntersects:
		return "Intersects"
	default:
		return "NotCalculated"
	}
}

// GeometryCombineMode is the boolean operation of Combine.
type GeometryCombineMode int

const (
	CombineUnion GeometryCombineMode = iota
	CombineIntersect
	CombineXor
	CombineExclude
)

// String returns the mode name.
func (m GeometryCombineMode) String() string {
	switch m {
	case CombineIntersect:
		return "Intersect"
	case CombineXor:
		return "Xor"
	case CombineExclude:
		return "Exclude"
	default:
		return "Union"
	}
}

// PathGeometryData is the engine-ready form of a geometry: the packed figure
// buffer in local coordinates, the matrix that maps them to world
// coordinates, and the fill rule.
type PathGeometryData struct {
	FillRule       FillRule
	Matrix         Matrix
	SerializedData []byte
}

// IsEmpty reports whether the buffer holds no figures.
func (d PathGeometryData) IsEmpty() bool {
	return pathdata.IsEmpty(d.SerializedData)
}

func emptyPathGeometryData() PathGeometryData {
	return PathGeometryData{Matrix: Identity(), SerializedData: pathdata.EmptyBuffer()}
}

// Geometry is a 2D shape with an optional transform.
//
// Geometry is implemented by *PathGeometry, *RectangleGeometry,
// *EllipseGeometry, *LineGeometry, *GeometryGroup and *CombinedGeometry.
// Queries never modify the geometry. A frozen geometry rejects changes with
// ErrFrozen and may be queried from several goroutines at once.
//
// Queries whose geometry contains NaN or infinite values return their empty
// result: an empty rectangle, zero, false, or an empty *PathGeometry.
type Geometry interface {
	// PathGeometryData serializes the geometry with its transform.
	PathGeometryData() (PathGeometryData, error)

	// IsEmpty reports whether the geometry has no figures with points.
	IsEmpty() bool

	// MayHaveCurves reports whether the geometry may contain curved
	// segments.
	MayHaveCurves() bool

	Transform() Transform
	SetTransform(t Transform) error

	Freeze()
	IsFrozen() bool

	// Clone returns an unfrozen deep copy.
	Clone() Geometry

	// Bounds returns the world bounds of the fill.
	Bounds() (Rect, error)
	// RenderBounds returns the world bounds including the stroke of pen.
	RenderBounds(pen *Pen, tol float64, kind ToleranceType) (Rect, error)
	// Area returns the filled area.
	Area(tol float64, kind ToleranceType) (float64, error)
	// FillContains reports whether pt is inside the fill.
	FillContains(pt Point, tol float64, kind ToleranceType) (bool, error)
	// StrokeContains reports whether pt is inside the stroke of pen.
	StrokeContains(pen *Pen, pt Point, tol float64, kind ToleranceType) (bool, error)
	// FillContainsWithDetail compares the fill with the fill of g.
	FillContainsWithDetail(g Geometry, tol float64, kind ToleranceType) (IntersectionDetail, error)
	// StrokeContainsWithDetail compares the stroke of pen with the fill of g.
	StrokeContainsWithDetail(pen *Pen, g Geometry, tol float64, kind ToleranceType) (IntersectionDetail, error)
	// FlattenedPathGeometry approximates curves with lines.
	FlattenedPathGeometry(tol float64, kind ToleranceType) (*PathGeometry, error)
	// WidenedPathGeometry returns the outline of the stroke of pen.
	WidenedPathGeometry(pen *Pen, tol float64, kind ToleranceType) (*PathGeometry, error)
	// OutlinedPathGeometry returns an equivalent fill made of
	// non-intersecting loops.
	OutlinedPathGeometry(tol float64, kind ToleranceType) (*PathGeometry, error)
	// TransformedCopy returns an unfrozen copy with t applied after the
	// geometry's own transform.
	TransformedCopy(t Transform) Geometry

	// obviouslyEmpty reports emptiness that is known without serializing.
	obviouslyEmpty() bool
	base() *geometryBase
}

// geometryBase implements the shared part of Geometry. Each concrete type
// embeds it and sets self in its constructor.
type geometryBase struct {
	self      Geometry
	transform Transform
	frozen    bool
}

func (g *geometryBase) base() *geometryBase { return g }

// readPreamble guards every query.
func (g *geometryBase) readPreamble() {
	if g.self == nil {
		panic("media: geometry used without its constructor")
	}
}

// writePreamble guards every change.
func (g *geometryBase) writePreamble() error {
	g.readPreamble()
	if g.frozen {
		return ErrFrozen
	}
	return nil
}

// Transform returns the geometry's transform, which may be nil.
func (g *geometryBase) Transform() Transform {
	return g.transform
}

// SetTransform sets the transform applied to the geometry.
func (g *geometryBase) SetTransform(t Transform) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.transform = t
	return nil
}

// Freeze makes the geometry read-only.
func (g *geometryBase) Freeze() {
	g.frozen = true
}

// IsFrozen reports whether the geometry is read-only.
func (g *geometryBase) IsFrozen() bool {
	return g.frozen
}

// matrix returns the value of the transform.
func (g *geometryBase) matrix() Matrix {
	return transformValue(g.transform)
}

// IsEmpty reports whether the serialized geometry has no figures.
func (g *geometryBase) IsEmpty() bool {
	g.readPreamble()
	if g.self.obviouslyEmpty() {
		return true
	}
	data, err := g.self.PathGeometryData()
	return err != nil || data.IsEmpty()
}

// queryData runs the preamble shared by all queries. ok is false when the
// query should return its empty result.
func (g *geometryBase) queryData() (data PathGeometryData, ok bool, err error) {
	g.readPreamble()
	if g.self.obviouslyEmpty() {
		return PathGeometryData{}, false, nil
	}
	data, err = g.self.PathGeometryData()
	if err != nil {
		return PathGeometryData{}, false, err
	}
	if data.IsEmpty() {
		return PathGeometryData{}, false, nil
	}
	return data, true, nil
}

// operandData returns the data of a query argument, or ok == false when the
// argument is nil or empty.
func operandData(g Geometry) (data PathGeometryData, ok bool, err error) {
	if g == nil {
		return PathGeometryData{}, false, nil
	}
	return g.base().queryData()
}

// engineResult converts an engine error for the query op. Bad numbers
// become a nil error so the caller returns its empty result.
func engineResult(op string, err error) error {
	if errors.Is(err, ErrBadNumber) {
		Logger().Debug("geometry: bad number absorbed", "op", op)
		return nil
	}
	return fmt.Errorf("geometry %s: %w", op, err)
}

// strokePen returns pen, or nil when the pen draws nothing.
func strokePen(pen *Pen) *Pen {
	if pen.IsTrivial() {
		return nil
	}
	return pen
}

// Bounds implements Geometry.
func (g *geometryBase) Bounds() (Rect, error) {
	return g.RenderBounds(nil, DefaultFlatteningTolerance, ToleranceAbsolute)
}

// RenderBounds implements Geometry. A pen without a brush or thickness does
// not contribute.
func (g *geometryBase) RenderBounds(pen *Pen, tol float64, kind ToleranceType) (Rect, error) {
	data, ok, err := g.queryData()
	if !ok {
		return EmptyRect(), err
	}
	r, err := geometryEngine().Bounds(data, strokePen(pen), tol, kind)
	if err != nil {
		return EmptyRect(), engineResult("bounds", err)
	}
	return r, nil
}

// Area implements Geometry.
func (g *geometryBase) Area(tol float64, kind ToleranceType) (float64, error) {
	data, ok, err := g.queryData()
	if !ok {
		return 0, err
	}
	a, err := geometryEngine().Area(data, tol, kind)
	if err != nil {
		return 0, engineResult("area", err)
	}
	return a, nil
}

// FillContains implements Geometry.
func (g *geometryBase) FillContains(pt Point, tol float64, kind ToleranceType) (bool, error) {
	return g.contains(nil, pt, tol, kind)
}

// StrokeContains implements Geometry. A nil or trivial pen contains nothing.
func (g *geometryBase) StrokeContains(pen *Pen, pt Point, tol float64, kind ToleranceType) (bool, error) {
	if pen.IsTrivial() {
		g.readPreamble()
		return false, nil
	}
	return g.contains(pen, pt, tol, kind)
}

func (g *geometryBase) contains(pen *Pen, pt Point, tol float64, kind ToleranceType) (bool, error) {
	data, ok, err := g.queryData()
	if !ok {
		return false, err
	}
	hit, err := geometryEngine().HitTest(data, pen, pt, tol, kind)
	if err != nil {
		return false, engineResult("hit test", err)
	}
	return hit, nil
}

// FillContainsWithDetail implements Geometry.
func (g *geometryBase) FillContainsWithDetail(other Geometry, tol float64, kind ToleranceType) (IntersectionDetail, error) {
	return g.containsWithDetail(nil, other, tol, kind)
}

// StrokeContainsWithDetail implements Geometry. A nil or trivial pen gives
// IntersectionEmpty.
func (g *geometryBase) StrokeContainsWithDetail(pen *Pen, other Geometry, tol float64, kind ToleranceType) (IntersectionDetail, error) {
	if pen.IsTrivial() {
		g.readPreamble()
		return IntersectionEmpty, nil
	}
	return g.containsWithDetail(pen, other, tol, kind)
}

func (g *geometryBase) containsWithDetail(pen *Pen, other Geometry, tol float64, kind ToleranceType) (IntersectionDetail, error) {
	data, ok, err := g.queryData()
	if !ok {
		return IntersectionEmpty, err
	}
	otherData, ok, err := operandData(other)
	if !ok {
		return IntersectionEmpty, err
	}
	d, err := geometryEngine().HitTestGeometry(data, pen, otherData, tol, kind)
	if err != nil {
		return IntersectionEmpty, engineResult("hit test geometry", err)
	}
	return d, nil
}

// FlattenedPathGeometry implements Geometry. The result keeps the fill rule.
func (g *geometryBase) FlattenedPathGeometry(tol float64, kind ToleranceType) (*PathGeometry, error) {
	data, ok, err := g.queryData()
	if !ok {
		return NewPathGeometry(), err
	}
	return collectFigures("flatten", func(sink FigureSink) (FillRule, error) {
		return geometryEngine().Flatten(data, tol, kind, sink)
	})
}

// WidenedPathGeometry implements Geometry. A nil pen returns ErrNilPen.
func (g *geometryBase) WidenedPathGeometry(pen *Pen, tol float64, kind ToleranceType) (*PathGeometry, error) {
	if pen == nil {
		return nil, ErrNilPen
	}
	data, ok, err := g.queryData()
	if !ok {
		return NewPathGeometry(), err
	}
	return collectFigures("widen", func(sink FigureSink) (FillRule, error) {
		return geometryEngine().Widen(data, pen, tol, kind, sink)
	})
}

// OutlinedPathGeometry implements Geometry.
func (g *geometryBase) OutlinedPathGeometry(tol float64, kind ToleranceType) (*PathGeometry, error) {
	data, ok, err := g.queryData()
	if !ok {
		return NewPathGeometry(), err
	}
	return collectFigures("outline", func(sink FigureSink) (FillRule, error) {
		return geometryEngine().Outline(data, tol, kind, sink)
	})
}

// TransformedCopy implements Geometry.
func (g *geometryBase) TransformedCopy(t Transform) Geometry {
	g.readPreamble()
	c := g.self.Clone()
	cb := c.base()
	switch {
	case isIdentityTransform(t):
	case isIdentityTransform(cb.transform):
		cb.transform = t
	default:
		cb.transform = TransformGroup{cb.transform, t}
	}
	return c
}

// collectFigures runs an engine call that reports figures and packages them
// in a new geometry. A bad number gives an empty geometry.
func collectFigures(op string, run func(FigureSink) (FillRule, error)) (*PathGeometry, error) {
	b := &figureCollector{}
	rule, err := run(b)
	if err != nil {
		if err = engineResult(op, err); err != nil {
			return nil, err
		}
		return NewPathGeometry(), nil
	}
	pg := NewPathGeometry(b.figures...)
	pg.fillRule = rule
	return pg, nil
}

// Combine returns the boolean combination of the fills of g1 and g2 with
// transform applied to the result. A nil geometry counts as empty.
func Combine(g1, g2 Geometry, mode GeometryCombineMode, transform Transform, tol float64, kind ToleranceType) (*PathGeometry, error) {
	if combineObviouslyEmpty(g1, g2, mode) {
		return NewPathGeometry(), nil
	}
	d1, err := combineOperand(g1)
	if err != nil {
		return nil, err
	}
	d2, err := combineOperand(g2)
	if err != nil {
		return nil, err
	}
	m := transformValue(transform)
	return collectFigures("combine", func(sink FigureSink) (FillRule, error) {
		if !m.IsIdentity() {
			sink = transformSink{m: m, next: sink}
		}
		return geometryEngine().Combine(d1, d2, mode, tol, kind, sink)
	})
}

func combineOperand(g Geometry) (PathGeometryData, error) {
	data, ok, err := operandData(g)
	if err != nil {
		return PathGeometryData{}, err
	}
	if !ok {
		return emptyPathGeometryData(), nil
	}
	return data, nil
}

func isObviouslyEmpty(g Geometry) bool {
	if g == nil {
		return true
	}
	g.base().readPreamble()
	return g.obviouslyEmpty()
}

// combineObviouslyEmpty reports whether the combination is empty because of
// empty operands alone.
func combineObviouslyEmpty(g1, g2 Geometry, mode GeometryCombineMode) bool {
	e1, e2 := isObviouslyEmpty(g1), isObviouslyEmpty(g2)
	switch mode {
	case CombineIntersect:
		return e1 || e2
	case CombineExclude:
		return e1
	default:
		return e1 && e2
	}
}

var emptyGeometry = func() *PathGeometry {
	g := NewPathGeometry()
	g.Freeze()
	return g
}()

// EmptyGeometry returns the shared frozen geometry with no figures.
func EmptyGeometry() Geometry {
	return emptyGeometry
}
