package media

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// countingEngine forwards to the built-in engine and counts calls.
type countingEngine struct {
	tessEngine
	calls atomic.Int32
}

func (e *countingEngine) Bounds(d PathGeometryData, pen *Pen, tol float64, k ToleranceType) (Rect, error) {
	e.calls.Add(1)
	return e.tessEngine.Bounds(d, pen, tol, k)
}

func (e *countingEngine) Area(d PathGeometryData, tol float64, k ToleranceType) (float64, error) {
	e.calls.Add(1)
	return e.tessEngine.Area(d, tol, k)
}

func (e *countingEngine) HitTest(d PathGeometryData, pen *Pen, pt Point, tol float64, k ToleranceType) (bool, error) {
	e.calls.Add(1)
	return e.tessEngine.HitTest(d, pen, pt, tol, k)
}

func (e *countingEngine) Combine(a, b PathGeometryData, m GeometryCombineMode, tol float64, k ToleranceType, s FigureSink) (FillRule, error) {
	e.calls.Add(1)
	return e.tessEngine.Combine(a, b, m, tol, k, s)
}

func useEngine(t *testing.T, e GeometryEngine) {
	t.Helper()
	SetGeometryEngine(e)
	t.Cleanup(func() { SetGeometryEngine(nil) })
}

func square(x, y, size float64) *PathGeometry {
	return NewPathGeometry(NewPathFigure(Pt(x, y), true, &PolyLineSegment{
		Points: []Point{Pt(x+size, y), Pt(x+size, y+size), Pt(x, y+size)},
	}))
}

func blackPen(thickness float64) *Pen {
	return NewPen(NewSolidColorBrush(FromRgb(0, 0, 0)), thickness)
}

var rectOpts = cmpopts.EquateApprox(0, 1e-9)

func TestEmptyGeometryShortCircuits(t *testing.T) {
	e := &countingEngine{}
	useEngine(t, e)

	empties := map[string]Geometry{
		"EmptyGeometry":  EmptyGeometry(),
		"path":           NewPathGeometry(),
		"empty rect":     NewRectangleGeometry(EmptyRect()),
		"group":          NewGeometryGroup(),
		"intersect none": NewCombinedGeometry(CombineIntersect, square(0, 0, 10), nil),
	}
	for name, g := range empties {
		t.Run(name, func(t *testing.T) {
			if a, err := g.Area(DefaultFlatteningTolerance, ToleranceAbsolute); err != nil || a != 0 {
				t.Errorf("Area() = %v, %v; want 0, nil", a, err)
			}
			if hit, err := g.FillContains(Pt(1, 1), DefaultFlatteningTolerance, ToleranceAbsolute); err != nil || hit {
				t.Errorf("FillContains() = %v, %v; want false, nil", hit, err)
			}
			b, err := g.Bounds()
			if err != nil || !b.IsEmpty() {
				t.Errorf("Bounds() = %v, %v; want empty", b, err)
			}
			if !g.IsEmpty() {
				t.Error("IsEmpty() = false")
			}
		})
	}
	if n := e.calls.Load(); n != 0 {
		t.Errorf("engine called %d times for empty geometries", n)
	}
}

func TestEmptyGeometryIsFrozen(t *testing.T) {
	g := EmptyGeometry()
	if !g.IsFrozen() {
		t.Fatal("EmptyGeometry() is not frozen")
	}
	if err := g.SetTransform(TranslateTransform{X: 1}); !errors.Is(err, ErrFrozen) {
		t.Errorf("SetTransform on frozen geometry = %v, want ErrFrozen", err)
	}
	if EmptyGeometry() != g {
		t.Error("EmptyGeometry() returned a different instance")
	}
}

func TestFrozenGeometryRejectsChanges(t *testing.T) {
	rect := NewRectangleGeometry(Rect{Width: 1, Height: 1})
	path := square(0, 0, 1)
	group := NewGeometryGroup(path)
	group.Freeze()
	rect.Freeze()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"rect SetRect", func() error { return rect.SetRect(Rect{}) }},
		{"rect SetTransform", func() error { return rect.SetTransform(nil) }},
		{"path AddFigure", func() error { return path.AddFigure(NewPathFigure(Point{}, false)) }},
		{"path SetFillRule", func() error { return path.SetFillRule(FillRuleNonzero) }},
		{"group AddChild", func() error { return group.AddChild(square(0, 0, 1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrFrozen) {
				t.Errorf("got %v, want ErrFrozen", err)
			}
		})
	}

	clone := rect.Clone()
	if clone.IsFrozen() {
		t.Error("Clone() of frozen geometry is frozen")
	}
	if err := clone.SetTransform(TranslateTransform{X: 1}); err != nil {
		t.Errorf("SetTransform on clone: %v", err)
	}
}

func TestGeometryBadNumberGivesEmptyResult(t *testing.T) {
	g := NewPathGeometry(NewPathFigure(Pt(0, 0), true, &PolyLineSegment{
		Points: []Point{Pt(math.NaN(), 0), Pt(10, 10), Pt(0, 10)},
	}))
	tol, kind := DefaultFlatteningTolerance, ToleranceAbsolute

	flat, err := g.FlattenedPathGeometry(tol, kind)
	if err != nil {
		t.Fatalf("FlattenedPathGeometry: %v", err)
	}
	if flat.FigureCount() != 0 {
		t.Errorf("FlattenedPathGeometry figures = %d, want 0", flat.FigureCount())
	}
	if a, err := g.Area(tol, kind); err != nil || a != 0 {
		t.Errorf("Area() = %v, %v; want 0, nil", a, err)
	}
	if b, err := g.Bounds(); err != nil || !b.IsEmpty() {
		t.Errorf("Bounds() = %v, %v; want empty", b, err)
	}
	if hit, err := g.FillContains(Pt(1, 1), tol, kind); err != nil || hit {
		t.Errorf("FillContains() = %v, %v; want false, nil", hit, err)
	}

	inf := square(0, 0, 10)
	if err := inf.SetTransform(ScaleTransform{ScaleX: math.Inf(1), ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	if a, err := inf.Area(tol, kind); err != nil || a != 0 {
		t.Errorf("Area() with infinite transform = %v, %v; want 0, nil", a, err)
	}
}

func TestWidenedPathGeometryNilPen(t *testing.T) {
	_, err := square(0, 0, 10).WidenedPathGeometry(nil, DefaultFlatteningTolerance, ToleranceAbsolute)
	if !errors.Is(err, ErrNilPen) || !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WidenedPathGeometry(nil) = %v, want ErrNilPen", err)
	}
}

func TestTrivialPen(t *testing.T) {
	g := square(0, 0, 10)
	tol, kind := DefaultFlatteningTolerance, ToleranceAbsolute
	pens := map[string]*Pen{
		"nil":      nil,
		"no brush": NewPen(nil, 2),
		"zero":     blackPen(0),
		"NaN":      blackPen(math.NaN()),
	}
	for name, pen := range pens {
		t.Run(name, func(t *testing.T) {
			if hit, err := g.StrokeContains(pen, Pt(0, 5), tol, kind); err != nil || hit {
				t.Errorf("StrokeContains() = %v, %v; want false, nil", hit, err)
			}
			d, err := g.StrokeContainsWithDetail(pen, square(0, 0, 1), tol, kind)
			if err != nil || d != IntersectionEmpty {
				t.Errorf("StrokeContainsWithDetail() = %v, %v; want Empty", d, err)
			}
			b, err := g.RenderBounds(pen, tol, kind)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(Rect{Width: 10, Height: 10}, b, rectOpts); diff != "" {
				t.Errorf("RenderBounds() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeometryQueries(t *testing.T) {
	g := square(0, 0, 10)
	tol, kind := DefaultFlatteningTolerance, ToleranceAbsolute

	a, err := g.Area(tol, kind)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-100) > 1e-9 {
		t.Errorf("Area() = %v, want 100", a)
	}

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(15, 5), false},
		{Pt(-1, -1), false},
	}
	for _, tt := range tests {
		hit, err := g.FillContains(tt.pt, tol, kind)
		if err != nil {
			t.Fatal(err)
		}
		if hit != tt.want {
			t.Errorf("FillContains(%v) = %v, want %v", tt.pt, hit, tt.want)
		}
	}

	pen := blackPen(2)
	if hit, _ := g.StrokeContains(pen, Pt(0, 5), tol, kind); !hit {
		t.Error("StrokeContains on the edge = false")
	}
	if hit, _ := g.StrokeContains(pen, Pt(5, 5), tol, kind); hit {
		t.Error("StrokeContains at the center = true")
	}

	rb, err := g.RenderBounds(pen, tol, kind)
	if err != nil {
		t.Fatal(err)
	}
	if rb.X > -1+1e-9 || rb.Right() < 11-1e-9 {
		t.Errorf("RenderBounds() = %v, want at least [-1, 11]", rb)
	}
}

func TestGeometryContainsWithDetail(t *testing.T) {
	big := square(0, 0, 10)
	tol, kind := DefaultFlatteningTolerance, ToleranceAbsolute
	tests := []struct {
		name  string
		other Geometry
		want  IntersectionDetail
	}{
		{"contains", square(2, 2, 2), IntersectionFullyContains},
		{"inside", square(-5, -5, 20), IntersectionFullyInside},
		{"disjoint", square(20, 20, 5), IntersectionEmpty},
		{"overlap", square(5, 5, 10), IntersectionIntersects},
		{"nil", nil, IntersectionEmpty},
		{"empty", EmptyGeometry(), IntersectionEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := big.FillContainsWithDetail(tt.other, tol, kind)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FillContainsWithDetail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeometryTransform(t *testing.T) {
	g := square(0, 0, 10)
	if err := g.SetTransform(TranslateTransform{X: 100, Y: 50}); err != nil {
		t.Fatal(err)
	}
	b, err := g.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Rect{X: 100, Y: 50, Width: 10, Height: 10}, b, rectOpts); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}

	c := g.TransformedCopy(ScaleTransform{ScaleX: 2, ScaleY: 2})
	b, err = c.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	// The copy scales after translating.
	if diff := cmp.Diff(Rect{X: 200, Y: 100, Width: 20, Height: 20}, b, rectOpts); diff != "" {
		t.Errorf("TransformedCopy Bounds() mismatch (-want +got):\n%s", diff)
	}
	if c.IsFrozen() {
		t.Error("TransformedCopy is frozen")
	}
	if _, ok := g.Transform().(TranslateTransform); !ok {
		t.Errorf("original transform changed to %T", g.Transform())
	}
}

func TestFlattenedPathGeometry(t *testing.T) {
	e := NewEllipseGeometry(Pt(0, 0), 10, 10)
	flat, err := e.FlattenedPathGeometry(0.01, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	if flat.MayHaveCurves() {
		t.Error("flattened geometry has curves")
	}
	if flat.FillRule() != FillRuleEvenOdd {
		t.Errorf("FillRule = %v, want EvenOdd", flat.FillRule())
	}
	a, err := flat.Area(0.01, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Pi * 100; math.Abs(a-want)/want > 0.01 {
		t.Errorf("flattened circle area = %v, want about %v", a, want)
	}
}

func TestWidenedPathGeometry(t *testing.T) {
	line := NewLineGeometry(Pt(0, 0), Pt(10, 0))
	w, err := line.WidenedPathGeometry(blackPen(2), DefaultFlatteningTolerance, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	if w.FillRule() != FillRuleNonzero {
		t.Errorf("FillRule = %v, want Nonzero", w.FillRule())
	}
	a, err := w.Area(DefaultFlatteningTolerance, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-20) > 1e-6 {
		t.Errorf("widened line area = %v, want 20", a)
	}
}

func TestCombine(t *testing.T) {
	a, b := square(0, 0, 10), square(5, 5, 10)
	tests := []struct {
		mode GeometryCombineMode
		want float64
	}{
		{CombineUnion, 175},
		{CombineIntersect, 25},
		{CombineXor, 150},
		{CombineExclude, 75},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			pg, err := Combine(a, b, tt.mode, nil, DefaultFlatteningTolerance, ToleranceAbsolute)
			if err != nil {
				t.Fatal(err)
			}
			got, err := pg.Area(DefaultFlatteningTolerance, ToleranceAbsolute)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombineSymmetric(t *testing.T) {
	a, b := square(0, 0, 10), NewEllipseGeometry(Pt(10, 5), 4, 8)
	points := []Point{Pt(1, 1), Pt(9, 5), Pt(12, 5), Pt(10, 12), Pt(20, 20)}
	for _, mode := range []GeometryCombineMode{CombineUnion, CombineXor} {
		t.Run(mode.String(), func(t *testing.T) {
			ab, err := Combine(a, b, mode, nil, 0.1, ToleranceAbsolute)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := Combine(b, a, mode, nil, 0.1, ToleranceAbsolute)
			if err != nil {
				t.Fatal(err)
			}
			for _, pt := range points {
				h1, _ := ab.FillContains(pt, 0.1, ToleranceAbsolute)
				h2, _ := ba.FillContains(pt, 0.1, ToleranceAbsolute)
				if h1 != h2 {
					t.Errorf("coverage at %v: %v vs %v", pt, h1, h2)
				}
			}
		})
	}
}

func TestCombineObviouslyEmpty(t *testing.T) {
	e := &countingEngine{}
	useEngine(t, e)

	sq := square(0, 0, 10)
	tests := []struct {
		name   string
		g1, g2 Geometry
		mode   GeometryCombineMode
	}{
		{"union of empties", nil, EmptyGeometry(), CombineUnion},
		{"intersect with nil", sq, nil, CombineIntersect},
		{"exclude from empty", NewPathGeometry(), sq, CombineExclude},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, err := Combine(tt.g1, tt.g2, tt.mode, nil, DefaultFlatteningTolerance, ToleranceAbsolute)
			if err != nil {
				t.Fatal(err)
			}
			if pg.FigureCount() != 0 {
				t.Errorf("FigureCount() = %d, want 0", pg.FigureCount())
			}
		})
	}
	if n := e.calls.Load(); n != 0 {
		t.Errorf("engine called %d times", n)
	}
}

func TestCombineTransform(t *testing.T) {
	pg, err := Combine(square(0, 0, 10), nil, CombineUnion, TranslateTransform{X: 5}, DefaultFlatteningTolerance, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	b, err := pg.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Rect{X: 5, Width: 10, Height: 10}, b, rectOpts); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
	if pg.Transform() != nil {
		t.Errorf("result transform = %v, want nil", pg.Transform())
	}
}

func TestEngineErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	useEngine(t, failingEngine{err: boom})

	_, err := square(0, 0, 1).Area(DefaultFlatteningTolerance, ToleranceAbsolute)
	if !errors.Is(err, boom) {
		t.Errorf("Area() error = %v, want boom", err)
	}
}

type failingEngine struct {
	tessEngine
	err error
}

func (e failingEngine) Area(PathGeometryData, float64, ToleranceType) (float64, error) {
	return 0, e.err
}

func TestFigureCollectorGroupsRuns(t *testing.T) {
	var c figureCollector
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 1), Pt(4, 1), Pt(5, 0), Pt(6, 0)}
	types := []PathSegmentType{SegmentTypeLine, SegmentTypeLine, SegmentTypeBezier, SegmentTypeLine}
	c.AddFigure(pts, types, true)

	if len(c.figures) != 1 {
		t.Fatalf("figures = %d, want 1", len(c.figures))
	}
	f := c.figures[0]
	if !f.IsClosed || !f.IsFilled {
		t.Errorf("closed=%v filled=%v, want both", f.IsClosed, f.IsFilled)
	}
	want := []PathSegment{
		&PolyLineSegment{Points: []Point{Pt(1, 0), Pt(2, 0)}},
		&PolyBezierSegment{Points: []Point{Pt(3, 1), Pt(4, 1), Pt(5, 0)}},
		&PolyLineSegment{Points: []Point{Pt(6, 0)}},
	}
	if diff := cmp.Diff(want, f.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}
