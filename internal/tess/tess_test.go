package tess

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/media/internal/pathdata"
	"github.com/gogpu/media/internal/stroke"
)

func rectFigure(x0, y0, x1, y1 float64) pathdata.Figure {
	return pathdata.Figure{
		Start:  Point{X: x0, Y: y0},
		Closed: true,
		Filled: true,
		Segments: []pathdata.Segment{{
			Kind:   pathdata.KindLine,
			Flags:  pathdata.SegmentStroked,
			Points: []Point{{X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
		}},
	}
}

func pathOf(rule pathdata.FillRule, figs ...pathdata.Figure) Path {
	return Path{Data: pathdata.Encode(figs), Matrix: pathdata.Identity(), FillRule: rule}
}

func collect(t *testing.T, run func(emit func(Figure)) (pathdata.FillRule, error)) ([]Figure, pathdata.FillRule) {
	t.Helper()
	var figs []Figure
	rule, err := run(func(f Figure) { figs = append(figs, f) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return figs, rule
}

func figuresArea(figs []Figure) float64 {
	var sum float64
	for _, f := range figs {
		sum += signedArea(f.Points)
	}
	return math.Abs(sum)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestArea(t *testing.T) {
	a := rectFigure(0, 0, 10, 10)
	b := rectFigure(5, 5, 15, 15)

	tests := []struct {
		name string
		path Path
		want float64
	}{
		{"square", pathOf(pathdata.Nonzero, a), 100},
		{"overlap nonzero", pathOf(pathdata.Nonzero, a, b), 175},
		{"overlap evenodd", pathOf(pathdata.EvenOdd, a, b), 150},
		{"scaled", Path{Data: pathdata.Encode([]pathdata.Figure{a}), Matrix: f64.Aff3{2, 0, 3, 0, 2, -1}}, 400},
		{"bowtie", pathOf(pathdata.Nonzero, pathdata.Figure{
			Start:    Point{X: 0, Y: 0},
			Closed:   true,
			Filled:   true,
			Segments: []pathdata.Segment{{Kind: pathdata.KindLine, Points: []Point{{X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}}},
		}), 50},
		{"unfilled", pathOf(pathdata.Nonzero, pathdata.Figure{Start: Point{}, Closed: true,
			Segments: []pathdata.Segment{{Kind: pathdata.KindLine, Points: []Point{{X: 1, Y: 0}, {X: 1, Y: 1}}}}}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Area(tt.path, Tolerance{Value: 0.25})
			if err != nil {
				t.Fatalf("Area: %v", err)
			}
			if !near(got, tt.want, 1e-9) {
				t.Errorf("Area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreaCurve(t *testing.T) {
	// quarter disc of radius 100
	k := 100 * 0.5522847498
	quarter := pathdata.Figure{
		Start:  Point{X: 0, Y: 0},
		Closed: true,
		Filled: true,
		Segments: []pathdata.Segment{
			{Kind: pathdata.KindLine, Points: []Point{{X: 100, Y: 0}}},
			{Kind: pathdata.KindCubic, Points: []Point{{X: 100, Y: k}, {X: k, Y: 100}, {X: 0, Y: 100}}},
		},
	}
	got, err := Area(pathOf(pathdata.Nonzero, quarter), Tolerance{Value: 0.01})
	if err != nil {
		t.Fatalf("Area: %v", err)
	}
	if want := math.Pi * 100 * 100 / 4; math.Abs(got-want)/want > 2e-3 {
		t.Errorf("Area = %v, want about %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	p := pathOf(pathdata.Nonzero, rectFigure(0, 0, 10, 10))

	r, ok, err := Bounds(p, nil, Tolerance{Value: 0.25})
	if err != nil || !ok {
		t.Fatalf("Bounds = %v, %v", ok, err)
	}
	if r != (Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}) {
		t.Errorf("fill bounds = %+v", r)
	}

	style := stroke.Style{Width: 2, Join: stroke.LineJoinMiter, MiterLimit: 10}
	r, ok, err = Bounds(p, &style, Tolerance{Value: 0.25})
	if err != nil || !ok {
		t.Fatalf("stroke Bounds = %v, %v", ok, err)
	}
	if !near(r.MinX, -1, 1e-9) || !near(r.MinY, -1, 1e-9) || !near(r.MaxX, 11, 1e-9) || !near(r.MaxY, 11, 1e-9) {
		t.Errorf("stroke bounds = %+v, want [-1,11]", r)
	}

	_, ok, err = Bounds(Path{Data: pathdata.EmptyBuffer(), Matrix: pathdata.Identity()}, nil, Tolerance{})
	if err != nil || ok {
		t.Errorf("empty Bounds = %v, %v; want no bounds", ok, err)
	}
}

func TestHitTest(t *testing.T) {
	a := rectFigure(0, 0, 10, 10)
	b := rectFigure(5, 5, 15, 15)
	style := stroke.Style{Width: 2, MiterLimit: 10}

	tests := []struct {
		name  string
		path  Path
		style *stroke.Style
		pt    Point
		want  bool
	}{
		{"inside", pathOf(pathdata.Nonzero, a), nil, Point{X: 5, Y: 5}, true},
		{"outside", pathOf(pathdata.Nonzero, a), nil, Point{X: 15, Y: 5}, false},
		{"evenodd overlap", pathOf(pathdata.EvenOdd, a, b), nil, Point{X: 7, Y: 7}, false},
		{"nonzero overlap", pathOf(pathdata.Nonzero, a, b), nil, Point{X: 7, Y: 7}, true},
		{"stroke edge", pathOf(pathdata.Nonzero, a), &style, Point{X: 0.5, Y: 5}, true},
		{"stroke center", pathOf(pathdata.Nonzero, a), &style, Point{X: 5, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HitTest(tt.path, tt.style, tt.pt, Tolerance{Value: 0.25})
			if err != nil {
				t.Fatalf("HitTest: %v", err)
			}
			if got != tt.want {
				t.Errorf("HitTest(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestHitTestGeometry(t *testing.T) {
	big := pathOf(pathdata.Nonzero, rectFigure(0, 0, 10, 10))
	small := pathOf(pathdata.Nonzero, rectFigure(2, 2, 4, 4))
	far := pathOf(pathdata.Nonzero, rectFigure(20, 20, 30, 30))
	overlap := pathOf(pathdata.Nonzero, rectFigure(5, 5, 15, 15))

	tests := []struct {
		name        string
		this, other Path
		want        Detail
	}{
		{"contains", big, small, DetailFullyContains},
		{"inside", small, big, DetailFullyInside},
		{"disjoint", big, far, DetailEmpty},
		{"overlap", big, overlap, DetailIntersects},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HitTestGeometry(tt.this, nil, tt.other, Tolerance{Value: 0.25})
			if err != nil {
				t.Fatalf("HitTestGeometry: %v", err)
			}
			if got != tt.want {
				t.Errorf("HitTestGeometry = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	a := pathOf(pathdata.Nonzero, rectFigure(0, 0, 10, 10))
	b := pathOf(pathdata.EvenOdd, rectFigure(5, 5, 15, 15))

	tests := []struct {
		mode CombineMode
		want float64
	}{
		{Union, 175},
		{Intersect, 25},
		{Xor, 150},
		{Exclude, 75},
	}
	for _, tt := range tests {
		figs, rule := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
			return Combine(a, b, tt.mode, Tolerance{Value: 0.25}, emit)
		})
		if rule != pathdata.Nonzero {
			t.Errorf("mode %d: fill rule = %v, want Nonzero", tt.mode, rule)
		}
		if got := figuresArea(figs); !near(got, tt.want, 1e-9) {
			t.Errorf("mode %d: area = %v, want %v", tt.mode, got, tt.want)
		}
		for _, f := range figs {
			if !f.Closed {
				t.Errorf("mode %d: open figure in result", tt.mode)
			}
		}
	}
}

func TestCombineSymmetric(t *testing.T) {
	a := pathOf(pathdata.Nonzero, rectFigure(0, 0, 10, 10))
	b := pathOf(pathdata.Nonzero, rectFigure(3, -2, 7, 12))
	points := []Point{{X: 1, Y: 1}, {X: 5, Y: -1}, {X: 5, Y: 5}, {X: 8, Y: 11}, {X: 20, Y: 20}}

	for _, mode := range []CombineMode{Union, Xor} {
		ab, _ := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
			return Combine(a, b, mode, Tolerance{Value: 0.25}, emit)
		})
		ba, _ := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
			return Combine(b, a, mode, Tolerance{Value: 0.25}, emit)
		})
		if !near(figuresArea(ab), figuresArea(ba), 1e-9) {
			t.Errorf("mode %d: areas differ: %v vs %v", mode, figuresArea(ab), figuresArea(ba))
		}
		for _, pt := range points {
			if winding(ringsOf(ab), pt) != winding(ringsOf(ba), pt) {
				t.Errorf("mode %d: coverage differs at %v", mode, pt)
			}
		}
	}
}

func ringsOf(figs []Figure) [][]Point {
	rings := make([][]Point, len(figs))
	for i, f := range figs {
		rings[i] = f.Points
	}
	return rings
}

func TestOutline(t *testing.T) {
	bowtie := pathOf(pathdata.EvenOdd, pathdata.Figure{
		Start:    Point{X: 0, Y: 0},
		Closed:   true,
		Filled:   true,
		Segments: []pathdata.Segment{{Kind: pathdata.KindLine, Points: []Point{{X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}}},
	})
	figs, rule := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
		return Outline(bowtie, Tolerance{Value: 0.25}, emit)
	})
	if rule != pathdata.Nonzero {
		t.Errorf("fill rule = %v, want Nonzero", rule)
	}
	if got := figuresArea(figs); !near(got, 50, 1e-9) {
		t.Errorf("area = %v, want 50", got)
	}
	for _, f := range figs {
		if signedArea(f.Points) <= 0 {
			t.Errorf("loop %v is not counter-clockwise", f.Points)
		}
	}
}

func TestFlatten(t *testing.T) {
	curve := pathdata.Figure{
		Start: Point{X: 100, Y: 0},
		Segments: []pathdata.Segment{
			{Kind: pathdata.KindCubic, Points: []Point{{X: 100, Y: 55}, {X: 55, Y: 100}, {X: 0, Y: 100}}},
		},
	}
	p := pathOf(pathdata.EvenOdd, curve)

	coarse, rule := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
		return Flatten(p, Tolerance{Value: 10}, emit)
	})
	if rule != pathdata.EvenOdd {
		t.Errorf("fill rule = %v, want EvenOdd echoed", rule)
	}
	fine, _ := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
		return Flatten(p, Tolerance{Value: 0.001, Relative: true}, emit)
	})
	if len(coarse) != 1 || len(fine) != 1 {
		t.Fatalf("got %d and %d figures, want 1", len(coarse), len(fine))
	}
	if len(fine[0].Points) <= len(coarse[0].Points) {
		t.Errorf("finer tolerance produced %d points, coarse %d", len(fine[0].Points), len(coarse[0].Points))
	}
	last := fine[0].Points[len(fine[0].Points)-1]
	if last != (Point{X: 0, Y: 100}) {
		t.Errorf("last point = %v, want curve end", last)
	}
	if fine[0].Closed {
		t.Error("open figure reported closed")
	}
}

func TestWiden(t *testing.T) {
	line := pathOf(pathdata.EvenOdd, pathdata.Figure{
		Start:    Point{X: 0, Y: 0},
		Segments: []pathdata.Segment{{Kind: pathdata.KindLine, Flags: pathdata.SegmentStroked, Points: []Point{{X: 10, Y: 0}}}},
	})
	figs, rule := collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
		return Widen(line, stroke.Style{Width: 2, EndCap: stroke.LineCapSquare, MiterLimit: 10}, Tolerance{Value: 0.25}, emit)
	})
	if rule != pathdata.Nonzero {
		t.Errorf("fill rule = %v, want Nonzero", rule)
	}
	if got := figuresArea(figs); !near(got, 22, 1e-9) {
		t.Errorf("area = %v, want 22", got)
	}

	// unstroked segments contribute nothing
	hidden := pathOf(pathdata.EvenOdd, pathdata.Figure{
		Start:    Point{X: 0, Y: 0},
		Segments: []pathdata.Segment{{Kind: pathdata.KindLine, Points: []Point{{X: 10, Y: 0}}}},
	})
	figs, _ = collect(t, func(emit func(Figure)) (pathdata.FillRule, error) {
		return Widen(hidden, stroke.Style{Width: 2}, Tolerance{Value: 0.25}, emit)
	})
	if len(figs) != 0 {
		t.Errorf("unstroked line produced %d figures", len(figs))
	}
}

func TestBadNumber(t *testing.T) {
	nan := pathOf(pathdata.Nonzero, rectFigure(0, 0, math.NaN(), 10))
	inf := Path{Data: pathdata.Encode([]pathdata.Figure{rectFigure(0, 0, 1, 1)}), Matrix: f64.Aff3{math.Inf(1), 0, 0, 0, 1, 0}}
	tol := Tolerance{Value: 0.25}
	noop := func(Figure) {}

	for name, p := range map[string]Path{"nan point": nan, "inf matrix": inf} {
		t.Run(name, func(t *testing.T) {
			if _, err := Area(p, tol); !errors.Is(err, ErrBadNumber) {
				t.Errorf("Area error = %v", err)
			}
			if _, _, err := Bounds(p, nil, tol); !errors.Is(err, ErrBadNumber) {
				t.Errorf("Bounds error = %v", err)
			}
			if _, err := HitTest(p, nil, Point{}, tol); !errors.Is(err, ErrBadNumber) {
				t.Errorf("HitTest error = %v", err)
			}
			if _, err := Flatten(p, tol, noop); !errors.Is(err, ErrBadNumber) {
				t.Errorf("Flatten error = %v", err)
			}
			if _, err := Widen(p, stroke.DefaultStyle(), tol, noop); !errors.Is(err, ErrBadNumber) {
				t.Errorf("Widen error = %v", err)
			}
			if _, err := Combine(p, p, Union, tol, noop); !errors.Is(err, ErrBadNumber) {
				t.Errorf("Combine error = %v", err)
			}
		})
	}

	good := pathOf(pathdata.Nonzero, rectFigure(0, 0, 1, 1))
	if _, err := Widen(good, stroke.Style{Width: math.NaN()}, tol, noop); !errors.Is(err, ErrBadNumber) {
		t.Errorf("NaN width error = %v", err)
	}
}

func TestCorruptBuffer(t *testing.T) {
	p := Path{Data: []byte{1, 2, 3}, Matrix: pathdata.Identity()}
	_, err := Area(p, Tolerance{})
	if err == nil || errors.Is(err, ErrBadNumber) {
		t.Errorf("Area error = %v, want a corrupt buffer error", err)
	}
	if !errors.Is(err, pathdata.ErrCorrupt) {
		t.Errorf("Area error = %v, want ErrCorrupt", err)
	}
}
