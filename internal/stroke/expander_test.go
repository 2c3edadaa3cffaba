package stroke

import (
	"math"
	"testing"
)

func TestNewStrokeExpander(t *testing.T) {
	expander := NewStrokeExpander(DefaultStyle())

	if expander.style.Width != 1.0 {
		t.Errorf("style.Width = %v, want 1.0", expander.style.Width)
	}
	if expander.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", expander.tolerance)
	}

	expander = NewStrokeExpander(Style{Width: 1, MiterLimit: 0.2})
	if expander.style.MiterLimit != 1 {
		t.Errorf("MiterLimit = %v, want clamped to 1", expander.style.MiterLimit)
	}
}

func TestStrokeExpander_SetTolerance(t *testing.T) {
	expander := NewStrokeExpander(DefaultStyle())

	expander.SetTolerance(0.1)
	if expander.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", expander.tolerance)
	}

	// Non-positive tolerance should be ignored
	expander.SetTolerance(-1.0)
	expander.SetTolerance(0)
	if expander.tolerance != 0.1 {
		t.Error("non-positive tolerance should be ignored")
	}
}

func TestStrokeExpander_LineCaps(t *testing.T) {
	line := []Polyline{{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}

	tests := []struct {
		name string
		cap  LineCap
		want float64
		tol  float64
	}{
		{"flat", LineCapFlat, 20, 1e-9},
		{"square", LineCapSquare, 24, 1e-9},
		{"triangle", LineCapTriangle, 22, 1e-9},
		{"round", LineCapRound, 20 + math.Pi, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line[0].StartCap = tt.cap
			line[0].EndCap = tt.cap
			e := NewStrokeExpander(Style{Width: 2, MiterLimit: 10})
			e.SetTolerance(0.001)
			rings := e.Expand(line)
			if len(rings) != 1 {
				t.Fatalf("got %d rings, want 1", len(rings))
			}
			if got := math.Abs(signedArea(rings[0])); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrokeExpander_ClosedSquare(t *testing.T) {
	square := []Polyline{{
		Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed: true,
	}}

	for _, join := range []LineJoin{LineJoinMiter, LineJoinBevel, LineJoinRound} {
		rings := NewStrokeExpander(Style{Width: 2, Join: join, MiterLimit: 10}).Expand(square)
		if len(rings) != 2 {
			t.Fatalf("join %d: got %d rings, want 2", join, len(rings))
		}

		inside := []Point{{X: 5, Y: 0}, {X: 5, Y: 0.9}, {X: 10.5, Y: 5}, {X: 0, Y: 5}, {X: 9.5, Y: 0.5}}
		for _, p := range inside {
			if winding(rings, p) == 0 {
				t.Errorf("join %d: %v should be covered", join, p)
			}
		}
		outside := []Point{{X: 5, Y: 5}, {X: 5, Y: 1.5}, {X: 20, Y: 5}, {X: 5, Y: -2}}
		for _, p := range outside {
			if winding(rings, p) != 0 {
				t.Errorf("join %d: %v should not be covered", join, p)
			}
		}
	}
}

func TestStrokeExpander_MiterLimit(t *testing.T) {
	// A sharp spike: the miter tip is far from the vertex.
	spike := []Polyline{{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0.5}, {X: 0, Y: 1}}}}
	tip := Point{X: 12, Y: 0.5}

	miter := NewStrokeExpander(Style{Width: 1, Join: LineJoinMiter, MiterLimit: 100}).Expand(spike)
	if winding(miter, Point{X: 10.6, Y: 0.5}) == 0 {
		t.Error("unlimited miter should cover the tip region")
	}
	clipped := NewStrokeExpander(Style{Width: 1, Join: LineJoinMiter, MiterLimit: 2}).Expand(spike)
	if winding(clipped, tip) != 0 {
		t.Error("miter past the limit should fall back to bevel")
	}
}

func TestStrokeExpander_Degenerate(t *testing.T) {
	e := NewStrokeExpander(Style{Width: 2, MiterLimit: 10})
	if rings := e.Expand(nil); len(rings) != 0 {
		t.Errorf("empty input produced %d rings", len(rings))
	}
	if rings := e.Expand([]Polyline{{Points: []Point{{X: 1, Y: 1}}}}); len(rings) != 0 {
		t.Errorf("flat-capped dot produced %d rings", len(rings))
	}
	e.SetTolerance(0.01)
	rings := e.Expand([]Polyline{{Points: []Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, StartCap: LineCapRound}})
	if len(rings) != 1 {
		t.Fatalf("round-capped dot produced %d rings, want 1", len(rings))
	}
	if got := math.Abs(signedArea(rings[0])); math.Abs(got-math.Pi) > 0.1 {
		t.Errorf("dot area = %v, want about pi", got)
	}

	zero := NewStrokeExpander(Style{Width: 0})
	if rings := zero.Expand([]Polyline{{Points: []Point{{X: 0, Y: 0}, {X: 5, Y: 0}}}}); rings != nil {
		t.Error("zero width stroke should produce nothing")
	}
}

func TestDash(t *testing.T) {
	line := Polyline{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, StartCap: LineCapRound, EndCap: LineCapSquare}

	pieces := Dash(line, []float64{2, 1}, 0, LineCapFlat)
	// dashes at [0,2] [3,5] [6,8] [9,10]
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}
	wantStarts := []float64{0, 3, 6, 9}
	for i, p := range pieces {
		if got := p.Points[0].X; math.Abs(got-wantStarts[i]) > 1e-9 {
			t.Errorf("piece %d starts at %v, want %v", i, got, wantStarts[i])
		}
	}
	if pieces[0].StartCap != LineCapRound || pieces[0].EndCap != LineCapFlat {
		t.Errorf("first piece caps = %v/%v", pieces[0].StartCap, pieces[0].EndCap)
	}
	if last := pieces[3]; last.EndCap != LineCapSquare {
		t.Errorf("last piece end cap = %v, want square", last.EndCap)
	}

	offset := Dash(line, []float64{2, 1}, 1, LineCapFlat)
	if got := offset[0].Points[len(offset[0].Points)-1].X; math.Abs(got-1) > 1e-9 {
		t.Errorf("offset first piece ends at %v, want 1", got)
	}
}

func TestDashSolidPatterns(t *testing.T) {
	line := Polyline{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	for _, pattern := range [][]float64{nil, {0, 0}, {-1, 2}, {math.NaN()}} {
		pieces := Dash(line, pattern, 0, LineCapFlat)
		if len(pieces) != 1 || len(pieces[0].Points) != 2 {
			t.Errorf("pattern %v: got %v, want the input unchanged", pattern, pieces)
		}
	}
}

func TestDashClosedMerge(t *testing.T) {
	square := Polyline{
		Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		Closed: true,
	}
	// perimeter 16, pattern 3 on 1 off: dashes [0,3] [4,7] [8,11] [12,15]
	pieces := Dash(square, []float64{3, 1}, 0, LineCapFlat)
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}

	// offset 2: the last dash runs into the first one and is merged with it
	pieces = Dash(square, []float64{3, 1}, 2, LineCapFlat)
	if len(pieces) != 4 {
		t.Fatalf("offset: got %d pieces, want 4", len(pieces))
	}
	first := pieces[0].Points
	if first[0] != (Point{X: 0, Y: 2}) {
		t.Errorf("merged piece starts at %v, want (0,2)", first[0])
	}
}

func signedArea(ring []Point) float64 {
	var a float64
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func winding(rings [][]Point, pt Point) int {
	w := 0
	for _, ring := range rings {
		for i := range ring {
			p0, p1 := ring[i], ring[(i+1)%len(ring)]
			if p0.Y <= pt.Y {
				if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
					w++
				}
			} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
				w--
			}
		}
	}
	return w
}

func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}
