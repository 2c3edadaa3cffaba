package media

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDashStyle(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		want    []float64
		dashed  bool
	}{
		{"empty", nil, []float64{}, false},
		{"all zeros", []float64{0, 0}, []float64{0, 0}, false},
		{"dash gap", []float64{5, 3}, []float64{5, 3}, true},
		{"single value", []float64{5}, []float64{5}, true},
		{"negative values become absolute", []float64{-5, 3}, []float64{5, 3}, true},
		{"dots", []float64{0, 2}, []float64{0, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDashStyle(tt.lengths...)
			if diff := cmp.Diff(tt.want, d.Dashes); diff != "" {
				t.Errorf("Dashes mismatch (-want +got):\n%s", diff)
			}
			if d.IsDashed() != tt.dashed {
				t.Errorf("IsDashed() = %v, want %v", d.IsDashed(), tt.dashed)
			}
		})
	}
}

func TestDashStyle_PatternLength(t *testing.T) {
	tests := []struct {
		name string
		d    *DashStyle
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDashStyle(5, 3), 8},
		{"odd is doubled", NewDashStyle(5), 10},
		{"three values", NewDashStyle(1, 2, 3), 12},
		{"dash dot", &DashStyleDashDot, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDashStyle_WithOffset(t *testing.T) {
	orig := NewDashStyle(5, 3)
	d := orig.WithOffset(2)
	if d.Offset != 2 || orig.Offset != 0 {
		t.Errorf("offsets = %v, %v; want 2, 0", d.Offset, orig.Offset)
	}

	var none *DashStyle
	if got := none.WithOffset(1); got == nil || got.Offset != 1 || got.IsDashed() {
		t.Errorf("nil.WithOffset(1) = %+v", got)
	}
}

func TestDashStyle_Clone(t *testing.T) {
	var none *DashStyle
	if none.Clone() != nil {
		t.Error("nil.Clone() != nil")
	}

	orig := NewDashStyle(5, 3).WithOffset(1)
	c := orig.Clone()
	c.Dashes[0] = 100
	if orig.Dashes[0] != 5 {
		t.Error("Clone shares the pattern")
	}
	if c.Offset != 1 {
		t.Errorf("Clone offset = %v, want 1", c.Offset)
	}
}

func TestDashStyle_scaled(t *testing.T) {
	tests := []struct {
		name       string
		d          *DashStyle
		thickness  float64
		want       []float64
		wantOffset float64
	}{
		{"nil is solid", nil, 2, nil, 0},
		{"solid", &DashStyleSolid, 2, nil, 0},
		{"dash", &DashStyleDash, 3, []float64{6, 6}, 0},
		{"offset", NewDashStyle(1, 1).WithOffset(0.5), 4, []float64{4, 4}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, off := tt.d.scaled(tt.thickness)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scaled mismatch (-want +got):\n%s", diff)
			}
			if off != tt.wantOffset {
				t.Errorf("offset = %v, want %v", off, tt.wantOffset)
			}
		})
	}
}

func TestDashedPenWidens(t *testing.T) {
	line := NewLineGeometry(Pt(0, 0), Pt(16, 0))
	solid := blackPen(1)
	dashed := solid.WithDashStyle(NewDashStyle(2, 2))

	a1 := widenedArea(t, line, solid)
	a2 := widenedArea(t, line, dashed)
	if math.Abs(a1-16) > 1e-6 {
		t.Errorf("solid area = %v, want 16", a1)
	}
	// Square dash caps add half the thickness at each interior end.
	if a2 <= 0 || a2 >= a1 {
		t.Errorf("dashed area = %v, want in (0, %v)", a2, a1)
	}
}

func widenedArea(t *testing.T, g Geometry, pen *Pen) float64 {
	t.Helper()
	w, err := g.WidenedPathGeometry(pen, DefaultFlatteningTolerance, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	a, err := w.Area(DefaultFlatteningTolerance, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
