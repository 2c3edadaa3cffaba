package media

import (
	"errors"
	"math"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
		rule   FillRule
	}{
		{"empty", "", "", FillRuleEvenOdd},
		{"square", "M0,0 L10,0 L10,10 L0,10 Z", "M0,0 L10,0 L10,10 L0,10 Z", FillRuleEvenOdd},
		{"nonzero prefix", "F1 M0 0 H10 V10 H0 Z", "F1 M0,0 L10,0 L10,10 L0,10 Z", FillRuleNonzero},
		{"even-odd prefix", "F0M0,0L1,1", "M0,0 L1,1", FillRuleEvenOdd},
		{"relative", "m1,1 l2,0 0,2 z", "M1,1 L3,1 L3,3 Z", FillRuleEvenOdd},
		{"implicit lines after move", "M0,0 10,0 10,10", "M0,0 L10,0 L10,10", FillRuleEvenOdd},
		{"relative h v", "M5,5 h5 v-5", "M5,5 L10,5 L10,0", FillRuleEvenOdd},
		{"smooth cubic", "M0,0 C0,10 10,10 10,0 S20,-10 20,0",
			"M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0", FillRuleEvenOdd},
		{"smooth cubic without previous", "M0,0 S5,5 10,0", "M0,0 C0,0 5,5 10,0", FillRuleEvenOdd},
		{"smooth quadratic", "M0,0 Q5,10 10,0 T20,0", "M0,0 Q5,10 10,0 Q15,-10 20,0", FillRuleEvenOdd},
		{"arc", "M0,0 A5,5 0 0 1 10,0", "M0,0 A5,5 0 0 1 10,0", FillRuleEvenOdd},
		{"arc compact flags", "M0,0 a5 5 30 1,0 10 0", "M0,0 A5,5 30 1 0 10,0", FillRuleEvenOdd},
		{"draw after close", "M0,0 L10,0 L10,10 Z L0,10 Z", "M0,0 L10,0 L10,10 Z M0,0 L0,10 Z", FillRuleEvenOdd},
		{"exponents", "M1e1,0 L-2.5E-1,.5", "M10,0 L-0.25,0.5", FillRuleEvenOdd},
		{"separators", "M 1 , 2\n\tL3\r\n4", "M1,2 L3,4", FillRuleEvenOdd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGeometry(tt.markup)
			if err != nil {
				t.Fatalf("ParseGeometry(%q) error: %v", tt.markup, err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if g.FillRule() != tt.rule {
				t.Errorf("FillRule() = %v, want %v", g.FillRule(), tt.rule)
			}

			again, err := ParseGeometry(g.String())
			if err != nil {
				t.Fatalf("reparse error: %v", err)
			}
			if again.String() != g.String() {
				t.Errorf("round trip = %q, want %q", again.String(), g.String())
			}
		})
	}
}

func TestParseGeometryErrors(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"no move", "L0,0"},
		{"bare number", "5,5"},
		{"missing coordinate", "M0"},
		{"unknown command", "M0,0 X1"},
		{"bad fill rule", "F2 M0,0"},
		{"bad arc flag", "M0,0 A5,5 0 2 0 1,1"},
		{"number after close", "M0,0 L1,0 Z 1,1"},
		{"sign only", "M-,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGeometry(tt.markup)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseGeometry(%q) error = %v, want ErrInvalidArgument", tt.markup, err)
			}
		})
	}
}

func TestParseGeometryNonFinite(t *testing.T) {
	g, err := ParseGeometry("M0,0 L Infinity,NaN L-Infinity,0")
	if err != nil {
		t.Fatal(err)
	}
	figs := g.Figures()
	if len(figs) != 1 || len(figs[0].Segments) != 2 {
		t.Fatalf("figures = %+v", figs)
	}
	p := figs[0].Segments[0].(*LineSegment).Point
	if !math.IsInf(p.X, 1) || !math.IsNaN(p.Y) {
		t.Errorf("first point = %v, want (+Inf, NaN)", p)
	}
	if q := figs[0].Segments[1].(*LineSegment).Point; !math.IsInf(q.X, -1) {
		t.Errorf("second point = %v, want -Inf x", q)
	}
}

func TestParsedArcArea(t *testing.T) {
	g, err := ParseGeometry("M0,0 A5,5 0 0 1 10,0 Z")
	if err != nil {
		t.Fatal(err)
	}
	a, err := g.Area(0.01, ToleranceAbsolute)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pi * 25 / 2
	if math.Abs(a-want) > want*0.01 {
		t.Errorf("half disc area = %v, want %v", a, want)
	}
}
