package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input uint8
		want  float32
	}{
		{"black", 0, 0},
		{"white", 255, 1},
		{"toe", 10, float32(10) / 255 / 12.92},
		{"mid gray", 128, float32(math.Pow((float64(float32(128)/255)+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-7) {
				t.Errorf("SRGBToLinear(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearToSRGBEdgeCases tests the clamp branches and rounding.
func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  uint8
	}{
		{"NaN", float32(math.NaN()), 0},
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"one", 1, 255},
		{"above one", 3.5, 255},
		{"positive infinity", float32(math.Inf(1)), 255},
		{"toe", 0.001, 3},
		{"mid", 0.5, 188},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGB(tt.input); got != tt.want {
				t.Errorf("LinearToSRGB(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTripAllBytes checks that every byte survives decode then encode.
func TestRoundTripAllBytes(t *testing.T) {
	for i := 0; i <= 255; i++ {
		b := uint8(i)
		if got := LinearToSRGB(SRGBToLinear(b)); got != b {
			t.Errorf("LinearToSRGB(SRGBToLinear(%d)) = %d", b, got)
		}
	}
}

// TestMonotonic checks that both curves never decrease.
func TestMonotonic(t *testing.T) {
	prev := SRGBToLinear(0)
	for i := 1; i <= 255; i++ {
		cur := SRGBToLinear(uint8(i))
		if cur <= prev {
			t.Fatalf("SRGBToLinear(%d) = %v not greater than SRGBToLinear(%d) = %v", i, cur, i-1, prev)
		}
		prev = cur
	}

	prevByte := LinearToSRGB(0)
	for i := 1; i <= 4096; i++ {
		cur := LinearToSRGB(float32(i) / 4096)
		if cur < prevByte {
			t.Fatalf("LinearToSRGB(%d/4096) = %d decreased from %d", i, cur, prevByte)
		}
		prevByte = cur
	}
}

// TestLUTMatchesReference ensures the table is bit-identical to the formula.
func TestLUTMatchesReference(t *testing.T) {
	for i := 0; i <= 255; i++ {
		if got, want := SRGBToLinear(uint8(i)), sRGBToLinearSlow(uint8(i)); got != want {
			t.Errorf("LUT[%d] = %v, want %v", i, got, want)
		}
	}
}

// TestDecodeContinuity checks the decode curve has no jump at its thresholds.
func TestDecodeContinuity(t *testing.T) {
	const delta = 1e-6

	below := SRGBToLinearF(decodeThreshold)
	above := SRGBToLinearF(decodeThreshold + delta)
	if diff := above - below; math.Abs(float64(diff)) > 1e-5 {
		t.Errorf("discontinuity at %v: %v -> %v", decodeThreshold, below, above)
	}

	nearOne := SRGBToLinearF(1 - delta)
	if one := SRGBToLinearF(1); !floatNear(one, 1, 0) || !floatNear(nearOne, one, 1e-5) {
		t.Errorf("discontinuity at 1: %v -> %v", nearOne, one)
	}
}

// TestFloatRoundTrip tests round-trip accuracy of the float curves.
func TestFloatRoundTrip(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		srgb := float32(i) / 255.0
		roundTrip := LinearToSRGBF(SRGBToLinearF(srgb))
		if diff := float32(math.Abs(float64(roundTrip - srgb))); diff > maxError {
			t.Errorf("round-trip error for %d/255: got %v, diff %v", i, roundTrip, diff)
		}
	}
}

func TestUnitToByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
		{float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		if got := UnitToByte(tt.in); got != tt.want {
			t.Errorf("UnitToByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// floatNear checks if two float32 values are within epsilon of each other.
func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) <= float64(epsilon)
}
