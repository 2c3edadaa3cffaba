// Package color implements the sRGB <-> linear (scRGB) channel conversions
// that every other color operation in media is anchored on.
//
// The byte-domain functions are bit-reproducible: each intermediate product
// is rounded to float32 through an explicit conversion, which keeps the
// compiler from fusing multiply-adds on architectures that support FMA.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - IEC 61966-2-2 (scRGB)
package color

import "math"

// Transfer curve constants.
const (
	decodeThreshold = 0.04045
	encodeThreshold = 0.0031308
	linearSlope     = 12.92
	gammaOffset     = 0.055
	gammaScale      = 1.055
	gamma           = 2.4
)

// SRGBToLinear converts a gamma-encoded sRGB byte channel to a linear
// scRGB float channel.
//
// The input domain is b/255. Values at or below the 0.04045 threshold use
// the linear toe segment, values below 1 use the 2.4 power curve, and 255
// maps to exactly 1.
func SRGBToLinear(b uint8) float32 {
	return sRGBToLinearLUT[b]
}

// sRGBToLinearSlow is the reference computation behind the lookup table.
func sRGBToLinearSlow(b uint8) float32 {
	v := float32(b) / 255.0
	switch {
	case !(v > 0):
		return 0
	case v <= decodeThreshold:
		return v / linearSlope
	case v < 1:
		return float32(math.Pow((float64(v)+gammaOffset)/gammaScale, gamma))
	default:
		return 1
	}
}

// LinearToSRGB converts a linear scRGB float channel to a gamma-encoded sRGB
// byte, rounding by adding 0.5 and truncating.
//
// NaN and non-positive inputs map to 0; inputs at or above 1 map to 255.
func LinearToSRGB(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v <= encodeThreshold:
		scaled := float32(float32(255.0*v) * linearSlope)
		return uint8(scaled + 0.5)
	case v < 1:
		p := float32(math.Pow(float64(v), 1.0/gamma))
		encoded := float32(float32(gammaScale*p) - gammaOffset)
		scaled := float32(255.0 * encoded)
		return uint8(scaled + 0.5)
	default:
		return 255
	}
}

// SRGBToLinearF is the float-domain decode curve for inputs in [0,1].
// Inputs outside the range are clamped first.
func SRGBToLinearF(s float32) float32 {
	s = Clamp01(s)
	if s <= decodeThreshold {
		return s / linearSlope
	}
	return float32(math.Pow((float64(s)+gammaOffset)/gammaScale, gamma))
}

// LinearToSRGBF is the float-domain encode curve for inputs in [0,1].
// Inputs outside the range are clamped first.
func LinearToSRGBF(l float32) float32 {
	l = Clamp01(l)
	if l <= encodeThreshold {
		return l * linearSlope
	}
	return gammaScale*float32(math.Pow(float64(l), 1.0/gamma)) - gammaOffset
}

// Clamp01 clamps v to [0,1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// UnitToByte scales a [0,1] value to a byte after clamping,
// rounding by adding 0.5 and truncating.
func UnitToByte(v float32) uint8 {
	return uint8(float32(Clamp01(v)*255.0) + 0.5)
}
