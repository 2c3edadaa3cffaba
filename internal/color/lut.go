package color

// sRGBToLinearLUT provides O(1) sRGB to linear conversion.
// Pre-computed from sRGBToLinearSlow, so lookups are bit-identical to the
// direct computation.
var sRGBToLinearLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = sRGBToLinearSlow(uint8(i))
	}
}
