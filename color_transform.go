package media

import (
	"fmt"
	"sync/atomic"

	icolor "github.com/gogpu/media/internal/color"
)

// ColorTransformer converts channel values between two color contexts.
//
// in holds src.NumChannels() values and the result holds dst.NumChannels()
// values. Implementations must be safe for concurrent use.
type ColorTransformer interface {
	Translate(src, dst *ColorContext, in []float32) ([]float32, error)
}

// ColorTransformerFunc adapts a function to the ColorTransformer interface.
type ColorTransformerFunc func(src, dst *ColorContext, in []float32) ([]float32, error)

// Translate implements ColorTransformer.
func (f ColorTransformerFunc) Translate(src, dst *ColorContext, in []float32) ([]float32, error) {
	return f(src, dst, in)
}

// DeviceColorTransformer converts through device RGB without consulting the
// profiles' transform tables. It is the default transformer; install a color
// management module with SetColorTransformer for accurate results.
//
// Conversions to device RGB:
//   - RGB spaces: identity
//   - gray: the value is replicated
//   - CMYK: r = (1-c)(1-k), and likewise for g and b
//   - other spaces: the first three channels, or their average when there
//     are fewer than three
//
// The reverse uses luma (0.299, 0.587, 0.114) for gray and full black
// generation for CMYK.
type DeviceColorTransformer struct{}

// Translate implements ColorTransformer.
func (DeviceColorTransformer) Translate(src, dst *ColorContext, in []float32) ([]float32, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("%w: translate needs both color contexts", ErrInvalidArgument)
	}
	if !src.IsValid() || !dst.IsValid() {
		return nil, errInvalidContext
	}
	if len(in) != src.NumChannels() {
		return nil, &DimensionMismatchError{Got: len(in), Want: src.NumChannels()}
	}
	r, g, b := toDeviceRGB(src, in)
	return fromDeviceRGB(dst, r, g, b), nil
}

func toDeviceRGB(c *ColorContext, v []float32) (r, g, b float32) {
	switch c.ColorSpaceFamily() {
	case ColorSpaceSrgb, ColorSpaceRgb:
		return v[0], v[1], v[2]
	case ColorSpaceScRgb:
		return icolor.LinearToSRGBF(v[0]), icolor.LinearToSRGBF(v[1]), icolor.LinearToSRGBF(v[2])
	case ColorSpaceGray:
		return v[0], v[0], v[0]
	case ColorSpaceCmyk:
		k := 1 - v[3]
		return (1 - v[0]) * k, (1 - v[1]) * k, (1 - v[2]) * k
	}
	if len(v) >= 3 {
		return v[0], v[1], v[2]
	}
	var sum float32
	for _, x := range v {
		sum += x
	}
	if len(v) > 0 {
		sum /= float32(len(v))
	}
	return sum, sum, sum
}

func fromDeviceRGB(c *ColorContext, r, g, b float32) []float32 {
	switch c.ColorSpaceFamily() {
	case ColorSpaceSrgb, ColorSpaceRgb:
		return []float32{r, g, b}
	case ColorSpaceScRgb:
		return []float32{icolor.SRGBToLinearF(r), icolor.SRGBToLinearF(g), icolor.SRGBToLinearF(b)}
	case ColorSpaceGray:
		return []float32{0.299*r + 0.587*g + 0.114*b}
	case ColorSpaceCmyk:
		k := 1 - max(r, g, b)
		if k >= 1 {
			return []float32{0, 0, 0, 1}
		}
		return []float32{(1 - r - k) / (1 - k), (1 - g - k) / (1 - k), (1 - b - k) / (1 - k), k}
	}

	out := make([]float32, c.NumChannels())
	rgb := [3]float32{r, g, b}
	avg := (r + g + b) / 3
	for i := range out {
		if i < 3 {
			out[i] = rgb[i]
		} else {
			out[i] = avg
		}
	}
	return out
}

type transformerBox struct{ ColorTransformer }

var transformerPtr atomic.Pointer[transformerBox]

func init() {
	transformerPtr.Store(&transformerBox{DeviceColorTransformer{}})
}

// SetColorTransformer sets the process-wide color transformer used by
// contexts created without WithTransformer. Pass nil to restore
// DeviceColorTransformer.
//
// SetColorTransformer is safe for concurrent use.
func SetColorTransformer(t ColorTransformer) {
	if t == nil {
		t = DeviceColorTransformer{}
	}
	transformerPtr.Store(&transformerBox{t})
	propagateLogger(t, Logger())
	Logger().Debug("color transformer replaced", "transformer", fmt.Sprintf("%T", t))
}

func colorTransformer() ColorTransformer {
	return transformerPtr.Load().ColorTransformer
}
