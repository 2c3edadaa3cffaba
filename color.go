package media

import (
	"fmt"
	stdcolor "image/color"

	icolor "github.com/gogpu/media/internal/color"
)

// argb8 holds gamma-encoded sRGB byte channels.
type argb8 struct {
	a, r, g, b uint8
}

// argbF holds linear scRGB channels.
type argbF struct {
	a, r, g, b float32
}

// Color is a color with full fidelity across the sRGB byte, linear scRGB
// and profile-native spaces.
//
// Color is a value type. Operations that change a channel return a new Color.
// A Color may carry a *ColorContext, which is shared and never copied; such
// colors also hold one native value per profile channel. The byte channels
// are always the clamped, gamma-encoded projection of the scRGB or native
// values. The scRGB alpha is stored unclamped.
//
// Color holds a slice, so compare with Equal or AreClose rather than ==.
type Color struct {
	srgb      argb8
	scrgb     argbF
	context   *ColorContext
	native    []float32
	fromScRgb bool
}

// FromArgb creates a color from sRGB bytes.
func FromArgb(a, r, g, b uint8) Color {
	return Color{
		srgb: argb8{a: a, r: r, g: g, b: b},
		scrgb: argbF{
			a: float32(a) / 255,
			r: icolor.SRGBToLinear(r),
			g: icolor.SRGBToLinear(g),
			b: icolor.SRGBToLinear(b),
		},
	}
}

// FromRgb creates an opaque color from sRGB bytes.
func FromRgb(r, g, b uint8) Color {
	return FromArgb(255, r, g, b)
}

// FromUInt32 creates a color from a packed 0xAARRGGBB value.
func FromUInt32(argb uint32) Color {
	return FromArgb(uint8(argb>>24), uint8(argb>>16), uint8(argb>>8), uint8(argb))
}

// FromScRgb creates a color from linear scRGB values. The values are kept
// as given, including values outside [0, 1]. Only the byte alpha is clamped;
// the color channels saturate through the encode curve.
func FromScRgb(a, r, g, b float32) Color {
	return Color{
		scrgb:     argbF{a: a, r: r, g: g, b: b},
		srgb:      scRgbToBytes(argbF{a: a, r: r, g: g, b: b}),
		fromScRgb: true,
	}
}

func scRgbToBytes(v argbF) argb8 {
	return argb8{
		a: icolor.UnitToByte(v.a),
		r: icolor.LinearToSRGB(v.r),
		g: icolor.LinearToSRGB(v.g),
		b: icolor.LinearToSRGB(v.b),
	}
}

// FromValues creates an opaque color from native values in the profile at
// profileURI. See FromAValues.
func FromValues(values []float32, profileURI string, opts ...ContextOption) (Color, error) {
	return FromAValues(1, values, profileURI, opts...)
}

// FromAValues creates a color from an scRGB alpha and native values in the
// profile at profileURI. The number of values must match the profile's
// channel count; otherwise a *DimensionMismatchError is returned.
func FromAValues(a float32, values []float32, profileURI string, opts ...ContextOption) (Color, error) {
	ctx, err := NewColorContext(profileURI, opts...)
	if err != nil {
		return Color{}, err
	}
	return FromContextValues(ctx, a, values)
}

// FromContextValues creates a color from an scRGB alpha and native values
// in an already loaded context.
func FromContextValues(ctx *ColorContext, a float32, values []float32) (Color, error) {
	if ctx == nil {
		return Color{}, fmt.Errorf("%w: nil color context", ErrInvalidArgument)
	}
	if !ctx.IsValid() {
		return Color{}, errInvalidContext
	}
	if len(values) != ctx.NumChannels() {
		return Color{}, &DimensionMismatchError{Got: len(values), Want: ctx.NumChannels()}
	}
	c := Color{
		context: ctx,
		native:  append([]float32(nil), values...),
	}
	c.setAlpha(a)
	if err := c.computeScRgb(); err != nil {
		return Color{}, err
	}
	return c, nil
}

func (c *Color) setAlpha(a float32) {
	c.scrgb.a = a
	c.srgb.a = icolor.UnitToByte(a)
}

// computeScRgb derives the sRGB and scRGB color channels from the native
// values. Each translated channel is clamped and rounded to a byte first, so
// the linear values are exactly the decoded bytes.
func (c *Color) computeScRgb() error {
	if !c.context.IsValid() {
		return errInvalidContext
	}
	std := standardContext()
	out, err := c.context.colorTransformer().Translate(c.context, std, c.native)
	if err != nil {
		return fmt.Errorf("translate to sRGB: %w", err)
	}
	if len(out) != 3 {
		return &DimensionMismatchError{Got: len(out), Want: 3}
	}
	c.srgb.r = icolor.UnitToByte(out[0])
	c.srgb.g = icolor.UnitToByte(out[1])
	c.srgb.b = icolor.UnitToByte(out[2])
	c.scrgb.r = icolor.SRGBToLinear(c.srgb.r)
	c.scrgb.g = icolor.SRGBToLinear(c.srgb.g)
	c.scrgb.b = icolor.SRGBToLinear(c.srgb.b)
	return nil
}

// computeNative derives the native values from the sRGB bytes.
func (c *Color) computeNative() error {
	if !c.context.IsValid() {
		return errInvalidContext
	}
	std := standardContext()
	in := []float32{
		float32(c.srgb.r) / 255,
		float32(c.srgb.g) / 255,
		float32(c.srgb.b) / 255,
	}
	out, err := c.context.colorTransformer().Translate(std, c.context, in)
	if err != nil {
		return fmt.Errorf("translate from sRGB: %w", err)
	}
	if len(out) != c.context.NumChannels() {
		return &DimensionMismatchError{Got: len(out), Want: c.context.NumChannels()}
	}
	c.native = out
	return nil
}

// A returns the sRGB alpha byte.
func (c Color) A() uint8 { return c.srgb.a }

// R returns the sRGB red byte.
func (c Color) R() uint8 { return c.srgb.r }

// G returns the sRGB green byte.
func (c Color) G() uint8 { return c.srgb.g }

// B returns the sRGB blue byte.
func (c Color) B() uint8 { return c.srgb.b }

// ScA returns the scRGB alpha, which may lie outside [0, 1].
func (c Color) ScA() float32 { return c.scrgb.a }

// ScR returns the linear red channel.
func (c Color) ScR() float32 { return c.scrgb.r }

// ScG returns the linear green channel.
func (c Color) ScG() float32 { return c.scrgb.g }

// ScB returns the linear blue channel.
func (c Color) ScB() float32 { return c.scrgb.b }

// ColorContext returns the color's profile, or nil for sRGB colors.
func (c Color) ColorContext() *ColorContext { return c.context }

// NativeValues returns a copy of the native channel values, or nil when the
// color has no profile.
func (c Color) NativeValues() []float32 {
	if c.native == nil {
		return nil
	}
	return append([]float32(nil), c.native...)
}

// UInt32 returns the sRGB bytes packed as 0xAARRGGBB.
func (c Color) UInt32() uint32 {
	return uint32(c.srgb.a)<<24 | uint32(c.srgb.r)<<16 | uint32(c.srgb.g)<<8 | uint32(c.srgb.b)
}

// ToNRGBA converts the sRGB bytes to a non-premultiplied image/color value.
func (c Color) ToNRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.srgb.r, G: c.srgb.g, B: c.srgb.b, A: c.srgb.a}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}
