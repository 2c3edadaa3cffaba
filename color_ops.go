package media

import (
	"fmt"
	"math"

	icolor "github.com/gogpu/media/internal/color"
)

// Add returns the channel-wise sum of c and o.
//
// Colors without a profile add their scRGB channels, alpha included. Colors
// bound to equal profiles add their native values and derive the RGB
// channels from the sum. Any other pairing returns ErrColorContextMismatch.
func (c Color) Add(o Color) (Color, error) {
	return c.combine(o, "add", func(x, y float32) float32 { return x + y })
}

// Subtract returns the channel-wise difference c - o, with the same profile
// rules as Add.
func (c Color) Subtract(o Color) (Color, error) {
	return c.combine(o, "subtract", func(x, y float32) float32 { return x - y })
}

func (c Color) combine(o Color, op string, f func(x, y float32) float32) (Color, error) {
	if c.context == nil && o.context == nil {
		return FromScRgb(
			f(c.scrgb.a, o.scrgb.a),
			f(c.scrgb.r, o.scrgb.r),
			f(c.scrgb.g, o.scrgb.g),
			f(c.scrgb.b, o.scrgb.b),
		), nil
	}
	if !ContextsEqual(c.context, o.context) {
		return Color{}, fmt.Errorf("%w: cannot %s colors in %v and %v",
			ErrColorContextMismatch, op, describeContext(c.context), describeContext(o.context))
	}
	if len(c.native) != len(o.native) {
		return Color{}, &DimensionMismatchError{Got: len(o.native), Want: len(c.native)}
	}

	r := Color{
		context: c.context,
		native:  make([]float32, len(c.native)),
	}
	for i := range c.native {
		r.native[i] = f(c.native[i], o.native[i])
	}
	r.setAlpha(f(c.scrgb.a, o.scrgb.a))
	if err := r.computeScRgb(); err != nil {
		return Color{}, err
	}
	return r, nil
}

func describeContext(ctx *ColorContext) string {
	if ctx == nil {
		return "sRGB"
	}
	return ctx.String()
}

// Multiply scales every scRGB channel of c, alpha included, by s.
//
// For a color with a profile the native values are recomputed from the
// scaled sRGB bytes, not scaled directly, so they carry the byte rounding.
func (c Color) Multiply(s float32) (Color, error) {
	r := FromScRgb(c.scrgb.a*s, c.scrgb.r*s, c.scrgb.g*s, c.scrgb.b*s)
	if c.context == nil {
		return r, nil
	}
	r.context = c.context
	if err := r.computeNative(); err != nil {
		return Color{}, err
	}
	return r, nil
}

// Equal reports whether c and o are exactly equal.
//
// Colors without a profile compare their scRGB channels. Colors with
// profiles must have profiles of the same color space family, equal native
// values and equal alpha; the profiles need not be equal otherwise.
// A color with a profile never equals one without.
func (c Color) Equal(o Color) bool {
	switch {
	case c.context == nil && o.context == nil:
		return c.scrgb == o.scrgb
	case c.context == nil || o.context == nil:
		return false
	case c.context.ColorSpaceFamily() != o.context.ColorSpaceFamily():
		return false
	case len(c.native) != len(o.native):
		return false
	}
	for i := range c.native {
		if c.native[i] != o.native[i] {
			return false
		}
	}
	return c.scrgb.a == o.scrgb.a
}

// AreClose reports whether a and b are equal within float32 rounding.
// Native values are compared when both colors have them, otherwise the
// scRGB channels. Alpha is always compared.
func AreClose(a, b Color) bool {
	if a.native != nil && b.native != nil {
		if len(a.native) != len(b.native) {
			return false
		}
		for i := range a.native {
			if !floatClose(a.native[i], b.native[i]) {
				return false
			}
		}
	} else if !floatClose(a.scrgb.r, b.scrgb.r) ||
		!floatClose(a.scrgb.g, b.scrgb.g) ||
		!floatClose(a.scrgb.b, b.scrgb.b) {
		return false
	}
	return floatClose(a.scrgb.a, b.scrgb.a)
}

// float32Epsilon is the difference between 1 and the next float32.
const float32Epsilon = 1.192092896e-07

func floatClose(a, b float32) bool {
	if a == b {
		return true
	}
	eps := (math.Abs(float64(a)) + math.Abs(float64(b)) + 10) * float32Epsilon
	d := float64(a) - float64(b)
	return -eps < d && eps > d
}

// Clamp returns c with all four scRGB channels limited to [0, 1].
// Native values are left as they are.
func (c Color) Clamp() Color {
	r := c
	r.scrgb = argbF{
		a: icolor.Clamp01(c.scrgb.a),
		r: icolor.Clamp01(c.scrgb.r),
		g: icolor.Clamp01(c.scrgb.g),
		b: icolor.Clamp01(c.scrgb.b),
	}
	r.srgb = scRgbToBytes(r.scrgb)
	r.native = c.NativeValues()
	return r
}

// canSetChannels reports whether the individual RGB channels may be set.
func (c Color) canSetChannels() bool {
	if c.context == nil {
		return true
	}
	f := c.context.ColorSpaceFamily()
	return f == ColorSpaceSrgb || f == ColorSpaceScRgb
}

// withChannel sets one RGB channel through set and resynchronises the
// native values.
func (c Color) withChannel(name string, set func(*Color)) (Color, error) {
	if !c.canSetChannels() {
		return Color{}, fmt.Errorf("%w: cannot set %s on a color in a %s profile",
			ErrInvalidOperation, name, c.context.ColorSpaceFamily())
	}
	r := c
	r.native = nil
	set(&r)
	if r.context != nil {
		if err := r.computeNative(); err != nil {
			return Color{}, err
		}
	}
	return r, nil
}

// WithR returns c with the sRGB red byte set to v.
// Colors in profiles other than sRGB or scRGB return ErrInvalidOperation.
func (c Color) WithR(v uint8) (Color, error) {
	return c.withChannel("R", func(r *Color) {
		r.srgb.r, r.scrgb.r = v, icolor.SRGBToLinear(v)
	})
}

// WithG returns c with the sRGB green byte set to v.
func (c Color) WithG(v uint8) (Color, error) {
	return c.withChannel("G", func(r *Color) {
		r.srgb.g, r.scrgb.g = v, icolor.SRGBToLinear(v)
	})
}

// WithB returns c with the sRGB blue byte set to v.
func (c Color) WithB(v uint8) (Color, error) {
	return c.withChannel("B", func(r *Color) {
		r.srgb.b, r.scrgb.b = v, icolor.SRGBToLinear(v)
	})
}

// WithScR returns c with the linear red channel set to v.
func (c Color) WithScR(v float32) (Color, error) {
	return c.withChannel("ScR", func(r *Color) {
		r.scrgb.r, r.srgb.r = v, icolor.LinearToSRGB(v)
	})
}

// WithScG returns c with the linear green channel set to v.
func (c Color) WithScG(v float32) (Color, error) {
	return c.withChannel("ScG", func(r *Color) {
		r.scrgb.g, r.srgb.g = v, icolor.LinearToSRGB(v)
	})
}

// WithScB returns c with the linear blue channel set to v.
func (c Color) WithScB(v float32) (Color, error) {
	return c.withChannel("ScB", func(r *Color) {
		r.scrgb.b, r.srgb.b = v, icolor.LinearToSRGB(v)
	})
}

// WithA returns c with the alpha byte set to v.
func (c Color) WithA(v uint8) Color {
	r := c
	r.native = c.NativeValues()
	r.srgb.a, r.scrgb.a = v, float32(v)/255
	return r
}

// WithScA returns c with the scRGB alpha set to v. The byte alpha is the
// clamped projection of v.
func (c Color) WithScA(v float32) Color {
	r := c
	r.native = c.NativeValues()
	r.setAlpha(v)
	return r
}
