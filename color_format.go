package media

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// contextColorPrefix starts the string form of colors with a profile.
const contextColorPrefix = "ContextColor "

// scRgbPrefix starts the string form of scRGB colors.
const scRgbPrefix = "sc#"

// decimalSeparator returns the decimal separator of the locale.
func decimalSeparator(tag language.Tag) string {
	if tag == language.Und {
		return "."
	}
	s := message.NewPrinter(tag).Sprint(number.Decimal(1.5, number.MaxFractionDigits(1)))
	s = strings.TrimPrefix(s, "1")
	s = strings.TrimSuffix(s, "5")
	if s == "" {
		return "."
	}
	return s
}

// listSeparator returns the separator between numbers in a list: a
// semicolon when the locale writes decimals with a comma, a comma
// otherwise.
func listSeparator(tag language.Tag) string {
	if decimalSeparator(tag) == "," {
		return ";"
	}
	return ","
}

// String returns the color in the invariant locale: #AARRGGBB for sRGB
// colors, sc#a, r, g, b for colors made from scRGB values, and
// ContextColor uri a,c0,c1,... for colors with a profile.
func (c Color) String() string {
	return c.Format("", language.Und)
}

// Format returns the color as a string in the given locale.
//
// For colors without a profile, an empty format gives #AARRGGBB (or the
// scRGB form when the color was made from scRGB values), and any other
// format is a fmt verb such as "%.3f" applied to each scRGB channel.
// Colors with a profile always use the shortest exact form of their alpha
// and native values; format is ignored.
func (c Color) Format(format string, tag language.Tag) string {
	sep := listSeparator(tag)
	num := func(v float32) string {
		if format == "" {
			return roundTrip(v, tag)
		}
		return message.NewPrinter(tag).Sprintf(format, v)
	}

	var sb strings.Builder
	if c.context == nil {
		if format == "" && !c.fromScRgb {
			fmt.Fprintf(&sb, "#%02X%02X%02X%02X", c.srgb.a, c.srgb.r, c.srgb.g, c.srgb.b)
			return sb.String()
		}
		sb.WriteString(scRgbPrefix)
		for i, v := range []float32{c.scrgb.a, c.scrgb.r, c.scrgb.g, c.scrgb.b} {
			if i > 0 {
				sb.WriteString(sep)
				sb.WriteByte(' ')
			}
			sb.WriteString(num(v))
		}
		return sb.String()
	}

	format = ""
	sb.WriteString(contextColorPrefix)
	if u := c.context.ProfileURI(); u != nil {
		sb.WriteString(u.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(num(c.scrgb.a))
	sb.WriteString(sep)
	for i, v := range c.native {
		sb.WriteString(num(v))
		if i < len(c.native)-1 {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}

// roundTrip formats v with the fewest digits that parse back to v.
func roundTrip(v float32, tag language.Tag) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if dec := decimalSeparator(tag); dec != "." {
		s = strings.Replace(s, ".", dec, 1)
	}
	return s
}

// ParseColor parses the string forms produced by Format, the short hex
// forms #RGB, #ARGB and #RRGGBB, and known color names.
//
// Numbers are read in the given locale. Profiles named by ContextColor
// strings are loaded with NewColorContext and opts.
func ParseColor(s string, tag language.Tag, opts ...ContextOption) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("%w: empty color string", ErrInvalidArgument)
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, scRgbPrefix):
		return parseScRgb(s[len(scRgbPrefix):], tag)
	case strings.HasPrefix(s, contextColorPrefix):
		return parseContextColor(s[len(contextColorPrefix):], tag, opts)
	}
	if k, ok := KnownColorFromName(s); ok {
		return k.Color(), nil
	}
	return Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
}

// parseHexColor parses #RGB, #ARGB, #RRGGBB and #AARRGGBB.
func parseHexColor(s string) (Color, error) {
	digits := s[1:]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
	}
	switch len(digits) {
	case 3:
		v |= 0xF000
		fallthrough
	case 4:
		// Each nibble doubles into a byte.
		var argb uint32
		for shift := 12; shift >= 0; shift -= 4 {
			n := uint32(v>>uint(shift)) & 0xF
			argb = argb<<8 | n*0x11
		}
		return FromUInt32(argb), nil
	case 6:
		return FromUInt32(0xFF000000 | uint32(v)), nil
	case 8:
		return FromUInt32(uint32(v)), nil
	}
	return Color{}, fmt.Errorf("%w: bad hex color length %q", ErrInvalidArgument, s)
}

// parseNumbers splits a list on the locale's list separator and white space.
func parseNumbers(s string, tag language.Tag) ([]float32, error) {
	sep := listSeparator(tag)
	dec := decimalSeparator(tag)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(sep, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float32, len(fields))
	for i, f := range fields {
		if dec != "." {
			f = strings.Replace(f, dec, ".", 1)
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidArgument, fields[i])
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseScRgb(s string, tag language.Tag) (Color, error) {
	v, err := parseNumbers(s, tag)
	if err != nil {
		return Color{}, err
	}
	switch len(v) {
	case 3:
		return FromScRgb(1, v[0], v[1], v[2]), nil
	case 4:
		return FromScRgb(v[0], v[1], v[2], v[3]), nil
	}
	return Color{}, fmt.Errorf("%w: sc# color needs 3 or 4 values, got %d", ErrInvalidArgument, len(v))
}

func parseContextColor(s string, tag language.Tag, opts []ContextOption) (Color, error) {
	s = strings.TrimSpace(s)
	uri, rest, ok := strings.Cut(s, " ")
	if !ok {
		return Color{}, fmt.Errorf("%w: context color without values", ErrInvalidArgument)
	}
	v, err := parseNumbers(rest, tag)
	if err != nil {
		return Color{}, err
	}
	if len(v) < 2 {
		return Color{}, fmt.Errorf("%w: context color needs alpha and channel values", ErrInvalidArgument)
	}
	if uri == standardProfileURI {
		ctx, err := NewColorContextFromPixelFormat(PixelFormatBgra32, opts...)
		if err != nil {
			return Color{}, err
		}
		return FromContextValues(ctx, v[0], v[1:])
	}
	// Format writes escaped URIs; plain paths go back unescaped.
	if u, err := url.Parse(uri); err == nil && u.Scheme == "" {
		uri = u.Path
	}
	return FromAValues(v[0], v[1:], uri, opts...)
}
