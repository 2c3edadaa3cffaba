package media

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"

	"seehuhn.de/go/icc"
)

// ColorSpaceFamily classifies the color space of a profile.
type ColorSpaceFamily int

const (
	// ColorSpaceUnknown covers profiles whose space is not one of the others,
	// including XYZ, Lab and the other three-component connection spaces.
	ColorSpaceUnknown ColorSpaceFamily = iota
	// ColorSpaceSrgb is the standard gamma-encoded sRGB space.
	ColorSpaceSrgb
	// ColorSpaceScRgb is linear scRGB.
	ColorSpaceScRgb
	// ColorSpaceRgb is any other RGB space.
	ColorSpaceRgb
	// ColorSpaceCmyk is a four-ink CMYK space.
	ColorSpaceCmyk
	// ColorSpaceGray is a single-channel gray space.
	ColorSpaceGray
	// ColorSpaceMultichannel is an n-colorant space (2CLR to FCLR).
	ColorSpaceMultichannel
)

// String returns the family name.
func (f ColorSpaceFamily) String() string {
	switch f {
	case ColorSpaceSrgb:
		return "Srgb"
	case ColorSpaceScRgb:
		return "ScRgb"
	case ColorSpaceRgb:
		return "Rgb"
	case ColorSpaceCmyk:
		return "Cmyk"
	case ColorSpaceGray:
		return "Gray"
	case ColorSpaceMultichannel:
		return "Multichannel"
	default:
		return "Unknown"
	}
}

// ProfileHeader holds the numeric fields of the 128-byte ICC profile header.
// Signatures are kept as their big-endian 32-bit values; the date and
// attribute fields are kept as the raw words of the header.
type ProfileHeader struct {
	Size            uint32
	CMMType         uint32
	Version         uint32
	Class           uint32
	ColorSpace      uint32
	ConnectionSpace uint32
	DateTime        [3]uint32
	Signature       uint32
	Platform        uint32
	Flags           uint32
	Manufacturer    uint32
	Model           uint32
	Attributes      [2]uint32
	RenderingIntent uint32
	Illuminant      [3]int32
	Creator         uint32
}

const (
	profileHeaderSize = 128
	profileMagic      = 0x61637370 // "acsp"
)

func parseProfileHeader(data []byte) (ProfileHeader, error) {
	if len(data) < profileHeaderSize {
		return ProfileHeader{}, fmt.Errorf("%w: profile of %d bytes has no header", ErrMalformedData, len(data))
	}
	u := func(off int) uint32 { return binary.BigEndian.Uint32(data[off:]) }

	h := ProfileHeader{
		Size:            u(0),
		CMMType:         u(4),
		Version:         u(8),
		Class:           u(12),
		ColorSpace:      u(16),
		ConnectionSpace: u(20),
		DateTime:        [3]uint32{u(24), u(28), u(32)},
		Signature:       u(36),
		Platform:        u(40),
		Flags:           u(44),
		Manufacturer:    u(48),
		Model:           u(52),
		Attributes:      [2]uint32{u(56), u(60)},
		RenderingIntent: u(64),
		Illuminant:      [3]int32{int32(u(68)), int32(u(72)), int32(u(76))},
		Creator:         u(80),
	}
	if h.Signature != profileMagic {
		return ProfileHeader{}, fmt.Errorf("%w: missing profile signature", ErrMalformedData)
	}
	if int64(h.Size) > int64(len(data)) {
		return ProfileHeader{}, fmt.Errorf("%w: header size %d exceeds %d bytes of data", ErrMalformedData, h.Size, len(data))
	}
	return h, nil
}

// familyFromSignature maps a header color space signature that the icc
// package does not classify.
func familyFromSignature(sig uint32) (ColorSpaceFamily, int) {
	switch string(binary.BigEndian.AppendUint32(nil, sig)) {
	case "XYZ ", "Lab ", "Luv ", "YCbr", "Yxy ", "HSV ", "HLS ", "CMY ":
		return ColorSpaceUnknown, 3
	case "RGB ":
		return ColorSpaceRgb, 3
	case "GRAY":
		return ColorSpaceGray, 1
	case "CMYK":
		return ColorSpaceCmyk, 4
	}
	// nCLR with n a hex digit from 2 to F.
	if sig&0x00FFFFFF == 0x00434C52 {
		n := sig >> 24
		switch {
		case n >= '2' && n <= '9':
			return ColorSpaceMultichannel, int(n - '0')
		case n >= 'A' && n <= 'F':
			return ColorSpaceMultichannel, int(n-'A') + 10
		}
	}
	return ColorSpaceUnknown, 0
}

// ColorContext describes the color space of native color values through an
// ICC profile. A ColorContext is immutable after creation and safe for
// concurrent use.
type ColorContext struct {
	uri         *url.URL
	profile     []byte
	header      ProfileHeader
	family      ColorSpaceFamily
	channels    int
	valid       bool
	standard    bool
	transformer ColorTransformer
}

// NewColorContext loads the profile at uri. The uri is a file path, a
// file://, http:// or https:// URI, or a URI understood by the configured
// ProfileFetcher.
//
// A profile that cannot be fetched returns ErrProfileNotFound; one that
// cannot be parsed returns ErrMalformedData.
func NewColorContext(uri string, opts ...ContextOption) (*ColorContext, error) {
	u, err := parseProfileURI(uri)
	if err != nil {
		return nil, err
	}
	o := applyContextOptions(opts)

	data, err := readProfile(o.fetcher, u)
	if err != nil {
		if isProfileTooLarge(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrProfileNotFound, u, err)
	}

	c := &ColorContext{uri: u, transformer: o.transformer}
	if err := c.load(data); err != nil {
		return nil, fmt.Errorf("profile %s: %w", u, err)
	}
	return c, nil
}

// NewColorContextFromBytes parses a profile held in memory.
//
// If dontThrow is set, a profile that fails to parse yields a context with
// IsValid() == false instead of an error.
func NewColorContextFromBytes(data []byte, dontThrow bool, opts ...ContextOption) (*ColorContext, error) {
	o := applyContextOptions(opts)
	c := &ColorContext{transformer: o.transformer}
	if err := c.load(data); err != nil {
		if dontThrow {
			Logger().Debug("ignoring unreadable color profile", "size", len(data), "err", err)
			return &ColorContext{transformer: o.transformer}, nil
		}
		return nil, err
	}
	return c, nil
}

var (
	standardOnce sync.Once
	standardCtx  *ColorContext
)

// NewColorContextFromPixelFormat returns the context that describes the
// pixels of pf. Formats in the 8-bit sRGB family share the standard sRGB
// context, which is built once per process; extended range formats return
// ErrNotSupported.
//
// The standard profile is fetched from the embedded:sRGB URI. If a custom
// fetcher cannot provide it, the profile compiled into the binary is used.
func NewColorContextFromPixelFormat(pf PixelFormat, opts ...ContextOption) (*ColorContext, error) {
	if !pf.hasStandardProfile() {
		return nil, fmt.Errorf("%w: no color context for pixel format %s", ErrNotSupported, pf)
	}
	if len(opts) == 0 {
		standardOnce.Do(func() {
			standardCtx = newStandardContext(defaultContextOptions())
		})
		return standardCtx, nil
	}
	return newStandardContext(applyContextOptions(opts)), nil
}

// standardContext returns the shared standard sRGB context.
func standardContext() *ColorContext {
	c, _ := NewColorContextFromPixelFormat(PixelFormatBgra32)
	return c
}

func newStandardContext(o contextOptions) *ColorContext {
	u, _ := url.Parse(standardProfileURI)
	data, err := readProfile(o.fetcher, u)
	if err != nil {
		Logger().Warn("standard color profile unavailable, using embedded sRGB", "uri", u, "err", err)
		data = icc.SRGBv4Profile
	}

	c := &ColorContext{uri: u, transformer: o.transformer}
	if err := c.load(data); err != nil {
		Logger().Warn("standard color profile unreadable, using embedded sRGB", "uri", u, "err", err)
		if err := c.load(icc.SRGBv4Profile); err != nil {
			panic("media: embedded sRGB profile: " + err.Error())
		}
	}
	c.standard = true
	c.family = ColorSpaceSrgb
	c.channels = 3
	return c
}

// load parses the profile bytes into c.
func (c *ColorContext) load(data []byte) error {
	if len(data) > maxProfileSize {
		return errProfileTooLarge
	}
	h, err := parseProfileHeader(data)
	if err != nil {
		return err
	}
	raw := bytes.Clone(data)
	// Decode zeroes the hashed header fields of a profile that carries an ID.
	p, err := icc.Decode(bytes.Clone(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	switch p.ColorSpace {
	case icc.RGBSpace:
		c.family, c.channels = ColorSpaceRgb, 3
	case icc.GraySpace:
		c.family, c.channels = ColorSpaceGray, 1
	case icc.CMYKSpace:
		c.family, c.channels = ColorSpaceCmyk, 4
	default:
		c.family, c.channels = familyFromSignature(h.ColorSpace)
	}

	c.profile = raw
	c.header = h
	c.valid = true
	return nil
}

// NumChannels returns the number of native channels, from 0 to 15.
func (c *ColorContext) NumChannels() int {
	return c.channels
}

// ColorSpaceFamily returns the family of the profile's color space.
func (c *ColorContext) ColorSpaceFamily() ColorSpaceFamily {
	return c.family
}

// Header returns the cached profile header.
func (c *ColorContext) Header() ProfileHeader {
	return c.header
}

// ProfileURI returns a copy of the URI the profile was loaded from, or nil
// for contexts created from bytes.
func (c *ColorContext) ProfileURI() *url.URL {
	if c.uri == nil {
		return nil
	}
	u := *c.uri
	return &u
}

// IsValid reports whether the context holds a parsed profile.
func (c *ColorContext) IsValid() bool {
	return c.valid
}

var errInvalidContext = fmt.Errorf("%w: color context holds no valid profile", ErrInvalidOperation)

// IsStandard reports whether c is a standard sRGB context.
func (c *ColorContext) IsStandard() bool {
	return c.standard
}

// OpenProfileStream returns a reader over the raw profile bytes.
// Contexts without a profile return ErrNilProfile.
func (c *ColorContext) OpenProfileStream() (io.ReadCloser, error) {
	if !c.valid {
		return nil, ErrNilProfile
	}
	return io.NopCloser(bytes.NewReader(c.profile)), nil
}

// Equal reports whether both contexts have the same profile header.
func (c *ColorContext) Equal(o *ColorContext) bool {
	return ContextsEqual(c, o)
}

// ContextsEqual compares two possibly nil contexts. Two nil contexts are
// equal; a nil and a non-nil context are not.
func ContextsEqual(a, b *ColorContext) bool {
	switch {
	case a == nil || b == nil:
		return a == b
	case a == b:
		return true
	}
	return a.header == b.header
}

// String returns the profile URI, or a description of an anonymous profile.
func (c *ColorContext) String() string {
	if c.uri != nil {
		return c.uri.String()
	}
	return fmt.Sprintf("profile(%s, %d channels)", c.family, c.channels)
}

// colorTransformer returns the transformer bound to c, or the process-wide
// one.
func (c *ColorContext) colorTransformer() ColorTransformer {
	if c != nil && c.transformer != nil {
		return c.transformer
	}
	return colorTransformer()
}

// ColorContextSource exposes the color profiles embedded in an image.
type ColorContextSource interface {
	// ColorContextCount returns the number of embedded profiles.
	ColorContextCount() (int, error)
	// ColorContexts fills dst, which has ColorContextCount entries, with the
	// raw profile bytes.
	ColorContexts(dst [][]byte) error
}

// GetColorContextsHelper reads every profile of src and wraps each one in a
// ColorContext. Profiles that fail to parse yield invalid contexts.
func GetColorContextsHelper(src ColorContextSource) ([]*ColorContext, error) {
	n, err := src.ColorContextCount()
	if errors.Is(err, ErrNotSupported) {
		Logger().Debug("color contexts not supported by source")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("color context count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative color context count %d", ErrMalformedData, n)
	}
	if n == 0 {
		return nil, nil
	}

	raw := make([][]byte, n)
	if err := src.ColorContexts(raw); err != nil {
		return nil, fmt.Errorf("color contexts: %w", err)
	}
	out := make([]*ColorContext, n)
	for i, data := range raw {
		// dontThrow never reports an error
		out[i], _ = NewColorContextFromBytes(data, true)
	}
	return out, nil
}
