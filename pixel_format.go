package media

// PixelFormat identifies a bitmap pixel layout. It is used to pick the
// color context that describes the pixels of a format.
type PixelFormat int

// Pixel formats.
const (
	PixelFormatDefault PixelFormat = iota
	PixelFormatIndexed1
	PixelFormatIndexed2
	PixelFormatIndexed4
	PixelFormatIndexed8
	PixelFormatBlackWhite
	PixelFormatGray2
	PixelFormatGray4
	PixelFormatGray8
	PixelFormatBgr555
	PixelFormatBgr565
	PixelFormatBgr24
	PixelFormatRgb24
	PixelFormatBgr101010
	PixelFormatBgr32
	PixelFormatBgra32
	PixelFormatPbgra32
	PixelFormatRgb48
	PixelFormatRgba64
	PixelFormatPrgba64
	PixelFormatGray16
	PixelFormatGray32Float
	PixelFormatRgb128Float
	PixelFormatRgba128Float
	PixelFormatPrgba128Float
	PixelFormatCmyk32
)

var pixelFormatNames = [...]string{
	PixelFormatDefault:       "Default",
	PixelFormatIndexed1:      "Indexed1",
	PixelFormatIndexed2:      "Indexed2",
	PixelFormatIndexed4:      "Indexed4",
	PixelFormatIndexed8:      "Indexed8",
	PixelFormatBlackWhite:    "BlackWhite",
	PixelFormatGray2:         "Gray2",
	PixelFormatGray4:         "Gray4",
	PixelFormatGray8:         "Gray8",
	PixelFormatBgr555:        "Bgr555",
	PixelFormatBgr565:        "Bgr565",
	PixelFormatBgr24:         "Bgr24",
	PixelFormatRgb24:         "Rgb24",
	PixelFormatBgr101010:     "Bgr101010",
	PixelFormatBgr32:         "Bgr32",
	PixelFormatBgra32:        "Bgra32",
	PixelFormatPbgra32:       "Pbgra32",
	PixelFormatRgb48:         "Rgb48",
	PixelFormatRgba64:        "Rgba64",
	PixelFormatPrgba64:       "Prgba64",
	PixelFormatGray16:        "Gray16",
	PixelFormatGray32Float:   "Gray32Float",
	PixelFormatRgb128Float:   "Rgb128Float",
	PixelFormatRgba128Float:  "Rgba128Float",
	PixelFormatPrgba128Float: "Prgba128Float",
	PixelFormatCmyk32:        "Cmyk32",
}

// String returns the format name.
func (f PixelFormat) String() string {
	if f >= 0 && int(f) < len(pixelFormatNames) {
		return pixelFormatNames[f]
	}
	return "Unknown"
}

// hasStandardProfile reports whether the format's pixels are described by
// the standard sRGB context.
func (f PixelFormat) hasStandardProfile() bool {
	switch f {
	case PixelFormatIndexed1, PixelFormatIndexed2, PixelFormatIndexed4, PixelFormatIndexed8,
		PixelFormatBlackWhite, PixelFormatGray2, PixelFormatGray4, PixelFormatGray8,
		PixelFormatBgr555, PixelFormatBgr565, PixelFormatBgr24, PixelFormatRgb24,
		PixelFormatBgr101010, PixelFormatBgr32, PixelFormatBgra32, PixelFormatPbgra32:
		return true
	}
	return false
}
