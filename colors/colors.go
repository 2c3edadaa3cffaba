// Package colors provides the known colors as media.Color values.
//
//	pen := media.NewPen(media.NewSolidColorBrush(colors.CornflowerBlue), 1)
package colors

import "github.com/gogpu/media"

// Known colors.
var (
	AliceBlue            = media.KnownColorAliceBlue.Color()
	AntiqueWhite         = media.KnownColorAntiqueWhite.Color()
	Aqua                 = media.KnownColorAqua.Color()
	Aquamarine           = media.KnownColorAquamarine.Color()
	Azure                = media.KnownColorAzure.Color()
	Beige                = media.KnownColorBeige.Color()
	Bisque               = media.KnownColorBisque.Color()
	Black                = media.KnownColorBlack.Color()
	BlanchedAlmond       = media.KnownColorBlanchedAlmond.Color()
	Blue                 = media.KnownColorBlue.Color()
	BlueViolet           = media.KnownColorBlueViolet.Color()
	Brown                = media.KnownColorBrown.Color()
	BurlyWood            = media.KnownColorBurlyWood.Color()
	CadetBlue            = media.KnownColorCadetBlue.Color()
	Chartreuse           = media.KnownColorChartreuse.Color()
	Chocolate            = media.KnownColorChocolate.Color()
	Coral                = media.KnownColorCoral.Color()
	CornflowerBlue       = media.KnownColorCornflowerBlue.Color()
	Cornsilk             = media.KnownColorCornsilk.Color()
	Crimson              = media.KnownColorCrimson.Color()
	Cyan                 = media.KnownColorCyan.Color()
	DarkBlue             = media.KnownColorDarkBlue.Color()
	DarkCyan             = media.KnownColorDarkCyan.Color()
	DarkGoldenrod        = media.KnownColorDarkGoldenrod.Color()
	DarkGray             = media.KnownColorDarkGray.Color()
	DarkGreen            = media.KnownColorDarkGreen.Color()
	DarkKhaki            = media.KnownColorDarkKhaki.Color()
	DarkMagenta          = media.KnownColorDarkMagenta.Color()
	DarkOliveGreen       = media.KnownColorDarkOliveGreen.Color()
	DarkOrange           = media.KnownColorDarkOrange.Color()
	DarkOrchid           = media.KnownColorDarkOrchid.Color()
	DarkRed              = media.KnownColorDarkRed.Color()
	DarkSalmon           = media.KnownColorDarkSalmon.Color()
	DarkSeaGreen         = media.KnownColorDarkSeaGreen.Color()
	DarkSlateBlue        = media.KnownColorDarkSlateBlue.Color()
	DarkSlateGray        = media.KnownColorDarkSlateGray.Color()
	DarkTurquoise        = media.KnownColorDarkTurquoise.Color()
	DarkViolet           = media.KnownColorDarkViolet.Color()
	DeepPink             = media.KnownColorDeepPink.Color()
	DeepSkyBlue          = media.KnownColorDeepSkyBlue.Color()
	DimGray              = media.KnownColorDimGray.Color()
	DodgerBlue           = media.KnownColorDodgerBlue.Color()
	Firebrick            = media.KnownColorFirebrick.Color()
	FloralWhite          = media.KnownColorFloralWhite.Color()
	ForestGreen          = media.KnownColorForestGreen.Color()
	Fuchsia              = media.KnownColorFuchsia.Color()
	Gainsboro            = media.KnownColorGainsboro.Color()
	GhostWhite           = media.KnownColorGhostWhite.Color()
	Gold                 = media.KnownColorGold.Color()
	Goldenrod            = media.KnownColorGoldenrod.Color()
	Gray                 = media.KnownColorGray.Color()
	Green                = media.KnownColorGreen.Color()
	GreenYellow          = media.KnownColorGreenYellow.Color()
	Honeydew             = media.KnownColorHoneydew.Color()
	HotPink              = media.KnownColorHotPink.Color()
	IndianRed            = media.KnownColorIndianRed.Color()
	Indigo               = media.KnownColorIndigo.Color()
	Ivory                = media.KnownColorIvory.Color()
	Khaki                = media.KnownColorKhaki.Color()
	Lavender             = media.KnownColorLavender.Color()
	LavenderBlush        = media.KnownColorLavenderBlush.Color()
	LawnGreen            = media.KnownColorLawnGreen.Color()
	LemonChiffon         = media.KnownColorLemonChiffon.Color()
	LightBlue            = media.KnownColorLightBlue.Color()
	LightCoral           = media.KnownColorLightCoral.Color()
	LightCyan            = media.KnownColorLightCyan.Color()
	LightGoldenrodYellow = media.KnownColorLightGoldenrodYellow.Color()
	LightGray            = media.KnownColorLightGray.Color()
	LightGreen           = media.KnownColorLightGreen.Color()
	LightPink            = media.KnownColorLightPink.Color()
	LightSalmon          = media.KnownColorLightSalmon.Color()
	LightSeaGreen        = media.KnownColorLightSeaGreen.Color()
	LightSkyBlue         = media.KnownColorLightSkyBlue.Color()
	LightSlateGray       = media.KnownColorLightSlateGray.Color()
	LightSteelBlue       = media.KnownColorLightSteelBlue.Color()
	LightYellow          = media.KnownColorLightYellow.Color()
	Lime                 = media.KnownColorLime.Color()
	LimeGreen            = media.KnownColorLimeGreen.Color()
	Linen                = media.KnownColorLinen.Color()
	Magenta              = media.KnownColorMagenta.Color()
	Maroon               = media.KnownColorMaroon.Color()
	MediumAquamarine     = media.KnownColorMediumAquamarine.Color()
	MediumBlue           = media.KnownColorMediumBlue.Color()
	MediumOrchid         = media.KnownColorMediumOrchid.Color()
	MediumPurple         = media.KnownColorMediumPurple.Color()
	MediumSeaGreen       = media.KnownColorMediumSeaGreen.Color()
	MediumSlateBlue      = media.KnownColorMediumSlateBlue.Color()
	MediumSpringGreen    = media.KnownColorMediumSpringGreen.Color()
	MediumTurquoise      = media.KnownColorMediumTurquoise.Color()
	MediumVioletRed      = media.KnownColorMediumVioletRed.Color()
	MidnightBlue         = media.KnownColorMidnightBlue.Color()
	MintCream            = media.KnownColorMintCream.Color()
	MistyRose            = media.KnownColorMistyRose.Color()
	Moccasin             = media.KnownColorMoccasin.Color()
	NavajoWhite          = media.KnownColorNavajoWhite.Color()
	Navy                 = media.KnownColorNavy.Color()
	OldLace              = media.KnownColorOldLace.Color()
	Olive                = media.KnownColorOlive.Color()
	OliveDrab            = media.KnownColorOliveDrab.Color()
	Orange               = media.KnownColorOrange.Color()
	OrangeRed            = media.KnownColorOrangeRed.Color()
	Orchid               = media.KnownColorOrchid.Color()
	PaleGoldenrod        = media.KnownColorPaleGoldenrod.Color()
	PaleGreen            = media.KnownColorPaleGreen.Color()
	PaleTurquoise        = media.KnownColorPaleTurquoise.Color()
	PaleVioletRed        = media.KnownColorPaleVioletRed.Color()
	PapayaWhip           = media.KnownColorPapayaWhip.Color()
	PeachPuff            = media.KnownColorPeachPuff.Color()
	Peru                 = media.KnownColorPeru.Color()
	Pink                 = media.KnownColorPink.Color()
	Plum                 = media.KnownColorPlum.Color()
	PowderBlue           = media.KnownColorPowderBlue.Color()
	Purple               = media.KnownColorPurple.Color()
	Red                  = media.KnownColorRed.Color()
	RosyBrown            = media.KnownColorRosyBrown.Color()
	RoyalBlue            = media.KnownColorRoyalBlue.Color()
	SaddleBrown          = media.KnownColorSaddleBrown.Color()
	Salmon               = media.KnownColorSalmon.Color()
	SandyBrown           = media.KnownColorSandyBrown.Color()
	SeaGreen             = media.KnownColorSeaGreen.Color()
	SeaShell             = media.KnownColorSeaShell.Color()
	Sienna               = media.KnownColorSienna.Color()
	Silver               = media.KnownColorSilver.Color()
	SkyBlue              = media.KnownColorSkyBlue.Color()
	SlateBlue            = media.KnownColorSlateBlue.Color()
	SlateGray            = media.KnownColorSlateGray.Color()
	Snow                 = media.KnownColorSnow.Color()
	SpringGreen          = media.KnownColorSpringGreen.Color()
	SteelBlue            = media.KnownColorSteelBlue.Color()
	Tan                  = media.KnownColorTan.Color()
	Teal                 = media.KnownColorTeal.Color()
	Thistle              = media.KnownColorThistle.Color()
	Tomato               = media.KnownColorTomato.Color()
	Transparent          = media.KnownColorTransparent.Color()
	Turquoise            = media.KnownColorTurquoise.Color()
	Violet               = media.KnownColorViolet.Color()
	Wheat                = media.KnownColorWheat.Color()
	White                = media.KnownColorWhite.Color()
	WhiteSmoke           = media.KnownColorWhiteSmoke.Color()
	Yellow               = media.KnownColorYellow.Color()
	YellowGreen          = media.KnownColorYellowGreen.Color()
)

// Named maps each known color name to its value.
var Named = func() map[string]media.Color {
	m := make(map[string]media.Color)
	for _, k := range media.KnownColors() {
		m[k.String()] = k.Color()
	}
	return m
}()
