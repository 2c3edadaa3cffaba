package media

import (
	"strings"

	"github.com/gogpu/media/internal/cache"
)

// KnownColor is one of the predefined named colors.
type KnownColor int

// Known colors, in alphabetical order.
const (
	KnownColorAliceBlue KnownColor = iota
	KnownColorAntiqueWhite
	KnownColorAqua
	KnownColorAquamarine
	KnownColorAzure
	KnownColorBeige
	KnownColorBisque
	KnownColorBlack
	KnownColorBlanchedAlmond
	KnownColorBlue
	KnownColorBlueViolet
	KnownColorBrown
	KnownColorBurlyWood
	KnownColorCadetBlue
	KnownColorChartreuse
	KnownColorChocolate
	KnownColorCoral
	KnownColorCornflowerBlue
	KnownColorCornsilk
	KnownColorCrimson
	KnownColorCyan
	KnownColorDarkBlue
	KnownColorDarkCyan
	KnownColorDarkGoldenrod
	KnownColorDarkGray
	KnownColorDarkGreen
	KnownColorDarkKhaki
	KnownColorDarkMagenta
	KnownColorDarkOliveGreen
	KnownColorDarkOrange
	KnownColorDarkOrchid
	KnownColorDarkRed
	KnownColorDarkSalmon
	KnownColorDarkSeaGreen
	KnownColorDarkSlateBlue
	KnownColorDarkSlateGray
	KnownColorDarkTurquoise
	KnownColorDarkViolet
	KnownColorDeepPink
	KnownColorDeepSkyBlue
	KnownColorDimGray
	KnownColorDodgerBlue
	KnownColorFirebrick
	KnownColorFloralWhite
	KnownColorForestGreen
	KnownColorFuchsia
	KnownColorGainsboro
	KnownColorGhostWhite
	KnownColorGold
	KnownColorGoldenrod
	KnownColorGray
	KnownColorGreen
	KnownColorGreenYellow
	KnownColorHoneydew
	KnownColorHotPink
	KnownColorIndianRed
	KnownColorIndigo
	KnownColorIvory
	KnownColorKhaki
	KnownColorLavender
	KnownColorLavenderBlush
	KnownColorLawnGreen
	KnownColorLemonChiffon
	KnownColorLightBlue
	KnownColorLightCoral
	KnownColorLightCyan
	KnownColorLightGoldenrodYellow
	KnownColorLightGray
	KnownColorLightGreen
	KnownColorLightPink
	KnownColorLightSalmon
	KnownColorLightSeaGreen
	KnownColorLightSkyBlue
	KnownColorLightSlateGray
	KnownColorLightSteelBlue
	KnownColorLightYellow
	KnownColorLime
	KnownColorLimeGreen
	KnownColorLinen
	KnownColorMagenta
	KnownColorMaroon
	KnownColorMediumAquamarine
	KnownColorMediumBlue
	KnownColorMediumOrchid
	KnownColorMediumPurple
	KnownColorMediumSeaGreen
	KnownColorMediumSlateBlue
	KnownColorMediumSpringGreen
	KnownColorMediumTurquoise
	KnownColorMediumVioletRed
	KnownColorMidnightBlue
	KnownColorMintCream
	KnownColorMistyRose
	KnownColorMoccasin
	KnownColorNavajoWhite
	KnownColorNavy
	KnownColorOldLace
	KnownColorOlive
	KnownColorOliveDrab
	KnownColorOrange
	KnownColorOrangeRed
	KnownColorOrchid
	KnownColorPaleGoldenrod
	KnownColorPaleGreen
	KnownColorPaleTurquoise
	KnownColorPaleVioletRed
	KnownColorPapayaWhip
	KnownColorPeachPuff
	KnownColorPeru
	KnownColorPink
	KnownColorPlum
	KnownColorPowderBlue
	KnownColorPurple
	KnownColorRed
	KnownColorRosyBrown
	KnownColorRoyalBlue
	KnownColorSaddleBrown
	KnownColorSalmon
	KnownColorSandyBrown
	KnownColorSeaGreen
	KnownColorSeaShell
	KnownColorSienna
	KnownColorSilver
	KnownColorSkyBlue
	KnownColorSlateBlue
	KnownColorSlateGray
	KnownColorSnow
	KnownColorSpringGreen
	KnownColorSteelBlue
	KnownColorTan
	KnownColorTeal
	KnownColorThistle
	KnownColorTomato
	KnownColorTransparent
	KnownColorTurquoise
	KnownColorViolet
	KnownColorWheat
	KnownColorWhite
	KnownColorWhiteSmoke
	KnownColorYellow
	KnownColorYellowGreen
)

// knownColorCount is the number of known colors.
const knownColorCount = int(KnownColorYellowGreen) + 1

var knownColorTable = [knownColorCount]struct {
	name string
	argb uint32
}{
	KnownColorAliceBlue:            {"AliceBlue", 0xFFF0F8FF},
	KnownColorAntiqueWhite:         {"AntiqueWhite", 0xFFFAEBD7},
	KnownColorAqua:                 {"Aqua", 0xFF00FFFF},
	KnownColorAquamarine:           {"Aquamarine", 0xFF7FFFD4},
	KnownColorAzure:                {"Azure", 0xFFF0FFFF},
	KnownColorBeige:                {"Beige", 0xFFF5F5DC},
	KnownColorBisque:               {"Bisque", 0xFFFFE4C4},
	KnownColorBlack:                {"Black", 0xFF000000},
	KnownColorBlanchedAlmond:       {"BlanchedAlmond", 0xFFFFEBCD},
	KnownColorBlue:                 {"Blue", 0xFF0000FF},
	KnownColorBlueViolet:           {"BlueViolet", 0xFF8A2BE2},
	KnownColorBrown:                {"Brown", 0xFFA52A2A},
	KnownColorBurlyWood:            {"BurlyWood", 0xFFDEB887},
	KnownColorCadetBlue:            {"CadetBlue", 0xFF5F9EA0},
	KnownColorChartreuse:           {"Chartreuse", 0xFF7FFF00},
	KnownColorChocolate:            {"Chocolate", 0xFFD2691E},
	KnownColorCoral:                {"Coral", 0xFFFF7F50},
	KnownColorCornflowerBlue:       {"CornflowerBlue", 0xFF6495ED},
	KnownColorCornsilk:             {"Cornsilk", 0xFFFFF8DC},
	KnownColorCrimson:              {"Crimson", 0xFFDC143C},
	KnownColorCyan:                 {"Cyan", 0xFF00FFFF},
	KnownColorDarkBlue:             {"DarkBlue", 0xFF00008B},
	KnownColorDarkCyan:             {"DarkCyan", 0xFF008B8B},
	KnownColorDarkGoldenrod:        {"DarkGoldenrod", 0xFFB8860B},
	KnownColorDarkGray:             {"DarkGray", 0xFFA9A9A9},
	KnownColorDarkGreen:            {"DarkGreen", 0xFF006400},
	KnownColorDarkKhaki:            {"DarkKhaki", 0xFFBDB76B},
	KnownColorDarkMagenta:          {"DarkMagenta", 0xFF8B008B},
	KnownColorDarkOliveGreen:       {"DarkOliveGreen", 0xFF556B2F},
	KnownColorDarkOrange:           {"DarkOrange", 0xFFFF8C00},
	KnownColorDarkOrchid:           {"DarkOrchid", 0xFF9932CC},
	KnownColorDarkRed:              {"DarkRed", 0xFF8B0000},
	KnownColorDarkSalmon:           {"DarkSalmon", 0xFFE9967A},
	KnownColorDarkSeaGreen:         {"DarkSeaGreen", 0xFF8FBC8F},
	KnownColorDarkSlateBlue:        {"DarkSlateBlue", 0xFF483D8B},
	KnownColorDarkSlateGray:        {"DarkSlateGray", 0xFF2F4F4F},
	KnownColorDarkTurquoise:        {"DarkTurquoise", 0xFF00CED1},
	KnownColorDarkViolet:           {"DarkViolet", 0xFF9400D3},
	KnownColorDeepPink:             {"DeepPink", 0xFFFF1493},
	KnownColorDeepSkyBlue:          {"DeepSkyBlue", 0xFF00BFFF},
	KnownColorDimGray:              {"DimGray", 0xFF696969},
	KnownColorDodgerBlue:           {"DodgerBlue", 0xFF1E90FF},
	KnownColorFirebrick:            {"Firebrick", 0xFFB22222},
	KnownColorFloralWhite:          {"FloralWhite", 0xFFFFFAF0},
	KnownColorForestGreen:          {"ForestGreen", 0xFF228B22},
	KnownColorFuchsia:              {"Fuchsia", 0xFFFF00FF},
	KnownColorGainsboro:            {"Gainsboro", 0xFFDCDCDC},
	KnownColorGhostWhite:           {"GhostWhite", 0xFFF8F8FF},
	KnownColorGold:                 {"Gold", 0xFFFFD700},
	KnownColorGoldenrod:            {"Goldenrod", 0xFFDAA520},
	KnownColorGray:                 {"Gray", 0xFF808080},
	KnownColorGreen:                {"Green", 0xFF008000},
	KnownColorGreenYellow:          {"GreenYellow", 0xFFADFF2F},
	KnownColorHoneydew:             {"Honeydew", 0xFFF0FFF0},
	KnownColorHotPink:              {"HotPink", 0xFFFF69B4},
	KnownColorIndianRed:            {"IndianRed", 0xFFCD5C5C},
	KnownColorIndigo:               {"Indigo", 0xFF4B0082},
	KnownColorIvory:                {"Ivory", 0xFFFFFFF0},
	KnownColorKhaki:                {"Khaki", 0xFFF0E68C},
	KnownColorLavender:             {"Lavender", 0xFFE6E6FA},
	KnownColorLavenderBlush:        {"LavenderBlush", 0xFFFFF0F5},
	KnownColorLawnGreen:            {"LawnGreen", 0xFF7CFC00},
	KnownColorLemonChiffon:         {"LemonChiffon", 0xFFFFFACD},
	KnownColorLightBlue:            {"LightBlue", 0xFFADD8E6},
	KnownColorLightCoral:           {"LightCoral", 0xFFF08080},
	KnownColorLightCyan:            {"LightCyan", 0xFFE0FFFF},
	KnownColorLightGoldenrodYellow: {"LightGoldenrodYellow", 0xFFFAFAD2},
	KnownColorLightGray:            {"LightGray", 0xFFD3D3D3},
	KnownColorLightGreen:           {"LightGreen", 0xFF90EE90},
	KnownColorLightPink:            {"LightPink", 0xFFFFB6C1},
	KnownColorLightSalmon:          {"LightSalmon", 0xFFFFA07A},
	KnownColorLightSeaGreen:        {"LightSeaGreen", 0xFF20B2AA},
	KnownColorLightSkyBlue:         {"LightSkyBlue", 0xFF87CEFA},
	KnownColorLightSlateGray:       {"LightSlateGray", 0xFF778899},
	KnownColorLightSteelBlue:       {"LightSteelBlue", 0xFFB0C4DE},
	KnownColorLightYellow:          {"LightYellow", 0xFFFFFFE0},
	KnownColorLime:                 {"Lime", 0xFF00FF00},
	KnownColorLimeGreen:            {"LimeGreen", 0xFF32CD32},
	KnownColorLinen:                {"Linen", 0xFFFAF0E6},
	KnownColorMagenta:              {"Magenta", 0xFFFF00FF},
	KnownColorMaroon:               {"Maroon", 0xFF800000},
	KnownColorMediumAquamarine:     {"MediumAquamarine", 0xFF66CDAA},
	KnownColorMediumBlue:           {"MediumBlue", 0xFF0000CD},
	KnownColorMediumOrchid:         {"MediumOrchid", 0xFFBA55D3},
	KnownColorMediumPurple:         {"MediumPurple", 0xFF9370DB},
	KnownColorMediumSeaGreen:       {"MediumSeaGreen", 0xFF3CB371},
	KnownColorMediumSlateBlue:      {"MediumSlateBlue", 0xFF7B68EE},
	KnownColorMediumSpringGreen:    {"MediumSpringGreen", 0xFF00FA9A},
	KnownColorMediumTurquoise:      {"MediumTurquoise", 0xFF48D1CC},
	KnownColorMediumVioletRed:      {"MediumVioletRed", 0xFFC71585},
	KnownColorMidnightBlue:         {"MidnightBlue", 0xFF191970},
	KnownColorMintCream:            {"MintCream", 0xFFF5FFFA},
	KnownColorMistyRose:            {"MistyRose", 0xFFFFE4E1},
	KnownColorMoccasin:             {"Moccasin", 0xFFFFE4B5},
	KnownColorNavajoWhite:          {"NavajoWhite", 0xFFFFDEAD},
	KnownColorNavy:                 {"Navy", 0xFF000080},
	KnownColorOldLace:              {"OldLace", 0xFFFDF5E6},
	KnownColorOlive:                {"Olive", 0xFF808000},
	KnownColorOliveDrab:            {"OliveDrab", 0xFF6B8E23},
	KnownColorOrange:               {"Orange", 0xFFFFA500},
	KnownColorOrangeRed:            {"OrangeRed", 0xFFFF4500},
	KnownColorOrchid:               {"Orchid", 0xFFDA70D6},
	KnownColorPaleGoldenrod:        {"PaleGoldenrod", 0xFFEEE8AA},
	KnownColorPaleGreen:            {"PaleGreen", 0xFF98FB98},
	KnownColorPaleTurquoise:        {"PaleTurquoise", 0xFFAFEEEE},
	KnownColorPaleVioletRed:        {"PaleVioletRed", 0xFFDB7093},
	KnownColorPapayaWhip:           {"PapayaWhip", 0xFFFFEFD5},
	KnownColorPeachPuff:            {"PeachPuff", 0xFFFFDAB9},
	KnownColorPeru:                 {"Peru", 0xFFCD853F},
	KnownColorPink:                 {"Pink", 0xFFFFC0CB},
	KnownColorPlum:                 {"Plum", 0xFFDDA0DD},
	KnownColorPowderBlue:           {"PowderBlue", 0xFFB0E0E6},
	KnownColorPurple:               {"Purple", 0xFF800080},
	KnownColorRed:                  {"Red", 0xFFFF0000},
	KnownColorRosyBrown:            {"RosyBrown", 0xFFBC8F8F},
	KnownColorRoyalBlue:            {"RoyalBlue", 0xFF4169E1},
	KnownColorSaddleBrown:          {"SaddleBrown", 0xFF8B4513},
	KnownColorSalmon:               {"Salmon", 0xFFFA8072},
	KnownColorSandyBrown:           {"SandyBrown", 0xFFF4A460},
	KnownColorSeaGreen:             {"SeaGreen", 0xFF2E8B57},
	KnownColorSeaShell:             {"SeaShell", 0xFFFFF5EE},
	KnownColorSienna:               {"Sienna", 0xFFA0522D},
	KnownColorSilver:               {"Silver", 0xFFC0C0C0},
	KnownColorSkyBlue:              {"SkyBlue", 0xFF87CEEB},
	KnownColorSlateBlue:            {"SlateBlue", 0xFF6A5ACD},
	KnownColorSlateGray:            {"SlateGray", 0xFF708090},
	KnownColorSnow:                 {"Snow", 0xFFFFFAFA},
	KnownColorSpringGreen:          {"SpringGreen", 0xFF00FF7F},
	KnownColorSteelBlue:            {"SteelBlue", 0xFF4682B4},
	KnownColorTan:                  {"Tan", 0xFFD2B48C},
	KnownColorTeal:                 {"Teal", 0xFF008080},
	KnownColorThistle:              {"Thistle", 0xFFD8BFD8},
	KnownColorTomato:               {"Tomato", 0xFFFF6347},
	KnownColorTransparent:          {"Transparent", 0x00FFFFFF},
	KnownColorTurquoise:            {"Turquoise", 0xFF40E0D0},
	KnownColorViolet:               {"Violet", 0xFFEE82EE},
	KnownColorWheat:                {"Wheat", 0xFFF5DEB3},
	KnownColorWhite:                {"White", 0xFFFFFFFF},
	KnownColorWhiteSmoke:           {"WhiteSmoke", 0xFFF5F5F5},
	KnownColorYellow:               {"Yellow", 0xFFFFFF00},
	KnownColorYellowGreen:          {"YellowGreen", 0xFF9ACD32},
}

var knownColorsByName = func() map[string]KnownColor {
	m := make(map[string]KnownColor, knownColorCount)
	for i := range knownColorTable {
		m[strings.ToLower(knownColorTable[i].name)] = KnownColor(i)
	}
	return m
}()

// KnownColors returns every known color in alphabetical order.
func KnownColors() []KnownColor {
	out := make([]KnownColor, knownColorCount)
	for i := range out {
		out[i] = KnownColor(i)
	}
	return out
}

// KnownColorFromName looks up a known color by name, ignoring case.
func KnownColorFromName(name string) (KnownColor, bool) {
	k, ok := knownColorsByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func (k KnownColor) valid() bool {
	return k >= 0 && int(k) < knownColorCount
}

// String returns the color name.
func (k KnownColor) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return knownColorTable[k].name
}

// ARGB returns the color packed as 0xAARRGGBB.
// Unknown values return 0.
func (k KnownColor) ARGB() uint32 {
	if !k.valid() {
		return 0
	}
	return knownColorTable[k].argb
}

// Color returns the color value.
func (k KnownColor) Color() Color {
	return FromUInt32(k.ARGB())
}

// brushes holds one frozen brush per ARGB value. Entries are never
// evicted.
var brushes = cache.New[uint32, *SolidColorBrush](0)

// Brush returns a frozen brush of the color. Known colors with the same
// ARGB value share one brush instance for the life of the process.
func (k KnownColor) Brush() *SolidColorBrush {
	argb := k.ARGB()
	return brushes.GetOrCreate(argb, func() *SolidColorBrush {
		b := NewSolidColorBrush(FromUInt32(argb))
		b.Freeze()
		return b
	})
}
