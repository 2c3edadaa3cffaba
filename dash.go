package media

import "math"

// DashStyle defines a dash pattern for pens.
// Dashes alternates dash and gap lengths, both in multiples of the pen
// thickness. For example, {2, 2} creates dashes two thicknesses long
// separated by gaps of the same length.
type DashStyle struct {
	// Dashes contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Dashes []float64

	// Offset is the starting offset into the pattern, in thicknesses.
	Offset float64
}

// Predefined dash styles.
var (
	DashStyleSolid      = DashStyle{}
	DashStyleDash       = DashStyle{Dashes: []float64{2, 2}}
	DashStyleDot        = DashStyle{Dashes: []float64{0, 2}}
	DashStyleDashDot    = DashStyle{Dashes: []float64{2, 2, 0, 2}}
	DashStyleDashDotDot = DashStyle{Dashes: []float64{2, 2, 0, 2, 0, 2}}
)

// NewDashStyle creates a dash style from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Examples:
//
//	NewDashStyle(5, 3)       // 5 thicknesses dash, 3 gap
//	NewDashStyle(0, 2)       // dots, with round or square dash caps
func NewDashStyle(lengths ...float64) *DashStyle {
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &DashStyle{Dashes: normalized}
}

// WithOffset returns a copy of the style with the given offset.
func (d *DashStyle) WithOffset(offset float64) *DashStyle {
	c := d.Clone()
	if c == nil {
		c = &DashStyle{}
	}
	c.Offset = offset
	return c
}

// PatternLength returns the length of one cycle, with odd-length patterns
// counted twice.
func (d *DashStyle) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Dashes {
		total += l
	}
	if len(d.Dashes)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil styles and empty or all-zero patterns.
func (d *DashStyle) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the DashStyle.
func (d *DashStyle) Clone() *DashStyle {
	if d == nil {
		return nil
	}
	return &DashStyle{
		Dashes: append([]float64(nil), d.Dashes...),
		Offset: d.Offset,
	}
}

// scaled returns the pattern and offset in absolute units for a pen of the
// given thickness.
func (d *DashStyle) scaled(thickness float64) ([]float64, float64) {
	if !d.IsDashed() {
		return nil, 0
	}
	out := make([]float64, len(d.Dashes))
	for i, l := range d.Dashes {
		out[i] = l * thickness
	}
	return out, d.Offset * thickness
}
