// Package pathdata defines the packed binary path buffer exchanged between
// geometry objects and the tessellation core.
//
// All integers and coordinates are little endian. The layout is
//
//	header  : totalSize u32 | figureCount i32
//	figure  : figureSize u32 | flags u32 | segmentCount u32 | startX f64 | startY f64
//	segment : kind u8 | flags u8 | reserved u16 | pointCount u32 | (x f64, y f64)*
//
// figureSize covers the figure record including its segments. A buffer with
// a zero figure count is an empty geometry.
package pathdata

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

// Record sizes in bytes.
const (
	HeaderSize        = 8
	FigureHeaderSize  = 28
	SegmentHeaderSize = 8
	PointSize         = 16
)

// Figure flags.
const (
	FigureClosed uint32 = 1 << iota
	FigureFilled
)

// Segment flags.
const (
	SegmentStroked uint8 = 1 << iota
	SegmentSmoothJoin
)

// ErrCorrupt is returned when a buffer does not follow the packed layout.
var ErrCorrupt = errors.New("pathdata: corrupt path buffer")

// FillRule selects how the interior of a path is determined.
type FillRule uint8

const (
	// EvenOdd counts crossings modulo two.
	EvenOdd FillRule = iota
	// Nonzero uses the non-zero winding number.
	Nonzero
)

// SegmentKind identifies the curve type of a segment record.
type SegmentKind uint8

const (
	// KindLine is a run of straight lines, one point per line.
	KindLine SegmentKind = 1 + iota
	// KindQuad is a run of quadratic Béziers, two points per curve.
	KindQuad
	// KindCubic is a run of cubic Béziers, three points per curve.
	KindCubic
)

// PointsPerCurve returns how many points one curve of this kind consumes.
func (k SegmentKind) PointsPerCurve() int {
	switch k {
	case KindLine:
		return 1
	case KindQuad:
		return 2
	case KindCubic:
		return 3
	default:
		return 0
	}
}

// Point is a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is a run of curves of one kind.
type Segment struct {
	Kind   SegmentKind
	Flags  uint8
	Points []Point
}

// Figure is one subpath.
type Figure struct {
	Start    Point
	Closed   bool
	Filled   bool
	Segments []Segment
}

// Identity returns the identity affine matrix.
func Identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// IsIdentity reports whether m is the identity matrix.
func IsIdentity(m f64.Aff3) bool {
	return m == Identity()
}

// Transform applies the affine matrix to p.
func Transform(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Multiply returns a*b, the transform that applies b first and then a.
func Multiply(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}
