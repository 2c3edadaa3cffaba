// Package tess is the default tessellation core behind geometry queries.
//
// Every operation takes one or two packed path buffers (see package pathdata)
// with their matrix and fill rule, flattens the curves to polylines within a
// tolerance, and answers the query on the resulting polygons:
//
//   - Bounds: axis-aligned bounds of the fill, or of the stroke outline
//   - Area: area covered under the fill rule
//   - HitTest: point containment in the fill or stroke
//   - HitTestGeometry: intersection detail between two regions
//   - Flatten, Widen, Outline, Combine: new figures reported through a callback
//
// Any NaN or infinite coordinate yields ErrBadNumber. Callers are expected to
// treat it as an empty result.
package tess

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/media/internal/pathdata"
)

// Point is the shared path buffer point type.
type Point = pathdata.Point

// DefaultTolerance is the flattening tolerance used when the requested one is
// not a positive number.
const DefaultTolerance = 0.25

// ErrBadNumber reports a NaN or infinite value met during tessellation.
var ErrBadNumber = errors.New("tess: bad number")

// Path is one operand of a tessellation call.
type Path struct {
	Data     []byte
	Matrix   f64.Aff3
	FillRule pathdata.FillRule
}

// Tolerance is the maximum distance between a curve and its flattening.
// A relative tolerance is scaled by the extent of the path.
type Tolerance struct {
	Value    float64
	Relative bool
}

// Figure is a flattened output figure.
type Figure struct {
	Points []Point
	Closed bool
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// CombineMode selects the boolean operation of Combine.
type CombineMode int

const (
	Union CombineMode = iota
	Intersect
	Xor
	Exclude
)

// Detail classifies how two regions relate.
type Detail int

const (
	DetailNotCalculated Detail = iota
	DetailEmpty
	DetailFullyInside
	DetailFullyContains
	DetailIntersects
)

func (d Detail) String() string {
	switch d {
	case DetailEmpty:
		return "Empty"
	case DetailFullyInside:
		return "FullyInside"
	case DetailFullyContains:
		return "FullyContains"
	case DetailIntersects:
		return "Intersects"
	default:
		return "NotCalculated"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func signedArea(ring []Point) float64 {
	var a float64
	n := len(ring)
	for i := range ring {
		p, q := ring[i], ring[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func boundsOf(rings [][]Point) (Rect, bool) {
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	found := false
	for _, ring := range rings {
		for _, p := range ring {
			r.MinX = math.Min(r.MinX, p.X)
			r.MinY = math.Min(r.MinY, p.Y)
			r.MaxX = math.Max(r.MaxX, p.X)
			r.MaxY = math.Max(r.MaxY, p.Y)
			found = true
		}
	}
	return r, found
}
