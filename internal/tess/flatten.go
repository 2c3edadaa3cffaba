package tess

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/media/internal/pathdata"
)

// maxDepth bounds curve subdivision.
const maxDepth = 16

// polyline is one flattened figure in local coordinates.
type polyline struct {
	pts    []Point
	closed bool
	filled bool

	// stroked[i] reports whether the edge pts[i]->pts[i+1] is stroked.
	// For closed figures the last entry covers the closing edge.
	stroked []bool
}

type flattened struct {
	lines []polyline
	// tol is the flattening tolerance in local coordinates.
	tol float64
}

// flatten decodes the path buffer and flattens every figure in local
// coordinates.
func flatten(p Path, tol Tolerance) (flattened, error) {
	figs, err := pathdata.Decode(p.Data)
	if err != nil {
		return flattened{}, err
	}
	for _, v := range p.Matrix {
		if !isFinite(v) {
			return flattened{}, ErrBadNumber
		}
	}
	for _, fig := range figs {
		if !fig.Start.IsFinite() {
			return flattened{}, ErrBadNumber
		}
		for _, seg := range fig.Segments {
			for _, pt := range seg.Points {
				if !pt.IsFinite() {
					return flattened{}, ErrBadNumber
				}
			}
		}
	}

	out := flattened{tol: localTolerance(figs, p.Matrix, tol)}
	for _, fig := range figs {
		pl := polyline{
			pts:    []Point{fig.Start},
			closed: fig.Closed,
			filled: fig.Filled,
		}
		cur := fig.Start
		for _, seg := range fig.Segments {
			stroked := seg.Flags&pathdata.SegmentStroked != 0
			emit := func(pt Point) {
				pl.pts = append(pl.pts, pt)
				pl.stroked = append(pl.stroked, stroked)
			}
			switch seg.Kind {
			case pathdata.KindLine:
				for _, pt := range seg.Points {
					emit(pt)
				}
				if n := len(seg.Points); n > 0 {
					cur = seg.Points[n-1]
				}
			case pathdata.KindQuad:
				for i := 0; i+1 < len(seg.Points); i += 2 {
					flattenQuad(cur, seg.Points[i], seg.Points[i+1], out.tol, 0, emit)
					cur = seg.Points[i+1]
				}
			case pathdata.KindCubic:
				for i := 0; i+2 < len(seg.Points); i += 3 {
					flattenCubic(cur, seg.Points[i], seg.Points[i+1], seg.Points[i+2], out.tol, 0, emit)
					cur = seg.Points[i+2]
				}
			}
		}
		if pl.closed {
			pl.stroked = append(pl.stroked, true)
		}
		out.lines = append(out.lines, pl)
	}
	return out, nil
}

// localTolerance converts the requested tolerance to local coordinates.
func localTolerance(figs []pathdata.Figure, m f64.Aff3, tol Tolerance) float64 {
	t := tol.Value
	if !(t > 0) || math.IsInf(t, 0) {
		t = DefaultTolerance
	}
	if tol.Relative {
		var rings [][]Point
		for _, fig := range figs {
			ring := []Point{fig.Start}
			for _, seg := range fig.Segments {
				ring = append(ring, seg.Points...)
			}
			rings = append(rings, ring)
		}
		if r, ok := boundsOf(rings); ok {
			if ext := math.Max(r.MaxX-r.MinX, r.MaxY-r.MinY); ext > 0 {
				return t * ext
			}
		}
		return t
	}
	if s := matrixScale(m); s > 0 {
		return t / s
	}
	return t
}

// matrixScale returns the largest stretch the matrix applies to a unit
// axis vector.
func matrixScale(m f64.Aff3) float64 {
	return math.Max(math.Hypot(m[0], m[3]), math.Hypot(m[1], m[4]))
}

func transformAll(m f64.Aff3, pts []Point) ([]Point, error) {
	out := make([]Point, len(pts))
	for i, p := range pts {
		q := pathdata.Transform(m, p)
		if !q.IsFinite() {
			return nil, ErrBadNumber
		}
		out[i] = q
	}
	return out, nil
}

// fillRings returns the filled figures as implicitly closed rings in world
// coordinates.
func (f flattened) fillRings(m f64.Aff3) ([][]Point, error) {
	var rings [][]Point
	for _, pl := range f.lines {
		if !pl.filled || len(pl.pts) < 2 {
			continue
		}
		ring, err := transformAll(m, pl.pts)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func flattenQuad(p0, p1, p2 Point, tol float64, depth int, emit func(Point)) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tol {
		emit(p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	flattenQuad(p0, q0, q2, tol, depth+1, emit)
	flattenQuad(q2, q1, p2, tol, depth+1, emit)
}

func flattenCubic(p0, p1, p2, p3 Point, tol float64, depth int, emit func(Point)) {
	if depth >= maxDepth || math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < tol {
		emit(p3)
		return
	}
	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, s, tol, depth+1, emit)
	flattenCubic(s, r1, q2, p3, tol, depth+1, emit)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	switch {
	case t < 0:
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	case t > 1:
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	}
	return math.Hypot(p.X-(a.X+abx*t), p.Y-(a.Y+aby*t))
}
