package tess

import (
	"math"

	"github.com/gogpu/media/internal/pathdata"
	"github.com/gogpu/media/internal/stroke"
)

// Bounds returns the bounds of the path, or of its stroke outline when style
// is non-nil. ok is false when the path has no points.
func Bounds(p Path, style *stroke.Style, tol Tolerance) (r Rect, ok bool, err error) {
	f, err := flatten(p, tol)
	if err != nil {
		return Rect{}, false, err
	}
	var rings [][]Point
	if style != nil {
		rings, err = f.strokeRings(p, *style)
	} else {
		for _, pl := range f.lines {
			var pts []Point
			if pts, err = transformAll(p.Matrix, pl.pts); err != nil {
				break
			}
			rings = append(rings, pts)
		}
	}
	if err != nil {
		return Rect{}, false, err
	}
	r, ok = boundsOf(rings)
	return r, ok, nil
}

// Area returns the area covered by the filled figures under the fill rule.
func Area(p Path, tol Tolerance) (float64, error) {
	reg, err := fillRegion(p, tol)
	if err != nil {
		return 0, err
	}
	return area(clip(reg, region{}, keepA)), nil
}

// HitTest reports whether pt lies in the fill, or in the stroke outline when
// style is non-nil.
func HitTest(p Path, style *stroke.Style, pt Point, tol Tolerance) (bool, error) {
	if !pt.IsFinite() {
		return false, ErrBadNumber
	}
	var reg region
	var err error
	if style != nil {
		reg, err = strokeRegion(p, *style, tol)
	} else {
		reg, err = fillRegion(p, tol)
	}
	if err != nil {
		return false, err
	}
	return reg.contains(pt), nil
}

// HitTestGeometry classifies the region of p, widened by style when it is
// non-nil, against the fill of other.
func HitTestGeometry(p Path, style *stroke.Style, other Path, tol Tolerance) (Detail, error) {
	var a region
	var err error
	if style != nil {
		a, err = strokeRegion(p, *style, tol)
	} else {
		a, err = fillRegion(p, tol)
	}
	if err != nil {
		return DetailNotCalculated, err
	}
	b, err := fillRegion(other, tol)
	if err != nil {
		return DetailNotCalculated, err
	}

	areaA := area(clip(a, region{}, keepA))
	areaB := area(clip(b, region{}, keepA))
	inter := area(clip(a, b, opFor(Intersect)))

	eps := 1e-6 * math.Max(math.Max(areaA, areaB), 1e-12)
	switch {
	case inter <= eps:
		return DetailEmpty, nil
	case math.Abs(inter-areaB) <= eps:
		return DetailFullyContains, nil
	case math.Abs(inter-areaA) <= eps:
		return DetailFullyInside, nil
	}
	return DetailIntersects, nil
}

// Flatten reports every figure with its curves replaced by lines. The fill
// rule of p is returned unchanged.
func Flatten(p Path, tol Tolerance, emit func(Figure)) (pathdata.FillRule, error) {
	f, err := flatten(p, tol)
	if err != nil {
		return p.FillRule, err
	}
	figs := make([]Figure, 0, len(f.lines))
	for _, pl := range f.lines {
		pts, err := transformAll(p.Matrix, pl.pts)
		if err != nil {
			return p.FillRule, err
		}
		figs = append(figs, Figure{Points: pts, Closed: pl.closed})
	}
	for _, fig := range figs {
		emit(fig)
	}
	return p.FillRule, nil
}

// Widen reports the stroke outline of p as closed figures to be filled with
// the non-zero rule.
func Widen(p Path, style stroke.Style, tol Tolerance, emit func(Figure)) (pathdata.FillRule, error) {
	f, err := flatten(p, tol)
	if err != nil {
		return pathdata.Nonzero, err
	}
	rings, err := f.strokeRings(p, style)
	if err != nil {
		return pathdata.Nonzero, err
	}
	emitRings(rings, emit)
	return pathdata.Nonzero, nil
}

// Outline reports an equivalent of the fill of p made of non-intersecting
// loops with the inside on their left.
func Outline(p Path, tol Tolerance, emit func(Figure)) (pathdata.FillRule, error) {
	reg, err := fillRegion(p, tol)
	if err != nil {
		return pathdata.Nonzero, err
	}
	emitRings(clip(reg, region{}, keepA), emit)
	return pathdata.Nonzero, nil
}

// Combine reports the outline of the boolean combination of the fills of
// p1 and p2.
func Combine(p1, p2 Path, mode CombineMode, tol Tolerance, emit func(Figure)) (pathdata.FillRule, error) {
	a, err := fillRegion(p1, tol)
	if err != nil {
		return pathdata.Nonzero, err
	}
	b, err := fillRegion(p2, tol)
	if err != nil {
		return pathdata.Nonzero, err
	}
	emitRings(clip(a, b, opFor(mode)), emit)
	return pathdata.Nonzero, nil
}

func keepA(a, _ bool) bool { return a }

func area(loops [][]Point) float64 {
	var sum float64
	for _, l := range loops {
		sum += signedArea(l)
	}
	return math.Abs(sum)
}

func emitRings(rings [][]Point, emit func(Figure)) {
	for _, r := range rings {
		emit(Figure{Points: r, Closed: true})
	}
}

func fillRegion(p Path, tol Tolerance) (region, error) {
	f, err := flatten(p, tol)
	if err != nil {
		return region{}, err
	}
	rings, err := f.fillRings(p.Matrix)
	if err != nil {
		return region{}, err
	}
	return region{rings: rings, rule: p.FillRule}, nil
}

func strokeRegion(p Path, style stroke.Style, tol Tolerance) (region, error) {
	f, err := flatten(p, tol)
	if err != nil {
		return region{}, err
	}
	rings, err := f.strokeRings(p, style)
	if err != nil {
		return region{}, err
	}
	return region{rings: rings, rule: pathdata.Nonzero}, nil
}

// strokeRings widens the polylines in local coordinates and maps the rings
// to world coordinates.
func (f flattened) strokeRings(p Path, style stroke.Style) ([][]Point, error) {
	if !isFinite(style.Width) || !isFinite(style.MiterLimit) || !isFinite(style.DashOffset) {
		return nil, ErrBadNumber
	}
	for _, d := range style.Dashes {
		if !isFinite(d) {
			return nil, ErrBadNumber
		}
	}

	var lines []stroke.Polyline
	for _, pl := range f.lines {
		lines = append(lines, strokedRuns(pl, style)...)
	}
	e := stroke.NewStrokeExpander(style)
	e.SetTolerance(f.tol)
	local := e.Expand(lines)

	rings := make([][]Point, 0, len(local))
	for _, r := range local {
		pts, err := transformAll(p.Matrix, r)
		if err != nil {
			return nil, err
		}
		rings = append(rings, pts)
	}
	return rings, nil
}

// strokedRuns splits a polyline at unstroked edges. A polyline without
// unstroked edges is kept whole, closed when the figure is closed.
func strokedRuns(pl polyline, style stroke.Style) []stroke.Polyline {
	all := true
	for _, s := range pl.stroked {
		all = all && s
	}
	if all {
		return []stroke.Polyline{{
			Points:   pl.pts,
			Closed:   pl.closed,
			StartCap: style.StartCap,
			EndCap:   style.EndCap,
		}}
	}

	pts := pl.pts
	if pl.closed {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	var runs []stroke.Polyline
	var cur []Point
	for i, s := range pl.stroked {
		if i+1 >= len(pts) {
			break
		}
		if !s {
			if len(cur) > 1 {
				runs = append(runs, stroke.Polyline{Points: cur, StartCap: style.StartCap, EndCap: style.EndCap})
			}
			cur = nil
			continue
		}
		if len(cur) == 0 {
			cur = append(cur, pts[i])
		}
		cur = append(cur, pts[i+1])
	}
	if len(cur) > 1 {
		runs = append(runs, stroke.Polyline{Points: cur, StartCap: style.StartCap, EndCap: style.EndCap})
	}
	return runs
}
