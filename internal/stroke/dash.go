package stroke

import "math"

// Dash splits a polyline into dash pieces.
//
// dashes alternates dash and gap lengths; an odd-length array is repeated
// to make it even. offset shifts the start into the pattern. Interior piece
// ends use dashCap; the polyline's own caps apply where a piece touches the
// start or end of an open polyline. A closed polyline whose first and last
// pieces are both dashes has them joined into one piece.
func Dash(pl Polyline, dashes []float64, offset float64, dashCap LineCap) []Polyline {
	pattern, total := normalizeDashes(dashes)
	if total == 0 {
		return []Polyline{pl}
	}

	pts := pl.Points
	if pl.Closed && len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if len(pts) < 2 {
		return []Polyline{pl}
	}

	idx, remaining := dashStart(pattern, total, offset)
	on := idx%2 == 0

	var pieces []Polyline
	var cur []Point
	startsAtBegin := on
	if on {
		cur = append(cur, pts[0])
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				pieces = append(pieces, Polyline{Points: cur, StartCap: dashCap, EndCap: dashCap})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	endsAtEnd := on && len(cur) > 0
	if endsAtEnd {
		pieces = append(pieces, Polyline{Points: cur, StartCap: dashCap, EndCap: dashCap})
	}
	if len(pieces) == 0 {
		return nil
	}

	if pl.Closed {
		if startsAtBegin && endsAtEnd && len(pieces) > 1 {
			last := pieces[len(pieces)-1]
			first := pieces[0]
			merged := append(append([]Point(nil), last.Points...), first.Points[1:]...)
			pieces[0] = Polyline{Points: merged, StartCap: dashCap, EndCap: dashCap}
			pieces = pieces[:len(pieces)-1]
		}
		return pieces
	}

	if startsAtBegin {
		pieces[0].StartCap = pl.StartCap
	}
	if endsAtEnd {
		pieces[len(pieces)-1].EndCap = pl.EndCap
	}
	return pieces
}

// normalizeDashes returns the even-length pattern and its total length.
// A pattern with no positive length or any negative/NaN entry is solid.
func normalizeDashes(dashes []float64) ([]float64, float64) {
	if len(dashes) == 0 {
		return nil, 0
	}
	pattern := append([]float64(nil), dashes...)
	if len(pattern)%2 != 0 {
		pattern = append(pattern, pattern...)
	}
	var total float64
	for _, d := range pattern {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, 0
		}
		total += d
	}
	if total <= 0 {
		return nil, 0
	}
	return pattern, total
}

// dashStart returns the pattern index and the length left in that entry
// after advancing offset units into the pattern.
func dashStart(pattern []float64, total, offset float64) (int, float64) {
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	i := 0
	for offset > pattern[i] || (offset == pattern[i] && pattern[i] > 0) {
		offset -= pattern[i]
		i = (i + 1) % len(pattern)
	}
	return i, pattern[i] - offset
}
