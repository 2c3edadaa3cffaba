package media

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGeometry parses path markup into a geometry.
//
// The markup is an optional fill rule prefix, F0 for even-odd or F1 for
// non-zero, followed by SVG path commands: M, L, H, V, C, S, Q, T, A and Z,
// upper case for absolute and lower case for relative coordinates. Numbers
// are separated by white space or commas, and a command letter may be
// omitted when it repeats. A drawing command after Z starts a new figure at
// the start of the closed one.
//
// Example:
//
//	g, err := media.ParseGeometry("F1 M0,0 L100,0 L100,100 Z")
func ParseGeometry(s string) (*PathGeometry, error) {
	p := &markupParser{s: s}
	g := NewPathGeometry()

	p.skipSpace()
	if p.peek() == 'F' {
		p.pos++
		switch p.peek() {
		case '0':
			g.fillRule = FillRuleEvenOdd
		case '1':
			g.fillRule = FillRuleNonzero
		default:
			return nil, p.errorf("fill rule must be F0 or F1")
		}
		p.pos++
	}

	var (
		fig        *PathFigure
		cur, start Point
		lastCtrl   Point // reflected by S and T
		prevCmd    byte
	)
	ensureFigure := func() {
		if fig == nil {
			fig = NewPathFigure(cur, false)
			g.figures = append(g.figures, fig)
			start = cur
		}
	}
	add := func(seg PathSegment) {
		ensureFigure()
		fig.Segments = append(fig.Segments, seg)
	}

	for {
		p.skipSeparators()
		if p.pos >= len(p.s) {
			break
		}

		cmd := p.peek()
		if p.atNumber() {
			if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
				return nil, p.errorf("number without a command")
			}
			cmd = prevCmd
		} else {
			p.pos++
		}
		if prevCmd == 0 && cmd != 'M' && cmd != 'm' {
			return nil, p.errorf("path must start with a move command")
		}
		rel := cmd >= 'a' && cmd <= 'z'
		origin := Point{}
		if rel {
			origin = cur
		}

		switch cmd {
		case 'M', 'm':
			pt, err := p.point(origin)
			if err != nil {
				return nil, err
			}
			cur, start = pt, pt
			fig = NewPathFigure(pt, false)
			g.figures = append(g.figures, fig)
			// Further coordinate pairs are lines.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			pt, err := p.point(origin)
			if err != nil {
				return nil, err
			}
			add(&LineSegment{Point: pt})
			cur = pt
		case 'H', 'h':
			x, err := p.number()
			if err != nil {
				return nil, err
			}
			pt := Pt(origin.X+x, cur.Y)
			add(&LineSegment{Point: pt})
			cur = pt
		case 'V', 'v':
			y, err := p.number()
			if err != nil {
				return nil, err
			}
			pt := Pt(cur.X, origin.Y+y)
			add(&LineSegment{Point: pt})
			cur = pt
		case 'C', 'c':
			pts, err := p.points(origin, 3)
			if err != nil {
				return nil, err
			}
			add(&BezierSegment{Point1: pts[0], Point2: pts[1], Point3: pts[2]})
			lastCtrl, cur = pts[1], pts[2]
		case 'S', 's':
			pts, err := p.points(origin, 2)
			if err != nil {
				return nil, err
			}
			c1 := cur
			if strings.IndexByte("CcSs", prevCmd) >= 0 {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			add(&BezierSegment{Point1: c1, Point2: pts[0], Point3: pts[1]})
			lastCtrl, cur = pts[0], pts[1]
		case 'Q', 'q':
			pts, err := p.points(origin, 2)
			if err != nil {
				return nil, err
			}
			add(&QuadraticBezierSegment{Point1: pts[0], Point2: pts[1]})
			lastCtrl, cur = pts[0], pts[1]
		case 'T', 't':
			pt, err := p.point(origin)
			if err != nil {
				return nil, err
			}
			c := cur
			if strings.IndexByte("QqTt", prevCmd) >= 0 {
				c = cur.Mul(2).Sub(lastCtrl)
			}
			add(&QuadraticBezierSegment{Point1: c, Point2: pt})
			lastCtrl, cur = c, pt
		case 'A', 'a':
			arc, err := p.arc(origin)
			if err != nil {
				return nil, err
			}
			add(arc)
			cur = arc.Point
		case 'Z', 'z':
			if fig != nil {
				fig.IsClosed = true
			}
			fig = nil
			cur = start
		default:
			p.pos--
			return nil, p.errorf("unknown command %q", cmd)
		}
		prevCmd = cmd
	}
	return g, nil
}

// markupParser scans path markup.
type markupParser struct {
	s   string
	pos int
}

func (p *markupParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: path markup at offset %d: %s", ErrInvalidArgument, p.pos, fmt.Sprintf(format, args...))
}

func (p *markupParser) peek() byte {
	if p.pos < len(p.s) {
		return p.s[p.pos]
	}
	return 0
}

func (p *markupParser) skipSpace() {
	for p.pos < len(p.s) && strings.IndexByte(" \t\r\n", p.s[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *markupParser) skipSeparators() {
	for p.pos < len(p.s) && strings.IndexByte(" \t\r\n,", p.s[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *markupParser) atNumber() bool {
	c := p.peek()
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' ||
		strings.HasPrefix(p.s[p.pos:], "Infinity") || strings.HasPrefix(p.s[p.pos:], "NaN")
}

// number reads one number. Infinity and NaN are accepted so that
// malformed geometry can be described.
func (p *markupParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	for _, word := range []string{"Infinity", "-Infinity", "+Infinity", "NaN"} {
		if strings.HasPrefix(p.s[p.pos:], word) {
			p.pos += len(word)
			return strconv.ParseFloat(strings.Replace(word, "Infinity", "Inf", 1), 64)
		}
	}

	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	digits := p.digits()
	if p.peek() == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errorf("expected number")
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		save := p.pos
		p.pos++
		if c := p.peek(); c == '-' || c == '+' {
			p.pos++
		}
		if p.digits() == 0 {
			p.pos = save
		}
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad number %q", p.s[start:p.pos])
	}
	return v, nil
}

func (p *markupParser) digits() int {
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

func (p *markupParser) point(origin Point) (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	return Pt(origin.X+x, origin.Y+y), nil
}

func (p *markupParser) points(origin Point, n int) ([]Point, error) {
	out := make([]Point, n)
	for i := range out {
		pt, err := p.point(origin)
		if err != nil {
			return nil, err
		}
		out[i] = pt
	}
	return out, nil
}

func (p *markupParser) flag() (bool, error) {
	p.skipSeparators()
	switch p.peek() {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, p.errorf("arc flag must be 0 or 1")
}

func (p *markupParser) arc(origin Point) (*ArcSegment, error) {
	size, err := p.point(Point{})
	if err != nil {
		return nil, err
	}
	angle, err := p.number()
	if err != nil {
		return nil, err
	}
	large, err := p.flag()
	if err != nil {
		return nil, err
	}
	sweep, err := p.flag()
	if err != nil {
		return nil, err
	}
	end, err := p.point(origin)
	if err != nil {
		return nil, err
	}
	a := &ArcSegment{Point: end, Size: size, RotationAngle: angle, IsLargeArc: large}
	if sweep {
		a.SweepDirection = SweepClockwise
	}
	return a, nil
}

// formatPathMarkup writes figures in the markup read by ParseGeometry.
// Segment stroke options are not represented.
func formatPathMarkup(rule FillRule, figures []*PathFigure) string {
	var sb strings.Builder
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	pts := func(cmd string, ps ...Point) {
		sb.WriteString(cmd)
		for i, pt := range ps {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(num(pt.X))
			sb.WriteByte(',')
			sb.WriteString(num(pt.Y))
		}
	}

	if rule == FillRuleNonzero {
		sb.WriteString("F1")
	}
	for _, f := range figures {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pts("M", f.StartPoint)
		for _, s := range f.Segments {
			switch s := s.(type) {
			case *LineSegment:
				pts(" L", s.Point)
			case *PolyLineSegment:
				if len(s.Points) > 0 {
					pts(" L", s.Points...)
				}
			case *BezierSegment:
				pts(" C", s.Point1, s.Point2, s.Point3)
			case *PolyBezierSegment:
				if n := len(s.Points) / 3 * 3; n > 0 {
					pts(" C", s.Points[:n]...)
				}
			case *QuadraticBezierSegment:
				pts(" Q", s.Point1, s.Point2)
			case *PolyQuadraticBezierSegment:
				if n := len(s.Points) / 2 * 2; n > 0 {
					pts(" Q", s.Points[:n]...)
				}
			case *ArcSegment:
				large, sweep := 0, 0
				if s.IsLargeArc {
					large = 1
				}
				if s.SweepDirection == SweepClockwise {
					sweep = 1
				}
				pts(" A", s.Size)
				fmt.Fprintf(&sb, " %s %d %d ", num(s.RotationAngle), large, sweep)
				pts("", s.Point)
			}
		}
		if f.IsClosed {
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}
