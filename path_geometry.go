package media

import (
	"fmt"

	"github.com/gogpu/media/internal/pathdata"
)

// PathFigure is one connected outline: a start point followed by segments.
type PathFigure struct {
	StartPoint Point
	Segments   []PathSegment

	// IsClosed connects the last point back to StartPoint.
	IsClosed bool

	// IsFilled includes the figure in fills, hit tests and area.
	IsFilled bool
}

// NewPathFigure returns a filled figure.
func NewPathFigure(start Point, closed bool, segments ...PathSegment) *PathFigure {
	return &PathFigure{StartPoint: start, Segments: segments, IsClosed: closed, IsFilled: true}
}

// Clone returns a deep copy of the figure.
func (f *PathFigure) Clone() *PathFigure {
	c := *f
	c.Segments = make([]PathSegment, 0, len(f.Segments))
	for _, s := range f.Segments {
		if s != nil {
			c.Segments = append(c.Segments, s.clone())
		}
	}
	return &c
}

// IsEmpty reports whether the figure has no segment with points.
func (f *PathFigure) IsEmpty() bool {
	for _, s := range f.Segments {
		if s == nil {
			continue
		}
		if _, ok := s.EndPoint(); ok {
			return false
		}
	}
	return true
}

// MayHaveCurves reports whether any segment is curved.
func (f *PathFigure) MayHaveCurves() bool {
	for _, s := range f.Segments {
		if s != nil && s.isCurved() {
			return true
		}
	}
	return false
}

// encode converts the figure to a buffer record.
func (f *PathFigure) encode() pathdata.Figure {
	out := pathdata.Figure{
		Start:  pathdata.Point{X: f.StartPoint.X, Y: f.StartPoint.Y},
		Closed: f.IsClosed,
		Filled: f.IsFilled,
	}
	cur := f.StartPoint
	for _, s := range f.Segments {
		if s == nil {
			continue
		}
		out.Segments = s.encode(cur, out.Segments)
		if end, ok := s.EndPoint(); ok {
			cur = end
		}
	}
	return out
}

// figureFromData converts a decoded buffer figure with its points mapped
// through m.
func figureFromData(df pathdata.Figure, m Matrix) *PathFigure {
	pt := func(p pathdata.Point) Point { return m.TransformPoint(Point{X: p.X, Y: p.Y}) }
	f := &PathFigure{StartPoint: pt(df.Start), IsClosed: df.Closed, IsFilled: df.Filled}
	for _, s := range df.Segments {
		pts := make([]Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = pt(p)
		}
		opts := SegmentOptions{
			Unstroked:  s.Flags&pathdata.SegmentStroked == 0,
			SmoothJoin: s.Flags&pathdata.SegmentSmoothJoin != 0,
		}
		switch s.Kind {
		case pathdata.KindLine:
			f.Segments = append(f.Segments, &PolyLineSegment{Points: pts, SegmentOptions: opts})
		case pathdata.KindQuad:
			f.Segments = append(f.Segments, &PolyQuadraticBezierSegment{Points: pts, SegmentOptions: opts})
		case pathdata.KindCubic:
			f.Segments = append(f.Segments, &PolyBezierSegment{Points: pts, SegmentOptions: opts})
		}
	}
	return f
}

// figuresOf returns the figures of g in world coordinates.
func figuresOf(g Geometry) ([]*PathFigure, error) {
	data, err := g.PathGeometryData()
	if err != nil {
		return nil, err
	}
	dfs, err := pathdata.Decode(data.SerializedData)
	if err != nil {
		return nil, fmt.Errorf("decode %T: %w", g, err)
	}
	out := make([]*PathFigure, len(dfs))
	for i, df := range dfs {
		out[i] = figureFromData(df, data.Matrix)
	}
	return out, nil
}

// PathGeometry is a geometry made of figures. It is the result type of
// every geometry operation.
type PathGeometry struct {
	geometryBase
	figures  []*PathFigure
	fillRule FillRule
}

// NewPathGeometry returns an even-odd geometry holding copies of the
// figures.
func NewPathGeometry(figures ...*PathFigure) *PathGeometry {
	g := &PathGeometry{}
	g.self = g
	for _, f := range figures {
		if f != nil {
			g.figures = append(g.figures, f.Clone())
		}
	}
	return g
}

// PathGeometryFromGeometry converts any geometry to a path geometry with
// its transform applied to the points.
func PathGeometryFromGeometry(src Geometry) (*PathGeometry, error) {
	g := NewPathGeometry()
	if err := g.AddGeometry(src); err != nil {
		return nil, err
	}
	data, err := src.PathGeometryData()
	if err != nil {
		return nil, err
	}
	g.fillRule = data.FillRule
	return g, nil
}

// FillRule returns the fill rule.
func (g *PathGeometry) FillRule() FillRule {
	return g.fillRule
}

// SetFillRule changes the fill rule.
func (g *PathGeometry) SetFillRule(r FillRule) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.fillRule = r
	return nil
}

// Figures returns copies of the figures.
func (g *PathGeometry) Figures() []*PathFigure {
	out := make([]*PathFigure, len(g.figures))
	for i, f := range g.figures {
		out[i] = f.Clone()
	}
	return out
}

// FigureCount returns the number of figures.
func (g *PathGeometry) FigureCount() int {
	return len(g.figures)
}

// AddFigure appends a copy of f.
func (g *PathGeometry) AddFigure(f *PathFigure) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: nil figure", ErrInvalidArgument)
	}
	g.figures = append(g.figures, f.Clone())
	return nil
}

// AddGeometry appends the figures of src in world coordinates.
func (g *PathGeometry) AddGeometry(src Geometry) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%w: nil geometry", ErrInvalidArgument)
	}
	figs, err := figuresOf(src)
	if err != nil {
		return err
	}
	g.figures = append(g.figures, figs...)
	return nil
}

// Clear removes all figures.
func (g *PathGeometry) Clear() error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.figures = nil
	return nil
}

// PathGeometryData implements Geometry.
func (g *PathGeometry) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	if len(g.figures) == 0 {
		d := emptyPathGeometryData()
		d.FillRule = g.fillRule
		d.Matrix = g.matrix()
		return d, nil
	}
	figs := make([]pathdata.Figure, len(g.figures))
	for i, f := range g.figures {
		figs[i] = f.encode()
	}
	return PathGeometryData{
		FillRule:       g.fillRule,
		Matrix:         g.matrix(),
		SerializedData: pathdata.Encode(figs),
	}, nil
}

func (g *PathGeometry) obviouslyEmpty() bool {
	return len(g.figures) == 0
}

// IsEmpty implements Geometry.
func (g *PathGeometry) IsEmpty() bool {
	g.readPreamble()
	for _, f := range g.figures {
		if !f.IsEmpty() {
			return false
		}
	}
	return true
}

// MayHaveCurves implements Geometry.
func (g *PathGeometry) MayHaveCurves() bool {
	for _, f := range g.figures {
		if f.MayHaveCurves() {
			return true
		}
	}
	return false
}

// Clone implements Geometry.
func (g *PathGeometry) Clone() Geometry {
	g.readPreamble()
	c := NewPathGeometry(g.figures...)
	c.fillRule = g.fillRule
	c.transform = g.transform
	return c
}

// String returns the geometry in path markup. The transform is not
// included.
func (g *PathGeometry) String() string {
	return formatPathMarkup(g.fillRule, g.figures)
}
