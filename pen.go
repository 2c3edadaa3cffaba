package media

import (
	"math"

	"github.com/gogpu/media/internal/stroke"
)

// PenLineCap is the shape at the end of a stroked line or dash.
type PenLineCap int

const (
	// PenLineCapFlat ends the stroke exactly at the endpoint.
	PenLineCapFlat PenLineCap = iota
	// PenLineCapSquare extends the stroke by half the thickness.
	PenLineCapSquare
	// PenLineCapRound adds a half circle.
	PenLineCapRound
	// PenLineCapTriangle adds a triangle.
	PenLineCapTriangle
)

// PenLineJoin is the shape at the vertices of a stroked line.
type PenLineJoin int

const (
	// PenLineJoinMiter extends the outer edges to meet, up to MiterLimit.
	PenLineJoinMiter PenLineJoin = iota
	// PenLineJoinBevel cuts the corner straight.
	PenLineJoinBevel
	// PenLineJoinRound rounds the corner.
	PenLineJoinRound
)

// Pen describes how a geometry outline is stroked.
type Pen struct {
	// Brush paints the stroke. A pen without a brush draws nothing.
	Brush Brush

	// Thickness is the stroke width. Default: 1.0
	Thickness float64

	StartLineCap PenLineCap
	EndLineCap   PenLineCap

	// DashCap is the cap at the interior ends of dashes. Default: square.
	DashCap PenLineCap

	LineJoin PenLineJoin

	// MiterLimit is the limit on the ratio of miter length to half the
	// thickness. Default: 10.0
	MiterLimit float64

	// DashStyle is the dash pattern; nil means solid.
	DashStyle *DashStyle
}

// NewPen returns a pen with the given brush and thickness and default
// caps, join, and miter limit.
func NewPen(brush Brush, thickness float64) *Pen {
	return &Pen{
		Brush:      brush,
		Thickness:  thickness,
		DashCap:    PenLineCapSquare,
		LineJoin:   PenLineJoinMiter,
		MiterLimit: 10.0,
	}
}

// WithLineCap returns a copy of the pen with both end caps set.
func (p *Pen) WithLineCap(lineCap PenLineCap) *Pen {
	c := p.Clone()
	c.StartLineCap, c.EndLineCap = lineCap, lineCap
	return c
}

// WithLineJoin returns a copy of the pen with the given join.
func (p *Pen) WithLineJoin(join PenLineJoin) *Pen {
	c := p.Clone()
	c.LineJoin = join
	return c
}

// WithMiterLimit returns a copy of the pen with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (p *Pen) WithMiterLimit(limit float64) *Pen {
	c := p.Clone()
	c.MiterLimit = limit
	return c
}

// WithDashStyle returns a copy of the pen with the given dash style.
// Pass nil to return to solid lines.
func (p *Pen) WithDashStyle(d *DashStyle) *Pen {
	c := p.Clone()
	c.DashStyle = d.Clone()
	return c
}

// IsTrivial reports whether the pen would not contribute to bounds or hit
// testing: it is nil, has no brush, or its thickness is zero or not a
// number.
func (p *Pen) IsTrivial() bool {
	return p == nil || p.Brush == nil || p.Thickness == 0 || math.IsNaN(p.Thickness)
}

// Clone creates a deep copy of the pen. The brush is shared.
func (p *Pen) Clone() *Pen {
	if p == nil {
		return NewPen(nil, 1)
	}
	c := *p
	c.DashStyle = p.DashStyle.Clone()
	return &c
}

// strokeStyle converts the pen to the stroke expander's style.
func (p *Pen) strokeStyle() stroke.Style {
	width := math.Abs(p.Thickness)
	dashes, offset := p.DashStyle.scaled(width)
	return stroke.Style{
		Width:      width,
		StartCap:   stroke.LineCap(p.StartLineCap),
		EndCap:     stroke.LineCap(p.EndLineCap),
		DashCap:    stroke.LineCap(p.DashCap),
		Join:       stroke.LineJoin(p.LineJoin),
		MiterLimit: p.MiterLimit,
		Dashes:     dashes,
		DashOffset: offset,
	}
}
