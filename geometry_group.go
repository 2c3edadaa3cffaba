package media

import (
	"fmt"

	"github.com/gogpu/media/internal/pathdata"
)

// GeometryGroup is a composite of child geometries filled together with one
// fill rule. Each child keeps its own transform; the group's transform is
// applied after them.
type GeometryGroup struct {
	geometryBase
	children []Geometry
	fillRule FillRule
}

// NewGeometryGroup returns an even-odd group of the children.
func NewGeometryGroup(children ...Geometry) *GeometryGroup {
	g := &GeometryGroup{}
	g.self = g
	for _, c := range children {
		if c != nil {
			g.children = append(g.children, c)
		}
	}
	return g
}

// Children returns the child geometries. The slice is a copy; the children
// are shared.
func (g *GeometryGroup) Children() []Geometry {
	return append([]Geometry(nil), g.children...)
}

// AddChild appends a child geometry.
func (g *GeometryGroup) AddChild(c Geometry) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: nil geometry", ErrInvalidArgument)
	}
	g.children = append(g.children, c)
	return nil
}

// FillRule returns the fill rule.
func (g *GeometryGroup) FillRule() FillRule { return g.fillRule }

// SetFillRule changes the fill rule.
func (g *GeometryGroup) SetFillRule(r FillRule) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.fillRule = r
	return nil
}

// Freeze makes the group and its children read-only.
func (g *GeometryGroup) Freeze() {
	for _, c := range g.children {
		c.Freeze()
	}
	g.geometryBase.Freeze()
}

func (g *GeometryGroup) obviouslyEmpty() bool { return len(g.children) == 0 }

// IsEmpty implements Geometry.
func (g *GeometryGroup) IsEmpty() bool {
	for _, c := range g.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// MayHaveCurves implements Geometry.
func (g *GeometryGroup) MayHaveCurves() bool {
	for _, c := range g.children {
		if c.MayHaveCurves() {
			return true
		}
	}
	return false
}

// Clone implements Geometry. Children are cloned too.
func (g *GeometryGroup) Clone() Geometry {
	c := NewGeometryGroup()
	for _, child := range g.children {
		c.children = append(c.children, child.Clone())
	}
	c.fillRule = g.fillRule
	c.transform = g.transform
	return c
}

// PathGeometryData implements Geometry. The children's transforms are
// applied to their points.
func (g *GeometryGroup) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	var figs []pathdata.Figure
	for _, c := range g.children {
		if isObviouslyEmpty(c) {
			continue
		}
		cf, err := figuresOf(c)
		if err != nil {
			return PathGeometryData{}, err
		}
		for _, f := range cf {
			figs = append(figs, f.encode())
		}
	}
	return PathGeometryData{
		FillRule:       g.fillRule,
		Matrix:         g.matrix(),
		SerializedData: pathdata.Encode(figs),
	}, nil
}

// CombinedGeometry is the boolean combination of two geometries.
type CombinedGeometry struct {
	geometryBase
	mode       GeometryCombineMode
	geometry1  Geometry
	geometry2  Geometry
	tolerance  float64
	tolerances ToleranceType
}

// NewCombinedGeometry returns the combination of g1 and g2. Nil operands
// count as empty.
func NewCombinedGeometry(mode GeometryCombineMode, g1, g2 Geometry) *CombinedGeometry {
	g := &CombinedGeometry{
		mode:      mode,
		geometry1: g1,
		geometry2: g2,
		tolerance: DefaultFlatteningTolerance,
	}
	g.self = g
	return g
}

// Mode returns the combine mode.
func (g *CombinedGeometry) Mode() GeometryCombineMode { return g.mode }

// SetMode changes the combine mode.
func (g *CombinedGeometry) SetMode(m GeometryCombineMode) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.mode = m
	return nil
}

// Operands returns the two operands.
func (g *CombinedGeometry) Operands() (g1, g2 Geometry) { return g.geometry1, g.geometry2 }

// SetTolerance sets the flattening tolerance used to combine the operands.
func (g *CombinedGeometry) SetTolerance(tol float64, kind ToleranceType) error {
	if err := g.writePreamble(); err != nil {
		return err
	}
	g.tolerance, g.tolerances = tol, kind
	return nil
}

// Freeze makes the geometry and its operands read-only.
func (g *CombinedGeometry) Freeze() {
	if g.geometry1 != nil {
		g.geometry1.Freeze()
	}
	if g.geometry2 != nil {
		g.geometry2.Freeze()
	}
	g.geometryBase.Freeze()
}

func (g *CombinedGeometry) obviouslyEmpty() bool {
	return combineObviouslyEmpty(g.geometry1, g.geometry2, g.mode)
}

// MayHaveCurves implements Geometry. The combination is flattened.
func (g *CombinedGeometry) MayHaveCurves() bool { return false }

// Clone implements Geometry. Operands are cloned too.
func (g *CombinedGeometry) Clone() Geometry {
	clone := func(x Geometry) Geometry {
		if x == nil {
			return nil
		}
		return x.Clone()
	}
	c := NewCombinedGeometry(g.mode, clone(g.geometry1), clone(g.geometry2))
	c.tolerance, c.tolerances = g.tolerance, g.tolerances
	c.transform = g.transform
	return c
}

// PathGeometryData implements Geometry. The operands are combined by the
// geometry engine each time.
func (g *CombinedGeometry) PathGeometryData() (PathGeometryData, error) {
	g.readPreamble()
	d := PathGeometryData{FillRule: FillRuleNonzero, Matrix: g.matrix(), SerializedData: pathdata.EmptyBuffer()}
	if g.obviouslyEmpty() {
		return d, nil
	}
	pg, err := Combine(g.geometry1, g.geometry2, g.mode, nil, g.tolerance, g.tolerances)
	if err != nil {
		return PathGeometryData{}, err
	}
	inner, err := pg.PathGeometryData()
	if err != nil {
		return PathGeometryData{}, err
	}
	d.FillRule = inner.FillRule
	d.SerializedData = inner.SerializedData
	return d, nil
}
