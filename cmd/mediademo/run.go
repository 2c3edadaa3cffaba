package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"

	"github.com/gogpu/media"
)

// run evaluates the scene and writes a report to w. Entries that fail are
// reported and skipped.
func run(s *Scene, w io.Writer) error {
	tag, err := s.Tag()
	if err != nil {
		return err
	}
	tol := s.Tolerance

	if len(s.Colors) > 0 {
		fmt.Fprintln(w, "colors:")
	}
	for _, text := range s.Colors {
		c, err := media.ParseColor(text, tag)
		if err != nil {
			media.Logger().Warn("skipping color", "color", text, "error", err)
			fmt.Fprintf(w, "  %q: error: %v\n", text, err)
			continue
		}
		writeColor(w, c, tag)
	}

	if len(s.Profiles) > 0 {
		fmt.Fprintln(w, "profiles:")
	}
	for _, p := range s.Profiles {
		var c media.Color
		if p.Alpha != nil {
			c, err = media.FromAValues(*p.Alpha, p.Values, p.URI)
		} else {
			c, err = media.FromValues(p.Values, p.URI)
		}
		if err != nil {
			media.Logger().Warn("skipping profile color", "uri", p.URI, "error", err)
			fmt.Fprintf(w, "  %s: error: %v\n", p.URI, err)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", p.URI, c.ColorContext())
		writeColor(w, c, tag)
	}

	var pen *media.Pen
	if s.Pen != nil {
		if pen, err = s.Pen.Build(); err != nil {
			return err
		}
	}

	geoms := make(map[string]media.Geometry, len(s.Geometries))
	if len(s.Geometries) > 0 {
		fmt.Fprintln(w, "geometries:")
	}
	for _, e := range s.Geometries {
		g, err := media.ParseGeometry(e.Path)
		if err != nil {
			media.Logger().Warn("skipping geometry", "name", e.Name, "error", err)
			fmt.Fprintf(w, "  %s: error: %v\n", e.Name, err)
			continue
		}
		if t := e.Transform.Transform(); t != nil {
			if err := g.SetTransform(t); err != nil {
				return err
			}
		}
		g.Freeze()
		geoms[e.Name] = g
		if err := writeGeometry(w, e.Name, g, pen, e.Points, tol); err != nil {
			return fmt.Errorf("geometry %s: %w", e.Name, err)
		}
	}

	if len(s.Combine) > 0 {
		fmt.Fprintln(w, "combine:")
	}
	for _, c := range s.Combine {
		a, b := geoms[c.A], geoms[c.B]
		if a == nil || b == nil {
			fmt.Fprintf(w, "  %s %s: skipped\n", c.A, c.B)
			continue
		}
		mode, err := combineMode(c.Mode)
		if err != nil {
			return err
		}
		g, err := media.Combine(a, b, mode, nil, tol, media.ToleranceAbsolute)
		if err != nil {
			return fmt.Errorf("combine %s %s: %w", c.A, c.B, err)
		}
		area, err := g.Area(tol, media.ToleranceAbsolute)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s %s: area=%.4g figures=%d\n", c.A, mode, c.B, area, g.FigureCount())
	}
	return nil
}

func writeColor(w io.Writer, c media.Color, tag language.Tag) {
	fmt.Fprintf(w, "  %s\n", c)
	fmt.Fprintf(w, "    srgb=#%08X scrgb=(%.4f, %.4f, %.4f, %.4f)", c.UInt32(), c.ScA(), c.ScR(), c.ScG(), c.ScB())
	if native := c.NativeValues(); native != nil {
		fmt.Fprintf(w, " native=%v", native)
	}
	fmt.Fprintf(w, " locale=%s\n", tag)
}

func writeGeometry(w io.Writer, name string, g media.Geometry, pen *media.Pen, points [][2]float64, tol float64) error {
	b, err := g.Bounds()
	if err != nil {
		return err
	}
	area, err := g.Area(tol, media.ToleranceAbsolute)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s: bounds=%s area=%.4g curves=%t\n", name, formatRect(b), area, g.MayHaveCurves())

	if pen != nil {
		rb, err := g.RenderBounds(pen, tol, media.ToleranceAbsolute)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    render bounds=%s\n", formatRect(rb))
	}
	for _, p := range points {
		pt := media.Pt(p[0], p[1])
		fill, err := g.FillContains(pt, tol, media.ToleranceAbsolute)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    hit (%g, %g): fill=%t", pt.X, pt.Y, fill)
		if pen != nil {
			stroke, err := g.StrokeContains(pen, pt, tol, media.ToleranceAbsolute)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " stroke=%t", stroke)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func formatRect(r media.Rect) string {
	if r.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.Width, r.Height)
}
