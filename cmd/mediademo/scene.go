package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/media"
)

// Scene is the YAML document read by mediademo.
type Scene struct {
	// Locale is a BCP 47 tag used to format and parse colors.
	Locale     string          `yaml:"locale,omitempty"`
	Tolerance  float64         `yaml:"tolerance,omitempty"`
	Colors     []string        `yaml:"colors,omitempty"`
	Profiles   []ProfileColor  `yaml:"profiles,omitempty"`
	Pen        *PenConfig      `yaml:"pen,omitempty"`
	Geometries []GeometryEntry `yaml:"geometries,omitempty"`
	Combine    []CombineEntry  `yaml:"combine,omitempty"`
}

// ProfileColor is a color given by native values in an ICC profile.
type ProfileColor struct {
	URI    string    `yaml:"uri"`
	Alpha  *float32  `yaml:"alpha,omitempty"`
	Values []float32 `yaml:"values"`
}

// PenConfig describes the pen used for stroke queries.
type PenConfig struct {
	Color      string    `yaml:"color,omitempty"`
	Thickness  float64   `yaml:"thickness"`
	Cap        string    `yaml:"cap,omitempty"`
	Join       string    `yaml:"join,omitempty"`
	MiterLimit float64   `yaml:"miter_limit,omitempty"`
	Dashes     []float64 `yaml:"dashes,omitempty"`
	DashOffset float64   `yaml:"dash_offset,omitempty"`
}

// GeometryEntry is a named geometry in path markup with points to hit test.
type GeometryEntry struct {
	Name      string          `yaml:"name"`
	Path      string          `yaml:"path"`
	Transform TransformConfig `yaml:"transform,omitempty"`
	Points    [][2]float64    `yaml:"points,omitempty"`
}

// TransformConfig is applied as scale, then rotate, then translate.
type TransformConfig struct {
	Translate *[2]float64 `yaml:"translate,omitempty"`
	Scale     *[2]float64 `yaml:"scale,omitempty"`
	Rotate    float64     `yaml:"rotate,omitempty"`
}

// CombineEntry combines two named geometries.
type CombineEntry struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Mode string `yaml:"mode"`
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a scene document.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if s.Tolerance == 0 {
		s.Tolerance = media.DefaultFlatteningTolerance
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if _, err := s.Tag(); err != nil {
		return err
	}
	if s.Tolerance < 0 {
		return errors.New("tolerance must not be negative")
	}
	names := make(map[string]bool, len(s.Geometries))
	for i, g := range s.Geometries {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("geometry %d has no name", i)
		}
		if names[g.Name] {
			return fmt.Errorf("duplicate geometry %q", g.Name)
		}
		names[g.Name] = true
	}
	for _, c := range s.Combine {
		if !names[c.A] || !names[c.B] {
			return fmt.Errorf("combine %s %s: unknown geometry", c.A, c.B)
		}
		if _, err := combineMode(c.Mode); err != nil {
			return err
		}
	}
	if s.Pen != nil {
		if _, err := s.Pen.Build(); err != nil {
			return err
		}
	}
	return nil
}

// Tag returns the scene locale. An empty locale is the invariant one.
func (s *Scene) Tag() (language.Tag, error) {
	if s.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s.Locale, err)
	}
	return tag, nil
}

// Build returns the pen described by c.
func (c *PenConfig) Build() (*media.Pen, error) {
	color := media.KnownColorBlack.Color()
	if c.Color != "" {
		var err error
		if color, err = media.ParseColor(c.Color, language.Und); err != nil {
			return nil, fmt.Errorf("pen color: %w", err)
		}
	}
	pen := media.NewPen(media.NewSolidColorBrush(color), c.Thickness)

	if c.Cap != "" {
		lineCap, ok := map[string]media.PenLineCap{
			"flat":     media.PenLineCapFlat,
			"square":   media.PenLineCapSquare,
			"round":    media.PenLineCapRound,
			"triangle": media.PenLineCapTriangle,
		}[strings.ToLower(c.Cap)]
		if !ok {
			return nil, fmt.Errorf("unknown line cap %q", c.Cap)
		}
		pen = pen.WithLineCap(lineCap)
	}
	if c.Join != "" {
		join, ok := map[string]media.PenLineJoin{
			"miter": media.PenLineJoinMiter,
			"bevel": media.PenLineJoinBevel,
			"round": media.PenLineJoinRound,
		}[strings.ToLower(c.Join)]
		if !ok {
			return nil, fmt.Errorf("unknown line join %q", c.Join)
		}
		pen = pen.WithLineJoin(join)
	}
	if c.MiterLimit > 0 {
		pen = pen.WithMiterLimit(c.MiterLimit)
	}
	if len(c.Dashes) > 0 {
		pen = pen.WithDashStyle(media.NewDashStyle(c.Dashes...).WithOffset(c.DashOffset))
	}
	return pen, nil
}

// Transform returns the configured transform, or nil when none is set.
func (c TransformConfig) Transform() media.Transform {
	var group media.TransformGroup
	if c.Scale != nil {
		group = append(group, media.ScaleTransform{ScaleX: c.Scale[0], ScaleY: c.Scale[1]})
	}
	if c.Rotate != 0 {
		group = append(group, media.RotateTransform{Angle: c.Rotate})
	}
	if c.Translate != nil {
		group = append(group, media.TranslateTransform{X: c.Translate[0], Y: c.Translate[1]})
	}
	if len(group) == 0 {
		return nil
	}
	return group
}

func combineMode(s string) (media.GeometryCombineMode, error) {
	switch strings.ToLower(s) {
	case "", "union":
		return media.CombineUnion, nil
	case "intersect":
		return media.CombineIntersect, nil
	case "xor":
		return media.CombineXor, nil
	case "exclude":
		return media.CombineExclude, nil
	}
	return 0, fmt.Errorf("unknown combine mode %q", s)
}
