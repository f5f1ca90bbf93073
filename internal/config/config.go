// Package config reads settings for the affine command from a TOML file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akeil/affine"
	"github.com/akeil/affine/pkg/render"
)

// Settings is the content of a config file.
type Settings struct {
	LogLevel string `toml:"log_level"`
	Render   Render `toml:"render"`
	Series   Series `toml:"series"`
}

// Render holds the [render] section; colors are hex strings.
type Render struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FPS        int     `toml:"fps"`
	Duration   float64 `toml:"duration"`
	Margin     float64 `toml:"margin"`
	Radius     float64 `toml:"radius"`
	Equal      bool    `toml:"equal"`
	Dither     bool    `toml:"dither"`
	Title      string  `toml:"title"`
	Background string  `toml:"background"`
	Points     string  `toml:"points"`
	Axes       string  `toml:"axes"`
	Text       string  `toml:"text"`
}

// Series holds the [series] section: the initial points and the steps.
type Series struct {
	Points []string `toml:"points"`
	Steps  []string `toml:"steps"`
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	o := render.DefaultOptions()
	return Settings{
		LogLevel: "warning",
		Render: Render{
			Width:      o.Width,
			Height:     o.Height,
			FPS:        o.FPS,
			Duration:   o.Duration,
			Margin:     o.Margin,
			Radius:     o.Radius,
			Equal:      o.Equal,
			Dither:     o.Dither,
			Title:      o.Title,
			Background: "#ffffff",
			Points:     "#ff000080",
			Axes:       "#808080",
			Text:       "#000000",
		},
		Series: Series{
			Points: []string{"0,0", "1,0", "1,1", "0,1"},
		},
	}
}

// Load reads settings from the file at path.
// Values missing from the file keep their defaults. Unknown keys are an error.
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, affine.Wrap(err, "read config %q", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return s, fmt.Errorf("unknown keys in config %q: %v", path, strings.Join(keys, ", "))
	}

	return s, nil
}

// RenderOptions converts the [render] section to render.Options.
func (s Settings) RenderOptions() (render.Options, error) {
	r := s.Render
	o := render.Options{
		Width:    r.Width,
		Height:   r.Height,
		FPS:      r.FPS,
		Duration: r.Duration,
		Margin:   r.Margin,
		Radius:   r.Radius,
		Equal:    r.Equal,
		Dither:   r.Dither,
		Title:    r.Title,
	}

	colors := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", r.Background, &o.Background},
		{"points", r.Points, &o.Points},
		{"axes", r.Axes, &o.Axes},
		{"text", r.Text, &o.Text},
	}
	for _, c := range colors {
		v, err := render.ParseColor(c.hex)
		if err != nil {
			return o, affine.Wrap(err, "render.%v", c.name)
		}
		*c.dst = v
	}

	return o, o.Validate()
}

// InitialPoints parses the [series] points.
func (s Settings) InitialPoints() ([]affine.Point, error) {
	return ParsePoints(s.Series.Points)
}

// Steps parses the [series] steps.
func (s Settings) Steps() ([]affine.Spec, error) {
	specs := make([]affine.Spec, 0, len(s.Series.Steps))
	for _, step := range s.Series.Steps {
		parsed, err := affine.ParseSpecs(step)
		if err != nil {
			return nil, err
		}
		specs = append(specs, parsed...)
	}
	return specs, nil
}

// ParsePoints reads points given as "x,y".
func ParsePoints(values []string) ([]affine.Point, error) {
	points := make([]affine.Point, 0, len(values))
	for _, v := range values {
		p, err := ParsePoint(v)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// ParsePoint reads a single point given as "x,y".
func ParsePoint(s string) (affine.Point, error) {
	p, err := affine.ParseParam(affine.VectorParam, s)
	if err != nil {
		return affine.Point{}, fmt.Errorf("invalid point %q", s)
	}
	x, y := p.Vector()
	return affine.Point{X: x, Y: y}, nil
}
