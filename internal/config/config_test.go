package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/affine"
	"github.com/akeil/affine/pkg/render"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "affine.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	o, err := s.RenderOptions()
	require.NoError(t, err)

	d := render.DefaultOptions()
	assert.Equal(t, d.Width, o.Width)
	assert.Equal(t, d.FPS, o.FPS)
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, o.Points)

	points, err := s.InitialPoints()
	require.NoError(t, err)
	assert.Len(t, points, 4)

	steps, err := s.Steps()
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[render]
width = 200
fps = 12
points = "#0000ff"

[series]
points = ["1,2", "-1, 0.5"]
steps = ["rotate:pi/2", "1:1,0 6"]
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)

	o, err := s.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, 200, o.Width)
	assert.Equal(t, 480, o.Height)
	assert.Equal(t, 12, o.FPS)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, o.Points)

	points, err := s.InitialPoints()
	require.NoError(t, err)
	assert.Equal(t, []affine.Point{{X: 1, Y: 2}, {X: -1, Y: 0.5}}, points)

	steps, err := s.Steps()
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, affine.Rotate, steps[0].Op())
	assert.InDelta(t, math.Pi/2, steps[0].Param().Radians(), 1e-12)
	assert.Equal(t, affine.Translate, steps[1].Op())
	assert.True(t, steps[2].IsBare())
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, `
[render]
widht = 200
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.widht")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "[render\nwidth = 1"))
	assert.Error(t, err)
}

func TestRenderOptionsInvalid(t *testing.T) {
	s := Default()
	s.Render.Axes = "gray"
	_, err := s.RenderOptions()
	assert.Error(t, err)

	s = Default()
	s.Render.FPS = 0
	_, err = s.RenderOptions()
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 2, -3.5 ")
	require.NoError(t, err)
	assert.Equal(t, affine.Point{X: 2, Y: -3.5}, p)

	for _, s := range []string{"", "1", "1,2,3", "a,b"} {
		_, err := ParsePoint(s)
		assert.Error(t, err, s)
	}
}
