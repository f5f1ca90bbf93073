package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/config"
)

func testInput(t *testing.T) input {
	in, err := newInput(config.Default(), []string{"1,0", "0,1"}, []string{"rotate:pi/2", "1:1,0"})
	require.NoError(t, err)
	return in
}

func TestNewInput(t *testing.T) {
	in := testInput(t)
	assert.Equal(t, 2, in.matrix.Len())
	assert.Len(t, in.specs, 2)

	// config values are used when nothing is given on the command line
	s := config.Default()
	s.Series.Steps = []string{"6"}
	in, err := newInput(s, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, in.matrix.Len())
	require.Len(t, in.specs, 1)
	assert.Equal(t, affine.ReflectOrigin, in.specs[0].Op())

	_, err = newInput(s, []string{"x"}, nil)
	assert.Error(t, err)

	_, err = newInput(s, nil, []string{"12"})
	assert.True(t, affine.IsInvalidSpec(err))
}

func TestApplyText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doApply(&buf, testInput(t), "text"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Step 0: original", lines[0])
	assert.Equal(t, "  (1, 0)", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "Step 1: rotate("))
	assert.Equal(t, "Step 2: translate(1,0)", lines[6])
}

func TestApplyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doApply(&buf, testInput(t), "json"))

	var out []stateJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "", out[0].Spec)
	assert.Equal(t, "1:1,0", out[2].Spec)

	// (1,0) -> rotate -> (0,-1) -> translate -> (1,-1)
	assert.InDelta(t, 1.0, out[2].Points[0][0], 1e-9)
	assert.InDelta(t, -1.0, out[2].Points[0][1], 1e-9)

	assert.Error(t, doApply(&buf, testInput(t), "yaml"))
}

func TestOutputKind(t *testing.T) {
	for path, expected := range map[string]string{
		"a.gif":      "gif",
		"dir/b.PNG":  "png",
		"series.pdf": "pdf",
	} {
		kind, err := outputKind(path)
		require.NoError(t, err)
		assert.Equal(t, expected, kind)
	}

	_, err := outputKind("out.jpg")
	assert.Error(t, err)
	_, err = outputKind("noext")
	assert.Error(t, err)
}

func TestStateIndex(t *testing.T) {
	assert.Equal(t, 2, stateIndex(-1, 3))
	assert.Equal(t, 0, stateIndex(0, 3))
	assert.Equal(t, 1, stateIndex(1, 3))
}

func smallSettings() config.Settings {
	s := config.Default()
	s.Render.Width = 90
	s.Render.Height = 120
	s.Render.FPS = 4
	s.Render.Duration = 1
	return s
}

func TestSeries(t *testing.T) {
	dir := t.TempDir()
	outputs := []string{
		filepath.Join(dir, "s.gif"),
		filepath.Join(dir, "s.png"),
		filepath.Join(dir, "s.pdf"),
	}

	err := doSeries(context.Background(), smallSettings(), testInput(t), outputs, -1)
	require.NoError(t, err)
	for _, path := range outputs {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), path)
	}

	// nothing is written for an unsupported output
	bad := filepath.Join(dir, "s.bmp")
	err = doSeries(context.Background(), smallSettings(), testInput(t), []string{bad}, 0)
	assert.Error(t, err)
	assert.NoFileExists(t, bad)
}

func TestSeriesFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.png")
	err := doSeries(context.Background(), smallSettings(), testInput(t), []string{path}, 7)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.gif")
	err := doCatalog(context.Background(), smallSettings(), testInput(t), path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
