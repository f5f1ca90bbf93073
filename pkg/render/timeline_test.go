package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/affine"
)

func TestInterpolate(t *testing.T) {
	cases := []struct {
		spec     affine.Spec
		t        float64
		expected affine.Spec
	}{
		{affine.With(affine.Translate, affine.Vec(2, -4)), 0.5, affine.With(affine.Translate, affine.Vec(1, -2))},
		{affine.With(affine.Scale, affine.Vec(3, 0)), 0.5, affine.With(affine.Scale, affine.Vec(2, 0.5))},
		{affine.With(affine.Rotate, affine.Angle(1)), 0.25, affine.With(affine.Rotate, affine.Angle(0.25))},
		{affine.With(affine.ShearY, affine.Angle(1)), 0, affine.With(affine.ShearY, affine.Angle(0))},
		{affine.Bare(affine.ReflectX), 0.25, affine.With(affine.Identity, affine.None())},
		{affine.Bare(affine.ReflectX), 0.5, affine.With(affine.ReflectX, affine.None())},
		{affine.Bare(affine.Identity), 0.7, affine.With(affine.Identity, affine.None())},
		// clamped
		{affine.With(affine.Translate, affine.Vec(2, 2)), 3, affine.With(affine.Translate, affine.Vec(2, 2))},
	}

	for _, c := range cases {
		t.Run(c.spec.Describe(), func(t *testing.T) {
			s, err := Interpolate(c.spec, c.t)
			require.NoError(t, err)
			assert.Equal(t, c.expected, s)
		})
	}

	_, err := Interpolate(affine.Bare(affine.Operator(20)), 0.5)
	assert.True(t, affine.IsInvalidSpec(err))
}

func testSeries(t *testing.T) (affine.Series, []affine.Spec) {
	m, err := affine.Augment([]affine.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: -1}})
	require.NoError(t, err)

	specs := []affine.Spec{
		affine.With(affine.Rotate, affine.Angle(math.Pi/2)),
		affine.With(affine.Translate, affine.Vec(1, 0)),
		affine.Bare(affine.ReflectY),
	}
	states, err := affine.Compose(m, specs)
	require.NoError(t, err)
	return states, specs
}

func TestTimeline(t *testing.T) {
	states, specs := testSeries(t)

	// 4 segments (original + 3 steps) with 3 frames each
	tl, err := NewTimeline(states, specs, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, tl.Len())

	first, err := tl.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, -1, first.Step)
	assert.True(t, first.Points.Equal(states.Initial()))
	assert.Equal(t, "Step 0: original", first.Title())

	// the last frame of every segment shows the exact state
	for seg := 1; seg <= len(specs); seg++ {
		f, err := tl.Frame(seg*3 + 2)
		require.NoError(t, err)
		assert.Equal(t, seg-1, f.Step)
		assert.InDelta(t, 1.0, f.Progress, 1e-9)
		assert.True(t, f.Points.InDelta(states[seg], 1e-9), "segment %d", seg)
	}

	mid, err := tl.Frame(4)
	require.NoError(t, err)
	assert.Equal(t, 0, mid.Step)
	assert.True(t, mid.Progress > 0 && mid.Progress < 1)
	assert.Equal(t, "Step 1: rotate(1.5707963267948966)", mid.Title())

	_, err = tl.Frame(12)
	assert.Error(t, err)
	_, err = tl.Frame(-1)
	assert.Error(t, err)
}

func TestTimelineErrors(t *testing.T) {
	states, specs := testSeries(t)

	_, err := NewTimeline(states, specs[:1], 10)
	assert.Error(t, err)

	_, err = NewTimeline(nil, nil, 10)
	assert.True(t, affine.IsShapeError(err))

	tl, err := NewTimeline(states[:1], nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.Len())
}

func TestTimelineBounds(t *testing.T) {
	states, specs := testSeries(t)
	tl, err := NewTimeline(states, specs, 30)
	require.NoError(t, err)
	assert.Equal(t, states.Bounds(), tl.Bounds())
}

func TestTimelineBoundsShearThroughVertical(t *testing.T) {
	m, err := affine.Augment([]affine.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	// the shear angle passes pi/2 while animating
	specs, err := affine.ParseSpecs("4:3pi/4")
	require.NoError(t, err)
	states, err := affine.Compose(m, specs)
	require.NoError(t, err)

	tl, err := NewTimeline(states, specs, 90)
	require.NoError(t, err)

	b := tl.Bounds()
	assert.Equal(t, states.Bounds(), b)
	assert.InDelta(t, -1.0, b.Min.X, 1e-9)
	assert.InDelta(t, 1.0, b.Max.X, 1e-9)

	// in-between frames may go far outside the range
	mid, err := tl.Frame(67)
	require.NoError(t, err)
	assert.Greater(t, mid.Points.Bounds().Dx(), b.Dx())
}
