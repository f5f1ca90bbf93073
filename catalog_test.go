package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func square(t *testing.T) Matrix {
	m, err := Augment([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {-2.5, 3}})
	require.NoError(t, err)
	return m
}

func TestCatalogOperators(t *testing.T) {
	p, err := Augment([]Point{{1, 2}})
	require.NoError(t, err)

	cases := []struct {
		op       Operator
		param    Param
		expected Point
	}{
		{Identity, None(), Point{1, 2}},
		{Translate, Vec(3, -1), Point{4, 1}},
		{Scale, Vec(2, 0.5), Point{2, 1}},
		// [cos sin; -sin cos] turns (1, 2) by -90 degrees
		{Rotate, Angle(math.Pi / 2), Point{2, -1}},
		{ShearX, Angle(math.Pi / 4), Point{3, 2}},
		{ShearY, Angle(math.Pi / 4), Point{1, 3}},
		{ReflectOrigin, None(), Point{-1, -2}},
		{ReflectX, None(), Point{1, -2}},
		{ReflectY, None(), Point{-1, 2}},
	}

	for _, c := range cases {
		t.Run(c.op.String(), func(t *testing.T) {
			f, err := DefaultCatalog.Operator(c.op)
			require.NoError(t, err)

			result := f(p, c.param)
			require.Equal(t, 1, result.Len())
			assert.InDelta(t, c.expected.X, result.Point(0).X, delta)
			assert.InDelta(t, c.expected.Y, result.Point(0).Y, delta)
			assert.Equal(t, 1.0, result.At(2, 0), "augmented row must stay 1")
		})
	}
}

func TestCatalogShapeAndDeterminism(t *testing.T) {
	m := square(t)
	before := m.Points()

	for _, op := range Operators() {
		p := DefaultParam(op)
		switch op.Kind() {
		case VectorParam:
			p = Vec(1.8, -1.5)
		case AngleParam:
			p = Angle(math.Pi / 3)
		}

		one, err := DefaultCatalog.Apply(op, m, p)
		require.NoError(t, err)
		two, err := DefaultCatalog.Apply(op, m, p)
		require.NoError(t, err)

		assert.Equal(t, m.Len(), one.Len(), "%v changed the number of points", op)
		assert.True(t, one.Equal(two), "%v is not deterministic", op)
		assert.Equal(t, before, m.Points(), "%v modified its input", op)
	}
}

func TestIdentityLaw(t *testing.T) {
	m := square(t)
	for _, p := range []Param{None(), Vec(5, 5), Angle(1)} {
		result, err := DefaultCatalog.Apply(Identity, m, p)
		require.NoError(t, err)
		assert.True(t, result.Equal(m), "identity with %v", p)
	}
}

func TestParameterlessIgnoreParam(t *testing.T) {
	m := square(t)
	for _, op := range []Operator{ReflectOrigin, ReflectX, ReflectY} {
		plain, err := DefaultCatalog.Apply(op, m, None())
		require.NoError(t, err)
		withParam, err := DefaultCatalog.Apply(op, m, Vec(3, 4))
		require.NoError(t, err)
		assert.True(t, plain.Equal(withParam), "%v should ignore its parameter", op)
	}
}

func TestInvolutions(t *testing.T) {
	m := square(t)
	for _, op := range []Operator{ReflectOrigin, ReflectX, ReflectY} {
		once, err := DefaultCatalog.Apply(op, m, None())
		require.NoError(t, err)
		twice, err := DefaultCatalog.Apply(op, once, None())
		require.NoError(t, err)
		assert.True(t, twice.InDelta(m, delta), "%v applied twice", op)
	}
}

func TestInverses(t *testing.T) {
	m := square(t)
	c := DefaultCatalog

	moved, _ := c.Apply(Translate, m, Vec(1.8, 1.5))
	back, _ := c.Apply(Translate, moved, Vec(-1.8, -1.5))
	assert.True(t, back.InDelta(m, delta), "translate inverse")

	scaled, _ := c.Apply(Scale, m, Vec(1.8, -0.4))
	back, _ = c.Apply(Scale, scaled, Vec(1/1.8, 1/-0.4))
	assert.True(t, back.InDelta(m, delta), "scale inverse")

	for _, theta := range []float64{math.Pi / 3, -2, 7.5} {
		rotated, _ := c.Apply(Rotate, m, Angle(theta))
		back, _ = c.Apply(Rotate, rotated, Angle(-theta))
		assert.True(t, back.InDelta(m, delta), "rotate inverse for %v", theta)
	}
}

func TestShearAtRightAngle(t *testing.T) {
	m, err := Augment([]Point{{0, 1}})
	require.NoError(t, err)

	// tan(pi/2) is huge but finite in floating point; this is not an error
	result, err := DefaultCatalog.Apply(ShearX, m, Angle(math.Pi/2))
	require.NoError(t, err)
	assert.Greater(t, math.Abs(result.Point(0).X), 1e15)
}

func TestCatalogUnknownOperator(t *testing.T) {
	_, err := DefaultCatalog.Operator(Operator(9))
	assert.True(t, IsInvalidSpec(err))

	_, err = DefaultCatalog.Transform(Operator(-1), None())
	assert.True(t, IsInvalidSpec(err))

	_, err = DefaultCatalog.Apply(Operator(42), square(t), None())
	assert.True(t, IsInvalidSpec(err))
}

func TestProduct(t *testing.T) {
	m := square(t)
	specs := []Spec{
		With(Rotate, Angle(0.3)),
		With(Translate, Vec(1, -2)),
		With(Scale, Vec(2, 3)),
		Bare(ReflectY),
	}

	states, err := Compose(m, specs)
	require.NoError(t, err)

	product, err := DefaultCatalog.Product(specs)
	require.NoError(t, err)
	assert.True(t, product.Apply(m).InDelta(states.Final(), delta))

	_, err = DefaultCatalog.Product([]Spec{Bare(Operator(12))})
	assert.True(t, IsInvalidSpec(err))
}

func TestTransformApplyPoint(t *testing.T) {
	tr, err := DefaultCatalog.Transform(Translate, Vec(2, 3))
	require.NoError(t, err)
	assert.Equal(t, Point{3, 4}, tr.ApplyPoint(Point{1, 1}))

	assert.Equal(t, tr, IdentityTransform().Multiply(tr))
	assert.Equal(t, tr, tr.Multiply(IdentityTransform()))
}
