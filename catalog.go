package affine

import (
	"math"
)

// OperatorFunc applies a transformation to an augmented point matrix.
// It returns a new Matrix and never modifies its input.
type OperatorFunc func(m Matrix, p Param) Matrix

// MatrixFunc builds the 3x3 matrix for an operator and parameter.
type MatrixFunc func(p Param) Transform

type entry struct {
	op     Operator
	matrix MatrixFunc
	apply  OperatorFunc
}

// Catalog is the fixed set of transformations, indexed by Operator.
//
// A Catalog is immutable once created and safe for concurrent use.
type Catalog struct {
	entries map[Operator]entry
}

// DefaultCatalog holds the nine standard operators.
var DefaultCatalog = newCatalog()

func newCatalog() *Catalog {
	matrices := map[Operator]MatrixFunc{
		Identity:      identity,
		Translate:     translation,
		Scale:         scaling,
		Rotate:        rotation,
		ShearX:        shearX,
		ShearY:        shearY,
		ReflectOrigin: reflection(-1, -1),
		ReflectX:      reflection(1, -1),
		ReflectY:      reflection(-1, 1),
	}

	c := &Catalog{entries: make(map[Operator]entry, len(matrices))}
	for op, mf := range matrices {
		c.entries[op] = entry{op: op, matrix: mf, apply: applyFunc(op, mf)}
	}
	return c
}

func applyFunc(op Operator, mf MatrixFunc) OperatorFunc {
	if op.Kind() == NoParam {
		// parameterless operators ignore whatever they are given
		return func(m Matrix, _ Param) Matrix {
			return mf(None()).Apply(m)
		}
	}
	return func(m Matrix, p Param) Matrix {
		return mf(p).Apply(m)
	}
}

// Operator returns the function for the given operator.
// Returns an InvalidSpecError if op is not in the catalog.
func (c *Catalog) Operator(op Operator) (OperatorFunc, error) {
	e, ok := c.entries[op]
	if !ok {
		return nil, NewInvalidSpecError("operator index %d out of range 0..%d", int(op), NumOperators-1)
	}
	return e.apply, nil
}

// Transform returns the 3x3 matrix the operator multiplies with.
func (c *Catalog) Transform(op Operator, p Param) (Transform, error) {
	e, ok := c.entries[op]
	if !ok {
		return Transform{}, NewInvalidSpecError("operator index %d out of range 0..%d", int(op), NumOperators-1)
	}
	return e.matrix(p), nil
}

// Apply transforms m with a single operator.
//
// The parameter is not validated here, use a Spec for that. Operators that
// take no parameter ignore p.
func (c *Catalog) Apply(op Operator, m Matrix, p Param) (Matrix, error) {
	f, err := c.Operator(op)
	if err != nil {
		return Matrix{}, err
	}
	return f(m, p), nil
}

// Product multiplies the matrices of all specs into a single Transform.
// The first spec is applied first.
//
// Compose does not use this; it is for callers that want to transform
// many point sets with the same sequence.
func (c *Catalog) Product(specs []Spec) (Transform, error) {
	norm, err := Normalize(specs)
	if err != nil {
		return Transform{}, err
	}

	t := IdentityTransform()
	for _, s := range norm {
		m, err := c.Transform(s.Op(), s.Param())
		if err != nil {
			return Transform{}, err
		}
		t = m.Multiply(t)
	}
	return t, nil
}

// Identity:
//
//  1  0  0
//  0  1  0
//  0  0  1
//
func identity(_ Param) Transform {
	return IdentityTransform()
}

// Translation:
//
//  1  0  tx
//  0  1  ty
//  0  0  1
//
func translation(p Param) Transform {
	tx, ty := p.Vector()
	m := IdentityTransform()
	m[2] = tx
	m[5] = ty
	return m
}

// Scaling about the origin:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func scaling(p Param) Transform {
	sx, sy := p.Vector()
	m := IdentityTransform()
	m[0] = sx
	m[4] = sy
	return m
}

// Rotation about the origin:
//
//  cos(angle)   sin(angle)   0
//  -sin(angle)  cos(angle)   0
//  0            0            1
//
// Note that this turns points clockwise for positive angles.
func rotation(p Param) Transform {
	angle := p.Radians()
	m := IdentityTransform()
	m[0] = math.Cos(angle)
	m[1] = math.Sin(angle)

	m[3] = math.Sin(angle) * -1
	m[4] = math.Cos(angle)

	return m
}

// Shearing in x direction:
//
//  1  tan(angle)  0
//  0  1           0
//  0  0           1
//
func shearX(p Param) Transform {
	m := IdentityTransform()
	m[1] = math.Tan(p.Radians())
	return m
}

// Shearing in y direction:
//
//  1           0  0
//  tan(angle)  1  0
//  0           0  1
//
func shearY(p Param) Transform {
	m := IdentityTransform()
	m[3] = math.Tan(p.Radians())
	return m
}

func reflection(sx, sy float64) MatrixFunc {
	return func(_ Param) Transform {
		m := IdentityTransform()
		m[0] = sx
		m[4] = sy
		return m
	}
}
