package affine

// Transform is a 3x3 affine matrix in row-major order:
//
//  m[0]  m[1]  m[2]
//  m[3]  m[4]  m[5]
//  m[6]  m[7]  m[8]
//
type Transform [9]float64

// IdentityTransform returns the 3x3 identity matrix.
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Multiply returns the product t * o.
//
// Applying the product to points is the same as applying o first,
// then t.
func (t Transform) Multiply(o Transform) Transform {
	var m Transform

	m[0] = t[0]*o[0] + t[1]*o[3] + t[2]*o[6]
	m[1] = t[0]*o[1] + t[1]*o[4] + t[2]*o[7]
	m[2] = t[0]*o[2] + t[1]*o[5] + t[2]*o[8]

	m[3] = t[3]*o[0] + t[4]*o[3] + t[5]*o[6]
	m[4] = t[3]*o[1] + t[4]*o[4] + t[5]*o[7]
	m[5] = t[3]*o[2] + t[4]*o[5] + t[5]*o[8]

	m[6] = t[6]*o[0] + t[7]*o[3] + t[8]*o[6]
	m[7] = t[6]*o[1] + t[7]*o[4] + t[8]*o[7]
	m[8] = t[6]*o[2] + t[7]*o[5] + t[8]*o[8]

	return m
}

// Apply left-multiplies the augmented point matrix: t * m.
// The input matrix is not modified.
func (t Transform) Apply(m Matrix) Matrix {
	return m.mapCols(t.column)
}

// ApplyPoint transforms a single point.
func (t Transform) ApplyPoint(p Point) Point {
	c := t.column([3]float64{p.X, p.Y, 1})
	return Point{c[0], c[1]}
}

func (t Transform) column(c [3]float64) [3]float64 {
	return [3]float64{
		t[0]*c[0] + t[1]*c[1] + t[2]*c[2],
		t[3]*c[0] + t[4]*c[1] + t[5]*c[2],
		t[6]*c[0] + t[7]*c[1] + t[8]*c[2],
	}
}
