package imaging

import (
	"image"
	"math"
)

func identity() []float64 {
	return []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func translation(dx, dy float64) []float64 {
	m := identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func scaling(sx, sy float64) []float64 {
	m := identity()

	m[0] = sx
	m[4] = sy

	return m
}

// multiply combines two affine transforms
func multiply(a, b []float64) []float64 {
	m := make([]float64, 9)

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// transform applies an affine transform to the given x,y point.
func transform(m []float64, x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

// Viewport maps data coordinates onto the pixels of an image.
//
// The y-axis is flipped so that larger data values appear higher up
// in the image.
type Viewport struct {
	m    []float64
	dst  image.Rectangle
	minX float64
	minY float64
	maxX float64
	maxY float64
}

// NewViewport creates a viewport that shows the data range
// [minX, maxX] x [minY, maxY] in the rectangle dst.
//
// An empty range is widened by one unit on either side.
func NewViewport(minX, minY, maxX, maxY float64, dst image.Rectangle) Viewport {
	if maxX-minX <= 0 {
		minX, maxX = minX-1, maxX+1
	}
	if maxY-minY <= 0 {
		minY, maxY = minY-1, maxY+1
	}

	sx := float64(dst.Dx()) / (maxX - minX)
	sy := float64(dst.Dy()) / (maxY - minY)

	// move the data origin to (0, 0), scale, flip y, move to the image
	t0 := translation(-minX, -minY)
	s := scaling(sx, -sy)
	t1 := translation(float64(dst.Min.X), float64(dst.Max.Y))

	return Viewport{
		m:    multiply(t1, multiply(s, t0)),
		dst:  dst,
		minX: minX,
		minY: minY,
		maxX: maxX,
		maxY: maxY,
	}
}

// ToPixel converts data coordinates to (fractional) pixel coordinates.
func (v Viewport) ToPixel(x, y float64) (float64, float64) {
	return transform(v.m, x, y)
}

// Origin returns the pixel coordinates of the data origin (0, 0).
func (v Viewport) Origin() (float64, float64) {
	return v.ToPixel(0, 0)
}

// Contains reports whether the data point is inside the visible range.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.minX && x <= v.maxX && y >= v.minY && y <= v.maxY
}

// Bounds returns the target rectangle in the image.
func (v Viewport) Bounds() image.Rectangle {
	return v.dst
}

// Square widens the shorter side of a data range so that both sides have
// the same length, keeping the center in place.
func Square(minX, minY, maxX, maxY float64) (float64, float64, float64, float64) {
	w := maxX - minX
	h := maxY - minY
	d := math.Abs(w-h) / 2
	if w < h {
		return minX - d, minY, maxX + d, maxY
	}
	return minX, minY - d, maxX, maxY + d
}
