package affine

import (
	"fmt"
	"math"
)

// Point is a position in the 2-D plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Matrix is a 3xN matrix of augmented points.
// Column i holds (x_i, y_i, 1).
//
// A Matrix is never modified after it is created; operators return a new
// Matrix instead.
type Matrix struct {
	cols [][3]float64
}

// Augment lifts the given points into augmented form.
//
// Returns a ShapeError if points is empty or contains a coordinate that is
// not a finite number.
func Augment(points []Point) (Matrix, error) {
	if len(points) == 0 {
		return Matrix{}, NewShapeError("no points")
	}

	cols := make([][3]float64, len(points))
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return Matrix{}, NewShapeError("point %d %v is not finite", i, p)
		}
		cols[i] = [3]float64{p.X, p.Y, 1}
	}

	return Matrix{cols: cols}, nil
}

// AugmentFlat augments interleaved coordinates x0, y0, x1, y1, ...
//
// Returns a ShapeError if coords is empty or has an odd length.
func AugmentFlat(coords []float64) (Matrix, error) {
	if len(coords) == 0 {
		return Matrix{}, NewShapeError("no coordinates")
	}
	if len(coords)%2 != 0 {
		return Matrix{}, NewShapeError("cannot pair %d coordinates", len(coords))
	}

	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{coords[2*i], coords[2*i+1]}
	}
	return Augment(points)
}

// AugmentRows augments a point set given as a row of x- and a row of
// y-coordinates.
//
// Returns a ShapeError if the rows are empty or differ in length.
func AugmentRows(xs, ys []float64) (Matrix, error) {
	if len(xs) != len(ys) {
		return Matrix{}, NewShapeError("row length mismatch %d != %d", len(xs), len(ys))
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{xs[i], ys[i]}
	}
	return Augment(points)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Len returns the number of points (columns).
func (m Matrix) Len() int {
	return len(m.cols)
}

// Col returns the augmented column for point i.
func (m Matrix) Col(i int) [3]float64 {
	return m.cols[i]
}

// At returns the value at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.cols[c][r]
}

// Row returns a copy of row r (0 = x, 1 = y, 2 = the augmented ones).
func (m Matrix) Row(r int) []float64 {
	row := make([]float64, len(m.cols))
	for i, c := range m.cols {
		row[i] = c[r]
	}
	return row
}

// Point returns point i without the augmented coordinate.
func (m Matrix) Point(i int) Point {
	c := m.cols[i]
	return Point{c[0], c[1]}
}

// Points returns all points without the augmented coordinate.
func (m Matrix) Points() []Point {
	points := make([]Point, len(m.cols))
	for i := range m.cols {
		points[i] = m.Point(i)
	}
	return points
}

// Bounds returns the smallest rectangle that contains all points.
//
// Non-finite coordinates (e.g. from a shear at 90 degrees) are skipped.
// An empty matrix or one without finite points yields a zero Rect.
func (m Matrix) Bounds() Rect {
	r, _ := m.bounds()
	return r
}

// bounds is Bounds, reporting whether m has any finite point.
func (m Matrix) bounds() (Rect, bool) {
	var r Rect
	first := true
	for _, c := range m.cols {
		if !finite(c[0]) || !finite(c[1]) {
			continue
		}
		if first {
			r = Rect{Min: Point{c[0], c[1]}, Max: Point{c[0], c[1]}}
			first = false
			continue
		}
		r = r.extend(Point{c[0], c[1]})
	}
	return r, !first
}

// Equal reports whether both matrices hold exactly the same values.
func (m Matrix) Equal(other Matrix) bool {
	return m.InDelta(other, 0)
}

// InDelta reports whether both matrices have the same shape and all
// values differ by no more than delta.
func (m Matrix) InDelta(other Matrix, delta float64) bool {
	if len(m.cols) != len(other.cols) {
		return false
	}
	for i := range m.cols {
		for r := 0; r < 3; r++ {
			a, b := m.cols[i][r], other.cols[i][r]
			if a == b {
				continue
			}
			if math.Abs(a-b) > delta || math.IsNaN(a-b) {
				return false
			}
		}
	}
	return true
}

// mapCols creates a new Matrix by applying f to every column.
func (m Matrix) mapCols(f func([3]float64) [3]float64) Matrix {
	cols := make([][3]float64, len(m.cols))
	for i, c := range m.cols {
		cols[i] = f(c)
	}
	return Matrix{cols: cols}
}

// Rect is an axis aligned rectangle in data space.
type Rect struct {
	Min Point
	Max Point
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing r and other.
func (r Rect) Union(other Rect) Rect {
	return r.extend(other.Min).extend(other.Max)
}

// Inset grows (positive m) or shrinks the rectangle on all sides.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		Min: Point{r.Min.X - m, r.Min.Y - m},
		Max: Point{r.Max.X + m, r.Max.Y + m},
	}
}

func (r Rect) extend(p Point) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Point{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}
