package render

import (
	"context"
	"image"
	"io"
	"math"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/imaging"
	"github.com/akeil/affine/internal/logging"
)

// CatalogParams are the parameters shown in the catalog animation.
var CatalogParams = map[affine.Operator]affine.Param{
	affine.Translate: affine.Vec(1, 1),
	affine.Scale:     affine.Vec(1.5, 1.2),
	affine.Rotate:    affine.Angle(math.Pi / 3),
	affine.ShearX:    affine.Angle(math.Pi / 3),
	affine.ShearY:    affine.Angle(math.Pi / 3),
}

// blinkPeriod is how long (seconds) reflections stay on or off.
const blinkPeriod = 0.2

// CatalogGIF shows every operator of the catalog applied to m, each in its
// own cell of a 3x3 grid, and writes the animation as GIF.
//
// Operators with a parameter are animated from the neutral value to the
// value in CatalogParams; reflections blink.
func (c *Context) CatalogGIF(ctx context.Context, m affine.Matrix, w io.Writer) error {
	if m.Len() == 0 {
		return affine.NewShapeError("no points")
	}

	o := c.opts
	cellW := o.Width / 3
	cellH := (o.Height - titleHeight) / 3
	if cellW < 1 || cellH < 1 {
		return errImageTooSmall
	}

	cellOpts := o
	cellOpts.Width = cellW
	cellOpts.Height = cellH
	cellOpts.Radius = math.Max(1, o.Radius*0.6)
	cell := &Context{opts: cellOpts}

	bounds := catalogBounds(m)
	n := o.NumFrames()
	logging.Debug("Render catalog with %d frames", n)

	frames, err := c.renderFrames(ctx, n, func(i int) (*image.RGBA, error) {
		progress := 0.0
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}
		seconds := float64(i) / float64(o.FPS)

		dst := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
		renderBackground(dst, o.Background)
		renderText(dst, image.Rect(0, 0, o.Width, titleHeight), titleHeight/2+4, "Affine Transformations", o.Text)

		for _, op := range affine.Operators() {
			points, err := catalogFrame(op, m, progress, seconds)
			if err != nil {
				return nil, err
			}

			img := cell.State(points, bounds, op.String())
			idx := int(op)
			x := (idx % 3) * cellW
			y := titleHeight + (idx/3)*cellH
			imaging.Place(dst, image.Rect(x, y, x+cellW, y+cellH), img)
		}
		return dst, nil
	})
	if err != nil {
		return err
	}

	return c.encodeGIF(frames, w)
}

// catalogFrame computes the points for one cell of the catalog grid.
func catalogFrame(op affine.Operator, m affine.Matrix, progress, seconds float64) (affine.Matrix, error) {
	var spec affine.Spec
	switch op.Kind() {
	case affine.NoParam:
		spec = affine.Bare(op)
		if op != affine.Identity && int(seconds/blinkPeriod)%2 == 0 {
			spec = affine.Bare(affine.Identity)
		}
	default:
		full := affine.With(op, CatalogParams[op])
		var err error
		spec, err = Interpolate(full, progress)
		if err != nil {
			return affine.Matrix{}, err
		}
	}

	return affine.DefaultCatalog.Apply(spec.Op(), m, spec.Param())
}

// catalogBounds is a square around the origin that leaves room for the
// catalog transformations.
func catalogBounds(m affine.Matrix) affine.Rect {
	b := m.Bounds()
	a := math.Max(
		math.Max(math.Abs(b.Min.X), math.Abs(b.Max.X)),
		math.Max(math.Abs(b.Min.Y), math.Abs(b.Max.Y)),
	)
	lim := math.Max(a*0.5, 1) + a
	return affine.Rect{
		Min: affine.Point{X: -lim, Y: -lim},
		Max: affine.Point{X: lim, Y: lim},
	}
}
