package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/imaging"
)

// titleHeight is the space reserved above the plot for captions.
const titleHeight = 40

// maxPixel limits coordinates handed to the rasterizer.
const maxPixel = 1 << 20

// renderBackground fills the complete destination image with the background color.
func renderBackground(dst draw.Image, c color.Color) {
	bg := image.NewUniform(c)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}

// renderAxes draws the x- and y-axis through the data origin,
// if the origin is inside the visible range.
func renderAxes(dst *image.RGBA, vp imaging.Viewport, c color.Color) {
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1)

	b := vp.Bounds()
	ox, oy := vp.Origin()

	if oy >= float64(b.Min.Y) && oy <= float64(b.Max.Y) {
		gc.BeginPath()
		gc.MoveTo(float64(b.Min.X), oy)
		gc.LineTo(float64(b.Max.X), oy)
		gc.Stroke()
	}
	if ox >= float64(b.Min.X) && ox <= float64(b.Max.X) {
		gc.BeginPath()
		gc.MoveTo(ox, float64(b.Min.Y))
		gc.LineTo(ox, float64(b.Max.Y))
		gc.Stroke()
	}
}

// renderPoints paints one dot per point.
// Points with non-finite coordinates or far outside the image are skipped.
func renderPoints(dst *image.RGBA, vp imaging.Viewport, m affine.Matrix, c color.Color, radius float64) {
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetFillColor(c)

	for _, p := range m.Points() {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		x, y := vp.ToPixel(p.X, p.Y)
		if math.Abs(x) > maxPixel || math.Abs(y) > maxPixel {
			continue
		}
		gc.BeginPath()
		draw2dkit.Circle(gc, x, y, radius)
		gc.Fill()
	}
}

// renderText writes a line of text, horizontally centered in r,
// with its baseline at y.
func renderText(dst draw.Image, r image.Rectangle, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s).Round()
	x := r.Min.X + (r.Dx()-w)/2
	if x < r.Min.X {
		x = r.Min.X
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// plotArea is the part of r below the title.
func plotArea(r image.Rectangle, withTitle bool) image.Rectangle {
	if !withTitle || r.Dy() <= 2*titleHeight {
		return r
	}
	return image.Rect(r.Min.X, r.Min.Y+titleHeight, r.Max.X, r.Max.Y)
}

// viewport fits the data range plus margin into r.
func viewport(bounds affine.Rect, margin float64, equal bool, r image.Rectangle) imaging.Viewport {
	bounds = bounds.Inset(margin)
	x0, y0, x1, y1 := bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y
	if equal {
		x0, y0, x1, y1 = imaging.Square(x0, y0, x1, y1)
		// match the aspect ratio of the target area
		aspect := float64(r.Dx()) / float64(r.Dy())
		if aspect > 1 {
			d := (x1 - x0) * (aspect - 1) / 2
			x0, x1 = x0-d, x1+d
		} else if aspect < 1 {
			d := (y1 - y0) * (1/aspect - 1) / 2
			y0, y1 = y0-d, y1+d
		}
	}
	return imaging.NewViewport(x0, y0, x1, y1, r)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
