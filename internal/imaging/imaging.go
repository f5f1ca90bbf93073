package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Place draws src into the rectangle r of dst, scaling if necessary.
func Place(dst draw.Image, r image.Rectangle, src image.Image) {
	if src.Bounds().Size() == r.Size() {
		draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
		return
	}
	// bilinear keeps thin axis lines visible when shrinking
	draw.BiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
