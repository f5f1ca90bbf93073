package imaging

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
)

// separate file because this needs image/draw for Floyd-Steinberg
// while imaging.go uses x/image/draw.

// Paletted converts an image for use as a GIF frame.
//
// If p is nil, the Plan9 palette is used. When dither is set, colors
// not in the palette are approximated with Floyd-Steinberg error diffusion.
func Paletted(i image.Image, p color.Palette, dither bool) *image.Paletted {
	if p == nil {
		p = palette.Plan9
	}

	b := i.Bounds()
	dst := image.NewPaletted(b, p)
	if dither {
		draw.FloydSteinberg.Draw(dst, b, i, b.Min)
	} else {
		draw.Draw(dst, b, i, b.Min, draw.Src)
	}
	return dst
}

// Palette builds a small palette that holds the given colors exactly,
// padded with the Plan9 palette for antialiased edges.
func Palette(colors ...color.Color) color.Palette {
	p := make(color.Palette, 0, 256)
	seen := make(map[color.RGBA]bool)
	add := func(c color.Color) {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		if seen[rgba] || len(p) == 256 {
			return
		}
		seen[rgba] = true
		p = append(p, rgba)
	}

	for _, c := range colors {
		add(c)
	}
	for _, c := range palette.Plan9 {
		add(c)
	}
	return p
}
