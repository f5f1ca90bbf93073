package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Options control size, timing and colors of rendered output.
type Options struct {
	// Width and Height of the output image in pixels.
	Width  int
	Height int
	// FPS is the frame rate for animations.
	FPS int
	// Duration of an animation in seconds.
	Duration float64
	// Margin is added around the data range, in data units.
	Margin float64
	// Radius of a plotted point in pixels.
	Radius float64
	// Equal keeps the same scale on both axes.
	Equal bool
	// Dither enables Floyd-Steinberg dithering for GIF frames.
	Dither bool
	// Title is shown above series animations.
	Title string

	Background color.Color
	Points     color.Color
	Axes       color.Color
	Text       color.Color
}

// DefaultOptions returns settings that resemble a small scatter plot:
// semi transparent red points on white, gray axes.
func DefaultOptions() Options {
	return Options{
		Width:      480,
		Height:     480,
		FPS:        30,
		Duration:   3,
		Margin:     0.25,
		Radius:     4,
		Equal:      true,
		Dither:     false,
		Title:      "Affine Transformation Series",
		Background: color.White,
		Points:     color.NRGBA{255, 0, 0, 128},
		Axes:       color.NRGBA{128, 128, 128, 255},
		Text:       color.Black,
	}
}

// Validate checks the options for values that cannot be rendered.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", o.Width, o.Height)
	}
	if o.FPS <= 0 || o.FPS > 100 {
		return fmt.Errorf("frame rate must be within 1..100, got %d", o.FPS)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("invalid duration %v", o.Duration)
	}
	if o.Margin < 0 || o.Radius < 0 {
		return fmt.Errorf("margin and radius must not be negative")
	}
	if o.Background == nil || o.Points == nil || o.Axes == nil || o.Text == nil {
		return fmt.Errorf("missing color")
	}
	return nil
}

// NumFrames is the number of frames for an animation.
func (o Options) NumFrames() int {
	n := int(float64(o.FPS)*o.Duration + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

// delay is the GIF frame delay in 100ths of a second.
func (o Options) delay() int {
	d := (100 + o.FPS/2) / o.FPS
	if d < 1 {
		return 1
	}
	return d
}

// ParseColor reads a color in hex notation: "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
