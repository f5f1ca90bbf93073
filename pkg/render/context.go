package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/imaging"
	"github.com/akeil/affine/internal/logging"
)

// Context holds parameters and cached data for rendering operations.
//
// A Context can be shared; all methods are safe for concurrent use.
type Context struct {
	opts      Options
	palette   color.Palette
	paletteMx sync.Mutex
}

// NewContext sets up a new rendering context.
func NewContext(opts Options) (*Context, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return &Context{opts: opts}, nil
}

// DefaultContext creates a Context with DefaultOptions.
func DefaultContext() *Context {
	return &Context{opts: DefaultOptions()}
}

// Options returns the options of this context.
func (c *Context) Options() Options {
	return c.opts
}

// State draws a single point matrix.
//
// bounds is the data range to show (before margins); pass the bounds of a
// whole series to keep the axes fixed across states.
func (c *Context) State(m affine.Matrix, bounds affine.Rect, title string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, c.opts.Width, c.opts.Height))
	c.drawState(dst, m, bounds, title)
	return dst
}

// drawState paints onto the complete destination image.
// dst must have its origin at (0, 0).
func (c *Context) drawState(dst *image.RGBA, m affine.Matrix, bounds affine.Rect, title string) {
	o := c.opts
	r := dst.Bounds()
	renderBackground(dst, o.Background)

	area := plotArea(r, title != "")
	vp := viewport(bounds, o.Margin, o.Equal, area)
	renderAxes(dst, vp, o.Axes)
	renderPoints(dst, vp, m, o.Points, o.Radius)

	if title != "" && area != r {
		renderText(dst, r, r.Min.Y+titleHeight-8, title, o.Text)
	}
}

// SeriesPNG draws state i of the series and writes it as PNG.
func (c *Context) SeriesPNG(states affine.Series, i int, w io.Writer) error {
	if i < 0 || i >= states.Len() {
		return fmt.Errorf("state %d out of range 0..%d", i, states.Len()-1)
	}

	title := fmt.Sprintf("State %d", i)
	img := c.State(states[i], states.Bounds(), title)
	return png.Encode(w, img)
}

// SeriesGIF animates the transition through all states of a series and
// writes the result as an animated GIF.
//
// specs must be the list that produced states.
func (c *Context) SeriesGIF(ctx context.Context, states affine.Series, specs []affine.Spec, w io.Writer) error {
	tl, err := NewTimeline(states, specs, c.opts.NumFrames())
	if err != nil {
		return err
	}
	bounds := tl.Bounds()
	logging.Debug("Render %d frames for %d steps", tl.Len(), len(specs))

	frames, err := c.renderFrames(ctx, tl.Len(), func(i int) (*image.RGBA, error) {
		f, err := tl.Frame(i)
		if err != nil {
			return nil, err
		}

		dst := image.NewRGBA(image.Rect(0, 0, c.opts.Width, c.opts.Height))
		c.drawState(dst, f.Points, bounds, f.Title())
		if c.opts.Title != "" {
			renderText(dst, dst.Bounds(), 14, c.opts.Title, c.opts.Text)
		}
		return dst, nil
	})
	if err != nil {
		return err
	}

	return c.encodeGIF(frames, w)
}

// renderFrames calls draw for frames 0..n-1 concurrently and converts the
// results to paletted images.
func (c *Context) renderFrames(ctx context.Context, n int, draw func(i int) (*image.RGBA, error)) ([]*image.Paletted, error) {
	frames := make([]*image.Paletted, n)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := draw(i)
			if err != nil {
				return err
			}
			frames[i] = imaging.Paletted(img, c.gifPalette(), c.opts.Dither)
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return frames, nil
}

func (c *Context) encodeGIF(frames []*image.Paletted, w io.Writer) error {
	delays := make([]int, len(frames))
	for i := range delays {
		delays[i] = c.opts.delay()
	}

	return gif.EncodeAll(w, &gif.GIF{
		Image:     frames,
		Delay:     delays,
		LoopCount: 0,
	})
}

// gifPalette returns the palette used for GIF frames.
// It is built on first use and contains the configured colors.
func (c *Context) gifPalette() color.Palette {
	c.paletteMx.Lock()
	defer c.paletteMx.Unlock()
	if c.palette == nil {
		o := c.opts
		c.palette = imaging.Palette(o.Background, flatten(o.Points, o.Background), o.Points, o.Axes, o.Text)
	}
	return c.palette
}

// flatten composes a (translucent) color over an opaque background.
func flatten(fg, bg color.Color) color.Color {
	fr, fgG, fb, fa := fg.RGBA()
	br, bgG, bb, _ := bg.RGBA()
	mix := func(f, b uint32) uint8 {
		return uint8((f + b*(0xffff-fa)/0xffff) >> 8)
	}
	return color.RGBA{mix(fr, br), mix(fgG, bgG), mix(fb, bb), 255}
}
