package render

import (
	"fmt"
	"math"

	"github.com/akeil/affine"
)

// Interpolate returns the spec that covers the fraction t (0..1) of the
// given spec's effect:
//
//  translate   t * v
//  scale       1 + t * (s - 1)
//  rotate      t * angle
//  shear       t * angle
//  reflect     none before t = 0.5, the full reflection after
//
// At t = 1, the result is the normalized spec itself.
func Interpolate(s affine.Spec, t float64) (affine.Spec, error) {
	n, err := s.Normalized()
	if err != nil {
		return affine.Spec{}, err
	}
	t = math.Max(0, math.Min(1, t))

	p := n.Param()
	switch n.Op() {
	case affine.Translate:
		x, y := p.Vector()
		return affine.With(n.Op(), affine.Vec(t*x, t*y)), nil
	case affine.Scale:
		x, y := p.Vector()
		return affine.With(n.Op(), affine.Vec(1+t*(x-1), 1+t*(y-1))), nil
	case affine.Rotate, affine.ShearX, affine.ShearY:
		return affine.With(n.Op(), affine.Angle(t*p.Radians())), nil
	case affine.ReflectOrigin, affine.ReflectX, affine.ReflectY:
		if t < 0.5 {
			return affine.With(affine.Identity, affine.None()), nil
		}
		return n, nil
	default:
		return n, nil
	}
}

// Frame is a single picture in an animation.
type Frame struct {
	// Index of the frame in the animation.
	Index int
	// Step is the index of the spec being animated; -1 while the
	// original points are shown.
	Step int
	// Progress within the current step, 0..1.
	Progress float64
	// Spec is the (full) spec of the current step.
	Spec affine.Spec
	// Points to draw.
	Points affine.Matrix
}

// Title is a caption for the frame, e.g. "Step 2: rotate(1.5708)".
func (f Frame) Title() string {
	if f.Step < 0 {
		return "Step 0: original"
	}
	return fmt.Sprintf("Step %d: %v", f.Step+1, f.Spec.Describe())
}

// Timeline divides an animation of a series into frames.
//
// Like a slide show, the original points are shown first, then each step
// transitions from its starting state to the next one. All steps get the
// same number of frames.
type Timeline struct {
	catalog *affine.Catalog
	states  affine.Series
	specs   []affine.Spec
	frames  int
}

// NewTimeline prepares the animation of states with the given number
// of frames. specs must be the list that produced states.
func NewTimeline(states affine.Series, specs []affine.Spec, frames int) (*Timeline, error) {
	if states.Len() == 0 {
		return nil, affine.NewShapeError("no states")
	}
	if states.Len() != len(specs)+1 {
		return nil, fmt.Errorf("got %d states for %d specs", states.Len(), len(specs))
	}
	norm, err := affine.Normalize(specs)
	if err != nil {
		return nil, err
	}
	if frames < 1 {
		frames = 1
	}

	return &Timeline{
		catalog: affine.DefaultCatalog,
		states:  states,
		specs:   norm,
		frames:  frames,
	}, nil
}

// Len returns the number of frames.
func (t *Timeline) Len() int {
	return t.frames
}

// Frame computes frame i.
func (t *Timeline) Frame(i int) (Frame, error) {
	if i < 0 || i >= t.frames {
		return Frame{}, fmt.Errorf("frame %d out of range 0..%d", i, t.frames-1)
	}

	// the leading segment shows the original points
	segments := len(t.specs) + 1
	pos := float64(i+1) * float64(segments) / float64(t.frames)
	seg := int(math.Ceil(pos)) - 1
	if seg < 0 {
		seg = 0
	}
	if seg >= segments {
		seg = segments - 1
	}
	progress := pos - float64(seg)

	if seg == 0 {
		return Frame{
			Index:    i,
			Step:     -1,
			Progress: progress,
			Spec:     affine.With(affine.Identity, affine.None()),
			Points:   t.states.Initial(),
		}, nil
	}

	step := seg - 1
	spec := t.specs[step]
	partial, err := Interpolate(spec, progress)
	if err != nil {
		return Frame{}, err
	}
	points, err := t.catalog.Apply(partial.Op(), t.states[step], partial.Param())
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		Index:    i,
		Step:     step,
		Progress: progress,
		Spec:     spec,
		Points:   points,
	}, nil
}

// Bounds is the data range shared by all frames: the range of the recorded
// states. In-between frames may leave it, e.g. a shear passing through
// pi/2, and are clipped.
func (t *Timeline) Bounds() affine.Rect {
	return t.states.Bounds()
}
