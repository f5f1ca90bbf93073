package affine

import (
	"github.com/akeil/affine/internal/logging"
)

// Series is the ordered list of states visited by a composition.
//
// State 0 is the original input; state k is the result of applying the
// k-th spec to state k-1.
type Series []Matrix

// Compose applies specs to m in order using the DefaultCatalog.
// See Catalog.Compose.
func Compose(m Matrix, specs []Spec) (Series, error) {
	return DefaultCatalog.Compose(m, specs)
}

// Compose applies specs to m in order and records every intermediate state.
//
// Each step transforms the previous state, not the original, so the order of
// specs matters. The returned Series has len(specs)+1 states; m itself is
// state 0 and is not modified.
//
// specs are normalized first; bare specs get their operator's default
// parameter. If any spec is invalid, no states are returned.
func (c *Catalog) Compose(m Matrix, specs []Spec) (Series, error) {
	if m.Len() == 0 {
		return nil, NewShapeError("no points")
	}

	norm, err := Normalize(specs)
	if err != nil {
		return nil, err
	}

	states := make(Series, 1, len(norm)+1)
	states[0] = m
	for i, s := range norm {
		f, err := c.Operator(s.Op())
		if err != nil {
			return nil, atIndex(err, i)
		}
		latest := states[len(states)-1]
		logging.Debug("step %d: %v", i+1, s.Describe())
		states = append(states, f(latest, s.Param()))
	}

	return states, nil
}

// Len returns the number of states.
func (s Series) Len() int {
	return len(s)
}

// Initial returns the untransformed state.
func (s Series) Initial() Matrix {
	return s[0]
}

// Final returns the last state.
func (s Series) Final() Matrix {
	return s[len(s)-1]
}

// Bounds returns the rectangle containing the points of all states.
// States without a single finite point are skipped.
func (s Series) Bounds() Rect {
	var r Rect
	found := false
	for _, m := range s {
		b, ok := m.bounds()
		if !ok {
			continue
		}
		if !found {
			r, found = b, true
			continue
		}
		r = r.Union(b)
	}
	return r
}
