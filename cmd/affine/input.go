package main

import (
	"github.com/akeil/affine"
	"github.com/akeil/affine/internal/config"
)

// input is the initial point set and the steps to apply.
type input struct {
	matrix affine.Matrix
	specs  []affine.Spec
}

// newInput combines the config file with command line values.
// Points and steps given on the command line replace those from the config.
func newInput(s config.Settings, points, steps []string) (input, error) {
	var in input

	var pts []affine.Point
	var err error
	if len(points) > 0 {
		pts, err = config.ParsePoints(points)
	} else {
		pts, err = s.InitialPoints()
	}
	if err != nil {
		return in, err
	}
	in.matrix, err = affine.Augment(pts)
	if err != nil {
		return in, err
	}

	if len(steps) > 0 {
		s.Series.Steps = steps
	}
	in.specs, err = s.Steps()
	if err != nil {
		return in, err
	}
	return in, nil
}

// compose runs the series for this input.
func (in input) compose() (affine.Series, error) {
	return affine.Compose(in.matrix, in.specs)
}
