// Package affine applies 2-D affine transformations to point sets.
//
// Points are lifted into homogeneous coordinates (Augment) so that every
// transformation, translation included, is a 3x3 matrix multiplication.
// The Catalog holds the nine available operators; a list of Specs names the
// operators to apply and Compose records every state along the way:
//
//	m, _ := affine.Augment([]affine.Point{{1, 0}, {0, 1}})
//	specs := []affine.Spec{
//		affine.With(affine.Rotate, affine.Angle(math.Pi/2)),
//		affine.With(affine.Translate, affine.Vec(1, 0)),
//		affine.Bare(affine.ReflectX),
//	}
//	states, err := affine.Compose(m, specs)
//
package affine

import (
	"strings"

	"github.com/akeil/affine/internal/logging"
)

// SetLogLevel sets the log level for this package and its renderers.
// Accepts "debug", "info", "warning", "error"; anything else disables
// logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning", "warn":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
