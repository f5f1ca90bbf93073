package affine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Param is the parameter passed to an operator.
// It is either empty, a 2-vector or a scalar angle (radians).
// The zero value is the empty parameter.
type Param struct {
	kind  ParamKind
	x, y  float64
	angle float64
}

// None returns the empty parameter.
func None() Param {
	return Param{kind: NoParam}
}

// Vec returns a 2-vector parameter.
func Vec(x, y float64) Param {
	return Param{kind: VectorParam, x: x, y: y}
}

// Angle returns a scalar angle parameter, theta in radians.
func Angle(theta float64) Param {
	return Param{kind: AngleParam, angle: theta}
}

// Kind returns the kind of parameter.
func (p Param) Kind() ParamKind {
	return p.kind
}

// Vector returns the components of a vector parameter.
// Returns zeros for other kinds.
func (p Param) Vector() (float64, float64) {
	return p.x, p.y
}

// Radians returns the value of an angle parameter.
// Returns zero for other kinds.
func (p Param) Radians() float64 {
	return p.angle
}

func (p Param) String() string {
	switch p.kind {
	case VectorParam:
		return formatFloat(p.x) + "," + formatFloat(p.y)
	case AngleParam:
		return formatFloat(p.angle)
	default:
		return ""
	}
}

// DefaultParam is the neutral parameter for an operator,
// i.e. applying the operator with it leaves points unchanged
// (reflections aside, which have no parameter).
func DefaultParam(op Operator) Param {
	switch op {
	case Translate:
		return Vec(0, 0)
	case Scale:
		return Vec(1, 1)
	case Rotate, ShearX, ShearY:
		return Angle(0)
	default:
		return None()
	}
}

// ParseParam reads a parameter of the given kind.
//
// Vectors are written as "x,y". Angles are plain radians ("1.5708")
// or multiples of pi ("pi", "pi/2", "-0.25pi", "2pi/3").
func ParseParam(kind ParamKind, s string) (Param, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case NoParam:
		if s != "" {
			return Param{}, NewInvalidSpecError("unexpected parameter %q", s)
		}
		return None(), nil
	case VectorParam:
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return Param{}, NewInvalidSpecError("expected 2-vector, got %q", s)
		}
		x, err := parseNumber(parts[0])
		if err != nil {
			return Param{}, err
		}
		y, err := parseNumber(parts[1])
		if err != nil {
			return Param{}, err
		}
		return Vec(x, y), nil
	case AngleParam:
		if strings.Contains(s, ",") {
			return Param{}, NewInvalidSpecError("expected scalar angle, got %q", s)
		}
		a, err := parseNumber(s)
		if err != nil {
			return Param{}, err
		}
		return Angle(a), nil
	default:
		return Param{}, NewInvalidSpecError("unknown parameter kind %v", kind)
	}
}

// parseNumber parses a float that may be expressed as a fraction of pi.
func parseNumber(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.Contains(s, "pi") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, NewInvalidSpecError("invalid number %q", s)
		}
		return f, nil
	}

	num, den := s, ""
	if i := strings.Index(s, "/"); i >= 0 {
		num, den = s[:i], s[i+1:]
	}

	factor := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(num), "pi"), "*")
	var f float64
	switch factor {
	case "", "+":
		f = 1
	case "-":
		f = -1
	default:
		var err error
		f, err = strconv.ParseFloat(factor, 64)
		if err != nil {
			return 0, NewInvalidSpecError("invalid angle %q", s)
		}
	}
	f *= math.Pi

	if den != "" {
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, NewInvalidSpecError("invalid angle %q", s)
		}
		f /= d
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (p Param) check(op Operator) error {
	want := op.Kind()
	if p.kind != want {
		return NewInvalidSpecError("%v expects %v parameter, got %v", op, want, p.kind)
	}
	if p.kind == VectorParam && (!finite(p.x) || !finite(p.y)) {
		return NewInvalidSpecError("%v parameter %v is not finite", op, p)
	}
	if p.kind == AngleParam && !finite(p.angle) {
		return NewInvalidSpecError("%v parameter %v is not finite", op, p)
	}
	return nil
}

// describe is the human readable form used by Spec.Describe.
func describe(op Operator, p Param) string {
	if p.kind == NoParam {
		return fmt.Sprint(op)
	}
	return fmt.Sprintf("%v(%v)", op, p)
}
