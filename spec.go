package affine

import (
	"fmt"
	"strings"
)

// Spec refers to an operator and, optionally, its parameter.
//
// A Spec is either bare (created with Bare, the operator's default parameter
// is implied) or parameterized (created with With).
type Spec struct {
	op    Operator
	param Param
	bare  bool
}

// Bare creates a spec for op without a parameter.
func Bare(op Operator) Spec {
	return Spec{op: op, bare: true}
}

// With creates a spec for op with an explicit parameter.
func With(op Operator, p Param) Spec {
	return Spec{op: op, param: p}
}

// Op returns the operator.
func (s Spec) Op() Operator {
	return s.op
}

// Param returns the parameter. For a bare spec, this is the operator's
// default parameter.
func (s Spec) Param() Param {
	if s.bare {
		return DefaultParam(s.op)
	}
	return s.param
}

// IsBare reports whether the spec was created without a parameter.
func (s Spec) IsBare() bool {
	return s.bare
}

// Validate checks the operator index and the parameter kind.
func (s Spec) Validate() error {
	if !s.op.Valid() {
		return NewInvalidSpecError("operator index %d out of range 0..%d", int(s.op), NumOperators-1)
	}
	if s.bare {
		return nil
	}
	return s.param.check(s.op)
}

// Normalized returns the parameterized form of this spec.
func (s Spec) Normalized() (Spec, error) {
	err := s.Validate()
	if err != nil {
		return Spec{}, err
	}
	return With(s.op, s.Param()), nil
}

// String returns the textual form accepted by ParseSpec, e.g. "3:0.5".
func (s Spec) String() string {
	if s.bare {
		return fmt.Sprint(int(s.op))
	}
	return fmt.Sprintf("%d:%v", int(s.op), s.param)
}

// Describe returns a human readable form, e.g. "rotate(0.5)".
func (s Spec) Describe() string {
	return describe(s.op, s.Param())
}

// Normalize replaces every bare spec with the parameterized form.
//
// The result is a new slice of the same length and order; specs is not
// modified. Normalizing an already normalized list returns an equal list.
//
// Returns an InvalidSpecError for the first spec with an operator outside
// the catalog or a parameter of the wrong kind.
func Normalize(specs []Spec) ([]Spec, error) {
	norm := make([]Spec, len(specs))
	for i, s := range specs {
		n, err := s.Normalized()
		if err != nil {
			return nil, atIndex(err, i)
		}
		norm[i] = n
	}
	return norm, nil
}

// ParseSpec reads the textual form of a spec.
//
// The operator is given by index or name, optionally followed by a colon
// and the parameter:
//
//  "6"              reflect through origin
//  "reflect-x"      reflect through x-axis
//  "1:2,3"          translate by (2, 3)
//  "rotate:pi/2"    rotate by pi/2
//
// Without a parameter, the result is a bare spec.
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	name, arg := s, ""
	hasArg := false
	if i := strings.Index(s, ":"); i >= 0 {
		name, arg = s[:i], s[i+1:]
		hasArg = true
	}

	op, err := ParseOperator(name)
	if err != nil {
		return Spec{}, err
	}
	if !hasArg {
		return Bare(op), nil
	}

	p, err := ParseParam(op.Kind(), arg)
	if err != nil {
		return Spec{}, Wrap(err, "operator %v", op)
	}
	return With(op, p), nil
}

// ParseSpecs reads a list of specs separated by semicolons or whitespace,
// e.g. "3:pi/2; 1:1,0".
func ParseSpecs(s string) ([]Spec, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	specs := make([]Spec, 0, len(fields))
	for i, f := range fields {
		spec, err := ParseSpec(f)
		if err != nil {
			return nil, atIndex(err, i)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
