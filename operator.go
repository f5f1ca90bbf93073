package affine

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator identifies one of the transformations in the catalog.
// The numeric values are stable and used in textual specs.
type Operator int

const (
	Identity Operator = iota
	Translate
	Scale
	Rotate
	ShearX
	ShearY
	ReflectOrigin
	ReflectX
	ReflectY
)

// NumOperators is the number of operators in the catalog.
const NumOperators = 9

// ParamKind describes which parameter an operator expects.
type ParamKind int

const (
	// NoParam is used by operators without a parameter.
	NoParam ParamKind = iota
	// VectorParam is a 2-vector, e.g. a translation offset.
	VectorParam
	// AngleParam is a scalar angle in radians.
	AngleParam
)

func (k ParamKind) String() string {
	switch k {
	case NoParam:
		return "none"
	case VectorParam:
		return "vector"
	case AngleParam:
		return "angle"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

var operatorNames = [NumOperators]string{
	Identity:      "identity",
	Translate:     "translate",
	Scale:         "scale",
	Rotate:        "rotate",
	ShearX:        "shear-x",
	ShearY:        "shear-y",
	ReflectOrigin: "reflect-origin",
	ReflectX:      "reflect-x",
	ReflectY:      "reflect-y",
}

var operatorTitles = [NumOperators]string{
	Identity:      "Identity",
	Translate:     "Translation",
	Scale:         "Scaling",
	Rotate:        "Rotation around origin",
	ShearX:        "Shearing in x direction",
	ShearY:        "Shearing in y direction",
	ReflectOrigin: "Reflection through origin",
	ReflectX:      "Reflection through x-axis",
	ReflectY:      "Reflection through y-axis",
}

var operatorKinds = [NumOperators]ParamKind{
	Identity:      NoParam,
	Translate:     VectorParam,
	Scale:         VectorParam,
	Rotate:        AngleParam,
	ShearX:        AngleParam,
	ShearY:        AngleParam,
	ReflectOrigin: NoParam,
	ReflectX:      NoParam,
	ReflectY:      NoParam,
}

// Operators lists all operators in index order.
func Operators() []Operator {
	ops := make([]Operator, NumOperators)
	for i := range ops {
		ops[i] = Operator(i)
	}
	return ops
}

// Valid reports whether op is part of the catalog.
func (op Operator) Valid() bool {
	return op >= 0 && op < NumOperators
}

// Kind returns the parameter kind the operator expects.
func (op Operator) Kind() ParamKind {
	if !op.Valid() {
		return NoParam
	}
	return operatorKinds[op]
}

// Title is a human readable description, e.g. for plot titles.
func (op Operator) Title() string {
	if !op.Valid() {
		return op.String()
	}
	return operatorTitles[op]
}

func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operatorNames[op]
}

// ParseOperator looks up an operator by index ("3") or name ("rotate").
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range operatorNames {
		if s == name {
			return Operator(i), nil
		}
	}

	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewInvalidSpecError("unknown operator %q", s)
	}

	op := Operator(idx)
	if !op.Valid() {
		return 0, NewInvalidSpecError("operator index %d out of range 0..%d", idx, NumOperators-1)
	}
	return op, nil
}
