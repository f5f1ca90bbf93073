package affine

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

// ShapeError is returned when point input is empty or cannot be arranged
// into a 2xN coordinate matrix.
type ShapeError struct {
	message string
}

// NewShapeError creates a ShapeError from the given format string.
func NewShapeError(msg string, v ...interface{}) error {
	return &ShapeError{fmt.Sprintf(msg, v...)}
}

func (s *ShapeError) Error() string {
	return "shape error: " + s.message
}

// IsShapeError checks if the given error is (or wraps) a ShapeError.
func IsShapeError(err error) bool {
	var s *ShapeError
	return errors.As(err, &s)
}

// InvalidSpecError is returned for an operator index outside the catalog
// or a parameter that does not fit its operator.
type InvalidSpecError struct {
	// Index is the position of the offending spec in its list,
	// -1 if the spec was not part of a list.
	Index   int
	message string
}

// NewInvalidSpecError creates an InvalidSpecError from the given format string.
func NewInvalidSpecError(msg string, v ...interface{}) error {
	return &InvalidSpecError{Index: -1, message: fmt.Sprintf(msg, v...)}
}

func (i *InvalidSpecError) Error() string {
	if i.Index < 0 {
		return "invalid spec: " + i.message
	}
	return fmt.Sprintf("invalid spec #%d: %v", i.Index, i.message)
}

// IsInvalidSpec checks if the given error is (or wraps) an InvalidSpecError.
func IsInvalidSpec(err error) bool {
	var i *InvalidSpecError
	return errors.As(err, &i)
}

// atIndex records the list position on an InvalidSpecError.
// Context added by wrapping is kept in the message.
func atIndex(err error, idx int) error {
	var i *InvalidSpecError
	if !errors.As(err, &i) {
		return err
	}
	msg := i.message
	if err != error(i) {
		msg = strings.TrimSuffix(err.Error(), i.Error()) + msg
	}
	return &InvalidSpecError{Index: idx, message: msg}
}
