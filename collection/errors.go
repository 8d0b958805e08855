package collection

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/denismitr/collections/kind"
)

var (
	ErrInvalidElementType = errors.New("invalid element type")
)

// InvalidElementTypeError is returned by every insertion that is rejected.
// It matches ErrInvalidElementType with errors.Is.
type InvalidElementTypeError struct {
	Expected kind.Kind
	Actual   kind.Kind
	// Reason is set when a validator rejected a value of the expected kind.
	Reason string
}

func newInvalidElementTypeError(expected kind.Kind, item any) *InvalidElementTypeError {
	return &InvalidElementTypeError{
		Expected: expected,
		Actual:   kind.From(item),
	}
}

func (e *InvalidElementTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: expected %s, got %s: %s", ErrInvalidElementType, e.Expected, e.Actual, e.Reason)
	}
	return fmt.Sprintf("%s: expected %s, got %s", ErrInvalidElementType, e.Expected, e.Actual)
}

func (e *InvalidElementTypeError) Unwrap() error {
	return ErrInvalidElementType
}
