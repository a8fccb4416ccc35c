package blake2simd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a parameter block is built with an
	// out-of-range digest length, key, salt, personalization, or tree field.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidState is returned when a hash state or job is used out of
	// order: updating or finalizing a finalized state, or reading a job's
	// digest before it has been hashed.
	ErrInvalidState = errors.New("invalid state")
)

// ErrParameterRange indicates a parameter outside its allowed bounds.
//
// It matches ErrInvalidParameter via errors.Is. The original conversion
// error (if any) can be accessed via errors.Unwrap on the returned cause chain.
type ErrParameterRange struct {
	Name  string
	Value int64
	Min   int64
	Max   int64
	cause error
}

// NewParameterRangeError builds an ErrParameterRange wrapping cause.
func NewParameterRangeError(name string, value, minVal, maxVal int64, cause error) *ErrParameterRange {
	return &ErrParameterRange{Name: name, Value: value, Min: minVal, Max: maxVal, cause: cause}
}

func (e *ErrParameterRange) Error() string {
	return fmt.Sprintf("invalid parameter: %s = %d, want %d..%d", e.Name, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ErrParameterRange) Is(target error) bool {
	return target == ErrInvalidParameter
}

func (e *ErrParameterRange) Unwrap() error { return e.cause }

// StateError wraps ErrInvalidState with the operation that was rejected.
func StateError(op string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, op)
}
