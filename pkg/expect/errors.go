package expect

import (
	"errors"
	"fmt"
)

var (
	// ErrBadAccess is matched by every error returned when a value is read
	// from an Expected or Void that holds an error.
	ErrBadAccess = errors.New("found an error instead of the expected value")

	// ErrNotCopyable is the panic value used when a move-only payload is copied.
	ErrNotCopyable = errors.New("payload implements Destroyer without Cloner and cannot be copied")

	// ErrNestedExpected is the panic value used when an Unexpected is built
	// around another Expected, Void or Unexpected.
	ErrNestedExpected = errors.New("error payload must not be an Expected, Void or Unexpected")
)

// BadAccessError reports a checked value access on an error-holding
// container. It carries a copy of the held error.
type BadAccessError[E any] struct {
	Err E
}

var _ error = (*BadAccessError[int])(nil)

func (e *BadAccessError[E]) Error() string {
	return fmt.Sprintf("%s: %v", ErrBadAccess, e.Err)
}

func (e *BadAccessError[E]) Is(target error) bool {
	return target == ErrBadAccess
}

// Unwrap exposes the held error when E is itself an error.
func (e *BadAccessError[E]) Unwrap() error {
	if err, ok := any(e.Err).(error); ok {
		return err
	}
	return nil
}

func badAccess[E any](err E) *BadAccessError[E] {
	return &BadAccessError[E]{Err: err}
}
