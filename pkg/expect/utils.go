package expect

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// CollectErrors returns the errors held by the failed outcomes, in order.
func CollectErrors[E any](outcomes ...ErrorProvider[E]) []E {
	errs := make([]E, 0, len(outcomes))
	for _, o := range outcomes {
		if o.HasError() {
			errs = append(errs, o.Err())
		}
	}
	return errs
}

// Partition counts the outcomes that hold a value and those that hold an error.
func Partition(outcomes ...Outcome) (values, failures int) {
	for _, o := range outcomes {
		if o.HasValue() {
			values++
		} else {
			failures++
		}
	}
	return values, failures
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
