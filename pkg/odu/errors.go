package odu

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// CollectErrors unwraps a joined error into its members; a plain error yields
// a single-element slice.
func CollectErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err originates from context cancellation or
// deadline expiry. Cancellation surfaces as an ordinary failure; this helper
// classifies it.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
