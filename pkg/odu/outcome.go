package odu

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Outcome is a two-variant success/failure container. Exactly one variant is
// active, the value is immutable once constructed, and the error is carried
// by reference through transforms.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	trace     []byte
	success   bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		success:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailTrace is Fail with a stack snapshot of the construction site attached.
func FailTrace[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		trace:     debug.Stack(),
		success:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom rewraps a failed Outcome under a different value type, keeping the
// identity, creation time, error and trace of the original.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		trace:     from.trace,
		success:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailWith replaces the error of a failed Outcome, keeping identity, creation
// time and trace.
func FailWith[T any](from Outcome[T], err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		trace:     from.trace,
		success:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value, or the zero value on failure.
func (o Outcome[T]) Result() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.success
}

func (o Outcome[T]) IsFailure() bool {
	return !o.success
}

// Unwrap returns the success value and panics on failure. Calling Unwrap on a
// failure is a programmer error, not a recoverable condition; use UnwrapOr or
// UnwrapOrElse for total extraction.
func (o Outcome[T]) Unwrap() T {
	if !o.success {
		panic(fmt.Sprintf("odu: Unwrap on failure: %v", o.err))
	}
	return o.value
}

func (o Outcome[T]) UnwrapOr(def T) T {
	if o.success {
		return o.value
	}
	return def
}

func (o Outcome[T]) UnwrapOrElse(f func(err error) T) T {
	if o.success {
		return o.value
	}
	return f(o.err)
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// Trace returns the stack snapshot captured at construction, if any.
func (o Outcome[T]) Trace() []byte {
	return o.trace
}

func (o Outcome[T]) HasTrace() bool {
	return len(o.trace) > 0
}
