package core

import (
	"context"

	"github.com/pretodev/odu-core/pkg/odu"
)

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// ToChanOutcomes emits every value wrapped as a success.
func ToChanOutcomes[T any](ctx context.Context, values []T) <-chan odu.Outcome[T] {
	in := make(chan odu.Outcome[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- odu.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out into a slice, stopping when the channel closes or
// ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
