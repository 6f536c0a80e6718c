package future

import (
	"context"

	"github.com/pretodev/odu-core/pkg/odu"
	"github.com/pretodev/odu-core/pkg/odu/solo"
)

// Go runs f in its own goroutine and returns a pending outcome: a channel
// that delivers exactly one Outcome and then closes. Context death resolves
// the pending with Fail(ctx.Err()); f still runs to completion on its own
// goroutine.
func Go[T any](ctx context.Context, f func(ctx context.Context) odu.Outcome[T]) <-chan odu.Outcome[T] {
	ch := make(chan odu.Outcome[T], 1)
	out := make(chan odu.Outcome[T], 1)

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			return
		}
		ch <- f(ctx)
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				out <- odu.Fail[T](ctx.Err())
			}
		case <-ctx.Done():
			out <- odu.Fail[T](ctx.Err())
		}
	}()

	return out
}

func Mapping[In, Out any](ctx context.Context, input odu.Outcome[In],
	mapOnSuccess func(ctx context.Context, r In) Out) <-chan odu.Outcome[Out] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

func MappingError[T any](ctx context.Context, input odu.Outcome[T],
	mapOnFailure func(ctx context.Context, err error) error) <-chan odu.Outcome[T] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[T] {
		return solo.MapError(ctx, input, mapOnFailure)
	})
}

func Switching[In, Out any](ctx context.Context, input odu.Outcome[In],
	switchOnSuccess func(ctx context.Context, r In) odu.Outcome[Out]) <-chan odu.Outcome[Out] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[Out] {
		return solo.Switch(ctx, input, switchOnSuccess)
	})
}

func Recovering[T any](ctx context.Context, input odu.Outcome[T],
	recoverOnFailure func(ctx context.Context, err error) T) <-chan odu.Outcome[T] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[T] {
		return solo.Recover(ctx, input, recoverOnFailure)
	})
}

func RecoveringWith[T any](ctx context.Context, input odu.Outcome[T],
	recoverOnFailure func(ctx context.Context, err error) odu.Outcome[T]) <-chan odu.Outcome[T] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[T] {
		return solo.RecoverWith(ctx, input, recoverOnFailure)
	})
}

func Trying[In, Out any](ctx context.Context, input odu.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan odu.Outcome[Out] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

func Teeing[T any](ctx context.Context, input odu.Outcome[T],
	onSuccess func(ctx context.Context, r odu.Outcome[T])) <-chan odu.Outcome[T] {

	return Go(ctx, func(ctx context.Context) odu.Outcome[T] {
		return solo.Tee(ctx, input, onSuccess)
	})
}
