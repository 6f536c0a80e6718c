package chain

import (
	"context"

	"github.com/pretodev/odu-core/pkg/odu"
	"github.com/pretodev/odu-core/pkg/odu/solo"
)

// Chain wraps an odu.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx     context.Context
	outcome odu.Outcome[T]
}

// Start creates a new chain from an odu.Outcome
func Start[T any](ctx context.Context, outcome odu.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: odu.Success(value),
	}
}

// Outcome returns the underlying odu.Outcome
func (c *Chain[T]) Outcome() odu.Outcome[T] {
	return c.outcome
}

// Then chains a function that returns odu.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) odu.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Switch(c.ctx, c.outcome, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Try(c.ctx, c.outcome, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Map(c.ctx, c.outcome, onSuccess),
	}
}

// Ensure performs a side effect without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		outcome: solo.Tee(c.ctx, c.outcome,
			func(ctx context.Context, outcome odu.Outcome[T]) {
				onSuccess(ctx, outcome.Result())
			}),
	}
}

// Recover brings a failed chain back to the success track
func (c *Chain[T]) Recover(onFailure func(context.Context, error) T) *Chain[T] {
	return &Chain[T]{
		ctx:     c.ctx,
		outcome: solo.Recover(c.ctx, c.outcome, onFailure),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.outcome, onSuccess, onFailure)
}
