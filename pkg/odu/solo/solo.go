package solo

import (
	"context"
	"errors"

	"github.com/pretodev/odu-core/pkg/odu"
)

func Succeed[T any](input T) odu.Outcome[T] {
	return odu.Success(input)
}

func Fail[T any](err error) odu.Outcome[T] {
	return odu.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) odu.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input odu.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) odu.Outcome[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Result()); valid {
			return input
		} else {
			return odu.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input odu.Outcome[In],
	onSuccess func(ctx context.Context, r In) odu.Outcome[Out]) odu.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return odu.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input odu.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) odu.Outcome[Out] {

	if input.IsSuccess() {
		return odu.Success(onSuccess(ctx, input.Result()))
	}
	return odu.FailFrom[In, Out](input)
}

// MapError transforms only the error of a failure; successes pass through
// untouched. Identity and trace are preserved.
func MapError[T any](ctx context.Context,
	input odu.Outcome[T],
	onFailure func(ctx context.Context, err error) error) odu.Outcome[T] {

	if input.IsFailure() {
		return odu.FailWith(input, onFailure(ctx, input.Err()))
	}
	return input
}

// Recover turns a failure into a success by computing a substitute value;
// successes pass through untouched.
func Recover[T any](ctx context.Context,
	input odu.Outcome[T],
	onFailure func(ctx context.Context, err error) T) odu.Outcome[T] {

	if input.IsFailure() {
		return odu.Success(onFailure(ctx, input.Err()))
	}
	return input
}

// RecoverWith is Recover where the substitute computation may itself fail.
func RecoverWith[T any](ctx context.Context,
	input odu.Outcome[T],
	onFailure func(ctx context.Context, err error) odu.Outcome[T]) odu.Outcome[T] {

	if input.IsFailure() {
		return onFailure(ctx, input.Err())
	}
	return input
}

func Try[In any, Out any](ctx context.Context, input odu.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) odu.Outcome[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return odu.Fail[Out](err)
		}

		return odu.Success(out)
	}

	return odu.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input odu.Outcome[T],
	onSuccess func(ctx context.Context, r odu.Outcome[T])) odu.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input odu.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) odu.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input odu.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
