package solo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/expected/pkg/expect"
)

type Result[T any] = expect.Expected[T, error]

func Succeed[T any](input T) Result[T] {
	return expect.Of[T, error](input)
}

func Fail[T any](err error) Result[T] {
	return expect.Err[T](err)
}

// Cancel fails with an error that matches context.Canceled.
func Cancel[T any](err error) Result[T] {
	if expect.IsCancellationError(err) {
		return expect.Err[T](err)
	}
	return expect.Err[T](fmt.Errorf("%w: %w", context.Canceled, err))
}

func IsCancel[T any](input Result[T]) bool {
	return input.HasError() && expect.IsCancellationError(input.Err())
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if input.HasValue() {

		if isValid, errMsg := validate(ctx, input.Deref()); isValid {
			return input
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	var seen []expect.ErrorProvider[error]
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current Result[T]) Result[T] {

			if current.HasError() {
				seen = append(seen, current)
			}

			errs := expect.CollectErrors(seen...)
			if len(errs) == 0 {
				return current
			}

			return Fail[T](errors.Join(errs...))
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Result[Out]) Result[Out] {

	return expect.FlatMap(input, func(r In) Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	return expect.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input Result[T],
	onSuccess func(ctx context.Context, r Result[T])) Result[T] {

	if input.HasValue() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input Result[T],
	condition func(ctx context.Context, r Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r Result[T])) Result[T] {

	if input.HasValue() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Result[T] {

	if input.HasValue() {
		onSuccess(ctx, input.Deref())
	} else {
		if IsCancel(input) {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Result[Out] {

	if input.HasValue() {
		return Succeed(onSuccess(ctx, input.Deref()))
	}

	if IsCancel(input) {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return Fail[Out](input.Err())
}

func Try[In any, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	return expect.FlatMap(input, func(r In) Result[Out] {
		out, err := onTryExecute(ctx, r)
		return expect.From(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input Result[T],
	maybeErr func(ctx context.Context, in T) error) Result[T] {
	if input.HasValue() {
		err := maybeErr(ctx, input.Deref())
		if err != nil {
			return Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Recover turns a failure back into a value.
func Recover[T any](ctx context.Context, input Result[T],
	onError func(ctx context.Context, err error) T) Result[T] {
	if input.HasError() {
		return Succeed(onError(ctx, input.Err()))
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.HasValue() {
		return onSuccess(ctx, input.Deref())
	} else if IsCancel(input) {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current Result[T]) Result[T],
	inputsF ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	if len(inputsF) == 0 || concat == nil || !expect.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !expect.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.HasValue() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !expect.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.HasError() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
