package chain

import (
	"context"

	"github.com/ib-77/expected/pkg/expect"
	"github.com/ib-77/expected/pkg/expect/solo"
)

// Chain wraps an expect.Expected with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result solo.Result[T]
}

// Start creates a new chain from a result
func Start[T any](ctx context.Context, result solo.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: solo.Succeed(value),
	}
}

// FromTry creates a new chain from a (value, error) pair
func FromTry[T any](ctx context.Context, value T, err error) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: expect.From(value, err),
	}
}

// Result returns the underlying result
func (c *Chain[T]) Result() solo.Result[T] {
	return c.result
}

// Then chains a function that returns a result of another type
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) solo.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if onSuccess == nil {
		return c
	}
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result solo.Result[T]) {
				onSuccess(ctx, result.Deref())
			}),
	}
}

// OnError performs a side effect on failure without changing the result
func (c *Chain[T]) OnError(onFailure func(context.Context, error)) *Chain[T] {
	if c.result.HasError() && onFailure != nil {
		onFailure(c.ctx, c.result.Err())
	}
	return c
}

// Or returns the first successful chain. Without a success, a cancellation
// wins over a plain failure; otherwise the first failure is returned.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	var cancelled, failed *Chain[T]
	for _, ch := range append([]*Chain[T]{c}, alternatives...) {
		switch {
		case ch.result.HasValue():
			return ch
		case solo.IsCancel(ch.result):
			if cancelled == nil {
				cancelled = ch
			}
		case failed == nil:
			failed = ch
		}
	}
	if cancelled != nil {
		return cancelled
	}
	return failed
}

// And returns the first failed chain, or the last one when all succeeded
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch.result.HasError() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil applies onSuccess at least once and keeps going while the
// result is a success and until reports true
func (c *Chain[T]) RepeatUntil(onSuccess func(context.Context, T) solo.Result[T],
	until func(context.Context, T) bool) *Chain[T] {

	if c.result.HasError() {
		return c
	}

	for {
		c = Then(c, onSuccess)

		if c.result.HasError() || !until(c.ctx, c.result.Deref()) {
			return c
		}
	}
}

// While applies onSuccess as long as the result is a success and while
// reports true
func (c *Chain[T]) While(onSuccess func(context.Context, T) solo.Result[T],
	while func(context.Context, T) bool) *Chain[T] {

	for c.result.HasValue() && while(c.ctx, c.result.Deref()) {
		c = Then(c, onSuccess)
	}
	return c
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure, onCancel)
}
