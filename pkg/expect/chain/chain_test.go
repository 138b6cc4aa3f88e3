package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/expected/pkg/expect/solo"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, solo.Succeed(5)).Result()

	if !out.HasValue() || out.Deref() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.HasValue(), out.Deref(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()

	if !out.HasValue() || out.Deref() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.HasValue(), out.Deref(), out.Err())
	}
}

func TestFromTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromTry(ctx, 3, nil).Result()
	if !ok.HasValue() || ok.Deref() != 3 {
		t.Fatalf("expected success with 3, got: %v", ok)
	}

	bad := FromTry(ctx, 3, errors.New("nope")).Result()
	if bad.HasValue() || bad.Err().Error() != "nope" {
		t.Fatalf("expected failure 'nope', got: %v", bad)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Then(Start(ctx, solo.Fail[int](errors.New("boom"))), func(ctx context.Context, t int) solo.Result[int] {
		called = true
		return solo.Succeed(t + 1)
	}).Result()

	if out.HasValue() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.HasValue(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_ChangesType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(FromValue(ctx, 3), func(ctx context.Context, t int) solo.Result[string] {
		return solo.Succeed(strconv.Itoa(t * 2))
	}).Result()

	if !out.HasValue() || out.Deref() != "6" {
		t.Fatalf("expected success with \"6\", got: success=%v, val=%v, err=%v", out.HasValue(), out.Deref(), out.Err())
	}
}

func TestThen_PropagateCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(Start(ctx, solo.Cancel[int](errors.New("stop"))), func(ctx context.Context, t int) solo.Result[int] {
		return solo.Succeed(t)
	}).Result()

	if !solo.IsCancel(out) {
		t.Fatalf("expected cancellation to propagate, got: %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sq := ThenTry(FromValue(ctx, 4), func(ctx context.Context, t int) (int, error) { return t * t, nil }).Result()
	if !sq.HasValue() || sq.Deref() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", sq.HasValue(), sq.Deref(), sq.Err())
	}

	failed := ThenTry(FromValue(ctx, 10), func(ctx context.Context, t int) (int, error) {
		return 0, errors.New("try-error")
	}).Result()
	if failed.HasValue() || failed.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", failed.HasValue(), failed.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Map(FromValue(ctx, 5), func(ctx context.Context, t int) int { return t + 3 }).Result()
	if !ok.HasValue() || ok.Deref() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", ok.HasValue(), ok.Deref(), ok.Err())
	}

	failed := Map(Start(ctx, solo.Fail[int](errors.New("oops"))), func(ctx context.Context, t int) int { return t + 100 }).Result()
	if failed.HasValue() || failed.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: success=%v, err=%v", failed.HasValue(), failed.Err())
	}
}

func TestEnsureAndOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	out := FromValue(ctx, 11).
		Ensure(func(ctx context.Context, v int) { sCalled = true }).
		OnError(func(ctx context.Context, err error) { fCalled = true }).
		Result()
	if !out.HasValue() || out.Deref() != 11 {
		t.Fatalf("expected success with 11, got: %v", out)
	}
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	out = Start(ctx, solo.Fail[int](errors.New("bad"))).
		Ensure(func(ctx context.Context, v int) { sCalled = true }).
		OnError(func(ctx context.Context, err error) { fCalled = true }).
		Result()
	if out.HasValue() || out.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got: %v", out)
	}
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// nil callbacks should be safe
	out = FromValue(ctx, 1).Ensure(nil).OnError(nil).Result()
	if !out.HasValue() || out.Deref() != 1 {
		t.Fatalf("expected unchanged success result, got: %v", out)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failed := Start(ctx, solo.Fail[int](errors.New("first")))
	cancelled := Start(ctx, solo.Cancel[int](errors.New("stop")))
	ok := FromValue(ctx, 2)

	if out := failed.Or(cancelled, ok).Result(); !out.HasValue() || out.Deref() != 2 {
		t.Fatalf("expected first success, got: %v", out)
	}
	if out := failed.Or(cancelled).Result(); !solo.IsCancel(out) {
		t.Fatalf("expected cancellation to win over failure, got: %v", out)
	}
	if out := failed.Or(Start(ctx, solo.Fail[int](errors.New("second")))).Result(); out.Err().Error() != "first" {
		t.Fatalf("expected first failure, got: %v", out)
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if out := FromValue(ctx, 1).And(FromValue(ctx, 2), FromValue(ctx, 3)).Result(); out.Deref() != 3 {
		t.Fatalf("expected last success, got: %v", out)
	}

	failed := Start(ctx, solo.Fail[int](errors.New("missing")))
	if out := FromValue(ctx, 1).And(failed, FromValue(ctx, 3)).Result(); out.Err().Error() != "missing" {
		t.Fatalf("expected first failure, got: %v", out)
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, v int) solo.Result[int] { return solo.Succeed(v + 1) }

	out := FromValue(ctx, 0).RepeatUntil(inc, func(ctx context.Context, v int) bool { return v < 5 }).Result()
	if out.Deref() != 5 {
		t.Fatalf("expected 5, got: %v", out)
	}

	// runs at least once
	out = FromValue(ctx, 10).RepeatUntil(inc, func(ctx context.Context, v int) bool { return false }).Result()
	if out.Deref() != 11 {
		t.Fatalf("expected 11, got: %v", out)
	}

	failAt3 := func(ctx context.Context, v int) solo.Result[int] {
		if v == 3 {
			return solo.Fail[int](errors.New("stuck"))
		}
		return solo.Succeed(v + 1)
	}
	out = FromValue(ctx, 0).RepeatUntil(failAt3, func(ctx context.Context, v int) bool { return true }).Result()
	if out.HasValue() || out.Err().Error() != "stuck" {
		t.Fatalf("expected failure 'stuck', got: %v", out)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := func(ctx context.Context, v int) solo.Result[int] { return solo.Succeed(v * 2) }

	out := FromValue(ctx, 1).While(double, func(ctx context.Context, v int) bool { return v < 100 }).Result()
	if out.Deref() != 128 {
		t.Fatalf("expected 128, got: %v", out)
	}

	// never runs when the condition is false upfront
	out = FromValue(ctx, 500).While(double, func(ctx context.Context, v int) bool { return v < 100 }).Result()
	if out.Deref() != 500 {
		t.Fatalf("expected 500, got: %v", out)
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onFailure := func(ctx context.Context, err error) int { return -1 }
	onCancel := func(ctx context.Context, err error) int { return -2 }

	if s := Finally(FromValue(ctx, 3), onSuccess, onFailure, onCancel); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Finally(Start(ctx, solo.Fail[int](errors.New("x"))), onSuccess, onFailure, onCancel); f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
	if c := Finally(Start(ctx, solo.Cancel[int](errors.New("c"))), onSuccess, onFailure, onCancel); c != -2 {
		t.Fatalf("expected -2 for cancel, got %d", c)
	}
}
