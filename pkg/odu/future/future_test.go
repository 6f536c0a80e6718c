package future

import (
	"context"
	"testing"
	"time"

	"github.com/pretodev/odu-core/pkg/odu"
)

func TestGo_DeliversExactlyOnce(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pending := Go(ctx, func(ctx context.Context) odu.Outcome[int] {
		return odu.Success(7)
	})

	res, ok := <-pending
	if !ok {
		t.Fatal("expected one delivery")
	}
	if !res.IsSuccess() || res.Result() != 7 {
		t.Fatalf("expected Success(7), got %v / %v", res.Result(), res.Err())
	}
	if _, ok := <-pending; ok {
		t.Fatal("expected channel closed after delivery")
	}
}

func TestGo_ContextDeathResolvesFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	pending := Go(ctx, func(ctx context.Context) odu.Outcome[int] {
		time.Sleep(time.Second)
		return odu.Success(1)
	})

	res := <-pending
	if !res.IsFailure() || !odu.IsCancellation(res.Err()) {
		t.Fatalf("expected cancellation failure, got %v", res.Err())
	}
}

func TestMapping_TransformMayBlock(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pending := Mapping(ctx, odu.Success(10), func(_ context.Context, r int) int {
		time.Sleep(20 * time.Millisecond)
		return r + 5
	})

	res := <-pending
	if !res.IsSuccess() || res.Result() != 15 {
		t.Fatalf("expected Success(15), got %v / %v", res.Result(), res.Err())
	}
}

func TestSwitching_ShortCircuits(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pending := Switching(ctx, odu.Fail[int](errBroken), func(_ context.Context, r int) odu.Outcome[string] {
		t.Error("transform must not run on failure")
		return odu.Success("never")
	})

	res := <-pending
	if !res.IsFailure() || res.Err() != errBroken {
		t.Fatalf("expected failure propagated, got %v", res.Err())
	}
}

func TestRecovering(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pending := Recovering(ctx, odu.Fail[int](errBroken), func(_ context.Context, err error) int {
		return -1
	})

	res := <-pending
	if !res.IsSuccess() || res.Result() != -1 {
		t.Fatalf("expected Success(-1), got %v / %v", res.Result(), res.Err())
	}
}

func TestTrying(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pending := Trying(ctx, odu.Success(2), func(_ context.Context, r int) (int, error) {
		if r%2 != 0 {
			return 0, errBroken
		}
		return r * 10, nil
	})

	res := <-pending
	if !res.IsSuccess() || res.Result() != 20 {
		t.Fatalf("expected Success(20), got %v / %v", res.Result(), res.Err())
	}
}
