package odu

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	o := Success(42)

	if !o.IsSuccess() {
		t.Fatal("expected success")
	}
	if o.IsFailure() {
		t.Fatal("expected not failure")
	}
	if o.Result() != 42 {
		t.Fatalf("expected 42, got %d", o.Result())
	}
	if o.Err() != nil {
		t.Fatalf("expected nil error, got %v", o.Err())
	}
	if o.ID() == uuid.Nil {
		t.Fatal("expected an identity")
	}
	if o.CreatedAt().IsZero() {
		t.Fatal("expected a creation time")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	failure := errors.New("broken")
	o := Fail[int](failure)

	if o.IsSuccess() {
		t.Fatal("expected failure")
	}
	if !errors.Is(o.Err(), failure) {
		t.Fatalf("expected the original error, got %v", o.Err())
	}
	if o.Result() != 0 {
		t.Fatalf("expected zero value on failure, got %d", o.Result())
	}
	if o.HasTrace() {
		t.Fatal("Fail should not capture a trace")
	}
}

func TestFailTrace(t *testing.T) {
	t.Parallel()

	o := FailTrace[int](errors.New("broken"))

	if !o.HasTrace() {
		t.Fatal("expected a captured stack")
	}
	if len(o.Trace()) == 0 {
		t.Fatal("expected non-empty stack bytes")
	}
}

func TestFailFrom_KeepsIdentityAndTrace(t *testing.T) {
	t.Parallel()

	from := FailTrace[int](errors.New("broken"))
	to := FailFrom[int, string](from)

	if to.IsSuccess() {
		t.Fatal("expected failure")
	}
	if to.ID() != from.ID() {
		t.Fatal("expected identity preserved")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatal("expected creation time preserved")
	}
	if !to.HasTrace() {
		t.Fatal("expected trace preserved")
	}
	if to.Err() != from.Err() {
		t.Fatal("expected error preserved by reference")
	}
}

func TestFailWith_ReplacesOnlyError(t *testing.T) {
	t.Parallel()

	from := FailTrace[int](errors.New("original"))
	replacement := errors.New("wrapped")
	to := FailWith(from, replacement)

	if to.Err() != replacement {
		t.Fatalf("expected replacement error, got %v", to.Err())
	}
	if to.ID() != from.ID() || !to.HasTrace() {
		t.Fatal("expected identity and trace preserved")
	}
}

func TestUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Unwrap on failure to panic")
		}
	}()

	Fail[int](errors.New("broken")).Unwrap()
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()

	if got := Success("v").Unwrap(); got != "v" {
		t.Fatalf("expected v, got %s", got)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	if got := Success(1).UnwrapOr(9); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Fail[int](errors.New("broken")).UnwrapOr(9); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	got := Fail[int](errors.New("broken")).UnwrapOrElse(func(err error) int {
		return len(err.Error())
	})
	if got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}

	got = Success(1).UnwrapOrElse(func(err error) int {
		t.Error("fallback should not run on success")
		return 0
	})
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
