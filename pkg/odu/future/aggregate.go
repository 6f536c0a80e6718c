package future

import (
	"context"
	"errors"
	"sync"

	"github.com/pretodev/odu-core/pkg/odu"
)

var ErrNoPending = errors.New("no pending outcomes")

// WaitAll resolves every pending and returns the positional list of their
// outcomes, successes and failures both present. Positions whose pending has
// not resolved when ctx dies are filled with Fail(ctx.Err()).
func WaitAll[T any](ctx context.Context, pendings ...<-chan odu.Outcome[T]) []odu.Outcome[T] {
	results := make([]odu.Outcome[T], len(pendings))
	wg := &sync.WaitGroup{}

	for i, p := range pendings {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case pr, ok := <-p:
				if ok {
					results[i] = pr
					return
				}
				results[i] = odu.Fail[T](resolutionErr(ctx))
			case <-ctx.Done():
				results[i] = odu.Fail[T](ctx.Err())
			}
		}()
	}

	wg.Wait()
	return results
}

// WaitAllOrFirstError resolves to a success of the positional value list only
// if every member succeeds; otherwise it resolves to the first failure by
// completion order, without waiting for stragglers. Their goroutines still
// run to completion.
func WaitAllOrFirstError[T any](ctx context.Context, pendings ...<-chan odu.Outcome[T]) odu.Outcome[[]T] {
	type indexed struct {
		pos int
		res odu.Outcome[T]
	}

	resolved := make(chan indexed, len(pendings))
	for i, p := range pendings {
		go func() {
			select {
			case pr, ok := <-p:
				if ok {
					resolved <- indexed{pos: i, res: pr}
					return
				}
				resolved <- indexed{pos: i, res: odu.Fail[T](resolutionErr(ctx))}
			case <-ctx.Done():
				resolved <- indexed{pos: i, res: odu.Fail[T](ctx.Err())}
			}
		}()
	}

	values := make([]T, len(pendings))
	for range pendings {
		select {
		case r := <-resolved:
			if r.res.IsFailure() {
				return odu.FailFrom[T, []T](r.res)
			}
			values[r.pos] = r.res.Result()
		case <-ctx.Done():
			return odu.Fail[[]T](ctx.Err())
		}
	}

	return odu.Success(values)
}

// FirstSuccess resolves to the first success by completion order. If every
// member fails the failure carries the joined errors; an empty collection
// fails immediately with ErrNoPending.
func FirstSuccess[T any](ctx context.Context, pendings ...<-chan odu.Outcome[T]) odu.Outcome[T] {
	if len(pendings) == 0 {
		return odu.Fail[T](ErrNoPending)
	}

	resolved := make(chan odu.Outcome[T], len(pendings))
	for _, p := range pendings {
		go func() {
			select {
			case pr, ok := <-p:
				if ok {
					resolved <- pr
					return
				}
				resolved <- odu.Fail[T](resolutionErr(ctx))
			case <-ctx.Done():
				resolved <- odu.Fail[T](ctx.Err())
			}
		}()
	}

	var errs []error
	for range pendings {
		select {
		case pr := <-resolved:
			if pr.IsSuccess() {
				return pr
			}
			errs = append(errs, pr.Err())
		case <-ctx.Done():
			return odu.Fail[T](ctx.Err())
		}
	}

	return odu.Fail[T](errors.Join(errs...))
}

// A pending that closes without delivering did so under cancellation; if the
// context is somehow still live, report the channel as spent.
func resolutionErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrNoPending
}
