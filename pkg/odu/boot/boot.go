package boot

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pretodev/odu-core/pkg/odu"
	"github.com/pretodev/odu-core/pkg/odu/core"
)

const defaultWorkers = 4

// Task is a named unit of application bootstrap work.
type Task struct {
	Name string
	Run  func(ctx context.Context) odu.Outcome[any]
}

// Report records how long a task took.
type Report struct {
	Name     string
	Duration time.Duration
}

// Sequential runs tasks in order and stops at the first failure, which
// becomes the aggregate failure. Context death before a task starts fails
// the run with the context error.
func Sequential(ctx context.Context, tasks ...Task) odu.Outcome[[]Report] {
	reports := make([]Report, 0, len(tasks))

	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return odu.Fail[[]Report](err)
		}

		glog.V(1).Infof("[boot] start %s\n", t.Name)
		started := time.Now()
		out := t.Run(ctx)
		elapsed := time.Since(started)
		glog.V(1).Infof("[boot] finish %s in %s\n", t.Name, elapsed)

		if out.IsFailure() {
			return odu.FailFrom[any, []Report](out)
		}
		reports = append(reports, Report{Name: t.Name, Duration: elapsed})
	}

	return odu.Success(reports)
}

// Parallel fans tasks over a worker pool sized by core.WorkerMaxCount and
// collects reports positionally. The first failure by completion order wins;
// straggler tasks still run to completion. On cancellation, unstarted tasks
// are reported as failed when core.DrainRemaining allows it.
func Parallel(ctx context.Context, tasks ...Task) odu.Outcome[[]Report] {
	workers := core.WorkerMaxCount(ctx, defaultWorkers)
	if workers > len(tasks) {
		workers = len(tasks)
	}
	drain := core.DrainRemaining(ctx, true)

	jobs := make(chan job, len(tasks))
	for i, t := range tasks {
		jobs <- job{pos: i, task: t}
	}
	close(jobs)

	// buffered so workers never block after an early return below
	results := make(chan completion, len(tasks))
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go worker(ctx, jobs, results, drain, wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	reports := make([]Report, len(tasks))
	for range tasks {
		select {
		case c, ok := <-results:
			if !ok {
				return odu.Fail[[]Report](ctx.Err())
			}
			if c.outcome.IsFailure() {
				return odu.FailFrom[any, []Report](c.outcome)
			}
			reports[c.pos] = c.report
		case <-ctx.Done():
			return odu.Fail[[]Report](ctx.Err())
		}
	}

	return odu.Success(reports)
}
