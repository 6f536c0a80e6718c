package boot

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pretodev/odu-core/pkg/odu"
)

type job struct {
	pos  int
	task Task
}

type completion struct {
	pos     int
	report  Report
	outcome odu.Outcome[any]
}

// worker pulls jobs until the channel closes or ctx dies. When drain is set,
// jobs left unstarted at cancellation are reported as failed with the
// context error instead of being dropped.
func worker(ctx context.Context, jobs <-chan job, results chan<- completion, drain bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		// ctx takes priority over queued jobs
		if ctx.Err() != nil {
			if drain {
				for j := range jobs {
					glog.V(2).Infof("[boot] drain %s\n", j.task.Name)
					results <- completion{
						pos:     j.pos,
						report:  Report{Name: j.task.Name},
						outcome: odu.Fail[any](ctx.Err()),
					}
				}
			}
			return
		}

		select {
		case <-ctx.Done():
			continue
		case j, ok := <-jobs:
			if !ok {
				return
			}

			glog.V(1).Infof("[boot] start %s\n", j.task.Name)
			started := time.Now()
			out := j.task.Run(ctx)
			elapsed := time.Since(started)
			glog.V(1).Infof("[boot] finish %s in %s\n", j.task.Name, elapsed)

			results <- completion{
				pos:     j.pos,
				report:  Report{Name: j.task.Name, Duration: elapsed},
				outcome: out,
			}
		}
	}
}
