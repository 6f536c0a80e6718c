package core

import "context"

type OptionKey string

const (
	DrainOptionKey  OptionKey = "drain_options"
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type DrainOptions struct {
	DrainRemaining bool
}

// WithDrainOptions controls whether workers report remaining work as failed
// after cancellation instead of dropping it.
func WithDrainOptions(ctx context.Context, drainRemaining bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainRemaining: drainRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func DrainRemaining(ctx context.Context, defaultDrainRemaining bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainRemaining
	}
	return defaultDrainRemaining
}
