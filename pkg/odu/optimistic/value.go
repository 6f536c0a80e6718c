package optimistic

import (
	"context"
	"errors"
	"sync"

	"github.com/golang/glog"
	"github.com/pretodev/odu-core/pkg/odu"
	"github.com/pretodev/odu-core/pkg/odu/core"
)

// ErrStateUninitialized is returned by Update when no snapshot has been
// observed yet. It is fatal to that Update call only, not to the engine.
var ErrStateUninitialized = errors.New("optimistic: no state observed yet")

type config struct {
	serialUpdates bool
}

type Option func(*config)

// WithSerialUpdates makes Update hold a per-instance lock from speculation
// through confirmation, serializing overlapping calls. The default stays
// unserialized; see the concurrency note on Update.
func WithSerialUpdates() Option {
	return func(c *config) {
		c.serialUpdates = true
	}
}

// Value wraps a producer of confirmed state snapshots and lets callers apply
// a speculative transition immediately, confirm it with an asynchronous task,
// and roll back to the prior snapshot if the task fails.
//
// The engine subscribes to the source but does not own its lifecycle; it
// exclusively owns the speculative channel. The last-known-state cell starts
// uninitialized, distinct from any valid T, and is set by the first snapshot
// observed.
type Value[T any] struct {
	source      <-chan T
	speculative chan T
	done        chan struct{}

	closeOnce sync.Once

	mu          sync.Mutex // guards state and initialized
	state       T
	initialized bool

	serial   bool
	updateMu sync.Mutex

	bus *core.Broadcaster[T]
}

// New starts the merge loop immediately: source emissions update the
// last-known-state cell whether or not anyone is subscribed to Stream.
func New[T any](source <-chan T, opts ...Option) *Value[T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := &Value[T]{
		source:      source,
		speculative: make(chan T),
		done:        make(chan struct{}),
		serial:      cfg.serialUpdates,
		bus:         core.NewBroadcaster[T](),
	}

	go v.run()

	return v
}

// run merges source and speculative emissions into the broadcaster in
// arrival order. The cell is updated before the element is published, so an
// element observed on Stream implies the cell already holds it.
func (v *Value[T]) run() {
	defer v.bus.Close()

	source := v.source
	for {
		select {
		case <-v.done:
			return
		case s, ok := <-source:
			if !ok {
				// source exhausted; keep serving speculative emissions
				glog.V(2).Info("[opt] source closed\n")
				source = nil
				continue
			}
			v.mu.Lock()
			v.state = s
			v.initialized = true
			v.mu.Unlock()
			v.bus.Publish(s)
		case s := <-v.speculative:
			// the cell was already written by Update before the push
			v.bus.Publish(s)
		}
	}
}

// Stream returns the merged observable of confirmed and speculative
// snapshots, in the temporal order they occur, no sorting and no
// deduplication. Every subscriber sees the same sequence from its
// subscription onward; there is no replay of earlier elements. The channel
// closes when ctx is done or the engine is closed.
func (v *Value[T]) Stream(ctx context.Context) <-chan T {
	return v.bus.Subscribe(ctx)
}

// Close ends speculative emissions and completes the merged observable.
// In-flight Update calls are not canceled; their later pushes become silent
// no-ops. The source is left untouched. Idempotent.
func (v *Value[T]) Close() {
	v.closeOnce.Do(func() {
		close(v.done)
	})
}

// push hands a snapshot to the merge loop. It returns only after the loop
// has accepted the element, so the snapshot is ordered into the broadcast
// before the caller proceeds. After Close it is a no-op.
func (v *Value[T]) push(s T) {
	select {
	case v.speculative <- s:
	case <-v.done:
	}
}

// Update applies updater to the last known state, emits the candidate
// speculatively before task runs, then awaits task for confirmation. On
// failure the previous snapshot is restored and re-emitted, and the failure
// is returned unchanged; on success the candidate stands. The caller learns
// the outcome of task, never the state value.
//
// Before the first snapshot is observed Update fails with
// ErrStateUninitialized and task is never invoked.
//
// Concurrent Update calls are not serialized by default: the second call
// overwrites the cell read by the first, and a rollback restores the first
// call's previous state over the second call's speculative change. Callers
// must serialize externally, or construct the Value with WithSerialUpdates.
func Update[T, R any](ctx context.Context, v *Value[T],
	task func(ctx context.Context) odu.Outcome[R],
	updater func(prev T) T) odu.Outcome[R] {

	if v.serial {
		v.updateMu.Lock()
		defer v.updateMu.Unlock()
	}

	v.mu.Lock()
	if !v.initialized {
		v.mu.Unlock()
		return odu.Fail[R](ErrStateUninitialized)
	}
	previous := v.state
	candidate := updater(previous)
	v.state = candidate
	v.mu.Unlock()

	// speculative emission, observable before task runs
	v.push(candidate)

	out := task(ctx)

	if out.IsFailure() {
		glog.V(2).Infof("[opt] rollback: %v\n", out.Err())
		v.mu.Lock()
		v.state = previous
		v.mu.Unlock()
		v.push(previous)
	}

	return out
}
