package core

import (
	"context"
	"sync"

	"github.com/golang/glog"
)

// Broadcaster fans published elements out to every active subscriber in
// publish order. Publish never blocks: each subscriber owns an unbounded FIFO
// drained by its own pump goroutine, so a slow consumer delays only itself.
// There is no replay; a subscriber sees only elements published after it
// subscribed.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[int]*subscriber[T]
	nextID int
	closed bool
}

type subscriber[T any] struct {
	mu    sync.Mutex
	queue []T
	ended bool
	wake  chan struct{}
	out   chan T
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{
		subs: make(map[int]*subscriber[T]),
	}
}

// Subscribe registers a new consumer. The returned channel closes when ctx is
// done or the broadcaster closes. Subscribing to a closed broadcaster yields
// an already-closed channel.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) <-chan T {
	s := &subscriber[T]{
		wake: make(chan struct{}, 1),
		out:  make(chan T),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.out)
		return s.out
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	b.mu.Unlock()

	glog.V(2).Infof("[cast] subscribe %d\n", id)

	go s.pump(ctx, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	})

	return s.out
}

// Publish enqueues v for every current subscriber. Safe to call from one
// producer goroutine at a time; delivery order matches call order.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	targets := make([]*subscriber[T], 0, len(b.subs))
	for _, s := range b.subs {
		targets = append(targets, s)
	}
	b.mu.Unlock()

	// notify outside the registry lock
	for _, s := range targets {
		s.push(v)
	}
}

// Close ends every subscription after its queued elements drain. Idempotent.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	targets := make([]*subscriber[T], 0, len(b.subs))
	for _, s := range b.subs {
		targets = append(targets, s)
	}
	b.mu.Unlock()

	glog.V(2).Infof("[cast] close, %d subscribers\n", len(targets))

	for _, s := range targets {
		s.finish()
	}
}

func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, v)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) finish() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) pump(ctx context.Context, remove func()) {
	defer close(s.out)
	defer remove()
	defer s.finish()

	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		ended := s.ended
		s.mu.Unlock()

		for _, v := range batch {
			select {
			case s.out <- v:
			case <-ctx.Done():
				return
			}
		}

		if ended {
			return
		}

		select {
		case <-s.wake:
		case <-ctx.Done():
			return
		}
	}
}
