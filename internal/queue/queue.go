// Package queue implements the FIFO buffer behind a mailbox: bounded or
// unbounded, with context-aware blocking push, suspending pop and separate
// shutdown signals for the sending and the receiving side.
package queue

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrClosed is returned by pushes once the queue is closed or detached.
	ErrClosed = errors.New("queue closed")
	// ErrFull is returned by TryPush when a bounded queue has no room.
	ErrFull = errors.New("queue full")
	// ErrDrained is returned by Pop once the queue is closed and empty.
	ErrDrained = errors.New("queue drained")
)

// Queue is a multi-producer single-consumer FIFO.
type Queue[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
	closed   bool
	detached bool
	// signal is allocated lazily by waiters and closed on every state change.
	signal chan struct{}
	gone   chan struct{}
}

// New returns a queue holding at most capacity items.
// A capacity <= 0 makes the queue unbounded.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		capacity: capacity,
		gone:     make(chan struct{}),
	}
}

// Push appends v, waiting for room if the queue is bounded and full.
func (q *Queue[T]) Push(ctx context.Context, v T) error {
	for {
		q.mu.Lock()
		if q.closed || q.detached {
			q.mu.Unlock()
			return ErrClosed
		}
		if q.hasRoom() {
			q.items = append(q.items, v)
			q.notify()
			q.mu.Unlock()
			return nil
		}
		wait := q.waitCh()
		q.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// TryPush appends v without waiting.
func (q *Queue[T]) TryPush(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.detached {
		return ErrClosed
	}
	if !q.hasRoom() {
		return ErrFull
	}
	q.items = append(q.items, v)
	q.notify()
	return nil
}

// Pop removes the oldest item, waiting until one is available. Items queued
// before Close are still delivered; after that Pop returns ErrDrained.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	var zero T
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			v := q.items[0]
			q.items[0] = zero
			q.items = q.items[1:]
			q.notify()
			q.mu.Unlock()
			return v, nil
		}
		if q.closed || q.detached {
			q.mu.Unlock()
			return zero, ErrDrained
		}
		wait := q.waitCh()
		q.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close marks the sending side as done. It is safe to call more than once.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.notify()
}

// Detach marks the receiving side as gone: buffered items are discarded,
// blocked pushers are released and Gone is closed.
func (q *Queue[T]) Detach() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.detached {
		return
	}
	q.detached = true
	clear(q.items)
	q.items = nil
	close(q.gone)
	q.notify()
}

// Gone is closed once the receiver detaches.
func (q *Queue[T]) Gone() <-chan struct{} {
	return q.gone
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the queue capacity, 0 meaning unbounded.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

func (q *Queue[T]) hasRoom() bool {
	return q.capacity == 0 || len(q.items) < q.capacity
}

// waitCh must be called with mu held.
func (q *Queue[T]) waitCh() <-chan struct{} {
	if q.signal == nil {
		q.signal = make(chan struct{})
	}
	return q.signal
}

// notify must be called with mu held.
func (q *Queue[T]) notify() {
	if q.signal != nil {
		close(q.signal)
		q.signal = nil
	}
}
