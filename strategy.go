package mailbox

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Strategy turns an actor run into a unit of execution and returns its
// lifecycle handle.
type Strategy[H any] interface {
	Spawn(run func() error) H
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc[H any] func(run func() error) H

func (f StrategyFunc[H]) Spawn(run func() error) H {
	return f(run)
}

// Task runs each actor in its own goroutine on the shared Go scheduler. The
// actor may resume on any OS thread, so messages and state must not be tied
// to one.
func Task() Strategy[*Handle] {
	return StrategyFunc[*Handle](func(run func() error) *Handle {
		h := newHandle()
		go h.run(run)
		return h
	})
}

// Thread runs each actor on a dedicated OS thread, for state that is not
// safe to move between threads (cgo handles, thread-local libraries). The
// thread is discarded when the actor returns.
func Thread() Strategy[*Handle] {
	return StrategyFunc[*Handle](func(run func() error) *Handle {
		h := newHandle()
		go func() {
			// never unlocked: the thread exits with the goroutine
			runtime.LockOSThread()
			h.run(run)
		}()
		return h
	})
}

// Pool runs actors as tasks of a shared group with an optional limit on
// how many run at once. The first actor to fail cancels Context.
type Pool struct {
	g   *errgroup.Group
	ctx context.Context
}

// NewPool returns a pool bound to ctx. A limit <= 0 means no limit.
func NewPool(ctx context.Context, limit int) *Pool {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &Pool{g: g, ctx: ctx}
}

// Spawn starts run in the pool, waiting for a free slot if the pool is at
// its limit.
func (p *Pool) Spawn(run func() error) *Handle {
	h := newHandle()
	p.g.Go(func() error {
		h.run(run)
		return h.err
	})
	return h
}

// Context is done when the pool's parent context ends or an actor fails.
// Actor bodies pass it to Dequeue to stop with the pool.
func (p *Pool) Context() context.Context { return p.ctx }

// Wait blocks until every actor in the pool has returned and reports the
// first error.
func (p *Pool) Wait() error { return p.g.Wait() }

var _ Strategy[*Handle] = (*Pool)(nil)
