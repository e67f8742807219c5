package mailbox

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"github.com/pkorotkov/mailbox/internal/queue"
)

// Body is an actor loop. It owns its state and consumes messages through
// the context until it decides to stop, normally on ErrContextClosed.
type Body[M any] func(c *Context[M]) error

// Context is the actor-side half of a mailbox and the only way to receive
// from it. Each mailbox has exactly one Context; it must not be copied or
// handed to more than one consumer.
type Context[M any] struct {
	q       *queue.Queue[M]
	cfg     *config
	running atomic.Bool
}

// Dequeue waits for the next message. It returns ErrContextClosed once every
// sender is closed and the backlog is drained, or ctx.Err() if ctx ends
// first.
func (c *Context[M]) Dequeue(ctx context.Context) (M, error) {
	message, err := c.q.Pop(ctx)
	if err != nil {
		if errors.Is(err, queue.ErrDrained) {
			return message, ErrContextClosed
		}
		return message, err
	}
	c.cfg.metrics.MessageDequeued(c.cfg.name)
	c.cfg.metrics.MailboxDepth(c.cfg.name, c.q.Len())
	return message, nil
}

// Len returns the number of messages waiting to be dequeued.
func (c *Context[M]) Len() int {
	return c.q.Len()
}

// Run drives body on the calling goroutine. A body ending with
// ErrContextClosed counts as a normal stop and yields nil; a panic is
// recovered into a *PanicError. When body returns the mailbox is detached:
// later posts fail and pending asks resolve with ErrReplyDropped.
func (c *Context[M]) Run(body Body[M]) (err error) {
	if !c.running.CompareAndSwap(false, true) {
		return ErrContextInUse
	}
	defer c.q.Detach()
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			c.cfg.metrics.ActorPanicked(c.cfg.name)
			c.cfg.logger.Error("actor panicked",
				slog.Any("recovered", r),
				slog.String("stack", string(stack)))
			err = &PanicError{Value: r, Stack: stack}
		}
	}()

	err = body(c)
	if err == nil || errors.Is(err, ErrContextClosed) {
		c.cfg.logger.Debug("actor stopped")
		return nil
	}
	c.cfg.logger.Debug("actor stopped with error", slog.Any("error", err))
	return err
}
