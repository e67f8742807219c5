package mailbox

import (
	"log/slog"

	"github.com/pkorotkov/mailbox/internal/queue"
)

// StartMailboxDirect creates a mailbox and hands its Context to ctor, which
// is responsible for starting the actor and returning its handle. Calling
// Run on the context from the spawned actor is what lets senders and asks
// notice when the actor stops.
func StartMailboxDirect[M, H any](bounds Bounds, ctor func(*Context[M]) H, options ...Option) *Mailbox[M, H] {
	cfg := newConfig(options)
	q := queue.New[M](bounds.Capacity())
	handle := ctor(&Context[M]{q: q, cfg: cfg})
	cfg.logger.Debug("mailbox started", slog.String("bounds", bounds.String()))
	return &Mailbox[M, H]{
		Sender: newSender(q, cfg),
		Handle: handle,
	}
}

// StartMailbox starts body with the given strategy.
func StartMailbox[M, H any](bounds Bounds, body Body[M], strategy Strategy[H], options ...Option) *Mailbox[M, H] {
	return StartMailboxDirect(bounds, func(c *Context[M]) H {
		return strategy.Spawn(func() error { return c.Run(body) })
	}, options...)
}

// StartMailboxAsTask starts body in a goroutine.
func StartMailboxAsTask[M any](bounds Bounds, body Body[M], options ...Option) *Mailbox[M, *Handle] {
	return StartMailbox(bounds, body, Task(), options...)
}

// StartMailboxOnThread starts body on a dedicated OS thread.
func StartMailboxOnThread[M any](bounds Bounds, body Body[M], options ...Option) *Mailbox[M, *Handle] {
	return StartMailbox(bounds, body, Thread(), options...)
}

// StartMailboxInPool starts body in pool. It waits for a free slot if the
// pool is at its limit.
func StartMailboxInPool[M any](pool *Pool, bounds Bounds, body Body[M], options ...Option) *Mailbox[M, *Handle] {
	return StartMailbox[M, *Handle](bounds, body, pool, options...)
}
