package mailbox

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/pkorotkov/mailbox/internal/queue"
)

// Mailbox is the caller-side half of a running actor: a Sender over the
// actor's queue plus the lifecycle handle produced by the spawn strategy.
type Mailbox[M, H any] struct {
	*Sender[M]

	// Handle tracks the spawned actor, e.g. *Handle for the built-in
	// strategies.
	Handle H
}

// Sender posts messages to one mailbox. A Sender may be shared between
// goroutines; Clone gives an independently closable handle. The mailbox
// stops accepting messages once every handle is closed.
type Sender[M any] struct {
	q      *queue.Queue[M]
	cfg    *config
	refs   *atomic.Int64
	closed atomic.Bool
}

func newSender[M any](q *queue.Queue[M], cfg *config) *Sender[M] {
	refs := new(atomic.Int64)
	refs.Store(1)
	return &Sender[M]{q: q, cfg: cfg, refs: refs}
}

// Post enqueues message without waiting for the actor to handle it.
// On a bounded mailbox it waits for room until ctx is done.
func (s *Sender[M]) Post(ctx context.Context, message M) error {
	if s.closed.Load() {
		return s.postFailed()
	}
	if err := s.q.Push(ctx, message); err != nil {
		if errors.Is(err, queue.ErrClosed) {
			return s.postFailed()
		}
		return err
	}
	s.accepted(message)
	return nil
}

// TryPost enqueues message if there is room, returning ErrMailboxFull
// otherwise.
func (s *Sender[M]) TryPost(message M) error {
	if s.closed.Load() {
		return s.postFailed()
	}
	switch err := s.q.TryPush(message); {
	case errors.Is(err, queue.ErrFull):
		return ErrMailboxFull
	case errors.Is(err, queue.ErrClosed):
		return s.postFailed()
	}
	s.accepted(message)
	return nil
}

// Clone returns another handle to the same mailbox. Cloning a closed
// handle yields a closed handle.
func (s *Sender[M]) Clone() *Sender[M] {
	clone := &Sender[M]{q: s.q, cfg: s.cfg, refs: s.refs}
	if s.closed.Load() {
		clone.closed.Store(true)
		return clone
	}
	s.refs.Add(1)
	return clone
}

// Close releases this handle. Closing the last handle closes the mailbox:
// the actor still receives the backlog, then Dequeue reports
// ErrContextClosed.
func (s *Sender[M]) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.refs.Add(-1) == 0 {
		s.q.Close()
		s.cfg.logger.Debug("mailbox closed", slog.Int("pending", s.q.Len()))
	}
}

// Done is closed once the actor stops consuming, after which every post
// fails with ErrPostFailed.
func (s *Sender[M]) Done() <-chan struct{} {
	return s.q.Gone()
}

// Len returns the number of messages waiting to be dequeued.
func (s *Sender[M]) Len() int {
	return s.q.Len()
}

// Cap returns the mailbox capacity, 0 meaning unbounded.
func (s *Sender[M]) Cap() int {
	return s.q.Cap()
}

func (s *Sender[M]) accepted(message M) {
	s.cfg.metrics.MessagePosted(s.cfg.name)
	s.cfg.metrics.MailboxDepth(s.cfg.name, s.q.Len())
	if s.cfg.interceptor != nil {
		s.cfg.interceptor(message)
	}
}

func (s *Sender[M]) postFailed() error {
	s.cfg.metrics.PostFailed(s.cfg.name)
	return ErrPostFailed
}
