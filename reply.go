package mailbox

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ReplyChannel carries the single answer to an Ask. It is created by Ask
// and handed to the actor inside the request message.
type ReplyChannel[T any] struct {
	ch        chan T
	abandoned chan struct{}
	once      sync.Once
	used      atomic.Bool
	cfg       *config
}

func newReplyChannel[T any](cfg *config) *ReplyChannel[T] {
	return &ReplyChannel[T]{
		ch:        make(chan T, 1),
		abandoned: make(chan struct{}),
		cfg:       cfg,
	}
}

// Reply delivers value to the asker and closes the channel. It returns
// ErrReplyFailed if the asker stopped waiting or the channel was already
// used; the actor can log that and carry on.
func (rc *ReplyChannel[T]) Reply(value T) error {
	if !rc.used.CompareAndSwap(false, true) {
		return rc.failed("already used")
	}
	defer close(rc.ch)
	select {
	case <-rc.abandoned:
		return rc.failed("asker gone")
	default:
	}
	rc.ch <- value
	return nil
}

// Drop releases the channel without answering; the asker gets
// ErrReplyDropped. Dropping a used channel does nothing.
func (rc *ReplyChannel[T]) Drop() {
	if rc.used.CompareAndSwap(false, true) {
		close(rc.ch)
	}
}

func (rc *ReplyChannel[T]) failed(reason string) error {
	rc.cfg.metrics.ReplyFailed(rc.cfg.name)
	rc.cfg.logger.Debug("reply failed", slog.String("reason", reason))
	return ErrReplyFailed
}

func (rc *ReplyChannel[T]) abandon() {
	rc.once.Do(func() { close(rc.abandoned) })
}

func (rc *ReplyChannel[T]) await(ctx context.Context, gone <-chan struct{}) (T, error) {
	var zero T
	select {
	case value, ok := <-rc.ch:
		if !ok {
			return zero, ErrReplyDropped
		}
		return value, nil
	case <-ctx.Done():
		rc.abandon()
		return zero, ctx.Err()
	case <-gone:
		rc.abandon()
		// the actor may have answered right before it stopped
		select {
		case value, ok := <-rc.ch:
			if ok {
				return value, nil
			}
		default:
		}
		return zero, ErrReplyDropped
	}
}

// Ask posts the message produced by build and waits for the actor to
// answer on the reply channel build was given.
//
// Ask has no timeout of its own: an actor that keeps a request without
// answering or dropping it blocks the caller until ctx is done. If the
// actor stops while the request is pending, Ask returns ErrReplyDropped.
func Ask[M, T any](ctx context.Context, s *Sender[M], build func(*ReplyChannel[T]) M) (T, error) {
	defer s.cfg.metrics.AskDuration(s.cfg.name).ObserveDuration()

	rc := newReplyChannel[T](s.cfg)
	if err := s.Post(ctx, build(rc)); err != nil {
		rc.abandon()
		s.cfg.metrics.AskCompleted(s.cfg.name, false)
		var zero T
		return zero, err
	}
	value, err := rc.await(ctx, s.q.Gone())
	s.cfg.metrics.AskCompleted(s.cfg.name, err == nil)
	return value, err
}
