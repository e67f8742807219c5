// Package unit runs behaviour-style actors, objects with a Receive method,
// on top of a mailbox loop.
package unit

import (
	"context"

	"github.com/pkorotkov/mailbox"
)

type (
	// Actor is a contract to implement for objects which can be units.
	Actor[M any] interface {
		// Receive keeps the business logic of how the actor handles
		// messages. It is called from a single goroutine, one message at
		// a time, so the actor's state needs no locking.
		Receive(message M)

		// StopCallback is a function called right after the unit stops
		// processing messages. It may be nil.
		StopCallback() func()
	}

	// SelfAware is implemented by actors that need their own unit, e.g. to
	// post messages to themselves.
	SelfAware[M any] interface {
		SetSelf(*Unit[M])
	}
)

// Unit is a lightweight wrapper binding an actor to its mailbox.
type Unit[M any] struct {
	mb *mailbox.Mailbox[M, *mailbox.Handle]
}

// New starts actor with the given bounds and strategy.
func New[M any](actor Actor[M], bounds mailbox.Bounds, strategy mailbox.Strategy[*mailbox.Handle], options ...mailbox.Option) *Unit[M] {
	unit := &Unit[M]{}
	if sa, ok := actor.(SelfAware[M]); ok {
		sa.SetSelf(unit)
	}
	unit.mb = mailbox.StartMailbox(bounds, loop(actor), strategy, options...)
	return unit
}

func loop[M any](actor Actor[M]) mailbox.Body[M] {
	return func(c *mailbox.Context[M]) error {
		defer func() {
			if scb := actor.StopCallback(); scb != nil {
				scb()
			}
		}()
		for {
			message, err := c.Dequeue(context.Background())
			if err != nil {
				return err
			}
			actor.Receive(message)
		}
	}
}

// Send sends a message to the unit (actor).
func (unit *Unit[M]) Send(ctx context.Context, message M) error {
	return unit.mb.Post(ctx, message)
}

// Sender returns the unit's sender, for Ask or for handing out clones.
func (unit *Unit[M]) Sender() *mailbox.Sender[M] {
	return unit.mb.Sender
}

// Stop closes the unit's mailbox. The actor handles what is already queued
// and then stops.
func (unit *Unit[M]) Stop() {
	unit.mb.Close()
}

// Stopped reports whether the unit (actor) has finished.
func (unit *Unit[M]) Stopped() bool {
	select {
	case <-unit.mb.Handle.Done():
		return true
	default:
		return false
	}
}

// Wait blocks until the unit (actor) has finished.
func (unit *Unit[M]) Wait() error {
	return unit.mb.Handle.Wait()
}

// MailboxSize returns the number of pending messages.
func (unit *Unit[M]) MailboxSize() int {
	return unit.mb.Len()
}
