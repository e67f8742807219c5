package mailbox

import "context"

// Handle tracks an actor started by one of the built-in strategies.
type Handle struct {
	done chan struct{}
	err  error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) run(run func() error) {
	defer close(h.done)
	h.err = run()
}

// Done is closed when the actor has returned.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the actor returns and reports its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Join is Wait bounded by ctx.
func (h *Handle) Join(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the actor's error, or nil while it is still running.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
