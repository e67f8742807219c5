package mailbox

import "fmt"

type _Error string

func (e _Error) Error() string {
	return string(e)
}

const (
	// ErrContextClosed is returned by Dequeue once every sender is closed
	// and the backlog is drained.
	ErrContextClosed = _Error("mailbox context closed")
	// ErrPostFailed is returned when posting through a closed sender or to
	// a mailbox whose actor has stopped.
	ErrPostFailed = _Error("mailbox post failed")
	// ErrMailboxFull is returned by TryPost when a bounded mailbox has no room.
	ErrMailboxFull = _Error("mailbox is full")
	// ErrReplyFailed is returned by Reply when the asker stopped waiting or
	// the reply channel was already used.
	ErrReplyFailed = _Error("mailbox reply failed")
	// ErrReplyDropped is returned by Ask when the reply channel was released
	// without a value or the actor stopped before answering.
	ErrReplyDropped = _Error("mailbox reply dropped")
	// ErrContextInUse is returned by Run when the context already drives a body.
	ErrContextInUse = _Error("mailbox context already running")
)

// PanicError is returned by Run when the actor body panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("mailbox actor panicked: %v", e.Value)
}
