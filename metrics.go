package mailbox

// Timer measures the duration of an operation.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// Metrics receives mailbox instrumentation. Implementations must be safe
// for concurrent use. The name argument is the label set with WithName.
type Metrics interface {
	MessagePosted(name string)
	PostFailed(name string)
	MessageDequeued(name string)
	MailboxDepth(name string, depth int)

	AskDuration(name string) Timer
	AskCompleted(name string, success bool)
	ReplyFailed(name string)

	ActorPanicked(name string)
}

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

type nopMetrics struct{}

func (nopMetrics) MessagePosted(string)      {}
func (nopMetrics) PostFailed(string)         {}
func (nopMetrics) MessageDequeued(string)    {}
func (nopMetrics) MailboxDepth(string, int)  {}
func (nopMetrics) AskDuration(string) Timer  { return nopTimer{} }
func (nopMetrics) AskCompleted(string, bool) {}
func (nopMetrics) ReplyFailed(string)        {}
func (nopMetrics) ActorPanicked(string)      {}

// NopMetrics returns a Metrics that discards everything.
func NopMetrics() Metrics { return nopMetrics{} }
