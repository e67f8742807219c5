// Package prometheus provides a Prometheus implementation of
// mailbox.Metrics.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pkorotkov/mailbox"
)

// Default histogram buckets for ask latency (in seconds).
var defaultBuckets = []float64{
	.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5,
}

type timer struct {
	h     prometheus.Observer
	start time.Time
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

type metrics struct {
	postedTotal     *prometheus.CounterVec
	postFailedTotal *prometheus.CounterVec
	dequeuedTotal   *prometheus.CounterVec
	depth           *prometheus.GaugeVec
	askDuration     *prometheus.HistogramVec
	asksTotal       *prometheus.CounterVec
	replyFailed     *prometheus.CounterVec
	panicsTotal     *prometheus.CounterVec
}

// NewMetrics creates mailbox metrics and registers them with reg. Every
// series is labelled with the mailbox name set through mailbox.WithName.
func NewMetrics(reg prometheus.Registerer) mailbox.Metrics {
	m := &metrics{
		postedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_messages_posted_total",
			Help: "Total number of messages accepted by the mailbox",
		}, []string{"mailbox"}),

		postFailedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_post_failures_total",
			Help: "Total number of posts rejected because the mailbox was closed or stopped",
		}, []string{"mailbox"}),

		dequeuedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_messages_dequeued_total",
			Help: "Total number of messages taken by the actor",
		}, []string{"mailbox"}),

		depth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mailbox_depth",
			Help: "Current number of queued messages",
		}, []string{"mailbox"}),

		askDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mailbox_ask_duration_seconds",
			Help:    "Time from posting a request to receiving its reply",
			Buckets: defaultBuckets,
		}, []string{"mailbox"}),

		asksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_asks_total",
			Help: "Total number of completed asks",
		}, []string{"mailbox", "success"}),

		replyFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_reply_failures_total",
			Help: "Total number of replies that could not be delivered",
		}, []string{"mailbox"}),

		panicsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mailbox_actor_panics_total",
			Help: "Total number of actor bodies that panicked",
		}, []string{"mailbox"}),
	}

	reg.MustRegister(
		m.postedTotal,
		m.postFailedTotal,
		m.dequeuedTotal,
		m.depth,
		m.askDuration,
		m.asksTotal,
		m.replyFailed,
		m.panicsTotal,
	)

	return m
}

func (m *metrics) MessagePosted(name string) {
	m.postedTotal.WithLabelValues(name).Inc()
}

func (m *metrics) PostFailed(name string) {
	m.postFailedTotal.WithLabelValues(name).Inc()
}

func (m *metrics) MessageDequeued(name string) {
	m.dequeuedTotal.WithLabelValues(name).Inc()
}

func (m *metrics) MailboxDepth(name string, depth int) {
	m.depth.WithLabelValues(name).Set(float64(depth))
}

func (m *metrics) AskDuration(name string) mailbox.Timer {
	return &timer{h: m.askDuration.WithLabelValues(name), start: time.Now()}
}

func (m *metrics) AskCompleted(name string, success bool) {
	m.asksTotal.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}

func (m *metrics) ReplyFailed(name string) {
	m.replyFailed.WithLabelValues(name).Inc()
}

func (m *metrics) ActorPanicked(name string) {
	m.panicsTotal.WithLabelValues(name).Inc()
}

var _ mailbox.Metrics = (*metrics)(nil)
