package prometheus

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pkorotkov/mailbox"
)

type echo struct {
	value int
	reply *mailbox.ReplyChannel[int]
}

func echoBody(c *mailbox.Context[echo]) error {
	for {
		m, err := c.Dequeue(context.Background())
		if err != nil {
			return err
		}
		if m.reply != nil {
			_ = m.reply.Reply(m.value)
		}
	}
}

func TestMetrics(t *testing.T) {
	t.Run("mailbox-traffic", func(t *testing.T) {
		c := qt.New(t)
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg)
		ctx := context.Background()

		mb := mailbox.StartMailboxAsTask(mailbox.Unbounded(), echoBody,
			mailbox.WithName("echo"), mailbox.WithMetrics(m))

		c.Assert(mb.Post(ctx, echo{value: 1}), qt.IsNil)
		v, err := mailbox.Ask(ctx, mb.Sender, func(rc *mailbox.ReplyChannel[int]) echo {
			return echo{value: 2, reply: rc}
		})
		c.Assert(err, qt.IsNil)
		c.Assert(v, qt.Equals, 2)

		mb.Close()
		c.Assert(mb.Handle.Wait(), qt.IsNil)
		c.Assert(mb.Post(ctx, echo{}), qt.ErrorIs, mailbox.ErrPostFailed)

		c.Assert(testutil.ToFloat64(m.(*metrics).postedTotal.WithLabelValues("echo")), qt.Equals, 2.0)
		c.Assert(testutil.ToFloat64(m.(*metrics).dequeuedTotal.WithLabelValues("echo")), qt.Equals, 2.0)
		c.Assert(testutil.ToFloat64(m.(*metrics).postFailedTotal.WithLabelValues("echo")), qt.Equals, 1.0)
		c.Assert(testutil.ToFloat64(m.(*metrics).asksTotal.WithLabelValues("echo", "true")), qt.Equals, 1.0)
	})

	t.Run("registered-families", func(t *testing.T) {
		c := qt.New(t)
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg)

		m.MessagePosted("a")
		m.PostFailed("a")
		m.MessageDequeued("a")
		m.MailboxDepth("a", 3)
		m.AskDuration("a").ObserveDuration()
		m.AskCompleted("a", false)
		m.ReplyFailed("a")
		m.ActorPanicked("a")

		mfs, err := reg.Gather()
		c.Assert(err, qt.IsNil)
		names := make(map[string]bool)
		for _, mf := range mfs {
			names[mf.GetName()] = true
		}
		for _, name := range []string{
			"mailbox_messages_posted_total",
			"mailbox_post_failures_total",
			"mailbox_messages_dequeued_total",
			"mailbox_depth",
			"mailbox_ask_duration_seconds",
			"mailbox_asks_total",
			"mailbox_reply_failures_total",
			"mailbox_actor_panics_total",
		} {
			c.Assert(names[name], qt.IsTrue, qt.Commentf("missing %s", name))
		}
	})
}
