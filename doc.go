// Package mailbox provides a minimal actor primitive: a queue plus the single
// loop that consumes it, decoupled from how that loop is run.
//
// A mailbox is created as a matched pair. The caller keeps a [Mailbox],
// which embeds a multi-producer [Sender] and the handle returned by the
// spawn [Strategy]. The actor gets the one [Context], the only way to
// receive from the queue:
//
//	type msg interface{}
//	type inc struct{}
//	type get struct{ reply *mailbox.ReplyChannel[int] }
//
//	mb := mailbox.StartMailboxAsTask(mailbox.Unbounded(), func(c *mailbox.Context[msg]) error {
//		n := 0
//		for {
//			m, err := c.Dequeue(context.Background())
//			if err != nil {
//				return err
//			}
//			switch m := m.(type) {
//			case inc:
//				n++
//			case get:
//				_ = m.reply.Reply(n)
//			}
//		}
//	})
//	defer mb.Close()
//
//	_ = mb.Post(ctx, inc{})
//	n, err := mailbox.Ask(ctx, mb.Sender, func(rc *mailbox.ReplyChannel[int]) msg { return get{rc} })
//
// Requests are correlated by their [ReplyChannel], never by identifiers.
// Closing every sender ends the actor: once the backlog is drained,
// [Context.Dequeue] returns [ErrContextClosed].
package mailbox
