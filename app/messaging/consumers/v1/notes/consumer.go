package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// TransactionName is the New Relic transaction every message runs in
const TransactionName = "note-event"

// Consumer applies note events to the Service
type Consumer struct {
	Log     *zap.SugaredLogger
	Service *note.Service
	// NR may be nil
	NR *newrelic.Application
}

type payload struct {
	ID      string  `json:"id"`
	Content *string `json:"content"`
}

// Consume receives until ctx is done, running at most maxWorkers messages at once. In-flight messages are finished
// before it returns. Every message is acked, failures are only logged.
func (c Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	// in-flight messages outlive the receive loop
	workCtx := context.WithoutCancel(ctx)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			c.process(workCtx, m.Body)
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	// a cancelled ctx is the normal way out
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (c Consumer) process(ctx context.Context, body []byte) {
	txn := c.NR.StartTransaction(TransactionName)
	defer txn.End()

	c.Log.Infow("messaging", "status", "message received", "size", len(body))
	if err := c.Handle(newrelic.NewContext(ctx, txn), body); err != nil {
		txn.NoticeError(err)
		c.Log.Errorw("messaging", "status", "failed to handle message", "kind", note.KindOf(err).String(), "ERROR", err)
	}
}

// Handle decodes one message body and applies it
func (c Consumer) Handle(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	var p payload
	if len(e.Data) > 0 {
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
	}

	switch e.Type {
	case note.EventCreate:
		n, err := c.Service.Create(ctx, note.NewNote{Content: p.Content})
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		c.Log.Infow("messaging", "status", "note created", "id", n.ID)
	case note.EventUpdate:
		if _, err := c.Service.Update(ctx, p.ID, note.UpdateNote{Content: p.Content}); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		c.Log.Infow("messaging", "status", "note updated", "id", p.ID)
	case note.EventDelete:
		if err := c.Service.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		c.Log.Infow("messaging", "status", "note deleted", "id", p.ID)
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}
