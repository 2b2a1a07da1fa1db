package notes

import (
	"context"
	"testing"

	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConsumer(t *testing.T) (Consumer, *kv.Store) {
	t.Helper()

	store, err := kv.Open("")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	svc := note.NewService(store, note.WithIDGenerator(func() string { return "fixed" }))
	return Consumer{Log: zap.NewNop().Sugar(), Service: svc}, store
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("create update delete", func(t *testing.T) {
		c, store := newConsumer(t)

		require.NoError(t, c.Handle(ctx, []byte(`{"type":"create","data":{"content":" hi "}}`)))
		n, found, err := store.Find(ctx, "fixed")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "hi", n.Content)

		require.NoError(t, c.Handle(ctx, []byte(`{"type":"update","data":{"id":"fixed","content":"bye"}}`)))
		updated, _, err := store.Find(ctx, "fixed")
		require.NoError(t, err)
		assert.Equal(t, "bye", updated.Content)
		assert.True(t, updated.CreatedAt.Equal(n.CreatedAt))

		require.NoError(t, c.Handle(ctx, []byte(`{"type":"delete","data":{"id":"fixed"}}`)))
		exists, err := store.Exists(ctx, "fixed")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("failures keep their kind", func(t *testing.T) {
		c, _ := newConsumer(t)

		err := c.Handle(ctx, []byte(`{"type":"create","data":{"content":"  "}}`))
		assert.Equal(t, note.KindInvalidContent, note.KindOf(err))

		err = c.Handle(ctx, []byte(`{"type":"create","data":{}}`))
		assert.Equal(t, note.KindInvalidContent, note.KindOf(err))

		err = c.Handle(ctx, []byte(`{"type":"update","data":{"id":"missing","content":"x"}}`))
		assert.Equal(t, note.KindNotFound, note.KindOf(err))

		err = c.Handle(ctx, []byte(`{"type":"delete","data":{"id":"missing"}}`))
		assert.ErrorIs(t, err, note.ErrNotFound)
	})

	t.Run("rejects malformed messages", func(t *testing.T) {
		c, _ := newConsumer(t)

		assert.Error(t, c.Handle(ctx, []byte(`not json`)))
		assert.Error(t, c.Handle(ctx, []byte(`{"type":"create","data":"text"}`)))
		assert.ErrorContains(t, c.Handle(ctx, []byte(`{"type":"archive","data":{"id":"x"}}`)), "unknown event type")
	})

	t.Run("process survives a nil new relic app", func(t *testing.T) {
		c, store := newConsumer(t)

		c.process(ctx, []byte(`{"type":"create","data":{"content":"traced"}}`))
		c.process(ctx, []byte(`garbage`))

		n, found, err := store.Find(ctx, "fixed")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "traced", n.Content)
	})
}
