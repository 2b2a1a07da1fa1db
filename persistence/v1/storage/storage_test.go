package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	business "github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/schema"
	"github.com/ribgsilva/notesvault/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func baseConfig() sys.Config {
	var cfg sys.Config
	cfg.Database.PingTimeout = 2 * time.Second
	cfg.Database.OperationTimeout = 5 * time.Second
	cfg.Cache.PingTimeout = 2 * time.Second
	cfg.Cache.OperationTimeout = time.Second
	cfg.Cache.CacheTTL = time.Hour
	return cfg
}

func TestOpenSQLiteWithCache(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := baseConfig()
	cfg.Database.Driver = sys.DriverSQLite
	cfg.Database.ConnectionURL = filepath.Join(t.TempDir(), "notes.db")
	cfg.Cache.Enabled = true
	cfg.Cache.ConnectionURL = s.Addr()

	st, err := Open(zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NotNil(t, st.DB)
	assert.Equal(t, schema.DialectSQLite, st.Dialect)
	require.NoError(t, schema.Create(context.Background(), st.DB, st.Dialect))

	svc := business.NewService(st.Notes)
	content := "hello world"
	created, err := svc.Create(context.Background(), business.NewNote{Content: &content})
	require.NoError(t, err)

	found, err := svc.Find(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Content, found.Content)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	assert.True(t, s.Exists("notes."+created.ID))
}

func TestOpenBadger(t *testing.T) {
	cfg := baseConfig()
	cfg.Database.Driver = sys.DriverBadger
	cfg.Database.KVPath = filepath.Join(t.TempDir(), "kv")

	st, err := Open(zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)

	assert.Nil(t, st.DB)
	svc := business.NewService(st.Notes)
	content := "kept on disk"
	created, err := svc.Create(context.Background(), business.NewNote{Content: &content})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// reopening the same path sees the note
	st, err = Open(zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	defer st.Close()

	found, err := business.NewService(st.Notes).Find(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept on disk", found.Content)
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := baseConfig()
	cfg.Database.Driver = "oracle"

	_, err := Open(zap.NewNop().Sugar(), cfg)
	assert.ErrorContains(t, err, "oracle")
}
