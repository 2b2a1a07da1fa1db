package schema

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestSQLiteSchema(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Create(ctx, db, DialectSQLite))
	// sqlite and mysql schemas are idempotent
	require.NoError(t, Create(ctx, db, DialectSQLite))

	_, err = db.ExecContext(ctx, "INSERT INTO notes (id, content, createdAt) VALUES (?, ?, ?)", "1", "hello", "2026-02-21 00:00:00")
	require.NoError(t, err)

	require.NoError(t, Drop(ctx, db, DialectSQLite))

	_, err = db.ExecContext(ctx, "SELECT id FROM notes")
	assert.Error(t, err)
}

func TestUnknownDialect(t *testing.T) {
	err := Create(context.Background(), nil, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create schema")
	assert.Contains(t, err.Error(), "oracle")

	err = Drop(context.Background(), nil, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drop schema")
}
