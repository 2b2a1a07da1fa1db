package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	business "github.com/ribgsilva/notesvault/business/v1/note"
)

const findStmt = "SELECT id, content, createdAt FROM notes WHERE id = ?"

// Find looks the note up in the cache first, a database hit is written back to the cache
func (s *Store) Find(ctx context.Context, id string) (business.Note, bool, error) {
	key := fmt.Sprintf(noteKey, id)

	if n, ok := s.fromCache(ctx, key); ok {
		return business.Note(n), true, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	var n Note
	err := s.db.QueryRowContext(dbCtx, findStmt, id).Scan(&n.ID, &n.Content, &n.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return business.Note{}, false, nil
	case err != nil:
		return business.Note{}, false, fmt.Errorf("failed to query find stmt: %w", err)
	}
	n.CreatedAt = n.CreatedAt.UTC()

	s.toCache(ctx, key, n)

	return business.Note(n), true, nil
}

// Exists trusts a cached entry, otherwise asks the database
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	if s.cached(ctx, fmt.Sprintf(noteKey, id)) {
		return true, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	return s.exists(dbCtx, id)
}

func (s *Store) exists(ctx context.Context, id string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM notes WHERE id = ?", id).Scan(&found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query exists stmt: %w", err)
	default:
		return true, nil
	}
}
