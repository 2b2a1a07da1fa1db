package note

import (
	"context"
	"fmt"
	business "github.com/ribgsilva/notesvault/business/v1/note"
)

// ListByCreatedAtDesc always reads from the database, the cache only holds single notes
func (s *Store) ListByCreatedAtDesc(ctx context.Context) ([]business.Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT id, content, createdAt FROM notes ORDER BY createdAt DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]business.Note, 0)
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		n.CreatedAt = n.CreatedAt.UTC()
		notes = append(notes, business.Note(n))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list rows: %w", err)
	}

	// the database has no say on ties
	business.SortByCreatedAtDesc(notes)

	return notes, nil
}
