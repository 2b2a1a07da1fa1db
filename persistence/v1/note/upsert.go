package note

import (
	"context"
	"fmt"
	business "github.com/ribgsilva/notesvault/business/v1/note"
	"time"
)

// Upsert updates the content of an existing row or inserts a new one. createdAt is only written on insert.
func (s *Store) Upsert(ctx context.Context, bn business.Note) (business.Note, error) {
	n := Note(bn)
	n.CreatedAt = n.CreatedAt.UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	res, err := s.db.ExecContext(dbCtx, "UPDATE notes SET content = ? WHERE id = ?", n.Content, n.ID)
	if err != nil {
		return business.Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	// mysql reports 0 affected rows when the content did not change, so 0 only means "maybe missing"
	exists := true
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		if exists, err = s.exists(dbCtx, n.ID); err != nil {
			return business.Note{}, err
		}
	}

	if exists {
		// the row keeps the createdAt it was inserted with
		var createdAt time.Time
		if err := s.db.QueryRowContext(dbCtx, "SELECT createdAt FROM notes WHERE id = ?", n.ID).Scan(&createdAt); err != nil {
			return business.Note{}, fmt.Errorf("failed to query createdAt: %w", err)
		}
		n.CreatedAt = createdAt.UTC()
	} else {
		_, err := s.db.ExecContext(dbCtx, "INSERT INTO notes (id, content, createdAt) VALUES (?, ?, ?)", n.ID, n.Content, n.CreatedAt)
		if err != nil {
			return business.Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
		}
	}

	s.toCache(ctx, fmt.Sprintf(noteKey, n.ID), n)

	return business.Note(n), nil
}
