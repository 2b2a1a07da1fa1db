package note

import (
	"context"
	"fmt"
)

func (s *Store) Delete(ctx context.Context, id string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	if _, err := s.db.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	s.evict(ctx, fmt.Sprintf(noteKey, id))

	return nil
}
