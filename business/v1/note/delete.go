package note

import (
	"context"
)

// Delete removes a note, deleting an id that does not exist is a NotFoundError and never a no-op
func (s *Service) Delete(ctx context.Context, id string) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{ID: id}
	}
	return s.store.Delete(ctx, id)
}
