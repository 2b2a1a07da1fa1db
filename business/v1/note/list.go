package note

import (
	"context"
)

// List returns every note, newest first. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.store.ListByCreatedAtDesc(ctx)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}
