package note

import (
	"context"
)

func (s *Service) Find(ctx context.Context, id string) (Note, error) {
	n, found, err := s.store.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, &NotFoundError{ID: id}
	}
	return n, nil
}
