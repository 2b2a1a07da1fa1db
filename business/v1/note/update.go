package note

import (
	"context"
)

// Update replaces the content of an existing note. The content is validated before the store is consulted, id and
// createdAt are kept. Concurrent updates are last write wins.
func (s *Service) Update(ctx context.Context, id string, upN UpdateNote) (Note, error) {
	content, err := validContent(upN.Content)
	if err != nil {
		return Note{}, err
	}

	n, err := s.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	n.Content = content
	return s.store.Upsert(ctx, n)
}
