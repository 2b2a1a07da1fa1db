package note

import (
	"context"
	"time"
)

// Create validates newN and stores it under a fresh id. Blank content never reaches the store.
func (s *Service) Create(ctx context.Context, newN NewNote) (Note, error) {
	content, err := validContent(newN.Content)
	if err != nil {
		return Note{}, err
	}

	// microseconds are the finest precision every backend keeps
	n := Note{
		ID:        s.newID(),
		Content:   content,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	return s.store.Upsert(ctx, n)
}
