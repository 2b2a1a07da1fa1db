package note

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storer is the persistence the Service depends on. Implementations do not validate, the Service only hands them
// notes it already accepted.
type Storer interface {
	Upsert(ctx context.Context, n Note) (Note, error)
	// Find reports false when there is no note with the id
	Find(ctx context.Context, id string) (Note, bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	// ListByCreatedAtDesc returns every note, newest first, ties ordered by id
	ListByCreatedAtDesc(ctx context.Context) ([]Note, error)
}

// Service owns the note lifecycle: validation, identity and timestamps. It holds no state besides its dependencies
// and is safe for concurrent use as long as the Storer is.
type Service struct {
	store Storer
	now   func() time.Time
	newID func() string
}

type Option func(s *Service)

// WithClock replaces the time source used for createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator replaces the id source used by Create
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(store Storer, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
