package note_test

import (
	"context"

	"github.com/ribgsilva/notesvault/business/v1/note"
)

// fakeStore keeps notes in a map and records every call as "op:id" so tests can check what the service touched
type fakeStore struct {
	notes map[string]note.Note
	calls []string
	err   error
}

func newFakeStore(seed ...note.Note) *fakeStore {
	s := &fakeStore{notes: make(map[string]note.Note)}
	for _, n := range seed {
		s.notes[n.ID] = n
	}
	return s
}

func (s *fakeStore) Upsert(_ context.Context, n note.Note) (note.Note, error) {
	s.calls = append(s.calls, "upsert:"+n.ID)
	if s.err != nil {
		return note.Note{}, s.err
	}
	s.notes[n.ID] = n
	return n, nil
}

func (s *fakeStore) Find(_ context.Context, id string) (note.Note, bool, error) {
	s.calls = append(s.calls, "find:"+id)
	if s.err != nil {
		return note.Note{}, false, s.err
	}
	n, ok := s.notes[id]
	return n, ok, nil
}

func (s *fakeStore) Exists(_ context.Context, id string) (bool, error) {
	s.calls = append(s.calls, "exists:"+id)
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.notes[id]
	return ok, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.calls = append(s.calls, "delete:"+id)
	if s.err != nil {
		return s.err
	}
	delete(s.notes, id)
	return nil
}

func (s *fakeStore) ListByCreatedAtDesc(_ context.Context) ([]note.Note, error) {
	s.calls = append(s.calls, "list")
	if s.err != nil {
		return nil, s.err
	}
	var notes []note.Note
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	note.SortByCreatedAtDesc(notes)
	return notes, nil
}
