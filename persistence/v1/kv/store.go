package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dgraph-io/badger/v3"
	business "github.com/ribgsilva/notesvault/business/v1/note"
	"time"
)

// NotePrefix is the key prefix for notes
const NotePrefix = "note:"

// noteData is the json value stored under NotePrefix+id
type noteData struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps notes in an embedded badger database
type Store struct {
	db *badger.DB
}

// Open opens the badger database at path, an empty path keeps everything in memory
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func noteKey(id string) []byte {
	return []byte(NotePrefix + id)
}

// Upsert writes the note, an existing note keeps its createdAt
func (s *Store) Upsert(ctx context.Context, n business.Note) (business.Note, error) {
	if err := ctx.Err(); err != nil {
		return business.Note{}, err
	}

	data := noteData(n)
	data.CreatedAt = data.CreatedAt.UTC()

	err := s.db.Update(func(txn *badger.Txn) error {
		current, err := get(txn, n.ID)
		switch {
		case err == nil:
			data.CreatedAt = current.CreatedAt
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal note: %w", err)
		}
		return txn.Set(noteKey(n.ID), encoded)
	})
	if err != nil {
		return business.Note{}, fmt.Errorf("failed to upsert note %s: %w", n.ID, err)
	}

	return business.Note(data), nil
}

func (s *Store) Find(ctx context.Context, id string) (business.Note, bool, error) {
	if err := ctx.Err(); err != nil {
		return business.Note{}, false, err
	}

	var data noteData
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		data, err = get(txn, id)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return business.Note{}, false, nil
	case err != nil:
		return business.Note{}, false, fmt.Errorf("failed to find note %s: %w", id, err)
	}
	return business.Note(data), true, nil
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(noteKey(id))
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to check note %s: %w", id, err)
	}
	return true, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(noteKey(id))
	}); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return nil
}

func (s *Store) ListByCreatedAtDesc(ctx context.Context) ([]business.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notes := make([]business.Note, 0)
	prefix := []byte(NotePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var data noteData
				if err := json.Unmarshal(val, &data); err != nil {
					return fmt.Errorf("unmarshal note: %w", err)
				}
				notes = append(notes, business.Note(data))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	business.SortByCreatedAtDesc(notes)

	return notes, nil
}

func get(txn *badger.Txn, id string) (noteData, error) {
	item, err := txn.Get(noteKey(id))
	if err != nil {
		return noteData{}, err
	}

	var data noteData
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &data)
	})
	if err != nil {
		return noteData{}, fmt.Errorf("unmarshal note: %w", err)
	}
	return data, nil
}
