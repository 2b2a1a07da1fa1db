package note_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ribgsilva/notesvault/business/v1/note"
	"pgregory.net/rapid"
)

func whitespaceGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[ \t\n\r]{0,20}`)
}

func contentGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9]([A-Za-z0-9 .,!?]{0,80}[A-Za-z0-9])?`)
}

func TestNormalizeNil(t *testing.T) {
	if got := note.Normalize(nil); got != "" {
		t.Fatalf("Normalize(nil) = %q, want empty", got)
	}
}

func TestBlankContentIsAlwaysRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blank := whitespaceGenerator().Draw(t, "blank")
		store := newFakeStore(note.Note{ID: "existing", Content: "keep me", CreatedAt: fixedNow})
		svc := newService(store)

		if _, err := svc.Create(context.Background(), note.NewNote{Content: &blank}); !errors.Is(err, note.ErrInvalidContent) {
			t.Fatalf("Create(%q) error = %v, want ErrInvalidContent", blank, err)
		}
		if _, err := svc.Update(context.Background(), "existing", note.UpdateNote{Content: &blank}); !errors.Is(err, note.ErrInvalidContent) {
			t.Fatalf("Update(%q) error = %v, want ErrInvalidContent", blank, err)
		}
		if len(store.calls) != 0 {
			t.Fatalf("store was called for blank content: %v", store.calls)
		}
	})
}

func TestCreateStoresTrimmedContent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := whitespaceGenerator().Draw(t, "left") + contentGenerator().Draw(t, "content") + whitespaceGenerator().Draw(t, "right")
		store := newFakeStore()

		saved, err := note.NewService(store).Create(context.Background(), note.NewNote{Content: &raw})
		if err != nil {
			t.Fatalf("Create(%q) unexpected error: %v", raw, err)
		}
		if saved.Content != strings.TrimSpace(raw) {
			t.Fatalf("Create(%q).Content = %q, want %q", raw, saved.Content, strings.TrimSpace(raw))
		}
		if saved.ID == "" {
			t.Fatalf("Create(%q) returned an empty id", raw)
		}
	})
}

func TestUpdateKeepsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		createdAt := time.Unix(rapid.Int64Range(0, 4102444800).Draw(t, "createdAt"), 0).UTC()
		original := note.Note{ID: "keep-me", Content: "original", CreatedAt: createdAt}
		content := contentGenerator().Draw(t, "content")
		store := newFakeStore(original)

		updated, err := newService(store).Update(context.Background(), "keep-me", note.UpdateNote{Content: &content})
		if err != nil {
			t.Fatalf("Update unexpected error: %v", err)
		}
		if updated.ID != original.ID || !updated.CreatedAt.Equal(original.CreatedAt) {
			t.Fatalf("Update changed identity: got %+v, original %+v", updated, original)
		}
		if updated.Content != content {
			t.Fatalf("Update content = %q, want %q", updated.Content, content)
		}
	})
}

func TestListIsOrderedByCreatedAtDesc(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offsets := rapid.SliceOfNDistinct(rapid.IntRange(0, 100000), 0, 30, rapid.ID[int]).Draw(t, "offsets")
		store := newFakeStore()
		base := time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC)
		for i, off := range offsets {
			id := string(rune('a'+i%26)) + strings.Repeat("x", i/26)
			store.notes[id] = note.Note{ID: id, Content: "c", CreatedAt: base.Add(time.Duration(off) * time.Second)}
		}

		notes, err := newService(store).List(context.Background())
		if err != nil {
			t.Fatalf("List unexpected error: %v", err)
		}
		if len(notes) != len(offsets) {
			t.Fatalf("List returned %d notes, want %d", len(notes), len(offsets))
		}
		for i := 1; i < len(notes); i++ {
			if !notes[i-1].CreatedAt.After(notes[i].CreatedAt) {
				t.Fatalf("notes %d and %d out of order: %v then %v", i-1, i, notes[i-1].CreatedAt, notes[i].CreatedAt)
			}
		}
	})
}
