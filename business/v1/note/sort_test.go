package note_test

import (
	"testing"
	"time"

	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/stretchr/testify/assert"
)

func TestSortByCreatedAtDesc(t *testing.T) {
	same := time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC)
	notes := []note.Note{
		{ID: "b", CreatedAt: same},
		{ID: "old", CreatedAt: same.Add(-time.Hour)},
		{ID: "a", CreatedAt: same},
		{ID: "new", CreatedAt: same.Add(time.Hour)},
	}

	note.SortByCreatedAtDesc(notes)

	var ids []string
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"new", "a", "b", "old"}, ids)
}
