package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/ribgsilva/notesvault/business/v1/note"
)

func init() {
	color.NoColor = true
}

func TestFormatNoteListItem(t *testing.T) {
	n := note.Note{
		ID:        "abc",
		Content:   "first line\nsecond line",
		CreatedAt: time.Date(2026, 2, 21, 10, 30, 0, 0, time.UTC),
	}

	output := FormatNoteListItem(n)

	if !strings.Contains(output, "abc") {
		t.Error("expected output to contain the id")
	}
	if !strings.Contains(output, "2026-02-21 10:30:00") {
		t.Error("expected output to contain createdAt")
	}
	if !strings.Contains(output, "first line...") {
		t.Errorf("expected only the first line of the content, got %q", output)
	}
	if strings.Contains(output, "second line") {
		t.Error("expected the second line to be cut")
	}
}

func TestFormatNote(t *testing.T) {
	n := note.Note{ID: "abc", Content: "line one\nline two", CreatedAt: time.Now()}

	output := FormatNote(n)

	if !strings.Contains(output, "ID: abc") {
		t.Errorf("expected output to contain the id, got %q", output)
	}
	if !strings.Contains(output, "line one\nline two") {
		t.Error("expected the whole content")
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("é", 70)

	if got := preview(long, 60); got != strings.Repeat("é", 60)+"..." {
		t.Errorf("expected a 60 rune preview, got %q", got)
	}
	if got := preview("short", 60); got != "short" {
		t.Errorf("expected short content untouched, got %q", got)
	}
}

func TestSuccessAndError(t *testing.T) {
	if got := Success("done"); got != "ok done" {
		t.Errorf("unexpected success message %q", got)
	}
	if got := Error("boom"); got != "error boom" {
		t.Errorf("unexpected error message %q", got)
	}
}
