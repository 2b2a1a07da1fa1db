package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ribgsilva/notesvault/business/v1/note"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatNoteListItem renders one line of `notes list`, long contents are cut to the first line
func FormatNoteListItem(n note.Note) string {
	return fmt.Sprintf("  %s  %s  %s\n", cyan(n.ID), faint(n.CreatedAt.Format(timeLayout)), bold(preview(n.Content, 60)))
}

func FormatNote(n note.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), cyan(n.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(n.CreatedAt.Format(timeLayout))))
	sb.WriteString(Separator())
	sb.WriteString(n.Content)
	sb.WriteString("\n")
	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("-", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("ok ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("error ") + msg
}

func preview(content string, limit int) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i] + "..."
	}
	if r := []rune(content); len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return content
}
