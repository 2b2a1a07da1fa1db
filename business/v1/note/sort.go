package note

import "sort"

// SortByCreatedAtDesc orders notes newest first, notes created at the same instant are ordered by id
func SortByCreatedAtDesc(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}
