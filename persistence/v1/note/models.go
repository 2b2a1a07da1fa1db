package note

import "time"

const noteKey = "notes.%s"

// Note is the row layout of the notes table and the json cached in redis
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
