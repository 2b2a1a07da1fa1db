package note

import (
	"encoding/json"
	"time"
)

type Note struct {
	ID        string    `json:"id" example:"6f1c1a4e-8d55-4b5e-9b39-0e5d1c1f4a7e"`
	Content   string    `json:"content" example:"my note text"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// NewNote is the input of Create, a nil Content is treated as empty
type NewNote struct {
	Content *string `json:"content" example:"my note text"`
}

// UpdateNote is the input of Update, a nil Content is treated as empty
type UpdateNote struct {
	Content *string `json:"content" example:"my new note text"`
}

// Event is a lifecycle command received through messaging, Data is decoded according to Type
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Event types understood by the consumer
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)
