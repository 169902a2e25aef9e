package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoteLifecycleMessage travels over the in-process lifecycle topic.
type NoteLifecycleMessage struct {
	Type       string    `json:"type"`
	NoteId     uuid.UUID `json:"note_id"`
	Title      string    `json:"title"`
	LinkCount  int       `json:"link_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
