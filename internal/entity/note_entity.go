package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteStatus string

const (
	NoteStatusStaged    NoteStatus = "staged"
	NoteStatusCommitted NoteStatus = "committed"
)

const (
	DefaultNoteTitle    = "Untitled Note"
	DefaultNoteCategory = "Fleeting"
)

// NoteLink is a directed, typed edge owned by the source note.
type NoteLink struct {
	TargetNoteId       uuid.UUID
	RelationshipTypeId uuid.UUID
}

type Note struct {
	Id          uuid.UUID
	Title       string
	Body        string
	Category    string
	IsPermanent bool
	Status      NoteStatus
	Source      *string
	Links       []NoteLink
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (n *Note) IsStaged() bool {
	return n.Status == NoteStatusStaged
}

// Commit moves the note to committed and replaces its links wholesale.
func (n *Note) Commit(links []NoteLink, at time.Time) {
	n.Status = NoteStatusCommitted
	n.Links = append([]NoteLink{}, links...)
	n.UpdatedAt = at
}

// Backlink is the reverse view of a NoteLink, computed at read time.
type Backlink struct {
	SourceNoteId       uuid.UUID
	SourceNoteTitle    string
	RelationshipTypeId uuid.UUID
}
