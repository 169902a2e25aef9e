package entity

import "github.com/google/uuid"

// Suggestion is a candidate link proposed for a staged note. Suggestions are
// ephemeral and are discarded once the note is committed.
type Suggestion struct {
	TargetNoteId          uuid.UUID `json:"target_note_id"`
	RelationshipTypeId    uuid.UUID `json:"relationship_type_id"`
	TargetNoteTitle       string    `json:"target_note_title,omitempty"`
	RelationshipTypeLabel string    `json:"relationship_type_label,omitempty"`
}
