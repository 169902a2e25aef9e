package dto

import "github.com/google/uuid"

type SuggestionRequest struct {
	TargetNoteId          string `json:"targetNoteId"`
	RelationshipTypeId    string `json:"relationshipTypeId"`
	TargetNoteTitle       string `json:"targetNoteTitle"`
	RelationshipTypeLabel string `json:"relationshipTypeLabel"`
}

type SaveSuggestionsRequest struct {
	NoteId uuid.UUID           `json:"-"`
	Links  []SuggestionRequest `json:"links"`
}

type SuggestionResponse struct {
	TargetNoteId          uuid.UUID `json:"targetNoteId"`
	RelationshipTypeId    uuid.UUID `json:"relationshipTypeId"`
	TargetNoteTitle       string    `json:"targetNoteTitle,omitempty"`
	RelationshipTypeLabel string    `json:"relationshipTypeLabel,omitempty"`
}
