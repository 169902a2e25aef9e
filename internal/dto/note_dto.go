package dto

import (
	"time"

	"github.com/google/uuid"
)

// LinkRequest is a raw edge as supplied by the caller. Ids stay strings
// until the link graph parses them.
type LinkRequest struct {
	TargetNoteId       string `json:"targetNoteId"`
	RelationshipTypeId string `json:"relationshipTypeId"`
}

type CreateNoteRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Category *string `json:"category"`
	Source   *string `json:"source"`
}

type ListNotesRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=staged committed"`
	Query  string `query:"q"`
}

// UpdateNoteRequest carries only the keys the caller supplied; nil means
// "leave unchanged".
type UpdateNoteRequest struct {
	Id          uuid.UUID      `json:"-"`
	Title       *string        `json:"title"`
	Body        *string        `json:"body"`
	Category    *string        `json:"category"`
	IsPermanent *bool          `json:"isPermanent"`
	Source      *string        `json:"source"`
	Links       *[]LinkRequest `json:"links"`
}

type CommitNoteRequest struct {
	Id    uuid.UUID     `json:"-"`
	Links []LinkRequest `json:"links"`
}

type LinkResponse struct {
	TargetNoteId       uuid.UUID `json:"targetNoteId"`
	RelationshipTypeId uuid.UUID `json:"relationshipTypeId"`
}

type BacklinkResponse struct {
	SourceNoteId       uuid.UUID `json:"sourceNoteId"`
	SourceNoteTitle    string    `json:"sourceNoteTitle"`
	RelationshipTypeId uuid.UUID `json:"relationshipTypeId"`
}

type NoteResponse struct {
	Id          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Category    string         `json:"category"`
	IsPermanent bool           `json:"isPermanent"`
	Status      string         `json:"status"`
	Source      *string        `json:"source"`
	Links       []LinkResponse `json:"links"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ShowNoteResponse struct {
	NoteResponse
	Backlinks []BacklinkResponse `json:"backlinks"`
}
