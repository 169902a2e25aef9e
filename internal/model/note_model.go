package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NoteLink is the jsonb shape of an edge inside notes.links.
type NoteLink struct {
	TargetNoteId       uuid.UUID `json:"targetNoteId"`
	RelationshipTypeId uuid.UUID `json:"relationshipTypeId"`
}

type Note struct {
	Id          uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string                        `gorm:"type:varchar(255);not null"`
	Body        string                        `gorm:"type:text"`
	Category    string                        `gorm:"type:varchar(100);not null;default:'Fleeting'"`
	IsPermanent bool                          `gorm:"not null;default:false"`
	Status      string                        `gorm:"type:varchar(20);not null;default:'staged';index:idx_notes_status_updated,priority:1"`
	Source      *string                       `gorm:"type:text"`
	Links       datatypes.JSONSlice[NoteLink] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                     `gorm:"autoUpdateTime;index:idx_notes_status_updated,priority:2"`
}

func (Note) TableName() string {
	return "notes"
}
