package entity

import (
	"time"

	"github.com/google/uuid"
)

type RelationshipType struct {
	Id        uuid.UUID
	Label     string
	Color     string
	IsDefault bool
	CreatedAt time.Time
}
