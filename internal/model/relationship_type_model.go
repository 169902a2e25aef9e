package model

import (
	"time"

	"github.com/google/uuid"
)

type RelationshipType struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Label     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_relationship_types_label_default,priority:1"`
	Color     string    `gorm:"type:varchar(20)"`
	IsDefault bool      `gorm:"not null;default:false;uniqueIndex:idx_relationship_types_label_default,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RelationshipType) TableName() string {
	return "relationship_types"
}
