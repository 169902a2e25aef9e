package dto

import "github.com/google/uuid"

type CreateRelationshipTypeRequest struct {
	Label string `json:"label" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type RelationshipTypeResponse struct {
	Id        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
}
