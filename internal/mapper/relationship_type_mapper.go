package mapper

import (
	"notegraph-be/internal/entity"
	"notegraph-be/internal/model"
)

type RelationshipTypeMapper struct{}

func NewRelationshipTypeMapper() *RelationshipTypeMapper {
	return &RelationshipTypeMapper{}
}

func (m *RelationshipTypeMapper) ToEntity(r *model.RelationshipType) *entity.RelationshipType {
	if r == nil {
		return nil
	}
	return &entity.RelationshipType{
		Id:        r.Id,
		Label:     r.Label,
		Color:     r.Color,
		IsDefault: r.IsDefault,
		CreatedAt: r.CreatedAt,
	}
}

func (m *RelationshipTypeMapper) ToModel(r *entity.RelationshipType) *model.RelationshipType {
	if r == nil {
		return nil
	}
	return &model.RelationshipType{
		Id:        r.Id,
		Label:     r.Label,
		Color:     r.Color,
		IsDefault: r.IsDefault,
		CreatedAt: r.CreatedAt,
	}
}

func (m *RelationshipTypeMapper) ToEntities(types []*model.RelationshipType) []*entity.RelationshipType {
	entities := make([]*entity.RelationshipType, len(types))
	for i, r := range types {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
