package mapper

import (
	"notegraph-be/internal/entity"
	"notegraph-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	links := make([]entity.NoteLink, 0, len(n.Links))
	for _, l := range n.Links {
		links = append(links, entity.NoteLink{
			TargetNoteId:       l.TargetNoteId,
			RelationshipTypeId: l.RelationshipTypeId,
		})
	}

	return &entity.Note{
		Id:          n.Id,
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		IsPermanent: n.IsPermanent,
		Status:      entity.NoteStatus(n.Status),
		Source:      n.Source,
		Links:       links,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	// Never nil: a nil JSONSlice serializes to JSON null, not [].
	links := make(datatypes.JSONSlice[model.NoteLink], 0, len(n.Links))
	for _, l := range n.Links {
		links = append(links, model.NoteLink{
			TargetNoteId:       l.TargetNoteId,
			RelationshipTypeId: l.RelationshipTypeId,
		})
	}

	return &model.Note{
		Id:          n.Id,
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		IsPermanent: n.IsPermanent,
		Status:      string(n.Status),
		Source:      n.Source,
		Links:       links,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
