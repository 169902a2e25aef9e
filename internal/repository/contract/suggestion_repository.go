package contract

import (
	"context"

	"notegraph-be/internal/entity"

	"github.com/google/uuid"
)

// SuggestionRepository stores ephemeral link suggestions keyed by source note.
type SuggestionRepository interface {
	Save(ctx context.Context, noteId uuid.UUID, suggestions []*entity.Suggestion) error
	FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Suggestion, error)
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
}
