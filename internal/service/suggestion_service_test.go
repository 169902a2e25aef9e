package service

import (
	"context"
	"testing"
	"time"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionService(t *testing.T) {
	ctx := context.Background()

	setup := func() (*testHarness, ISuggestionService) {
		h := newHarness(LinkValidationPermissive)
		suggestions := NewSuggestionService(h.factory, memory.NewSuggestionRepository(time.Hour))
		// wire the real cleaner so commit drops what was saved
		h.notes = NewNoteService(h.factory, h.linkGraph, suggestions, h.publisher, logger.NewNopLogger())
		return h, suggestions
	}

	t.Run("replace and list", func(t *testing.T) {
		h, svc := setup()
		draft := h.create(t, "Draft")
		target := h.create(t, "Target")

		saved, err := svc.Replace(ctx, &dto.SaveSuggestionsRequest{
			NoteId: draft.Id,
			Links: []dto.SuggestionRequest{{
				TargetNoteId:          target.Id.String(),
				RelationshipTypeId:    h.supportsId.String(),
				TargetNoteTitle:       "Target",
				RelationshipTypeLabel: "supports",
			}},
		})
		require.NoError(t, err)
		require.Len(t, saved, 1)

		listed, err := svc.List(ctx, draft.Id)
		require.NoError(t, err)
		assert.Equal(t, saved, listed)
	})

	t.Run("commit discards suggestions", func(t *testing.T) {
		h, svc := setup()
		draft := h.create(t, "Draft")
		target := h.create(t, "Target")

		_, err := svc.Replace(ctx, &dto.SaveSuggestionsRequest{
			NoteId: draft.Id,
			Links:  []dto.SuggestionRequest{{TargetNoteId: target.Id.String(), RelationshipTypeId: h.supportsId.String()}},
		})
		require.NoError(t, err)

		h.commit(t, draft.Id, link(target.Id, h.supportsId))

		listed, err := svc.List(ctx, draft.Id)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("committed note rejects new suggestions", func(t *testing.T) {
		h, svc := setup()
		n := h.create(t, "Done")
		h.commit(t, n.Id)

		_, err := svc.Replace(ctx, &dto.SaveSuggestionsRequest{NoteId: n.Id})
		assert.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})

	t.Run("unknown note", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.List(ctx, uuid.New())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("malformed ids", func(t *testing.T) {
		h, svc := setup()
		draft := h.create(t, "Draft")
		_, err := svc.Replace(ctx, &dto.SaveSuggestionsRequest{
			NoteId: draft.Id,
			Links:  []dto.SuggestionRequest{{TargetNoteId: "x", RelationshipTypeId: h.supportsId.String()}},
		})
		assert.ErrorIs(t, err, apperror.ErrInvalidEdge)
	})
}
