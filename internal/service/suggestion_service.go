package service

import (
	"context"
	"fmt"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/entity"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/repository/contract"
	"notegraph-be/internal/repository/specification"
	"notegraph-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// SuggestionCleaner is the one capability the note lifecycle needs from the
// suggestion store.
type SuggestionCleaner interface {
	ClearSuggestions(ctx context.Context, noteId uuid.UUID) error
}

type ISuggestionService interface {
	SuggestionCleaner
	Replace(ctx context.Context, req *dto.SaveSuggestionsRequest) ([]*dto.SuggestionResponse, error)
	List(ctx context.Context, noteId uuid.UUID) ([]*dto.SuggestionResponse, error)
}

type suggestionService struct {
	uowFactory unitofwork.RepositoryFactory
	repo       contract.SuggestionRepository
}

func NewSuggestionService(uowFactory unitofwork.RepositoryFactory, repo contract.SuggestionRepository) ISuggestionService {
	return &suggestionService{
		uowFactory: uowFactory,
		repo:       repo,
	}
}

func (s *suggestionService) Replace(ctx context.Context, req *dto.SaveSuggestionsRequest) ([]*dto.SuggestionResponse, error) {
	note, err := s.findNote(ctx, req.NoteId)
	if err != nil {
		return nil, err
	}
	if !note.IsStaged() {
		return nil, fmt.Errorf("%w: note %s is already committed", apperror.ErrInvalidRequest, note.Id)
	}

	suggestions := make([]*entity.Suggestion, 0, len(req.Links))
	for i, raw := range req.Links {
		targetId, err := uuid.Parse(raw.TargetNoteId)
		if err != nil {
			return nil, fmt.Errorf("%w: suggestion %d has malformed targetNoteId %q", apperror.ErrInvalidEdge, i, raw.TargetNoteId)
		}
		relTypeId, err := uuid.Parse(raw.RelationshipTypeId)
		if err != nil {
			return nil, fmt.Errorf("%w: suggestion %d has malformed relationshipTypeId %q", apperror.ErrInvalidEdge, i, raw.RelationshipTypeId)
		}
		suggestions = append(suggestions, &entity.Suggestion{
			TargetNoteId:          targetId,
			RelationshipTypeId:    relTypeId,
			TargetNoteTitle:       raw.TargetNoteTitle,
			RelationshipTypeLabel: raw.RelationshipTypeLabel,
		})
	}

	if err := s.repo.Save(ctx, note.Id, suggestions); err != nil {
		return nil, err
	}
	return toSuggestionResponses(suggestions), nil
}

func (s *suggestionService) List(ctx context.Context, noteId uuid.UUID) ([]*dto.SuggestionResponse, error) {
	if _, err := s.findNote(ctx, noteId); err != nil {
		return nil, err
	}
	suggestions, err := s.repo.FindByNoteId(ctx, noteId)
	if err != nil {
		return nil, err
	}
	return toSuggestionResponses(suggestions), nil
}

func (s *suggestionService) ClearSuggestions(ctx context.Context, noteId uuid.UUID) error {
	return s.repo.DeleteByNoteId(ctx, noteId)
}

func (s *suggestionService) findNote(ctx context.Context, noteId uuid.UUID) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", apperror.ErrNotFound, noteId)
	}
	return note, nil
}

func toSuggestionResponses(suggestions []*entity.Suggestion) []*dto.SuggestionResponse {
	res := make([]*dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		res = append(res, &dto.SuggestionResponse{
			TargetNoteId:          s.TargetNoteId,
			RelationshipTypeId:    s.RelationshipTypeId,
			TargetNoteTitle:       s.TargetNoteTitle,
			RelationshipTypeLabel: s.RelationshipTypeLabel,
		})
	}
	return res
}
