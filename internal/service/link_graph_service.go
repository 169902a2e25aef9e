package service

import (
	"context"
	"fmt"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/entity"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/repository/specification"
	"notegraph-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type LinkValidationMode string

const (
	// LinkValidationPermissive accepts well-formed ids without checking that
	// they resolve.
	LinkValidationPermissive LinkValidationMode = "permissive"
	// LinkValidationStrict additionally requires every target note and
	// relationship type to exist.
	LinkValidationStrict LinkValidationMode = "strict"
)

type ILinkGraphService interface {
	ValidateAndBuild(ctx context.Context, rawLinks []dto.LinkRequest) ([]entity.NoteLink, error)
	BacklinksFor(ctx context.Context, noteId uuid.UUID) ([]entity.Backlink, error)
}

type linkGraphService struct {
	uowFactory unitofwork.RepositoryFactory
	mode       LinkValidationMode
}

func NewLinkGraphService(uowFactory unitofwork.RepositoryFactory, mode LinkValidationMode) ILinkGraphService {
	return &linkGraphService{
		uowFactory: uowFactory,
		mode:       mode,
	}
}

// ValidateAndBuild parses raw edges in input order. Malformed ids are always
// rejected; dangling references only in strict mode.
func (s *linkGraphService) ValidateAndBuild(ctx context.Context, rawLinks []dto.LinkRequest) ([]entity.NoteLink, error) {
	links := make([]entity.NoteLink, 0, len(rawLinks))
	for i, raw := range rawLinks {
		targetId, err := uuid.Parse(raw.TargetNoteId)
		if err != nil {
			return nil, fmt.Errorf("%w: link %d has malformed targetNoteId %q", apperror.ErrInvalidEdge, i, raw.TargetNoteId)
		}
		relTypeId, err := uuid.Parse(raw.RelationshipTypeId)
		if err != nil {
			return nil, fmt.Errorf("%w: link %d has malformed relationshipTypeId %q", apperror.ErrInvalidEdge, i, raw.RelationshipTypeId)
		}
		links = append(links, entity.NoteLink{
			TargetNoteId:       targetId,
			RelationshipTypeId: relTypeId,
		})
	}

	if s.mode == LinkValidationStrict && len(links) > 0 {
		if err := s.checkReferences(ctx, links); err != nil {
			return nil, err
		}
	}

	return links, nil
}

func (s *linkGraphService) checkReferences(ctx context.Context, links []entity.NoteLink) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var targetIds, relTypeIds []uuid.UUID
	seenTargets := make(map[uuid.UUID]bool)
	seenRelTypes := make(map[uuid.UUID]bool)
	for _, l := range links {
		if !seenTargets[l.TargetNoteId] {
			seenTargets[l.TargetNoteId] = true
			targetIds = append(targetIds, l.TargetNoteId)
		}
		if !seenRelTypes[l.RelationshipTypeId] {
			seenRelTypes[l.RelationshipTypeId] = true
			relTypeIds = append(relTypeIds, l.RelationshipTypeId)
		}
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByIDs{IDs: targetIds})
	if err != nil {
		return err
	}
	knownNotes := make(map[uuid.UUID]bool, len(notes))
	for _, n := range notes {
		knownNotes[n.Id] = true
	}

	relTypes, err := uow.RelationshipTypeRepository().FindAll(ctx, specification.ByIDs{IDs: relTypeIds})
	if err != nil {
		return err
	}
	knownRelTypes := make(map[uuid.UUID]bool, len(relTypes))
	for _, rt := range relTypes {
		knownRelTypes[rt.Id] = true
	}

	for i, l := range links {
		if !knownNotes[l.TargetNoteId] {
			return fmt.Errorf("%w: link %d targets unknown note %s", apperror.ErrInvalidEdge, i, l.TargetNoteId)
		}
		if !knownRelTypes[l.RelationshipTypeId] {
			return fmt.Errorf("%w: link %d uses unknown relationship type %s", apperror.ErrInvalidEdge, i, l.RelationshipTypeId)
		}
	}
	return nil
}

// BacklinksFor scans every note for edges pointing at noteId and emits one
// backlink per matching edge. Cost grows with the corpus; a reverse index
// keyed by target would have to be invalidated on every commit.
func (s *linkGraphService) BacklinksFor(ctx context.Context, noteId uuid.UUID) ([]entity.Backlink, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.NoteRepository().FindAll(ctx,
		specification.LinksTargetNote{NoteID: noteId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	backlinks := make([]entity.Backlink, 0)
	for _, src := range sources {
		for _, l := range src.Links {
			if l.TargetNoteId != noteId {
				continue
			}
			backlinks = append(backlinks, entity.Backlink{
				SourceNoteId:       src.Id,
				SourceNoteTitle:    src.Title,
				RelationshipTypeId: l.RelationshipTypeId,
			})
		}
	}
	return backlinks, nil
}
