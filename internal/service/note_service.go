package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/entity"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/specification"
	"notegraph-be/internal/repository/unitofwork"
	"notegraph-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowNoteResponse, error)
	List(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) error
	Commit(ctx context.Context, req *dto.CommitNoteRequest) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	linkGraph        ILinkGraphService
	suggestions      SuggestionCleaner
	publisherService IPublisherService
	logger           logger.ILogger
	now              func() time.Time
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	linkGraph ILinkGraphService,
	suggestions SuggestionCleaner,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		linkGraph:        linkGraph,
		suggestions:      suggestions,
		publisherService: publisherService,
		logger:           log,
		now:              time.Now,
	}
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := c.now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     valueOr(req.Title, entity.DefaultNoteTitle),
		Body:      valueOr(req.Body, ""),
		Category:  valueOr(req.Category, entity.DefaultNoteCategory),
		Status:    entity.NoteStatusStaged,
		Source:    req.Source,
		Links:     []entity.NoteLink{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	c.publishLifecycle(ctx, events.NoteCreated, &note)

	return toNoteResponse(&note), nil
}

func (c *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	note, err := c.findNote(ctx, c.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}

	backlinks, err := c.linkGraph.BacklinksFor(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.ShowNoteResponse{
		NoteResponse: *toNoteResponse(note),
		Backlinks:    make([]dto.BacklinkResponse, 0, len(backlinks)),
	}
	for _, b := range backlinks {
		res.Backlinks = append(res.Backlinks, dto.BacklinkResponse{
			SourceNoteId:       b.SourceNoteId,
			SourceNoteTitle:    b.SourceNoteTitle,
			RelationshipTypeId: b.RelationshipTypeId,
		})
	}

	return &res, nil
}

func (c *noteService) List(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error) {
	status := req.Status
	if status == "" {
		status = string(entity.NoteStatusCommitted)
	}

	specs := []specification.Specification{
		specification.ByStatus{Status: status},
	}
	if req.Query != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: req.Query})
	}
	specs = append(specs, specification.OrderBy{Field: "updated_at", Desc: true})

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toNoteResponse(n))
	}
	return res, nil
}

// Update merges the supplied fields. Links are accepted only on committed
// notes and go through the same validation as commit.
func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, req.Id)
	if err != nil {
		return err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}
	if req.Category != nil {
		note.Category = *req.Category
	}
	if req.IsPermanent != nil {
		note.IsPermanent = *req.IsPermanent
	}
	if req.Source != nil {
		note.Source = req.Source
	}
	if req.Links != nil {
		if note.IsStaged() {
			return fmt.Errorf("%w: links of staged note %s can only be set by commit", apperror.ErrInvalidEdge, note.Id)
		}
		links, err := c.linkGraph.ValidateAndBuild(ctx, *req.Links)
		if err != nil {
			return err
		}
		note.Links = links
	}
	note.UpdatedAt = c.now()

	return uow.NoteRepository().Update(ctx, note)
}

// Commit finalizes a note with the given edge list. The state change is
// committed before suggestion cleanup, and a failed cleanup does not fail
// the commit.
func (c *noteService) Commit(ctx context.Context, req *dto.CommitNoteRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, req.Id)
	if err != nil {
		return err
	}

	links, err := c.linkGraph.ValidateAndBuild(ctx, req.Links)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	note.Commit(links, c.now())
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if err := c.suggestions.ClearSuggestions(ctx, note.Id); err != nil {
		c.logger.Warn("NoteService", "Failed to clear suggestions after commit", map[string]interface{}{
			"error":   err.Error(),
			"note_id": note.Id,
		})
	}

	c.publishLifecycle(ctx, events.NoteCommitted, note)

	c.logger.Info("NoteService", "Note committed", map[string]interface{}{
		"note_id":    note.Id,
		"link_count": len(note.Links),
	})
	return nil
}

func (c *noteService) findNote(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", apperror.ErrNotFound, id)
	}
	return note, nil
}

// publishLifecycle is auxiliary: failures are logged, never returned.
func (c *noteService) publishLifecycle(ctx context.Context, eventType string, note *entity.Note) {
	payload, err := json.Marshal(dto.NoteLifecycleMessage{
		Type:       eventType,
		NoteId:     note.Id,
		Title:      note.Title,
		LinkCount:  len(note.Links),
		OccurredAt: c.now(),
	})
	if err != nil {
		return
	}
	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.logger.Warn("NoteService", "Failed to publish lifecycle event", map[string]interface{}{
			"error":   err.Error(),
			"type":    eventType,
			"note_id": note.Id,
		})
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	links := make([]dto.LinkResponse, 0, len(n.Links))
	for _, l := range n.Links {
		links = append(links, dto.LinkResponse{
			TargetNoteId:       l.TargetNoteId,
			RelationshipTypeId: l.RelationshipTypeId,
		})
	}
	return &dto.NoteResponse{
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

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
