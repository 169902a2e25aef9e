package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/entity"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/specification"
	"notegraph-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// DefaultRelationshipTypes is the seeded vocabulary.
var DefaultRelationshipTypes = []entity.RelationshipType{
	{Label: "supports", Color: "#4CAF50", IsDefault: true},
	{Label: "contradicts", Color: "#F44336", IsDefault: true},
	{Label: "is an example of", Color: "#2196F3", IsDefault: true},
}

type IRelationshipTypeService interface {
	List(ctx context.Context) ([]*dto.RelationshipTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateRelationshipTypeRequest) (*dto.RelationshipTypeResponse, error)
	EnsureDefaults(ctx context.Context) error
}

type relationshipTypeService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRelationshipTypeService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IRelationshipTypeService {
	return &relationshipTypeService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *relationshipTypeService) List(ctx context.Context) ([]*dto.RelationshipTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.RelationshipTypeRepository().FindAll(ctx,
		specification.OrderBy{Field: "is_default", Desc: true},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RelationshipTypeResponse, 0, len(types))
	for _, rt := range types {
		res = append(res, toRelationshipTypeResponse(rt))
	}
	return res, nil
}

func (s *relationshipTypeService) Create(ctx context.Context, req *dto.CreateRelationshipTypeRequest) (*dto.RelationshipTypeResponse, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, fmt.Errorf("%w: label must not be blank", apperror.ErrInvalidRequest)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	relType := entity.RelationshipType{
		Id:        uuid.New(),
		Label:     label,
		Color:     req.Color,
		IsDefault: false,
		CreatedAt: time.Now(),
	}
	if err := uow.RelationshipTypeRepository().Create(ctx, &relType); err != nil {
		return nil, err
	}

	s.logger.Info("RelationshipTypeService", "Relationship type created", map[string]interface{}{
		"id":    relType.Id,
		"label": relType.Label,
	})
	return toRelationshipTypeResponse(&relType), nil
}

// EnsureDefaults inserts each default label unless {label, isDefault=true}
// already exists. Safe to run on every start, including concurrently.
func (s *relationshipTypeService) EnsureDefaults(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.RelationshipTypeRepository()

	inserted := 0
	for _, def := range DefaultRelationshipTypes {
		existing, err := repo.FindOne(ctx,
			specification.ByLabel{Label: def.Label},
			specification.ByIsDefault{IsDefault: true},
		)
		if err != nil {
			return fmt.Errorf("failed to look up default relationship type %q: %w", def.Label, err)
		}
		if existing != nil {
			continue
		}

		relType := entity.RelationshipType{
			Id:        uuid.New(),
			Label:     def.Label,
			Color:     def.Color,
			IsDefault: true,
			CreatedAt: time.Now(),
		}
		if err := repo.Create(ctx, &relType); err != nil {
			if errors.Is(err, apperror.ErrConflict) {
				// another instance seeded it first
				continue
			}
			return fmt.Errorf("failed to seed default relationship type %q: %w", def.Label, err)
		}
		inserted++
	}

	s.logger.Info("RelationshipTypeService", "Default relationship types initialized", map[string]interface{}{
		"inserted": inserted,
	})
	return nil
}

func toRelationshipTypeResponse(rt *entity.RelationshipType) *dto.RelationshipTypeResponse {
	return &dto.RelationshipTypeResponse{
		Id:        rt.Id,
		Label:     rt.Label,
		Color:     rt.Color,
		IsDefault: rt.IsDefault,
	}
}
