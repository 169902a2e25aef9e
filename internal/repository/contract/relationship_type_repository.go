package contract

import (
	"context"

	"notegraph-be/internal/entity"
	"notegraph-be/internal/repository/specification"
)

type RelationshipTypeRepository interface {
	// Create returns apperror.ErrConflict when {label, isDefault} already exists.
	Create(ctx context.Context, relType *entity.RelationshipType) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RelationshipType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RelationshipType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
