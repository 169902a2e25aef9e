package implementation

import (
	"context"
	"errors"
	"fmt"

	"notegraph-be/internal/entity"
	"notegraph-be/internal/mapper"
	"notegraph-be/internal/model"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/repository/contract"
	"notegraph-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type RelationshipTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RelationshipTypeMapper
}

func NewRelationshipTypeRepository(db *gorm.DB) contract.RelationshipTypeRepository {
	return &RelationshipTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRelationshipTypeMapper(),
	}
}

func (r *RelationshipTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RelationshipTypeRepositoryImpl) Create(ctx context.Context, relType *entity.RelationshipType) error {
	m := r.mapper.ToModel(relType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: relationship type %q already exists", apperror.ErrConflict, relType.Label)
		}
		return err
	}
	*relType = *r.mapper.ToEntity(m)
	return nil
}

func (r *RelationshipTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RelationshipType, error) {
	var m model.RelationshipType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RelationshipTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RelationshipType, error) {
	var models []*model.RelationshipType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RelationshipTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RelationshipType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
