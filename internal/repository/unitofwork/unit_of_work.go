package unitofwork

import (
	"context"

	"notegraph-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	RelationshipTypeRepository() contract.RelationshipTypeRepository
}
