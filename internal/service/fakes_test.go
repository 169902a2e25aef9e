package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"notegraph-be/internal/entity"
	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/contract"
	"notegraph-be/internal/repository/specification"
	"notegraph-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for Postgres. It understands the
// specifications the services use.
type fakeStore struct {
	mu        sync.Mutex
	notes     map[uuid.UUID]*entity.Note
	relTypes  []*entity.RelationshipType
	updateErr error
	commits   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{notes: make(map[uuid.UUID]*entity.Note)}
}

func (s *fakeStore) note(id uuid.UUID) *entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return nil
	}
	return cloneNote(n)
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.inTx = false
	u.store.mu.Lock()
	u.store.commits++
	u.store.mu.Unlock()
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepository{store: u.store}
}

func (u *fakeUnitOfWork) RelationshipTypeRepository() contract.RelationshipTypeRepository {
	return &fakeRelationshipTypeRepository{store: u.store}
}

type fakeNoteRepository struct {
	store *fakeStore
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notes[note.Id] = cloneNote(note)
	return nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.updateErr != nil {
		return r.store.updateErr
	}
	if _, ok := r.store.notes[note.Id]; !ok {
		return fmt.Errorf("%w: note %s", apperror.ErrNotFound, note.Id)
	}
	r.store.notes[note.Id] = cloneNote(note)
	return nil
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			out = append(out, cloneNote(n))
		}
	}
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok && o.Field == "updated_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if o.Desc {
					return out[i].UpdatedAt.After(out[j].UpdatedAt)
				}
				return out[i].UpdatedAt.Before(out[j].UpdatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, n.Id) {
				return false
			}
		case specification.ByStatus:
			if string(n.Status) != s.Status {
				return false
			}
		case specification.NoteSearchQuery:
			q := strings.ToLower(s.Query)
			if !strings.Contains(strings.ToLower(n.Title), q) && !strings.Contains(strings.ToLower(n.Body), q) {
				return false
			}
		case specification.LinksTargetNote:
			found := false
			for _, l := range n.Links {
				if l.TargetNoteId == s.NoteID {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.OrderBy:
		default:
			panic(fmt.Sprintf("fake note repository: unsupported specification %T", spec))
		}
	}
	return true
}

type fakeRelationshipTypeRepository struct {
	store *fakeStore
}

func (r *fakeRelationshipTypeRepository) Create(ctx context.Context, relType *entity.RelationshipType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rt := range r.store.relTypes {
		if rt.Label == relType.Label && rt.IsDefault == relType.IsDefault {
			return fmt.Errorf("%w: relationship type %q already exists", apperror.ErrConflict, relType.Label)
		}
	}
	c := *relType
	r.store.relTypes = append(r.store.relTypes, &c)
	return nil
}

func (r *fakeRelationshipTypeRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RelationshipType, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeRelationshipTypeRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RelationshipType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.RelationshipType
	for _, rt := range r.store.relTypes {
		if relTypeMatches(rt, specs) {
			c := *rt
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeRelationshipTypeRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func relTypeMatches(rt *entity.RelationshipType, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if rt.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, rt.Id) {
				return false
			}
		case specification.ByLabel:
			if rt.Label != s.Label {
				return false
			}
		case specification.ByIsDefault:
			if rt.IsDefault != s.IsDefault {
				return false
			}
		case specification.OrderBy:
		default:
			panic(fmt.Sprintf("fake relationship type repository: unsupported specification %T", spec))
		}
	}
	return true
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func cloneNote(n *entity.Note) *entity.Note {
	c := *n
	c.Links = append([]entity.NoteLink{}, n.Links...)
	return &c
}

type fakeSuggestionCleaner struct {
	mu      sync.Mutex
	cleared []uuid.UUID
	err     error
}

func (f *fakeSuggestionCleaner) ClearSuggestions(ctx context.Context, noteId uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, noteId)
	return f.err
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.err
}

type testHarness struct {
	store      *fakeStore
	factory    *fakeFactory
	cleaner    *fakeSuggestionCleaner
	publisher  *fakePublisher
	linkGraph  ILinkGraphService
	notes      INoteService
	relTypes   IRelationshipTypeService
	supportsId uuid.UUID
}

func newHarness(mode LinkValidationMode) *testHarness {
	store := newFakeStore()
	factory := &fakeFactory{store: store}
	cleaner := &fakeSuggestionCleaner{}
	publisher := &fakePublisher{}
	log := logger.NewNopLogger()

	linkGraph := NewLinkGraphService(factory, mode)
	relTypes := NewRelationshipTypeService(factory, log)
	if err := relTypes.EnsureDefaults(context.Background()); err != nil {
		panic(err)
	}

	return &testHarness{
		store:      store,
		factory:    factory,
		cleaner:    cleaner,
		publisher:  publisher,
		linkGraph:  linkGraph,
		notes:      NewNoteService(factory, linkGraph, cleaner, publisher, log),
		relTypes:   relTypes,
		supportsId: store.relTypes[0].Id,
	}
}
