package memory

import (
	"context"
	"time"

	"notegraph-be/internal/entity"
	"notegraph-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SuggestionRepository keeps suggestions in process memory. It is the
// fallback when Redis is not reachable, so suggestions do not survive a
// restart and are not shared between instances.
type SuggestionRepository struct {
	cache *cache.Cache
}

func NewSuggestionRepository(ttl time.Duration) contract.SuggestionRepository {
	// purge expired entries every ttl/2, at least once a minute
	cleanup := ttl / 2
	if cleanup <= 0 || cleanup > time.Minute {
		cleanup = time.Minute
	}
	return &SuggestionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *SuggestionRepository) Save(ctx context.Context, noteId uuid.UUID, suggestions []*entity.Suggestion) error {
	copied := make([]*entity.Suggestion, len(suggestions))
	for i, s := range suggestions {
		c := *s
		copied[i] = &c
	}
	r.cache.Set(noteId.String(), copied, cache.DefaultExpiration)
	return nil
}

func (r *SuggestionRepository) FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Suggestion, error) {
	x, found := r.cache.Get(noteId.String())
	if !found {
		return []*entity.Suggestion{}, nil
	}
	stored := x.([]*entity.Suggestion)
	out := make([]*entity.Suggestion, len(stored))
	for i, s := range stored {
		c := *s
		out[i] = &c
	}
	return out, nil
}

func (r *SuggestionRepository) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	r.cache.Delete(noteId.String())
	return nil
}
