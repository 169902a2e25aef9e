package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notegraph-be/internal/entity"
	"notegraph-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "notegraph:suggestions:"

// SuggestionRepository stores each note's suggestions as one JSON value with
// a TTL, so abandoned drafts age out on their own.
type SuggestionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSuggestionRepository(rdb *redis.Client, ttl time.Duration) contract.SuggestionRepository {
	return &SuggestionRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func key(noteId uuid.UUID) string {
	return keyPrefix + noteId.String()
}

func (r *SuggestionRepository) Save(ctx context.Context, noteId uuid.UUID, suggestions []*entity.Suggestion) error {
	payload, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	if err := r.rdb.Set(ctx, key(noteId), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store suggestions for note %s: %w", noteId, err)
	}
	return nil
}

func (r *SuggestionRepository) FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Suggestion, error) {
	payload, err := r.rdb.Get(ctx, key(noteId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*entity.Suggestion{}, nil
		}
		return nil, fmt.Errorf("failed to load suggestions for note %s: %w", noteId, err)
	}

	suggestions := []*entity.Suggestion{}
	if err := json.Unmarshal(payload, &suggestions); err != nil {
		return nil, fmt.Errorf("corrupt suggestions for note %s: %w", noteId, err)
	}
	return suggestions, nil
}

func (r *SuggestionRepository) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	if err := r.rdb.Del(ctx, key(noteId)).Err(); err != nil {
		return fmt.Errorf("failed to delete suggestions for note %s: %w", noteId, err)
	}
	return nil
}
