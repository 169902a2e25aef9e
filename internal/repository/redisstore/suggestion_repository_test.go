package redisstore

import (
	"context"
	"testing"
	"time"

	"notegraph-be/internal/entity"
	"notegraph-be/pkg/testhelpers"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: testhelpers.GetRedisAddr(t)})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestSuggestionRepository_RoundTrip(t *testing.T) {
	rdb := newClient(t)
	repo := NewSuggestionRepository(rdb, time.Hour)
	ctx := context.Background()
	noteId := uuid.New()

	empty, err := repo.FindByNoteId(ctx, noteId)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	suggestions := []*entity.Suggestion{
		{TargetNoteId: uuid.New(), RelationshipTypeId: uuid.New(), TargetNoteTitle: "B"},
		{TargetNoteId: uuid.New(), RelationshipTypeId: uuid.New(), RelationshipTypeLabel: "supports"},
	}
	require.NoError(t, repo.Save(ctx, noteId, suggestions))

	got, err := repo.FindByNoteId(ctx, noteId)
	require.NoError(t, err)
	assert.Equal(t, suggestions, got)

	ttl, err := rdb.TTL(ctx, key(noteId)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, repo.DeleteByNoteId(ctx, noteId))
	got, err = repo.FindByNoteId(ctx, noteId)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting an absent key is not an error.
	assert.NoError(t, repo.DeleteByNoteId(ctx, uuid.New()))
}

func TestSuggestionRepository_CorruptPayload(t *testing.T) {
	rdb := newClient(t)
	repo := NewSuggestionRepository(rdb, time.Hour)
	ctx := context.Background()
	noteId := uuid.New()

	require.NoError(t, rdb.Set(ctx, key(noteId), "not json", time.Minute).Err())

	_, err := repo.FindByNoteId(ctx, noteId)
	assert.Error(t, err)
}
