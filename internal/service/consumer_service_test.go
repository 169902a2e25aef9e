package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRelay struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (r *recordingRelay) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingRelay) received() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event{}, r.events...)
}

func TestConsumerService_RelaysLifecycleEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	relay := &recordingRelay{err: errors.New("nats unavailable")}
	consumer := NewConsumerService(pubSub, "NOTE_LIFECYCLE", relay, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("NOTE_LIFECYCLE", pubSub)
	noteId := uuid.New()

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))
	for _, eventType := range []string{events.NoteCreated, events.NoteCommitted} {
		payload, err := json.Marshal(dto.NoteLifecycleMessage{
			Type:       eventType,
			NoteId:     noteId,
			Title:      "A",
			LinkCount:  2,
			OccurredAt: time.Now(),
		})
		require.NoError(t, err)
		require.NoError(t, publisher.Publish(ctx, payload))
	}

	// the failed relay and the garbage message must not stall the topic
	assert.Eventually(t, func() bool {
		return len(relay.received()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// gochannel fans out per message, so arrival order is not guaranteed
	var types []string
	for _, evt := range relay.received() {
		types = append(types, evt.EventType())
		assert.Equal(t, noteId, evt.Payload()["note_id"])
		assert.Equal(t, 2, evt.Payload()["link_count"])
	}
	assert.ElementsMatch(t, []string{events.NoteCreated, events.NoteCommitted}, types)
}

func TestConsumerService_WithoutRelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewConsumerService(pubSub, "NOTE_LIFECYCLE", nil, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("NOTE_LIFECYCLE", pubSub)
	payload, _ := json.Marshal(dto.NoteLifecycleMessage{Type: events.NoteCreated, NoteId: uuid.New()})

	assert.NoError(t, publisher.Publish(ctx, payload))
}
