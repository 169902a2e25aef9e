package service

import (
	"context"
	"encoding/json"

	"notegraph-be/internal/dto"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher forwards lifecycle events outside the process (NATS).
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	relay      EventPublisher
	logger     logger.ILogger
}

// NewConsumerService relays lifecycle messages to relay. A nil relay means
// no external bus is configured; messages are then only logged.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	relay EventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		relay:      relay,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: relaying is best-effort and a stuck message
// would block the in-process channel.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.NoteLifecycleMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal lifecycle message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		return
	}

	if cs.relay == nil {
		cs.logger.Debug("ConsumerService", "No event relay configured, dropping lifecycle event", map[string]interface{}{
			"type":    payload.Type,
			"note_id": payload.NoteId,
		})
		return
	}

	evt := events.BaseEvent{
		Type: payload.Type,
		Data: map[string]interface{}{
			"note_id":    payload.NoteId,
			"title":      payload.Title,
			"link_count": payload.LinkCount,
		},
		OccurredAt: payload.OccurredAt,
	}

	if err := cs.relay.Publish(ctx, evt); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to relay lifecycle event", map[string]interface{}{
			"error":   err.Error(),
			"type":    payload.Type,
			"note_id": payload.NoteId,
		})
		return
	}

	cs.logger.Debug("ConsumerService", "Lifecycle event relayed", map[string]interface{}{
		"type":    payload.Type,
		"note_id": payload.NoteId,
	})
}
