package service

import (
	"context"
	"encoding/json"
	"time"

	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/logger"
	"assessment-assistant-be/internal/websocket"
	"assessment-assistant-be/pkg/events"
	pktNats "assessment-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the record lifecycle topic, notifies the
// workspace over its websocket connections and mirrors the event to
// NATS. NATS failures are logged and otherwise ignored.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		hub:            hub,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal record event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads would never succeed on retry
		return
	}

	if cs.hub != nil {
		cs.hub.Send(payload.WorkspaceId, "record_event", payload)
	}

	if cs.eventPublisher != nil {
		evt := events.NewRecordEvent(payload.Event, payload.Kind, payload.WorkspaceId, payload.RecordId, payload.Name, payload.OccurredAt)
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := cs.eventPublisher.Publish(pubCtx, evt); err != nil {
			cs.logger.Warn("ConsumerService", "NATS publish failed", map[string]interface{}{"error": err.Error()})
		}
		cancel()
	}

	msg.Ack()
}
