package service

import (
	"context"
	"encoding/json"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/pkg/events"
	pktNats "dept-tracker-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

type INotificationService interface {
	Start(ctx context.Context) error
}

// notificationService drains the in-process event bus, logs every domain
// event, and forwards it to NATS when a publisher is connected. Delivery is
// best effort; a lost notification never fails the originating request.
type notificationService struct {
	subscriber message.Subscriber
	topic      string
	natsPub    *pktNats.Publisher // nil when NATS is unreachable
	log        logger.ILogger
}

func NewNotificationService(subscriber message.Subscriber, topic string, natsPub *pktNats.Publisher, log logger.ILogger) INotificationService {
	return &notificationService{
		subscriber: subscriber,
		topic:      topic,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *notificationService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		s.handle(ctx, msg)
		msg.Ack()
	}
	return nil
}

func (s *notificationService) handle(ctx context.Context, msg *message.Message) {
	var evt dto.DomainEventMessage
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.Warn("notification", "dropping malformed event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	s.log.Info("notification", "domain event", map[string]interface{}{
		"type": evt.Type,
		"data": evt.Data,
	})

	if s.natsPub == nil {
		return
	}

	err := s.natsPub.Publish(ctx, events.BaseEvent{
		Type:       evt.Type,
		Data:       evt.Data,
		OccurredAt: evt.OccurredAt,
	})
	if err != nil {
		s.log.Warn("notification", "failed to forward event to NATS", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}
}
