package service

import (
	"context"
	"encoding/json"

	"askmedix-be/internal/pkg/logger"
	"askmedix-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type ISystemEventConsumerService interface {
	Consume(ctx context.Context) error
}

// systemEventConsumerService drains the system events topic into the
// structured log, giving appointment activity an audit trail without any
// service having to log it inline.
type systemEventConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewSystemEventConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) ISystemEventConsumerService {
	return &systemEventConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *systemEventConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *systemEventConsumerService) processMessage(msg *message.Message) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("events", "failed to unmarshal system event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("events", "system event", map[string]interface{}{
		"type":        envelope.Type,
		"payload":     envelope.Payload,
		"occurred_at": envelope.OccurredAt,
	})
	msg.Ack()
}
