package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Envelope is the wire form of an event on the bus.
type Envelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Publisher emits system events on the in-process bus.
type Publisher struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisher(pubSub *gochannel.GoChannel, topicName string) *Publisher {
	return &Publisher{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (p *Publisher) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(Envelope{
		Type:       evt.EventType(),
		Payload:    evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}
