package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"askmedix-be/internal/dto"
	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains answered questions off the bus and appends them to
// the interaction log. Keeping the write off the request path means a slow
// database never delays the chat response.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var payload dto.QuestionAnsweredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	interaction := entity.Interaction{
		Id:        uuid.New(),
		Question:  payload.Question,
		Answer:    payload.Answer,
		CreatedAt: time.Now(),
	}
	if err := uow.InteractionRepository().Create(ctx, &interaction); err != nil {
		log.Printf("[ERROR] Failed to persist interaction: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
