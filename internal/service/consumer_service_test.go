package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"askmedix-be/internal/dto"
	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/internal/repository/specification"
	"askmedix-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type fakeInteractionRepo struct {
	mu           sync.Mutex
	interactions []*entity.Interaction
}

func (f *fakeInteractionRepo) Create(ctx context.Context, interaction *entity.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *interaction
	f.interactions = append(f.interactions, &stored)
	return nil
}

func (f *fakeInteractionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Interaction(nil), f.interactions...), nil
}

func (f *fakeInteractionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.interactions)), nil
}

type fakeUnitOfWork struct {
	interactionRepo *fakeInteractionRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) AppointmentRepository() contract.AppointmentRepository {
	return nil
}

func (f *fakeUnitOfWork) ChunkEmbeddingRepository() contract.ChunkEmbeddingRepository {
	return nil
}

func (f *fakeUnitOfWork) InteractionRepository() contract.InteractionRepository {
	return f.interactionRepo
}

func (f *fakeUnitOfWork) DeliveryLogRepository() contract.DeliveryLogRepository {
	return nil
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestConsumerAppendsInteractions(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakeInteractionRepo{}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{interactionRepo: repo}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "question.answered", factory)
	if err := consumer.Consume(ctx); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	publisher := NewPublisherService(pubSub, "question.answered")
	payload, _ := json.Marshal(dto.QuestionAnsweredMessage{
		Question: "what is anemia?",
		Answer:   "a shortage of red blood cells",
	})
	if err := publisher.Publish(ctx, payload); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if n, _ := repo.Count(ctx); n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("interaction was never persisted")
		case <-time.After(10 * time.Millisecond):
		}
	}

	stored, _ := repo.FindAll(ctx)
	got := stored[0]
	if got.Question != "what is anemia?" {
		t.Errorf("question = %q", got.Question)
	}
	if got.Answer != "a shortage of red blood cells" {
		t.Errorf("answer = %q", got.Answer)
	}
}
