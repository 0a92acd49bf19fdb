package unitofwork

import (
	"context"

	"askmedix-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AppointmentRepository() contract.AppointmentRepository
	ChunkEmbeddingRepository() contract.ChunkEmbeddingRepository
	InteractionRepository() contract.InteractionRepository
	DeliveryLogRepository() contract.DeliveryLogRepository
}
