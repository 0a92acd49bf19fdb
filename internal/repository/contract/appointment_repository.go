package contract

import (
	"context"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindByCancelToken looks up an appointment by its cancellation token.
	// Returns (nil, nil) when no appointment carries the token.
	FindByCancelToken(ctx context.Context, token string) (*entity.Appointment, error)
	// UpdateStatusByToken sets the status of the appointment carrying the token.
	// Returns the number of rows affected.
	UpdateStatusByToken(ctx context.Context, token string, status string) (int64, error)
}
