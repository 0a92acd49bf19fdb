package contract

import (
	"context"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeliveryLogRepository interface {
	Create(ctx context.Context, log *entity.DeliveryLog) error
	FindAllByAppointmentId(ctx context.Context, appointmentId uuid.UUID) ([]*entity.DeliveryLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeliveryLog, error)
}
