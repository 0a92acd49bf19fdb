package contract

import (
	"context"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
