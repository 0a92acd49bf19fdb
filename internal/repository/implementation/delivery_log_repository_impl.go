package implementation

import (
	"context"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/mapper"
	"askmedix-be/internal/model"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DeliveryLogMapper
}

func NewDeliveryLogRepository(db *gorm.DB) contract.DeliveryLogRepository {
	return &DeliveryLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewDeliveryLogMapper(),
	}
}

func (r *DeliveryLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeliveryLogRepositoryImpl) Create(ctx context.Context, log *entity.DeliveryLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeliveryLogRepositoryImpl) FindAllByAppointmentId(ctx context.Context, appointmentId uuid.UUID) ([]*entity.DeliveryLog, error) {
	return r.FindAll(ctx, specification.Filter("appointment_id", appointmentId))
}

func (r *DeliveryLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeliveryLog, error) {
	var models []*model.DeliveryLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.DeliveryLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
