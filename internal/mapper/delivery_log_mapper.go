package mapper

import (
	"encoding/json"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/model"

	"gorm.io/datatypes"
)

type DeliveryLogMapper struct{}

func NewDeliveryLogMapper() *DeliveryLogMapper {
	return &DeliveryLogMapper{}
}

func (m *DeliveryLogMapper) ToEntity(d *model.DeliveryLog) *entity.DeliveryLog {
	if d == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(d.Metadata) > 0 {
		// Malformed rows surface as nil metadata rather than failing the read
		_ = json.Unmarshal(d.Metadata, &metadata)
	}
	return &entity.DeliveryLog{
		Id:            d.Id,
		AppointmentId: d.AppointmentId,
		Channel:       d.Channel,
		Recipient:     d.Recipient,
		Succeeded:     d.Succeeded,
		ErrorMessage:  d.ErrorMessage,
		Metadata:      metadata,
		CreatedAt:     d.CreatedAt,
	}
}

func (m *DeliveryLogMapper) ToModel(d *entity.DeliveryLog) *model.DeliveryLog {
	if d == nil {
		return nil
	}
	var metadata datatypes.JSON
	if d.Metadata != nil {
		if data, err := json.Marshal(d.Metadata); err == nil {
			metadata = data
		}
	}
	return &model.DeliveryLog{
		Id:            d.Id,
		AppointmentId: d.AppointmentId,
		Channel:       d.Channel,
		Recipient:     d.Recipient,
		Succeeded:     d.Succeeded,
		ErrorMessage:  d.ErrorMessage,
		Metadata:      metadata,
		CreatedAt:     d.CreatedAt,
	}
}
