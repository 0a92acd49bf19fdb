package mapper

import (
	"askmedix-be/internal/entity"
	"askmedix-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	updatedAt := a.UpdatedAt
	return &entity.Appointment{
		Id:          a.Id,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		ScheduledAt: a.ScheduledAt,
		CancelToken: a.CancelToken,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   &updatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	modelAppointment := &model.Appointment{
		Id:          a.Id,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		ScheduledAt: a.ScheduledAt,
		CancelToken: a.CancelToken,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
	if a.UpdatedAt != nil {
		modelAppointment.UpdatedAt = *a.UpdatedAt
	}
	return modelAppointment
}
