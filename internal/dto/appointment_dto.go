package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleAppointmentRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Phone    string `json:"phone" form:"phone" validate:"required"` // e.g. +254...
	Date     string `json:"date" form:"date" validate:"required"`   // YYYY-MM-DD
	Time     string `json:"time" form:"time" validate:"required"`   // HH:MM
}

// DeliveryReport describes one notification channel attempt. A failed channel
// is a warning to the submitter, never an error for the whole request.
type DeliveryReport struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Warning string `json:"warning,omitempty"`
}

type ScheduleAppointmentResponse struct {
	Id          uuid.UUID        `json:"id"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	CancelURL   string           `json:"cancel_url"`
	Deliveries  []DeliveryReport `json:"deliveries"`
}

type AppointmentResponse struct {
	Id          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
