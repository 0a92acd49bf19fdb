package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled doctor visit. Records are append-only: after
// creation only Status changes, and only through the cancellation service.
type Appointment struct {
	Id          uuid.UUID
	FullName    string
	Email       string
	Phone       string // E.164-ish, e.g. +254700000000
	ScheduledAt time.Time
	CancelToken string // UUID string, globally unique per record
	Status      string // constant.AppointmentStatusScheduled / Cancelled
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
