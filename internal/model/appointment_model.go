package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(32);not null"`
	ScheduledAt time.Time `gorm:"not null"`
	CancelToken string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Status      string    `gorm:"type:varchar(32);not null;default:'scheduled'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
