package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DeliveryLog struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AppointmentId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Channel       string         `gorm:"type:varchar(20);not null"`
	Recipient     string         `gorm:"type:varchar(255);not null"`
	Succeeded     bool           `gorm:"not null;default:false"`
	ErrorMessage  string         `gorm:"type:text"`
	Metadata      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (DeliveryLog) TableName() string {
	return "delivery_logs"
}
