package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLog records one notification attempt for one channel.
// Best-effort audit trail: a row per attempt, never updated.
type DeliveryLog struct {
	Id            uuid.UUID
	AppointmentId uuid.UUID
	Channel       string // constant.ChannelSMS / ChannelWhatsApp / ChannelEmail
	Recipient     string
	Succeeded     bool
	ErrorMessage  string
	Metadata      map[string]interface{}
	CreatedAt     time.Time
}
