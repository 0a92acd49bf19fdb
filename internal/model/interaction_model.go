package model

import (
	"time"

	"github.com/google/uuid"
)

type Interaction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Interaction) TableName() string {
	return "qa_interactions"
}
