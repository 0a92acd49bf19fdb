package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a question/answer pair appended after each successful answer.
// Write-only log: no mutation or deletion path exists.
type Interaction struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
}
