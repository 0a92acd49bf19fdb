package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ChunkEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourceName     string          `gorm:"type:varchar(255);not null;index"`
	ChunkIndex     int             `gorm:"not null;default:0"` // 0-based position within the source
	ChunkText      string          `gorm:"type:text;not null"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(384)"` // all-MiniLM-L6-v2 dimensionality
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (ChunkEmbedding) TableName() string {
	return "chunk_embeddings"
}
