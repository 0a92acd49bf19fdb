package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChunkEmbedding pairs a document chunk with its embedding vector.
// Immutable once ingested; the chunk text travels with the vector so retrieval
// needs no second lookup.
type ChunkEmbedding struct {
	Id             uuid.UUID
	SourceName     string
	ChunkIndex     int
	ChunkText      string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
