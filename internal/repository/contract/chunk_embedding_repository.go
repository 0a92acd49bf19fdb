package contract

import (
	"context"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredChunkEmbedding wraps ChunkEmbedding with its similarity score
type ScoredChunkEmbedding struct {
	Embedding  *entity.ChunkEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ChunkEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.ChunkEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySourceName(ctx context.Context, sourceName string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChunkEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChunkEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the closest chunks by cosine similarity
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunkEmbedding, error)
}
