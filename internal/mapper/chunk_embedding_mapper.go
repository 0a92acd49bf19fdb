package mapper

import (
	"askmedix-be/internal/entity"
	"askmedix-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkEmbeddingMapper struct{}

func NewChunkEmbeddingMapper() *ChunkEmbeddingMapper {
	return &ChunkEmbeddingMapper{}
}

func (m *ChunkEmbeddingMapper) ToEntity(c *model.ChunkEmbedding) *entity.ChunkEmbedding {
	if c == nil {
		return nil
	}
	return &entity.ChunkEmbedding{
		Id:             c.Id,
		SourceName:     c.SourceName,
		ChunkIndex:     c.ChunkIndex,
		ChunkText:      c.ChunkText,
		EmbeddingValue: c.EmbeddingValue.Slice(),
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChunkEmbeddingMapper) ToModel(c *entity.ChunkEmbedding) *model.ChunkEmbedding {
	if c == nil {
		return nil
	}
	return &model.ChunkEmbedding{
		Id:             c.Id,
		SourceName:     c.SourceName,
		ChunkIndex:     c.ChunkIndex,
		ChunkText:      c.ChunkText,
		EmbeddingValue: pgvector.NewVector(c.EmbeddingValue),
		CreatedAt:      c.CreatedAt,
	}
}
