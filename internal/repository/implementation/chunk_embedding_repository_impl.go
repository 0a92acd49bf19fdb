package implementation

import (
	"context"
	"errors"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/mapper"
	"askmedix-be/internal/model"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ChunkEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkEmbeddingMapper
}

func NewChunkEmbeddingRepository(db *gorm.DB) contract.ChunkEmbeddingRepository {
	return &ChunkEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkEmbeddingMapper(),
	}
}

func (r *ChunkEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChunkEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.ChunkEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChunkEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.ChunkEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	// Batched insert keeps each statement under the parameter limit
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ChunkEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChunkEmbedding{}, id).Error
}

func (r *ChunkEmbeddingRepositoryImpl) DeleteBySourceName(ctx context.Context, sourceName string) error {
	return r.db.WithContext(ctx).Where("source_name = ?", sourceName).Delete(&model.ChunkEmbedding{}).Error
}

func (r *ChunkEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChunkEmbedding, error) {
	var m model.ChunkEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChunkEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChunkEmbedding, error) {
	var models []*model.ChunkEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChunkEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ChunkEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ChunkEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns the closest chunks by cosine similarity.
// Cosine distance in pgvector is 1 - cosine_similarity, so the score is
// computed as 1 - (embedding_value <=> query_vector).
func (r *ChunkEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredChunkEmbedding, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.ChunkEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("chunk_embeddings").
		Select("chunk_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChunkEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredChunkEmbedding{
			Embedding:  r.mapper.ToEntity(&res.ChunkEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
