package pgvec

import (
	"context"
	"fmt"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/model"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/pkg/vectorstore"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const embeddingDimension = 384

// Store implements vectorstore.Store on top of the chunk embedding
// repository. Similarity search runs in Postgres via the pgvector
// cosine distance operator.
type Store struct {
	db   *gorm.DB
	repo contract.ChunkEmbeddingRepository
}

func NewStore(db *gorm.DB, repo contract.ChunkEmbeddingRepository) *Store {
	return &Store{
		db:   db,
		repo: repo,
	}
}

var _ vectorstore.Store = (*Store)(nil)

// EnsureIndex provisions the vector extension and the chunk_embeddings
// table. created=true when the table did not exist before, which signals
// the caller to run a full ingestion.
func (s *Store) EnsureIndex(ctx context.Context, dimension int) (bool, error) {
	if dimension != embeddingDimension {
		return false, fmt.Errorf("%w: table is declared vector(%d), got dimension %d",
			vectorstore.ErrIndexProvisioning, embeddingDimension, dimension)
	}

	if err := s.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return false, fmt.Errorf("%w: %v", vectorstore.ErrIndexProvisioning, err)
	}

	migrator := s.db.WithContext(ctx).Migrator()
	hadTable := migrator.HasTable(&model.ChunkEmbedding{})
	if !hadTable {
		if err := migrator.AutoMigrate(&model.ChunkEmbedding{}); err != nil {
			return false, fmt.Errorf("%w: %v", vectorstore.ErrIndexProvisioning, err)
		}
		err := s.db.WithContext(ctx).Exec(
			"CREATE INDEX IF NOT EXISTS idx_chunk_embeddings_embedding_value " +
				"ON chunk_embeddings USING hnsw (embedding_value vector_cosine_ops)",
		).Error
		if err != nil {
			return false, fmt.Errorf("%w: %v", vectorstore.ErrIndexProvisioning, err)
		}
	}
	return !hadTable, nil
}

func (s *Store) Upsert(ctx context.Context, records []vectorstore.Record) error {
	if len(records) == 0 {
		return nil
	}

	// Re-ingesting a source replaces its chunks wholesale.
	sources := map[string]struct{}{}
	for _, r := range records {
		sources[r.Source] = struct{}{}
	}
	for source := range sources {
		if err := s.repo.DeleteBySourceName(ctx, source); err != nil {
			return err
		}
	}

	embeddings := make([]*entity.ChunkEmbedding, len(records))
	for i, r := range records {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			id = uuid.New()
		}
		embeddings[i] = &entity.ChunkEmbedding{
			Id:             id,
			SourceName:     r.Source,
			ChunkIndex:     r.Index,
			ChunkText:      r.Text,
			EmbeddingValue: r.Vector,
		}
	}
	return s.repo.CreateBulk(ctx, embeddings)
}

func (s *Store) Query(ctx context.Context, vector []float32, k int) ([]vectorstore.ScoredChunk, error) {
	scored, err := s.repo.SearchSimilarWithScore(ctx, vector, k)
	if err != nil {
		return nil, err
	}
	chunks := make([]vectorstore.ScoredChunk, 0, len(scored))
	for _, sc := range scored {
		chunks = append(chunks, vectorstore.ScoredChunk{
			Text:  sc.Embedding.ChunkText,
			Score: sc.Similarity,
		})
	}
	return chunks, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
