package service

import (
	"context"
	"fmt"
	"path/filepath"

	"askmedix-be/internal/pkg/logger"
	"askmedix-be/pkg/documents"
	"askmedix-be/pkg/embedding"
	"askmedix-be/pkg/utils"
	"askmedix-be/pkg/vectorstore"
)

type IIngestionService interface {
	// Ingest loads the corpus, chunks it, embeds every chunk and upserts the
	// result into the vector store. Returns the number of chunks indexed.
	Ingest(ctx context.Context) (int, error)
}

type ingestionService struct {
	loader            *documents.Loader
	embeddingProvider embedding.EmbeddingProvider
	store             vectorstore.Store
	log               logger.ILogger
	sourcePath        string
	chunkSize         int
	chunkOverlap      int
}

func NewIngestionService(
	loader *documents.Loader,
	embeddingProvider embedding.EmbeddingProvider,
	store vectorstore.Store,
	log logger.ILogger,
	sourcePath string,
	chunkSize int,
	chunkOverlap int,
) IIngestionService {
	return &ingestionService{
		loader:            loader,
		embeddingProvider: embeddingProvider,
		store:             store,
		log:               log,
		sourcePath:        sourcePath,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (s *ingestionService) Ingest(ctx context.Context) (int, error) {
	text, err := s.loader.Load(ctx, s.sourcePath)
	if err != nil {
		return 0, err
	}

	chunks := utils.SplitText(text, s.chunkSize, s.chunkOverlap)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("source %s produced no chunks", s.sourcePath)
	}

	s.log.Info("ingestion", "corpus loaded", map[string]interface{}{
		"source": s.sourcePath,
		"chunks": len(chunks),
	})

	records := make([]vectorstore.Record, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}
		records = append(records, vectorstore.Record{
			ID:     fmt.Sprintf("%s#%d", filepath.Base(s.sourcePath), i),
			Vector: res.Embedding.Values,
			Text:   chunk,
			Source: s.sourcePath,
			Index:  i,
		})
	}

	if err := s.store.Upsert(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to upsert %d records: %w", len(records), err)
	}

	s.log.Info("ingestion", "corpus indexed", map[string]interface{}{
		"source":  s.sourcePath,
		"records": len(records),
	})
	return len(records), nil
}
