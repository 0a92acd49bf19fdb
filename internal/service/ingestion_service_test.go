package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"askmedix-be/pkg/documents"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	return path
}

func TestIngestChunksEmbedsAndUpserts(t *testing.T) {
	corpus := writeCorpus(t, strings.Repeat("medical knowledge ", 100))
	store := &stubStore{}
	embedder := &stubEmbedder{vector: []float32{0.1, 0.2, 0.3}}

	svc := NewIngestionService(documents.NewLoader(), embedder, store, nopLogger{}, corpus, 500, 50)

	indexed, err := svc.Ingest(context.Background())
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if indexed == 0 {
		t.Fatal("expected at least one chunk to be indexed")
	}
	if len(store.upserted) != indexed {
		t.Fatalf("reported %d chunks but upserted %d records", indexed, len(store.upserted))
	}

	for i, rec := range store.upserted {
		if rec.Index != i {
			t.Errorf("record %d has chunk index %d", i, rec.Index)
		}
		if rec.Source != corpus {
			t.Errorf("record %d has source %q, want %q", i, rec.Source, corpus)
		}
		if rec.Text == "" {
			t.Errorf("record %d has empty text", i)
		}
		if len(rec.Vector) != 3 {
			t.Errorf("record %d has vector of length %d", i, len(rec.Vector))
		}
	}

	// IDs must be stable across runs so re-ingestion overwrites.
	first := store.upserted[0].ID
	store.upserted = nil
	if _, err := svc.Ingest(context.Background()); err != nil {
		t.Fatalf("second Ingest returned error: %v", err)
	}
	if store.upserted[0].ID != first {
		t.Errorf("chunk ID changed between runs: %q vs %q", first, store.upserted[0].ID)
	}
}

func TestIngestMissingSource(t *testing.T) {
	store := &stubStore{}
	embedder := &stubEmbedder{vector: []float32{0.1}}

	svc := NewIngestionService(documents.NewLoader(), embedder, store, nopLogger{}, "does/not/exist.txt", 500, 50)

	if _, err := svc.Ingest(context.Background()); !errors.Is(err, documents.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestIngestEmbeddingFailureAborts(t *testing.T) {
	corpus := writeCorpus(t, "short corpus text")
	store := &stubStore{}
	embedder := &stubEmbedder{err: errors.New("model unavailable")}

	svc := NewIngestionService(documents.NewLoader(), embedder, store, nopLogger{}, corpus, 500, 50)

	if _, err := svc.Ingest(context.Background()); err == nil {
		t.Fatal("expected error when embedding fails")
	}
	if len(store.upserted) != 0 {
		t.Fatalf("no records should be upserted on failure, got %d", len(store.upserted))
	}
}
