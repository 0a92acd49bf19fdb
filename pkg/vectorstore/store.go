package vectorstore

import (
	"context"
	"errors"
)

// ErrIndexProvisioning reports a provider-side failure while creating or
// checking the index. Fatal at startup.
var ErrIndexProvisioning = errors.New("vector index provisioning failed")

// Record is one chunk to be stored: the vector plus the source text that
// produced it. ID is stable per (source, chunk index); re-upserting a source
// replaces its chunks rather than accumulating duplicates.
type Record struct {
	ID     string
	Vector []float32
	Text   string
	Source string
	Index  int
}

// ScoredChunk is a retrieval hit, ordered by similarity descending.
type ScoredChunk struct {
	Text  string
	Score float64
}

// Store is a nearest-neighbor index over chunk embeddings.
//
// EnsureIndex is idempotent: it reports created=true only when this call
// actually provisioned the index, so the caller can decide whether to ingest.
// Query returns an empty slice (never an error) when the index holds nothing.
type Store interface {
	EnsureIndex(ctx context.Context, dimension int) (created bool, err error)
	Upsert(ctx context.Context, records []Record) error
	Query(ctx context.Context, vector []float32, k int) ([]ScoredChunk, error)
	Count(ctx context.Context) (int64, error)
}
