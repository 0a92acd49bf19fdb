package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"askmedix-be/pkg/vectorstore"
)

const controlPlaneURL = "https://api.pinecone.io"

// Store is a minimal REST client to Pinecone serverless. The index is created
// with cosine metric; the data-plane host is resolved from the control plane
// after creation (or taken from config when already known).
type Store struct {
	apiKey     string
	indexName  string
	metric     string
	cloud      string
	region     string
	host       string
	controlURL string
	client     *http.Client
}

type Config struct {
	APIKey     string
	IndexName  string
	Metric     string
	Cloud      string
	Region     string
	Host       string // optional, skips the describe-index round trip
	ControlURL string // optional, tests point this at a fake server
	Timeout    time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	metric := cfg.Metric
	if metric == "" {
		metric = "cosine"
	}
	controlURL := cfg.ControlURL
	if controlURL == "" {
		controlURL = controlPlaneURL
	}
	return &Store{
		apiKey:     cfg.APIKey,
		indexName:  cfg.IndexName,
		metric:     metric,
		cloud:      cfg.Cloud,
		region:     cfg.Region,
		host:       cfg.Host,
		controlURL: controlURL,
		client:     &http.Client{Timeout: timeout},
	}
}

var _ vectorstore.Store = (*Store)(nil)

type describeIndexResponse struct {
	Name   string `json:"name"`
	Host   string `json:"host"`
	Status struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

// EnsureIndex creates the serverless index if it does not exist. Idempotent:
// an existing index of the same name is left untouched and created=false.
func (s *Store) EnsureIndex(ctx context.Context, dimension int) (bool, error) {
	existing, err := s.describeIndex(ctx)
	if err == nil {
		s.host = existing.Host
		return false, nil
	}

	body := map[string]any{
		"name":      s.indexName,
		"dimension": dimension,
		"metric":    s.metric,
		"spec": map[string]any{
			"serverless": map[string]any{
				"cloud":  s.cloud,
				"region": s.region,
			},
		},
	}
	var created describeIndexResponse
	if err := s.doJSON(ctx, http.MethodPost, s.controlURL+"/indexes", body, &created); err != nil {
		return false, fmt.Errorf("%w: %v", vectorstore.ErrIndexProvisioning, err)
	}

	// Host may take a moment to become resolvable; poll describe briefly.
	for i := 0; i < 10; i++ {
		desc, err := s.describeIndex(ctx)
		if err == nil && desc.Host != "" && desc.Status.Ready {
			s.host = desc.Host
			return true, nil
		}
		time.Sleep(2 * time.Second)
	}

	if created.Host == "" {
		return false, fmt.Errorf("%w: index %s never became ready", vectorstore.ErrIndexProvisioning, s.indexName)
	}
	s.host = created.Host
	return true, nil
}

func (s *Store) describeIndex(ctx context.Context) (*describeIndexResponse, error) {
	var desc describeIndexResponse
	url := fmt.Sprintf("%s/indexes/%s", s.controlURL, s.indexName)
	if err := s.doJSON(ctx, http.MethodGet, url, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

type upsertVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (s *Store) Upsert(ctx context.Context, records []vectorstore.Record) error {
	if len(records) == 0 {
		return nil
	}

	vectors := make([]upsertVector, len(records))
	for i, r := range records {
		vectors[i] = upsertVector{
			ID:     r.ID,
			Values: r.Vector,
			Metadata: map[string]string{
				"text":   r.Text,
				"source": r.Source,
			},
		}
	}

	// Pinecone caps upsert batches; 100 is safely under the payload limit.
	const batchSize = 100
	for start := 0; start < len(vectors); start += batchSize {
		end := start + batchSize
		if end > len(vectors) {
			end = len(vectors)
		}
		body := map[string]any{"vectors": vectors[start:end]}
		if err := s.doJSON(ctx, http.MethodPost, s.dataURL("/vectors/upsert"), body, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Query(ctx context.Context, vector []float32, k int) ([]vectorstore.ScoredChunk, error) {
	if k <= 0 {
		k = 3
	}

	body := map[string]any{
		"vector":          vector,
		"topK":            k,
		"includeMetadata": true,
	}
	var resp struct {
		Matches []struct {
			ID       string            `json:"id"`
			Score    float64           `json:"score"`
			Metadata map[string]string `json:"metadata"`
		} `json:"matches"`
	}
	if err := s.doJSON(ctx, http.MethodPost, s.dataURL("/query"), body, &resp); err != nil {
		return nil, err
	}

	results := make([]vectorstore.ScoredChunk, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		results = append(results, vectorstore.ScoredChunk{
			Text:  m.Metadata["text"],
			Score: m.Score,
		})
	}
	return results, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var resp struct {
		TotalVectorCount int64 `json:"totalVectorCount"`
	}
	if err := s.doJSON(ctx, http.MethodPost, s.dataURL("/describe_index_stats"), map[string]any{}, &resp); err != nil {
		return 0, err
	}
	return resp.TotalVectorCount, nil
}

func (s *Store) dataURL(path string) string {
	if strings.HasPrefix(s.host, "http://") || strings.HasPrefix(s.host, "https://") {
		return s.host + path
	}
	return fmt.Sprintf("https://%s%s", s.host, path)
}

func (s *Store) doJSON(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Pinecone-Api-Version", "2024-07")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pinecone %s %s failed: %s: %s", method, url, resp.Status, string(respBody))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
