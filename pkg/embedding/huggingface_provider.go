package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HuggingFaceProvider generates sentence embeddings through the hosted
// Inference API (feature-extraction pipeline). The default model is
// sentence-transformers/all-MiniLM-L6-v2, which produces 384-dimension vectors.
type HuggingFaceProvider struct {
	ApiKey string
	Model  string
	client *http.Client
}

func NewHuggingFaceProvider(apiKey, model string) EmbeddingProvider {
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	return &HuggingFaceProvider{
		ApiKey: apiKey,
		Model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type hfEmbeddingRequest struct {
	Inputs string `json:"inputs"`
}

func (p *HuggingFaceProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is kept for interface compatibility; sentence-transformers
	// models embed documents and queries identically.
	reqBody := hfEmbeddingRequest{Inputs: text}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://router.huggingface.co/hf-inference/models/%s/pipeline/feature-extraction",
		p.Model,
	)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from huggingface response, code %d, body %s", res.StatusCode, string(resByte))
	}

	values, err := decodeFeatureExtraction(resByte)
	if err != nil {
		return nil, err
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizeVector(values),
		},
	}, nil
}

// decodeFeatureExtraction accepts both response shapes the pipeline produces:
// a pooled sentence vector ([384]float) or per-token vectors ([n][384]float),
// which are mean-pooled here.
func decodeFeatureExtraction(body []byte) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested [][]float32
	if err := json.Unmarshal(body, &nested); err != nil || len(nested) == 0 {
		return nil, fmt.Errorf("unexpected feature-extraction response: %s", string(body))
	}

	dim := len(nested[0])
	pooled := make([]float32, dim)
	for _, row := range nested {
		for i := 0; i < dim && i < len(row); i++ {
			pooled[i] += row[i]
		}
	}
	for i := range pooled {
		pooled[i] /= float32(len(nested))
	}
	return pooled, nil
}
