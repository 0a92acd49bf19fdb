package pinecone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"askmedix-be/pkg/vectorstore"
)

func newTestStore(controlURL, host string) *Store {
	return NewStore(Config{
		APIKey:     "test-key",
		IndexName:  "askmedix",
		Cloud:      "aws",
		Region:     "us-east-1",
		ControlURL: controlURL,
		Host:       host,
	})
}

func TestEnsureIndexExisting(t *testing.T) {
	var createCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/indexes/askmedix":
			json.NewEncoder(w).Encode(map[string]any{
				"name":   "askmedix",
				"host":   "askmedix-abc123.svc.pinecone.io",
				"status": map[string]any{"ready": true},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/indexes":
			createCalls++
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	store := newTestStore(srv.URL, "")

	created, err := store.EnsureIndex(context.Background(), 384)
	if err != nil {
		t.Fatalf("EnsureIndex returned error: %v", err)
	}
	if created {
		t.Error("existing index must not be reported as created")
	}
	if createCalls != 0 {
		t.Errorf("existing index triggered %d create calls", createCalls)
	}
	if store.host != "askmedix-abc123.svc.pinecone.io" {
		t.Errorf("host not resolved from describe response: %q", store.host)
	}
}

func TestEnsureIndexCreates(t *testing.T) {
	var created bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/indexes/askmedix":
			if !created {
				http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"name":   "askmedix",
				"host":   "askmedix-new.svc.pinecone.io",
				"status": map[string]any{"ready": true},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/indexes":
			var body struct {
				Name      string `json:"name"`
				Dimension int    `json:"dimension"`
				Metric    string `json:"metric"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decoding create request: %v", err)
			}
			if body.Dimension != 384 {
				t.Errorf("create request dimension = %d, want 384", body.Dimension)
			}
			if body.Metric != "cosine" {
				t.Errorf("create request metric = %q, want cosine", body.Metric)
			}
			created = true
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"name": body.Name})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	store := newTestStore(srv.URL, "")

	wasCreated, err := store.EnsureIndex(context.Background(), 384)
	if err != nil {
		t.Fatalf("EnsureIndex returned error: %v", err)
	}
	if !wasCreated {
		t.Error("fresh index must be reported as created")
	}

	// Second call sees the index and must not create again.
	wasCreated, err = store.EnsureIndex(context.Background(), 384)
	if err != nil {
		t.Fatalf("second EnsureIndex returned error: %v", err)
	}
	if wasCreated {
		t.Error("second EnsureIndex must report created=false")
	}
}

func TestQueryParsesMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Api-Key"); got != "test-key" {
			t.Errorf("Api-Key header = %q", got)
		}
		var body struct {
			TopK int `json:"topK"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.TopK != 3 {
			t.Errorf("topK = %d, want 3", body.TopK)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"matches": []map[string]any{
				{"id": "a", "score": 0.92, "metadata": map[string]string{"text": "first passage"}},
				{"id": "b", "score": 0.81, "metadata": map[string]string{"text": "second passage"}},
			},
		})
	}))
	defer srv.Close()

	store := newTestStore("", srv.URL)

	chunks, err := store.Query(context.Background(), []float32{0.1, 0.2}, 3)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Text != "first passage" || chunks[0].Score != 0.92 {
		t.Errorf("unexpected first chunk: %+v", chunks[0])
	}
}

func TestQueryEmptyIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"matches": []any{}})
	}))
	defer srv.Close()

	store := newTestStore("", srv.URL)

	chunks, err := store.Query(context.Background(), []float32{0.1}, 3)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if chunks == nil || len(chunks) != 0 {
		t.Fatalf("empty index must return an empty slice, got %v", chunks)
	}
}

func TestUpsertBatches(t *testing.T) {
	var batches []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vectors/upsert" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Vectors []upsertVector `json:"vectors"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding upsert: %v", err)
		}
		batches = append(batches, len(body.Vectors))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newTestStore("", srv.URL)

	records := make([]vectorstore.Record, 250)
	for i := range records {
		records[i] = vectorstore.Record{ID: "chunk", Vector: []float32{0.1}, Text: "t"}
	}
	if err := store.Upsert(context.Background(), records); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	want := []int{100, 100, 50}
	if len(batches) != len(want) {
		t.Fatalf("got %d batches (%v), want %v", len(batches), batches, want)
	}
	for i := range want {
		if batches[i] != want[i] {
			t.Errorf("batch %d has %d vectors, want %d", i, batches[i], want[i])
		}
	}
}
