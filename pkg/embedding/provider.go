package embedding

// Task types hint retrieval-oriented models which side of the similarity pair
// the text belongs to. Providers that don't distinguish ignore them.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings.
// Ingestion (documents) and the answer pipeline (queries) MUST share one
// instance: mixing models makes similarity search meaningless.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
