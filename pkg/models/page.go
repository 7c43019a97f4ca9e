package models

// DefaultQueryLimit bounds how many chunks the backend considers per question.
const DefaultQueryLimit = 5

// PageRequest is the payload for add, delete and summarize requests
type PageRequest struct {
	URL string `json:"url" binding:"required"`
}

// QueryRequest represents a free-text question over indexed content
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
	K     int    `json:"k"`
}

// SummaryResult is the body returned by the summaries endpoint.
// Summary may be plain prose or prose wrapping a JSON object with an answer.
type SummaryResult struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// QueryResult is the body returned by the queries endpoint
type QueryResult struct {
	Answer      string   `json:"answer"`
	FoundAnswer bool     `json:"found_answer"`
	SourceURLs  []string `json:"source_urls"`
}

// IndexedPages is the body returned when listing indexed pages
type IndexedPages struct {
	URLs []string `json:"urls"`
}

// IndexStats describes the backend index. Every field is optional.
type IndexStats struct {
	NumPages       *int    `json:"num_pages"`
	NumChunks      *int    `json:"num_chunks"`
	EmbeddingDim   *int    `json:"embedding_dim"`
	FaissIndexType *string `json:"faiss_index_type"`
}

// Ack is the loosely-typed acknowledgement body of mutating endpoints
type Ack map[string]any
