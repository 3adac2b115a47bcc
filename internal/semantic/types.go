// Package semantic provides semantic search over paper abstracts.
package semantic

import "time"

// Entry is one indexed paper: its embedding plus the fields needed to
// seed downstream graph queries without a database round trip.
type Entry struct {
	Title  string
	Vector []float32
}

// Index holds abstract embeddings for all indexed papers, keyed by arXiv ID.
type Index struct {
	// Version is the format version for compatibility checking.
	// Check against CurrentIndexVersion when loading.
	Version int

	ModelName       string    // e.g., "all-minilm:l6-v2"
	Dimensions      int       // 384 for all-minilm
	CreatedAt       time.Time // When the index was built
	PaperCount      int       // Number of papers indexed
	SkippedCount    int       // Papers skipped (no/short abstract)
	BuildDurationMs int64     // Time to build in milliseconds

	Entries map[string]Entry
}

// SearchResult represents a paper found by semantic search.
type SearchResult struct {
	ArxivID    string  `json:"arxiv_id"`
	Title      string  `json:"title"`
	Similarity float32 `json:"similarity"`
}

// BuildStats contains statistics from index building.
type BuildStats struct {
	PapersIndexed  int           `json:"papers_indexed"`
	PapersSkipped  int           `json:"papers_skipped"`
	SkippedReason  string        `json:"skipped_reason"`
	Duration       time.Duration `json:"duration"`
	IndexSizeBytes int64         `json:"index_size_bytes"`
}
