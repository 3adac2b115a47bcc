// Package s2 is a rate-limited client for the Semantic Scholar graph API,
// used to build citation-count ego graphs around retrieved papers.
package s2

// BatchPaper is one entry of a /paper/batch response.
type BatchPaper struct {
	PaperID       string           `json:"paperId"`
	CitationCount int              `json:"citationCount"`
	References    []BatchReference `json:"references"`
}

// BatchReference is one referenced paper inside a batch entry. The citation
// count is a pointer because the API omits it for unmatched references.
type BatchReference struct {
	PaperID       string `json:"paperId"`
	Title         string `json:"title"`
	CitationCount *int   `json:"citationCount"`
}

// batchRequest is the POST body of a /paper/batch call.
type batchRequest struct {
	IDs []string `json:"ids"`
}
