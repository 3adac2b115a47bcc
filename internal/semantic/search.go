package semantic

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/arxgraph/arxgraph/internal/embedding"
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denominator := float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB)))
	if denominator == 0 {
		return 0
	}

	return dot / denominator
}

// Search finds papers similar to a query embedding.
// Results are sorted by similarity (highest first) and filtered by threshold.
func (idx *Index) Search(query []float32, limit int, threshold float32) []SearchResult {
	if idx.Entries == nil || len(query) != idx.Dimensions {
		return nil
	}

	results := make([]SearchResult, 0, len(idx.Entries))
	for arxivID, entry := range idx.Entries {
		sim := CosineSimilarity(query, entry.Vector)
		if sim >= threshold {
			results = append(results, SearchResult{
				ArxivID:    arxivID,
				Title:      entry.Title,
				Similarity: sim,
			})
		}
	}

	sortResults(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

// SearchText embeds a free-text query and searches the index with it.
func (idx *Index) SearchText(ctx context.Context, provider embedding.Provider, query string, limit int, threshold float32) ([]SearchResult, error) {
	emb, err := provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return idx.Search(emb.Vector, limit, threshold), nil
}

// FindSimilar finds papers similar to an indexed paper.
// The source paper is excluded from results.
func (idx *Index) FindSimilar(arxivID string, limit int) ([]SearchResult, error) {
	source, exists := idx.Entries[arxivID]
	if !exists {
		return nil, ErrPaperNotIndexed
	}

	results := make([]SearchResult, 0, len(idx.Entries)-1)
	for id, entry := range idx.Entries {
		if id == arxivID {
			continue
		}
		results = append(results, SearchResult{
			ArxivID:    id,
			Title:      entry.Title,
			Similarity: CosineSimilarity(source.Vector, entry.Vector),
		})
	}

	sortResults(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// sortResults orders results by similarity descending with arXiv ID as a
// deterministic tie-break.
func sortResults(results []SearchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ArxivID < results[j].ArxivID
	})
}
