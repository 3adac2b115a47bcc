package semantic

import (
	"context"
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 0, 0}, []float32{1, 0, 0}, 1},
		{"orthogonal", []float32{1, 0, 0}, []float32{0, 1, 0}, 0},
		{"opposite", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1},
		{"scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
		{"mismatched lengths", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("CosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func searchTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex("stub", 3)
	entries := map[string]struct {
		title string
		vec   []float32
	}{
		"2101.00001": {"Exact Match", []float32{1, 0, 0}},
		"2101.00002": {"Close Match", []float32{0.9, 0.1, 0}},
		"2101.00003": {"Unrelated", []float32{0, 0, 1}},
	}
	for id, e := range entries {
		if err := idx.Add(id, e.title, e.vec); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	return idx
}

func TestSearchOrdering(t *testing.T) {
	idx := searchTestIndex(t)

	results := idx.Search([]float32{1, 0, 0}, 0, -1)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].ArxivID != "2101.00001" || results[1].ArxivID != "2101.00002" {
		t.Errorf("ordering = %q, %q", results[0].ArxivID, results[1].ArxivID)
	}
	if results[0].Title != "Exact Match" {
		t.Errorf("title = %q", results[0].Title)
	}
}

func TestSearchThresholdAndLimit(t *testing.T) {
	idx := searchTestIndex(t)

	results := idx.Search([]float32{1, 0, 0}, 0, 0.5)
	if len(results) != 2 {
		t.Errorf("threshold 0.5: got %d results, want 2", len(results))
	}

	results = idx.Search([]float32{1, 0, 0}, 1, -1)
	if len(results) != 1 {
		t.Errorf("limit 1: got %d results, want 1", len(results))
	}
}

func TestSearchDimensionMismatch(t *testing.T) {
	idx := searchTestIndex(t)
	if results := idx.Search([]float32{1, 0}, 0, -1); results != nil {
		t.Errorf("got %v, want nil for mismatched query", results)
	}
}

func TestSearchText(t *testing.T) {
	idx := searchTestIndex(t)
	provider := &stubProvider{
		dims: 3,
		vectors: map[string][]float32{
			"query": {1, 0, 0},
		},
	}

	results, err := idx.SearchText(context.Background(), provider, "query text", 2, 0)
	if err != nil {
		t.Fatalf("SearchText: %v", err)
	}
	if len(results) != 2 || results[0].ArxivID != "2101.00001" {
		t.Errorf("results = %+v", results)
	}
}

func TestFindSimilar(t *testing.T) {
	idx := searchTestIndex(t)

	results, err := idx.FindSimilar("2101.00001", 0)
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.ArxivID == "2101.00001" {
			t.Error("source paper should be excluded")
		}
	}
	if results[0].ArxivID != "2101.00002" {
		t.Errorf("closest = %q, want 2101.00002", results[0].ArxivID)
	}
}

func TestFindSimilarUnknownPaper(t *testing.T) {
	idx := searchTestIndex(t)
	if _, err := idx.FindSimilar("9999.99999", 0); err != ErrPaperNotIndexed {
		t.Errorf("err = %v, want ErrPaperNotIndexed", err)
	}
}
