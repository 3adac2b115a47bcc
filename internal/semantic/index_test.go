package semantic

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arxgraph/arxgraph/internal/embedding"
	"github.com/arxgraph/arxgraph/internal/paper"
)

// stubProvider returns deterministic embeddings keyed by the first word of
// the input text.
type stubProvider struct {
	vectors map[string][]float32
	dims    int
}

func (s *stubProvider) Embed(_ context.Context, text string) (embedding.Embedding, error) {
	word := strings.Fields(text)[0]
	v, ok := s.vectors[word]
	if !ok {
		return embedding.Embedding{}, errors.New("no stub vector for " + word)
	}
	return embedding.Embedding{Vector: v}, nil
}

func (s *stubProvider) ModelName() string { return "stub" }
func (s *stubProvider) Dimensions() int   { return s.dims }

func TestIndexAddAndLookup(t *testing.T) {
	idx := NewIndex("stub", 3)

	if err := idx.Add("2101.00001", "Paper One", []float32{1, 0, 0}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !idx.HasPaper("2101.00001") {
		t.Error("paper should be in index")
	}
	if idx.HasPaper("2101.99999") {
		t.Error("unknown paper should not be in index")
	}
	if idx.PaperCount != 1 {
		t.Errorf("PaperCount = %d, want 1", idx.PaperCount)
	}
}

func TestIndexAddDimensionMismatch(t *testing.T) {
	idx := NewIndex("stub", 3)
	if err := idx.Add("2101.00001", "Paper One", []float32{1, 0}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestIndexSaveLoadRoundTrip(t *testing.T) {
	idx := NewIndex("stub", 3)
	if err := idx.Add("2101.00001", "Paper One", []float32{1, 0, 0}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cache", "semantic.gob")
	if err := idx.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !Exists(path) {
		t.Error("Exists should report the saved index")
	}
	if size, err := IndexSize(path); err != nil || size == 0 {
		t.Errorf("IndexSize = %d, %v", size, err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ModelName != "stub" || loaded.Dimensions != 3 {
		t.Errorf("metadata not preserved: %q/%d", loaded.ModelName, loaded.Dimensions)
	}
	entry, ok := loaded.Entries["2101.00001"]
	if !ok {
		t.Fatal("entry missing after round trip")
	}
	if entry.Title != "Paper One" || len(entry.Vector) != 3 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestLoadMissingIndex(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "semantic.gob"))
	if !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("err = %v, want ErrIndexNotFound", err)
	}
}

func TestLoadUnsupportedVersion(t *testing.T) {
	idx := NewIndex("stub", 3)
	idx.Version = CurrentIndexVersion + 1

	path := filepath.Join(t.TempDir(), "semantic.gob")
	if err := idx.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestBuilderSkipsShortAbstracts(t *testing.T) {
	longAbstract := "vecA " + strings.Repeat("filler content for the abstract ", 5)
	provider := &stubProvider{
		dims: 3,
		vectors: map[string][]float32{
			"vecA": {1, 0, 0},
		},
	}

	papers := []paper.Paper{
		{ArxivID: "2101.00001", Title: "Indexed Paper", Abstract: longAbstract},
		{ArxivID: "2101.00002", Title: "No Abstract"},
		{ArxivID: "2101.00003", Title: "Too Short", Abstract: "tiny"},
	}

	b := NewBuilder(provider)
	var calls int
	b.SetProgressReporter(ProgressFunc(func(current, total int) {
		calls++
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
	}))

	idx, stats, err := b.Build(context.Background(), papers)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.PapersIndexed != 1 || stats.PapersSkipped != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if calls != 3 {
		t.Errorf("progress calls = %d, want 3", calls)
	}
	if !idx.HasPaper("2101.00001") {
		t.Error("paper with abstract should be indexed")
	}
	if idx.Entries["2101.00001"].Title != "Indexed Paper" {
		t.Errorf("title = %q", idx.Entries["2101.00001"].Title)
	}
}

func TestBuilderCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBuilder(&stubProvider{dims: 3})
	_, _, err := b.Build(ctx, []paper.Paper{{ArxivID: "1", Abstract: strings.Repeat("x", 100)}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
