package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshot(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{"id":"2106.00001","title":"Deep  Widgets\n  Revisited","abstract":"We study\nwidgets.","categories":"cs.LG","update_date":"2021-06-01"}
{"id":"2106.00002","title":"Astro Things","abstract":"Stars.","categories":"astro-ph","update_date":"2021-06-02"}

{"id":"2106.00003","title":"Vision Stuff","abstract":"Pixels.","categories":"cs.CV cs.LG","update_date":"2021-06-03"}
`)

	papers, err := LoadSnapshot(path, LoadOptions{Categories: DefaultCategories})
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2 (astro-ph filtered out)", len(papers))
	}
	if papers[0].Title != "Deep Widgets Revisited" {
		t.Errorf("title not cleaned: %q", papers[0].Title)
	}
	if papers[0].Abstract != "We study widgets." {
		t.Errorf("abstract not cleaned: %q", papers[0].Abstract)
	}
	if papers[1].ArxivID != "2106.00003" {
		t.Errorf("unexpected second paper: %+v", papers[1])
	}
}

func TestLoadSnapshotNoFilter(t *testing.T) {
	path := writeSnapshot(t, `{"id":"1","title":"A","abstract":"x","categories":"math.CO"}
`)
	papers, err := LoadSnapshot(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("got %d papers, want 1", len(papers))
	}
}

func TestLoadSnapshotMalformedLineIsFatal(t *testing.T) {
	path := writeSnapshot(t, `{"id":"1","title":"A"}
{not json}
`)
	if _, err := LoadSnapshot(path, LoadOptions{}); err == nil {
		t.Fatal("expected error for malformed snapshot line")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"), LoadOptions{}); err == nil {
		t.Fatal("expected error for missing snapshot file")
	}
}

func TestTitleIndexLookup(t *testing.T) {
	idx := NewTitleIndexFromMap(nil)
	idx.Add("Deep Widgets Revisited", "2106.00001")

	tests := []struct {
		name   string
		title  string
		wantID string
		wantOK bool
	}{
		{"exact", "Deep Widgets Revisited", "2106.00001", true},
		{"case insensitive", "deep widgets revisited", "2106.00001", true},
		{"mixed case", "DEEP Widgets REVISITED", "2106.00001", true},
		{"missing", "Unknown Paper", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := idx.Lookup(tt.title)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.title, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
