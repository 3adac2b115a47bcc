package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2106.15928.pdf" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte("%PDF-1.4 fake content"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "papers", "temp_paper")
	f := NewFetcher(WithBaseURL(srv.URL))
	got, err := f.Download(context.Background(), "2106.15928", dest)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if got != dest+".pdf" {
		t.Errorf("path = %q, want %q", got, dest+".pdf")
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "%PDF-1.4 fake content" {
		t.Errorf("content = %q", data)
	}

	// No temp file residue.
	if _, err := os.Stat(got + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestDownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(WithBaseURL(srv.URL))
	dest := filepath.Join(t.TempDir(), "paper.pdf")
	if _, err := f.Download(context.Background(), "0000.00000", dest); err == nil {
		t.Fatal("expected error for 404")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("no file should exist after a failed download")
	}
}

func TestDownloadEmptyID(t *testing.T) {
	f := NewFetcher()
	if _, err := f.Download(context.Background(), "", "out.pdf"); err == nil {
		t.Fatal("expected error for empty arxiv id")
	}
}

func TestExtractArxivIDPattern(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"arXiv:2106.15928v2 [cs.CL] 30 Jun 2021", "2106.15928"},
		{"arXiv:2106.15928 [cs.CL]", "2106.15928"},
		{"no identifier here", ""},
	}

	for _, tt := range tests {
		m := arxivIDPattern.FindStringSubmatch(tt.text)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tt.want {
			t.Errorf("pattern on %q = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "missing.pdf"), 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
