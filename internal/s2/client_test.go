package s2

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPaperBatchDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if !strings.Contains(r.URL.RawQuery, "citationCount") {
			t.Errorf("query %q missing citationCount field", r.URL.RawQuery)
		}
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if len(req.IDs) != 2 || req.IDs[0] != "arxiv:2106.15928" {
			t.Errorf("ids = %v", req.IDs)
		}
		// Second identifier is unresolvable: the API returns null for it.
		w.Write([]byte(`[
			{"paperId": "p1", "citationCount": 42, "references": [
				{"paperId": "r1", "title": "Ref One", "citationCount": 7}
			]},
			null
		]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	papers, err := c.PaperBatch(context.Background(), []string{"arxiv:2106.15928", "arxiv:0000.00000"})
	if err != nil {
		t.Fatalf("PaperBatch: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(papers))
	}
	if papers[0].CitationCount != 42 {
		t.Errorf("citation count = %d, want 42", papers[0].CitationCount)
	}
	if len(papers[0].References) != 1 || papers[0].References[0].Title != "Ref One" {
		t.Errorf("references = %+v", papers[0].References)
	}
	if got := papers[0].References[0].CitationCount; got == nil || *got != 7 {
		t.Errorf("reference citation count = %v, want 7", got)
	}
	if papers[1] != nil {
		t.Errorf("unresolvable id should decode to nil, got %+v", papers[1])
	}
}

func TestPaperBatchSendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("secret"))
	if _, err := c.PaperBatch(context.Background(), []string{"arxiv:1"}); err != nil {
		t.Fatalf("PaperBatch: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("x-api-key = %q, want %q", gotKey, "secret")
	}
}

func TestPaperBatchErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, IsAuthError},
		{"forbidden", http.StatusForbidden, IsAuthError},
		{"rate limited", http.StatusTooManyRequests, IsRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(WithBaseURL(srv.URL))
			_, err := c.PaperBatch(context.Background(), []string{"arxiv:1"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("error %v failed the predicate check", err)
			}
		})
	}
}

func TestPaperBatchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.PaperBatch(context.Background(), []string{"arxiv:1"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
}

func TestPaperBatchEmptyIDs(t *testing.T) {
	c := NewClient()
	papers, err := c.PaperBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("PaperBatch: %v", err)
	}
	if papers != nil {
		t.Errorf("got %v, want nil", papers)
	}
}

func TestPaperBatchTooManyIDs(t *testing.T) {
	ids := make([]string, MaxBatchIDs+1)
	for i := range ids {
		ids[i] = "arxiv:1"
	}
	c := NewClient()
	if _, err := c.PaperBatch(context.Background(), ids); err == nil {
		t.Fatal("expected error for oversized batch")
	}
}
