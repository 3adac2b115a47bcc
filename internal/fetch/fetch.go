// Package fetch downloads paper PDFs from arXiv and extracts their text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the arXiv PDF endpoint.
	DefaultBaseURL = "https://arxiv.org/pdf"

	// DefaultTimeout is the timeout for download requests.
	DefaultTimeout = 60 * time.Second
)

// Fetcher downloads paper PDFs by arXiv identifier.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = hc
	}
}

// WithBaseURL sets a custom PDF endpoint (for testing).
func WithBaseURL(url string) FetcherOption {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(url, "/")
	}
}

// NewFetcher creates a new arXiv PDF fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Download fetches the PDF for an arXiv ID and writes it to destPath. The
// download goes to a temp file first and is renamed into place so a failed
// transfer never leaves a partial PDF behind. Returns the final path, which
// always carries a .pdf extension.
func (f *Fetcher) Download(ctx context.Context, arxivID, destPath string) (string, error) {
	if arxivID == "" {
		return "", fmt.Errorf("arxiv id is empty")
	}
	if !strings.HasSuffix(destPath, ".pdf") {
		destPath += ".pdf"
	}

	url := f.baseURL + "/" + arxivID + ".pdf"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", arxivID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: arxiv returned status %d", arxivID, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tempPath := destPath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("writing PDF: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("closing file: %w", err)
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}

	return destPath, nil
}
