package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arxgraph/arxgraph/internal/paper"
)

// WriteAnnotated persists the pipeline output as a single JSON file. The
// write goes through a temp file and rename so a crash never leaves a
// truncated artifact behind.
func WriteAnnotated(path string, annotated []paper.AnnotatedPaper) error {
	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}

	enc := json.NewEncoder(f)
	if err := enc.Encode(annotated); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encoding artifact: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing artifact: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming artifact: %w", err)
	}

	return nil
}

// ReadAnnotated loads a previously written artifact. This file is the sole
// input the graph builder consumes at query time.
func ReadAnnotated(path string) ([]paper.AnnotatedPaper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}

	var annotated []paper.AnnotatedPaper
	if err := json.Unmarshal(data, &annotated); err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}
	return annotated, nil
}

// ReadAnnotatedDataset loads the externally supplied annotated citation
// dataset. The citation_data field arrives either as a JSON array or as a
// JSON-encoded string holding one; both are accepted. Records with no
// mentions at all are filtered out.
func ReadAnnotatedDataset(path string) ([]paper.AnnotatedPaper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var raw []rawAnnotated
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	annotated := make([]paper.AnnotatedPaper, 0, len(raw))
	for i, r := range raw {
		art, err := r.toAnnotated()
		if err != nil {
			return nil, fmt.Errorf("parsing dataset record %d: %w", i, err)
		}
		if art.Citations == nil {
			continue
		}
		annotated = append(annotated, art)
	}
	return annotated, nil
}

// rawAnnotated defers citation_data decoding so string-encoded payloads can
// be unwrapped.
type rawAnnotated struct {
	ArxivID    string           `json:"arxiv_id"`
	Title      string           `json:"title"`
	Abstract   string           `json:"abstract"`
	Categories string           `json:"categories"`
	UpdateDate string           `json:"update_date"`
	References []paper.RefEntry `json:"references"`
	Citations  json.RawMessage  `json:"citation_data"`
}

func (r rawAnnotated) toAnnotated() (paper.AnnotatedPaper, error) {
	art := paper.AnnotatedPaper{
		ArxivID:    r.ArxivID,
		Title:      r.Title,
		Abstract:   r.Abstract,
		Categories: r.Categories,
		UpdateDate: r.UpdateDate,
		References: r.References,
	}

	if len(r.Citations) == 0 || string(r.Citations) == "null" {
		return art, nil
	}

	payload := r.Citations
	var encoded string
	if err := json.Unmarshal(payload, &encoded); err == nil {
		payload = []byte(encoded)
	}

	var mentions []paper.CitationMention
	if err := json.Unmarshal(payload, &mentions); err != nil {
		return art, fmt.Errorf("decoding citation_data: %w", err)
	}
	if mentions == nil {
		mentions = []paper.CitationMention{}
	}
	art.Citations = mentions
	return art, nil
}
