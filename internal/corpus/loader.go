// Package corpus loads the arXiv metadata snapshot and maintains the
// corpus-wide title index used for cross-paper linking.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
)

// MaxSnapshotLineCapacity is the maximum buffer size for reading snapshot
// lines (1MB per line; abstracts never come close).
const MaxSnapshotLineCapacity = 1024 * 1024

// DefaultCategories are the arXiv categories ingested by default.
var DefaultCategories = []string{"cs.AI", "cs.CV", "cs.IR", "cs.LG", "cs.CL"}

// LoadOptions controls snapshot loading.
type LoadOptions struct {
	// Categories filters papers to those whose category string contains at
	// least one of the listed categories. Empty means keep everything.
	Categories []string
}

// LoadSnapshot reads a line-delimited JSON arXiv metadata snapshot. Title and
// abstract whitespace is collapsed. A malformed line aborts the load: unlike
// per-citation failures, corpus-format errors are fatal to the run.
func LoadSnapshot(path string, opts LoadOptions) ([]paper.Paper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var papers []paper.Paper
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxSnapshotLineCapacity)
	scanner.Buffer(buf, MaxSnapshotLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p paper.Paper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing snapshot line %d: %w", lineNum, err)
		}

		if !matchesCategories(p.Categories, opts.Categories) {
			continue
		}

		p.Title = CleanText(p.Title)
		p.Abstract = CleanText(p.Abstract)
		papers = append(papers, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	return papers, nil
}

// matchesCategories reports whether the paper's category string contains any
// of the wanted categories.
func matchesCategories(categories string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if strings.Contains(categories, w) {
			return true
		}
	}
	return false
}

// CleanText collapses newlines and runs of whitespace into single spaces and
// trims the result. Snapshot titles and abstracts carry hard line wraps.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
