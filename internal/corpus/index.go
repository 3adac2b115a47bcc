package corpus

import (
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
)

// TitleIndex maps lowercased paper titles to arXiv ids. Title is a natural
// but imperfect join key: two distinct papers sharing a lowercased title
// collapse into one entry, and the later one wins. This imprecision is
// accepted, not corrected.
type TitleIndex struct {
	byTitle map[string]string
}

// NewTitleIndex builds a title index over the given papers.
func NewTitleIndex(papers []paper.Paper) *TitleIndex {
	idx := &TitleIndex{byTitle: make(map[string]string, len(papers))}
	for _, p := range papers {
		idx.Add(p.Title, p.ArxivID)
	}
	return idx
}

// NewTitleIndexFromMap wraps a pre-built lowercased-title map (e.g. one read
// back from the SQLite cache).
func NewTitleIndexFromMap(m map[string]string) *TitleIndex {
	if m == nil {
		m = make(map[string]string)
	}
	return &TitleIndex{byTitle: m}
}

// Add registers a title without lowercasing assumptions on the caller.
func (idx *TitleIndex) Add(title, arxivID string) {
	idx.byTitle[strings.ToLower(title)] = arxivID
}

// Lookup returns the arXiv id for a title via exact lowercased match. No
// fuzzy matching is attempted; absence returns ("", false).
func (idx *TitleIndex) Lookup(title string) (string, bool) {
	id, ok := idx.byTitle[strings.ToLower(title)]
	return id, ok
}

// Len returns the number of indexed titles.
func (idx *TitleIndex) Len() int {
	return len(idx.byTitle)
}
