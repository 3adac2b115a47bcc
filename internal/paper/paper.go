// Package paper defines the core domain types for the citation pipeline.
package paper

// Paper represents one record from the arXiv metadata snapshot.
type Paper struct {
	// Identity
	ArxivID string `json:"id"` // Corpus-wide identifier (e.g. "2106.15928")

	// Metadata
	Title      string `json:"title"`
	Abstract   string `json:"abstract"`
	Categories string `json:"categories"`  // Space-separated (e.g. "cs.CL cs.LG")
	UpdateDate string `json:"update_date"` // YYYY-MM-DD

	// Authors as parsed by the snapshot: [last, first, suffix] per author.
	Authors [][]string `json:"authors_parsed,omitempty"`
}

// RefEntry is one entry in a paper's own bibliography. The ref id is scoped
// to that paper ("b0", "b1", ...) and is meaningless outside it.
type RefEntry struct {
	RefID   string `json:"ref_id"`
	Authors string `json:"authors"` // Free text, ";"-separated author list
	Year    string `json:"year"`    // Free text, not always a clean 4-digit year
	Title   string `json:"title"`
}

// CitationMention is a raw citation marker found in a paper's body, tagged
// with the category and explanation the annotator attached to it.
type CitationMention struct {
	Citation    string `json:"Citation"`
	Category    string `json:"Category"`
	Explanation string `json:"Explanation"`
}

// CitationGroup is the deduplicated (category, explanation) set for all
// mentions that resolved to the same local reference.
type CitationGroup struct {
	Category    string `json:"Category"`
	Explanation string `json:"Explanation"`
}

// MappedCitation links a local reference id to the corpus: the referenced
// title, its arXiv id when the title index knows it (empty otherwise), and
// the grouped mentions behind the link.
type MappedCitation struct {
	Title    string          `json:"title"`
	ArxivID  string          `json:"arxiv_id"`
	Citation []CitationGroup `json:"citation"`
}

// AnnotatedPaper is one record of the annotated citation dataset: the corpus
// fields plus the externally supplied mentions and reference list, and the
// two maps the pipeline derives from them.
type AnnotatedPaper struct {
	ArxivID    string            `json:"arxiv_id,omitempty"`
	Title      string            `json:"title"`
	Abstract   string            `json:"abstract,omitempty"`
	Categories string            `json:"categories,omitempty"`
	UpdateDate string            `json:"update_date,omitempty"`
	References []RefEntry        `json:"references"`
	Citations  []CitationMention `json:"citation_data"`

	// Derived by the pipeline.
	GroupedCitations map[string][]CitationGroup `json:"grouped_citations,omitempty"`
	MappedCitations  map[string]MappedCitation  `json:"mapped_citation,omitempty"`
}

// HasCitations reports whether the paper carries any annotated mentions.
func (a *AnnotatedPaper) HasCitations() bool {
	return len(a.Citations) > 0
}

// FindReference returns the bibliography entry with the given local ref id.
func (a *AnnotatedPaper) FindReference(refID string) (RefEntry, bool) {
	for _, ref := range a.References {
		if ref.RefID == refID {
			return ref, true
		}
	}
	return RefEntry{}, false
}
