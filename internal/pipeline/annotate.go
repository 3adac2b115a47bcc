// Package pipeline runs the citation-graph construction batch: parse raw
// mentions, resolve them against each paper's reference list, group by
// reference, and link references to the corpus title index.
package pipeline

import (
	"context"
	"time"

	"github.com/arxgraph/arxgraph/internal/citation"
	"github.com/arxgraph/arxgraph/internal/corpus"
	"github.com/arxgraph/arxgraph/internal/paper"
)

// ProgressReporter receives progress updates during the batch run.
type ProgressReporter interface {
	OnProgress(current, total int)
}

// ProgressFunc is a function adapter for ProgressReporter.
type ProgressFunc func(current, total int)

// OnProgress implements ProgressReporter.
func (f ProgressFunc) OnProgress(current, total int) {
	f(current, total)
}

// Stats summarizes one pipeline run.
type Stats struct {
	Processed         int           `json:"processed"`
	Skipped           int           `json:"skipped"` // Papers with no mentions
	NumericPapers     int           `json:"numeric_papers"`
	AuthorYearPapers  int           `json:"author_year_papers"`
	ResolvedMentions  int           `json:"resolved_mentions"`
	UnresolvedParse   int           `json:"unresolved_parse"`
	UnresolvedNoMatch int           `json:"unresolved_no_match"`
	LinkedRefs        int           `json:"linked_refs"`   // Mapped with an arXiv id
	UnlinkedRefs      int           `json:"unlinked_refs"` // Mapped by title only
	Duration          time.Duration `json:"-"`
}

// Pipeline drives the batch. The run is single-threaded by design: each
// paper's resolution is independent, and the only ordering the output
// depends on is each paper's own reference-list order.
type Pipeline struct {
	index    *corpus.TitleIndex
	progress ProgressReporter
}

// New creates a pipeline over the given title index.
func New(index *corpus.TitleIndex) *Pipeline {
	return &Pipeline{index: index}
}

// SetProgressReporter sets the progress reporter for the run.
func (p *Pipeline) SetProgressReporter(reporter ProgressReporter) {
	p.progress = reporter
}

// Run processes every annotated paper in place, filling GroupedCitations and
// MappedCitations. A bad mention never drops its paper; the only errors out
// of Run are context cancellation.
func (p *Pipeline) Run(ctx context.Context, annotated []paper.AnnotatedPaper) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}
	total := len(annotated)

	for i := range annotated {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if p.progress != nil {
			p.progress.OnProgress(i+1, total)
		}

		art := &annotated[i]
		if !art.HasCitations() {
			stats.Skipped++
			continue
		}

		p.annotateOne(art, stats)
		stats.Processed++
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// annotateOne runs the full parse→resolve→group→link chain for one paper.
func (p *Pipeline) annotateOne(art *paper.AnnotatedPaper, stats *Stats) {
	style := citation.DetectStyle(art.Citations[0].Citation)

	var resolved []citation.ResolvedMention
	switch style {
	case citation.StyleNumeric:
		stats.NumericPapers++
		for _, m := range citation.ExpandMentions(art.Citations) {
			resolved = append(resolved, citation.ResolvedMention{
				Mention:    m,
				Resolution: citation.ResolveNumeric(m.Citation),
			})
		}
	default:
		stats.AuthorYearPapers++
		for _, m := range art.Citations {
			resolved = append(resolved, citation.ResolvedMention{
				Mention:    m,
				Resolution: citation.ResolveAuthorYear(m, art.References),
			})
		}
	}

	for _, rm := range resolved {
		switch rm.Resolution.Reason {
		case citation.ReasonParseError:
			stats.UnresolvedParse++
		case citation.ReasonNoMatch:
			stats.UnresolvedNoMatch++
		default:
			stats.ResolvedMentions++
		}
	}

	art.GroupedCitations = citation.GroupByRef(resolved)
	art.MappedCitations = p.linkReferences(art, stats)

	if art.ArxivID == "" {
		if id, ok := p.index.Lookup(art.Title); ok {
			art.ArxivID = id
		}
	}
}

// linkReferences maps each grouped local reference to the corpus. A missing
// title match keeps the entry with an empty arXiv id; a ref id pointing past
// the reference list (numeric citations can overshoot) drops the group.
func (p *Pipeline) linkReferences(art *paper.AnnotatedPaper, stats *Stats) map[string]paper.MappedCitation {
	mapped := make(map[string]paper.MappedCitation, len(art.GroupedCitations))

	for refID, groups := range art.GroupedCitations {
		ref, ok := art.FindReference(refID)
		if !ok {
			continue
		}

		title := corpus.CleanText(ref.Title)
		arxivID, found := p.index.Lookup(title)
		if found {
			stats.LinkedRefs++
		} else {
			stats.UnlinkedRefs++
		}

		mapped[refID] = paper.MappedCitation{
			Title:    title,
			ArxivID:  arxivID,
			Citation: groups,
		}
	}

	return mapped
}
