package semantic

import (
	"context"
	"fmt"
	"time"

	"github.com/arxgraph/arxgraph/internal/embedding"
	"github.com/arxgraph/arxgraph/internal/paper"
)

// ProgressReporter receives progress updates during index building.
type ProgressReporter interface {
	// OnProgress is called with the current progress.
	OnProgress(current, total int)
}

// ProgressFunc is a function adapter for ProgressReporter.
type ProgressFunc func(current, total int)

// OnProgress implements ProgressReporter.
func (f ProgressFunc) OnProgress(current, total int) {
	f(current, total)
}

// Builder constructs a semantic index from paper abstracts.
type Builder struct {
	provider embedding.Provider
	progress ProgressReporter
}

// NewBuilder creates a new index builder.
func NewBuilder(provider embedding.Provider) *Builder {
	return &Builder{provider: provider}
}

// SetProgressReporter sets the progress reporter for the builder.
func (b *Builder) SetProgressReporter(reporter ProgressReporter) {
	b.progress = reporter
}

// Build embeds the abstract of every paper and assembles the index. Papers
// without a usable abstract are skipped; overly long abstracts are truncated
// before embedding.
func (b *Builder) Build(ctx context.Context, papers []paper.Paper) (*Index, *BuildStats, error) {
	startTime := time.Now()

	idx := NewIndex(b.provider.ModelName(), b.provider.Dimensions())
	stats := &BuildStats{
		SkippedReason: "no_abstract",
	}

	total := len(papers)

	for i, p := range papers {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		if b.progress != nil {
			b.progress.OnProgress(i+1, total)
		}

		abstract := p.Abstract
		if len(abstract) < MinAbstractLength {
			stats.PapersSkipped++
			continue
		}
		if len(abstract) > MaxAbstractLength {
			abstract = abstract[:MaxAbstractLength]
		}

		emb, err := b.provider.Embed(ctx, abstract)
		if err != nil {
			return nil, nil, fmt.Errorf("embedding paper %s: %w", p.ArxivID, err)
		}

		if err := idx.Add(p.ArxivID, p.Title, emb.Vector); err != nil {
			return nil, nil, fmt.Errorf("adding embedding for %s: %w", p.ArxivID, err)
		}

		stats.PapersIndexed++
	}

	idx.PaperCount = stats.PapersIndexed
	idx.SkippedCount = stats.PapersSkipped
	idx.BuildDurationMs = time.Since(startTime).Milliseconds()

	stats.Duration = time.Since(startTime)

	return idx, stats, nil
}
