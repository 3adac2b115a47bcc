package s2

import (
	"context"
	"strings"

	"github.com/arxgraph/arxgraph/internal/graph"
)

const (
	// MaxNodeSize caps the visualization size attribute.
	MaxNodeSize = 100

	// DefaultNodeSize is used for references with no known citation count.
	DefaultNodeSize = 10
)

// titleStopwords are excluded when abbreviating a title to its initials.
var titleStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "while": true, "with": true, "of": true,
	"at": true, "by": true, "for": true, "to": true, "in": true,
	"on": true, "over": true, "under": true,
}

// AbbreviateTitle shortens a paper title for use as a compact node key.
// Titles with a colon keep their prefix; otherwise the initials of the
// significant words are used.
func AbbreviateTitle(title string) string {
	if before, _, found := strings.Cut(title, ":"); found {
		return before
	}

	var sb strings.Builder
	for _, word := range strings.Fields(title) {
		if titleStopwords[strings.ToLower(word)] {
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]))
	}
	return sb.String()
}

// Seed is one retrieved paper an ego graph is expanded around.
type Seed struct {
	ArxivID string
	Title   string
}

// BuildEgoGraph queries the batch citation API for the seeds' reference
// lists and assembles the citation-count graph: seed nodes connect to every
// referenced paper, node sizes scale with citation counts, low-degree nodes
// are dropped, seeds are highlighted, and the result is trimmed to the node
// budget. API failures surface to the caller untouched.
func BuildEgoGraph(ctx context.Context, client *Client, seeds []Seed) (*graph.DiGraph, error) {
	ids := make([]string, len(seeds))
	for i, s := range seeds {
		ids[i] = "arxiv:" + s.ArxivID
	}

	batch, err := client.PaperBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	g := graph.New()
	seedKeys := make(map[string]bool, len(seeds))

	for idx, item := range batch {
		if item == nil || idx >= len(seeds) {
			continue
		}
		seed := seeds[idx]
		key := AbbreviateTitle(seed.Title)
		seedKeys[key] = true

		source := g.AddNode(graph.NodeAttrs{
			Key:     key,
			Title:   seed.Title,
			ArxivID: seed.ArxivID,
			Size:    nodeSize(&item.CitationCount),
		})

		for _, ref := range item.References {
			if ref.Title == "" {
				continue
			}
			target := g.AddNode(graph.NodeAttrs{
				Key:     AbbreviateTitle(ref.Title),
				Title:   ref.Title,
				ArxivID: ref.PaperID,
				Size:    nodeSize(ref.CitationCount),
			})
			g.AddEdge(source, target, graph.CategoryUnknown, graph.CategoryUnknown)
		}
	}

	var lowDegree []graph.NodeID
	for _, id := range g.Nodes() {
		if g.Degree(id) < graph.ExternalEgoMinDegree {
			lowDegree = append(lowDegree, id)
		}
	}
	for _, id := range lowDegree {
		g.RemoveNode(id)
	}

	for key := range seedKeys {
		if id, ok := g.NodeByKey(key); ok {
			g.SetColor(id, graph.HighlightColor)
		}
	}

	g.TrimLeastDegree(graph.DefaultMaxEgoNodes)
	return g, nil
}

// nodeSize scales a citation count into a bounded node size.
func nodeSize(count *int) int {
	if count == nil {
		return DefaultNodeSize
	}
	size := *count * 10
	if size > MaxNodeSize {
		return MaxNodeSize
	}
	return size
}
