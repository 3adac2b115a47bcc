package graph

import (
	"sort"
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
)

// Build assembles the citation graph from the pipeline's annotated papers.
// For every mapped citation the cited paper gets an edge to the citing paper
// per relationship category, plus a reverse edge with the category's inverse
// label. Citations with no usable category/explanation produce a single
// one-directional CategoryUnknown edge.
func Build(annotated []paper.AnnotatedPaper) *DiGraph {
	g := New()

	for i := range annotated {
		art := &annotated[i]
		if len(art.MappedCitations) == 0 {
			continue
		}

		citingKey := strings.ToLower(art.Title)
		citing := g.AddNode(NodeAttrs{
			Key:     citingKey,
			Title:   art.Title,
			ArxivID: art.ArxivID,
		})

		// Map iteration order is randomized; sort ref ids so edge order is
		// reproducible across runs.
		refIDs := make([]string, 0, len(art.MappedCitations))
		for refID := range art.MappedCitations {
			refIDs = append(refIDs, refID)
		}
		sort.Strings(refIDs)

		for _, refID := range refIDs {
			mapped := art.MappedCitations[refID]
			citedKey := strings.ToLower(mapped.Title)
			if citedKey == "" {
				continue
			}
			cited := g.AddNode(NodeAttrs{
				Key:     citedKey,
				Title:   mapped.Title,
				ArxivID: mapped.ArxivID,
			})

			addCitationEdges(g, cited, citing, mapped.Citation)
		}
	}

	return g
}

// addCitationEdges emits the per-category edge pair for one cited→citing
// relationship.
func addCitationEdges(g *DiGraph, cited, citing NodeID, groups []paper.CitationGroup) {
	byCategory := aggregateByCategory(groups)
	if len(byCategory) == 0 {
		g.AddEdge(cited, citing, CategoryUnknown, CategoryUnknown)
		return
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		explanation := byCategory[category]
		g.AddEdge(cited, citing, category, explanation)
		g.AddEdge(citing, cited, InverseOf(category), explanation)
	}
}

// aggregateByCategory joins the deduplicated explanations of each category
// with "; ". Groups missing either field are skipped.
func aggregateByCategory(groups []paper.CitationGroup) map[string]string {
	type bucket struct {
		seen  map[string]bool
		texts []string
	}
	buckets := make(map[string]*bucket)

	for _, grp := range groups {
		if grp.Category == "" || grp.Explanation == "" {
			continue
		}
		b := buckets[grp.Category]
		if b == nil {
			b = &bucket{seen: make(map[string]bool)}
			buckets[grp.Category] = b
		}
		if b.seen[grp.Explanation] {
			continue
		}
		b.seen[grp.Explanation] = true
		b.texts = append(b.texts, grp.Explanation)
	}

	result := make(map[string]string, len(buckets))
	for category, b := range buckets {
		result[category] = strings.Join(b.texts, "; ")
	}
	return result
}
