package graph

import (
	"strings"
	"testing"

	"github.com/arxgraph/arxgraph/internal/paper"
)

func annotatedFixture() []paper.AnnotatedPaper {
	return []paper.AnnotatedPaper{
		{
			Title:   "Current Paper",
			ArxivID: "2106.00002",
			MappedCitations: map[string]paper.MappedCitation{
				"b0": {
					Title:   "foo",
					ArxivID: "2106.00001",
					Citation: []paper.CitationGroup{
						{Category: "Supporting Evidence", Explanation: "backs the claim"},
						{Category: "Supporting Evidence", Explanation: "backs the claim"},
						{Category: "Data Source", Explanation: "provides data"},
					},
				},
				"b1": {
					Title:    "mystery paper",
					ArxivID:  "",
					Citation: nil, // no usable category/explanation
				},
			},
		},
	}
}

func TestBuildEmitsForwardAndInverseEdges(t *testing.T) {
	g := Build(annotatedFixture())

	foo, ok := g.NodeByKey("foo")
	if !ok {
		t.Fatal("cited paper node missing")
	}
	current, ok := g.NodeByKey("current paper")
	if !ok {
		t.Fatal("citing paper node missing")
	}

	var gotForward, gotInverse bool
	for _, e := range g.OutEdges(foo) {
		if e.To == current && e.Category == "Supporting Evidence" {
			gotForward = true
			if e.Explanation != "backs the claim" {
				t.Errorf("forward explanation = %q (duplicates must collapse)", e.Explanation)
			}
		}
	}
	for _, e := range g.OutEdges(current) {
		if e.To == foo && e.Category == "Is Evidence For" {
			gotInverse = true
		}
	}
	if !gotForward {
		t.Error("missing Supporting Evidence edge foo -> current paper")
	}
	if !gotInverse {
		t.Error("missing Is Evidence For edge current paper -> foo")
	}
}

func TestBuildGraphSymmetry(t *testing.T) {
	g := Build(annotatedFixture())

	// Every categorized edge A->B implies the inverse-labeled edge B->A.
	for _, id := range g.Nodes() {
		for _, e := range g.OutEdges(id) {
			if e.Category == CategoryUnknown {
				continue
			}
			inv := InverseOf(e.Category)
			found := false
			for _, back := range g.OutEdges(e.To) {
				if back.To == id && (back.Category == inv || InverseOf(back.Category) == e.Category) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("edge %q -> %q (%s) has no matching reverse edge",
					g.Attrs(id).Key, g.Attrs(e.To).Key, e.Category)
			}
		}
	}
}

func TestBuildUnknownEdgeIsOneDirectional(t *testing.T) {
	g := Build(annotatedFixture())

	mystery, ok := g.NodeByKey("mystery paper")
	if !ok {
		t.Fatal("mystery paper node missing (null arxiv id must still be linked)")
	}
	if g.Attrs(mystery).ArxivID != "" {
		t.Errorf("mystery paper arxiv id = %q, want empty", g.Attrs(mystery).ArxivID)
	}

	out := g.OutEdges(mystery)
	if len(out) != 1 || out[0].Category != CategoryUnknown {
		t.Fatalf("OutEdges(mystery) = %v, want one Unk edge", out)
	}
	// No reverse edge for Unk.
	current, _ := g.NodeByKey("current paper")
	for _, e := range g.OutEdges(current) {
		if e.To == mystery {
			t.Errorf("unexpected reverse edge to mystery paper: %v", e)
		}
	}
}

func TestBuildEveryEdgeLabeled(t *testing.T) {
	g := Build(annotatedFixture())
	for _, id := range g.Nodes() {
		for _, e := range g.OutEdges(id) {
			if e.Category == "" || e.Explanation == "" {
				t.Errorf("edge from %q has empty label: %+v", g.Attrs(id).Key, e)
			}
		}
	}
}

func TestBuildAggregatesExplanationsByCategory(t *testing.T) {
	annotated := []paper.AnnotatedPaper{
		{
			Title:   "Citing",
			ArxivID: "2",
			MappedCitations: map[string]paper.MappedCitation{
				"b0": {
					Title:   "cited",
					ArxivID: "1",
					Citation: []paper.CitationGroup{
						{Category: "Data Source", Explanation: "first"},
						{Category: "Data Source", Explanation: "second"},
					},
				},
			},
		},
	}

	g := Build(annotated)
	cited, _ := g.NodeByKey("cited")
	edges := g.OutEdges(cited)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1 aggregated edge", len(edges))
	}
	if !strings.Contains(edges[0].Explanation, "first") || !strings.Contains(edges[0].Explanation, "second") {
		t.Errorf("aggregated explanation = %q", edges[0].Explanation)
	}
	if !strings.Contains(edges[0].Explanation, "; ") {
		t.Errorf("explanations must be joined with %q: %q", "; ", edges[0].Explanation)
	}
}
