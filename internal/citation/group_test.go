package citation

import (
	"testing"

	"github.com/arxgraph/arxgraph/internal/paper"
)

func TestGroupByRef(t *testing.T) {
	resolved := []ResolvedMention{
		{
			Mention:    paper.CitationMention{Citation: "[1]", Category: "Supporting Evidence", Explanation: "backs claim A"},
			Resolution: Resolution{RefID: "b0"},
		},
		{
			Mention:    paper.CitationMention{Citation: "[1]", Category: "Supporting Evidence", Explanation: "backs claim A"},
			Resolution: Resolution{RefID: "b0"},
		},
		{
			Mention:    paper.CitationMention{Citation: "[1]", Category: "Data Source", Explanation: "provides the corpus"},
			Resolution: Resolution{RefID: "b0"},
		},
		{
			Mention:    paper.CitationMention{Citation: "[2]", Category: "Methodological Basis", Explanation: "adopts the method"},
			Resolution: Resolution{RefID: "b1"},
		},
		{
			Mention:    paper.CitationMention{Citation: "[99]", Category: "Unk", Explanation: "never linked"},
			Resolution: Resolution{Reason: ReasonNoMatch},
		},
	}

	groups := GroupByRef(resolved)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	b0 := groups["b0"]
	if len(b0) != 2 {
		t.Fatalf("b0 has %d entries, want 2 (identical explanations deduplicated)", len(b0))
	}
	if b0[0].Explanation != "backs claim A" || b0[1].Explanation != "provides the corpus" {
		t.Errorf("b0 groups = %v", b0)
	}

	b1 := groups["b1"]
	if len(b1) != 1 || b1[0].Category != "Methodological Basis" {
		t.Errorf("b1 groups = %v", b1)
	}

	if _, ok := groups[""]; ok {
		t.Error("unresolved mentions must not produce a group")
	}
}

func TestGroupByRefOrderIndependent(t *testing.T) {
	a := ResolvedMention{
		Mention:    paper.CitationMention{Category: "Supporting Evidence", Explanation: "same text"},
		Resolution: Resolution{RefID: "b3"},
	}
	b := ResolvedMention{
		Mention:    paper.CitationMention{Category: "Supporting Evidence", Explanation: "same text"},
		Resolution: Resolution{RefID: "b3"},
	}

	forward := GroupByRef([]ResolvedMention{a, b})
	backward := GroupByRef([]ResolvedMention{b, a})

	if len(forward["b3"]) != 1 || len(backward["b3"]) != 1 {
		t.Errorf("duplicate explanations must collapse regardless of order: forward=%v backward=%v",
			forward["b3"], backward["b3"])
	}
}
