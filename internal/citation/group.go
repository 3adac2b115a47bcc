package citation

import "github.com/arxgraph/arxgraph/internal/paper"

// ResolvedMention pairs a raw mention with its resolution outcome.
type ResolvedMention struct {
	Mention    paper.CitationMention
	Resolution Resolution
}

// GroupByRef groups resolved mentions by local reference id. Unresolved
// mentions are dropped. Within a group, mentions with identical explanation
// text collapse to one entry (set semantics on the explanation string).
func GroupByRef(resolved []ResolvedMention) map[string][]paper.CitationGroup {
	groups := make(map[string][]paper.CitationGroup)
	seen := make(map[string]map[string]bool)

	for _, rm := range resolved {
		if !rm.Resolution.Resolved() {
			continue
		}
		refID := rm.Resolution.RefID

		if seen[refID] == nil {
			seen[refID] = make(map[string]bool)
		}
		if seen[refID][rm.Mention.Explanation] {
			continue
		}
		seen[refID][rm.Mention.Explanation] = true

		groups[refID] = append(groups[refID], paper.CitationGroup{
			Category:    rm.Mention.Category,
			Explanation: rm.Mention.Explanation,
		})
	}

	return groups
}
