package graph

import "strings"

const (
	// HighlightColor marks seed nodes in ego-graph output.
	HighlightColor = "orange"

	// LocalEgoMinDegree is the degree floor for the locally built graph.
	LocalEgoMinDegree = 3

	// ExternalEgoMinDegree is the degree floor for the citation-count graph
	// built from the external API, which is sparser.
	ExternalEgoMinDegree = 2

	// DefaultMaxEgoNodes is the node budget ego graphs are trimmed to.
	DefaultMaxEgoNodes = 25
)

// FindNodesByKeyword returns the handles of nodes whose key contains the
// keyword, case-insensitively.
func (g *DiGraph) FindNodesByKeyword(keyword string) []NodeID {
	keyword = strings.ToLower(keyword)
	var matches []NodeID
	for _, id := range g.Nodes() {
		if strings.Contains(strings.ToLower(g.nodes[id].Key), keyword) {
			matches = append(matches, id)
		}
	}
	return matches
}

// FindNodeByArxivID returns the node carrying the given arXiv id.
func (g *DiGraph) FindNodeByArxivID(arxivID string) (NodeID, bool) {
	if arxivID == "" {
		return 0, false
	}
	for _, id := range g.Nodes() {
		if g.nodes[id].ArxivID == arxivID {
			return id, true
		}
	}
	return 0, false
}

// EgoGraph returns the subgraph induced by a seed and every node within the
// given radius of it, following edges in both directions.
func (g *DiGraph) EgoGraph(seed NodeID, radius int) *DiGraph {
	dist := map[NodeID]int{seed: 0}
	frontier := []NodeID{seed}
	for d := 0; d < radius; d++ {
		var next []NodeID
		for _, id := range frontier {
			for _, nb := range g.Neighbors(id) {
				if _, ok := dist[nb]; !ok {
					dist[nb] = d + 1
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	ids := make([]NodeID, 0, len(dist))
	for _, id := range g.Nodes() {
		if _, ok := dist[id]; ok {
			ids = append(ids, id)
		}
	}
	return g.Subgraph(ids)
}

// CombinedEgoGraph unions the radius-1 ego graphs of all seeds, drops nodes
// whose combined degree falls below minDegree, highlights the seeds, and
// trims the result to maxNodes.
func (g *DiGraph) CombinedEgoGraph(seeds []NodeID, minDegree, maxNodes int) *DiGraph {
	member := make(map[NodeID]bool)
	for _, seed := range seeds {
		ego := g.EgoGraph(seed, 1)
		for _, id := range ego.Nodes() {
			if orig, ok := g.NodeByKey(ego.Attrs(id).Key); ok {
				member[orig] = true
			}
		}
	}

	var ids []NodeID
	for _, id := range g.Nodes() {
		if member[id] {
			ids = append(ids, id)
		}
	}
	combined := g.Subgraph(ids)

	// Degrees are evaluated before any removal so the filter is a single
	// pass, not a cascade.
	var lowDegree []NodeID
	for _, id := range combined.Nodes() {
		if combined.Degree(id) < minDegree {
			lowDegree = append(lowDegree, id)
		}
	}
	for _, id := range lowDegree {
		combined.RemoveNode(id)
	}

	for _, seed := range seeds {
		if id, ok := combined.NodeByKey(g.Attrs(seed).Key); ok {
			combined.SetColor(id, HighlightColor)
		}
	}

	combined.TrimLeastDegree(maxNodes)
	return combined
}

// TrimLeastDegree repeatedly removes the single lowest-degree node until at
// most maxNodes remain. Ties break to the first node in sorted key order, so
// trimming is deterministic. This is a greedy heuristic, not an optimal
// sparsification.
func (g *DiGraph) TrimLeastDegree(maxNodes int) {
	for g.Len() > maxNodes {
		var victim NodeID
		minDegree := -1
		for _, id := range g.SortedNodes() {
			d := g.Degree(id)
			if minDegree < 0 || d < minDegree {
				minDegree = d
				victim = id
			}
		}
		g.RemoveNode(victim)
	}
}

// ShortestPath returns the node keys along an unweighted shortest directed
// path from src to dst. The boolean is false when no path exists; a
// disconnected query is not an error.
func (g *DiGraph) ShortestPath(srcKey, dstKey string) ([]string, bool) {
	src, ok := g.NodeByKey(srcKey)
	if !ok {
		return nil, false
	}
	dst, ok := g.NodeByKey(dstKey)
	if !ok {
		return nil, false
	}
	if src == dst {
		return []string{g.nodes[src].Key}, true
	}

	prev := map[NodeID]NodeID{src: src}
	queue := []NodeID{src}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range g.OutEdges(id) {
			if _, seen := prev[e.To]; seen {
				continue
			}
			prev[e.To] = id
			if e.To == dst {
				return g.tracePath(prev, src, dst), true
			}
			queue = append(queue, e.To)
		}
	}
	return nil, false
}

func (g *DiGraph) tracePath(prev map[NodeID]NodeID, src, dst NodeID) []string {
	var rev []string
	for id := dst; ; id = prev[id] {
		rev = append(rev, g.nodes[id].Key)
		if id == src {
			break
		}
	}
	path := make([]string, len(rev))
	for i, key := range rev {
		path[len(rev)-1-i] = key
	}
	return path
}
