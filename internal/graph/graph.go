// Package graph implements the directed, labeled citation graph and its
// query operations. The structure is a plain adjacency list with integer
// node handles; nodes are keyed by a unique string (lowercased paper title
// for the locally built graph, abbreviated title for the external one).
package graph

import "sort"

// NodeID is a handle into a graph's node arena. Handles are only meaningful
// within the graph that issued them.
type NodeID int

// NodeAttrs carries the attributes stored on a graph node.
type NodeAttrs struct {
	Key     string `json:"key"`      // Unique node key
	Title   string `json:"title"`    // Display title
	ArxivID string `json:"arxiv_id"` // Empty when the title index had no match
	Size    int    `json:"size,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Edge is one directed, labeled edge. Every edge carries a non-empty
// category; uncategorized citations use CategoryUnknown.
type Edge struct {
	To          NodeID
	Category    string
	Explanation string
}

// DiGraph is a directed multi-relationship graph. Node removal is supported
// (trimming needs it); removed handles stay allocated but dead.
type DiGraph struct {
	nodes   []NodeAttrs
	byKey   map[string]NodeID
	out     [][]Edge
	in      [][]Edge // mirror adjacency; Edge.To is the source node
	removed []bool
}

// New creates an empty graph.
func New() *DiGraph {
	return &DiGraph{byKey: make(map[string]NodeID)}
}

// AddNode adds a node with the given attributes, or returns the existing
// handle when the key is already present (attributes of the first insertion
// win).
func (g *DiGraph) AddNode(attrs NodeAttrs) NodeID {
	if id, ok := g.byKey[attrs.Key]; ok && !g.removed[id] {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, attrs)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.removed = append(g.removed, false)
	g.byKey[attrs.Key] = id
	return id
}

// AddEdge adds a directed edge between two live nodes.
func (g *DiGraph) AddEdge(from, to NodeID, category, explanation string) {
	g.out[from] = append(g.out[from], Edge{To: to, Category: category, Explanation: explanation})
	g.in[to] = append(g.in[to], Edge{To: from, Category: category, Explanation: explanation})
}

// NodeByKey returns the handle for a key.
func (g *DiGraph) NodeByKey(key string) (NodeID, bool) {
	id, ok := g.byKey[key]
	if !ok || g.removed[id] {
		return 0, false
	}
	return id, true
}

// Attrs returns the attributes of a node.
func (g *DiGraph) Attrs(id NodeID) NodeAttrs {
	return g.nodes[id]
}

// SetColor sets the visualization color attribute of a node.
func (g *DiGraph) SetColor(id NodeID, color string) {
	g.nodes[id].Color = color
}

// SetSize sets the visualization size attribute of a node.
func (g *DiGraph) SetSize(id NodeID, size int) {
	g.nodes[id].Size = size
}

// Len returns the number of live nodes.
func (g *DiGraph) Len() int {
	n := 0
	for id := range g.nodes {
		if !g.removed[id] {
			n++
		}
	}
	return n
}

// Nodes returns the handles of all live nodes in insertion order.
func (g *DiGraph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		if !g.removed[id] {
			ids = append(ids, NodeID(id))
		}
	}
	return ids
}

// SortedNodes returns live node handles ordered by key. Trimming uses this
// order for its tie-break so the result is stable across runs.
func (g *DiGraph) SortedNodes() []NodeID {
	ids := g.Nodes()
	sort.Slice(ids, func(i, j int) bool {
		return g.nodes[ids[i]].Key < g.nodes[ids[j]].Key
	})
	return ids
}

// OutEdges returns the live outgoing edges of a node.
func (g *DiGraph) OutEdges(id NodeID) []Edge {
	return g.liveEdges(g.out[id])
}

// InEdges returns the live incoming edges of a node; Edge.To is the source.
func (g *DiGraph) InEdges(id NodeID) []Edge {
	return g.liveEdges(g.in[id])
}

func (g *DiGraph) liveEdges(edges []Edge) []Edge {
	live := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !g.removed[e.To] {
			live = append(live, e)
		}
	}
	return live
}

// Degree returns the combined in+out degree of a node, counting only edges
// to live endpoints.
func (g *DiGraph) Degree(id NodeID) int {
	return len(g.OutEdges(id)) + len(g.InEdges(id))
}

// EdgeCount returns the number of live edges.
func (g *DiGraph) EdgeCount() int {
	n := 0
	for id := range g.out {
		if g.removed[id] {
			continue
		}
		n += len(g.liveEdges(g.out[id]))
	}
	return n
}

// RemoveNode marks a node dead. Its key becomes free and edges touching it
// stop being reported.
func (g *DiGraph) RemoveNode(id NodeID) {
	if g.removed[id] {
		return
	}
	g.removed[id] = true
	delete(g.byKey, g.nodes[id].Key)
}

// Neighbors returns the live nodes adjacent to id in either direction, each
// at most once.
func (g *DiGraph) Neighbors(id NodeID) []NodeID {
	seen := make(map[NodeID]bool)
	var result []NodeID
	for _, e := range g.OutEdges(id) {
		if !seen[e.To] {
			seen[e.To] = true
			result = append(result, e.To)
		}
	}
	for _, e := range g.InEdges(id) {
		if !seen[e.To] {
			seen[e.To] = true
			result = append(result, e.To)
		}
	}
	return result
}

// Subgraph returns a new graph containing the given nodes and every edge of
// g whose endpoints are both included.
func (g *DiGraph) Subgraph(ids []NodeID) *DiGraph {
	sub := New()
	included := make(map[NodeID]NodeID, len(ids))
	var order []NodeID
	for _, id := range ids {
		if g.removed[id] {
			continue
		}
		if _, ok := included[id]; ok {
			continue
		}
		included[id] = sub.AddNode(g.nodes[id])
		order = append(order, id)
	}
	for _, id := range order {
		for _, e := range g.out[id] {
			if to, ok := included[e.To]; ok {
				sub.AddEdge(included[id], to, e.Category, e.Explanation)
			}
		}
	}
	return sub
}
