package viz

import (
	"github.com/arxgraph/arxgraph/internal/graph"
)

const (
	defaultNodeSize  = 30
	defaultNodeColor = "#4A90D9"
)

// FromDiGraph snapshots a citation graph into renderable form. Nodes come
// out in sorted key order so the output is stable across runs. Nodes without
// an explicit size or color get the rendering defaults.
func FromDiGraph(g *graph.DiGraph) *GraphData {
	data := &GraphData{
		Nodes: make([]Node, 0, g.Len()),
	}

	for _, id := range g.SortedNodes() {
		attrs := g.Attrs(id)

		node := Node{
			ID:      attrs.Key,
			Label:   attrs.Key,
			Title:   attrs.Title,
			ArxivID: attrs.ArxivID,
			Size:    attrs.Size,
			Color:   attrs.Color,
		}
		if node.Size == 0 {
			node.Size = defaultNodeSize
		}
		if node.Color == "" {
			node.Color = defaultNodeColor
		}
		data.Nodes = append(data.Nodes, node)

		srcKey := attrs.Key
		for _, e := range g.OutEdges(id) {
			data.Edges = append(data.Edges, Edge{
				Source:      srcKey,
				Target:      g.Attrs(e.To).Key,
				Category:    e.Category,
				Explanation: e.Explanation,
			})
		}
	}

	return data
}
