// Package viz provides citation graph visualization functionality.
package viz

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a paper in the graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Tooltip fields
	Title   string `json:"title,omitempty"`
	ArxivID string `json:"arxivId,omitempty"`

	// Rendering
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Edge represents one citation relationship between two papers.
type Edge struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Category    string `json:"category"`
	Explanation string `json:"explanation,omitempty"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
