package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arxgraph/arxgraph/internal/graph"
	"github.com/arxgraph/arxgraph/internal/viz"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// outputGraph renders a graph as JSON, a human summary, or an HTML file.
// When htmlPath is non-empty the graph is written there instead of stdout.
func outputGraph(g *graph.DiGraph, htmlPath, layout string) {
	data := viz.FromDiGraph(g)

	if htmlPath != "" {
		opts := viz.DefaultOptions()
		if layout != "" {
			opts.Layout = layout
		}
		html, err := viz.GenerateHTML(data, opts)
		if err != nil {
			exitWithError(ExitError, "generating HTML: %v", err)
		}
		if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
			exitWithError(ExitError, "writing HTML: %v", err)
		}
		outputJSON(StatusResponse{Status: "written", Path: htmlPath})
		return
	}

	if humanOutput {
		outputHuman("%d nodes, %d edges\n", len(data.Nodes), len(data.Edges))
		for _, e := range data.Edges {
			outputHuman("  %s -[%s]-> %s\n", e.Source, e.Category, e.Target)
		}
		return
	}

	outputJSON(data)
}
