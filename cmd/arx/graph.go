package main

import (
	"context"
	"sort"
	"strings"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/graph"
	"github.com/arxgraph/arxgraph/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	egoKeyword   string
	egoQuery     string
	egoArxivID   string
	egoMinDegree int
	egoMaxNodes  int
	egoHTMLPath  string
	egoLayout    string

	trimMaxNodes int
	trimHTMLPath string
	trimLayout   string
)

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphStatsCmd)
	graphCmd.AddCommand(graphEgoCmd)
	graphCmd.AddCommand(graphPathCmd)
	graphCmd.AddCommand(graphTrimCmd)

	graphEgoCmd.Flags().StringVar(&egoKeyword, "keyword", "", "Select seed papers whose title contains this keyword")
	graphEgoCmd.Flags().StringVar(&egoQuery, "query", "", "Select seed papers by semantic search over abstracts")
	graphEgoCmd.Flags().StringVar(&egoArxivID, "arxiv-id", "", "Select the seed paper by arXiv ID")
	graphEgoCmd.Flags().IntVar(&egoMinDegree, "min-degree", graph.LocalEgoMinDegree, "Drop nodes below this combined degree")
	graphEgoCmd.Flags().IntVar(&egoMaxNodes, "max-nodes", graph.DefaultMaxEgoNodes, "Trim the result to at most this many nodes")
	graphEgoCmd.Flags().StringVar(&egoHTMLPath, "html", "", "Write an interactive HTML visualization to this path")
	graphEgoCmd.Flags().StringVar(&egoLayout, "layout", "", "HTML layout: force, circle, or grid")

	graphTrimCmd.Flags().IntVar(&trimMaxNodes, "max", graph.DefaultMaxEgoNodes, "Trim the graph to at most this many nodes")
	graphTrimCmd.Flags().StringVar(&trimHTMLPath, "html", "", "Write an interactive HTML visualization to this path")
	graphTrimCmd.Flags().StringVar(&trimLayout, "layout", "", "HTML layout: force, circle, or grid")
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build and query the citation graph",
	Long:  `Commands for building and querying the citation graph from the annotated dataset.`,
}

// buildGraph constructs the citation graph from the annotated dataset.
func buildGraph() *graph.DiGraph {
	root := mustFindWorkspace()
	return graph.Build(mustReadAnnotated(root))
}

// GraphStatsResult is the response for graph stats.
type GraphStatsResult struct {
	Nodes      int            `json:"nodes"`
	Edges      int            `json:"edges"`
	Categories map[string]int `json:"categories"`
}

var graphStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show citation graph size and relationship histogram",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := buildGraph()

		categories := make(map[string]int)
		for _, id := range g.Nodes() {
			for _, e := range g.OutEdges(id) {
				categories[e.Category]++
			}
		}

		if humanOutput {
			outputHuman("%d nodes, %d edges\n", g.Len(), g.EdgeCount())
			names := make([]string, 0, len(categories))
			for name := range categories {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				outputHuman("  %-40s %d\n", name, categories[name])
			}
			return nil
		}
		outputJSON(GraphStatsResult{Nodes: g.Len(), Edges: g.EdgeCount(), Categories: categories})
		return nil
	},
}

var graphEgoCmd = &cobra.Command{
	Use:   "ego",
	Short: "Extract the neighborhood around matching papers",
	Long: `Extract the combined neighborhood around papers selected by keyword
or arXiv ID. Low-degree nodes are dropped, seeds are highlighted, and
the result is trimmed to the node budget by least degree.`,
	RunE: runGraphEgo,
}

func runGraphEgo(cmd *cobra.Command, args []string) error {
	if egoKeyword == "" && egoQuery == "" && egoArxivID == "" {
		exitWithError(ExitError, "pass --keyword, --query, or --arxiv-id to select seed papers")
	}

	g := buildGraph()

	var seeds []graph.NodeID
	switch {
	case egoArxivID != "":
		id, ok := g.FindNodeByArxivID(egoArxivID)
		if !ok {
			exitWithError(ExitNotFound, "no paper with arXiv ID %q in the graph", egoArxivID)
		}
		seeds = []graph.NodeID{id}
	case egoQuery != "":
		seeds = resolveQuerySeeds(g, egoQuery)
		if len(seeds) == 0 {
			exitWithError(ExitNotFound, "no papers matching %q in the graph", egoQuery)
		}
	default:
		seeds = g.FindNodesByKeyword(egoKeyword)
		if len(seeds) == 0 {
			exitWithError(ExitNotFound, "no papers matching %q in the graph", egoKeyword)
		}
	}

	ego := g.CombinedEgoGraph(seeds, egoMinDegree, egoMaxNodes)
	outputGraph(ego, egoHTMLPath, egoLayout)
	return nil
}

// egoQuerySeedLimit caps how many semantic matches become ego graph seeds.
const egoQuerySeedLimit = 3

// resolveQuerySeeds turns a free-text query into seed nodes via the semantic
// index. Falls back to keyword matching when the index is missing or the
// embedding provider is unreachable.
func resolveQuerySeeds(g *graph.DiGraph, query string) []graph.NodeID {
	root := mustFindWorkspace()

	idx, err := semantic.Load(config.IndexPath(root))
	if err != nil {
		return g.FindNodesByKeyword(query)
	}

	provider := newProvider()
	ctx := context.Background()
	if err := provider.IsAvailable(ctx); err != nil {
		return g.FindNodesByKeyword(query)
	}

	results, err := idx.SearchText(ctx, provider, query, egoQuerySeedLimit, 0)
	if err != nil {
		return g.FindNodesByKeyword(query)
	}

	var seeds []graph.NodeID
	for _, r := range results {
		if id, ok := g.NodeByKey(strings.ToLower(r.Title)); ok {
			seeds = append(seeds, id)
		}
	}
	if len(seeds) == 0 {
		return g.FindNodesByKeyword(query)
	}
	return seeds
}

// PathResult is the response for graph path.
type PathResult struct {
	Found bool     `json:"found"`
	Path  []string `json:"path,omitempty"`
	Hops  int      `json:"hops"`
}

var graphPathCmd = &cobra.Command{
	Use:   "path <source> <target>",
	Short: "Find the shortest citation path between two papers",
	Long: `Find the shortest directed citation path between two papers
identified by title. Titles are matched case-insensitively.`,
	Args: cobra.ExactArgs(2),
	RunE: runGraphPath,
}

func runGraphPath(cmd *cobra.Command, args []string) error {
	g := buildGraph()

	src := strings.ToLower(args[0])
	dst := strings.ToLower(args[1])

	path, found := g.ShortestPath(src, dst)
	if !found {
		if _, ok := g.NodeByKey(src); !ok {
			exitWithError(ExitNotFound, "source paper %q not in the graph", args[0])
		}
		if _, ok := g.NodeByKey(dst); !ok {
			exitWithError(ExitNotFound, "target paper %q not in the graph", args[1])
		}
	}

	if humanOutput {
		if !found {
			outputHuman("no path from %q to %q\n", src, dst)
			return nil
		}
		outputHuman("%s\n", strings.Join(path, " -> "))
		return nil
	}

	result := PathResult{Found: found}
	if found {
		result.Path = path
		result.Hops = len(path) - 1
	}
	outputJSON(result)
	return nil
}

var graphTrimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Trim the citation graph to its highest-degree core",
	Long: `Remove least-connected papers until the graph fits the node budget.
Ties are broken in sorted title order so repeated runs agree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := buildGraph()
		g.TrimLeastDegree(trimMaxNodes)
		outputGraph(g, trimHTMLPath, trimLayout)
		return nil
	},
}
