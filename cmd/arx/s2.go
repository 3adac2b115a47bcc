package main

import (
	"context"
	"errors"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/s2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	s2EgoHTMLPath string
	s2EgoLayout   string
)

func init() {
	// Pick up S2_API_KEY from a local .env file if present.
	godotenv.Load()

	rootCmd.AddCommand(s2Cmd)
	s2Cmd.AddCommand(s2EgoCmd)

	s2EgoCmd.Flags().StringVar(&s2EgoHTMLPath, "html", "", "Write an interactive HTML visualization to this path")
	s2EgoCmd.Flags().StringVar(&s2EgoLayout, "layout", "", "HTML layout: force, circle, or grid")
}

var s2Cmd = &cobra.Command{
	Use:   "s2",
	Short: "Query the Semantic Scholar citation API",
	Long:  `Commands backed by the Semantic Scholar graph API.`,
}

var s2EgoCmd = &cobra.Command{
	Use:   "ego <arxiv-id>...",
	Short: "Build a citation-count graph around papers",
	Long: `Build a citation-count graph around one or more papers using the
Semantic Scholar batch API.

Each paper's reference list becomes edges to abbreviated-title nodes
sized by citation count. Low-degree nodes are dropped, the requested
papers are highlighted, and the graph is trimmed to the node budget.

Set S2_API_KEY (environment, .env, or global config) for authenticated
rate limits.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runS2Ego,
}

func runS2Ego(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()

	db := mustOpenDatabase(root)
	defer db.Close()

	seeds := make([]s2.Seed, 0, len(args))
	for _, arxivID := range args {
		p, err := db.GetByArxivID(arxivID)
		if err != nil {
			exitWithError(ExitError, "looking up %s: %v", arxivID, err)
		}
		if p == nil {
			exitWithError(ExitNotFound, "paper %s not in the corpus; run 'arx ingest' first", arxivID)
		}
		seeds = append(seeds, s2.Seed{ArxivID: p.ArxivID, Title: p.Title})
	}

	opts := []s2.ClientOption{}
	if key := config.GetS2APIKey(); key != "" {
		opts = append(opts, s2.WithAPIKey(key))
	}
	client := s2.NewClient(opts...)

	g, err := s2.BuildEgoGraph(context.Background(), client, seeds)
	if err != nil {
		switch {
		case s2.IsAuthError(err):
			exitWithError(ExitAPIError, "Semantic Scholar rejected the API key: %v", err)
		case s2.IsRateLimited(err):
			exitWithError(ExitAPIError, "Semantic Scholar rate limit hit: %v", err)
		case errors.Is(err, context.Canceled):
			exitWithError(ExitError, "cancelled")
		default:
			exitWithError(ExitAPIError, "querying Semantic Scholar: %v", err)
		}
	}

	outputGraph(g, s2EgoHTMLPath, s2EgoLayout)
	return nil
}
