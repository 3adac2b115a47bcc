package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/embedding"
	"github.com/arxgraph/arxgraph/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	indexNoProgress      bool
	indexSearchLimit     int
	indexSearchThreshold float32
)

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexSimilarCmd)

	indexBuildCmd.Flags().BoolVar(&indexNoProgress, "no-progress", false, "Suppress progress output")
	indexSearchCmd.Flags().IntVar(&indexSearchLimit, "limit", 10, "Maximum number of results")
	indexSearchCmd.Flags().Float32Var(&indexSearchThreshold, "threshold", 0.3, "Minimum similarity")
	indexSimilarCmd.Flags().IntVar(&indexSearchLimit, "limit", 10, "Maximum number of results")
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the semantic search index",
	Long:  `Commands for building and querying the semantic search index over abstracts.`,
}

// newProvider builds the embedding provider from global config.
func newProvider() *embedding.OllamaProvider {
	var opts []embedding.OllamaOption
	if url := config.GetOllamaURL(); url != "" {
		opts = append(opts, embedding.WithBaseURL(url))
	}
	if model := config.GetEmbeddingModel(); model != "" {
		opts = append(opts, embedding.WithModel(model))
	}
	return embedding.NewOllamaProvider(opts...)
}

// mustLoadIndex loads the semantic index, exits on error.
func mustLoadIndex(root string) *semantic.Index {
	idx, err := semantic.Load(config.IndexPath(root))
	if err != nil {
		if errors.Is(err, semantic.ErrIndexNotFound) {
			exitWithError(ExitConfigError, "semantic index not found\n\nRun 'arx index build' to create it.")
		}
		exitWithError(ExitError, "loading index: %v", err)
	}
	return idx
}

// IndexBuildResult is the response for index build.
type IndexBuildResult struct {
	Status          string  `json:"status"`
	PapersIndexed   int     `json:"papers_indexed"`
	PapersSkipped   int     `json:"papers_skipped"`
	SkippedReason   string  `json:"skipped_reason"`
	DurationSeconds float64 `json:"duration_seconds"`
	Model           string  `json:"model"`
	IndexSizeBytes  int64   `json:"index_size_bytes"`
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build or rebuild the semantic index",
	Long: `Build or rebuild the semantic index from corpus abstracts.

Requires Ollama to be running with the embedding model available.
Run 'ollama pull all-minilm:l6-v2' to download the default model.`,
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	root := mustFindWorkspace()

	provider := newProvider()
	if err := provider.IsAvailable(ctx); err != nil {
		exitWithError(ExitDataError, "Ollama is not running\n\nStart Ollama with 'ollama serve' or install from https://ollama.ai")
	}
	hasModel, err := provider.HasModel(ctx)
	if err != nil {
		exitWithError(ExitDataError, "checking models: %v", err)
	}
	if !hasModel {
		exitWithError(ExitDataError, "embedding model %q not found\n\nRun 'ollama pull %s' to download it.",
			provider.ModelName(), provider.ModelName())
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	papers, err := db.AllPapers()
	if err != nil {
		exitWithError(ExitError, "loading corpus: %v", err)
	}
	if len(papers) == 0 {
		exitWithError(ExitDataError, "corpus is empty; run 'arx ingest' first")
	}

	builder := semantic.NewBuilder(provider)
	if !indexNoProgress {
		builder.SetProgressReporter(semantic.ProgressFunc(func(current, total int) {
			fmt.Fprintf(os.Stderr, "\rEmbedding %d/%d", current, total)
			if current == total {
				fmt.Fprintln(os.Stderr)
			}
		}))
	}

	idx, stats, err := builder.Build(ctx, papers)
	if err != nil {
		exitWithError(ExitError, "building index: %v", err)
	}

	indexPath := config.IndexPath(root)
	if err := idx.Save(indexPath); err != nil {
		exitWithError(ExitError, "saving index: %v", err)
	}
	size, _ := semantic.IndexSize(indexPath)

	if humanOutput {
		outputHuman("Indexed %d papers (%d skipped) in %.1fs\n", stats.PapersIndexed, stats.PapersSkipped, stats.Duration.Seconds())
		return nil
	}
	outputJSON(IndexBuildResult{
		Status:          "built",
		PapersIndexed:   stats.PapersIndexed,
		PapersSkipped:   stats.PapersSkipped,
		SkippedReason:   stats.SkippedReason,
		DurationSeconds: stats.Duration.Seconds(),
		Model:           provider.ModelName(),
		IndexSizeBytes:  size,
	})
	return nil
}

var indexSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search abstracts by meaning",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	root := mustFindWorkspace()

	idx := mustLoadIndex(root)
	provider := newProvider()
	if err := provider.IsAvailable(ctx); err != nil {
		exitWithError(ExitDataError, "Ollama is not running\n\nStart Ollama with 'ollama serve'.")
	}

	results, err := idx.SearchText(ctx, provider, args[0], indexSearchLimit, indexSearchThreshold)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	printSearchResults(results)
	return nil
}

var indexSimilarCmd = &cobra.Command{
	Use:   "similar <arxiv-id>",
	Short: "Find papers similar to an indexed paper",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexSimilar,
}

func runIndexSimilar(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	idx := mustLoadIndex(root)

	results, err := idx.FindSimilar(args[0], indexSearchLimit)
	if err != nil {
		if errors.Is(err, semantic.ErrPaperNotIndexed) {
			exitWithError(ExitNotFound, "paper %s is not in the semantic index", args[0])
		}
		exitWithError(ExitError, "finding similar papers: %v", err)
	}

	printSearchResults(results)
	return nil
}

// printSearchResults prints semantic search results in the selected format.
func printSearchResults(results []semantic.SearchResult) {
	if humanOutput {
		for i, r := range results {
			outputHuman("%d. [%.2f] %s\n   %s\n", i+1, r.Similarity, r.ArxivID, r.Title)
		}
		return
	}
	outputJSON(results)
}
