// Package main provides the arx CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/paper"
	"github.com/arxgraph/arxgraph/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arx",
	Short: "Citation graph toolkit for arXiv corpora",
	Long: `arx builds and queries citation graphs from annotated arXiv papers.

Core features:
  - Ingest arXiv metadata snapshots into a local corpus
  - Parse and resolve in-text citations against reference lists
  - Build labeled citation graphs with typed relationships
  - Ego graph, shortest path, and trim queries
  - Semantic search over abstracts via embeddings
  - Semantic Scholar citation-count graphs

The corpus lives in an ephemeral SQLite cache under .arxgraph/.
All commands output JSON by default for AI agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// workspace. The ARX_ROOT environment variable takes precedence over the
// current working directory.
func getStartingDirectory() (string, int) {
	if root := os.Getenv("ARX_ROOT"); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindWorkspace finds and validates the workspace, exits on error.
// Returns the workspace root path.
func mustFindWorkspace() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindWorkspace(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "No arxgraph workspace found. Run 'arx init' first.")
		os.Exit(ExitConfigError)
	}
	return root
}

// mustOpenDatabase opens the SQLite corpus cache, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(root string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustLoadConfig loads workspace configuration, exits on error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustReadAnnotated reads the annotated dataset artifact, exits on error.
func mustReadAnnotated(root string) []paper.AnnotatedPaper {
	annotated, err := storage.ReadAnnotated(config.AnnotatedPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading annotated dataset: %v\n\nRun 'arx annotate' first.", err)
	}
	return annotated
}
