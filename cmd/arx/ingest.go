package main

import (
	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/corpus"
	"github.com/spf13/cobra"
)

var (
	ingestSnapshotPath string
	ingestCategories   []string
)

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestSnapshotPath, "snapshot", "", "Path to the arXiv metadata snapshot (overrides config)")
	ingestCmd.Flags().StringSliceVar(&ingestCategories, "categories", nil, "Category filter (overrides config)")
}

// IngestResult is the response for the ingest command.
type IngestResult struct {
	Status       string `json:"status"`
	PapersLoaded int    `json:"papers_loaded"`
	Snapshot     string `json:"snapshot"`
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [snapshot.json]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Load an arXiv metadata snapshot into the corpus cache",
	Long: `Load an arXiv metadata snapshot into the corpus cache.

Reads the JSONL snapshot line by line, keeps papers matching the
configured categories, and replaces the contents of the corpus
database. Titles and abstracts are whitespace-normalized on the way in.`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)

	snapshot := cfg.SnapshotPath
	if ingestSnapshotPath != "" {
		snapshot = ingestSnapshotPath
	}
	if len(args) == 1 {
		snapshot = args[0]
	}
	if snapshot == "" {
		exitWithError(ExitConfigError, "no snapshot path configured; pass --snapshot or set it with 'arx config set snapshot_path <path>'")
	}
	snapshot = config.ExpandPath(snapshot)

	categories := cfg.Categories
	if len(ingestCategories) > 0 {
		categories = ingestCategories
	}

	papers, err := corpus.LoadSnapshot(snapshot, corpus.LoadOptions{Categories: categories})
	if err != nil {
		exitWithError(ExitDataError, "loading snapshot: %v", err)
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	if err := db.ReplacePapers(papers); err != nil {
		exitWithError(ExitError, "storing papers: %v", err)
	}

	if humanOutput {
		outputHuman("Loaded %d papers from %s\n", len(papers), snapshot)
	} else {
		outputJSON(IngestResult{Status: "loaded", PapersLoaded: len(papers), Snapshot: snapshot})
	}
	return nil
}
