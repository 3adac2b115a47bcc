package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/corpus"
	"github.com/arxgraph/arxgraph/internal/pipeline"
	"github.com/arxgraph/arxgraph/internal/storage"
	"github.com/spf13/cobra"
)

var (
	annotateOutputPath string
	annotateNoProgress bool
)

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVar(&annotateOutputPath, "output", "", "Output path (defaults to .arxgraph/parsed_papers.json)")
	annotateCmd.Flags().BoolVar(&annotateNoProgress, "no-progress", false, "Suppress progress output")
}

// AnnotateResult is the response for the annotate command.
type AnnotateResult struct {
	Status            string  `json:"status"`
	Processed         int     `json:"processed"`
	Skipped           int     `json:"skipped"`
	NumericPapers     int     `json:"numeric_papers"`
	AuthorYearPapers  int     `json:"author_year_papers"`
	ResolvedMentions  int     `json:"resolved_mentions"`
	UnresolvedParse   int     `json:"unresolved_parse"`
	UnresolvedNoMatch int     `json:"unresolved_no_match"`
	LinkedRefs        int     `json:"linked_refs"`
	UnlinkedRefs      int     `json:"unlinked_refs"`
	DurationSeconds   float64 `json:"duration_seconds"`
	Output            string  `json:"output"`
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <dataset.json>",
	Args:  cobra.ExactArgs(1),
	Short: "Resolve citations and link references across the corpus",
	Long: `Resolve in-text citations against reference lists and link cited
papers to the corpus.

For each paper the citation style is detected, every mention is resolved
to a reference entry, mentions are grouped per reference, and reference
titles are matched against corpus titles to recover arXiv IDs. The
result is written as the annotated dataset other commands consume.`,
	RunE: runAnnotate,
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()

	annotated, err := storage.ReadAnnotatedDataset(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading input dataset: %v", err)
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	titles, err := db.TitleMap()
	if err != nil {
		exitWithError(ExitError, "loading corpus titles: %v", err)
	}

	p := pipeline.New(corpus.NewTitleIndexFromMap(titles))
	if !annotateNoProgress {
		p.SetProgressReporter(pipeline.ProgressFunc(func(current, total int) {
			fmt.Fprintf(os.Stderr, "\rAnnotating %d/%d", current, total)
			if current == total {
				fmt.Fprintln(os.Stderr)
			}
		}))
	}

	stats, err := p.Run(context.Background(), annotated)
	if err != nil {
		exitWithError(ExitError, "annotating: %v", err)
	}

	output := annotateOutputPath
	if output == "" {
		output = config.AnnotatedPath(root)
	}
	if err := storage.WriteAnnotated(output, annotated); err != nil {
		exitWithError(ExitError, "writing annotated dataset: %v", err)
	}

	if humanOutput {
		outputHuman("Annotated %d papers (%d skipped) in %.1fs\n", stats.Processed, stats.Skipped, stats.Duration.Seconds())
		outputHuman("  numeric: %d, author-year: %d\n", stats.NumericPapers, stats.AuthorYearPapers)
		outputHuman("  mentions resolved: %d (parse errors: %d, no match: %d)\n",
			stats.ResolvedMentions, stats.UnresolvedParse, stats.UnresolvedNoMatch)
		outputHuman("  references linked: %d, unlinked: %d\n", stats.LinkedRefs, stats.UnlinkedRefs)
		return nil
	}

	outputJSON(AnnotateResult{
		Status:            "annotated",
		Processed:         stats.Processed,
		Skipped:           stats.Skipped,
		NumericPapers:     stats.NumericPapers,
		AuthorYearPapers:  stats.AuthorYearPapers,
		ResolvedMentions:  stats.ResolvedMentions,
		UnresolvedParse:   stats.UnresolvedParse,
		UnresolvedNoMatch: stats.UnresolvedNoMatch,
		LinkedRefs:        stats.LinkedRefs,
		UnlinkedRefs:      stats.UnlinkedRefs,
		DurationSeconds:   stats.Duration.Seconds(),
		Output:            output,
	})
	return nil
}
