package main

import (
	"context"
	"path/filepath"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/fetch"
	"github.com/spf13/cobra"
)

var (
	fetchOutputDir string
	fetchMaxPages  int
	fetchWithText  bool
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchOutputDir, "dir", "", "Directory to save the PDF (defaults to .arxgraph/pdfs)")
	fetchCmd.Flags().BoolVar(&fetchWithText, "text", false, "Extract and print the PDF text")
	fetchCmd.Flags().IntVar(&fetchMaxPages, "max-pages", 0, "Pages to extract with --text (0 = all)")
}

// FetchResult is the response for the fetch command.
type FetchResult struct {
	Status  string `json:"status"`
	ArxivID string `json:"arxiv_id"`
	Path    string `json:"path"`
	Text    string `json:"text,omitempty"`
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <arxiv-id>",
	Short: "Download a paper PDF from arXiv",
	Long: `Download a paper PDF from arXiv by identifier.

With --text the PDF content is extracted and included in the output,
which is useful for feeding the paper to downstream tooling.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	arxivID := args[0]

	dir := fetchOutputDir
	if dir == "" {
		cfg := mustLoadConfig(root)
		dir = cfg.PDFDir
		if dir == "" {
			dir = config.PDFPath(root)
		}
	}

	fetcher := fetch.NewFetcher()
	dest := filepath.Join(dir, arxivID)
	path, err := fetcher.Download(context.Background(), arxivID, dest)
	if err != nil {
		exitWithError(ExitAPIError, "downloading %s: %v", arxivID, err)
	}

	result := FetchResult{Status: "downloaded", ArxivID: arxivID, Path: path}
	if fetchWithText {
		text, err := fetch.ExtractText(path, fetchMaxPages)
		if err != nil {
			exitWithError(ExitDataError, "extracting text from %s: %v", path, err)
		}
		result.Text = text
	}

	if humanOutput {
		outputHuman("Saved %s to %s\n", arxivID, path)
		if result.Text != "" {
			outputHuman("%s\n", result.Text)
		}
		return nil
	}
	outputJSON(result)
	return nil
}
