package main

import (
	"os"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/arxgraph/arxgraph/internal/corpus"
	"github.com/spf13/cobra"
)

var initSnapshotPath string

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initSnapshotPath, "snapshot", "", "Path to the arXiv metadata snapshot")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new arxgraph workspace",
	Long: `Initialize a new arxgraph workspace in the current directory.

Creates:
  .arxgraph/
  ├── config.json     # Default config
  ├── cache/          # Corpus database and semantic index
  └── pdfs/           # Downloaded PDFs`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsWorkspace(root) {
		exitWithError(ExitError, "directory already contains an arxgraph workspace")
	}

	for _, dir := range []string{config.ArxgraphPath(root), config.CachePath(root), config.PDFPath(root)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			exitWithError(ExitError, "creating %s: %v", dir, err)
		}
	}

	if initSnapshotPath != "" {
		if err := config.ValidateSnapshotPath(initSnapshotPath); err != nil {
			exitWithError(ExitConfigError, "invalid snapshot path: %v", err)
		}
	}

	cfg := &config.Config{
		SnapshotPath: initSnapshotPath,
		Categories:   corpus.DefaultCategories,
		PDFDir:       config.PDFPath(root),
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		outputHuman("Initialized arxgraph workspace in %s\n", config.ArxgraphPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.ArxgraphPath(root)})
	}
	return nil
}
