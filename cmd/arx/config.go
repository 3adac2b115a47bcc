package main

import (
	"strings"

	"github.com/arxgraph/arxgraph/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set workspace configuration",
}

// ConfigResponse is the response for config get.
type ConfigResponse struct {
	SnapshotPath string   `json:"snapshot_path,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	PDFDir       string   `json:"pdf_dir,omitempty"`
}

// UpdateResponse is the response for config set.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show workspace configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := mustFindWorkspace()
		cfg := mustLoadConfig(root)

		if humanOutput {
			outputHuman("snapshot_path: %s\n", cfg.SnapshotPath)
			outputHuman("categories: %s\n", strings.Join(cfg.Categories, ", "))
			outputHuman("pdf_dir: %s\n", cfg.PDFDir)
			return nil
		}
		outputJSON(ConfigResponse{
			SnapshotPath: cfg.SnapshotPath,
			Categories:   cfg.Categories,
			PDFDir:       cfg.PDFDir,
		})
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a workspace configuration value",
	Long: `Set a workspace configuration value.

Keys:
  snapshot_path   Path to the arXiv metadata snapshot
  categories      Comma-separated category filter
  pdf_dir         Directory for downloaded PDFs`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)

	key, value := args[0], args[1]
	switch key {
	case "snapshot_path":
		if err := config.ValidateSnapshotPath(value); err != nil {
			exitWithError(ExitConfigError, "invalid snapshot path: %v", err)
		}
		cfg.SnapshotPath = value
	case "categories":
		cfg.Categories = strings.Split(value, ",")
		for i := range cfg.Categories {
			cfg.Categories[i] = strings.TrimSpace(cfg.Categories[i])
		}
	case "pdf_dir":
		cfg.PDFDir = value
	default:
		exitWithError(ExitError, "unknown config key %q (valid: snapshot_path, categories, pdf_dir)", key)
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		outputHuman("%s = %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	return nil
}
