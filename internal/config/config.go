// Package config handles workspace and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents workspace configuration stored in .arxgraph/config.json.
type Config struct {
	SnapshotPath string   `json:"snapshot_path,omitempty"` // Path to the arXiv metadata snapshot
	Categories   []string `json:"categories,omitempty"`    // Category filter for ingest
	PDFDir       string   `json:"pdf_dir,omitempty"`       // Where fetched PDFs are stored
}

const (
	ArxgraphDir   = ".arxgraph"
	ConfigFile    = "config.json"
	AnnotatedFile = "parsed_papers.json"
	CacheDir      = "cache"
	DBFile        = "corpus.db"
	IndexFile     = "semantic.gob"
	PDFDir        = "pdfs"
)

// ArxgraphPath returns the path to the .arxgraph directory from a root path.
func ArxgraphPath(root string) string {
	return filepath.Join(root, ArxgraphDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ArxgraphDir, ConfigFile)
}

// AnnotatedPath returns the path to the annotated dataset from a root path.
func AnnotatedPath(root string) string {
	return filepath.Join(root, ArxgraphDir, AnnotatedFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, ArxgraphDir, CacheDir)
}

// DBPath returns the path to the corpus database from a root path.
func DBPath(root string) string {
	return filepath.Join(root, ArxgraphDir, CacheDir, DBFile)
}

// IndexPath returns the path to the semantic index from a root path.
func IndexPath(root string) string {
	return filepath.Join(root, ArxgraphDir, CacheDir, IndexFile)
}

// PDFPath returns the default PDF directory from a root path.
func PDFPath(root string) string {
	return filepath.Join(root, ArxgraphDir, PDFDir)
}

// IsWorkspace checks if the given path contains an arxgraph workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(ArxgraphPath(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from the given path to find an arxgraph workspace.
// Returns the workspace root path or an error if not found.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in an arxgraph workspace (no .arxgraph directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the workspace at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the workspace at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateSnapshotPath checks that the snapshot path exists and is a file.
func ValidateSnapshotPath(path string) error {
	if path == "" {
		return nil // Empty is allowed (not yet configured)
	}

	expandedPath := ExpandPath(path)
	info, err := os.Stat(expandedPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expandedPath)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a snapshot file: %s", expandedPath)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
