package semantic

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by semantic index operations.
var (
	ErrIndexNotFound      = errors.New("semantic index not found")
	ErrPaperNotIndexed    = errors.New("paper not in semantic index")
	ErrUnsupportedVersion = errors.New("unsupported index version")
)

const (
	// MinAbstractLength is the minimum abstract length (in characters) to index.
	// Shorter abstracts lack sufficient semantic content for reliable similarity.
	MinAbstractLength = 50

	// MaxAbstractLength is the maximum abstract length (in characters) to embed.
	// Longer abstracts are truncated to this length before embedding.
	MaxAbstractLength = 8000

	// CurrentIndexVersion is the format version for compatibility checking.
	// Increment this when making breaking changes to the index format.
	CurrentIndexVersion = 1
)

// NewIndex creates a new empty semantic index.
func NewIndex(modelName string, dimensions int) *Index {
	return &Index{
		Version:    CurrentIndexVersion,
		ModelName:  modelName,
		Dimensions: dimensions,
		CreatedAt:  time.Now(),
		Entries:    make(map[string]Entry),
	}
}

// Add records an embedding for a paper.
func (idx *Index) Add(arxivID, title string, vector []float32) error {
	if len(vector) != idx.Dimensions {
		return fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vector), idx.Dimensions)
	}
	idx.Entries[arxivID] = Entry{Title: title, Vector: vector}
	idx.PaperCount = len(idx.Entries)
	return nil
}

// HasPaper checks if a paper is in the index.
func (idx *Index) HasPaper(arxivID string) bool {
	_, exists := idx.Entries[arxivID]
	return exists
}

// Save persists the index to path using GOB encoding. The write goes to a
// temp file first and is renamed into place for atomicity.
func (idx *Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	enc := gob.NewEncoder(f)
	if err := enc.Encode(idx); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Load reads a semantic index from path.
// Returns ErrUnsupportedVersion if the index was created with an incompatible format.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("opening index file: %w", err)
	}
	defer f.Close()

	var idx Index
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	if idx.Version != CurrentIndexVersion {
		return nil, fmt.Errorf("%w: got %d, want %d (rebuild with 'arx index build')",
			ErrUnsupportedVersion, idx.Version, CurrentIndexVersion)
	}

	return &idx, nil
}

// IndexSize returns the size of the index file in bytes.
func IndexSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrIndexNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}

// Exists checks if the semantic index file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
