// Package storage persists the ingested corpus in SQLite and the pipeline's
// annotated artifact as JSON.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/arxgraph/arxgraph/internal/paper"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite corpus cache.
type DB struct {
	db *sql.DB
}

// insertBatchSize bounds multi-row INSERTs; SQLite's default variable limit
// is 999 and each paper row binds 5.
const insertBatchSize = 150

// OpenDB opens or creates the corpus cache at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS papers (
			arxiv_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			categories TEXT,
			update_date TEXT
		);

		-- Exact lowercased-title lookups drive cross-paper linking.
		CREATE INDEX IF NOT EXISTS idx_papers_title_lower ON papers(lower(title));
	`
	_, err := db.Exec(schema)
	return err
}

// ReplacePapers clears the cache and inserts the given papers in one
// transaction. Duplicate arXiv ids within the batch keep the last row.
func (d *DB) ReplacePapers(papers []paper.Paper) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing papers: %w", err)
	}

	for start := 0; start < len(papers); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(papers) {
			end = len(papers)
		}
		if err := insertBatch(tx, papers[start:end]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertBatch(tx *sql.Tx, batch []paper.Paper) error {
	var sb strings.Builder
	sb.WriteString(`INSERT OR REPLACE INTO papers (arxiv_id, title, abstract, categories, update_date) VALUES `)

	args := make([]any, 0, len(batch)*5)
	for i, p := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, p.ArxivID, p.Title, p.Abstract, p.Categories, p.UpdateDate)
	}

	if _, err := tx.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("inserting papers: %w", err)
	}
	return nil
}

// CountPapers returns the number of cached papers.
func (d *DB) CountPapers() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// GetByArxivID returns one cached paper, or nil when absent.
func (d *DB) GetByArxivID(arxivID string) (*paper.Paper, error) {
	row := d.db.QueryRow(
		`SELECT arxiv_id, title, abstract, categories, update_date FROM papers WHERE arxiv_id = ?`,
		arxivID)

	var p paper.Paper
	err := row.Scan(&p.ArxivID, &p.Title, &p.Abstract, &p.Categories, &p.UpdateDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying paper %s: %w", arxivID, err)
	}
	return &p, nil
}

// LookupTitle returns the arXiv id for a title via exact lowercased match.
func (d *DB) LookupTitle(title string) (string, bool, error) {
	row := d.db.QueryRow(
		`SELECT arxiv_id FROM papers WHERE lower(title) = lower(?) LIMIT 1`,
		title)

	var id string
	err := row.Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("looking up title: %w", err)
	}
	return id, true, nil
}

// TitleMap loads the full lowercased-title index into memory. The pipeline
// prefers one bulk read over per-reference queries.
func (d *DB) TitleMap() (map[string]string, error) {
	rows, err := d.db.Query(`SELECT lower(title), arxiv_id FROM papers`)
	if err != nil {
		return nil, fmt.Errorf("loading title map: %w", err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var title, id string
		if err := rows.Scan(&title, &id); err != nil {
			return nil, fmt.Errorf("scanning title row: %w", err)
		}
		m[title] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading title rows: %w", err)
	}
	return m, nil
}

// SearchTitles returns papers whose title contains the keyword,
// case-insensitively, up to limit.
func (d *DB) SearchTitles(keyword string, limit int) ([]paper.Paper, error) {
	rows, err := d.db.Query(
		`SELECT arxiv_id, title, abstract, categories, update_date
		 FROM papers WHERE lower(title) LIKE '%' || lower(?) || '%'
		 ORDER BY arxiv_id LIMIT ?`,
		keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("searching titles: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		var p paper.Paper
		if err := rows.Scan(&p.ArxivID, &p.Title, &p.Abstract, &p.Categories, &p.UpdateDate); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// AllPapers returns every cached paper (index building walks the corpus).
func (d *DB) AllPapers() ([]paper.Paper, error) {
	rows, err := d.db.Query(
		`SELECT arxiv_id, title, abstract, categories, update_date FROM papers ORDER BY arxiv_id`)
	if err != nil {
		return nil, fmt.Errorf("loading papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		var p paper.Paper
		if err := rows.Scan(&p.ArxivID, &p.Title, &p.Abstract, &p.Categories, &p.UpdateDate); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
