package data

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS issues (
	path       VARCHAR PRIMARY KEY,
	title      VARCHAR,
	series     VARCHAR,
	number     VARCHAR,
	volume     INTEGER,
	writer     VARCHAR,
	publisher  VARCHAR,
	year       INTEGER,
	page_count INTEGER,
	format     VARCHAR,
	scanned_at TIMESTAMP
);
`

// InitDuckDB opens (creating if needed) the catalog database at path
// and ensures the schema exists.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Repository is the DuckDB-backed issue catalog.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBRepository returns a repository over the shared default
// database, opening it on first use.
func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		home, _ := os.UserHomeDir()
		db, err := InitDuckDB(filepath.Join(home, ".comicmeta", "catalog.db"))
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}
	return &Repository{db: duckDB}
}

// NewRepository wraps an already opened database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveEntry inserts or replaces the entry for its path.
func (r *Repository) SaveEntry(e *Entry) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO issues
			(path, title, series, number, volume, writer, publisher, year, page_count, format, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Path, e.Title, e.Series, e.Number, e.Volume, e.Writer,
		e.Publisher, e.Year, e.PageCount, e.Format, e.ScannedAt,
	)
	return err
}

// GetEntry returns the entry for a path, or nil when not cataloged.
func (r *Repository) GetEntry(path string) (*Entry, error) {
	row := r.db.QueryRow(`
		SELECT path, title, series, number, volume, writer, publisher, year, page_count, format, scanned_at
		FROM issues WHERE path = ?`, path)

	e := &Entry{}
	err := row.Scan(&e.Path, &e.Title, &e.Series, &e.Number, &e.Volume,
		&e.Writer, &e.Publisher, &e.Year, &e.PageCount, &e.Format, &e.ScannedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntries returns the whole catalog ordered by series and number.
func (r *Repository) ListEntries() ([]*Entry, error) {
	rows, err := r.db.Query(`
		SELECT path, title, series, number, volume, writer, publisher, year, page_count, format, scanned_at
		FROM issues ORDER BY series, volume, number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// SearchEntries returns entries whose title, series or writer contains
// the query, case-insensitively.
func (r *Repository) SearchEntries(query string) ([]*Entry, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(`
		SELECT path, title, series, number, volume, writer, publisher, year, page_count, format, scanned_at
		FROM issues
		WHERE title ILIKE ? OR series ILIKE ? OR writer ILIKE ?
		ORDER BY series, volume, number`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// DeleteEntry removes a path from the catalog.
func (r *Repository) DeleteEntry(path string) error {
	_, err := r.db.Exec(`DELETE FROM issues WHERE path = ?`, path)
	return err
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		err := rows.Scan(&e.Path, &e.Title, &e.Series, &e.Number, &e.Volume,
			&e.Writer, &e.Publisher, &e.Year, &e.PageCount, &e.Format, &e.ScannedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
