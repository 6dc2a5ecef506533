// Package lexdb compiles the finished lexicon into a SQLite database so the
// speech runtime can look words up without re-parsing text resources. Entry
// provenance is kept: dictionary lookups and synthesized transcriptions stay
// distinguishable.
package lexdb

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Source values recorded per entry.
const (
	SourceDictionary = "dictionary"
	SourceG2P        = "g2p"
)

// Entry is one row of the compiled lexicon.
type Entry struct {
	Word   string
	Phones string
	Source string
}

// Exporter collects entries and writes them to a database file.
type Exporter struct {
	entries []Entry
}

// NewExporter creates an empty exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Add queues an entry for export. Later entries for the same word overwrite
// earlier ones at write time.
func (e *Exporter) Add(word, phones, source string) {
	e.entries = append(e.entries, Entry{Word: word, Phones: phones, Source: source})
}

// Len returns the number of queued entries.
func (e *Exporter) Len() int {
	return len(e.entries)
}

// Export writes all entries into a fresh SQLite file at path, replacing any
// existing file, in a single transaction.
func (e *Exporter) Export(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE lexicon (
		word   TEXT PRIMARY KEY,
		phones TEXT NOT NULL,
		source TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO lexicon (word, phones, source) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range e.entries {
		if _, err := stmt.Exec(entry.Word, entry.Phones, entry.Source); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert word %s: %w", entry.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}
