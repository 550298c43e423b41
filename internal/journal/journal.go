// Package journal records every CLI invocation that mutates remote state in
// a local SQLite database, so the operator can audit what was done and when.
// The journal is bookkeeping only; it never feeds back into domain state.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lelyo-go/internal/config"
	"lelyo-go/internal/journal/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Entry is one recorded operation.
type Entry struct {
	ID         int64
	Operation  string
	Parameters string
	Status     string // "success" or "error"
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// Journal is a sqlite-backed operation log.
type Journal struct {
	db   *sql.DB
	path string
}

// NewFromConfig opens a journal based on the journal config type.
func NewFromConfig(cfg config.JournalConfig) (*Journal, error) {
	switch cfg.Type {
	case "sqlite", "":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite journal")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
		return Open(filepath.Join(cfg.DataDir, "journal.db"))
	case "memory":
		return Open(":memory:")
	default:
		return nil, fmt.Errorf("unknown journal type: %q", cfg.Type)
	}
}

// Open opens the journal at path, applying pending schema migrations.
// path can be a file path or ":memory:".
func Open(path string) (*Journal, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating journal schema: %w", err)
	}

	return &Journal{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with the PRAGMAs
// the journal relies on. Exported for tests that need a raw connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Begin records the start of an operation and returns its id.
func (j *Journal) Begin(operation, parameters string) (int64, error) {
	res, err := j.db.Exec(
		`INSERT INTO operations (operation, parameters, status, started_at) VALUES (?, ?, 'success', ?)`,
		operation, parameters, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording operation start: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading operation id: %w", err)
	}
	return id, nil
}

// Finish stamps an operation's outcome and completion time.
func (j *Journal) Finish(id int64, status string) error {
	_, err := j.db.Exec(
		`UPDATE operations SET status = ?, finished_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("recording operation finish: %w", err)
	}
	return nil
}

// Recent returns the most recent operations, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, operation, parameters, status, started_at, finished_at
		 FROM operations ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Operation, &e.Parameters, &e.Status, &e.StartedAt, &e.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading operations: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
