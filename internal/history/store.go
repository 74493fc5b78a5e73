// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records completed generation runs in a SQLite database.
// The traversal counters themselves live only for the duration of a run;
// the history row is an after-the-fact record written once the run is
// done, so repeated deploys can be compared over time.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/stan-pages/internal/index"
)

// Run is one recorded generation run.
type Run struct {
	ID        int64
	Root      string
	Scanned   int
	Created   int
	Updated   int
	Errors    int
	StartedAt time.Time
	Duration  time.Duration
}

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			root TEXT NOT NULL,
			scanned INTEGER NOT NULL,
			created INTEGER NOT NULL,
			updated INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one completed run.
func (s *Store) Record(ctx context.Context, root string, stats index.Stats, started time.Time, elapsed time.Duration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (root, scanned, created, updated, errors, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		root, stats.Scanned, stats.Created, stats.Updated, stats.Errors,
		started.UTC().Format(time.RFC3339Nano), elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns up to limit runs, most recent first. A limit of zero or
// less returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, root, scanned, created, updated, errors, started_at, duration_ms
	          FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Root, &r.Scanned, &r.Created, &r.Updated, &r.Errors, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
		}
		r.StartedAt = ts
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
