// Package audit provides an optional, write-only diagnostic trail of
// navigation decisions, useful for debugging deep-link regressions in
// production. It is not a persistence layer: the navigation engine never
// reads a SQLiteSink back to reconstruct a NavigationState, and nothing
// here restores navigation state across restarts. This is closer to a
// structured query log than a snapshot store.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Decision is one recorded navigation outcome.
type Decision struct {
	CorrelationID string
	Coordinator   string
	RouteID       string
	Kind          string // e.g. "push", "replace", "modal", "tab_switch", "bubble"
	Outcome       string // "success" or "failure"
	ErrorCode     string // empty on success
	Timestamp     time.Time
}

// SQLiteSink appends Decision rows to a single-file SQLite database. It is
// off by default; embedders opt in by constructing one and passing it to
// WithAuditSink.
type SQLiteSink struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteSink opens (creating if necessary) a SQLite database at path and
// ensures the navigation_decisions table exists. Use ":memory:" for tests.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite audit sink: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS navigation_decisions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			correlation_id TEXT NOT NULL,
			coordinator TEXT NOT NULL,
			route_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			outcome TEXT NOT NULL,
			error_code TEXT NOT NULL DEFAULT '',
			recorded_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create navigation_decisions table: %w", err)
	}
	if _, err := db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_decisions_correlation ON navigation_decisions(correlation_id)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create correlation index: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Record appends one Decision. Failures are returned to the caller rather
// than swallowed, since the audit sink is explicitly opt-in: an embedder
// who wired one wants to know if it stops working.
func (s *SQLiteSink) Record(ctx context.Context, d Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO navigation_decisions
			(correlation_id, coordinator, route_id, kind, outcome, error_code, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.CorrelationID, d.Coordinator, d.RouteID, d.Kind, d.Outcome, d.ErrorCode, d.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record navigation decision: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
