// Package journal records the outcome of every finished alert in a local
// sqlite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS alert_outcomes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    alert_id TEXT NOT NULL,
    category TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    reason TEXT NOT NULL,
    button TEXT NOT NULL DEFAULT '',
    duration_seconds INTEGER NOT NULL DEFAULT 0,
    presented_at DATETIME NOT NULL,
    dismissed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_alert_outcomes_dismissed ON alert_outcomes(dismissed_at);
`

// Outcome is one finished alert.
type Outcome struct {
	ID              int64     `json:"id"`
	AlertID         string    `json:"alert_id"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Reason          string    `json:"reason"`
	Button          string    `json:"button,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	PresentedAt     time.Time `json:"presented_at"`
	DismissedAt     time.Time `json:"dismissed_at"`
}

// Elapsed is how long the alert was on screen.
func (o Outcome) Elapsed() time.Duration {
	return o.DismissedAt.Sub(o.PresentedAt)
}

// Journal wraps the database connection
type Journal struct {
	conn *sql.DB
	path string
}

// Open opens or creates the journal at path. ":memory:" is accepted.
func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Single writer; also keeps one shared :memory: database.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{conn: conn, path: path}, nil
}

// Path returns the database path.
func (j *Journal) Path() string { return j.path }

// Close closes the database
func (j *Journal) Close() error {
	return j.conn.Close()
}

// Record stores o and returns its row id.
func (j *Journal) Record(ctx context.Context, o Outcome) (int64, error) {
	if o.AlertID == "" {
		return 0, fmt.Errorf("record outcome: missing alert id")
	}
	res, err := j.conn.ExecContext(ctx, `
		INSERT INTO alert_outcomes
		    (alert_id, category, title, reason, button, duration_seconds, presented_at, dismissed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.AlertID, o.Category, o.Title, o.Reason, o.Button, o.DurationSeconds,
		o.PresentedAt.UTC(), o.DismissedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("record outcome %s: %w", o.AlertID, err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit outcomes, newest first. limit <= 0 means all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Outcome, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.conn.QueryContext(ctx, `
		SELECT id, alert_id, category, title, reason, button, duration_seconds, presented_at, dismissed_at
		FROM alert_outcomes
		ORDER BY dismissed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.ID, &o.AlertID, &o.Category, &o.Title, &o.Reason, &o.Button,
			&o.DurationSeconds, &o.PresentedAt, &o.DismissedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// CountByReason tallies outcomes per dismiss reason.
func (j *Journal) CountByReason(ctx context.Context) (map[string]int, error) {
	rows, err := j.conn.QueryContext(ctx, `SELECT reason, COUNT(*) FROM alert_outcomes GROUP BY reason`)
	if err != nil {
		return nil, fmt.Errorf("count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, err
		}
		counts[reason] = n
	}
	return counts, rows.Err()
}
