// Package fetchlog keeps a local history of dashboard fetch cycles.
package fetchlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nathanbeddoewebdev/bwdash/internal/database"
)

// Repository defines the persistence interface for fetch history.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	List(limit int) ([]Entry, error)
	ListByOutcome(outcome string, limit int) ([]Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// timestampLayout keeps every stored timestamp the same width so that
// text order in SQLite matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

var now = time.Now

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the fetch history at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("fetchlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fetchlog: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS fetch_log (
            id          INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp   TEXT    NOT NULL,
            seq         INTEGER NOT NULL,
            from_ms     INTEGER NOT NULL,
            to_ms       INTEGER NOT NULL,
            outcome     TEXT    NOT NULL,
            detail      TEXT    NOT NULL DEFAULT '',
            points      INTEGER NOT NULL DEFAULT 0,
            duration_ms INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_fetch_log_timestamp ON fetch_log(timestamp);
        CREATE INDEX IF NOT EXISTS idx_fetch_log_outcome ON fetch_log(outcome);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("fetchlog: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new entry, stamping it with the current time if unset.
func (r *SQLiteRepository) Save(ctx context.Context, entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now().UTC()
	}

	result, err := r.db.ExecContext(ctx, `
        INSERT INTO fetch_log (timestamp, seq, from_ms, to_ms, outcome, detail, points, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(timestampLayout), int64(entry.Seq),
		entry.From.UnixMilli(), entry.To.UnixMilli(),
		entry.Outcome, entry.Detail, entry.Points, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("fetchlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("fetchlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

const selectColumns = `SELECT id, timestamp, seq, from_ms, to_ms, outcome, detail, points, duration_ms FROM fetch_log`

// List returns the most recent n entries, newest first.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(selectColumns+` ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetchlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByOutcome returns the most recent n entries with the given outcome.
func (r *SQLiteRepository) ListByOutcome(outcome string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(selectColumns+` WHERE outcome = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, outcome, limit)
	if err != nil {
		return nil, fmt.Errorf("fetchlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := now().UTC().Add(-olderThan).Format(timestampLayout)
	result, err := r.db.Exec(`DELETE FROM fetch_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("fetchlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry        Entry
			timestampStr string
			seq          int64
			fromMs, toMs int64
		)
		err := rows.Scan(
			&entry.ID, &timestampStr, &seq, &fromMs, &toMs,
			&entry.Outcome, &entry.Detail, &entry.Points, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("fetchlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entry.Seq = uint64(seq)
		entry.From = time.UnixMilli(fromMs)
		entry.To = time.UnixMilli(toMs)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
