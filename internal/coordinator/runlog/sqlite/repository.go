// Package sqlite is the SQLite implementation of the run log, on the pure-Go
// modernc.org/sqlite driver. WAL mode lets the admin API read while a batch
// is writing.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS run_logs (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id        TEXT    NOT NULL,
    record_id       TEXT    NOT NULL,
    status          TEXT    NOT NULL,
    step            TEXT    NOT NULL DEFAULT '',
    -- record JSON, only on STARTED rows
    payload         TEXT,
    error_messages  TEXT    NOT NULL DEFAULT '[]',
    trace_id        TEXT    NOT NULL DEFAULT '',
    span_id         TEXT    NOT NULL DEFAULT '',
    updated_at      TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_logs_batch ON run_logs(batch_id, record_id, id);
CREATE INDEX IF NOT EXISTS idx_run_logs_trace_id ON run_logs(trace_id);
`

const selectColumns = `batch_id, record_id, status, step, COALESCE(payload,''), error_messages,
		       trace_id, span_id, updated_at`

// Repository implements runlog.Repository and runlog.Reader.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
//
//	repo, err := sqlite.Open("./data/runlog.db")
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Save appends entry. It is safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *runlog.Entry) error {
	const q = `
		INSERT INTO run_logs
			(batch_id, record_id, status, step, payload, error_messages, trace_id, span_id, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.BatchID,
		entry.RecordID,
		string(entry.Status),
		entry.Step,
		nullableString(entry.Payload),
		entry.ErrorMessages,
		entry.TraceID,
		entry.SpanID,
		formatTime(entry.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save run log for %s/%s: %w", entry.BatchID, entry.RecordID, err)
	}
	return nil
}

func (r *Repository) GetLatest(ctx context.Context, batchID, recordID string) (*runlog.Entry, error) {
	q := `
		SELECT ` + selectColumns + `
		FROM   run_logs
		WHERE  batch_id = ? AND record_id = ?
		ORDER  BY id DESC
		LIMIT  1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, q, batchID, recordID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlite: %s/%s: %w", batchID, recordID, runlog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %s/%s: %w", batchID, recordID, err)
	}
	return entry, nil
}

func (r *Repository) ListBatch(ctx context.Context, batchID string) ([]runlog.Entry, error) {
	q := `
		SELECT ` + selectColumns + `
		FROM   run_logs
		WHERE  batch_id = ?
		ORDER  BY id`

	rows, err := r.db.QueryContext(ctx, q, batchID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list batch %s: %w", batchID, err)
	}
	defer rows.Close()

	var entries []runlog.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: list batch %s: %w", batchID, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list batch %s: %w", batchID, err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*runlog.Entry, error) {
	var entry runlog.Entry
	var updatedAt string
	err := s.Scan(
		&entry.BatchID,
		&entry.RecordID,
		&entry.Status,
		&entry.Step,
		&entry.Payload,
		&entry.ErrorMessages,
		&entry.TraceID,
		&entry.SpanID,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// nullableString stores NULL for the payload of non-STARTED rows.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
