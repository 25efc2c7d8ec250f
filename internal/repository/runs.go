// Package repository persists extraction runs in a local SQLite database so
// unchanged documents can be served from cache.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tolu-akinola/paystub-tracker/internal/common"
	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id          TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	file_hash   TEXT NOT NULL UNIQUE,
	pay_date    TEXT NOT NULL DEFAULT '',
	field_count INTEGER NOT NULL DEFAULT 0,
	record_json TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extraction_run_source ON extraction_run(source_path);
`

// RunRepository is the extraction-run cache port.
type RunRepository interface {
	GetByHash(ctx context.Context, hash string) (*entity.ExtractionRun, error)
	Save(ctx context.Context, run *entity.ExtractionRun) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ExtractionRun, error)
	Close() error
}

// SQLiteRuns is a RunRepository backed by a local SQLite file.
type SQLiteRuns struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteRuns opens (and migrates) the cache database. If path is empty it
// defaults to ~/.paystub-tracker/runs.db.
func NewSQLiteRuns(path string, logger *slog.Logger) (*SQLiteRuns, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".paystub-tracker", "runs.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, common.NewAppError("CACHE_MIGRATE", "applying schema", err)
	}
	return &SQLiteRuns{db: db, path: path, logger: logger}, nil
}

func (r *SQLiteRuns) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *SQLiteRuns) Path() string {
	return r.path
}

// GetByHash returns the cached run for a content hash, or common.ErrNotFound.
func (r *SQLiteRuns) GetByHash(ctx context.Context, hash string) (*entity.ExtractionRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source_path, file_hash, pay_date, field_count, record_json, status, created_at
		FROM extraction_run WHERE file_hash = ?`, hash)
	return scanRun(row)
}

// Save upserts a run keyed by content hash.
func (r *SQLiteRuns) Save(ctx context.Context, run *entity.ExtractionRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO extraction_run
			(id, source_path, file_hash, pay_date, field_count, record_json, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_hash) DO UPDATE SET
			source_path = excluded.source_path,
			pay_date    = excluded.pay_date,
			field_count = excluded.field_count,
			record_json = excluded.record_json,
			status      = excluded.status,
			created_at  = excluded.created_at`,
		run.ID.String(), run.SourcePath, run.FileHash, run.PayDate,
		run.FieldCount, run.RecordJSON, run.Status, run.CreatedAt)
	if err != nil {
		return common.NewAppError("CACHE_SAVE", "saving extraction run", err)
	}
	r.logger.Debug("cache.save", "hash", run.FileHash, "fields", run.FieldCount)
	return nil
}

// ListRecent returns the most recently cached runs, newest first.
func (r *SQLiteRuns) ListRecent(ctx context.Context, limit int) ([]*entity.ExtractionRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_path, file_hash, pay_date, field_count, record_json, status, created_at
		FROM extraction_run ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, common.NewAppError("CACHE_LIST", "listing extraction runs", err)
	}
	defer rows.Close()

	var runs []*entity.ExtractionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*entity.ExtractionRun, error) {
	var run entity.ExtractionRun
	var id string
	err := row.Scan(&id, &run.SourcePath, &run.FileHash, &run.PayDate,
		&run.FieldCount, &run.RecordJSON, &run.Status, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.NewAppError("CACHE_SCAN", "reading extraction run", err)
	}
	run.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, common.NewAppError("CACHE_SCAN", "parsing run id", err)
	}
	return &run, nil
}
