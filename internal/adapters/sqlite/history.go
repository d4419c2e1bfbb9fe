package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

const schemaVersion = "1"

// History implements ports.RunHistory using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements RunHistory
var _ ports.RunHistory = (*History)(nil)

// DefaultPath returns the history database under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "yolocheck", "history.db")
}

// Open opens (and if needed creates) the history database at dbPath
func Open(dbPath string) (*History, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps :memory: databases alive across calls
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			base_dir TEXT NOT NULL,
			dry_run INTEGER NOT NULL,
			valid_images INTEGER NOT NULL,
			valid_labels INTEGER NOT NULL,
			valid_objects INTEGER NOT NULL,
			removed_images INTEGER NOT NULL,
			removed_labels INTEGER NOT NULL,
			bytes_removed INTEGER NOT NULL,
			missing_pairs INTEGER NOT NULL,
			corrupted_files INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &History{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Record stores the summary of one run
func (h *History) Record(ctx context.Context, r domain.RunRecord) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, started_at, base_dir, dry_run,
			valid_images, valid_labels, valid_objects,
			removed_images, removed_labels, bytes_removed,
			missing_pairs, corrupted_files
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.StartedAt.UnixMilli(), r.BaseDir, r.DryRun,
		r.ValidImages, r.ValidLabels, r.ValidObjects,
		r.RemovedImages, r.RemovedLabels, r.BytesRemoved,
		r.MissingPairs, r.CorruptedFiles)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", r.ID, err)
	}
	return nil
}

// List returns the most recent runs first; limit <= 0 returns all runs
func (h *History) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT id, started_at, base_dir, dry_run,
			valid_images, valid_labels, valid_objects,
			removed_images, removed_labels, bytes_removed,
			missing_pairs, corrupted_files
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		var startedAt int64
		if err := rows.Scan(&r.ID, &startedAt, &r.BaseDir, &r.DryRun,
			&r.ValidImages, &r.ValidLabels, &r.ValidObjects,
			&r.RemovedImages, &r.RemovedLabels, &r.BytesRemoved,
			&r.MissingPairs, &r.CorruptedFiles); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(startedAt).UTC()
		records = append(records, r)
	}
	return records, rows.Err()
}
