package db

import (
	"fmt"
	"time"
)

// Run is one recorded pipeline stage execution.
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	Stage       string
	Formats     string
	FileCount   int
	RowCount    int64
	FailedCount int
	DurationMS  int64
}

// InsertRun records a completed stage in the ledger and returns its ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (stage, formats, file_count, row_count, failed_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.Stage, run.Formats, run.FileCount, run.RowCount, run.FailedCount, run.DurationMS)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, created_at, stage, formats, file_count, row_count, failed_count, duration_ms
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		err := rows.Scan(&run.RunID, &run.CreatedAt, &run.Stage, &run.Formats,
			&run.FileCount, &run.RowCount, &run.FailedCount, &run.DurationMS)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
