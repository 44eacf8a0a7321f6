package db

import (
	"database/sql"
	"fmt"

	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/csvio"
)

// Rebuild drops and recreates the match table for one format.
func (db *DB) Rebuild(format models.MatchFormat) error {
	if _, err := db.Exec(fmt.Sprintf(ddlTemplate, format.TableName())); err != nil {
		return fmt.Errorf("failed to rebuild table %s: %w", format.TableName(), err)
	}
	return nil
}

// LoadCSV streams a delivery CSV into the format's table in chunked
// transactions of chunkSize rows, keeping memory bounded on the large
// Test/ODI files. Returns the number of rows inserted.
func (db *DB) LoadCSV(format models.MatchFormat, csvPath string, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = 5000
	}

	table := format.TableName()
	query := insertSQL(table)

	var tx *sql.Tx
	var stmt *sql.Stmt
	pending := 0

	begin := func() error {
		var err error
		tx, err = db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		stmt, err = tx.Prepare(query)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
		}
		pending = 0
		return nil
	}
	commit := func() error {
		stmt.Close()
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit chunk into %s: %w", table, err)
		}
		tx = nil
		return nil
	}

	if err := begin(); err != nil {
		return 0, err
	}

	total, err := csvio.ReadRows(csvPath, func(record []string) error {
		args := make([]interface{}, len(record))
		for i, v := range record {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row into %s: %w", table, err)
		}
		pending++
		if pending >= chunkSize {
			if err := commit(); err != nil {
				return err
			}
			return begin()
		}
		return nil
	})
	if err != nil {
		if tx != nil {
			stmt.Close()
			tx.Rollback()
		}
		return int64(total), err
	}

	if err := commit(); err != nil {
		return int64(total), err
	}
	return int64(total), nil
}

// CreateIndexes creates the lookup indexes for one format's table.
func (db *DB) CreateIndexes(format models.MatchFormat) error {
	table := format.TableName()
	for _, tmpl := range indexTemplates {
		if _, err := db.Exec(fmt.Sprintf(tmpl, table)); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", table, err)
		}
	}
	return nil
}

// Analyze refreshes SQLite's statistics for query planning.
func (db *DB) Analyze() error {
	if _, err := db.Exec("ANALYZE"); err != nil {
		return fmt.Errorf("failed to run ANALYZE: %w", err)
	}
	return nil
}
