package db

import (
	"fmt"

	"github.com/spraval/cricsheet-etl/models"
)

// TableSanity holds the post-load checks for one match table. The values
// are reported for manual review; nothing here is enforced.
type TableSanity struct {
	Table           string
	RowCount        int64
	DistinctMatches int64
	MatchTypes      map[string]int64
	NullTeam        int64
	NullBatter      int64
	NullBowler      int64
	NullRunsTotal   int64
	NegativeRuns    int64
	NullOver        int64
	TopVenues       []CountRow
}

// CountRow is a labelled count, used for distributions and rankings.
type CountRow struct {
	Label string
	Count int64
}

// SanityCheck runs the sanity queries against one format's table.
func (db *DB) SanityCheck(format models.MatchFormat) (*TableSanity, error) {
	table := format.TableName()
	result := &TableSanity{Table: table, MatchTypes: map[string]int64{}}

	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&result.RowCount); err != nil {
		return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(DISTINCT match_id) FROM %s", table)).Scan(&result.DistinctMatches); err != nil {
		return nil, fmt.Errorf("failed to count matches in %s: %w", table, err)
	}

	rows, err := db.Query(fmt.Sprintf("SELECT match_type, COUNT(*) FROM %s GROUP BY match_type", table))
	if err != nil {
		return nil, fmt.Errorf("failed to query match types in %s: %w", table, err)
	}
	for rows.Next() {
		var matchType string
		var count int64
		if err := rows.Scan(&matchType, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan match type row: %w", err)
		}
		result.MatchTypes[matchType] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match types: %w", err)
	}

	err = db.QueryRow(fmt.Sprintf(`
		SELECT
		  COALESCE(SUM(CASE WHEN team IS NULL OR TRIM(team)='' THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN batter IS NULL OR TRIM(batter)='' THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN bowler IS NULL OR TRIM(bowler)='' THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN runs_total IS NULL THEN 1 ELSE 0 END), 0)
		FROM %s
	`, table)).Scan(&result.NullTeam, &result.NullBatter, &result.NullBowler, &result.NullRunsTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to run null checks on %s: %w", table, err)
	}

	err = db.QueryRow(fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE runs_total < 0 OR runs_batter < 0 OR runs_extra < 0", table,
	)).Scan(&result.NegativeRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to run negative-run check on %s: %w", table, err)
	}

	err = db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE over IS NULL", table)).Scan(&result.NullOver)
	if err != nil {
		return nil, fmt.Errorf("failed to run null-over check on %s: %w", table, err)
	}

	result.TopVenues, err = db.countRows(fmt.Sprintf(`
		SELECT venue, COUNT(*) AS c
		FROM %s
		GROUP BY venue
		ORDER BY c DESC
		LIMIT 5
	`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query top venues in %s: %w", table, err)
	}

	return result, nil
}

// countRows runs a (label, count) query and scans the results.
func (db *DB) countRows(query string, args ...interface{}) ([]CountRow, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CountRow
	for rows.Next() {
		var row CountRow
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
