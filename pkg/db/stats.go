package db

import (
	"fmt"

	"github.com/spraval/cricsheet-etl/models"
)

// TopBatters ranks batters in one format's table by total runs off the bat.
func (db *DB) TopBatters(format models.MatchFormat, limit int) ([]CountRow, error) {
	return db.countRows(fmt.Sprintf(`
		SELECT batter, SUM(runs_batter) AS r
		FROM %s
		GROUP BY batter
		ORDER BY r DESC
		LIMIT ?
	`, format.TableName()), limit)
}

// TopBowlers ranks bowlers by deliveries on which a wicket fell. Run-outs
// are credited to the bowler here too; the column stores only the first
// dismissal kind, not fielding credit.
func (db *DB) TopBowlers(format models.MatchFormat, limit int) ([]CountRow, error) {
	return db.countRows(fmt.Sprintf(`
		SELECT bowler, COUNT(*) AS w
		FROM %s
		WHERE wicket IS NOT NULL AND wicket <> ''
		GROUP BY bowler
		ORDER BY w DESC
		LIMIT ?
	`, format.TableName()), limit)
}

// TopVenues ranks venues by number of distinct matches hosted.
func (db *DB) TopVenues(format models.MatchFormat, limit int) ([]CountRow, error) {
	return db.countRows(fmt.Sprintf(`
		SELECT venue, COUNT(DISTINCT match_id) AS m
		FROM %s
		GROUP BY venue
		ORDER BY m DESC
		LIMIT ?
	`, format.TableName()), limit)
}
