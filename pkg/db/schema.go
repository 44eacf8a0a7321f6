package db

import (
	"fmt"

	"github.com/spraval/cricsheet-etl/models"
)

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Runs: ledger of pipeline stage executions
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    stage TEXT NOT NULL,
    formats TEXT NOT NULL,
    file_count INTEGER DEFAULT 0,
    row_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    duration_ms INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage);
`

// ddlTemplate creates one per-format match table. Tables are dropped and
// recreated on every build; the pipeline never updates them in place.
const ddlTemplate = `
DROP TABLE IF EXISTS %[1]s;
CREATE TABLE %[1]s (
    match_id        TEXT,
    match_date      TEXT,
    match_format    TEXT,
    match_type      TEXT,
    season          TEXT,
    city            TEXT,
    venue           TEXT,
    teams           TEXT,
    toss_winner     TEXT,
    toss_decision   TEXT,
    winner          TEXT,
    player_of_match TEXT,

    team            TEXT,
    over            INTEGER,
    batter          TEXT,
    bowler          TEXT,
    non_striker     TEXT,
    runs_batter     INTEGER,
    runs_extra      INTEGER,
    runs_total      INTEGER,
    wicket          TEXT
);
`

// indexTemplates are the lookup indexes created per match table after load.
var indexTemplates = []string{
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_match_id    ON %[1]s(match_id);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_mt_season   ON %[1]s(match_type, season);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_team_season ON %[1]s(team, season);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_batter      ON %[1]s(batter);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_bowler      ON %[1]s(bowler);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_winner      ON %[1]s(winner);",
	"CREATE INDEX IF NOT EXISTS %[1]s_idx_venue       ON %[1]s(venue);",
}

// insertSQL builds the positional INSERT for a match table, columns in
// models.Columns order.
func insertSQL(table string) string {
	placeholders := ""
	cols := ""
	for i, col := range models.Columns {
		if i > 0 {
			cols += ", "
			placeholders += ", "
		}
		cols += col
		placeholders += "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, placeholders)
}
