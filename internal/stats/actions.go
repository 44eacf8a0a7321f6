package stats

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/urfave/cli/v2"
)

// StatsAction answers the quick ranking questions the analysis notebooks
// usually cover: top batters, bowlers or venues for one format.
func StatsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	format, err := models.ParseFormat(c.String("format"))
	if err != nil {
		logger.Error("invalid format", "error", err)
		os.Exit(2)
	}

	limit := c.Int("limit")
	if limit <= 0 {
		limit = 10
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	var rows []db.CountRow
	var heading string
	switch c.String("top") {
	case "batters":
		heading = "runs"
		rows, err = database.TopBatters(format, limit)
	case "bowlers":
		heading = "wickets"
		rows, err = database.TopBowlers(format, limit)
	case "venues":
		heading = "matches"
		rows, err = database.TopVenues(format, limit)
	default:
		fmt.Fprintln(os.Stderr, "Error: --top must be one of: batters, bowlers, venues")
		os.Exit(1)
	}
	if err != nil {
		logger.Error("stats query failed, run build first", "error", err)
		os.Exit(2)
	}

	if len(rows) == 0 {
		fmt.Printf("No rows in %s; run 'cricetl build' first\n", format.TableName())
		return nil
	}

	fmt.Printf("Top %d %s by %s (%s)\n", len(rows), c.String("top"), heading, format.TableName())
	for i, row := range rows {
		fmt.Printf("%2d. %-40s %s\n", i+1, row.Label, humanize.Comma(row.Count))
	}
	return nil
}
