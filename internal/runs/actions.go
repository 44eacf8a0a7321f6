package runs

import (
	"fmt"
	"os"
	"strings"

	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/urfave/cli/v2"
)

// RunsAction lists recorded pipeline runs, newest first.
func RunsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(2)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return nil
	}

	fmt.Printf("%-6s %-20s %-9s %-18s %-8s %-12s %-8s %-10s\n",
		"ID", "Created", "Stage", "Formats", "Files", "Rows", "Failed", "Duration")
	fmt.Println(strings.Repeat("-", 96))

	for _, run := range runs {
		fmt.Printf("%-6d %-20s %-9s %-18s %-8d %-12d %-8d %dms\n",
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Stage,
			run.Formats,
			run.FileCount,
			run.RowCount,
			run.FailedCount,
			run.DurationMS,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
