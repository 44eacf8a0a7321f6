package build

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/spraval/cricsheet-etl/pkg/storage"
	"github.com/urfave/cli/v2"
)

// BuildAction loads the flattened CSVs into SQLite. Each format's table is
// dropped and recreated, loaded in chunked transactions, then indexed;
// ANALYZE runs once at the end. Rebuilding from the same CSVs yields the
// same tables, so reruns are safe.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	config, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	formats, err := common.ResolveFormats(c, config)
	if err != nil {
		logger.Error("invalid formats", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	s := &storage.Storage{}
	totalRows := int64(0)
	loadedTables := 0
	failedCount := 0

	for _, format := range formats {
		csvPath := config.CSVPath(format)
		if !s.HasFile(csvPath) {
			logger.Warn("missing CSV, run flatten first", "format", string(format), "csv", csvPath)
			failedCount++
			continue
		}

		if err := database.Rebuild(format); err != nil {
			logger.Error("rebuild failed", "format", string(format), "error", err)
			failedCount++
			continue
		}

		rows, err := database.LoadCSV(format, csvPath, config.ChunkSize)
		if err != nil {
			logger.Error("load failed", "format", string(format), "error", err)
			failedCount++
			continue
		}

		if err := database.CreateIndexes(format); err != nil {
			logger.Error("index creation failed", "format", string(format), "error", err)
			failedCount++
			continue
		}

		logger.Info("table loaded", "table", format.TableName(), "rows", rows)
		fmt.Printf("Loaded %s rows into %s\n", humanize.Comma(rows), format.TableName())
		totalRows += rows
		loadedTables++
	}

	if loadedTables > 0 {
		if err := database.Analyze(); err != nil {
			logger.Warn("ANALYZE failed", "error", err)
		}
	}

	if _, err := database.InsertRun(db.Run{
		Stage:       "build",
		Formats:     common.FormatLabels(formats),
		FileCount:   loadedTables,
		RowCount:    totalRows,
		FailedCount: failedCount,
		DurationMS:  time.Since(startTime).Milliseconds(),
	}); err != nil {
		logger.Warn("failed to record run", "error", err)
	}

	fmt.Printf("\nTotal rows loaded across all tables: %s\n", humanize.Comma(totalRows))
	fmt.Printf("SQLite DB ready: %s\n", database.Path())

	if loadedTables == 0 {
		os.Exit(2)
	}
	if failedCount > 0 {
		os.Exit(1)
	}
	return nil
}
