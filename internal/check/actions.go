package check

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/spraval/cricsheet-etl/pkg/report"
	"github.com/spraval/cricsheet-etl/pkg/storage"
	"github.com/urfave/cli/v2"
)

// CheckAction runs the post-load sanity queries and prints the report.
// The checks are advisory: the command exits zero even when counts look
// suspicious, leaving the judgment to the operator.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

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

	sanity := &report.Sanity{GeneratedAt: time.Now()}
	for _, format := range formats {
		tableSanity, err := database.SanityCheck(format)
		if err != nil {
			logger.Error("sanity check failed, run build first",
				"table", format.TableName(), "error", err)
			os.Exit(2)
		}
		sanity.Tables = append(sanity.Tables, tableSanity)
	}

	rendered := sanity.Render()
	fmt.Print(rendered)

	s := &storage.Storage{}
	reportPath := filepath.Join(config.ProcessedDir(), "sanity_report.txt")
	if err := s.EnsureDir(config.ProcessedDir()); err == nil {
		if err := s.SaveFile(reportPath, []byte(rendered)); err != nil {
			logger.Warn("failed to write report file", "error", err)
		} else {
			fmt.Printf("\nReport saved to: %s\n", reportPath)
		}
	}

	return nil
}
