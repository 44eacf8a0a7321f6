package common

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/urfave/cli/v2"
)

// NewLogger builds the pipeline's stderr JSON logger. --quiet drops
// everything below error level.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by the global --config flag.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	return models.LoadConfig(c.String("config"))
}

// ResolveFormats returns the formats to process: the --formats flag when
// set, otherwise the config file's list. Unknown labels are an error.
func ResolveFormats(c *cli.Context, config *models.Config) ([]models.MatchFormat, error) {
	labels := config.Formats
	if c.IsSet("formats") {
		labels = strings.Split(c.String("formats"), ",")
	}

	var formats []models.MatchFormat
	for _, label := range labels {
		format, err := models.ParseFormat(strings.TrimSpace(strings.ToLower(label)))
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no formats configured")
	}
	return formats, nil
}

// FormatLabels joins formats into the comma-separated form stored in the
// run ledger.
func FormatLabels(formats []models.MatchFormat) string {
	labels := make([]string, len(formats))
	for i, f := range formats {
		labels[i] = string(f)
	}
	return strings.Join(labels, ",")
}

// RecordRun appends to the run ledger. Ledger failures only warn: the
// stage's output is already on disk by the time this runs.
func RecordRun(logger *slog.Logger, config *models.Config, run db.Run) {
	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Warn("failed to open database for run ledger", "error", err)
		return
	}
	defer database.Close()

	if _, err := database.InsertRun(run); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
