package flatten

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/cricsheet"
	"github.com/spraval/cricsheet-etl/pkg/csvio"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/spraval/cricsheet-etl/pkg/storage"
	"github.com/urfave/cli/v2"
)

// FlattenAction parses every extracted match JSON and writes one CSV per
// format, one row per delivery. Malformed documents are logged and
// skipped; the stage only fails when a format produces nothing at all.
func FlattenAction(c *cli.Context) error {
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

	s := &storage.Storage{}
	if err := s.EnsureDir(config.ProcessedDir()); err != nil {
		logger.Error("failed to create processed directory", "error", err)
		os.Exit(2)
	}

	var combined *csvio.Writer
	if c.Bool("combined") {
		combined, err = csvio.NewWriter(config.CombinedCSVPath())
		if err != nil {
			logger.Error("failed to create combined CSV", "error", err)
			os.Exit(2)
		}
		defer combined.Close()
	}

	totalFiles := 0
	totalRows := int64(0)
	totalFailed := 0
	emptyFormats := 0

	for _, format := range formats {
		files, rows, failed, err := flattenFormat(logger, s, config, format, combined)
		if err != nil {
			logger.Error("flatten failed", "format", string(format), "error", err)
			emptyFormats++
			continue
		}
		if files == 0 {
			logger.Warn("no match files found, run fetch first",
				"format", string(format), "dir", config.RawDir(format))
			emptyFormats++
		}
		totalFiles += files
		totalRows += rows
		totalFailed += failed
	}

	common.RecordRun(logger, config, db.Run{
		Stage:       "flatten",
		Formats:     common.FormatLabels(formats),
		FileCount:   totalFiles,
		RowCount:    totalRows,
		FailedCount: totalFailed,
		DurationMS:  time.Since(startTime).Milliseconds(),
	})

	fmt.Printf("Flatten complete: %d matches -> %d delivery rows (%d file(s) skipped)\n",
		totalFiles, totalRows, totalFailed)

	if emptyFormats == len(formats) {
		os.Exit(2)
	}
	return nil
}

// flattenFormat produces one format's CSV. Returns parsed file count,
// emitted row count and skipped (malformed) file count.
func flattenFormat(logger *slog.Logger, s *storage.Storage, config *models.Config, format models.MatchFormat, combined *csvio.Writer) (int, int64, int, error) {
	paths, err := filepath.Glob(filepath.Join(config.RawDir(format), "*.json"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to list match files: %w", err)
	}
	if len(paths) == 0 {
		return 0, 0, 0, nil
	}
	// Deterministic CSV ordering across runs.
	sort.Strings(paths)

	writer, err := csvio.NewWriter(config.CSVPath(format))
	if err != nil {
		return 0, 0, 0, err
	}

	files := 0
	failed := 0
	for _, path := range paths {
		data, err := s.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable match file", "path", path, "error", err)
			failed++
			continue
		}

		match, err := cricsheet.ParseMatch(data)
		if err != nil {
			logger.Warn("skipping malformed match JSON", "path", path, "error", err)
			failed++
			continue
		}

		matchID := cricsheet.MatchIDFromPath(path)
		expected := format.ExpectedMatchType()
		if expected != "" && match.Info.MatchType != "" && match.Info.MatchType != expected {
			logger.Warn("match_type differs from format expectation",
				"match_id", matchID, "match_type", match.Info.MatchType, "expected", expected)
		}

		for _, row := range cricsheet.Flatten(match, format, matchID) {
			if err := writer.Write(&row); err != nil {
				writer.Close()
				return files, int64(writer.Rows()), failed, err
			}
			if combined != nil {
				if err := combined.Write(&row); err != nil {
					writer.Close()
					return files, int64(writer.Rows()), failed, err
				}
			}
		}
		files++
	}

	rows := int64(writer.Rows())
	if err := writer.Close(); err != nil {
		return files, rows, failed, err
	}

	logger.Info("format flattened", "format", string(format),
		"matches", files, "rows", rows, "skipped", failed, "csv", config.CSVPath(format))
	return files, rows, failed, nil
}
