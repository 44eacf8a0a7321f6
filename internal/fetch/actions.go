package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spraval/cricsheet-etl/internal/common"
	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/archive"
	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/spraval/cricsheet-etl/pkg/fetcher"
	"github.com/spraval/cricsheet-etl/pkg/storage"
	"github.com/urfave/cli/v2"
)

// FetchAction downloads the configured Cricsheet archives and extracts
// their JSON match files into the per-format raw directories. Failures are
// per-format: one bad download does not abort the other formats.
func FetchAction(c *cli.Context) error {
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

	var maxAge time.Duration
	if !c.Bool("force") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	f := fetcher.NewFetcher(config.HTTPTimeout, config.UserAgent)
	s := &storage.Storage{}

	if c.Bool("discover") {
		if err := discoverArchives(f, config, formats); err != nil {
			logger.Warn("archive discovery failed", "error", err)
		}
	}

	if err := s.EnsureDir(config.ArchiveDir()); err != nil {
		logger.Error("failed to create archive directory", "error", err)
		os.Exit(2)
	}

	fileCount := 0
	failedCount := 0
	for _, format := range formats {
		archivePath := filepath.Join(config.ArchiveDir(), format.ArchiveName())

		if s.IsFresh(archivePath, maxAge) {
			logger.Info("archive is fresh, skipping download",
				"format", string(format), "archive", archivePath, "max_age", maxAge.String())
		} else {
			url := config.ArchiveURL(format)
			logger.Info("downloading archive", "format", string(format), "url", url)
			written, err := f.DownloadFile(url, archivePath)
			if err != nil {
				logger.Error("download failed, retry manually", "format", string(format), "error", err)
				failedCount++
				continue
			}
			logger.Info("archive downloaded", "format", string(format), "bytes", written)
		}

		extracted, err := archive.ExtractJSON(archivePath, config.RawDir(format))
		if err != nil {
			logger.Error("extraction failed", "format", string(format), "error", err)
			failedCount++
			continue
		}
		logger.Info("archive extracted", "format", string(format), "files", extracted)
		fileCount += extracted
	}

	common.RecordRun(logger, config, db.Run{
		Stage:       "fetch",
		Formats:     common.FormatLabels(formats),
		FileCount:   fileCount,
		FailedCount: failedCount,
		DurationMS:  time.Since(startTime).Milliseconds(),
	})

	fmt.Printf("Fetch complete: %d match files across %d format(s), %d failed\n",
		fileCount, len(formats), failedCount)

	if failedCount == len(formats) {
		os.Exit(2)
	}
	if failedCount > 0 {
		os.Exit(1)
	}
	return nil
}

// discoverArchives scrapes the Cricsheet downloads page and verifies every
// requested archive is still linked there. Purely advisory: a changed page
// layout produces warnings, never an abort.
func discoverArchives(f *fetcher.Fetcher, config *models.Config, formats []models.MatchFormat) error {
	doc, err := f.GetDocument(config.BaseURL + "/")
	if err != nil {
		return err
	}

	linked := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if strings.HasSuffix(href, ".zip") {
			linked[filepath.Base(href)] = true
		}
	})

	if len(linked) == 0 {
		return fmt.Errorf("no archive links found on %s", config.BaseURL)
	}

	for _, format := range formats {
		if !linked[format.ArchiveName()] {
			fmt.Fprintf(os.Stderr, "Warning: %s is not listed on the downloads page\n", format.ArchiveName())
		}
	}
	return nil
}
