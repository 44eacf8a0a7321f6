package main

import (
	"fmt"
	"os"

	"github.com/spraval/cricsheet-etl/internal/build"
	"github.com/spraval/cricsheet-etl/internal/check"
	"github.com/spraval/cricsheet-etl/internal/fetch"
	"github.com/spraval/cricsheet-etl/internal/flatten"
	"github.com/spraval/cricsheet-etl/internal/runs"
	"github.com/spraval/cricsheet-etl/internal/stats"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cricetl",
		Usage: "Cricsheet ball-by-ball ETL: fetch archives, flatten to CSV, build SQLite",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to YAML config file (optional, defaults apply)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress info-level logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "fetch",
				Usage:  "download the Cricsheet archives and extract match JSON files",
				Action: fetch.FetchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "formats",
						Usage: "comma-separated subset of: test,odi,t20,ipl",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "re-download even when the archive is fresh",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "skip downloading archives younger than this",
					},
					&cli.BoolFlag{
						Name:  "discover",
						Usage: "verify the archives are still listed on the downloads page",
					},
				},
			},
			{
				Name:   "flatten",
				Usage:  "flatten match JSON into per-format delivery CSVs",
				Action: flatten.FlattenAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "formats",
						Usage: "comma-separated subset of: test,odi,t20,ipl",
					},
					&cli.BoolFlag{
						Name:  "combined",
						Usage: "also write a single CSV spanning all formats",
					},
				},
			},
			{
				Name:   "build",
				Usage:  "load the CSVs into SQLite tables with lookup indexes",
				Action: build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "formats",
						Usage: "comma-separated subset of: test,odi,t20,ipl",
					},
				},
			},
			{
				Name:   "check",
				Usage:  "run post-load sanity checks and print the report",
				Action: check.CheckAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "formats",
						Usage: "comma-separated subset of: test,odi,t20,ipl",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "quick rankings straight from the store",
				Action: stats.StatsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "top",
						Required: true,
						Usage:    "what to rank: batters, bowlers or venues",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "t20",
						Usage: "match format to query",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "number of rows to show",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "list recorded pipeline runs",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "number of runs to show",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
