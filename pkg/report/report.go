// Package report renders the post-load sanity checks for manual review.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spraval/cricsheet-etl/pkg/db"
)

// Sanity is the full sanity report across all loaded tables.
type Sanity struct {
	GeneratedAt time.Time
	Tables      []*db.TableSanity
}

// TotalRows sums the row counts across all tables.
func (r *Sanity) TotalRows() int64 {
	var total int64
	for _, t := range r.Tables {
		total += t.RowCount
	}
	return total
}

// Render formats the report as the operator-facing text block. The checks
// are informational: suspicious values are flagged inline but nothing
// fails the run.
func (r *Sanity) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "==================== SANITY REPORT ====================\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	for _, t := range r.Tables {
		fmt.Fprintf(&b, "\n> %s: rows=%s, matches=%s\n",
			t.Table, humanize.Comma(t.RowCount), humanize.Comma(t.DistinctMatches))

		fmt.Fprintf(&b, "  match_type distribution:\n")
		for _, entry := range TopN(t.MatchTypes, len(t.MatchTypes)) {
			fmt.Fprintf(&b, "    %s\n", entry)
		}

		fmt.Fprintf(&b, "  NULL/blank team     : %s\n", humanize.Comma(t.NullTeam))
		fmt.Fprintf(&b, "  NULL/blank batter   : %s\n", humanize.Comma(t.NullBatter))
		fmt.Fprintf(&b, "  NULL/blank bowler   : %s\n", humanize.Comma(t.NullBowler))
		fmt.Fprintf(&b, "  NULL runs_total     : %s\n", humanize.Comma(t.NullRunsTotal))
		fmt.Fprintf(&b, "  negative run rows   : %s%s\n",
			humanize.Comma(t.NegativeRuns), flag(t.NegativeRuns))
		fmt.Fprintf(&b, "  NULL over rows      : %s%s\n",
			humanize.Comma(t.NullOver), flag(t.NullOver))

		fmt.Fprintf(&b, "  top venues:\n")
		for _, venue := range t.TopVenues {
			fmt.Fprintf(&b, "    %s: %s\n", venue.Label, humanize.Comma(venue.Count))
		}
	}

	fmt.Fprintf(&b, "\nTotal rows across all tables: %s\n", humanize.Comma(r.TotalRows()))
	fmt.Fprintf(&b, "==================== REPORT DONE ======================\n")
	return b.String()
}

func flag(n int64) string {
	if n > 0 {
		return "  <-- check"
	}
	return ""
}
