package report

import (
	"testing"
	"time"

	"github.com/spraval/cricsheet-etl/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestTopN(t *testing.T) {
	counts := map[string]int64{"T20": 500, "ODI": 300, "Test": 300}

	top := TopN(counts, 2)
	assert.Equal(t, []string{"T20:500", "ODI:300"}, top)

	// n larger than the map is clamped; ties break alphabetically.
	all := TopN(counts, 10)
	assert.Equal(t, []string{"T20:500", "ODI:300", "Test:300"}, all)

	assert.Empty(t, TopN(nil, 5))
}

func TestSanityRender(t *testing.T) {
	sanity := &Sanity{
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Tables: []*db.TableSanity{
			{
				Table:           "t20_table",
				RowCount:        123456,
				DistinctMatches: 510,
				MatchTypes:      map[string]int64{"T20": 123456},
				TopVenues:       []db.CountRow{{Label: "MCG", Count: 9001}},
			},
			{
				Table:        "odi_table",
				RowCount:     10,
				MatchTypes:   map[string]int64{"ODI": 10},
				NegativeRuns: 2,
			},
		},
	}

	out := sanity.Render()
	assert.Contains(t, out, "t20_table: rows=123,456")
	assert.Contains(t, out, "T20:123456")
	assert.Contains(t, out, "MCG: 9,001")
	// Suspicious counts are flagged for the operator.
	assert.Contains(t, out, "negative run rows   : 2  <-- check")
	assert.Contains(t, out, "Total rows across all tables: 123,466")
}

func TestSanityTotalRows(t *testing.T) {
	sanity := &Sanity{Tables: []*db.TableSanity{{RowCount: 5}, {RowCount: 7}}}
	assert.Equal(t, int64(12), sanity.TotalRows())
}
