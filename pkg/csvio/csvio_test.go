package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spraval/cricsheet-etl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDelivery(matchID string, over int) *models.Delivery {
	return &models.Delivery{
		MatchID:      matchID,
		MatchDate:    "2012-02-03",
		MatchFormat:  "t20",
		MatchType:    "T20",
		Season:       "2011/12",
		City:         "Melbourne",
		Venue:        "MCG",
		Teams:        "Australia vs India",
		TossWinner:   "India",
		TossDecision: "field",
		Winner:       "Australia",
		Team:         "Australia",
		Over:         over,
		Batter:       "DA Warner",
		Bowler:       "R Ashwin",
		NonStriker:   "MS Wade",
		RunsBatter:   4,
		RunsTotal:    4,
	}
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t20.csv")

	writer, err := NewWriter(path)
	require.NoError(t, err)

	require.NoError(t, writer.Write(sampleDelivery("533298", 0)))
	require.NoError(t, writer.Write(sampleDelivery("533298", 1)))
	assert.Equal(t, 2, writer.Rows())
	require.NoError(t, writer.Close())

	var records [][]string
	count, err := ReadRows(path, func(record []string) error {
		records = append(records, record)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, records, 2)

	assert.Len(t, records[0], len(models.Columns))
	assert.Equal(t, "533298", records[0][0])
	assert.Equal(t, "0", records[0][13]) // over column
	assert.Equal(t, "1", records[1][13])
}

func TestReadRowsRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "id,name\n1,foo\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := ReadRows(path, func([]string) error { return nil })
	assert.Error(t, err)
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "absent.csv"), func([]string) error { return nil })
	assert.Error(t, err)
}
