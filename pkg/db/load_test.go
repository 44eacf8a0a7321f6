package db

import (
	"path/filepath"
	"testing"

	"github.com/spraval/cricsheet-etl/models"
	"github.com/spraval/cricsheet-etl/pkg/csvio"
)

func writeTestCSV(t *testing.T, path string, rows int) {
	t.Helper()

	writer, err := csvio.NewWriter(path)
	if err != nil {
		t.Fatalf("failed to create CSV: %v", err)
	}
	for i := 0; i < rows; i++ {
		d := models.Delivery{
			MatchID: "m1", MatchDate: "2012-02-03", MatchFormat: "t20", MatchType: "T20",
			Season: "2011/12", Venue: "MCG", Team: "Australia",
			Over: i / 6, Batter: "DA Warner", Bowler: "R Ashwin",
			RunsBatter: 1, RunsTotal: 1,
		}
		if err := writer.Write(&d); err != nil {
			t.Fatalf("failed to write CSV row: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close CSV: %v", err)
	}
}

func TestLoadCSV(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	csvPath := filepath.Join(t.TempDir(), "T20.csv")
	writeTestCSV(t, csvPath, 25)

	if err := db.Rebuild(models.FormatT20); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	// Chunk size smaller than the row count to exercise multi-chunk commits.
	loaded, err := db.LoadCSV(models.FormatT20, csvPath, 10)
	if err != nil {
		t.Fatalf("LoadCSV() failed: %v", err)
	}
	if loaded != 25 {
		t.Errorf("loaded = %d, want 25", loaded)
	}

	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM t20_table").Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 25 {
		t.Errorf("got %d rows in table, want 25", count)
	}

	var over int64
	err = db.QueryRow("SELECT MAX(over) FROM t20_table").Scan(&over)
	if err != nil {
		t.Fatalf("failed to query max over: %v", err)
	}
	if over != 4 {
		t.Errorf("max over = %d, want 4", over)
	}
}

func TestLoadCSVRebuildIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	csvPath := filepath.Join(t.TempDir(), "T20.csv")
	writeTestCSV(t, csvPath, 12)

	for i := 0; i < 2; i++ {
		if err := db.Rebuild(models.FormatT20); err != nil {
			t.Fatalf("Rebuild() run %d failed: %v", i, err)
		}
		if _, err := db.LoadCSV(models.FormatT20, csvPath, 5); err != nil {
			t.Fatalf("LoadCSV() run %d failed: %v", i, err)
		}
	}

	// Drop-and-recreate semantics: two builds do not double the rows.
	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM t20_table").Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 12 {
		t.Errorf("got %d rows after two builds, want 12", count)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.Rebuild(models.FormatT20); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}
	if _, err := db.LoadCSV(models.FormatT20, filepath.Join(t.TempDir(), "absent.csv"), 10); err == nil {
		t.Error("LoadCSV() should fail on a missing CSV")
	}
}
