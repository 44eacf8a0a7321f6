package db

import (
	"testing"
)

func TestInsertAndListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id1, err := db.InsertRun(Run{Stage: "fetch", Formats: "test,odi", FileCount: 120})
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	if id1 == 0 {
		t.Error("InsertRun() returned 0 ID")
	}

	id2, err := db.InsertRun(Run{Stage: "build", Formats: "t20", RowCount: 54321, DurationMS: 900})
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("run IDs not increasing: %d then %d", id1, id2)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Stage != "build" {
		t.Errorf("runs[0].Stage = %q, want %q", runs[0].Stage, "build")
	}
	if runs[0].RowCount != 54321 {
		t.Errorf("runs[0].RowCount = %d, want 54321", runs[0].RowCount)
	}
	if runs[1].Stage != "fetch" {
		t.Errorf("runs[1].Stage = %q, want %q", runs[1].Stage, "fetch")
	}
	if runs[1].FileCount != 120 {
		t.Errorf("runs[1].FileCount = %d, want 120", runs[1].FileCount)
	}
}

func TestListRunsLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.InsertRun(Run{Stage: "flatten", Formats: "ipl"}); err != nil {
			t.Fatalf("InsertRun() failed: %v", err)
		}
	}

	runs, err := db.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}
