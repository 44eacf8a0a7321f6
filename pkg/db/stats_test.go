package db

import (
	"testing"

	"github.com/spraval/cricsheet-etl/models"
)

func seedStatsRows(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Rebuild(models.FormatT20); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	rows := []models.Delivery{
		{MatchID: "m1", Venue: "MCG", Team: "A", Batter: "Warner", Bowler: "Ashwin", RunsBatter: 50, RunsTotal: 50},
		{MatchID: "m1", Venue: "MCG", Team: "A", Batter: "Smith", Bowler: "Ashwin", RunsBatter: 30, RunsTotal: 30},
		{MatchID: "m1", Venue: "MCG", Team: "A", Batter: "Warner", Bowler: "Kumar", RunsBatter: 20, RunsTotal: 20, Wicket: "caught"},
		{MatchID: "m2", Venue: "Eden Gardens", Team: "B", Batter: "Kohli", Bowler: "Starc", RunsBatter: 45, RunsTotal: 45, Wicket: "bowled"},
		{MatchID: "m3", Venue: "MCG", Team: "B", Batter: "Kohli", Bowler: "Starc", RunsBatter: 10, RunsTotal: 10, Wicket: "lbw"},
	}
	for _, row := range rows {
		insertDelivery(t, db, models.FormatT20, row)
	}
}

func TestTopBatters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedStatsRows(t, db)

	batters, err := db.TopBatters(models.FormatT20, 2)
	if err != nil {
		t.Fatalf("TopBatters() failed: %v", err)
	}
	if len(batters) != 2 {
		t.Fatalf("got %d batters, want 2", len(batters))
	}
	if batters[0].Label != "Warner" || batters[0].Count != 70 {
		t.Errorf("top batter = %s:%d, want Warner:70", batters[0].Label, batters[0].Count)
	}
	if batters[1].Label != "Kohli" || batters[1].Count != 55 {
		t.Errorf("second batter = %s:%d, want Kohli:55", batters[1].Label, batters[1].Count)
	}
}

func TestTopBowlers(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedStatsRows(t, db)

	bowlers, err := db.TopBowlers(models.FormatT20, 5)
	if err != nil {
		t.Fatalf("TopBowlers() failed: %v", err)
	}
	if len(bowlers) != 2 {
		t.Fatalf("got %d bowlers, want 2", len(bowlers))
	}
	if bowlers[0].Label != "Starc" || bowlers[0].Count != 2 {
		t.Errorf("top bowler = %s:%d, want Starc:2", bowlers[0].Label, bowlers[0].Count)
	}
}

func TestTopVenues(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedStatsRows(t, db)

	venues, err := db.TopVenues(models.FormatT20, 5)
	if err != nil {
		t.Fatalf("TopVenues() failed: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("got %d venues, want 2", len(venues))
	}
	// MCG hosted m1 and m3: two distinct matches despite three rows.
	if venues[0].Label != "MCG" || venues[0].Count != 2 {
		t.Errorf("top venue = %s:%d, want MCG:2", venues[0].Label, venues[0].Count)
	}
}
