package models

import "strconv"

// Columns is the unified flat schema, one row per delivery. The order is
// fixed: CSV headers, table DDL and INSERT statements all follow it.
var Columns = []string{
	"match_id",
	"match_date",
	"match_format",
	"match_type",
	"season",
	"city",
	"venue",
	"teams",
	"toss_winner",
	"toss_decision",
	"winner",
	"player_of_match",
	"team",
	"over",
	"batter",
	"bowler",
	"non_striker",
	"runs_batter",
	"runs_extra",
	"runs_total",
	"wicket",
}

// Delivery is one flattened ball. match_id is derived from the source
// filename and is stable across runs; match-level fields repeat on every
// row of the same match.
type Delivery struct {
	MatchID       string
	MatchDate     string
	MatchFormat   string
	MatchType     string
	Season        string
	City          string
	Venue         string
	Teams         string
	TossWinner    string
	TossDecision  string
	Winner        string
	PlayerOfMatch string
	Team          string
	Over          int
	Batter        string
	Bowler        string
	NonStriker    string
	RunsBatter    int
	RunsExtra     int
	RunsTotal     int
	Wicket        string
}

// Record renders the delivery as a CSV record in Columns order.
func (d *Delivery) Record() []string {
	return []string{
		d.MatchID,
		d.MatchDate,
		d.MatchFormat,
		d.MatchType,
		d.Season,
		d.City,
		d.Venue,
		d.Teams,
		d.TossWinner,
		d.TossDecision,
		d.Winner,
		d.PlayerOfMatch,
		d.Team,
		strconv.Itoa(d.Over),
		d.Batter,
		d.Bowler,
		d.NonStriker,
		strconv.Itoa(d.RunsBatter),
		strconv.Itoa(d.RunsExtra),
		strconv.Itoa(d.RunsTotal),
		d.Wicket,
	}
}
