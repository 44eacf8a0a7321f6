package cricsheet

import (
	"strings"

	"github.com/spraval/cricsheet-etl/models"
)

// Flatten emits one row per delivery for a parsed match. Match-level
// fields (date, season, venue, outcome, ...) repeat on every row so each
// CSV stands alone without joins.
func Flatten(match *models.Match, format models.MatchFormat, matchID string) []models.Delivery {
	info := match.Info

	base := models.Delivery{
		MatchID:       matchID,
		MatchDate:     MatchDate(info),
		MatchFormat:   string(format),
		MatchType:     info.MatchType,
		Season:        string(info.Season),
		City:          info.City,
		Venue:         info.Venue,
		Teams:         strings.Join(info.Teams, " vs "),
		TossWinner:    info.Toss.Winner,
		TossDecision:  info.Toss.Decision,
		Winner:        info.Outcome.Winner,
		PlayerOfMatch: firstOrEmpty(info.PlayerOfMatch),
	}

	var rows []models.Delivery
	for _, innings := range match.Innings {
		for _, over := range innings.Overs {
			for _, ball := range over.Deliveries {
				row := base
				row.Team = innings.Team
				row.Over = over.Over
				row.Batter = ball.Batter
				row.Bowler = ball.Bowler
				row.NonStriker = ball.NonStriker
				row.RunsBatter = ball.Runs.Batter
				row.RunsExtra = ball.Runs.Extras
				row.RunsTotal = ball.Runs.Total
				if len(ball.Wickets) > 0 {
					row.Wicket = ball.Wickets[0].Kind
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
