package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Match is a Cricsheet JSON match document. Only the fields the flattener
// consumes are mapped; everything else in the feed is ignored.
type Match struct {
	Meta    Meta      `json:"meta"`
	Info    MatchInfo `json:"info"`
	Innings []Innings `json:"innings"`
}

type Meta struct {
	DataVersion string `json:"data_version"`
	Created     string `json:"created"`
	Revision    int    `json:"revision"`
}

type MatchInfo struct {
	City          string   `json:"city"`
	Dates         []string `json:"dates"`
	MatchType     string   `json:"match_type"`
	Outcome       Outcome  `json:"outcome"`
	PlayerOfMatch []string `json:"player_of_match"`
	Season        Season   `json:"season"`
	Teams         []string `json:"teams"`
	Toss          Toss     `json:"toss"`
	Venue         string   `json:"venue"`
}

type Outcome struct {
	Winner string `json:"winner"`
	Result string `json:"result"`
}

type Toss struct {
	Decision string `json:"decision"`
	Winner   string `json:"winner"`
}

type Innings struct {
	Team  string `json:"team"`
	Overs []Over `json:"overs"`
}

type Over struct {
	Over       int           `json:"over"`
	Deliveries []RawDelivery `json:"deliveries"`
}

// RawDelivery is one ball as Cricsheet encodes it.
type RawDelivery struct {
	Batter     string   `json:"batter"`
	Bowler     string   `json:"bowler"`
	NonStriker string   `json:"non_striker"`
	Runs       Runs     `json:"runs"`
	Wickets    []Wicket `json:"wickets"`
}

type Runs struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

type Wicket struct {
	Kind      string `json:"kind"`
	PlayerOut string `json:"player_out"`
}

// Season is kept as free text: the feed mixes bare years (2012), numeric
// JSON values and year ranges ("2012/13"), so no normalization is applied.
type Season string

func (s *Season) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Season(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("season is neither string nor number: %w", err)
	}
	*s = Season(num.String())
	return nil
}
