// Package cricsheet turns Cricsheet match JSON documents into flat
// per-delivery rows under the unified schema.
package cricsheet

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spraval/cricsheet-etl/models"
)

// ParseMatch decodes one Cricsheet JSON document.
func ParseMatch(data []byte) (*models.Match, error) {
	var match models.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match JSON: %w", err)
	}
	if len(match.Info.Teams) == 0 && len(match.Innings) == 0 {
		return nil, fmt.Errorf("match JSON has no info.teams and no innings")
	}
	return &match, nil
}

// MatchIDFromPath derives the stable match identifier from the source
// filename: the base name minus its .json extension (e.g. "1254086").
func MatchIDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

// MatchDate returns the first listed date, normalized to YYYY-MM-DD.
// Unparseable values are kept verbatim rather than dropped, so the column
// is never silently empty for a dated match.
func MatchDate(info models.MatchInfo) string {
	if len(info.Dates) == 0 {
		return ""
	}
	first := info.Dates[0]
	parsed, err := dateparse.ParseStrict(first)
	if err != nil {
		return first
	}
	return parsed.Format("2006-01-02")
}
