package models

import "fmt"

// MatchFormat identifies one of the four Cricsheet archives the pipeline
// processes. Each format maps to a fixed archive name, CSV file and table.
type MatchFormat string

const (
	FormatTest MatchFormat = "test"
	FormatODI  MatchFormat = "odi"
	FormatT20  MatchFormat = "t20"
	FormatIPL  MatchFormat = "ipl"
)

// AllFormats returns the formats in their conventional processing order.
func AllFormats() []MatchFormat {
	return []MatchFormat{FormatTest, FormatODI, FormatT20, FormatIPL}
}

// ParseFormat validates a user-supplied format label.
func ParseFormat(s string) (MatchFormat, error) {
	switch MatchFormat(s) {
	case FormatTest, FormatODI, FormatT20, FormatIPL:
		return MatchFormat(s), nil
	}
	return "", fmt.Errorf("unknown match format %q (expected test, odi, t20 or ipl)", s)
}

// ArchiveName returns the Cricsheet zip file name for the format.
func (f MatchFormat) ArchiveName() string {
	switch f {
	case FormatTest:
		return "tests_json.zip"
	case FormatODI:
		return "odis_json.zip"
	case FormatT20:
		return "t20s_json.zip"
	case FormatIPL:
		return "ipl_json.zip"
	}
	return ""
}

// CSVName returns the processed CSV file name for the format.
// Names follow the original dataset layout (test.csv, ODI.csv, ...).
func (f MatchFormat) CSVName() string {
	switch f {
	case FormatTest:
		return "test.csv"
	case FormatODI:
		return "ODI.csv"
	case FormatT20:
		return "T20.csv"
	case FormatIPL:
		return "IPL.csv"
	}
	return ""
}

// TableName returns the SQLite table the format loads into.
func (f MatchFormat) TableName() string {
	switch f {
	case FormatTest:
		return "test_table"
	case FormatODI:
		return "odi_table"
	case FormatT20:
		return "t20_table"
	case FormatIPL:
		return "ipl_table"
	}
	return ""
}

// ExpectedMatchType returns the match_type value Cricsheet normally uses
// for the format, or "" when no single value is expected. IPL files are
// marked T20 upstream, so no expectation is enforced there.
func (f MatchFormat) ExpectedMatchType() string {
	switch f {
	case FormatTest:
		return "Test"
	case FormatODI:
		return "ODI"
	case FormatT20:
		return "T20"
	}
	return ""
}
