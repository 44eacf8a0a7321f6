// Package models defines shared data structures: configuration, the raw
// Cricsheet match document and the flattened delivery row.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds pipeline settings. Values come from an optional YAML file;
// CLI flags override individual fields.
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	DataDir     string        `yaml:"data_dir"`
	DBPath      string        `yaml:"db_path"`
	Formats     []string      `yaml:"formats"`
	ChunkSize   int           `yaml:"chunk_size"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent"`
}

// DefaultConfig returns the built-in settings used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://cricsheet.org/downloads",
		DataDir:     "cricsheet_data",
		DBPath:      "cricsheet_match_data.db",
		Formats:     []string{"test", "odi", "t20", "ipl"},
		ChunkSize:   5000,
		HTTPTimeout: 2 * time.Minute,
		UserAgent:   "cricetl/1.0",
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are used as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultConfig().ChunkSize
	}
	return config, nil
}

// ArchiveDir is where downloaded zips are kept.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.DataDir, "archives")
}

// RawDir holds the extracted JSON match files for one format.
func (c *Config) RawDir(f MatchFormat) string {
	return filepath.Join(c.DataDir, "raw", string(f))
}

// ProcessedDir holds the flattened CSV output.
func (c *Config) ProcessedDir() string {
	return filepath.Join(c.DataDir, "processed")
}

// CSVPath returns the processed CSV path for one format.
func (c *Config) CSVPath(f MatchFormat) string {
	return filepath.Join(c.ProcessedDir(), f.CSVName())
}

// CombinedCSVPath is the optional all-formats CSV.
func (c *Config) CombinedCSVPath() string {
	return filepath.Join(c.ProcessedDir(), "all_matches.csv")
}

// ArchiveURL returns the download URL for one format's zip.
func (c *Config) ArchiveURL(f MatchFormat) string {
	return c.BaseURL + "/" + f.ArchiveName()
}
