package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://cricsheet.org/downloads", config.BaseURL)
	assert.Equal(t, "cricsheet_data", config.DataDir)
	assert.Equal(t, []string{"test", "odi", "t20", "ipl"}, config.Formats)
	assert.Equal(t, 5000, config.ChunkSize)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: http://localhost:8080/archives
formats: [t20, ipl]
chunk_size: 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/archives", config.BaseURL)
	assert.Equal(t, []string{"t20", "ipl"}, config.Formats)
	assert.Equal(t, 100, config.ChunkSize)
	// Unset keys keep their defaults.
	assert.Equal(t, "cricsheet_match_data.db", config.DBPath)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigPaths(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, filepath.Join("cricsheet_data", "archives"), config.ArchiveDir())
	assert.Equal(t, filepath.Join("cricsheet_data", "raw", "ipl"), config.RawDir(FormatIPL))
	assert.Equal(t, filepath.Join("cricsheet_data", "processed", "ODI.csv"), config.CSVPath(FormatODI))
	assert.Equal(t, "https://cricsheet.org/downloads/t20s_json.zip", config.ArchiveURL(FormatT20))
}

func TestParseFormat(t *testing.T) {
	for _, label := range []string{"test", "odi", "t20", "ipl"} {
		format, err := ParseFormat(label)
		require.NoError(t, err)
		assert.Equal(t, MatchFormat(label), format)
		assert.NotEmpty(t, format.ArchiveName())
		assert.NotEmpty(t, format.CSVName())
		assert.NotEmpty(t, format.TableName())
	}

	_, err := ParseFormat("the hundred")
	assert.Error(t, err)
}
