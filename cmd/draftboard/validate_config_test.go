package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-board/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateConfigFile_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"sources": [
			{
				"name": "pff",
				"base_url": "https://example.com/board",
				"native_min": 60,
				"native_max": 100,
				"position_labels": {"QB": "QB"}
			}
		]
	}`)

	assert.NoError(t, validateConfigFile(path))
}

func TestValidateConfigFile_NotFound(t *testing.T) {
	err := validateConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestValidateConfigFile_SchemaViolation(t *testing.T) {
	// "base_url" misspelled; the schema rejects unknown keys
	path := writeConfig(t, `{
		"sources": [
			{
				"name": "pff",
				"bass_url": "https://example.com/board",
				"native_min": 60,
				"native_max": 100,
				"position_labels": {"QB": "QB"}
			}
		]
	}`)

	err := validateConfigFile(path)
	assert.Error(t, err)
}

func TestValidateConfigFile_DuplicateSources(t *testing.T) {
	// Schema-valid but semantically wrong
	path := writeConfig(t, `{
		"sources": [
			{
				"name": "pff",
				"base_url": "https://example.com/board",
				"native_min": 60,
				"native_max": 100,
				"position_labels": {"QB": "QB"}
			},
			{
				"name": "pff",
				"base_url": "https://example.com/other",
				"native_min": 0,
				"native_max": 10,
				"position_labels": {"QB": "QB"}
			}
		]
	}`)

	err := validateConfigFile(path)
	assert.ErrorContains(t, err, "duplicate source")
}

func TestFilterSources_KeepsNamedOnly(t *testing.T) {
	sources := []config.SourceConfig{
		{Name: "pff"},
		{Name: "espn"},
		{Name: "nfl"},
	}

	out := filterSources(sources, []string{"nfl", "pff"})
	require.Len(t, out, 2)
	assert.Equal(t, "pff", out[0].Name)
	assert.Equal(t, "nfl", out[1].Name)

	assert.Empty(t, filterSources(sources, []string{"cbs"}))
}
