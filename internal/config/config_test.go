package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/draft_board",
		"sources": [{
			"name": "pff",
			"base_url": "https://example.com/board",
			"native_min": 60,
			"native_max": 100,
			"position_labels": {"QB": "QB"}
		}]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/draft_board", cfg.DatabaseURL)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "pff", cfg.Sources[0].Name)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfigFile(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func validSource() SourceConfig {
	return SourceConfig{
		Name:           "pff",
		BaseURL:        "https://example.com/board",
		NativeMin:      60,
		NativeMax:      100,
		PositionLabels: map[string]string{"QB": "QB"},
	}
}

func TestValidate_DuplicateSources(t *testing.T) {
	cfg := Config{Sources: []SourceConfig{validSource(), validSource()}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source")
}

func TestValidate_EmptyNativeRange(t *testing.T) {
	src := validSource()
	src.NativeMax = src.NativeMin
	cfg := Config{Sources: []SourceConfig{src}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ScaleBreakpoints(t *testing.T) {
	src := validSource()
	src.Scale = []ScaleBreakpoint{
		{Native: 60, Normalized: 5.0},
		{Native: 80, Normalized: 7.5},
		{Native: 100, Normalized: 10.0},
	}
	cfg := Config{Sources: []SourceConfig{src}}
	require.NoError(t, cfg.Validate())

	// Not spanning the native range
	src.Scale[2].Native = 95
	cfg = Config{Sources: []SourceConfig{src}}
	assert.Error(t, cfg.Validate())

	// Not strictly increasing
	src.Scale[2].Native = 80
	cfg = Config{Sources: []SourceConfig{src}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ScaleEndpointsMustHitCanonicalBounds(t *testing.T) {
	src := validSource()
	src.Scale = []ScaleBreakpoint{
		{Native: 60, Normalized: 5.0},
		{Native: 100, Normalized: 9.5},
	}
	cfg := Config{Sources: []SourceConfig{src}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoints")

	src.Scale = []ScaleBreakpoint{
		{Native: 60, Normalized: 5.5},
		{Native: 100, Normalized: 10.0},
	}
	cfg = Config{Sources: []SourceConfig{src}}
	assert.Error(t, cfg.Validate())

	src.Scale = []ScaleBreakpoint{
		{Native: 60, Normalized: ScaleMin},
		{Native: 100, Normalized: ScaleMax},
	}
	cfg = Config{Sources: []SourceConfig{src}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := Config{Match: MatchConfig{AcceptThreshold: 50, NewThreshold: 80}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new_threshold")
}

func TestMergeWithDefaults_MatchPolicy(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, DefaultNameWeight, merged.Match.NameWeight)
	assert.Equal(t, DefaultCollegeWeight, merged.Match.CollegeWeight)
	assert.Equal(t, DefaultAcceptThreshold, merged.Match.AcceptThreshold)
	assert.Equal(t, DefaultNewThreshold, merged.Match.NewThreshold)
	assert.Equal(t, DefaultMargin, merged.Match.Margin)
}

func TestMergeWithDefaults_SourceFields(t *testing.T) {
	cfg := Config{Sources: []SourceConfig{validSource()}}
	merged := cfg.MergeWithDefaults(Config{DatabaseURL: "postgres://fallback"})

	assert.Equal(t, "postgres://fallback", merged.DatabaseURL)
	src := merged.Sources[0]
	assert.Equal(t, DefaultRateLimitSeconds, src.RateLimitSeconds)
	assert.Equal(t, DefaultMaxAttempts, src.MaxAttempts)
	assert.Equal(t, 1, src.Pages)
	assert.Equal(t, 30, src.TimeoutSeconds)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	src := validSource()
	src.RateLimitSeconds = 10
	cfg := Config{
		DatabaseURL: "postgres://primary",
		Match:       MatchConfig{AcceptThreshold: 95},
		Sources:     []SourceConfig{src},
	}
	merged := cfg.MergeWithDefaults(Config{DatabaseURL: "postgres://fallback"})

	assert.Equal(t, "postgres://primary", merged.DatabaseURL)
	assert.Equal(t, 95.0, merged.Match.AcceptThreshold)
	assert.Equal(t, 10.0, merged.Sources[0].RateLimitSeconds)
}
