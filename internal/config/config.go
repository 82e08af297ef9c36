// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Default resolution policy values. These are starting points for calibration,
// not committed cutoffs; deployments tune them in the config file.
const (
	DefaultNameWeight      = 0.7
	DefaultCollegeWeight   = 0.3
	DefaultAcceptThreshold = 90.0
	DefaultNewThreshold    = 60.0
	DefaultMargin          = 10.0
)

// DefaultRateLimitSeconds is the minimum delay between requests to one source host.
const DefaultRateLimitSeconds = 3.0

// DefaultMaxAttempts is the per-request attempt limit before a source reports failure.
const DefaultMaxAttempts = 3

// Canonical grade scale bounds every source mapping lands on.
const (
	ScaleMin = 5.0
	ScaleMax = 10.0
)

var validate = validator.New()

// ScaleBreakpoint maps one native grade value onto the canonical 5.0-10.0 scale.
// Two breakpoints give a linear mapping; more give a piecewise-linear one.
type ScaleBreakpoint struct {
	Native     float64 `json:"native"`
	Normalized float64 `json:"normalized" validate:"gte=5,lte=10"`
}

// SourceConfig holds everything source-specific: where to scrape, how fast,
// the native grade range, the scale mapping, and the position-label table.
// New sources are added by configuration only.
type SourceConfig struct {
	Name             string            `json:"name" validate:"required"`
	BaseURL          string            `json:"base_url" validate:"required,url"`
	Pages            int               `json:"pages,omitempty" validate:"gte=0"`
	RateLimitSeconds float64           `json:"rate_limit_seconds,omitempty" validate:"gte=0"`
	MaxAttempts      int               `json:"max_attempts,omitempty" validate:"gte=0,lte=10"`
	TimeoutSeconds   int               `json:"timeout_seconds,omitempty" validate:"gte=0"`
	Priority         int               `json:"priority,omitempty"`
	NativeMin        float64           `json:"native_min"`
	NativeMax        float64           `json:"native_max"`
	Scale            []ScaleBreakpoint `json:"scale,omitempty" validate:"omitempty,min=2,dive"`
	PositionLabels   map[string]string `json:"position_labels" validate:"required,min=1"`
	UseBrowser       bool              `json:"use_browser,omitempty"` // Force headless rendering instead of falling back
}

// MatchConfig holds the resolver's tunable scoring policy.
type MatchConfig struct {
	NameWeight      float64 `json:"name_weight,omitempty" validate:"gte=0,lte=1"`
	CollegeWeight   float64 `json:"college_weight,omitempty" validate:"gte=0,lte=1"`
	AcceptThreshold float64 `json:"accept_threshold,omitempty" validate:"gte=0,lte=100"`
	NewThreshold    float64 `json:"new_threshold,omitempty" validate:"gte=0,lte=100"`
	Margin          float64 `json:"margin,omitempty" validate:"gte=0,lte=100"`
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DatabaseURL string         `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool           `json:"verbose,omitempty"`      // Print detailed debug information
	Match       MatchConfig    `json:"match,omitempty"`
	Sources     []SourceConfig `json:"sources,omitempty" validate:"dive"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	seen := make(map[string]bool)
	for i := range c.Sources {
		src := &c.Sources[i]
		if seen[src.Name] {
			return fmt.Errorf("config error: duplicate source %q", src.Name)
		}
		seen[src.Name] = true
		if err := src.ValidateScale(); err != nil {
			return err
		}
	}

	if c.Match.NewThreshold > c.Match.AcceptThreshold && c.Match.AcceptThreshold != 0 {
		return fmt.Errorf("config error: 'new_threshold' must not exceed 'accept_threshold'")
	}

	return nil
}

// ValidateScale checks the native grade range and scale breakpoints.
func (s *SourceConfig) ValidateScale() error {
	if s.NativeMax <= s.NativeMin {
		return fmt.Errorf("config error: source %q native range [%g, %g] is empty", s.Name, s.NativeMin, s.NativeMax)
	}
	for i := 1; i < len(s.Scale); i++ {
		if s.Scale[i].Native <= s.Scale[i-1].Native {
			return fmt.Errorf("config error: source %q scale breakpoints must be strictly increasing", s.Name)
		}
	}
	if n := len(s.Scale); n >= 2 {
		if s.Scale[0].Native != s.NativeMin || s.Scale[n-1].Native != s.NativeMax {
			return fmt.Errorf("config error: source %q scale breakpoints must span the native range", s.Name)
		}
		// Range boundaries must map to exactly the canonical bounds
		if s.Scale[0].Normalized != ScaleMin || s.Scale[n-1].Normalized != ScaleMax {
			return fmt.Errorf("config error: source %q scale endpoints must map to [%g, %g]", s.Name, ScaleMin, ScaleMax)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Match.NameWeight == 0 {
		result.Match.NameWeight = nonZeroOr(defaults.Match.NameWeight, DefaultNameWeight)
	}
	if result.Match.CollegeWeight == 0 {
		result.Match.CollegeWeight = nonZeroOr(defaults.Match.CollegeWeight, DefaultCollegeWeight)
	}
	if result.Match.AcceptThreshold == 0 {
		result.Match.AcceptThreshold = nonZeroOr(defaults.Match.AcceptThreshold, DefaultAcceptThreshold)
	}
	if result.Match.NewThreshold == 0 {
		result.Match.NewThreshold = nonZeroOr(defaults.Match.NewThreshold, DefaultNewThreshold)
	}
	if result.Match.Margin == 0 {
		result.Match.Margin = nonZeroOr(defaults.Match.Margin, DefaultMargin)
	}

	// Per-source fields: fill scrape defaults
	merged := make([]SourceConfig, len(result.Sources))
	for i, src := range result.Sources {
		if src.RateLimitSeconds == 0 {
			src.RateLimitSeconds = DefaultRateLimitSeconds
		}
		if src.MaxAttempts == 0 {
			src.MaxAttempts = DefaultMaxAttempts
		}
		if src.Pages == 0 {
			src.Pages = 1
		}
		if src.TimeoutSeconds == 0 {
			src.TimeoutSeconds = 30
		}
		merged[i] = src
	}
	result.Sources = merged

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func nonZeroOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
