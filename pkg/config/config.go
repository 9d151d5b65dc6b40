package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/pattern-check/pkg/report"
)

// DefaultPattern accepts a conventional email address
const DefaultPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration for pattern-check
type Config struct {
	// Matching
	Pattern    string   `yaml:"pattern" env:"PATTERN_CHECK_PATTERN"`
	Candidates []string `yaml:"candidates" env:"PATTERN_CHECK_CANDIDATES"`

	// Output
	SuccessMarker string `yaml:"success_marker"`
	FailureMarker string `yaml:"failure_marker"`
	Color         string `yaml:"color" env:"PATTERN_CHECK_COLOR"`

	// Behavior flags
	Strict bool `yaml:"strict" env:"PATTERN_CHECK_STRICT"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Pattern: DefaultPattern,
		Candidates: []string{
			"user@example.com",
			"invalid.email@",
			"another@valid.co.uk",
		},
		SuccessMarker: report.DefaultSuccessMarker,
		FailureMarker: report.DefaultFailureMarker,
		Color:         ColorAuto,
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("PATTERN_CHECK_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pattern-check", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "pattern-check", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if pattern := os.Getenv("PATTERN_CHECK_PATTERN"); pattern != "" {
		cfg.Pattern = pattern
	}

	if candidates, ok := os.LookupEnv("PATTERN_CHECK_CANDIDATES"); ok {
		cfg.Candidates = SplitList(candidates)
	}

	if color := os.Getenv("PATTERN_CHECK_COLOR"); color != "" {
		cfg.Color = color
	}

	if strict := os.Getenv("PATTERN_CHECK_STRICT"); strict != "" {
		switch strict {
		case "true", "1", "yes":
			cfg.Strict = true
		case "false", "0", "no":
			cfg.Strict = false
		default:
			return fmt.Errorf("invalid PATTERN_CHECK_STRICT value: %q (use true/false)", strict)
		}
	}

	return nil
}

// SplitList splits a comma-separated list, trimming spaces and dropping
// empty entries
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates the configuration. Pattern syntax is checked by the
// matcher, not here. An empty pattern is valid and accepts only the empty
// string.
func Validate(cfg *Config) error {
	if utf8.RuneCountInString(cfg.SuccessMarker) != 1 {
		return fmt.Errorf("success_marker must be a single character, got %q", cfg.SuccessMarker)
	}

	if utf8.RuneCountInString(cfg.FailureMarker) != 1 {
		return fmt.Errorf("failure_marker must be a single character, got %q", cfg.FailureMarker)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", cfg.Color)
	}

	return nil
}
