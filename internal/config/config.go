// Package config provides unified configuration loading for passforge.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config contains all passforge configuration settings.
type Config struct {
	// Generate contains default options for wordlist generation. Command
	// flags override these per invocation.
	Generate GenerateConfig `json:"generate" yaml:"generate"`

	// History contains settings for the local run-history store.
	History HistoryConfig `json:"history" yaml:"history"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GenerateConfig holds the wordlist generation defaults.
type GenerateConfig struct {
	// Separators join tokens within a combination.
	Separators []string `json:"separators" yaml:"separators"`

	// MaxPerCombo bounds the arrangement length in token combination.
	MaxPerCombo int `json:"max_per_combo" yaml:"max_per_combo"`

	// MaxWords truncates the final output. Zero or negative means
	// unlimited.
	MaxWords int `json:"max_words" yaml:"max_words"`

	// Leet enables leet-speak expansion by default.
	Leet bool `json:"leet" yaml:"leet"`

	// Case enables case-variant expansion by default.
	Case bool `json:"case" yaml:"case"`

	// Suffixes enables built-in suffix appending by default.
	Suffixes bool `json:"suffixes" yaml:"suffixes"`
}

// HistoryConfig configures the SQLite run-history store.
type HistoryConfig struct {
	// Enabled turns run recording on. Disabled skips the store entirely.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the database file location. Empty means
	// ~/.passforge/history.db. Supports ${VAR} syntax for env vars.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoggingConfig configures passforge's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables pipeline stage tracing to ~/.passforge/trace.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Separators:  []string{"", ".", "-", "_"},
			MaxPerCombo: 3,
			MaxWords:    50000,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the passforge configuration directory (~/.passforge).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".passforge"), nil
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.passforge/config.yaml -> environment.
func Load() (*Config, error) {
	config := Default()

	dir, err := Dir()
	if err == nil {
		configPath := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.History.Path = expandEnvVars(config.History.Path)

	return config, nil
}

// Validate checks that the configuration is valid. Out-of-range generation
// bounds are not errors; the pipeline clamps them.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	for _, sep := range c.Generate.Separators {
		if strings.ContainsAny(sep, "\n\r") {
			return fmt.Errorf("separator %q contains a line break", sep)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("PASSFORGE_MAX_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Generate.MaxWords = n
		}
	}

	if v := os.Getenv("PASSFORGE_MAX_PER_COMBO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Generate.MaxPerCombo = n
		}
	}

	if v := os.Getenv("PASSFORGE_HISTORY_ENABLED"); v != "" {
		config.History.Enabled = v == "true" || v == "1"
	}

	if v := os.Getenv("PASSFORGE_HISTORY_PATH"); v != "" {
		config.History.Path = v
	}

	if v := os.Getenv("PASSFORGE_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment
// variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
