// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Analysis
	Field      string `json:"field,omitempty"`      // Target job/interview field
	Transcript string `json:"transcript,omitempty"` // Path to a transcript JSON file

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for question generation
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	WhisperURL  string `json:"whisper_url,omitempty"`  // Base URL of the transcription server

	// Behavior
	QuestionCount int  `json:"question_count,omitempty"` // Number of questions to generate
	Verbose       bool `json:"verbose,omitempty"`        // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}

	if c.Transcript != "" {
		if _, err := os.Stat(c.Transcript); os.IsNotExist(err) {
			return fmt.Errorf("config error: transcript file not found: %s", c.Transcript)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Field == "" {
		result.Field = defaults.Field
	}
	if result.Transcript == "" {
		result.Transcript = defaults.Transcript
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.WhisperURL == "" {
		result.WhisperURL = defaults.WhisperURL
	}

	// Int fields: use default if zero
	if result.QuestionCount == 0 {
		result.QuestionCount = defaults.QuestionCount
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
