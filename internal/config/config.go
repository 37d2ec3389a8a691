// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Search
	Role     string `json:"role,omitempty"`     // Job role to search candidates for
	Location string `json:"location,omitempty"` // Geographic location filter
	Count    int    `json:"count,omitempty"`    // Number of profiles to collect

	// Analysis
	Description string `json:"description,omitempty"` // Job description for retrieval and analysis
	K           int    `json:"k,omitempty"`           // Number of profiles to retrieve per query

	// Storage
	Collection  string `json:"collection,omitempty"`   // Vector store collection name
	DataDir     string `json:"data_dir,omitempty"`     // Directory for file-backed persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Providers
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key
	RapidAPIKey  string `json:"rapidapi_key,omitempty"`  // RapidAPI key for the profile API
	RapidAPIHost string `json:"rapidapi_host,omitempty"` // RapidAPI host header override
	DelaySeconds int    `json:"delay_seconds,omitempty"` // Pause between provider calls during screening

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for JS-heavy result pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
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
	if c.Count < 0 {
		return fmt.Errorf("config error: 'count' must be non-negative")
	}
	if c.K < 0 {
		return fmt.Errorf("config error: 'k' must be non-negative")
	}
	if c.DelaySeconds < 0 {
		return fmt.Errorf("config error: 'delay_seconds' must be non-negative")
	}
	if c.DataDir != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'data_dir' and 'database_url' are mutually exclusive")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Description == "" {
		result.Description = defaults.Description
	}
	if result.Collection == "" {
		result.Collection = defaults.Collection
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.RapidAPIKey == "" {
		result.RapidAPIKey = defaults.RapidAPIKey
	}
	if result.RapidAPIHost == "" {
		result.RapidAPIHost = defaults.RapidAPIHost
	}

	// Int fields: use default if zero
	if result.Count == 0 {
		result.Count = defaults.Count
	}
	if result.K == 0 {
		result.K = defaults.K
	}
	if result.DelaySeconds == 0 {
		result.DelaySeconds = defaults.DelaySeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills provider credentials and storage settings from the
// environment when they are not already set. Explicit values always win.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.RapidAPIKey == "" {
		c.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	}
	if c.RapidAPIHost == "" {
		c.RapidAPIHost = os.Getenv("RAPIDAPI_HOST")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.DataDir == "" && c.DatabaseURL == "" {
		c.DataDir = os.Getenv("DATA_DIR")
	}
}
