// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Environment variable names read by FromEnv.
const (
	EnvAPIBaseURL     = "CV_API_BASE_URL"
	EnvGoogleClientID = "GOOGLE_CLIENT_ID"
	EnvAppBaseURL     = "CV_APP_BASE_URL"
	EnvDataDir        = "CV_DATA_DIR"
)

// DefaultAPIBaseURL points at a local development backend.
const DefaultAPIBaseURL = "http://localhost:8000/api/v1"

// DefaultAppBaseURL is the application's own public base URL, used to
// build OAuth redirect targets.
const DefaultAppBaseURL = "http://localhost:8080"

// Config represents the CLI configuration that can be loaded from a JSON
// file, environment variables, or both. CLI flags override either source.
type Config struct {
	// APIBaseURL is the base path of the remote REST API.
	APIBaseURL string `json:"api_base_url,omitempty"`
	// GoogleClientID is the OAuth client identifier for Google sign-in.
	GoogleClientID string `json:"google_client_id,omitempty"`
	// AppBaseURL is this application's public base URL.
	AppBaseURL string `json:"app_base_url,omitempty"`
	// DataDir holds the local token and state database.
	DataDir string `json:"data_dir,omitempty"`
	// Verbose enables detailed progress output.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config populated from environment variables.
// Unset variables leave the corresponding field empty.
func FromEnv() Config {
	return Config{
		APIBaseURL:     os.Getenv(EnvAPIBaseURL),
		GoogleClientID: os.Getenv(EnvGoogleClientID),
		AppBaseURL:     os.Getenv(EnvAppBaseURL),
		DataDir:        os.Getenv(EnvDataDir),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file < env < flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.GoogleClientID == "" {
		result.GoogleClientID = defaults.GoogleClientID
	}
	if result.AppBaseURL == "" {
		result.AppBaseURL = defaults.AppBaseURL
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config error: api_base_url is required")
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: api_base_url %q is not a valid URL", c.APIBaseURL)
	}
	if c.AppBaseURL != "" {
		parsed, err := url.Parse(c.AppBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: app_base_url %q is not a valid URL", c.AppBaseURL)
		}
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: data_dir is required")
	}
	return nil
}

// DefaultDataDir resolves the per-user data directory for the local
// token and state database.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cv-builder"), nil
}
