package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{"api_base_url": "https://api.example.com/api/v1", "google_client_id": "abc.apps.googleusercontent.com"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "abc.apps.googleusercontent.com", cfg.GoogleClientID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIBaseURL: "https://api.example.com/api/v1"}
	merged := cfg.MergeWithDefaults(Config{
		APIBaseURL: DefaultAPIBaseURL,
		AppBaseURL: DefaultAppBaseURL,
		DataDir:    "/tmp/data",
	})

	assert.Equal(t, "https://api.example.com/api/v1", merged.APIBaseURL)
	assert.Equal(t, DefaultAppBaseURL, merged.AppBaseURL)
	assert.Equal(t, "/tmp/data", merged.DataDir)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://env.example.com/api/v1")
	t.Setenv(EnvDataDir, "/tmp/env-data")

	cfg := FromEnv()
	assert.Equal(t, "https://env.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/env-data", cfg.DataDir)
	assert.Empty(t, cfg.GoogleClientID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{APIBaseURL: DefaultAPIBaseURL, DataDir: "/tmp/d"}, false},
		{"missing api url", Config{DataDir: "/tmp/d"}, true},
		{"bad api url", Config{APIBaseURL: "::nope", DataDir: "/tmp/d"}, true},
		{"bad app url", Config{APIBaseURL: DefaultAPIBaseURL, AppBaseURL: "nope", DataDir: "/tmp/d"}, true},
		{"missing data dir", Config{APIBaseURL: DefaultAPIBaseURL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
