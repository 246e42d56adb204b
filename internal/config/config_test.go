package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "https://rickandmortyapi.com/api/character", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5.0, cfg.API.RequestsPerSecond)
	assert.Equal(t, 2, cfg.API.Burst)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "rm_favorites", cfg.Storage.FavoritesKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RM_API_BASE_URL", "http://localhost:9999/api/character")
	t.Setenv("RM_API_TIMEOUT", "2s")
	t.Setenv("RM_STORAGE_DRIVER", "preferences")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api/character", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageDriverPreferences, cfg.Storage.Driver)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: DEBUG
api:
  base_url: http://example.test/api/character
  timeout: 3s
  requests_per_second: 1
storage:
  driver: sqlite
  path: /tmp/favorites.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "http://example.test/api/character", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1.0, cfg.API.RequestsPerSecond)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/favorites.db", cfg.Storage.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		API:     APIConfig{BaseURL: "http://x", Timeout: time.Second, RequestsPerSecond: 1, Burst: 1},
		Storage: StorageConfig{Driver: StorageDriverPreferences, FavoritesKey: "k"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"zero rps", func(c *Config) { c.API.RequestsPerSecond = 0 }},
		{"zero burst", func(c *Config) { c.API.Burst = 0 }},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }},
		{"empty key", func(c *Config) { c.Storage.FavoritesKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
