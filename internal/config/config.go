package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers for the favorites slot
const (
	StorageDriverPreferences = "preferences"
	StorageDriverSQLite      = "sqlite"
)

// Config holds process configuration read from a YAML file and the environment
type Config struct {
	LogLevel string        `yaml:"log_level" env:"RM_LOG_LEVEL" env-default:"INFO"`
	API      APIConfig     `yaml:"api"`
	Storage  StorageConfig `yaml:"storage"`
}

// APIConfig configures the remote character directory
type APIConfig struct {
	BaseURL           string        `yaml:"base_url" env:"RM_API_BASE_URL" env-default:"https://rickandmortyapi.com/api/character"`
	Timeout           time.Duration `yaml:"timeout" env:"RM_API_TIMEOUT" env-default:"10s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RM_API_RPS" env-default:"5"`
	Burst             int           `yaml:"burst" env:"RM_API_BURST" env-default:"2"`
}

// StorageConfig selects where favorites are persisted
type StorageConfig struct {
	Driver       string `yaml:"driver" env:"RM_STORAGE_DRIVER" env-default:"sqlite"`
	Path         string `yaml:"path" env:"RM_STORAGE_PATH"`
	FavoritesKey string `yaml:"favorites_key" env:"RM_FAVORITES_KEY" env-default:"rm_favorites"`
}

// Load reads configuration from configPath (if not empty) and the environment
func Load(configPath string) (Config, error) {
	var cfg Config
	var err error
	if configPath != "" {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the app cannot run with
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("empty api base url specified")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("api requests per second must be positive, got %v", c.API.RequestsPerSecond)
	}
	if c.API.Burst < 1 {
		return fmt.Errorf("api burst must be at least 1, got %d", c.API.Burst)
	}
	switch c.Storage.Driver {
	case StorageDriverPreferences, StorageDriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}
	if c.Storage.FavoritesKey == "" {
		return errors.New("empty favorites key specified")
	}
	return nil
}
