package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the terminal.
type Config struct {
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// StorageBackend selects where the catalog and order blobs live:
	// "file" (default) or "redis".
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file"`
	DataDir        string `envconfig:"DATA_DIR" default:"./data"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	// StrictStock makes checkout fail instead of letting stock go
	// negative.
	StrictStock bool `envconfig:"POS_STRICT_STOCK" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.StorageBackend != "file" && cfg.StorageBackend != "redis" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
