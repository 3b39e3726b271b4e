// Package conf loads host configuration from the environment.
package conf

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings of the reference host.
type Config struct {
	ListenAddr string `envconfig:"ACTIONCODES_LISTEN_ADDR" default:":9000"`
	RedisURL   string `envconfig:"ACTIONCODES_REDIS_URL" default:"redis://localhost:6379/0"`
	CodeSecret string `envconfig:"ACTIONCODES_CODE_SECRET"`
	LogLevel   string `envconfig:"ACTIONCODES_LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
