// Package config holds the SDK configuration surface, loaded from the
// environment with sensible UAE defaults.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the SDK configuration. The WPS endpoint is opaque to the SDK
// and passed through to the authority implementation.
type Config struct {
	Debug        bool          `envconfig:"DEBUG" default:"false"`
	WPSEndpoint  string        `envconfig:"WPS_ENDPOINT" default:"https://wps.peydey.ae"`
	Currency     string        `envconfig:"CURRENCY" default:"AED"`
	Country      string        `envconfig:"COUNTRY" default:"UAE"`
	WPSTimeout   time.Duration `envconfig:"WPS_TIMEOUT" default:"5s"`
	WPSLatency   time.Duration `envconfig:"WPS_LATENCY" default:"100ms"`
	HistoryLimit int           `envconfig:"HISTORY_LIMIT" default:"10"`
}

// Default returns the configuration used when nothing is set in the
// environment.
func Default() *Config {
	return &Config{
		WPSEndpoint:  "https://wps.peydey.ae",
		Currency:     "AED",
		Country:      "UAE",
		WPSTimeout:   5 * time.Second,
		WPSLatency:   100 * time.Millisecond,
		HistoryLimit: 10,
	}
}

// Load reads the configuration from the environment with the PEYDEY prefix.
// A .env file is honored when present.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg Config
	if err := envconfig.Process("PEYDEY", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
