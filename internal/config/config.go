// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// APIURL is the URL the API is reachable at, used to generate links
	// in responses.
	APIURL url.URL `envconfig:"API_URL" default:"http://localhost:8080"`

	// DBPath is the path of the sqlite database file. The directory it
	// is in has to exist.
	DBPath string `envconfig:"DB_PATH" default:"data/pocketledger.db"`

	// Port the HTTP server listens on.
	Port uint16 `envconfig:"PORT" default:"8080"`

	// SyncInterval is how often the monthly funding sync is retried
	// while the process runs. Funding itself only happens when a month
	// boundary has actually been crossed.
	SyncInterval time.Duration `envconfig:"SYNC_INTERVAL" default:"1h"`
}

// Load parses the configuration from a .env file (if one exists) and
// the process environment. Environment variables take precedence over
// the .env file.
func Load() (Config, error) {
	// A missing .env file is fine, the environment might be set directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration from environment: %w", err)
	}

	return cfg, nil
}
