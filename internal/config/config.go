// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for the puzzle HTTP server. All fields are
// read from the environment with the GRIDWRIGHT_ prefix.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// MongoURI enables the MongoDB puzzle store when set. Empty selects
	// the in-memory store.
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"gridwright"`

	// RedisAddr enables the Redis generation cache when set. Empty
	// selects the file cache under CacheDir.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CacheDir string        `env:"CACHE_DIR"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"168h"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "GRIDWRIGHT_"})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
