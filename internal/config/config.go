// Package config reads runtime settings from the environment. A .env file, if
// present, is loaded into the environment by the caller before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const defaultPort = 5000

// Config holds everything the server needs to start.
//
// Fields:
//   - SecretKey: secret used to sign session cookies. Required.
//   - DatabaseURL: Postgres connection string. Required.
//   - Port: HTTP listen port, default 5000.
type Config struct {
	SecretKey   string
	DatabaseURL string
	Port        int
}

// Load builds a Config from the environment. Missing SECRET_KEY or
// DATABASE_URL is an error; the server must not start without them.
func Load() (*Config, error) {
	cfg := &Config{
		SecretKey:   os.Getenv("SECRET_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        defaultPort,
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}
