// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultListenAddr = ":8080"
	DefaultDBPath     = "./concierge.db"
	DefaultTimeout    = 30 * time.Second
)

// Config holds everything the server binary needs to start.
type Config struct {
	// ListenAddr is the HTTP bind address (CONCIERGE_LISTEN_ADDR).
	ListenAddr string
	// BackendURL is the base URL of the assistant backend
	// (CONCIERGE_BACKEND_URL). Empty means the assistant is not
	// configured and chat falls back to the phone-support message.
	BackendURL string
	// BackendKey is the bearer token for the backend (CONCIERGE_BACKEND_KEY).
	BackendKey string
	// DBPath is the SQLite database file (CONCIERGE_DB).
	DBPath string
	// Timeout bounds each backend request (CONCIERGE_TIMEOUT, seconds).
	Timeout time.Duration
}

// Load reads a .env file if present, then the environment. A missing
// .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		ListenAddr: getenv("CONCIERGE_LISTEN_ADDR", DefaultListenAddr),
		BackendURL: os.Getenv("CONCIERGE_BACKEND_URL"),
		BackendKey: os.Getenv("CONCIERGE_BACKEND_KEY"),
		DBPath:     getenv("CONCIERGE_DB", DefaultDBPath),
		Timeout:    DefaultTimeout,
	}

	if raw := os.Getenv("CONCIERGE_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid CONCIERGE_TIMEOUT %q: must be a positive number of seconds", raw)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
