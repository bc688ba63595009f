// Package config reads the nw settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth/logger"
	"github.com/etnz/networth/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables and their defaults.
const (
	EnvBackend    = "NW_BACKEND"
	EnvDataDir    = "NW_DATA_DIR"
	EnvSQLitePath = "NW_SQLITE_PATH"
	EnvLogLevel   = "NW_LOG_LEVEL"

	DefaultBackend    = store.FileBackend
	DefaultDataDir    = ".networth"
	DefaultSQLitePath = ".networth/networth.db"
	DefaultLogLevel   = "warn"
)

type Config struct {
	// Backend selection
	Backend string

	// File backend
	DataDir string

	// SQLite backend
	SQLitePath string

	LogLevel string
}

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory. Variables already set in
// the environment take precedence over the .env file.
func Load() *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		Backend:    getEnv(EnvBackend, string(DefaultBackend)),
		DataDir:    getEnv(EnvDataDir, DefaultDataDir),
		SQLitePath: getEnv(EnvSQLitePath, DefaultSQLitePath),
		LogLevel:   getEnv(EnvLogLevel, DefaultLogLevel),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !store.BackendType(c.Backend).IsValid() {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, store.BackendTypes))
	}
	if c.Backend == string(store.FileBackend) && c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty when using file backend")
	}
	if c.Backend == string(store.SQLiteBackend) && c.SQLitePath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Store returns the store configuration.
func (c *Config) Store() store.Config {
	return store.Config{
		Backend:    store.BackendType(c.Backend),
		Dir:        c.DataDir,
		SQLitePath: c.SQLitePath,
	}
}

// Level returns the log level, warn if it cannot be parsed.
func (c *Config) Level() zerolog.Level {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return l
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
