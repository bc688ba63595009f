package config

import (
	"os"
	"strings"
	"testing"

	"github.com/etnz/networth/store"
	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvSQLitePath, "")
	t.Setenv(EnvLogLevel, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil { // no .env
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := Load()

	if cfg.Backend != "file" || cfg.DataDir != ".networth" || cfg.SQLitePath != ".networth/networth.db" || cfg.LogLevel != "warn" {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(EnvBackend, "sqlite")
	t.Setenv(EnvSQLitePath, "/tmp/nw.db")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Load()

	want := store.Config{Backend: store.SQLiteBackend, Dir: cfg.DataDir, SQLitePath: "/tmp/nw.db"}
	if got := cfg.Store(); got != want {
		t.Errorf("Store() = %+v, want %+v", got, want)
	}
	if got := cfg.Level(); got != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid file backend",
			config: Config{Backend: "file", DataDir: ".networth", LogLevel: "warn"},
		},
		{
			name:   "valid memory backend",
			config: Config{Backend: "memory"},
		},
		{
			name:        "invalid backend",
			config:      Config{Backend: "cloud"},
			wantErr:     true,
			errorString: "invalid backend 'cloud': must be one of [memory file sqlite]",
		},
		{
			name:        "file backend missing directory",
			config:      Config{Backend: "file"},
			wantErr:     true,
			errorString: "data directory cannot be empty when using file backend",
		},
		{
			name:        "sqlite backend missing database path",
			config:      Config{Backend: "sqlite"},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "invalid log level",
			config:      Config{Backend: "memory", LogLevel: "loud"},
			wantErr:     true,
			errorString: `invalid log level "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}
