// Package cmd implements the CLI application to track a net worth.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/config"
	"github.com/etnz/networth/logger"
	"github.com/etnz/networth/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists every subcommand with its group, in help order.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"", &topicCmd{}},
	{"net worth", &summaryCmd{}},
	{"net worth", &listCmd{}},
	{"net worth", &addAssetCmd{}},
	{"net worth", &addLiabilityCmd{}},
	{"net worth", &updateCmd{}},
	{"net worth", &removeCmd{}},
	{"tracking", &snapshotCmd{}},
	{"tracking", &historyCmd{}},
	{"tracking", &goalCmd{}},
	{"tracking", &milestonesCmd{}},
	{"tracking", &budgetCmd{}},
	{"data", &exportCmd{}},
	{"data", &queryCmd{}},
	{"data", &encryptCmd{}},
	{"data", &resetCmd{}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var backend = flag.String("backend", "", "Storage backend: memory, file or sqlite. Overrides "+config.EnvBackend+".")
var dataDir = flag.String("data-dir", "", "Folder of the file backend. Overrides "+config.EnvDataDir+".")
var sqlitePath = flag.String("sqlite-path", "", "Database file of the sqlite backend. Overrides "+config.EnvSQLitePath+".")
var verbose = flag.Bool("v", false, "Print debug logs.")

// testingNow is the environment variable that freezes the clock, using the
// "2006-01-02 15:04:05" layout. It makes the documentation examples reproducible.
const testingNow = "NW_TESTING_NOW"

// loadConfig reads the configuration and applies the global flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *sqlitePath != "" {
		cfg.SQLitePath = *sqlitePath
	}
	if *verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// clock returns the time source of the controller.
func clock() (func() time.Time, error) {
	v := os.Getenv(testingNow)
	if v == "" {
		return time.Now, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", testingNow, err)
	}
	return func() time.Time { return t }, nil
}

// OpenController opens the configured store and loads the financial data.
// The returned cleanup function must be called when done.
func OpenController(ctx context.Context) (*app.Controller, store.CleanupFunc, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	// pid tells apart concurrent invocations sharing the same data.
	ctx = logger.WithContext(ctx, logger.WithFields(logger.New().Level(cfg.Level()), map[string]any{
		"pid": os.Getpid(),
	}))

	s, cleanup, err := store.Open(ctx, cfg.Store())
	if err != nil {
		return nil, nil, err
	}
	now, err := clock()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	log := logger.FromContext(ctx)
	c := app.New(store.NewEnvelope(s, log), app.WithClock(now), app.WithLogger(log))
	res := c.Load()
	log.Debug().Stringer("result", res).Msg("controller ready")
	return c, cleanup, nil
}

// openWritable is like OpenController but refuses to go on when stored data
// exists that cannot be read: any change would overwrite it.
func openWritable(ctx context.Context) (*app.Controller, store.CleanupFunc, error) {
	c, cleanup, err := OpenController(ctx)
	if err != nil {
		return nil, nil, err
	}
	switch res := c.LoadResult(); res {
	case store.Locked, store.Undecryptable, store.Unreadable, store.Malformed:
		cleanup()
		return nil, nil, fmt.Errorf("stored data is %s, refusing to overwrite it (see 'encrypt -passphrase' or 'reset')", res)
	}
	return c, cleanup, nil
}

// withController opens the controller, runs f and releases the store.
func withController(ctx context.Context, writable bool, f func(c *app.Controller) subcommands.ExitStatus) subcommands.ExitStatus {
	open := OpenController
	if writable {
		open = openWritable
	}
	c, cleanup, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer func() {
		if err := cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing data: %v\n", err)
		}
	}()
	return f(c)
}
