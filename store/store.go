// Package store persists the financial data aggregate in a string key-value
// store, optionally encrypted with a passphrase.
package store

import (
	"context"
	"fmt"

	"github.com/etnz/networth/logger"
)

// Logical keys used by the Envelope.
const (
	// DataKey holds the serialized aggregate, as plain JSON or as a sealed blob.
	DataKey = "net-worth-data"
	// PassphraseKey holds the current passphrase. Its absence disables encryption.
	PassphraseKey = "net-worth-encryption"
)

// Store is a string key-value store.
//
// Get reports a missing key with ok == false and a nil error. Remove of a
// missing key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// CleanupFunc releases the resources held by a Store.
type CleanupFunc func() error

// BackendType selects a Store implementation.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
)

// BackendTypes lists every supported backend.
var BackendTypes = []BackendType{MemoryBackend, FileBackend, SQLiteBackend}

func (b BackendType) String() string { return string(b) }

// IsValid returns true if the backend type is supported.
func (b BackendType) IsValid() bool {
	switch b {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	}
	return false
}

// Config holds what is needed to open a Store.
type Config struct {
	Backend BackendType

	// Dir is the directory of the file backend.
	Dir string

	// SQLitePath is the database file of the sqlite backend.
	SQLitePath string
}

// Open creates the Store described by cfg. The returned cleanup function must
// be called once the store is no longer used. It logs to the logger carried by
// ctx.
func Open(ctx context.Context, cfg Config) (Store, CleanupFunc, error) {
	log := logger.FromContext(ctx)
	noop := func() error { return nil }
	switch cfg.Backend {
	case MemoryBackend:
		log.Debug().Stringer("backend", cfg.Backend).Msg("store opened, data will not outlive the process")
		return NewMemoryStore(), noop, nil
	case FileBackend:
		s, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Stringer("backend", cfg.Backend).Str("dir", cfg.Dir).Msg("store opened")
		return s, noop, nil
	case SQLiteBackend:
		s, err := NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Stringer("backend", cfg.Backend).Str("path", cfg.SQLitePath).Msg("store opened")
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("invalid backend type %q, want one of %v", cfg.Backend, BackendTypes)
	}
}
