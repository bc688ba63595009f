package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/etnz/networth/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one fresh store per backend.
func backends(t *testing.T) map[BackendType]Store {
	t.Helper()
	dir := t.TempDir()
	res := make(map[BackendType]Store)
	for _, cfg := range []Config{
		{Backend: MemoryBackend},
		{Backend: FileBackend, Dir: filepath.Join(dir, "files")},
		{Backend: SQLiteBackend, SQLitePath: filepath.Join(dir, "db", "nw.db")},
	} {
		s, cleanup, err := Open(context.Background(), cfg)
		require.NoError(t, err, cfg.Backend)
		t.Cleanup(func() { _ = cleanup() })
		res[cfg.Backend] = s
	}
	return res
}

func TestStore_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			_, ok, err := s.Get(DataKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(DataKey, "first"))
			require.NoError(t, s.Set(DataKey, `{"assets":[]}`))
			v, ok, err := s.Get(DataKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"assets":[]}`, v)

			require.NoError(t, s.Set(PassphraseKey, ""))
			v, ok, err = s.Get(PassphraseKey)
			require.NoError(t, err)
			assert.True(t, ok, "an empty value is still a value")
			assert.Empty(t, v)

			require.NoError(t, s.Remove(DataKey))
			require.NoError(t, s.Remove(DataKey))
			_, ok, err = s.Get(DataKey)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestOpen_LogsToContextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.WithFields(logger.NewWithWriter(buf), map[string]any{"command": "summary"})
	ctx := logger.WithContext(context.Background(), log)
	dir := filepath.Join(t.TempDir(), "files")

	_, cleanup, err := Open(ctx, Config{Backend: FileBackend, Dir: dir})
	require.NoError(t, err)
	defer cleanup()

	out := buf.String()
	assert.Contains(t, out, "store opened")
	assert.Contains(t, out, `"backend":"file"`)
	assert.Contains(t, out, `"command":"summary"`)
}

func TestOpen_InvalidBackend(t *testing.T) {
	_, _, err := Open(context.Background(), Config{Backend: "cloud"})
	assert.ErrorContains(t, err, "invalid backend type")
}

func TestFileStore_InvalidKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Set("../escape", "x"))
	_, _, err = s.Get("a/b")
	assert.Error(t, err)
}

func TestFileStore_Persists(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(DataKey, "kept"))

	again, err := NewFileStore(dir)
	require.NoError(t, err)
	v, ok, err := again.Get(DataKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", v)

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary files must not be left behind")
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nw.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(DataKey, "kept"))
	require.NoError(t, s.Close())

	// migrations already applied
	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(DataKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", v)
}
