package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/storage/sqlite"
)

func setupStateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BEADAPP_STATE_DIR", dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", dir)
	Reset()
	config.Reset()
	t.Cleanup(func() {
		Reset()
		config.Reset()
	})
	return dir
}

func TestNewForBackendJSON(t *testing.T) {
	setupStateDir(t)

	store, err := NewForBackend(BackendJSON)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*JSONStore)
	assert.True(t, ok)
}

func TestNewForBackendEmptyDefaultsToJSON(t *testing.T) {
	setupStateDir(t)

	store, err := NewForBackend("")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*JSONStore)
	assert.True(t, ok)
}

func TestNewForBackendSQLite(t *testing.T) {
	setupStateDir(t)

	store, err := NewForBackend(BackendSQLite)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*sqlite.SQLiteStore)
	assert.True(t, ok)
}

func TestNewForBackendUnknownFallsBackToJSON(t *testing.T) {
	setupStateDir(t)

	store, err := NewForBackend("cassandra")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*JSONStore)
	assert.True(t, ok)
}

func TestNewForBackendTrimsAndLowercases(t *testing.T) {
	setupStateDir(t)

	store, err := NewForBackend("  SQLite ")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*sqlite.SQLiteStore)
	assert.True(t, ok)
}
