package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/storage/sqlite"
)

const (
	// BackendJSON selects JSON file storage.
	BackendJSON = "json"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"

	beadappDBFileName = "beadapp.db"
)

var _ Store = (*JSONStore)(nil)
var _ Store = (*sqlite.SQLiteStore)(nil)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Store, error) {
	config.Load()
	backend := config.Get("storage_backend", BackendJSON)
	return NewForBackend(backend)
}

// NewForBackend creates a storage backend for the provided backend name.
// Unknown backends and sqlite initialization failures fall back to JSON.
func NewForBackend(backend string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return newJSONFromState()
	case BackendSQLite:
		if err := Init(); err != nil {
			return nil, err
		}
		dbPath := filepath.Join(GetStateDir(), beadappDBFileName)
		store, err := sqlite.NewSQLiteStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to json: %v", err))
			return newJSONFromState()
		}
		return store, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to json", backend))
		return newJSONFromState()
	}
}

func newJSONFromState() (*JSONStore, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return NewJSONStore(GetStateDir())
}
