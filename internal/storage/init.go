// Package storage provides the persistence backends for beadapp.
package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/config"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
)

var (
	stateDir string
	initOnce = &sync.Once{}
	initMu   sync.RWMutex
	initErr  error
)

// Init resolves and creates the state directory. Safe for concurrent calls.
func Init() error {
	initOnce.Do(func() {
		config.Load()

		dir := os.Getenv("BEADAPP_STATE_DIR")
		if dir == "" {
			dir = config.Get("state_dir", "")
		}
		if dir == "" {
			initErr = fmt.Errorf("storage initialization failed: state_dir not configured")
			return
		}

		if err := os.MkdirAll(dir, FileModeDir); err != nil {
			initErr = fmt.Errorf("failed to create state directory: %w", err)
			return
		}

		initMu.Lock()
		stateDir = dir
		initMu.Unlock()

		colors.Debug("storage initialized: " + dir)
	})

	initMu.RLock()
	defer initMu.RUnlock()
	return initErr
}

// GetStateDir returns the state directory path.
func GetStateDir() string {
	initMu.RLock()
	dir := stateDir
	initMu.RUnlock()
	if dir != "" {
		return dir
	}
	if dir := os.Getenv("BEADAPP_STATE_DIR"); dir != "" {
		return dir
	}
	config.Load()
	return config.Get("state_dir", "")
}

// Reset resets the storage package state for testing.
func Reset() {
	initMu.Lock()
	defer initMu.Unlock()

	stateDir = ""
	initErr = nil
	initOnce = &sync.Once{}
}
