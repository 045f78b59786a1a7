package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/domain"
)

func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Reset()
	t.Cleanup(config.Reset)
	return filepath.Join(dir, "beadapp")
}

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	setupConfigDir(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, s.DefaultView)
	assert.Equal(t, "newest", s.PostSort)
	assert.Equal(t, "recent", s.ProjectSort)
	assert.Equal(t, domain.FilterAll, s.Filters.Status)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setupConfigDir(t)

	s := DefaultSettings()
	s.PostSort = "most-liked"
	s.Filters.Status = "pending"
	s.Filters.Platform = "x"
	require.NoError(t, Save(s))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "most-liked", loaded.PostSort)
	assert.Equal(t, "pending", loaded.Filters.Status)
	assert.Equal(t, "x", loaded.Filters.Platform)
}

func TestSaveRejectsInvalidValues(t *testing.T) {
	setupConfigDir(t)

	s := DefaultSettings()
	s.PostSort = "trending"
	assert.Error(t, Save(s))

	s = DefaultSettings()
	s.Filters.Status = "published"
	assert.Error(t, Save(s))

	s = DefaultSettings()
	s.DefaultView = "calendar"
	assert.Error(t, Save(s))
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configDir := setupConfigDir(t)
	require.NoError(t, os.MkdirAll(configDir, 0755))

	bad := map[string]any{"postSort": "trending"}
	data, err := json.Marshal(bad)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.json"), data, 0644))

	_, err = Load()
	assert.Error(t, err)
}

func TestLoadMergesPartialFileOverDefaults(t *testing.T) {
	configDir := setupConfigDir(t)
	require.NoError(t, os.MkdirAll(configDir, 0755))

	partial := []byte(`{"postSort": "oldest"}`)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.json"), partial, 0644))

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "oldest", s.PostSort)
	assert.Equal(t, "recent", s.ProjectSort)
}

func TestResetRemovesSettingsFile(t *testing.T) {
	setupConfigDir(t)

	s := DefaultSettings()
	s.PostSort = "most-shared"
	require.NoError(t, Save(s))

	require.NoError(t, Reset())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "newest", loaded.PostSort)

	// Resetting twice is fine.
	require.NoError(t, Reset())
}

func TestDashboardStateRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.Filters.Project = "proj-1"

	state := FromSettings(s)
	assert.Equal(t, "proj-1", state.Filters.Project)
	assert.False(t, state.IsEmpty())

	back := state.ToSettings()
	assert.Equal(t, s.PostSort, back.PostSort)
	assert.Equal(t, s.Filters, back.Filters)
}

func TestDashboardStateEmpty(t *testing.T) {
	assert.True(t, DashboardState{}.IsEmpty())
	assert.True(t, FromSettings(nil).IsEmpty())
}
