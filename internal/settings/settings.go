// Package settings provides dashboard user preferences persistence.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/domain"
)

// View constants.
const (
	ViewDashboard = "dashboard"
	ViewProjects  = "projects"
)

// Filter defines the persisted filter criteria for the post feed.
type Filter struct {
	// Project filters posts by project ID.
	// "all" or empty string means no filter.
	Project string `json:"project"`

	// Status filters posts by moderation status.
	// "all" or empty string means no filter.
	// Valid values: "pending", "approved", "rejected", "scheduled".
	Status string `json:"status"`

	// Platform filters by target platform.
	// "all" or empty string means no filter.
	// Valid values: "x", "farcaster".
	Platform string `json:"platform"`
}

// Settings holds dashboard preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "defaultView": "dashboard",
//	  "postSort": "newest",
//	  "projectSort": "recent",
//	  "filters": {
//	    "project": "all",
//	    "status": "all",
//	    "platform": "all"
//	  }
//	}
//
// Settings are stored at ~/.config/beadapp/settings.json
type Settings struct {
	// DefaultView is the view opened by the dashboard command.
	// Empty string means use default view (dashboard).
	DefaultView string `json:"defaultView"`

	// PostSort is the default sort key for the post feed.
	// Empty string means use default sort (newest).
	// Valid values: "newest", "oldest", "most-liked", "most-shared".
	PostSort string `json:"postSort"`

	// ProjectSort is the default sort key for the projects list.
	// Empty string means use default sort (recent).
	// Valid values: "recent", "created", "insights", "name".
	ProjectSort string `json:"projectSort"`

	// Filters contains the persisted filter criteria.
	Filters Filter `json:"filters"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultView: ViewDashboard,
		PostSort:    domain.PostSortNewest.String(),
		ProjectSort: domain.ProjectSortRecent.String(),
		Filters: Filter{
			Project:  domain.FilterAll,
			Status:   domain.FilterAll,
			Platform: domain.FilterAll,
		},
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	config.Load()
	settingsPath := getSettingsPath()

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	config.Load()

	if err := validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	configDir := config.Get("config_dir", "")
	if configDir == "" {
		return fmt.Errorf("config_dir not configured")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	settingsPath := getSettingsPath()
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Reset removes the settings file so the next Load returns defaults.
func Reset() error {
	config.Load()
	settingsPath := getSettingsPath()
	if err := os.Remove(settingsPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove settings file: %w", err)
	}
	return nil
}

// validate checks that settings values are valid.
func validate(settings *Settings) error {
	if settings.DefaultView != "" && settings.DefaultView != ViewDashboard && settings.DefaultView != ViewProjects {
		return fmt.Errorf("invalid defaultView value: %s", settings.DefaultView)
	}

	if settings.PostSort != "" && !domain.PostSortKey(settings.PostSort).IsValid() {
		return fmt.Errorf("invalid postSort value: %s", settings.PostSort)
	}

	if settings.ProjectSort != "" && !domain.ProjectSortKey(settings.ProjectSort).IsValid() {
		return fmt.Errorf("invalid projectSort value: %s", settings.ProjectSort)
	}

	if !validFilterValue(settings.Filters.Status, func(s string) bool {
		return domain.PostStatus(s).IsValid()
	}) {
		return fmt.Errorf("invalid filter status: %s", settings.Filters.Status)
	}

	if !validFilterValue(settings.Filters.Platform, func(s string) bool {
		return domain.Platform(s).IsValid()
	}) {
		return fmt.Errorf("invalid filter platform: %s", settings.Filters.Platform)
	}

	return nil
}

// validFilterValue accepts empty, "all", or any value the check allows.
func validFilterValue(value string, check func(string) bool) bool {
	if value == "" || value == domain.FilterAll {
		return true
	}
	return check(value)
}

// getSettingsPath returns the path to the settings.json file.
func getSettingsPath() string {
	configDir := config.Get("config_dir", "")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "beadapp")
	}
	return filepath.Join(configDir, "settings.json")
}
