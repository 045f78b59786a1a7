package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project represents a tracked social-media account.
type Project struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Platform        Platform      `json:"platform"`
	URL             string        `json:"url"`
	Tags            []string      `json:"tags,omitempty"`
	Description     string        `json:"description,omitempty"`
	Status          ProjectStatus `json:"status"`
	ScrapingEnabled bool          `json:"scrapingEnabled"`
	CreatedAt       string        `json:"createdAt"`
	LastScraped     string        `json:"lastScraped,omitempty"`
	TotalInsights   int           `json:"totalInsights"`
}

// ProjectStatus represents the scraping state of a project.
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
	ProjectStatusPaused ProjectStatus = "paused"
	ProjectStatusError  ProjectStatus = "error"
	ProjectStatusIdle   ProjectStatus = "idle"
)

// IsValid checks if the project status is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusError, ProjectStatusIdle:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ProjectStatus) String() string {
	return string(s)
}

// Validate validates the project and returns an error if invalid.
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project ID cannot be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !p.Platform.IsValid() {
		return fmt.Errorf("invalid platform: %s", p.Platform)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid project status: %s", p.Status)
	}
	if p.CreatedAt == "" {
		return fmt.Errorf("project timestamp cannot be empty")
	}
	// Timestamps must stay in the UTC "Z" form; the sorters compare
	// them lexically, and a zoned offset would break that order.
	if err := validateUTCTimestamp(p.CreatedAt); err != nil {
		return fmt.Errorf("invalid timestamp format: %w", err)
	}
	if p.LastScraped != "" {
		if err := validateUTCTimestamp(p.LastScraped); err != nil {
			return fmt.Errorf("invalid last scraped timestamp: %w", err)
		}
	}
	return nil
}

// validateUTCTimestamp checks that a timestamp is RFC3339 in the UTC
// "Z" form, the only form whose lexical order is chronological.
func validateUTCTimestamp(ts string) error {
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		return err
	}
	if !strings.HasSuffix(ts, "Z") {
		return fmt.Errorf("timestamp must be UTC: %s", ts)
	}
	return nil
}

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(status string) (ProjectStatus, error) {
	s := ProjectStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", status)
	}
	return s, nil
}
