package settings

// DashboardState represents the dashboard view state that can be
// persisted. This DTO pattern avoids tight coupling between
// internal/settings and the TUI packages.
type DashboardState struct {
	// View is the active view: "dashboard" or "projects".
	View string

	// PostSort is the active post feed sort key.
	PostSort string

	// ProjectSort is the active projects list sort key.
	ProjectSort string

	// Filters contains active filter criteria.
	Filters Filter
}

// FromSettings converts Settings to DashboardState.
func FromSettings(s *Settings) DashboardState {
	if s == nil {
		return DashboardState{}
	}
	return DashboardState{
		View:        s.DefaultView,
		PostSort:    s.PostSort,
		ProjectSort: s.ProjectSort,
		Filters:     s.Filters,
	}
}

// ToSettings converts DashboardState to Settings.
// Empty values fall back to defaults when loaded or saved.
func (d DashboardState) ToSettings() *Settings {
	return &Settings{
		DefaultView: d.View,
		PostSort:    d.PostSort,
		ProjectSort: d.ProjectSort,
		Filters:     d.Filters,
	}
}

// IsEmpty returns true if all fields in DashboardState are empty.
func (d DashboardState) IsEmpty() bool {
	return d.View == "" &&
		d.PostSort == "" &&
		d.ProjectSort == "" &&
		d.Filters.Project == "" &&
		d.Filters.Status == "" &&
		d.Filters.Platform == ""
}
