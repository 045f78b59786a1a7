// Package app provides TUI application adapters for command wiring.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/settings"
	"github.com/ch1m3z13/beadapp/internal/tui/state"
)

// ProgramRunner starts a bubbletea program for the given model.
type ProgramRunner interface {
	Run(model tea.Model) error
}

// DefaultProgramRunner runs the program with the alternate screen buffer.
type DefaultProgramRunner struct{}

// Run starts the bubbletea program.
func (DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Client wires the dashboard model to its repositories and settings.
type Client struct {
	posts    domain.PostRepository
	projects domain.ProjectRepository
	runner   ProgramRunner
}

// NewClient creates a TUI client. If runner is nil, the default
// alt-screen runner is used.
func NewClient(posts domain.PostRepository, projects domain.ProjectRepository, runner ProgramRunner) *Client {
	if runner == nil {
		runner = DefaultProgramRunner{}
	}
	return &Client{posts: posts, projects: projects, runner: runner}
}

// CreateModel builds the dashboard model from persisted settings and
// configured durations.
func (c *Client) CreateModel() (*state.Model, error) {
	loaded, err := settings.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("failed to load settings, using defaults: %v", err))
		loaded = settings.DefaultSettings()
	}

	deps := state.Deps{
		Posts:              c.posts,
		Projects:           c.projects,
		LoadDelay:          time.Duration(config.GetInt("load_delay_ms", 1500)) * time.Millisecond,
		ToastDuration:      time.Duration(config.GetInt("toast_duration_ms", 3000)) * time.Millisecond,
		ValidationDebounce: time.Duration(config.GetInt("validation_debounce_ms", 500)) * time.Millisecond,
		InitialState:       settings.FromSettings(loaded),
		SaveState: func(s settings.DashboardState) error {
			return settings.Save(s.ToSettings())
		},
	}
	return state.NewModel(deps), nil
}

// Run creates the model and starts the program.
func (c *Client) Run() error {
	model, err := c.CreateModel()
	if err != nil {
		return err
	}
	if err := c.runner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running dashboard: %v", err))
		return err
	}
	return nil
}
