// Package state provides the bubbletea model for the beadapp dashboard.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

// collectionsLoadedMsg is sent when the simulated initial load completes.
type collectionsLoadedMsg struct {
	posts    []domain.Post
	projects []domain.Project
}

// loadFailedMsg is sent when reading the collections fails.
type loadFailedMsg struct {
	err error
}

// toastExpiredMsg carries the generation of the toast whose dismiss
// timer fired. Stale generations are ignored on receipt.
type toastExpiredMsg struct {
	gen uint64
}

// timerFiredMsg delivers a deferred callback scheduled through the
// model's tea-driven scheduler back into the update loop.
type timerFiredMsg struct {
	fn func()
}

// LoadCollectionsCmd reads both collections after the given delay,
// simulating the original UI's skeleton-loading phase.
func LoadCollectionsCmd(delay time.Duration, posts domain.PostRepository, projects domain.ProjectRepository) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		ps, err := posts.List()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		prs, err := projects.List()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return collectionsLoadedMsg{posts: ps, projects: prs}
	})
}
