package state

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/mutation"
	"github.com/ch1m3z13/beadapp/internal/selection"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

var postStatusCycle = []string{
	domain.FilterAll,
	domain.PostStatusPending.String(),
	domain.PostStatusApproved.String(),
	domain.PostStatusRejected.String(),
	domain.PostStatusScheduled.String(),
}

var projectStatusCycle = []string{
	domain.FilterAll,
	domain.ProjectStatusActive.String(),
	domain.ProjectStatusPaused.String(),
	domain.ProjectStatusError.String(),
	domain.ProjectStatusIdle.String(),
}

var platformCycle = []string{
	domain.FilterAll,
	domain.PlatformX.String(),
	domain.PlatformFarcaster.String(),
}

var postSortCycle = []domain.PostSortKey{
	domain.PostSortNewest,
	domain.PostSortOldest,
	domain.PostSortMostLiked,
	domain.PostSortMostShared,
}

var projectSortCycle = []domain.ProjectSortKey{
	domain.ProjectSortRecent,
	domain.ProjectSortCreated,
	domain.ProjectSortInsights,
	domain.ProjectSortName,
}

// handleKeyMsg processes keyboard input for the dashboard.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.view == ViewAdd {
		return m.handleFormKey(msg)
	}
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "tab":
		m.switchView()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.visibleLen()-1 {
			m.cursor++
		}
	case "/":
		m.enterSearchMode()
		return nil
	case "p":
		m.cycleProjectFilter()
	case "f":
		m.cycleStatusFilter()
	case "t":
		m.cyclePlatformFilter()
	case "o":
		m.cycleSort()
	case " ":
		m.toggleSelection()
	case "n":
		if m.view == ViewProjects {
			m.openAddForm()
		}
	case "a":
		m.selectAll()
	case "c":
		m.clearSelection()
	case "A":
		m.dispatchBulkPosts(mutation.KindApprove)
	case "R":
		m.dispatchBulkPosts(mutation.KindReject)
	case "P":
		m.dispatchBulkProjects(domain.ProjectStatusPaused)
	case "U":
		m.dispatchBulkProjects(domain.ProjectStatusActive)
	case "l":
		m.applyMutation(mutation.KindLike)
	case "s":
		m.applyMutation(mutation.KindShare)
	case "x":
		m.applyMutation(mutation.KindReject)
	case "g":
		m.applyMutation(mutation.KindRegenerate)
	case "enter":
		m.applyMutation(mutation.KindApprove)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.search.SetValue("")
		m.exitSearchMode()
		return nil
	case "enter":
		m.exitSearchMode()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch(m.search.Value())
	return cmd
}

func (m *Model) quit() tea.Cmd {
	if m.saveState != nil {
		// Best effort: a failed save must not block quitting.
		_ = m.saveState(m.State())
	}
	return tea.Quit
}

func (m *Model) switchView() {
	if m.view == ViewDashboard {
		m.view = ViewProjects
	} else {
		m.view = ViewDashboard
	}
	m.cursor = 0
	m.refresh()
}

func (m *Model) enterSearchMode() {
	m.searchMode = true
	m.search.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchMode = false
	m.search.Blur()
	m.applySearch(m.search.Value())
}

func (m *Model) applySearch(query string) {
	if m.view == ViewProjects {
		m.projFilter.Search = query
	} else {
		m.postFilter.Search = query
	}
	m.refresh()
}

// cycleProjectFilter steps the post feed through "all" plus each known
// project id. Only meaningful on the dashboard view.
func (m *Model) cycleProjectFilter() {
	if m.view != ViewDashboard {
		return
	}
	cycle := []string{domain.FilterAll}
	for _, p := range m.allProjects {
		cycle = append(cycle, p.ID)
	}
	m.postFilter.ProjectID = nextInCycle(cycle, m.postFilter.ProjectID)
	m.refresh()
}

func (m *Model) cycleStatusFilter() {
	if m.view == ViewProjects {
		m.projFilter.Status = nextInCycle(projectStatusCycle, m.projFilter.Status)
	} else {
		m.postFilter.Status = nextInCycle(postStatusCycle, m.postFilter.Status)
	}
	m.refresh()
}

func (m *Model) cyclePlatformFilter() {
	if m.view == ViewProjects {
		m.projFilter.Platform = nextInCycle(platformCycle, m.projFilter.Platform)
	} else {
		m.postFilter.Platform = nextInCycle(platformCycle, m.postFilter.Platform)
	}
	m.refresh()
}

func (m *Model) cycleSort() {
	if m.view == ViewProjects {
		m.projSort = nextSortKey(projectSortCycle, m.projSort)
	} else {
		m.postSort = nextSortKey(postSortCycle, m.postSort)
	}
	m.refresh()
}

func (m *Model) toggleSelection() {
	if m.view == ViewProjects {
		if p := m.currentProject(); p != nil {
			m.projSel.Toggle(p.ID)
		}
		return
	}
	if p := m.currentPost(); p != nil {
		m.postSel.Toggle(p.ID)
	}
}

func (m *Model) selectAll() {
	if m.view == ViewProjects {
		m.projSel.SelectAll()
		return
	}
	m.postSel.SelectAll()
}

func (m *Model) clearSelection() {
	if m.view == ViewProjects {
		m.projSel.Clear()
		return
	}
	m.postSel.Clear()
}

// dispatchBulkPosts applies kind to every selected post and clears the
// selection.
func (m *Model) dispatchBulkPosts(kind mutation.Kind) {
	if m.view != ViewDashboard {
		return
	}
	m.postSel.DispatchBulk(kind.String(), selection.BulkActionFunc(func(_ string, ids []string) {
		for _, id := range ids {
			if err := m.mutations.Apply(id, kind); err != nil {
				m.statusMessage = err.Error()
			}
		}
	}))
	m.reloadPosts()
}

// dispatchBulkProjects sets status on every selected project and clears
// the selection.
func (m *Model) dispatchBulkProjects(status domain.ProjectStatus) {
	if m.view != ViewProjects {
		return
	}
	var changed int
	m.projSel.DispatchBulk(status.String(), selection.BulkActionFunc(func(_ string, ids []string) {
		for _, id := range ids {
			project, err := m.projects.GetByID(id)
			if err != nil {
				continue
			}
			project.Status = status
			if err := m.projects.Update(*project); err != nil {
				m.statusMessage = err.Error()
				continue
			}
			changed++
		}
	}))
	if changed > 0 {
		verb := "paused"
		if status == domain.ProjectStatusActive {
			verb = "resumed"
		}
		m.toasts.Show(pluralProjects(changed)+" "+verb, toast.KindSuccess)
	}
	m.reloadProjects()
}

func (m *Model) applyMutation(kind mutation.Kind) {
	post := m.currentPost()
	if post == nil {
		return
	}
	if err := m.mutations.Apply(post.ID, kind); err != nil {
		m.statusMessage = err.Error()
		return
	}
	m.reloadPosts()
}

func nextInCycle(cycle []string, current string) string {
	if current == "" {
		current = domain.FilterAll
	}
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func nextSortKey[K ~string](cycle []K, current K) K {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func pluralProjects(n int) string {
	if n == 1 {
		return "1 project"
	}
	return strconv.Itoa(n) + " projects"
}
