package state

import (
	"strings"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/tui/render"
)

// View renders the dashboard screen.
func (m *Model) View() string {
	if m.loading {
		return "\n  " + render.Loading(m.spin.View()) + "\n"
	}

	var b strings.Builder

	switch m.view {
	case ViewProjects:
		m.renderProjects(&b)
	case ViewAdd:
		m.renderAddForm(&b)
	default:
		m.renderPosts(&b)
	}

	b.WriteString("\n")
	selected := m.postSel.Count()
	if m.view == ViewProjects {
		selected = m.projSel.Count()
	}
	b.WriteString(render.StatusBar(m.toasts.Current(), selected, m.statusMessage))
	b.WriteString("\n")
	b.WriteString(render.Footer(render.FooterState{
		View:       string(m.view),
		SearchMode: m.searchMode,
		Query:      m.search.Value(),
	}))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderPosts(b *strings.Builder) {
	b.WriteString(render.Title("generated posts", len(m.visiblePosts)))
	b.WriteString("\n")
	b.WriteString(render.FilterBar(
		filterLabel("project", m.projectFilterName()),
		filterLabel("status", m.postFilter.Status),
		filterLabel("platform", m.postFilter.Platform),
		"sort: "+m.postSort.String(),
	))
	b.WriteString("\n\n")

	if len(m.visiblePosts) == 0 {
		b.WriteString(render.Empty("posts"))
		b.WriteString("\n")
		return
	}

	now := m.now()
	for i, post := range m.visiblePosts {
		b.WriteString(render.PostRow(render.PostRowState{
			Post:     post,
			Cursor:   i == m.cursor,
			Selected: m.postSel.IsSelected(post.ID),
			Width:    m.width,
			Now:      now,
		}))
		b.WriteString("\n")
	}
}

func (m *Model) renderProjects(b *strings.Builder) {
	b.WriteString(render.Title("projects", len(m.visibleProjects)))
	b.WriteString("\n")
	b.WriteString(render.FilterBar(
		filterLabel("status", m.projFilter.Status),
		filterLabel("platform", m.projFilter.Platform),
		"sort: "+m.projSort.String(),
	))
	b.WriteString("\n\n")

	if len(m.visibleProjects) == 0 {
		b.WriteString(render.Empty("projects"))
		b.WriteString("\n")
		return
	}

	now := m.now()
	for i, project := range m.visibleProjects {
		b.WriteString(render.ProjectRow(render.ProjectRowState{
			Project:  project,
			Cursor:   i == m.cursor,
			Selected: m.projSel.IsSelected(project.ID),
			Width:    m.width,
			Now:      now,
		}))
		b.WriteString("\n")
	}
}

func (m *Model) renderAddForm(b *strings.Builder) {
	form := m.form
	b.WriteString(render.Heading("add project"))
	b.WriteString("\n\n")

	labels := [formFieldCount]string{"Name", "URL", "Tags", "Description"}
	for i := range form.inputs {
		b.WriteString(render.FormField(labels[i], form.inputs[i].View(), form.focus == i))
		b.WriteString("\n")
		if i == formFieldURL {
			if status := render.FormStatus(form.urlPending, form.urlReason); status != "" {
				b.WriteString("    " + status + "\n")
			}
		}
	}
	b.WriteString("\n  ")
	b.WriteString(render.FormField("Platform", form.platform.DisplayName(), false))
	b.WriteString("\n  ")
	scraping := "off"
	if form.scraping {
		scraping = "on"
	}
	b.WriteString(render.FormField("Scraping", scraping, false))
	b.WriteString("\n")
	if form.errMsg != "" {
		b.WriteString("\n  " + render.FormStatus(false, form.errMsg) + "\n")
	}
}

// projectFilterName resolves the active project filter id to its name.
func (m *Model) projectFilterName() string {
	id := m.postFilter.ProjectID
	if id == "" || id == domain.FilterAll {
		return domain.FilterAll
	}
	for _, p := range m.allProjects {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func filterLabel(name, value string) string {
	if value == "" {
		value = domain.FilterAll
	}
	return name + ": " + value
}
