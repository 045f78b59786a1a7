package state

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/toast"
	"github.com/ch1m3z13/beadapp/internal/validate"
)

// Form field order; tab cycles through these.
const (
	formFieldName = iota
	formFieldURL
	formFieldTags
	formFieldDescription
	formFieldCount
)

const urlField = "url"

// addForm holds the add-project screen state: one textinput per field,
// the toggled platform, and the debounced URL validator.
type addForm struct {
	inputs    [formFieldCount]textinput.Model
	platform  domain.Platform
	scraping  bool
	focus     int
	validator *validate.Debouncer

	urlPending bool
	urlReason  string
	errMsg     string
}

// openAddForm switches to the add-project screen.
func (m *Model) openAddForm() {
	form := &addForm{platform: domain.PlatformX, scraping: true}

	labels := [formFieldCount]string{"project name", "source url", "tags (comma separated)", "description"}
	for i := range form.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 160
		form.inputs[i] = ti
	}
	form.inputs[formFieldName].Focus()

	form.validator = validate.NewDebouncer(m.debounce, validate.URL,
		validate.WithScheduler(m.deferTimer),
		validate.WithNotify(func(_ string, r validate.Result) {
			form.urlPending = false
			form.urlReason = r.Reason
		}))

	m.form = form
	m.view = ViewAdd
}

func (m *Model) closeAddForm() {
	m.form = nil
	m.view = ViewProjects
	m.refresh()
}

// handleFormKey processes keyboard input on the add-project screen.
func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	form := m.form
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.closeAddForm()
		return nil
	case "tab", "down":
		form.setFocus((form.focus + 1) % formFieldCount)
		return nil
	case "shift+tab", "up":
		form.setFocus((form.focus + formFieldCount - 1) % formFieldCount)
		return nil
	case "ctrl+p":
		form.togglePlatform()
		m.scheduleURLValidation()
		return nil
	case "ctrl+s":
		form.scraping = !form.scraping
		return nil
	case "enter":
		m.submitAddForm()
		return nil
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	form.errMsg = ""
	if form.focus == formFieldURL {
		m.scheduleURLValidation()
	}
	return cmd
}

func (f *addForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[i].Focus()
}

func (f *addForm) togglePlatform() {
	if f.platform == domain.PlatformX {
		f.platform = domain.PlatformFarcaster
	} else {
		f.platform = domain.PlatformX
	}
}

// scheduleURLValidation (re)schedules the debounced URL check for the
// current url value and platform.
func (m *Model) scheduleURLValidation() {
	form := m.form
	form.validator.Schedule(urlField, form.inputs[formFieldURL].Value(), form.platform.String())
	form.urlPending = form.validator.Pending(urlField)
	if !form.urlPending {
		form.urlReason = form.validator.Result(urlField).Reason
	}
}

// submitAddForm persists the new project when the form is complete and
// the URL validation has resolved clean.
func (m *Model) submitAddForm() {
	form := m.form
	name := strings.TrimSpace(form.inputs[formFieldName].Value())
	if name == "" {
		form.errMsg = "project name is required"
		return
	}
	url := strings.TrimSpace(form.inputs[formFieldURL].Value())
	if url == "" {
		form.errMsg = "source URL is required"
		return
	}
	if form.urlPending {
		form.errMsg = "still validating URL"
		return
	}
	if form.urlReason != "" {
		form.errMsg = form.urlReason
		return
	}

	// A project starts scraping right away when the toggle is on,
	// otherwise it sits idle until enabled.
	status := domain.ProjectStatusIdle
	if form.scraping {
		status = domain.ProjectStatusActive
	}
	project := domain.Project{
		ID:              uuid.NewString(),
		Name:            name,
		Platform:        form.platform,
		URL:             url,
		Tags:            splitTagList(form.inputs[formFieldTags].Value()),
		Description:     strings.TrimSpace(form.inputs[formFieldDescription].Value()),
		Status:          status,
		ScrapingEnabled: form.scraping,
		CreatedAt:       m.now().UTC().Format(time.RFC3339),
	}
	if err := project.Validate(); err != nil {
		form.errMsg = err.Error()
		return
	}
	if err := m.projects.Add(project); err != nil {
		form.errMsg = err.Error()
		return
	}

	m.toasts.Show("Project added!", toast.KindSuccess)
	m.closeAddForm()
	m.reloadProjects()
}

func splitTagList(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
