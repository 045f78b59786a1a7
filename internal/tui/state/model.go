package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/mutation"
	"github.com/ch1m3z13/beadapp/internal/selection"
	"github.com/ch1m3z13/beadapp/internal/settings"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

const (
	defaultLoadDelay     = 1500 * time.Millisecond
	defaultViewportWidth = 80
)

// View identifies the active dashboard screen.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
	ViewAdd       View = "add"
)

type pendingTimer struct {
	delay time.Duration
	fn    func()
}

// Deps carries the collaborators the dashboard model needs.
type Deps struct {
	Posts    domain.PostRepository
	Projects domain.ProjectRepository

	// LoadDelay is the simulated initial-load duration. Zero means the
	// default 1.5s.
	LoadDelay time.Duration

	// ToastDuration overrides the toast auto-dismiss window. Zero means
	// the default.
	ToastDuration time.Duration

	// ValidationDebounce overrides the add-form URL validation
	// quiescence window. Zero means the default 500ms.
	ValidationDebounce time.Duration

	// InitialState seeds view, filters, and sort keys from persisted
	// settings.
	InitialState settings.DashboardState

	// SaveState persists the dashboard state on quit. May be nil.
	SaveState func(settings.DashboardState) error
}

// Model is the bubbletea model for the beadapp dashboard.
type Model struct {
	posts     domain.PostRepository
	projects  domain.ProjectRepository
	mutations *mutation.Controller
	toasts    *toast.Queue
	postSel   *selection.Set
	projSel   *selection.Set

	view       View
	loading    bool
	spin       spinner.Model
	search     textinput.Model
	searchMode bool
	form       *addForm

	allPosts        []domain.Post
	allProjects     []domain.Project
	visiblePosts    []domain.Post
	visibleProjects []domain.Project

	postFilter domain.PostFilter
	projFilter domain.ProjectFilter
	postSort   domain.PostSortKey
	projSort   domain.ProjectSortKey

	cursor int
	width  int
	height int

	loadDelay     time.Duration
	toastDuration time.Duration
	debounce      time.Duration
	lastToastGen  uint64
	pendingTimers []pendingTimer
	statusMessage string

	saveState func(settings.DashboardState) error
	now       func() time.Time
}

// NewModel creates a dashboard model from its dependencies.
func NewModel(deps Deps) *Model {
	loadDelay := deps.LoadDelay
	if loadDelay <= 0 {
		loadDelay = defaultLoadDelay
	}
	toastDuration := deps.ToastDuration
	if toastDuration <= 0 {
		toastDuration = toast.DefaultDuration
	}

	m := &Model{
		posts:         deps.Posts,
		projects:      deps.Projects,
		view:          ViewDashboard,
		loading:       true,
		postSel:       selection.NewSet(),
		projSel:       selection.NewSet(),
		postSort:      domain.PostSortNewest,
		projSort:      domain.ProjectSortRecent,
		loadDelay:     loadDelay,
		toastDuration: toastDuration,
		debounce:      deps.ValidationDebounce,
		width:         defaultViewportWidth,
		saveState:     deps.SaveState,
		now:           time.Now,
	}

	m.applyInitialState(deps.InitialState)

	// Toast dismiss timers and the simulated regeneration delay are
	// driven by tea ticks, so both collaborators get a scheduler that
	// defers into the update loop instead of real timers.
	m.toasts = toast.NewQueue(toastDuration, toast.WithScheduler(nopScheduler))
	m.mutations = mutation.NewController(deps.Posts, m.toasts,
		mutation.WithScheduler(m.deferTimer))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spin = sp

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 80
	m.search = ti

	return m
}

func (m *Model) applyInitialState(state settings.DashboardState) {
	if state.View == settings.ViewProjects {
		m.view = ViewProjects
	}
	if key, err := domain.ParsePostSortKey(state.PostSort); err == nil {
		m.postSort = key
	}
	if key, err := domain.ParseProjectSortKey(state.ProjectSort); err == nil {
		m.projSort = key
	}
	m.postFilter.ProjectID = state.Filters.Project
	m.postFilter.Status = state.Filters.Status
	m.postFilter.Platform = state.Filters.Platform
	m.projFilter.Status = domain.FilterAll
	m.projFilter.Platform = state.Filters.Platform
}

// nopScheduler suppresses the toast queue's own timers; expiry arrives
// as toastExpiredMsg ticks instead.
func nopScheduler(time.Duration, func()) func() {
	return func() {}
}

// deferTimer queues fn to run inside the update loop after delay.
func (m *Model) deferTimer(delay time.Duration, fn func()) func() {
	m.pendingTimers = append(m.pendingTimers, pendingTimer{delay: delay, fn: fn})
	return func() {}
}

// Init starts the spinner and the simulated initial load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		LoadCollectionsCmd(m.loadDelay, m.posts, m.projects),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case collectionsLoadedMsg:
		m.loading = false
		m.allPosts = msg.posts
		m.allProjects = msg.projects
		m.refresh()

	case loadFailedMsg:
		m.loading = false
		m.statusMessage = "failed to load collections: " + msg.err.Error()

	case toastExpiredMsg:
		m.toasts.ExpireGeneration(msg.gen)

	case timerFiredMsg:
		msg.fn()

	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.flushTimers()...)
	if cmd := m.syncToast(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// flushTimers converts deferred timers into tea ticks.
func (m *Model) flushTimers() []tea.Cmd {
	if len(m.pendingTimers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pendingTimers))
	for _, t := range m.pendingTimers {
		fn := t.fn
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return timerFiredMsg{fn: fn}
		}))
	}
	m.pendingTimers = nil
	return cmds
}

// syncToast arms a dismiss tick for a newly shown toast. Each toast
// generation gets exactly one tick; stale ticks are ignored on expiry.
func (m *Model) syncToast() tea.Cmd {
	if m.toasts.Current() == nil {
		return nil
	}
	gen := m.toasts.Generation()
	if gen == m.lastToastGen {
		return nil
	}
	m.lastToastGen = gen
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

// refresh re-evaluates the visible collections, reconciles both
// selections against them, and clamps the cursor.
func (m *Model) refresh() {
	m.visiblePosts = domain.EvaluatePostView(m.allPosts, m.postFilter, m.postSort)
	m.visibleProjects = domain.EvaluateProjectView(m.allProjects, m.projFilter, m.projSort)
	m.postSel.Reconcile(domain.VisiblePostIDs(m.visiblePosts))
	m.projSel.Reconcile(domain.VisibleProjectIDs(m.visibleProjects))
	m.clampCursor()
}

func (m *Model) clampCursor() {
	max := m.visibleLen() - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) visibleLen() int {
	if m.view == ViewProjects {
		return len(m.visibleProjects)
	}
	return len(m.visiblePosts)
}

// reloadPosts re-reads the post collection after a mutation so the feed
// reflects persisted counters without waiting for a full reload.
func (m *Model) reloadPosts() {
	posts, err := m.posts.List()
	if err != nil {
		m.statusMessage = "failed to reload posts: " + err.Error()
		return
	}
	m.allPosts = posts
	m.refresh()
}

func (m *Model) reloadProjects() {
	projects, err := m.projects.List()
	if err != nil {
		m.statusMessage = "failed to reload projects: " + err.Error()
		return
	}
	m.allProjects = projects
	m.refresh()
}

// currentPost returns the post under the cursor, or nil.
func (m *Model) currentPost() *domain.Post {
	if m.view != ViewDashboard || m.cursor >= len(m.visiblePosts) {
		return nil
	}
	return &m.visiblePosts[m.cursor]
}

// currentProject returns the project under the cursor, or nil.
func (m *Model) currentProject() *domain.Project {
	if m.view != ViewProjects || m.cursor >= len(m.visibleProjects) {
		return nil
	}
	return &m.visibleProjects[m.cursor]
}

// State exports the persistable dashboard state. The transient add
// screen persists as the projects view.
func (m *Model) State() settings.DashboardState {
	view := m.view
	if view == ViewAdd {
		view = ViewProjects
	}
	return settings.DashboardState{
		View:        string(view),
		PostSort:    m.postSort.String(),
		ProjectSort: m.projSort.String(),
		Filters: settings.Filter{
			Project:  orAll(m.postFilter.ProjectID),
			Status:   orAll(m.postFilter.Status),
			Platform: orAll(m.postFilter.Platform),
		},
	}
}

func orAll(v string) string {
	if v == "" {
		return domain.FilterAll
	}
	return v
}
