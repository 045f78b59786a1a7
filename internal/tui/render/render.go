// Package render provides lipgloss rendering for the dashboard TUI.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

const (
	defaultWidth    = 80
	contentPadding  = 2
	maxContentWidth = 120
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	filterBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	statusStyles = map[string]lipgloss.Style{
		"pending":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"approved":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"rejected":  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"scheduled": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"active":    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"paused":    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"error":     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"idle":      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	toastStyles = map[toast.Kind]lipgloss.Style{
		toast.KindSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		toast.KindError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		toast.KindInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		toast.KindWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
)

// Title renders the screen title line.
func Title(view string, count int) string {
	return titleStyle.Render(fmt.Sprintf("beadapp — %s (%d)", view, count))
}

// FilterBar renders the active filter and sort summary.
func FilterBar(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return filterBarStyle.Render(strings.Join(nonEmpty, "  ·  "))
}

// StatusBadge renders a status value with its color.
func StatusBadge(status string) string {
	style, ok := statusStyles[status]
	if !ok {
		return status
	}
	return style.Render(status)
}

// PostRowState defines the inputs needed to render a post row.
type PostRowState struct {
	Post     domain.Post
	Cursor   bool
	Selected bool
	Width    int
	Now      time.Time
}

// PostRow renders a single post feed row.
func PostRow(state PostRowState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}

	marker := "  "
	if state.Cursor {
		marker = "> "
	}
	check := "[ ]"
	if state.Selected {
		check = "[x]"
	}

	meta := fmt.Sprintf("%s  %s  %s  ♥ %d  ⇄ %d  %s",
		state.Post.ProjectName,
		state.Post.Platform.DisplayName(),
		StatusBadge(state.Post.Status.String()),
		state.Post.Likes,
		state.Post.Shares,
		dimStyle.Render(age(state.Post.CreatedAt, state.Now)),
	)

	content := truncate(collapseWhitespace(state.Post.Content), width-len(marker)-len(check)-contentPadding)

	line := marker + check + " " + content
	if state.Cursor {
		line = cursorStyle.Render(line)
	} else if state.Selected {
		line = selectedStyle.Render(line)
	}
	return line + "\n" + strings.Repeat(" ", len(marker)+len(check)+1) + meta
}

// ProjectRowState defines the inputs needed to render a project row.
type ProjectRowState struct {
	Project  domain.Project
	Cursor   bool
	Selected bool
	Width    int
	Now      time.Time
}

// ProjectRow renders a single project list row.
func ProjectRow(state ProjectRowState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}

	marker := "  "
	if state.Cursor {
		marker = "> "
	}
	check := "[ ]"
	if state.Selected {
		check = "[x]"
	}

	name := truncate(state.Project.Name, 28)
	line := fmt.Sprintf("%s%s %-28s %-10s %s  %d insights  %s",
		marker, check, name,
		state.Project.Platform.DisplayName(),
		StatusBadge(state.Project.Status.String()),
		state.Project.TotalInsights,
		dimStyle.Render("scraped "+age(state.Project.LastScraped, state.Now)),
	)
	line = truncate(line, width)
	if state.Cursor {
		return cursorStyle.Render(line)
	}
	if state.Selected {
		return selectedStyle.Render(line)
	}
	return line
}

// StatusBar renders the bottom status line: toast when live, otherwise
// the selection summary or a fallback message.
func StatusBar(t *toast.Toast, selected int, fallback string) string {
	if t != nil {
		style, ok := toastStyles[t.Kind]
		if !ok {
			style = toastStyles[toast.KindInfo]
		}
		return style.Render(t.Message)
	}
	if selected > 0 {
		return selectedStyle.Render(fmt.Sprintf("%d selected", selected))
	}
	return dimStyle.Render(fallback)
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	View       string
	SearchMode bool
	Query      string
}

// Footer renders context-sensitive key help.
func Footer(state FooterState) string {
	if state.SearchMode {
		return dimStyle.Render("search: ") + state.Query + dimStyle.Render("  (enter confirm · esc clear)")
	}
	switch state.View {
	case "add":
		return dimStyle.Render("tab next field · ctrl+p platform · ctrl+s scraping · enter submit · esc cancel")
	case "projects":
		return dimStyle.Render("tab views · j/k move · space select · a all · P pause · U resume · n new · / search · q quit")
	default:
		return dimStyle.Render("tab views · j/k move · space select · a all · A/R bulk · l/s/x/g act · / search · q quit")
	}
}

// Empty renders the empty-collection placeholder.
func Empty(what string) string {
	return dimStyle.Render(fmt.Sprintf("No %s match the current filters.", what))
}

// Loading renders the simulated-load skeleton line.
func Loading(spinnerView string) string {
	return spinnerView + " " + dimStyle.Render("Loading dashboard...")
}

// age formats an RFC3339 timestamp as a compact relative age.
func age(ts string, now time.Time) string {
	if ts == "" {
		return "never"
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormField renders one labeled form input line.
func FormField(label, input string, focused bool) string {
	marker := "  "
	style := dimStyle
	if focused {
		marker = "> "
		style = cursorStyle
	}
	return marker + style.Render(fmt.Sprintf("%-12s", label)) + input
}

// FormStatus renders the validation line under the form: a pending
// notice, a failure reason, or nothing.
func FormStatus(pending bool, reason string) string {
	if pending {
		return dimStyle.Render("validating URL...")
	}
	if reason != "" {
		return toastStyles[toast.KindError].Render(reason)
	}
	return ""
}

// Heading renders a bare screen title without an item count.
func Heading(s string) string {
	return titleStyle.Render("beadapp — " + s)
}
