package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

var renderNow = time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)

func TestPostRowShowsContentAndMeta(t *testing.T) {
	out := PostRow(PostRowState{
		Post: domain.Post{
			ID:          "post-1",
			ProjectName: "TechStartup Weekly",
			Content:     "shipping   fast\ntoday",
			Platform:    domain.PlatformX,
			Status:      domain.PostStatusPending,
			CreatedAt:   "2025-11-15T10:00:00Z",
			Likes:       42,
			Shares:      8,
		},
		Width: 100,
		Now:   renderNow,
	})

	assert.Contains(t, out, "shipping fast today")
	assert.Contains(t, out, "TechStartup Weekly")
	assert.Contains(t, out, "♥ 42")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "[ ]")
}

func TestPostRowMarksCursorAndSelection(t *testing.T) {
	state := PostRowState{
		Post: domain.Post{ID: "p", Content: "x", Platform: domain.PlatformX,
			Status: domain.PostStatusPending, CreatedAt: "2025-11-15T10:00:00Z"},
		Cursor:   true,
		Selected: true,
		Width:    80,
		Now:      renderNow,
	}
	out := PostRow(state)
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "[x]")
}

func TestProjectRowTruncatesToWidth(t *testing.T) {
	out := ProjectRow(ProjectRowState{
		Project: domain.Project{
			ID:            "p",
			Name:          strings.Repeat("long-name-", 10),
			Platform:      domain.PlatformFarcaster,
			Status:        domain.ProjectStatusActive,
			LastScraped:   "2025-11-14T12:00:00Z",
			TotalInsights: 45,
		},
		Width: 60,
		Now:   renderNow,
	})
	assert.Contains(t, out, "...")
}

func TestStatusBarPrefersToast(t *testing.T) {
	out := StatusBar(&toast.Toast{Message: "Post liked!", Kind: toast.KindSuccess}, 3, "fallback")
	assert.Contains(t, out, "Post liked!")
	assert.NotContains(t, out, "selected")

	out = StatusBar(nil, 3, "fallback")
	assert.Contains(t, out, "3 selected")

	out = StatusBar(nil, 0, "fallback")
	assert.Contains(t, out, "fallback")
}

func TestFooterModes(t *testing.T) {
	assert.Contains(t, Footer(FooterState{View: "dashboard"}), "A/R bulk")
	assert.Contains(t, Footer(FooterState{View: "projects"}), "P pause")
	assert.Contains(t, Footer(FooterState{SearchMode: true, Query: "defi"}), "defi")
}

func TestAgeFormatting(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want string
	}{
		{name: "minutes", ts: "2025-11-15T11:45:00Z", want: "15m ago"},
		{name: "hours", ts: "2025-11-15T04:00:00Z", want: "8h ago"},
		{name: "days", ts: "2025-11-12T12:00:00Z", want: "3d ago"},
		{name: "just now", ts: "2025-11-15T11:59:50Z", want: "just now"},
		{name: "empty", ts: "", want: "never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, age(tt.ts, renderNow))
		})
	}
}

func TestFilterBarSkipsEmptyParts(t *testing.T) {
	out := FilterBar("status: pending", "", "sort: newest")
	assert.Contains(t, out, "status: pending")
	assert.Contains(t, out, "sort: newest")
}
