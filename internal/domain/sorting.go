package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PostSortKey specifies the comparator for ordering posts.
type PostSortKey string

const (
	PostSortNewest     PostSortKey = "newest"
	PostSortOldest     PostSortKey = "oldest"
	PostSortMostLiked  PostSortKey = "most-liked"
	PostSortMostShared PostSortKey = "most-shared"
)

// IsValid checks if the post sort key is valid.
func (k PostSortKey) IsValid() bool {
	switch k {
	case PostSortNewest, PostSortOldest, PostSortMostLiked, PostSortMostShared:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort key.
func (k PostSortKey) String() string {
	return string(k)
}

// ProjectSortKey specifies the comparator for ordering projects.
type ProjectSortKey string

const (
	ProjectSortRecent   ProjectSortKey = "recent"
	ProjectSortCreated  ProjectSortKey = "created"
	ProjectSortInsights ProjectSortKey = "insights"
	ProjectSortName     ProjectSortKey = "name"
)

// IsValid checks if the project sort key is valid.
func (k ProjectSortKey) IsValid() bool {
	switch k {
	case ProjectSortRecent, ProjectSortCreated, ProjectSortInsights, ProjectSortName:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort key.
func (k ProjectSortKey) String() string {
	return string(k)
}

// SortPosts sorts posts by the given key.
// Returns a new sorted slice without modifying the original.
// An unknown key falls back to newest-first. The sort is stable: posts
// equal under the key keep their relative input order.
func SortPosts(posts []Post, key PostSortKey) []Post {
	if len(posts) == 0 {
		return posts
	}
	if !key.IsValid() {
		key = PostSortNewest
	}

	sorted := make([]Post, len(posts))
	copy(sorted, posts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return postLess(sorted[i], sorted[j], key)
	})
	return sorted
}

// postLess compares two posts by the given sort key.
// Validate pins timestamps to the RFC3339 UTC "Z" form, so lexical
// comparison is chronological.
func postLess(a, b Post, key PostSortKey) bool {
	switch key {
	case PostSortOldest:
		return a.CreatedAt < b.CreatedAt
	case PostSortMostLiked:
		return a.Likes > b.Likes
	case PostSortMostShared:
		return a.Shares > b.Shares
	default:
		return a.CreatedAt > b.CreatedAt
	}
}

// SortProjects sorts projects by the given key.
// Returns a new sorted slice without modifying the original.
// An unknown key falls back to most-recently-scraped first.
func SortProjects(projects []Project, key ProjectSortKey) []Project {
	if len(projects) == 0 {
		return projects
	}
	if !key.IsValid() {
		key = ProjectSortRecent
	}

	sorted := make([]Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		return projectLess(sorted[i], sorted[j], key)
	})
	return sorted
}

func projectLess(a, b Project, key ProjectSortKey) bool {
	switch key {
	case ProjectSortName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case ProjectSortCreated:
		return a.CreatedAt > b.CreatedAt
	case ProjectSortInsights:
		return a.TotalInsights > b.TotalInsights
	default:
		return a.LastScraped > b.LastScraped
	}
}

// ParsePostSortKey parses a string into a PostSortKey.
func ParsePostSortKey(key string) (PostSortKey, error) {
	k := PostSortKey(key)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid post sort key: %s", key)
	}
	return k, nil
}

// ParseProjectSortKey parses a string into a ProjectSortKey.
func ParseProjectSortKey(key string) (ProjectSortKey, error) {
	k := ProjectSortKey(key)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid project sort key: %s", key)
	}
	return k, nil
}
