package domain

import (
	"github.com/ch1m3z13/beadapp/internal/search"
)

// FilterAll is the sentinel value meaning "no filter" for categorical criteria.
const FilterAll = "all"

// PostFilter holds filter criteria for generated posts.
// Empty or "all" criteria are vacuously true.
type PostFilter struct {
	ProjectID string
	Status    string
	Platform  string
	Search    string
}

// IsEmpty returns true if the filter has no criteria set.
func (f PostFilter) IsEmpty() bool {
	return isUnset(f.ProjectID) &&
		isUnset(f.Status) &&
		isUnset(f.Platform) &&
		f.Search == ""
}

// ProjectFilter holds filter criteria for projects.
type ProjectFilter struct {
	Status   string
	Platform string
	Search   string
}

// IsEmpty returns true if the filter has no criteria set.
func (f ProjectFilter) IsEmpty() bool {
	return isUnset(f.Status) && isUnset(f.Platform) && f.Search == ""
}

func isUnset(criterion string) bool {
	return criterion == "" || criterion == FilterAll
}

// MatchesFilter checks if the post matches the given filter criteria.
// All set criteria must match (conjunctive).
func (p *Post) MatchesFilter(filter PostFilter) bool {
	if !isUnset(filter.ProjectID) && p.ProjectID != filter.ProjectID {
		return false
	}
	if !isUnset(filter.Status) && p.Status.String() != filter.Status {
		return false
	}
	if !isUnset(filter.Platform) && p.Platform.String() != filter.Platform {
		return false
	}
	if filter.Search != "" && !matcher.Match([]string{p.Content, p.ProjectName}, filter.Search) {
		return false
	}
	return true
}

// MatchesFilter checks if the project matches the given filter criteria.
// The search criterion matches the name, URL, or any tag.
func (p *Project) MatchesFilter(filter ProjectFilter) bool {
	if !isUnset(filter.Status) && p.Status.String() != filter.Status {
		return false
	}
	if !isUnset(filter.Platform) && p.Platform.String() != filter.Platform {
		return false
	}
	if filter.Search != "" {
		fields := append([]string{p.Name, p.URL}, p.Tags...)
		if !matcher.Match(fields, filter.Search) {
			return false
		}
	}
	return true
}

// matcher evaluates the free-text search criterion. Case-insensitive
// substring matching is the default; SetSearchProvider swaps in
// another strategy.
var matcher search.Provider = search.NewSubstringProvider(search.WithCaseInsensitive(true))

// SetSearchProvider replaces the matcher behind the Search criterion.
// A nil provider is ignored.
func SetSearchProvider(p search.Provider) {
	if p != nil {
		matcher = p
	}
}

// FilterPosts filters a slice of posts based on the given filter.
// Returns a new slice containing only matching posts.
func FilterPosts(posts []Post, filter PostFilter) []Post {
	if filter.IsEmpty() {
		return posts
	}
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.MatchesFilter(filter) {
			result = append(result, p)
		}
	}
	return result
}

// FilterProjects filters a slice of projects based on the given filter.
// Returns a new slice containing only matching projects.
func FilterProjects(projects []Project, filter ProjectFilter) []Project {
	if filter.IsEmpty() {
		return projects
	}
	result := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.MatchesFilter(filter) {
			result = append(result, p)
		}
	}
	return result
}
