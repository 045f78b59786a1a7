package domain

// EvaluatePostView applies the filter and then the sort key to posts.
// It is a pure function: the input slice is never modified, and calling
// it twice with identical arguments yields identical output.
func EvaluatePostView(posts []Post, filter PostFilter, key PostSortKey) []Post {
	filtered := FilterPosts(posts, filter)
	if len(filtered) == 0 {
		return []Post{}
	}
	return SortPosts(filtered, key)
}

// EvaluateProjectView applies the filter and then the sort key to projects.
func EvaluateProjectView(projects []Project, filter ProjectFilter, key ProjectSortKey) []Project {
	filtered := FilterProjects(projects, filter)
	if len(filtered) == 0 {
		return []Project{}
	}
	return SortProjects(filtered, key)
}

// VisiblePostIDs returns the ids of posts in view order.
func VisiblePostIDs(posts []Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

// VisibleProjectIDs returns the ids of projects in view order.
func VisibleProjectIDs(projects []Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}
