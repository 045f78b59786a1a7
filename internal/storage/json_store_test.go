package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

func sampleProject(id, name string) domain.Project {
	return domain.Project{
		ID:              id,
		Name:            name,
		Platform:        domain.PlatformX,
		URL:             "https://x.com/" + name,
		Tags:            []string{"tech", "ai"},
		Status:          domain.ProjectStatusActive,
		ScrapingEnabled: true,
		CreatedAt:       "2025-10-01T08:00:00Z",
		LastScraped:     "2025-11-15T02:45:00Z",
		TotalInsights:   127,
	}
}

func samplePost(id string) domain.Post {
	return domain.Post{
		ID:          id,
		ProjectID:   "proj-1",
		ProjectName: "TechStartup X",
		Content:     "Launching a new feature today",
		Platform:    domain.PlatformX,
		Status:      domain.PostStatusPending,
		CreatedAt:   "2025-11-15T10:00:00Z",
		Likes:       5,
		Shares:      2,
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	projects := []domain.Project{sampleProject("p1", "techstartup"), sampleProject("p2", "cryptodao")}
	require.NoError(t, store.SaveProjects(projects))

	got, err := store.LoadProjects()
	require.NoError(t, err)
	assert.Equal(t, projects, got)

	posts := []domain.Post{samplePost("post-1")}
	require.NoError(t, store.SavePosts(posts))

	gotPosts, err := store.LoadPosts()
	require.NoError(t, err)
	assert.Equal(t, posts, gotPosts)
}

func TestJSONStoreMissingFilesAreEmptyCollections(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	projects, err := store.LoadProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)

	posts, err := store.LoadPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestJSONStoreCorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, projectsJSONFileName), []byte("{not json"), 0644))

	_, err = store.LoadProjects()
	assert.Error(t, err)
}

func TestJSONStoreUsesWireFieldNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SavePosts([]domain.Post{samplePost("post-1")}))

	data, err := os.ReadFile(filepath.Join(dir, postsJSONFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projectId"`)
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestJSONStoreEmptyDirFails(t *testing.T) {
	_, err := NewJSONStore("")
	assert.Error(t, err)
}

func TestJSONStoreSaveOverwrites(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveProjects([]domain.Project{sampleProject("p1", "a"), sampleProject("p2", "b")}))
	require.NoError(t, store.SaveProjects([]domain.Project{sampleProject("p3", "c")}))

	got, err := store.LoadProjects()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}
