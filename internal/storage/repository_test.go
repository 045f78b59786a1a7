package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

func newPostRepo(t *testing.T) *PostRepositoryAdapter {
	t.Helper()
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return NewPostRepositoryAdapter(store)
}

func newProjectRepo(t *testing.T) *ProjectRepositoryAdapter {
	t.Helper()
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return NewProjectRepositoryAdapter(store)
}

func TestPostRepositoryAddAndGet(t *testing.T) {
	repo := newPostRepo(t)

	require.NoError(t, repo.Add(samplePost("post-1")))

	got, err := repo.GetByID("post-1")
	require.NoError(t, err)
	assert.Equal(t, "post-1", got.ID)
	assert.Equal(t, 5, got.Likes)
}

func TestPostRepositoryGetMissing(t *testing.T) {
	repo := newPostRepo(t)

	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepositoryUpdate(t *testing.T) {
	repo := newPostRepo(t)
	require.NoError(t, repo.Add(samplePost("post-1")))

	post, err := repo.GetByID("post-1")
	require.NoError(t, err)
	post.Likes++
	post.Status = domain.PostStatusApproved
	require.NoError(t, repo.Update(*post))

	got, err := repo.GetByID("post-1")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Likes)
	assert.Equal(t, domain.PostStatusApproved, got.Status)
}

func TestPostRepositoryUpdateMissing(t *testing.T) {
	repo := newPostRepo(t)

	err := repo.Update(samplePost("ghost"))
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepositoryReplaceAll(t *testing.T) {
	repo := newPostRepo(t)
	require.NoError(t, repo.Add(samplePost("post-1")))

	require.NoError(t, repo.ReplaceAll([]domain.Post{samplePost("post-2"), samplePost("post-3")}))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	_, err = repo.GetByID("post-1")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestProjectRepositoryLifecycle(t *testing.T) {
	repo := newProjectRepo(t)

	require.NoError(t, repo.Add(sampleProject("p1", "techstartup")))
	require.NoError(t, repo.Add(sampleProject("p2", "cryptodao")))

	projects, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	got, err := repo.GetByID("p2")
	require.NoError(t, err)
	got.Status = domain.ProjectStatusPaused
	require.NoError(t, repo.Update(*got))

	updated, err := repo.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPaused, updated.Status)
}

func TestProjectRepositoryMissing(t *testing.T) {
	repo := newProjectRepo(t)

	_, err := repo.GetByID("none")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	err = repo.Update(sampleProject("none", "x"))
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

type failingStore struct{}

func (failingStore) LoadProjects() ([]domain.Project, error)  { return nil, assert.AnError }
func (failingStore) SaveProjects([]domain.Project) error      { return assert.AnError }
func (failingStore) LoadPosts() ([]domain.Post, error)        { return nil, assert.AnError }
func (failingStore) SavePosts([]domain.Post) error            { return assert.AnError }
func (failingStore) Close() error                             { return nil }

func TestRepositoryWrapsStorageErrors(t *testing.T) {
	posts := NewPostRepositoryAdapter(failingStore{})
	_, err := posts.List()
	assert.ErrorIs(t, err, domain.ErrStorageFailed)

	projects := NewProjectRepositoryAdapter(failingStore{})
	err = projects.Add(sampleProject("p1", "x"))
	assert.ErrorIs(t, err, domain.ErrStorageFailed)
}
