package storage

import (
	"fmt"
	"sync"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

// ProjectRepositoryAdapter implements domain.ProjectRepository by
// wrapping a Store and converting collection-level persistence into
// row-level operations.
type ProjectRepositoryAdapter struct {
	mu    sync.Mutex
	store Store
}

// NewProjectRepositoryAdapter creates a project repository over the store.
func NewProjectRepositoryAdapter(store Store) *ProjectRepositoryAdapter {
	return &ProjectRepositoryAdapter{store: store}
}

// List retrieves all projects as a snapshot.
func (a *ProjectRepositoryAdapter) List() ([]domain.Project, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	projects, err := a.store.LoadProjects()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return projects, nil
}

// GetByID retrieves a project by its ID.
func (a *ProjectRepositoryAdapter) GetByID(id string) (*domain.Project, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	projects, err := a.store.LoadProjects()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// Add stores a new project.
func (a *ProjectRepositoryAdapter) Add(project domain.Project) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	projects, err := a.store.LoadProjects()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	projects = append(projects, project)
	if err := a.store.SaveProjects(projects); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// Update replaces a stored project with the same ID.
func (a *ProjectRepositoryAdapter) Update(project domain.Project) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	projects, err := a.store.LoadProjects()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			if err := a.store.SaveProjects(projects); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
			}
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

// ReplaceAll overwrites the whole collection.
func (a *ProjectRepositoryAdapter) ReplaceAll(projects []domain.Project) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.SaveProjects(projects); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// PostRepositoryAdapter implements domain.PostRepository by wrapping a
// Store and converting collection-level persistence into row-level
// operations.
type PostRepositoryAdapter struct {
	mu    sync.Mutex
	store Store
}

// NewPostRepositoryAdapter creates a post repository over the store.
func NewPostRepositoryAdapter(store Store) *PostRepositoryAdapter {
	return &PostRepositoryAdapter{store: store}
}

// List retrieves all posts as a snapshot.
func (a *PostRepositoryAdapter) List() ([]domain.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	posts, err := a.store.LoadPosts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return posts, nil
}

// GetByID retrieves a post by its ID.
func (a *PostRepositoryAdapter) GetByID(id string) (*domain.Post, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	posts, err := a.store.LoadPosts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	for i := range posts {
		if posts[i].ID == id {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// Add stores a new post.
func (a *PostRepositoryAdapter) Add(post domain.Post) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	posts, err := a.store.LoadPosts()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	posts = append(posts, post)
	if err := a.store.SavePosts(posts); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// Update replaces a stored post with the same ID.
func (a *PostRepositoryAdapter) Update(post domain.Post) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	posts, err := a.store.LoadPosts()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			if err := a.store.SavePosts(posts); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
			}
			return nil
		}
	}
	return domain.ErrPostNotFound
}

// ReplaceAll overwrites the whole collection.
func (a *PostRepositoryAdapter) ReplaceAll(posts []domain.Post) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.SavePosts(posts); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}
