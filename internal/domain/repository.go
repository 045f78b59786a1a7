package domain

import (
	"errors"
)

var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")

	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrStorageFailed is returned when a storage operation fails.
	ErrStorageFailed = errors.New("storage operation failed")
)

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	// List retrieves all posts as a snapshot.
	List() ([]Post, error)

	// GetByID retrieves a post by its ID.
	GetByID(id string) (*Post, error)

	// Add stores a new post.
	Add(post Post) error

	// Update replaces a stored post with the same ID.
	Update(post Post) error

	// ReplaceAll overwrites the whole collection.
	ReplaceAll(posts []Post) error
}

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	// List retrieves all projects as a snapshot.
	List() ([]Project, error)

	// GetByID retrieves a project by its ID.
	GetByID(id string) (*Project, error)

	// Add stores a new project.
	Add(project Project) error

	// Update replaces a stored project with the same ID.
	Update(project Project) error

	// ReplaceAll overwrites the whole collection.
	ReplaceAll(projects []Project) error
}

// PostService provides business logic for generated posts.
type PostService struct {
	repo PostRepository
}

// NewPostService creates a new post service.
func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

// List retrieves posts matching the given filter in sort-key order.
func (s *PostService) List(filter PostFilter, key PostSortKey) ([]Post, error) {
	posts, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return EvaluatePostView(posts, filter, key), nil
}

// GetByID retrieves a post by its ID.
func (s *PostService) GetByID(id string) (*Post, error) {
	return s.repo.GetByID(id)
}

// Update replaces a stored post.
func (s *PostService) Update(post Post) error {
	return s.repo.Update(post)
}

// ProjectService provides business logic for projects.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List retrieves projects matching the given filter in sort-key order.
func (s *ProjectService) List(filter ProjectFilter, key ProjectSortKey) ([]Project, error) {
	projects, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return EvaluateProjectView(projects, filter, key), nil
}

// GetByID retrieves a project by its ID.
func (s *ProjectService) GetByID(id string) (*Project, error) {
	return s.repo.GetByID(id)
}

// Add validates and stores a new project.
func (s *ProjectService) Add(project Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return s.repo.Add(project)
}
