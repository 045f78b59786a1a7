package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

const (
	projectsJSONFileName = "projects.json"
	postsJSONFileName    = "posts.json"
)

// JSONStore persists projects and posts as JSON files in the state
// directory. Writes go through a temp file rename and a directory lock
// so concurrent beadapp invocations cannot interleave partial writes.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a JSON store rooted at the given directory.
func NewJSONStore(dir string) (*JSONStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("json storage: directory cannot be empty")
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("json storage: create directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// LoadProjects reads the project collection. A missing file is an empty
// collection, not an error.
func (s *JSONStore) LoadProjects() ([]domain.Project, error) {
	var projects []domain.Project
	if err := s.loadFile(projectsJSONFileName, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// SaveProjects writes the whole project collection.
func (s *JSONStore) SaveProjects(projects []domain.Project) error {
	return s.saveFile(projectsJSONFileName, projects)
}

// LoadPosts reads the post collection. A missing file is an empty
// collection, not an error.
func (s *JSONStore) LoadPosts() ([]domain.Post, error) {
	var posts []domain.Post
	if err := s.loadFile(postsJSONFileName, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// SavePosts writes the whole post collection.
func (s *JSONStore) SavePosts(posts []domain.Post) error {
	return s.saveFile(postsJSONFileName, posts)
}

// Close is a no-op for file-backed storage.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) loadFile(name string, out any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("json storage: read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("json storage: parse %s: %w", name, err)
	}
	return nil
}

func (s *JSONStore) saveFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json storage: encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	lockDir := path + ".lock"
	return WithLock(lockDir, func() error {
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, data, FileModeFile); err != nil {
			return fmt.Errorf("json storage: write %s: %w", name, err)
		}
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("json storage: replace %s: %w", name, err)
		}
		return nil
	})
}
