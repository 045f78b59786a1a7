// Package storage provides the persistence backends for beadapp.
package storage

import "github.com/ch1m3z13/beadapp/internal/domain"

// Store defines collection-level persistence for projects and posts.
// Collections are loaded and saved whole; row-level semantics live in
// the repository adapters on top.
type Store interface {
	LoadProjects() ([]domain.Project, error)
	SaveProjects(projects []domain.Project) error
	LoadPosts() ([]domain.Post, error)
	SavePosts(posts []domain.Post) error
	Close() error
}
