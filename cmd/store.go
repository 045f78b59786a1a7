/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/storage"
)

// repositories bundles the stores a command operates on.
type repositories struct {
	store    storage.Store
	projects domain.ProjectRepository
	posts    domain.PostRepository
}

// openRepositories initializes the state directory, opens the configured
// backend and wraps it in repository adapters. Callers must Close.
func openRepositories() (*repositories, error) {
	if err := storage.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, err
	}
	return &repositories{
		store:    store,
		projects: storage.NewProjectRepositoryAdapter(store),
		posts:    storage.NewPostRepositoryAdapter(store),
	}, nil
}

func (r *repositories) Close() {
	_ = r.store.Close()
}
