// Package sqlite provides a SQLite-backed store implementation.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	platform         TEXT NOT NULL,
	url              TEXT NOT NULL DEFAULT '',
	tags             TEXT NOT NULL DEFAULT '[]',
	description      TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	scraping_enabled INTEGER NOT NULL DEFAULT 0,
	created_at       TEXT NOT NULL,
	last_scraped     TEXT NOT NULL DEFAULT '',
	total_insights   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS posts (
	id           TEXT PRIMARY KEY,
	project_id   TEXT NOT NULL,
	project_name TEXT NOT NULL DEFAULT '',
	content      TEXT NOT NULL,
	platform     TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	scheduled_at TEXT NOT NULL DEFAULT '',
	likes        INTEGER NOT NULL DEFAULT 0,
	shares       INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_posts_project_id ON posts(project_id);
CREATE INDEX IF NOT EXISTS idx_posts_status ON posts(status);
`

// SQLiteStore implements the storage.Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed store at the provided path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadProjects reads all projects ordered by creation time.
func (s *SQLiteStore) LoadProjects() ([]domain.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, name, platform, url, tags, description, status,
		       scraping_enabled, created_at, last_scraped, total_insights
		FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		var tagsJSON string
		var scraping int
		err := rows.Scan(&p.ID, &p.Name, &p.Platform, &p.URL, &tagsJSON,
			&p.Description, &p.Status, &scraping, &p.CreatedAt,
			&p.LastScraped, &p.TotalInsights)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: scan project: %w", err)
		}
		p.ScrapingEnabled = scraping != 0
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
				return nil, fmt.Errorf("sqlite storage: parse project tags: %w", err)
			}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: iterate projects: %w", err)
	}
	return projects, nil
}

// SaveProjects replaces the whole project collection in one transaction.
func (s *SQLiteStore) SaveProjects(projects []domain.Project) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return fmt.Errorf("sqlite storage: clear projects: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO projects (id, name, platform, url, tags, description,
			status, scraping_enabled, created_at, last_scraped, total_insights)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range projects {
		tagsJSON, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("sqlite storage: encode project tags: %w", err)
		}
		scraping := 0
		if p.ScrapingEnabled {
			scraping = 1
		}
		_, err = stmt.Exec(p.ID, p.Name, p.Platform.String(), p.URL,
			string(tagsJSON), p.Description, p.Status.String(), scraping,
			p.CreatedAt, p.LastScraped, p.TotalInsights)
		if err != nil {
			return fmt.Errorf("sqlite storage: insert project %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit projects: %w", err)
	}
	return nil
}

// LoadPosts reads all posts ordered by creation time.
func (s *SQLiteStore) LoadPosts() ([]domain.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, project_name, content, platform, status,
		       created_at, scheduled_at, likes, shares
		FROM posts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		err := rows.Scan(&p.ID, &p.ProjectID, &p.ProjectName, &p.Content,
			&p.Platform, &p.Status, &p.CreatedAt, &p.ScheduledAt,
			&p.Likes, &p.Shares)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: iterate posts: %w", err)
	}
	return posts, nil
}

// SavePosts replaces the whole post collection in one transaction.
func (s *SQLiteStore) SavePosts(posts []domain.Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM posts"); err != nil {
		return fmt.Errorf("sqlite storage: clear posts: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO posts (id, project_id, project_name, content, platform,
			status, created_at, scheduled_at, likes, shares)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range posts {
		_, err := stmt.Exec(p.ID, p.ProjectID, p.ProjectName, p.Content,
			p.Platform.String(), p.Status.String(), p.CreatedAt,
			p.ScheduledAt, p.Likes, p.Shares)
		if err != nil {
			return fmt.Errorf("sqlite storage: insert post %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit posts: %w", err)
	}
	return nil
}
