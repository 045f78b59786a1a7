// Package domain provides the domain layer for projects and generated posts.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
)

// Post represents a single AI-generated post awaiting moderation.
type Post struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	ProjectName string     `json:"projectName"`
	Content     string     `json:"content"`
	Platform    Platform   `json:"platform"`
	Status      PostStatus `json:"status"`
	CreatedAt   string     `json:"timestamp"`
	ScheduledAt string     `json:"scheduledFor,omitempty"`
	Likes       int        `json:"likes"`
	Shares      int        `json:"shares"`
}

// PostStatus represents the moderation state of a post.
type PostStatus string

const (
	PostStatusPending   PostStatus = "pending"
	PostStatusApproved  PostStatus = "approved"
	PostStatusRejected  PostStatus = "rejected"
	PostStatusScheduled PostStatus = "scheduled"
)

// IsValid checks if the post status is valid.
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected, PostStatusScheduled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s PostStatus) String() string {
	return string(s)
}

// Platform represents the social network a post or project targets.
type Platform string

const (
	PlatformX         Platform = "x"
	PlatformFarcaster Platform = "farcaster"
)

// IsValid checks if the platform is valid.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformX, PlatformFarcaster:
		return true
	default:
		return false
	}
}

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the user-facing platform name.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformX:
		return "X"
	case PlatformFarcaster:
		return "Farcaster"
	default:
		return string(p)
	}
}

// Validate validates the post and returns an error if invalid.
func (p *Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}
	if p.Content == "" {
		return fmt.Errorf("post content cannot be empty")
	}
	if p.CreatedAt == "" {
		return fmt.Errorf("post timestamp cannot be empty")
	}
	if err := validateUTCTimestamp(p.CreatedAt); err != nil {
		return fmt.Errorf("invalid timestamp format: %w", err)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid post status: %s", p.Status)
	}
	if !p.Platform.IsValid() {
		return fmt.Errorf("invalid platform: %s", p.Platform)
	}
	if p.Likes < 0 || p.Shares < 0 {
		return fmt.Errorf("engagement counters cannot be negative")
	}
	return nil
}

// ParsePostStatus parses a string into a PostStatus.
func ParsePostStatus(status string) (PostStatus, error) {
	s := PostStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid post status: %s", status)
	}
	return s, nil
}

// ParsePlatform parses a string into a Platform.
func ParsePlatform(platform string) (Platform, error) {
	p := Platform(platform)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid platform: %s", platform)
	}
	return p, nil
}
