// Package mutation applies optimistic post mutations and raises their toasts.
package mutation

import (
	"errors"
	"time"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/logging"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

// RegenerateDelay is how long the simulated regeneration takes before
// reporting success.
const RegenerateDelay = 2 * time.Second

// Kind identifies a post mutation.
type Kind string

const (
	KindLike       Kind = "like"
	KindShare      Kind = "share"
	KindApprove    Kind = "approve"
	KindReject     Kind = "reject"
	KindRegenerate Kind = "regenerate"
)

// IsValid checks if the mutation kind is valid.
func (k Kind) IsValid() bool {
	switch k {
	case KindLike, KindShare, KindApprove, KindReject, KindRegenerate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string to a mutation Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", errors.New("invalid mutation kind: " + s)
	}
	return k, nil
}

// Notifier receives the toast raised by a mutation.
type Notifier interface {
	Show(message string, kind toast.Kind)
}

// Scheduler schedules fn after delay and returns a cancel function.
// It backs the simulated regeneration follow-up.
type Scheduler func(delay time.Duration, fn func()) (cancel func())

func timerScheduler(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Controller applies mutations to posts. State changes are optimistic:
// the in-memory post is updated and the toast raised immediately, and
// persistence failures are logged rather than surfaced.
type Controller struct {
	posts    domain.PostRepository
	notify   Notifier
	logger   logging.Logger
	schedule Scheduler
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler overrides the regeneration timer scheduler. Intended for tests.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a mutation controller over the given repository.
// notify may be nil when no toast surface exists (headless CLI use).
func NewController(posts domain.PostRepository, notify Notifier, opts ...Option) *Controller {
	c := &Controller{
		posts:    posts,
		notify:   notify,
		logger:   logging.GetGlobal(),
		schedule: timerScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply performs the mutation on the post with the given id. A missing
// post is a silent no-op: no error, no toast. Like and share accumulate
// on repeated application; approve and reject converge on their target
// status. Exactly one toast is raised per applied mutation.
func (c *Controller) Apply(postID string, kind Kind) error {
	if !kind.IsValid() {
		return errors.New("invalid mutation kind: " + kind.String())
	}

	if kind == KindRegenerate {
		return c.regenerate(postID)
	}

	post, err := c.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.logger.Debug("mutation target not found", "post_id", postID, "kind", kind.String())
			return nil
		}
		return err
	}

	switch kind {
	case KindLike:
		post.Likes++
	case KindShare:
		post.Shares++
	case KindApprove:
		post.Status = domain.PostStatusApproved
	case KindReject:
		post.Status = domain.PostStatusRejected
	}

	c.showToast(kind)

	if err := c.posts.Update(*post); err != nil {
		c.logger.Warn("failed to persist mutation",
			"post_id", postID, "kind", kind.String(), "error", err)
	}
	return nil
}

// regenerate raises an info toast immediately and a success toast once
// the simulated generation completes.
func (c *Controller) regenerate(postID string) error {
	_, err := c.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.logger.Debug("mutation target not found", "post_id", postID, "kind", "regenerate")
			return nil
		}
		return err
	}

	if c.notify != nil {
		c.notify.Show("Regenerating post with AI...", toast.KindInfo)
		c.schedule(RegenerateDelay, func() {
			c.notify.Show("New post generated successfully!", toast.KindSuccess)
		})
	}
	return nil
}

func (c *Controller) showToast(kind Kind) {
	if c.notify == nil {
		return
	}
	switch kind {
	case KindLike:
		c.notify.Show("Post liked!", toast.KindSuccess)
	case KindShare:
		c.notify.Show("Post shared successfully!", toast.KindSuccess)
	case KindApprove:
		c.notify.Show("Post approved for publishing!", toast.KindSuccess)
	case KindReject:
		c.notify.Show("Post rejected", toast.KindWarning)
	}
}
