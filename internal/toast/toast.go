// Package toast provides the transient notification slot for the dashboard.
package toast

import (
	"sync"
	"time"
)

// DefaultDuration is how long a toast stays visible before auto-dismiss.
const DefaultDuration = 3 * time.Second

// Kind represents the severity of a toast message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// IsValid checks if the toast kind is valid.
func (k Kind) IsValid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Toast is a transient message with a severity kind.
type Toast struct {
	Message string
	Kind    Kind
}

// Scheduler schedules fn after delay and returns a cancel function.
type Scheduler func(delay time.Duration, fn func()) (cancel func())

func timerScheduler(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Queue holds at most one live toast. Show replaces the current toast
// and restarts the auto-dismiss timer; there is no backlog, last write
// wins. A generation counter ties each dismiss timer to the toast that
// armed it, so a stale timer can never hide a newer toast.
type Queue struct {
	mu       sync.Mutex
	current  *Toast
	gen      uint64
	duration time.Duration
	schedule Scheduler
	cancel   func()
	onChange func(t *Toast)
}

// Option configures a Queue.
type Option func(*Queue)

// WithScheduler overrides the dismiss timer scheduler. Intended for tests.
func WithScheduler(s Scheduler) Option {
	return func(q *Queue) { q.schedule = s }
}

// WithOnChange registers a callback invoked whenever the visible toast
// changes, with nil meaning hidden.
func WithOnChange(fn func(t *Toast)) Option {
	return func(q *Queue) { q.onChange = fn }
}

// NewQueue creates a toast queue with the given auto-dismiss duration.
func NewQueue(duration time.Duration, opts ...Option) *Queue {
	if duration <= 0 {
		duration = DefaultDuration
	}
	q := &Queue{
		duration: duration,
		schedule: timerScheduler,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Show displays a toast, replacing any current one immediately and
// resetting the auto-dismiss timer.
func (q *Queue) Show(message string, kind Kind) {
	if !kind.IsValid() {
		kind = KindInfo
	}
	q.mu.Lock()
	q.gen++
	gen := q.gen
	if q.cancel != nil {
		q.cancel()
	}
	t := &Toast{Message: message, Kind: kind}
	q.current = t
	q.cancel = q.schedule(q.duration, func() {
		q.expire(gen)
	})
	onChange := q.onChange
	q.mu.Unlock()

	if onChange != nil {
		onChange(t)
	}
}

// Hide dismisses the current toast. Hiding an already-hidden toast is a no-op.
func (q *Queue) Hide() {
	q.mu.Lock()
	if q.current == nil {
		q.mu.Unlock()
		return
	}
	q.gen++
	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
	}
	q.current = nil
	onChange := q.onChange
	q.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}

// Current returns the visible toast, or nil when hidden.
func (q *Queue) Current() *Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Generation returns the current toast generation. External timers (such
// as TUI ticks) capture it at show time and pass it to ExpireGeneration.
func (q *Queue) Generation() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.gen
}

// ExpireGeneration hides the toast if gen is still the live generation.
// Stale generations are ignored.
func (q *Queue) ExpireGeneration(gen uint64) {
	q.expire(gen)
}

func (q *Queue) expire(gen uint64) {
	q.mu.Lock()
	if q.gen != gen || q.current == nil {
		// Replaced or already hidden since this timer was armed.
		q.mu.Unlock()
		return
	}
	q.current = nil
	q.cancel = nil
	onChange := q.onChange
	q.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}
