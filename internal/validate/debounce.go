package validate

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window before a scheduled validation fires.
const DefaultDebounce = 500 * time.Millisecond

// Func evaluates a value in the context of a category (e.g. target platform).
type Func func(value, category string) Result

// Scheduler schedules fn after delay and returns a cancel function.
// The default uses time.AfterFunc; tests substitute a manual scheduler.
type Scheduler func(delay time.Duration, fn func()) (cancel func())

func timerScheduler(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// fieldState tracks the validation lifecycle of one logical input field.
type fieldState struct {
	gen     uint64
	pending bool
	result  Result
	cancel  func()
}

// Debouncer schedules delayed validations per field and guarantees that
// only the most recently scheduled validation for a field can report a
// result. Staleness is detected with a generation token captured at
// schedule time and compared at fire time, so a superseded callback is a
// no-op even if timer cancellation races with it.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	validate Func
	schedule Scheduler
	notify   func(field string, r Result)
	fields   map[string]*fieldState
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithScheduler overrides the timer scheduler. Intended for tests.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) { d.schedule = s }
}

// WithNotify registers a callback invoked when a validation resolves.
func WithNotify(fn func(field string, r Result)) Option {
	return func(d *Debouncer) { d.notify = fn }
}

// NewDebouncer creates a Debouncer that runs validate after delay of
// quiescence per field.
func NewDebouncer(delay time.Duration, validate Func, opts ...Option) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	d := &Debouncer{
		delay:    delay,
		validate: validate,
		schedule: timerScheduler,
		fields:   make(map[string]*fieldState),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule records an edit to field and schedules a validation of value
// after the quiescence window. Any validation previously scheduled for
// the same field is superseded. An empty value or category resolves to
// valid immediately without scheduling.
func (d *Debouncer) Schedule(field, value, category string) {
	d.mu.Lock()
	state := d.state(field)
	state.gen++
	if state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}

	if value == "" || category == "" {
		state.pending = false
		state.result = Result{}
		notify := d.notify
		d.mu.Unlock()
		if notify != nil {
			notify(field, Result{})
		}
		return
	}

	gen := state.gen
	state.pending = true
	state.cancel = d.schedule(d.delay, func() {
		d.fire(field, gen, value, category)
	})
	d.mu.Unlock()
}

// Cancel discards any pending validation for field without resolving it.
func (d *Debouncer) Cancel(field string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state := d.state(field)
	state.gen++
	if state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}
	state.pending = false
}

// Pending returns true while a validation is scheduled but unresolved.
func (d *Debouncer) Pending(field string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state(field).pending
}

// Result returns the most recently resolved result for field.
func (d *Debouncer) Result(field string) Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state(field).result
}

// fire resolves a scheduled validation if it is still current.
func (d *Debouncer) fire(field string, gen uint64, value, category string) {
	d.mu.Lock()
	state := d.state(field)
	if state.gen != gen {
		// Superseded by a later edit.
		d.mu.Unlock()
		return
	}
	result := d.validate(value, category)
	state.pending = false
	state.result = result
	state.cancel = nil
	notify := d.notify
	d.mu.Unlock()

	if notify != nil {
		notify(field, result)
	}
}

// state returns the fieldState for field, creating it on first use.
// Callers must hold d.mu.
func (d *Debouncer) state(field string) *fieldState {
	s, ok := d.fields[field]
	if !ok {
		s = &fieldState{}
		d.fields[field] = s
	}
	return s
}
