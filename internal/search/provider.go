// Package search provides a pluggable matcher for free-text queries.
// It supports multiple strategies (substring, token, regex) through a
// common Provider interface, so the dashboard search field and the CLI
// --search flag share one implementation.
package search

import "strings"

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, token,
// regex) to match a set of field values against a query.
type Provider interface {
	// Match returns true if any of the fields matches the query.
	// An empty query matches everything.
	Match(fields []string, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, searches ignore case sensitivity
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewProvider creates the provider registered under the given name.
// Unknown names fall back to substring matching.
func NewProvider(name string, opts ...Option) Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "token":
		return NewTokenProvider(opts...)
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}
