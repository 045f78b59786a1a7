package search

import "strings"

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens and each token
// must match at least one field (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

// Match returns true if every token matches at least one field.
func (p *TokenProvider) Match(fields []string, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	prepared := fields
	if p.opts.CaseInsensitive {
		prepared = make([]string, len(fields))
		for i, field := range fields {
			prepared[i] = strings.ToLower(field)
		}
	}

	for _, token := range tokens {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		matched := false
		for _, field := range prepared {
			if field != "" && strings.Contains(field, token) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
