package search

import (
	"regexp"
	"sync"
)

// RegexProvider provides regex-based search.
// Matches if any field matches the query compiled as a regular
// expression. An invalid pattern matches nothing.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if any field matches the regex pattern.
func (p *RegexProvider) Match(fields []string, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.getRegex(query)
	if err != nil {
		return false
	}
	for _, field := range fields {
		if field != "" && re.MatchString(field) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}

// getRegex returns the compiled pattern for query, compiling and
// caching it on first use.
func (p *RegexProvider) getRegex(query string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[query]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	pattern := query
	if p.opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[query] = re
	p.cacheMu.Unlock()
	return re, nil
}
