// Package validate provides debounced input validation for project forms.
package validate

import (
	"regexp"
	"strings"

	"github.com/ch1m3z13/beadapp/internal/domain"
)

// Result is the outcome of a validation. The zero value means valid.
type Result struct {
	// Reason is a human-readable failure description, empty when valid.
	Reason string
}

// OK returns true if the validation passed.
func (r Result) OK() bool {
	return r.Reason == ""
}

// urlRules maps a platform to the pattern a source URL must satisfy.
var urlRules = map[domain.Platform]*regexp.Regexp{
	domain.PlatformX:         regexp.MustCompile(`^https?://(www\.)?(x\.com|twitter\.com)/\w+/(status|post)/\d+`),
	domain.PlatformFarcaster: regexp.MustCompile(`^https?://(www\.)?warpcast\.com/\w+/0x[a-fA-F0-9]+`),
}

// URL validates a source URL against the rule for the given platform.
// An empty URL or an unset/unknown platform yields a valid result: an
// incomplete field is not yet invalid.
func URL(url, platform string) Result {
	if strings.TrimSpace(url) == "" || platform == "" {
		return Result{}
	}
	p, err := domain.ParsePlatform(platform)
	if err != nil {
		return Result{}
	}
	rule, ok := urlRules[p]
	if !ok || !rule.MatchString(url) {
		return Result{Reason: "Please enter a valid " + p.DisplayName() + " URL"}
	}
	return Result{}
}
