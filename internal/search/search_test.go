package search

import "testing"

var sampleFields = []string{"Excited about Go tooling", "TechStartup Weekly", "golang"}

func TestSubstringProvider(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		caseInsensitive bool
		want            bool
	}{
		{"empty query matches", "", false, true},
		{"whitespace query matches", "   ", false, true},
		{"exact substring", "tooling", false, true},
		{"case mismatch without fold", "TOOLING", false, false},
		{"case mismatch with fold", "TOOLING", true, true},
		{"matches second field", "Weekly", false, true},
		{"no match", "kubernetes", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSubstringProvider(WithCaseInsensitive(tt.caseInsensitive))
			if got := p.Match(sampleFields, tt.query); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestTokenProviderAllTokensMustMatch(t *testing.T) {
	p := NewTokenProvider(WithCaseInsensitive(true))

	if !p.Match(sampleFields, "go weekly") {
		t.Error("Expected match when every token hits some field")
	}
	if p.Match(sampleFields, "go kubernetes") {
		t.Error("Expected no match when one token misses")
	}
	if !p.Match(sampleFields, "") {
		t.Error("Expected empty query to match")
	}
}

func TestRegexProvider(t *testing.T) {
	p := NewRegexProvider(WithCaseInsensitive(true))

	if !p.Match(sampleFields, "^tech.*weekly$") {
		t.Error("Expected anchored pattern to match project name")
	}
	if p.Match(sampleFields, "^weekly$") {
		t.Error("Expected anchored pattern not to match mid-field")
	}
	if p.Match(sampleFields, "(unclosed") {
		t.Error("Expected invalid pattern to match nothing")
	}
	if !p.Match(sampleFields, "") {
		t.Error("Expected empty query to match")
	}
}

func TestRegexProviderCachesCompiledPatterns(t *testing.T) {
	p := NewRegexProvider().(*RegexProvider)

	p.Match(sampleFields, "go+")
	p.Match(sampleFields, "go+")
	if len(p.cache) != 1 {
		t.Errorf("Expected 1 cached pattern, got %d", len(p.cache))
	}
}

func TestNewProviderSelection(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"substring", "substring"},
		{"token", "token"},
		{"regex", "regex"},
		{"  Token ", "token"},
		{"", "substring"},
		{"unknown", "substring"},
	}

	for _, tt := range tests {
		t.Run("name "+tt.name, func(t *testing.T) {
			if got := NewProvider(tt.name).Name(); got != tt.want {
				t.Errorf("NewProvider(%q).Name() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
