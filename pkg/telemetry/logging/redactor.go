package logging

import (
	"regexp"
	"strings"
)

// Pattern is a custom redaction pattern.
type Pattern struct {
	// Name identifies the pattern.
	Name string

	// Regex is the regular expression to match.
	Regex string

	// Replacement is the substitution string.
	Replacement string
}

// Redactor redacts personally identifiable information from log fields.
type Redactor struct {
	patterns map[string]*redactPattern
}

type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Built-in PII pattern names.
const (
	PatternOccurrence = "occurrence_number"
	PatternEmail      = "email"
	PatternPhone      = "phone"
	PatternBadge      = "badge"
)

// NewRedactor creates a Redactor with the built-in patterns plus any custom
// patterns. Custom patterns with invalid regexes are skipped.
func NewRedactor(customPatterns []Pattern) *Redactor {
	r := &Redactor{
		patterns: make(map[string]*redactPattern),
	}
	r.addDefaultPatterns()

	for _, p := range customPatterns {
		regex, err := regexp.Compile(p.Regex)
		if err != nil {
			continue
		}
		r.patterns[p.Name] = &redactPattern{
			name:        p.Name,
			regex:       regex,
			replacement: p.Replacement,
		}
	}

	return r
}

// addDefaultPatterns adds the built-in PII redaction patterns.
func (r *Redactor) addDefaultPatterns() {
	patterns := map[string]struct {
		regex       string
		replacement string
	}{
		// Occurrence numbers: keep the PR prefix, mask the digits.
		PatternOccurrence: {
			regex:       `(?i)\bPR[0-9]+\b`,
			replacement: "PR***",
		},

		// Email addresses: keep the domain.
		PatternEmail: {
			regex:       `[a-zA-Z0-9._%+-]+@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
			replacement: "***@$1",
		},

		// Phone numbers.
		PatternPhone: {
			regex:       `\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`,
			replacement: "***-***-****",
		},

		// Badge references like "badge 4821".
		PatternBadge: {
			regex:       `(?i)\b(badge)[ #:]+\d+\b`,
			replacement: "$1 ***",
		},
	}

	for name, p := range patterns {
		r.patterns[name] = &redactPattern{
			name:        name,
			regex:       regexp.MustCompile(p.regex),
			replacement: p.replacement,
		}
	}
}

// RedactString redacts PII from a string value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}
	redacted := value
	for _, pattern := range r.patterns {
		redacted = pattern.regex.ReplaceAllString(redacted, pattern.replacement)
	}
	return redacted
}

// isSensitiveKey checks if a key name indicates a value that must be fully
// masked regardless of its content.
func (r *Redactor) isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	sensitiveKeys := []string{
		"officer_email", "officer_phone",
		"badge", "password", "secret", "token",
	}
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}
