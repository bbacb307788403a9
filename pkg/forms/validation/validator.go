package validation

import (
	"time"

	"peelvsu/intake/pkg/forms"
)

// Config contains configuration for a Validator. The zero value of each
// field selects the stock behavior.
type Config struct {
	// Messages is the error message catalog. Defaults to DefaultMessages().
	Messages *Messages

	// Rules is the conditional trigger/dependent rule set. Defaults to
	// DefaultConditionalRules(messages).
	Rules []ConditionalRule

	// Now supplies the current time for the not-future date rule.
	// Defaults to time.Now.
	Now func() time.Time
}

// Validator is the validation engine. It is immutable after construction and
// safe for concurrent use; every method is a pure function of its arguments
// and the configuration.
type Validator struct {
	messages Messages
	rules    []ConditionalRule
	now      func() time.Time
}

// New creates a Validator. A nil config selects the default catalog, the
// default conditional rules and the real clock.
func New(config *Config) *Validator {
	if config == nil {
		config = &Config{}
	}

	messages := DefaultMessages()
	if config.Messages != nil {
		messages = *config.Messages
	}

	rules := config.Rules
	if rules == nil {
		rules = DefaultConditionalRules(messages)
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Validator{
		messages: messages,
		rules:    rules,
		now:      now,
	}
}

// NewWithClock creates a Validator with the default configuration and a
// pinned clock. Intended for deterministic date-rule tests.
func NewWithClock(now func() time.Time) *Validator {
	return New(&Config{Now: now})
}

// Messages returns the catalog the validator was built with.
func (v *Validator) Messages() Messages {
	return v.messages
}

// defaultValidator backs the package-level convenience functions.
var defaultValidator = New(nil)

// ValidateField validates raw for the named field using the default
// validator (default catalog, real clock). Returns "" when valid.
func ValidateField(raw string, field forms.FieldName, required bool) string {
	return defaultValidator.ValidateField(raw, field, required)
}

// ValidateConditionalFields resolves the default conditional rules against
// values using the default validator. The result is never nil.
func ValidateConditionalFields(values forms.Values) forms.Errors {
	return defaultValidator.ValidateConditionalFields(values)
}
