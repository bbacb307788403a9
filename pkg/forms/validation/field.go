package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"peelvsu/intake/pkg/forms"
)

const (
	// LockerMin and LockerMax are the inclusive bounds of valid evidence
	// locker numbers.
	LockerMin = 1
	LockerMax = 28

	// EmailDomain is the only accepted email domain. Subdomains and
	// lookalike domains are rejected.
	EmailDomain = "peelpolice.ca"
)

var (
	// occurrenceRe matches a case-insensitive literal PR prefix followed by
	// one or more ASCII digits and nothing else.
	occurrenceRe = regexp.MustCompile(`(?i)^pr[0-9]+$`)

	// emailLocalRe matches a syntactically sane, already-lowercased local
	// part. Spaces and @ are excluded by construction.
	emailLocalRe = regexp.MustCompile(`^[a-z0-9._%+-]+$`)

	// digitsRe matches a plain unsigned whole number.
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// dateLayouts are the accepted recording date formats, tried in order.
// The first is what a date form control produces.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// fieldKinds maps each known field name to its semantic kind. Names absent
// from this map are treated as free text, so validation fails open for
// fields the engine does not recognize.
var fieldKinds = map[forms.FieldName]forms.FieldKind{
	forms.FieldOccurrenceNumber: forms.KindOccurrenceNumber,
	forms.FieldOfficerEmail:     forms.KindOfficerEmail,
	forms.FieldOfficerPhone:     forms.KindOfficerPhone,
	forms.FieldLockerNumber:     forms.KindLockerNumber,
	forms.FieldRecordingDate:    forms.KindDateNotFuture,
}

// KindOf returns the semantic kind for a field name, defaulting to free text
// for unrecognized names.
func KindOf(field forms.FieldName) forms.FieldKind {
	if kind, ok := fieldKinds[field]; ok {
		return kind
	}
	return forms.KindFreeText
}

// ValidateField validates a single raw value for the named field. It trims
// surrounding whitespace, applies the required check, then dispatches on the
// field's kind. Returns "" when the value is valid, otherwise one of the
// catalog messages.
func (v *Validator) ValidateField(raw string, field forms.FieldName, required bool) string {
	return v.ValidateKind(raw, KindOf(field), required)
}

// ValidateKind is ValidateField with an explicit kind, used by schema-driven
// callers whose descriptors carry the kind directly.
func (v *Validator) ValidateKind(raw string, kind forms.FieldKind, required bool) string {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		if required {
			return v.messages.Required
		}
		return ""
	}

	switch kind {
	case forms.KindOccurrenceNumber:
		return v.validateOccurrence(trimmed)
	case forms.KindOfficerEmail:
		return v.validateEmail(trimmed)
	case forms.KindOfficerPhone:
		return v.validatePhone(trimmed)
	case forms.KindLockerNumber:
		return v.validateLocker(trimmed)
	case forms.KindDateNotFuture:
		return v.validateDateNotFuture(trimmed)
	default:
		// Free text and unknown kinds always pass once non-empty.
		return ""
	}
}

func (v *Validator) validateOccurrence(value string) string {
	if !occurrenceRe.MatchString(value) {
		return v.messages.InvalidOccurrence
	}
	return ""
}

// validateEmail accepts local@peelpolice.ca, case-insensitively on the whole
// string. mail.peelpolice.ca and peelpolice.com are not peelpolice.ca.
func (v *Validator) validateEmail(value string) string {
	lower := strings.ToLower(value)

	at := strings.IndexByte(lower, '@')
	if at <= 0 || at != strings.LastIndexByte(lower, '@') {
		return v.messages.InvalidEmail
	}

	local, domain := lower[:at], lower[at+1:]
	if domain != EmailDomain {
		return v.messages.InvalidEmail
	}
	if !emailLocalRe.MatchString(local) {
		return v.messages.InvalidEmail
	}

	return ""
}

// validatePhone strips every non-digit character and requires exactly 10
// remaining digits. Separators of any kind are accepted; an 11-digit number
// with a country code is not.
func (v *Validator) validatePhone(value string) string {
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits != 10 {
		return v.messages.InvalidPhone
	}
	return ""
}

func (v *Validator) validateLocker(value string) string {
	if !digitsRe.MatchString(value) {
		return v.messages.LockerNotNumber
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		// Digit run too long for an int; out of range either way.
		return v.messages.LockerOutOfRange
	}
	if n < LockerMin || n > LockerMax {
		return v.messages.LockerOutOfRange
	}

	return ""
}

// validateDateNotFuture parses value as a calendar date and rejects dates
// strictly after today. The comparison is date-only; time of day never
// matters. Unparsable input is rejected, never panicked on.
func (v *Validator) validateDateNotFuture(value string) string {
	parsed, ok := parseDate(value)
	if !ok {
		return v.messages.InvalidDate
	}

	if dateOrdinal(parsed) > dateOrdinal(v.now()) {
		return v.messages.FutureDate
	}

	return ""
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOrdinal collapses a time to a comparable yyyymmdd integer in its own
// location, discarding the time of day.
func dateOrdinal(t time.Time) int {
	year, month, day := t.Date()
	return year*10000 + int(month)*100 + day
}
