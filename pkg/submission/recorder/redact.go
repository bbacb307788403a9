package recorder

import (
	"strings"

	"peelvsu/intake/pkg/forms"
)

// RedactEmail masks the local part of an email address, keeping the first
// character and the domain so the officer remains identifiable to a records
// clerk without exposing the full address.
//
// Example: "jdunbar@peelpolice.ca" -> "j***@peelpolice.ca"
//
// Returns the input unchanged when it does not look like an email address.
func RedactEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	return email[:1] + "***" + email[at:]
}

// RedactPhone masks all but the last four digits of a phone number.
// Separators are dropped in the output.
//
// Example: "905-555-1234" -> "******1234"
//
// Numbers with four or fewer digits are fully masked.
func RedactPhone(phone string) string {
	var digits []rune
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return phone
	}
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + string(digits[len(digits)-4:])
}

// RedactValues returns a copy of values with officer contact fields masked.
// The original mapping is not modified.
func RedactValues(values forms.Values) forms.Values {
	out := values.Clone()
	if email, ok := out[forms.FieldOfficerEmail]; ok {
		out[forms.FieldOfficerEmail] = RedactEmail(email)
	}
	if phone, ok := out[forms.FieldOfficerPhone]; ok {
		out[forms.FieldOfficerPhone] = RedactPhone(phone)
	}
	return out
}

// TruncateString truncates a string to the specified maximum length.
// If the string is longer than maxLen, it is truncated and "..." is appended.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
