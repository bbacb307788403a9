package validation

import (
	"fmt"
	"testing"
	"time"

	"peelvsu/intake/pkg/forms"
)

// fixedClock pins "today" to 2026-08-15 for deterministic date tests.
func fixedClock() time.Time {
	return time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)
}

func TestValidateFieldRequired(t *testing.T) {
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	allFields := []forms.FieldName{
		forms.FieldOccurrenceNumber,
		forms.FieldOfficerEmail,
		forms.FieldOfficerPhone,
		forms.FieldLockerNumber,
		forms.FieldRecordingDate,
		forms.FieldOfficerName,
		forms.FieldName("someUnknownField"),
	}

	whitespaceValues := []string{"", " ", "\t", "  \n  ", "\t \t"}

	for _, field := range allFields {
		for _, raw := range whitespaceValues {
			t.Run(fmt.Sprintf("%s/%q", field, raw), func(t *testing.T) {
				// Optional empty is valid for every kind.
				if got := v.ValidateField(raw, field, false); got != "" {
					t.Errorf("optional empty: got %q, want no error", got)
				}
				// Required empty reports the required message for every kind.
				if got := v.ValidateField(raw, field, true); got != msgs.Required {
					t.Errorf("required empty: got %q, want %q", got, msgs.Required)
				}
			})
		}
	}
}

func TestValidateOccurrenceNumber(t *testing.T) {
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"uppercase prefix", "PR230001234", ""},
		{"lowercase prefix", "pr123", ""},
		{"mixed case prefix", "Pr1", ""},
		{"single digit", "PR7", ""},
		{"long digit run", "PR99999999999999999999", ""},
		{"surrounding whitespace trimmed", "  PR123  ", ""},
		{"prefix only", "PR", msgs.InvalidOccurrence},
		{"letters after digits", "PR12a", msgs.InvalidOccurrence},
		{"letters instead of digits", "PRabc", msgs.InvalidOccurrence},
		{"separator inside", "PR-123", msgs.InvalidOccurrence},
		{"space inside", "PR 123", msgs.InvalidOccurrence},
		{"missing prefix", "230001234", msgs.InvalidOccurrence},
		{"wrong prefix", "XR123", msgs.InvalidOccurrence},
		{"trailing garbage", "PR123x", msgs.InvalidOccurrence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateField(tt.value, forms.FieldOccurrenceNumber, true)
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateOfficerEmail(t *testing.T) {
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain address", "jsmith@peelpolice.ca", ""},
		{"dotted local part", "j.smith@peelpolice.ca", ""},
		{"digits and plus", "badge1234+video@peelpolice.ca", ""},
		{"uppercase domain", "jsmith@PEELPOLICE.CA", ""},
		{"uppercase local", "JSMITH@peelpolice.ca", ""},
		{"lookalike com domain", "jsmith@peelpolice.com", msgs.InvalidEmail},
		{"subdomain", "jsmith@mail.peelpolice.ca", msgs.InvalidEmail},
		{"missing at", "jsmithpeelpolice.ca", msgs.InvalidEmail},
		{"missing local part", "@peelpolice.ca", msgs.InvalidEmail},
		{"embedded space in local", "j smith@peelpolice.ca", msgs.InvalidEmail},
		{"double at", "j@smith@peelpolice.ca", msgs.InvalidEmail},
		{"other domain", "jsmith@gmail.com", msgs.InvalidEmail},
		{"domain only suffix", "jsmith@notpeelpolice.ca", msgs.InvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateField(tt.value, forms.FieldOfficerEmail, true)
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateOfficerPhone(t *testing.T) {
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bare ten digits", "9051234567", ""},
		{"dashed", "905-123-4567", ""},
		{"dotted", "905.123.4567", ""},
		{"parenthesized", "(905) 123-4567", ""},
		{"spaced", "905 123 4567", ""},
		{"mixed separators", "(905)-123.45 67", ""},
		{"eleven digits with country code", "19051234567", msgs.InvalidPhone},
		{"plus country code", "+1 905 123 4567", msgs.InvalidPhone},
		{"nine digits", "905123456", msgs.InvalidPhone},
		{"no digits", "ext-office", msgs.InvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateField(tt.value, forms.FieldOfficerPhone, true)
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateLockerNumber(t *testing.T) {
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"lower bound", "1", ""},
		{"upper bound", "28", ""},
		{"mid range", "15", ""},
		{"zero", "0", msgs.LockerOutOfRange},
		{"just above upper bound", "29", msgs.LockerOutOfRange},
		{"far out of range", "100", msgs.LockerOutOfRange},
		{"digit run wider than int", "99999999999999999999", msgs.LockerOutOfRange},
		{"decimal", "15.5", msgs.LockerNotNumber},
		{"trailing letter", "12a", msgs.LockerNotNumber},
		{"negative", "-5", msgs.LockerNotNumber},
		{"plain text", "locker", msgs.LockerNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateField(tt.value, forms.FieldLockerNumber, true)
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateRecordingDate(t *testing.T) {
	// Today is pinned to 2026-08-15.
	v := NewWithClock(fixedClock)
	msgs := v.Messages()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"today", "2026-08-15", ""},
		{"yesterday", "2026-08-14", ""},
		{"distant past", "1999-01-01", ""},
		{"tomorrow", "2026-08-16", msgs.FutureDate},
		{"next month", "2026-09-01", msgs.FutureDate},
		{"next year", "2027-08-15", msgs.FutureDate},
		{"rfc3339 today", "2026-08-15T23:59:00Z", ""},
		{"rfc3339 tomorrow", "2026-08-16T00:00:00Z", msgs.FutureDate},
		{"us layout past", "01/02/2026", ""},
		{"unparsable", "not-a-date", msgs.InvalidDate},
		{"partial date", "2026-08", msgs.InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateField(tt.value, forms.FieldRecordingDate, true)
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateDateBoundaryAroundMidnight(t *testing.T) {
	// Time of day must not leak into the comparison: late on the 15th,
	// the 15th is still valid.
	lateClock := func() time.Time {
		return time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC)
	}
	v := NewWithClock(lateClock)

	if got := v.ValidateField("2026-08-15", forms.FieldRecordingDate, true); got != "" {
		t.Errorf("today late in the day: got %q, want no error", got)
	}
	if got := v.ValidateField("2026-08-16", forms.FieldRecordingDate, true); got != v.Messages().FutureDate {
		t.Errorf("tomorrow: got %q, want %q", got, v.Messages().FutureDate)
	}
}

func TestValidateUnknownFieldFailsOpen(t *testing.T) {
	v := NewWithClock(fixedClock)

	// Any non-empty value passes for fields the engine does not recognize.
	for _, value := range []string{"anything", "PRabc", "29", "@@@"} {
		if got := v.ValidateField(value, forms.FieldName("mysteryField"), true); got != "" {
			t.Errorf("unknown field with %q: got %q, want no error", value, got)
		}
	}
}

func TestValidateFieldIdempotent(t *testing.T) {
	v := NewWithClock(fixedClock)

	inputs := []struct {
		value    string
		field    forms.FieldName
		required bool
	}{
		{"PR123", forms.FieldOccurrenceNumber, true},
		{"PRabc", forms.FieldOccurrenceNumber, true},
		{"", forms.FieldOfficerEmail, true},
		{"29", forms.FieldLockerNumber, false},
		{"2026-08-16", forms.FieldRecordingDate, true},
	}

	for _, in := range inputs {
		first := v.ValidateField(in.value, in.field, in.required)
		second := v.ValidateField(in.value, in.field, in.required)
		if first != second {
			t.Errorf("ValidateField(%q, %s, %v) not idempotent: %q then %q",
				in.value, in.field, in.required, first, second)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		field forms.FieldName
		want  forms.FieldKind
	}{
		{forms.FieldOccurrenceNumber, forms.KindOccurrenceNumber},
		{forms.FieldOfficerEmail, forms.KindOfficerEmail},
		{forms.FieldOfficerPhone, forms.KindOfficerPhone},
		{forms.FieldLockerNumber, forms.KindLockerNumber},
		{forms.FieldRecordingDate, forms.KindDateNotFuture},
		{forms.FieldOfficerName, forms.KindFreeText},
		{forms.FieldName("unheardOf"), forms.KindFreeText},
	}

	for _, tt := range tests {
		if got := KindOf(tt.field); got != tt.want {
			t.Errorf("KindOf(%s) = %s, want %s", tt.field, got, tt.want)
		}
	}
}
