package validation

import (
	"testing"

	"peelvsu/intake/pkg/forms"
)

func TestPackageLevelValidateField(t *testing.T) {
	// The package-level functions run on the default validator with the
	// real clock; only clock-independent rules are exercised here.
	if got := ValidateField("PR123", forms.FieldOccurrenceNumber, true); got != "" {
		t.Errorf("ValidateField(PR123) = %q, want no error", got)
	}
	if got := ValidateField("", forms.FieldOccurrenceNumber, true); got != DefaultMessages().Required {
		t.Errorf("ValidateField(empty required) = %q, want %q", got, DefaultMessages().Required)
	}

	errs := ValidateConditionalFields(forms.Values{forms.FieldOffenceType: "Other"})
	if errs == nil {
		t.Fatal("ValidateConditionalFields returned nil")
	}
	if errs[forms.FieldOffenceTypeOther] != DefaultMessages().OffenceOtherRequired {
		t.Errorf("conditional = %v", errs)
	}
}

func TestCustomCatalog(t *testing.T) {
	msgs := DefaultMessages()
	msgs.Required = "Ce champ est obligatoire"
	msgs.InvalidPhone = "Le téléphone doit contenir 10 chiffres"
	v := New(&Config{Messages: &msgs})

	if got := v.ValidateField("", forms.FieldOfficerPhone, true); got != "Ce champ est obligatoire" {
		t.Errorf("required = %q", got)
	}
	if got := v.ValidateField("123", forms.FieldOfficerPhone, true); got != "Le téléphone doit contenir 10 chiffres" {
		t.Errorf("invalid phone = %q", got)
	}
}

func TestNewNilConfig(t *testing.T) {
	v := New(nil)
	if v.Messages() != DefaultMessages() {
		t.Error("nil config should select the default catalog")
	}
	if len(v.Rules()) != len(DefaultConditionalRules(DefaultMessages())) {
		t.Error("nil config should select the default rule set")
	}
}
