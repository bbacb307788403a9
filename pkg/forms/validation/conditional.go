package validation

import (
	"strings"

	"peelvsu/intake/pkg/forms"
)

// Trigger values recognized by the stock conditional rules.
const (
	// TriggerOther marks a select field whose free-text sibling must be
	// filled in.
	TriggerOther = "Other"

	// TriggerLocker marks the video location value that reveals the bag and
	// locker number fields.
	TriggerLocker = "Locker"
)

// ConditionalRule declares one trigger/dependent pair: when the controlling
// field's value equals the trigger string (case-sensitive, exact), the
// dependent field becomes contextually required unless the rule is
// visibility-only. Representing the pairs as data keeps the visibility-only
// exception out of the control flow.
type ConditionalRule struct {
	// Controlling is the field whose value is compared against Trigger.
	Controlling forms.FieldName

	// Trigger is the exact value that activates the rule.
	Trigger string

	// Dependent is the field the rule acts on.
	Dependent forms.FieldName

	// Message is the catalog message reported when the dependent field is
	// empty. Unused for visibility-only rules.
	Message string

	// VisibilityOnly marks rules that only reveal the dependent field in the
	// UI. The resolver never reports an error for such a dependent,
	// whatever its value.
	VisibilityOnly bool
}

// DefaultConditionalRules returns the trigger/dependent pairs of the stock
// form family, with messages drawn from the supplied catalog.
func DefaultConditionalRules(messages Messages) []ConditionalRule {
	return []ConditionalRule{
		{
			Controlling: forms.FieldOffenceType,
			Trigger:     TriggerOther,
			Dependent:   forms.FieldOffenceTypeOther,
			Message:     messages.OffenceOtherRequired,
		},
		{
			Controlling: forms.FieldVideoLocation,
			Trigger:     TriggerOther,
			Dependent:   forms.FieldVideoLocationOther,
			Message:     messages.VideoLocationOtherRequired,
		},
		{
			Controlling: forms.FieldServiceRequired,
			Trigger:     TriggerOther,
			Dependent:   forms.FieldServiceRequiredOther,
			Message:     messages.ServiceOtherRequired,
		},
		// "Locker" reveals the bag and locker fields but requires neither.
		{
			Controlling:    forms.FieldVideoLocation,
			Trigger:        TriggerLocker,
			Dependent:      forms.FieldBagNumber,
			VisibilityOnly: true,
		},
		{
			Controlling:    forms.FieldVideoLocation,
			Trigger:        TriggerLocker,
			Dependent:      forms.FieldLockerNumber,
			VisibilityOnly: true,
		},
	}
}

// ValidateConditionalFields evaluates every conditional rule against the
// supplied value mapping and returns the union of unmet contextual
// requirements. Rules are independent; three simultaneously unmet triggers
// yield three entries. The result is never nil and the input is never
// mutated.
func (v *Validator) ValidateConditionalFields(values forms.Values) forms.Errors {
	errs := forms.Errors{}

	for _, rule := range v.rules {
		if values.Get(rule.Controlling) != rule.Trigger {
			continue
		}
		if rule.VisibilityOnly {
			continue
		}
		if strings.TrimSpace(values.Get(rule.Dependent)) == "" {
			errs[rule.Dependent] = rule.Message
		}
	}

	return errs
}

// Rules returns the rule set the validator was built with. The returned
// slice must not be modified.
func (v *Validator) Rules() []ConditionalRule {
	return v.rules
}

// DependentsFor returns the dependent fields revealed (visibility-only rules)
// or required (validating rules) when the controlling field currently holds a
// matching trigger value. UI layers use this to decide which conditional
// fields to present.
func (v *Validator) DependentsFor(values forms.Values, controlling forms.FieldName) []forms.FieldName {
	var dependents []forms.FieldName
	for _, rule := range v.rules {
		if rule.Controlling != controlling {
			continue
		}
		if values.Get(rule.Controlling) == rule.Trigger {
			dependents = append(dependents, rule.Dependent)
		}
	}
	return dependents
}
