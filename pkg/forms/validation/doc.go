// Package validation implements the form field validation and
// conditional-dependency engine for evidence request forms.
//
// # Architecture
//
// The engine has two cooperating components, both pure functions of their
// inputs:
//
//  1. Field Validator - validates one raw string value against the rule for
//     its semantic field kind (occurrence number, officer email, officer
//     phone, locker number, not-future date, free text).
//  2. Conditional Resolver - given a whole form's value mapping, finds fields
//     that are contextually required because a controlling field holds a
//     trigger value, and reports any that are unmet.
//
// UI-facing callers run the field validator per field on change, and run both
// components on submission, merging the results into a single error mapping.
// The engine never aggregates or displays errors itself.
//
// # Contract
//
//	v := validation.New(nil)
//	if msg := v.ValidateField(raw, forms.FieldOfficerEmail, true); msg != "" {
//	    // msg is one of the fixed catalog strings
//	}
//	errs := v.ValidateConditionalFields(values) // never nil
//
// An empty string from ValidateField means the value is valid. Every non-empty
// return is a canonical message from the injected Messages catalog; callers
// and tests may assert exact string identity.
//
// # Invariants
//
//   - Inputs are never mutated and no call can panic, whatever the input.
//   - Leading/trailing whitespace is stripped before any rule runs; a
//     whitespace-only value is treated as empty.
//   - An empty optional value is valid for every field kind.
//   - Unrecognized field names and kinds fail open (valid), prioritizing
//     availability over strict schema enforcement.
//   - Calls are idempotent and safe to run concurrently; the only state a
//     Validator holds is its immutable configuration and clock.
//
// The not-future date rule compares date-only (time of day is ignored)
// against an injectable clock so tests can pin "today".
package validation
