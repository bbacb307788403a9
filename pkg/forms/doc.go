// Package forms defines the domain model for evidence request intake forms:
// the three form types (Upload, Analysis, Recovery), the closed enumeration
// of field names, the semantic field kinds used for validation dispatch, and
// the value/error mappings exchanged between the UI-facing callers and the
// validation engine.
//
// # Data Model
//
// A form is captured as a Values mapping from stable field name to raw string
// value. Values are built fresh from user input or from a previously saved
// draft and have no lifecycle of their own. Validation produces an Errors
// mapping from field name to a human-readable message; absence of a key means
// the field is currently valid.
//
// Field names are a closed enumeration. The names are the stable wire keys
// used in drafts, submissions and values files, so they must never be renamed
// once released.
//
// # Tolerant Input Boundary
//
// Raw values can arrive from hand-written YAML or JSON files. LoadValues
// tolerates any scalar type: numbers and booleans are stringified, explicit
// nulls degrade to the empty string. Downstream validation treats empty and
// whitespace-only values identically, so malformed input can never panic the
// engine.
package forms
