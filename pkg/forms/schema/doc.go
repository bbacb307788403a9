// Package schema defines the field layout of each evidence request form and
// the whole-form validation entry point.
//
// A FormSchema lists the field descriptors (name, kind, label, required) of
// one form type. The three stock forms (Upload, Analysis, Recovery) ship
// built in; YAML schema files can override them so a unit can adjust labels
// or required flags without a rebuild:
//
//	form: upload
//	title: Evidence Upload Request
//	fields:
//	  - name: occurrenceNumber
//	    kind: occurrence_number
//	    label: Occurrence Number
//	    required: true
//
// ValidateForm runs the field validator over every descriptor and unions the
// result with the conditional resolver, producing the single error mapping a
// submission handler needs.
//
// The package also provides a debounced fsnotify watcher for schema
// hot-reload and, when the schema directory is a git work tree, provenance
// stamping (commit SHA, author, time) for submission records.
package schema
