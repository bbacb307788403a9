package schema

import (
	"fmt"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/validation"
)

// FormSchema describes the field layout of one form type. Schemas are
// immutable once built; reloading replaces the whole Set.
type FormSchema struct {
	// Type is the form family this schema describes.
	Type forms.FormType `yaml:"form"`

	// Title is the human-readable form title used in reports.
	Title string `yaml:"title"`

	// Fields lists the field descriptors in presentation order.
	Fields []forms.FieldDescriptor `yaml:"fields"`
}

// Field returns the descriptor for name and whether it exists.
func (s *FormSchema) Field(name forms.FieldName) (forms.FieldDescriptor, bool) {
	for _, fd := range s.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return forms.FieldDescriptor{}, false
}

// Set maps form types to their schemas.
type Set map[forms.FormType]*FormSchema

// Get returns the schema for a form type, or an error naming the valid types.
func (s Set) Get(formType forms.FormType) (*FormSchema, error) {
	schema, ok := s[formType]
	if !ok {
		return nil, fmt.Errorf("unknown form type %q (valid: upload, analysis, recovery)", formType)
	}
	return schema, nil
}

// LintIssue is one problem found in a schema definition.
type LintIssue struct {
	// Field is the offending field name, empty for schema-level issues.
	Field forms.FieldName

	// Message describes the problem.
	Message string
}

func (i LintIssue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Lint checks a schema definition and returns every problem found. An empty
// result means the schema is well formed.
func Lint(s *FormSchema) []LintIssue {
	var issues []LintIssue

	if !forms.ValidFormTypes[s.Type] {
		issues = append(issues, LintIssue{
			Message: fmt.Sprintf("unknown form type %q", s.Type),
		})
	}
	if len(s.Fields) == 0 {
		issues = append(issues, LintIssue{Message: "schema has no fields"})
	}

	seen := make(map[forms.FieldName]bool, len(s.Fields))
	for _, fd := range s.Fields {
		if fd.Name == "" {
			issues = append(issues, LintIssue{Message: "field with empty name"})
			continue
		}
		if seen[fd.Name] {
			issues = append(issues, LintIssue{Field: fd.Name, Message: "duplicate field"})
		}
		seen[fd.Name] = true

		if fd.Kind != "" && !forms.ValidFieldKinds[fd.Kind] {
			issues = append(issues, LintIssue{
				Field:   fd.Name,
				Message: fmt.Sprintf("unknown field kind %q", fd.Kind),
			})
		}
	}

	return issues
}

// ValidateForm validates every field of the form against its descriptor and
// resolves the conditional rules, returning the union as a single error
// mapping. Fields present in values but absent from the schema are ignored
// (fail open). The result is never nil.
func ValidateForm(v *validation.Validator, s *FormSchema, values forms.Values) forms.Errors {
	errs := forms.Errors{}

	for _, fd := range s.Fields {
		kind := fd.Kind
		if kind == "" {
			kind = validation.KindOf(fd.Name)
		}
		if msg := v.ValidateKind(values.Get(fd.Name), kind, fd.Required); msg != "" {
			errs[fd.Name] = msg
		}
	}

	// Conditional requirements win over per-field results for the same
	// dependent; in practice the two never disagree because dependents are
	// optional at the field level.
	return errs.Merge(v.ValidateConditionalFields(values))
}
