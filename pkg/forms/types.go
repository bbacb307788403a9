package forms

// FormType identifies one of the evidence request form families.
type FormType string

const (
	// FormUpload is the evidence upload request form.
	FormUpload FormType = "upload"
	// FormAnalysis is the video analysis request form.
	FormAnalysis FormType = "analysis"
	// FormRecovery is the scene recovery request form.
	FormRecovery FormType = "recovery"
)

// ValidFormTypes contains the recognized form types.
var ValidFormTypes = map[FormType]bool{
	FormUpload:   true,
	FormAnalysis: true,
	FormRecovery: true,
}

// FieldName is the stable identifier of a form field. The constants below are
// the closed enumeration used across all three form types; they double as the
// wire keys in drafts, submissions and values files.
type FieldName string

const (
	FieldOccurrenceNumber     FieldName = "occurrenceNumber"
	FieldOfficerName          FieldName = "officerName"
	FieldOfficerBadge         FieldName = "officerBadge"
	FieldOfficerEmail         FieldName = "officerEmail"
	FieldOfficerPhone         FieldName = "officerPhone"
	FieldOffenceType          FieldName = "offenceType"
	FieldOffenceTypeOther     FieldName = "offenceTypeOther"
	FieldRecordingDate        FieldName = "recordingDate"
	FieldVideoLocation        FieldName = "videoLocation"
	FieldVideoLocationOther   FieldName = "videoLocationOther"
	FieldBagNumber            FieldName = "bagNumber"
	FieldLockerNumber         FieldName = "lockerNumber"
	FieldServiceRequired      FieldName = "serviceRequired"
	FieldServiceRequiredOther FieldName = "serviceRequiredOther"
	FieldSceneAddress         FieldName = "sceneAddress"
	FieldNotes                FieldName = "notes"
)

// FieldKind is the semantic kind of a field. It selects the validation rule
// applied to a non-empty value; the required/optional decision is independent
// of the kind.
type FieldKind string

const (
	// KindFreeText applies no format rule beyond the required check.
	KindFreeText FieldKind = "text"
	// KindOccurrenceNumber is a PR-prefixed occurrence number (e.g. PR230001234).
	KindOccurrenceNumber FieldKind = "occurrence_number"
	// KindOfficerEmail is a peelpolice.ca email address.
	KindOfficerEmail FieldKind = "officer_email"
	// KindOfficerPhone is a 10-digit phone number with arbitrary separators.
	KindOfficerPhone FieldKind = "officer_phone"
	// KindLockerNumber is an evidence locker number in the range 1-28.
	KindLockerNumber FieldKind = "locker_number"
	// KindDateNotFuture is a calendar date that must not be after today.
	KindDateNotFuture FieldKind = "date_not_future"
)

// ValidFieldKinds contains the recognized field kinds.
var ValidFieldKinds = map[FieldKind]bool{
	KindFreeText:         true,
	KindOccurrenceNumber: true,
	KindOfficerEmail:     true,
	KindOfficerPhone:     true,
	KindLockerNumber:     true,
	KindDateNotFuture:    true,
}

// FieldDescriptor describes a single field of a form schema. Descriptors are
// immutable once a schema is built.
type FieldDescriptor struct {
	// Name is the stable field identifier.
	Name FieldName `yaml:"name"`

	// Kind selects the validation rule for non-empty values.
	Kind FieldKind `yaml:"kind"`

	// Label is the human-readable field label used in reports.
	Label string `yaml:"label"`

	// Required marks the field as mandatory regardless of other values.
	// Contextually required fields (trigger/dependent pairs) are handled by
	// the conditional resolver instead.
	Required bool `yaml:"required"`
}

// Values maps field names to their current raw string values. A nil Values is
// treated as an empty form.
type Values map[FieldName]string

// Get returns the raw value for name, or "" when the field is absent or the
// mapping is nil.
func (v Values) Get(name FieldName) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Clone returns a shallow copy so callers can mutate the result without
// affecting the original mapping.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps field names to human-readable validation messages. Absence of a
// key means the field is valid.
type Errors map[FieldName]string

// OK reports whether the mapping contains no errors.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Merge unions other into e, returning e for chaining. Later entries win on
// key collision; callers own the merge order.
func (e Errors) Merge(other Errors) Errors {
	for k, msg := range other {
		e[k] = msg
	}
	return e
}
