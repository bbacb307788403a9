package validation

// Messages is the canonical error message catalog. The strings are the
// external contract of the engine: callers toggle invalid-state markers on
// message presence and render the text verbatim, and tests assert exact
// equality. The catalog is injected into a Validator at construction and
// never mutated afterwards.
type Messages struct {
	// Required is reported for an empty mandatory field of any kind.
	Required string

	// InvalidOccurrence is reported for occurrence numbers that are not a
	// PR prefix followed by digits.
	InvalidOccurrence string

	// InvalidEmail is reported for addresses outside the peelpolice.ca domain
	// or with a malformed local part.
	InvalidEmail string

	// InvalidPhone is reported when the digit count is not exactly 10.
	InvalidPhone string

	// LockerNotNumber is reported for locker values that are not a plain
	// whole number.
	LockerNotNumber string

	// LockerOutOfRange is reported for whole-number locker values outside
	// 1-28. The text names both bounds.
	LockerOutOfRange string

	// FutureDate is reported for recording dates strictly after today.
	FutureDate string

	// InvalidDate is reported for recording dates that cannot be parsed.
	InvalidDate string

	// OffenceOtherRequired is reported when offenceType is "Other" and
	// offenceTypeOther is empty.
	OffenceOtherRequired string

	// VideoLocationOtherRequired is reported when videoLocation is "Other"
	// and videoLocationOther is empty.
	VideoLocationOtherRequired string

	// ServiceOtherRequired is reported when serviceRequired is "Other" and
	// serviceRequiredOther is empty.
	ServiceOtherRequired string
}

// DefaultMessages returns the canonical catalog used by the stock forms.
func DefaultMessages() Messages {
	return Messages{
		Required:                   "This field is required",
		InvalidOccurrence:          "Occurrence number must be PR followed by digits",
		InvalidEmail:               "Email must be a valid peelpolice.ca address",
		InvalidPhone:               "Phone number must contain exactly 10 digits",
		LockerNotNumber:            "Locker number must be a whole number",
		LockerOutOfRange:           "Locker number must be between 1 and 28",
		FutureDate:                 "Recording date cannot be in the future",
		InvalidDate:                "Recording date is not a valid date",
		OffenceOtherRequired:       "Please specify the offence type",
		VideoLocationOtherRequired: "Please specify the video location",
		ServiceOtherRequired:       "Please specify the service required",
	}
}
