package schema

import "peelvsu/intake/pkg/forms"

// Builtin returns the stock schema set for the three evidence request forms.
// The returned Set is freshly allocated on each call so callers can overlay
// file-based schemas without affecting other users.
func Builtin() Set {
	return Set{
		forms.FormUpload:   builtinUpload(),
		forms.FormAnalysis: builtinAnalysis(),
		forms.FormRecovery: builtinRecovery(),
	}
}

func builtinUpload() *FormSchema {
	return &FormSchema{
		Type:  forms.FormUpload,
		Title: "Evidence Upload Request",
		Fields: []forms.FieldDescriptor{
			{Name: forms.FieldOccurrenceNumber, Kind: forms.KindOccurrenceNumber, Label: "Occurrence Number", Required: true},
			{Name: forms.FieldOfficerName, Kind: forms.KindFreeText, Label: "Officer Name", Required: true},
			{Name: forms.FieldOfficerBadge, Kind: forms.KindFreeText, Label: "Badge Number", Required: true},
			{Name: forms.FieldOfficerEmail, Kind: forms.KindOfficerEmail, Label: "Officer Email", Required: true},
			{Name: forms.FieldOfficerPhone, Kind: forms.KindOfficerPhone, Label: "Officer Phone", Required: true},
			{Name: forms.FieldOffenceType, Kind: forms.KindFreeText, Label: "Offence Type", Required: true},
			{Name: forms.FieldOffenceTypeOther, Kind: forms.KindFreeText, Label: "Other Offence Type"},
			{Name: forms.FieldRecordingDate, Kind: forms.KindDateNotFuture, Label: "Recording Date", Required: true},
			{Name: forms.FieldVideoLocation, Kind: forms.KindFreeText, Label: "Video Location", Required: true},
			{Name: forms.FieldVideoLocationOther, Kind: forms.KindFreeText, Label: "Other Video Location"},
			{Name: forms.FieldBagNumber, Kind: forms.KindFreeText, Label: "Bag Number"},
			{Name: forms.FieldLockerNumber, Kind: forms.KindLockerNumber, Label: "Locker Number"},
			{Name: forms.FieldNotes, Kind: forms.KindFreeText, Label: "Notes"},
		},
	}
}

func builtinAnalysis() *FormSchema {
	return &FormSchema{
		Type:  forms.FormAnalysis,
		Title: "Video Analysis Request",
		Fields: []forms.FieldDescriptor{
			{Name: forms.FieldOccurrenceNumber, Kind: forms.KindOccurrenceNumber, Label: "Occurrence Number", Required: true},
			{Name: forms.FieldOfficerName, Kind: forms.KindFreeText, Label: "Officer Name", Required: true},
			{Name: forms.FieldOfficerBadge, Kind: forms.KindFreeText, Label: "Badge Number", Required: true},
			{Name: forms.FieldOfficerEmail, Kind: forms.KindOfficerEmail, Label: "Officer Email", Required: true},
			{Name: forms.FieldOfficerPhone, Kind: forms.KindOfficerPhone, Label: "Officer Phone", Required: true},
			{Name: forms.FieldOffenceType, Kind: forms.KindFreeText, Label: "Offence Type", Required: true},
			{Name: forms.FieldOffenceTypeOther, Kind: forms.KindFreeText, Label: "Other Offence Type"},
			{Name: forms.FieldServiceRequired, Kind: forms.KindFreeText, Label: "Service Required", Required: true},
			{Name: forms.FieldServiceRequiredOther, Kind: forms.KindFreeText, Label: "Other Service Required"},
			{Name: forms.FieldNotes, Kind: forms.KindFreeText, Label: "Analysis Details"},
		},
	}
}

func builtinRecovery() *FormSchema {
	return &FormSchema{
		Type:  forms.FormRecovery,
		Title: "Scene Recovery Request",
		Fields: []forms.FieldDescriptor{
			{Name: forms.FieldOccurrenceNumber, Kind: forms.KindOccurrenceNumber, Label: "Occurrence Number", Required: true},
			{Name: forms.FieldOfficerName, Kind: forms.KindFreeText, Label: "Officer Name", Required: true},
			{Name: forms.FieldOfficerBadge, Kind: forms.KindFreeText, Label: "Badge Number", Required: true},
			{Name: forms.FieldOfficerEmail, Kind: forms.KindOfficerEmail, Label: "Officer Email", Required: true},
			{Name: forms.FieldOfficerPhone, Kind: forms.KindOfficerPhone, Label: "Officer Phone", Required: true},
			{Name: forms.FieldOffenceType, Kind: forms.KindFreeText, Label: "Offence Type", Required: true},
			{Name: forms.FieldOffenceTypeOther, Kind: forms.KindFreeText, Label: "Other Offence Type"},
			{Name: forms.FieldRecordingDate, Kind: forms.KindDateNotFuture, Label: "Recording Date", Required: true},
			{Name: forms.FieldSceneAddress, Kind: forms.KindFreeText, Label: "Scene Address", Required: true},
			{Name: forms.FieldNotes, Kind: forms.KindFreeText, Label: "Recovery Notes"},
		},
	}
}
