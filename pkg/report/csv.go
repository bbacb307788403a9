package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/submission"
)

// CSVExporter exports submission records to CSV format.
type CSVExporter struct {
	// IncludeHeader includes a header row with column names.
	IncludeHeader bool
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(includeHeader bool) *CSVExporter {
	return &CSVExporter{
		IncludeHeader: includeHeader,
	}
}

// fieldColumns is the fixed order of form value columns, so a spreadsheet
// of mixed form types still lines up.
var fieldColumns = []forms.FieldName{
	forms.FieldOccurrenceNumber,
	forms.FieldOfficerName,
	forms.FieldOfficerBadge,
	forms.FieldOfficerEmail,
	forms.FieldOfficerPhone,
	forms.FieldOffenceType,
	forms.FieldOffenceTypeOther,
	forms.FieldRecordingDate,
	forms.FieldVideoLocation,
	forms.FieldVideoLocationOther,
	forms.FieldBagNumber,
	forms.FieldLockerNumber,
	forms.FieldServiceRequired,
	forms.FieldServiceRequiredOther,
	forms.FieldSceneAddress,
	forms.FieldNotes,
}

// Export writes submission records to w in CSV format. Form values are
// flattened into one column per known field.
func (e *CSVExporter) Export(ctx context.Context, records []*submission.SubmissionRecord, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		if err := writer.Write(e.headerRow()); err != nil {
			return submission.NewExportError("csv", len(records), err)
		}
	}

	for _, record := range records {
		if err := writer.Write(e.recordToRow(record)); err != nil {
			return submission.NewExportError("csv", len(records), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return submission.NewExportError("csv", len(records), err)
	}

	return nil
}

func (e *CSVExporter) headerRow() []string {
	header := []string{
		"id", "form_type", "occurrence_number",
		"submitted_at", "recorded_at",
		"content_hash", "field_count", "schema_commit",
	}
	for _, name := range fieldColumns {
		header = append(header, string(name))
	}
	return header
}

func (e *CSVExporter) recordToRow(record *submission.SubmissionRecord) []string {
	formatTime := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}

	schemaCommit := ""
	if record.SchemaVersion != nil {
		schemaCommit = record.SchemaVersion.CommitSHA
	}

	row := []string{
		record.ID,
		string(record.FormType),
		record.OccurrenceNumber,
		formatTime(record.SubmittedAt),
		formatTime(record.RecordedAt),
		record.ContentHash,
		fmt.Sprintf("%d", record.FieldCount),
		schemaCommit,
	}
	for _, name := range fieldColumns {
		row = append(row, record.Values.Get(name))
	}
	return row
}
