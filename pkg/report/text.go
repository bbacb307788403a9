package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/submission"
)

// TextExporter renders submission records as printable request summaries,
// one block per record, with field labels taken from the form schemas.
type TextExporter struct {
	schemas schema.Set
}

// NewTextExporter creates a text exporter. A nil schema set falls back to
// the builtin schemas for labels.
func NewTextExporter(schemas schema.Set) *TextExporter {
	if schemas == nil {
		schemas = schema.Builtin()
	}
	return &TextExporter{schemas: schemas}
}

// Export writes submission records to w as human-readable summaries.
func (e *TextExporter) Export(ctx context.Context, records []*submission.SubmissionRecord, w io.Writer) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No submissions found.")
		return err
	}

	for i, record := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return submission.NewExportError("text", len(records), err)
			}
		}
		if err := e.writeRecord(w, record); err != nil {
			return submission.NewExportError("text", len(records), err)
		}
	}

	return nil
}

func (e *TextExporter) writeRecord(w io.Writer, record *submission.SubmissionRecord) error {
	title := strings.ToUpper(string(record.FormType)) + " REQUEST"
	if s, ok := e.schemas[record.FormType]; ok {
		title = s.Title
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-22s %s\n", "Submission ID:", record.ID)
	fmt.Fprintf(&b, "%-22s %s\n", "Occurrence:", record.OccurrenceNumber)
	fmt.Fprintf(&b, "%-22s %s\n", "Submitted:", record.SubmittedAt.Format(time.RFC1123))
	if record.SchemaVersion != nil {
		fmt.Fprintf(&b, "%-22s %s\n", "Schema version:", shortSHA(record.SchemaVersion.CommitSHA))
	}
	fmt.Fprintln(&b, strings.Repeat("-", 60))

	// Walk the schema field order when known; fall back to the canonical
	// column order for unknown form types.
	if s, ok := e.schemas[record.FormType]; ok {
		for _, field := range s.Fields {
			value := record.Values.Get(field.Name)
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "%-22s %s\n", field.Label+":", value)
		}
	} else {
		for _, name := range fieldColumns {
			value := record.Values.Get(name)
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "%-22s %s\n", string(name)+":", value)
		}
	}

	fmt.Fprintln(&b, strings.Repeat("-", 60))
	fmt.Fprintf(&b, "%-22s %s\n", "Content hash:", record.ContentHash)

	_, err := io.WriteString(w, b.String())
	return err
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
