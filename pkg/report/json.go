package report

import (
	"context"
	"encoding/json"
	"io"

	"peelvsu/intake/pkg/submission"
)

// JSONExporter exports submission records to JSON format.
type JSONExporter struct {
	// Pretty enables pretty-printing with indentation.
	Pretty bool
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(pretty bool) *JSONExporter {
	return &JSONExporter{
		Pretty: pretty,
	}
}

// Export writes submission records to w as a JSON array. A single record is
// written as a bare object.
func (e *JSONExporter) Export(ctx context.Context, records []*submission.SubmissionRecord, w io.Writer) error {
	if len(records) == 0 {
		_, err := w.Write([]byte("[]"))
		return err
	}

	var data []byte
	var err error

	if len(records) == 1 {
		if e.Pretty {
			data, err = json.MarshalIndent(records[0], "", "  ")
		} else {
			data, err = json.Marshal(records[0])
		}
	} else {
		if e.Pretty {
			data, err = json.MarshalIndent(records, "", "  ")
		} else {
			data, err = json.Marshal(records)
		}
	}

	if err != nil {
		return submission.NewExportError("json", len(records), err)
	}

	if _, err := w.Write(data); err != nil {
		return submission.NewExportError("json", len(records), err)
	}

	return nil
}
