package submission

import (
	"context"
	"io"
	"time"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
)

// SubmissionRecord is the permanent audit record for one submitted intake
// form. Once stored a record is never updated.
type SubmissionRecord struct {
	// Identity
	ID      string `json:"id"`                 // UUID v4
	DraftID string `json:"draft_id,omitempty"` // Draft this submission finalized, if any

	// Classification
	FormType         forms.FormType `json:"form_type"`
	OccurrenceNumber string         `json:"occurrence_number"` // Normalized to upper case

	// Timestamps
	SubmittedAt time.Time `json:"submitted_at"` // When the officer submitted
	RecordedAt  time.Time `json:"recorded_at"`  // When the record hit storage

	// Content
	Values      forms.Values `json:"values"`       // Field values, contact details redacted
	ContentHash string       `json:"content_hash"` // SHA-256 of the unredacted values
	FieldCount  int          `json:"field_count"`  // Non-empty fields at submit time

	// Provenance
	SchemaVersion *schema.VersionInfo `json:"schema_version,omitempty"` // Schema git version, if under version control
}

// Query defines filter parameters for querying submission records.
type Query struct {
	// Time range on SubmittedAt, both inclusive.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Filters
	FormType         forms.FormType `json:"form_type,omitempty"`
	OccurrenceNumber string         `json:"occurrence_number,omitempty"` // Case-insensitive exact match

	// Pagination
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// SortOrder is "asc" or "desc" on SubmittedAt. Default: "desc".
	SortOrder string `json:"sort_order,omitempty"`
}

// Storage defines the interface for submission storage backends.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Store persists a submission record.
	Store(ctx context.Context, record *SubmissionRecord) error

	// Get retrieves a single record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*SubmissionRecord, error)

	// Query retrieves records matching the query filters.
	// Returns an empty slice if no records match.
	Query(ctx context.Context, query *Query) ([]*SubmissionRecord, error)

	// Count returns the number of records matching the query filters.
	Count(ctx context.Context, query *Query) (int64, error)

	// Delete removes records matching the query filters.
	// Returns the number of records deleted.
	Delete(ctx context.Context, query *Query) (int64, error)

	// Close releases any resources held by the storage backend.
	Close() error
}

// Exporter writes submission records to a destination in a specific format.
type Exporter interface {
	// Export writes records to w in the exporter's format.
	Export(ctx context.Context, records []*SubmissionRecord, w io.Writer) error
}
