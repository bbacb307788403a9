package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/submission"
)

func newSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(&SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "submissions.db"),
		WALMode:     true,
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func backends(t *testing.T) map[string]submission.Storage {
	return map[string]submission.Storage{
		"sqlite": newSQLite(t),
		"memory": NewMemoryStorage(),
	}
}

func sampleRecord(formType forms.FormType, occurrence string, submittedAt time.Time) *submission.SubmissionRecord {
	return &submission.SubmissionRecord{
		ID:               uuid.New().String(),
		FormType:         formType,
		OccurrenceNumber: occurrence,
		SubmittedAt:      submittedAt,
		RecordedAt:       submittedAt,
		Values: forms.Values{
			forms.FieldOccurrenceNumber: occurrence,
			forms.FieldOfficerName:      "J. Dunbar",
		},
		ContentHash: "deadbeef",
		FieldCount:  2,
	}
}

func TestStoreAndGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			record := sampleRecord(forms.FormUpload, "PR240001", time.Now())
			record.DraftID = uuid.New().String()
			record.SchemaVersion = &schema.VersionInfo{
				CommitSHA: "abc123",
				Branch:    "main",
				Author:    "records@peelpolice.ca",
			}

			if err := store.Store(ctx, record); err != nil {
				t.Fatalf("Store() error = %v", err)
			}

			got, err := store.Get(ctx, record.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.OccurrenceNumber != "PR240001" {
				t.Errorf("OccurrenceNumber = %q, want PR240001", got.OccurrenceNumber)
			}
			if got.DraftID != record.DraftID {
				t.Errorf("DraftID = %q, want %q", got.DraftID, record.DraftID)
			}
			if got.SchemaVersion == nil || got.SchemaVersion.CommitSHA != "abc123" {
				t.Errorf("SchemaVersion = %+v, want commit abc123", got.SchemaVersion)
			}
			if got.Values.Get(forms.FieldOfficerName) != "J. Dunbar" {
				t.Errorf("officer name = %q, want J. Dunbar", got.Values.Get(forms.FieldOfficerName))
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "no-such-id")
			if !errors.Is(err, submission.ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestQueryFilters(t *testing.T) {
	now := time.Now()
	seed := []*submission.SubmissionRecord{
		sampleRecord(forms.FormUpload, "PR240001", now.Add(-48*time.Hour)),
		sampleRecord(forms.FormAnalysis, "PR240002", now.Add(-24*time.Hour)),
		sampleRecord(forms.FormUpload, "PR240003", now.Add(-time.Hour)),
	}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, record := range seed {
				if err := store.Store(ctx, record); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			tests := []struct {
				name  string
				query *submission.Query
				want  int
			}{
				{
					name:  "no filters",
					query: &submission.Query{},
					want:  3,
				},
				{
					name:  "by form type",
					query: &submission.Query{FormType: forms.FormUpload},
					want:  2,
				},
				{
					name:  "by occurrence number",
					query: &submission.Query{OccurrenceNumber: "PR240002"},
					want:  1,
				},
				{
					name: "by time range",
					query: &submission.Query{
						StartTime: timePtr(now.Add(-36 * time.Hour)),
					},
					want: 2,
				},
				{
					name:  "with limit",
					query: &submission.Query{Limit: 1},
					want:  1,
				},
				{
					name:  "no matches",
					query: &submission.Query{OccurrenceNumber: "PR999999"},
					want:  0,
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					records, err := store.Query(ctx, tt.query)
					if err != nil {
						t.Fatalf("Query() error = %v", err)
					}
					if len(records) != tt.want {
						t.Errorf("Query() returned %d records, want %d", len(records), tt.want)
					}

					count, err := store.Count(ctx, tt.query)
					if err != nil {
						t.Fatalf("Count() error = %v", err)
					}
					// Count ignores pagination; limit-bound cases differ.
					if tt.query.Limit == 0 && count != int64(tt.want) {
						t.Errorf("Count() = %d, want %d", count, tt.want)
					}
				})
			}
		})
	}
}

func TestQuerySortOrder(t *testing.T) {
	now := time.Now()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := sampleRecord(forms.FormUpload, "PR240001", now.Add(-2*time.Hour))
			second := sampleRecord(forms.FormUpload, "PR240002", now.Add(-time.Hour))
			for _, record := range []*submission.SubmissionRecord{first, second} {
				if err := store.Store(ctx, record); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			desc, err := store.Query(ctx, &submission.Query{})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if desc[0].OccurrenceNumber != "PR240002" {
				t.Errorf("default order first record = %q, want newest PR240002", desc[0].OccurrenceNumber)
			}

			asc, err := store.Query(ctx, &submission.Query{SortOrder: "asc"})
			if err != nil {
				t.Fatalf("Query(asc) error = %v", err)
			}
			if asc[0].OccurrenceNumber != "PR240001" {
				t.Errorf("asc order first record = %q, want oldest PR240001", asc[0].OccurrenceNumber)
			}
		})
	}
}

func TestDeleteByAge(t *testing.T) {
	now := time.Now()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			old := sampleRecord(forms.FormUpload, "PR240001", now.Add(-100*24*time.Hour))
			recent := sampleRecord(forms.FormUpload, "PR240002", now)
			for _, record := range []*submission.SubmissionRecord{old, recent} {
				if err := store.Store(ctx, record); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			cutoff := now.Add(-90 * 24 * time.Hour)
			deleted, err := store.Delete(ctx, &submission.Query{EndTime: &cutoff})
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if deleted != 1 {
				t.Errorf("Delete() = %d, want 1", deleted)
			}
			if _, err := store.Get(ctx, recent.ID); err != nil {
				t.Errorf("recent record was deleted: %v", err)
			}
		})
	}
}

func TestSQLitePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.db")
	ctx := context.Background()

	first, err := NewSQLiteStorage(&SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	record := sampleRecord(forms.FormRecovery, "PR240099", time.Now())
	if err := first.Store(ctx, record); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := NewSQLiteStorage(&SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.FormType != forms.FormRecovery {
		t.Errorf("FormType = %q, want recovery", got.FormType)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
