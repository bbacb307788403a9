package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"peelvsu/intake/pkg/draft"
	"peelvsu/intake/pkg/forms"
)

func newSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "drafts.db"),
	})
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func backends(t *testing.T) map[string]draft.Storage {
	return map[string]draft.Storage{
		"sqlite": newSQLite(t),
		"memory": NewMemoryStorage(),
	}
}

func sampleDraft(formType forms.FormType) *draft.Draft {
	return draft.New(formType, forms.Values{
		forms.FieldOccurrenceNumber: "PR240001",
		forms.FieldOfficerName:      "J. Dunbar",
	})
}

func TestSaveAndGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			d := sampleDraft(forms.FormUpload)

			if err := store.Save(ctx, d); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := store.Get(ctx, d.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.ID != d.ID {
				t.Errorf("ID = %q, want %q", got.ID, d.ID)
			}
			if got.FormType != forms.FormUpload {
				t.Errorf("FormType = %q, want %q", got.FormType, forms.FormUpload)
			}
			if got.Values.Get(forms.FieldOccurrenceNumber) != "PR240001" {
				t.Errorf("occurrence number = %q, want PR240001", got.Values.Get(forms.FieldOccurrenceNumber))
			}
			if got.ContentHash != d.ContentHash {
				t.Errorf("ContentHash = %q, want %q", got.ContentHash, d.ContentHash)
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "no-such-id")
			if !errors.Is(err, draft.ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSaveUpsert(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			d := sampleDraft(forms.FormUpload)
			if err := store.Save(ctx, d); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			d.Values[forms.FieldOfficerBadge] = "4821"
			d.Touch(d.Values)
			if err := store.Save(ctx, d); err != nil {
				t.Fatalf("Save() update error = %v", err)
			}

			count, err := store.Count(ctx)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if count != 1 {
				t.Errorf("Count() = %d, want 1", count)
			}

			got, err := store.Get(ctx, d.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.Values.Get(forms.FieldOfficerBadge) != "4821" {
				t.Errorf("badge = %q, want 4821", got.Values.Get(forms.FieldOfficerBadge))
			}
		})
	}
}

func TestListNewestFirstAndFilter(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			older := sampleDraft(forms.FormUpload)
			older.CreatedAt = time.Now().Add(-2 * time.Hour)
			older.UpdatedAt = older.CreatedAt

			newer := sampleDraft(forms.FormAnalysis)
			newer.CreatedAt = time.Now().Add(-time.Minute)
			newer.UpdatedAt = newer.CreatedAt

			for _, d := range []*draft.Draft{older, newer} {
				if err := store.Save(ctx, d); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
			}

			all, err := store.List(ctx, "")
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(all) != 2 {
				t.Fatalf("List() returned %d drafts, want 2", len(all))
			}
			if all[0].ID != newer.ID {
				t.Errorf("List()[0].ID = %q, want newest draft %q", all[0].ID, newer.ID)
			}

			uploads, err := store.List(ctx, forms.FormUpload)
			if err != nil {
				t.Fatalf("List(upload) error = %v", err)
			}
			if len(uploads) != 1 || uploads[0].ID != older.ID {
				t.Errorf("List(upload) = %d drafts, want just %q", len(uploads), older.ID)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			d := sampleDraft(forms.FormRecovery)
			if err := store.Save(ctx, d); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			if err := store.Delete(ctx, d.ID); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := store.Get(ctx, d.ID); !errors.Is(err, draft.ErrNotFound) {
				t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
			}
			if err := store.Delete(ctx, d.ID); !errors.Is(err, draft.ErrNotFound) {
				t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestDeleteOlderThan(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			stale := sampleDraft(forms.FormUpload)
			stale.UpdatedAt = time.Now().Add(-72 * time.Hour)
			fresh := sampleDraft(forms.FormUpload)

			for _, d := range []*draft.Draft{stale, fresh} {
				if err := store.Save(ctx, d); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
			}

			deleted, err := store.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
			if err != nil {
				t.Fatalf("DeleteOlderThan() error = %v", err)
			}
			if deleted != 1 {
				t.Errorf("DeleteOlderThan() = %d, want 1", deleted)
			}
			if _, err := store.Get(ctx, fresh.ID); err != nil {
				t.Errorf("fresh draft was deleted: %v", err)
			}
		})
	}
}

func TestMemoryCopyIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	d := sampleDraft(forms.FormUpload)
	if err := store.Save(ctx, d); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the caller's copy must not affect the stored draft.
	d.Values[forms.FieldOfficerName] = "changed"

	got, err := store.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Values.Get(forms.FieldOfficerName) != "J. Dunbar" {
		t.Errorf("stored draft mutated through caller reference")
	}

	// Mutating a returned copy must not affect the store either.
	got.Values[forms.FieldOfficerName] = "also changed"
	again, err := store.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.Values.Get(forms.FieldOfficerName) != "J. Dunbar" {
		t.Errorf("stored draft mutated through returned copy")
	}
}

func TestSQLiteEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage(SQLiteConfig{})
	if err == nil {
		t.Fatal("NewSQLiteStorage() with empty path should fail")
	}
	var storageErr *draft.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("error type = %T, want *draft.StorageError", err)
	}
}

func TestSQLitePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")
	ctx := context.Background()

	first, err := NewSQLiteStorage(SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	d := sampleDraft(forms.FormAnalysis)
	if err := first.Save(ctx, d); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := NewSQLiteStorage(SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.FormType != forms.FormAnalysis {
		t.Errorf("FormType = %q, want %q", got.FormType, forms.FormAnalysis)
	}
}
