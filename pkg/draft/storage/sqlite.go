package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"peelvsu/intake/pkg/draft"
	"peelvsu/intake/pkg/forms"
)

// SQLiteConfig contains configuration for the SQLite draft backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// SQLiteStorage implements draft.Storage using SQLite. The database runs in
// WAL mode so a draft save never blocks a concurrent list.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger

	saveStmt   *sql.Stmt
	getStmt    *sql.Stmt
	deleteStmt *sql.Stmt
	countStmt  *sql.Stmt
}

// NewSQLiteStorage opens (creating if necessary) the draft database at the
// configured path and prepares the hot-path statements.
func NewSQLiteStorage(config SQLiteConfig) (*SQLiteStorage, error) {
	if config.Path == "" {
		return nil, draft.NewStorageError("sqlite", "open", fmt.Errorf("db path cannot be empty"))
	}
	if config.BusyTimeout == 0 {
		config.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		config.Path, config.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, draft.NewStorageError("sqlite", "open", err)
	}

	s := &SQLiteStorage{
		db:     db,
		logger: slog.Default().With("component", "draft.storage.sqlite"),
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("draft storage initialized", "path", config.Path)
	return s, nil
}

func (s *SQLiteStorage) initialize() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return draft.NewStorageError("sqlite", "create_schema", err)
	}

	var err error
	if s.saveStmt, err = s.db.Prepare(saveDraftSQL); err != nil {
		return draft.NewStorageError("sqlite", "prepare_save", err)
	}
	if s.getStmt, err = s.db.Prepare(getDraftSQL); err != nil {
		return draft.NewStorageError("sqlite", "prepare_get", err)
	}
	if s.deleteStmt, err = s.db.Prepare(deleteDraftSQL); err != nil {
		return draft.NewStorageError("sqlite", "prepare_delete", err)
	}
	if s.countStmt, err = s.db.Prepare(countDraftsSQL); err != nil {
		return draft.NewStorageError("sqlite", "prepare_count", err)
	}

	return nil
}

// Save upserts a draft by ID.
func (s *SQLiteStorage) Save(ctx context.Context, d *draft.Draft) error {
	valuesJSON, err := json.Marshal(d.Values)
	if err != nil {
		return draft.NewStorageError("sqlite", "save", err)
	}

	_, err = s.saveStmt.ExecContext(ctx,
		d.ID, string(d.FormType), string(valuesJSON), d.ContentHash,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return draft.NewStorageError("sqlite", "save", err)
	}
	return nil
}

// Get returns the draft with the given ID, or draft.ErrNotFound.
func (s *SQLiteStorage) Get(ctx context.Context, id string) (*draft.Draft, error) {
	row := s.getStmt.QueryRowContext(ctx, id)

	d, err := scanDraft(row.Scan)
	if err == sql.ErrNoRows {
		return nil, draft.ErrNotFound
	}
	if err != nil {
		return nil, draft.NewStorageError("sqlite", "get", err)
	}
	return d, nil
}

// List returns drafts newest-first, optionally filtered by form type.
func (s *SQLiteStorage) List(ctx context.Context, formType forms.FormType) ([]*draft.Draft, error) {
	query := "SELECT id, form_type, values_json, content_hash, created_at, updated_at FROM drafts"
	var args []any
	if formType != "" {
		query += " WHERE form_type = ?"
		args = append(args, string(formType))
	}
	query += " ORDER BY updated_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, draft.NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	drafts := []*draft.Draft{}
	for rows.Next() {
		d, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, draft.NewStorageError("sqlite", "scan", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, draft.NewStorageError("sqlite", "list", err)
	}

	return drafts, nil
}

// Delete removes a draft by ID.
func (s *SQLiteStorage) Delete(ctx context.Context, id string) error {
	result, err := s.deleteStmt.ExecContext(ctx, id)
	if err != nil {
		return draft.NewStorageError("sqlite", "delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return draft.NewStorageError("sqlite", "delete", err)
	}
	if affected == 0 {
		return draft.ErrNotFound
	}
	return nil
}

// DeleteOlderThan removes drafts last updated before cutoff.
func (s *SQLiteStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM drafts WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, draft.NewStorageError("sqlite", "delete_older_than", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, draft.NewStorageError("sqlite", "delete_older_than", err)
	}
	return count, nil
}

// Count returns the total number of stored drafts.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.countStmt.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, draft.NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// Close releases prepared statements and the database connection.
func (s *SQLiteStorage) Close() error {
	for _, stmt := range []*sql.Stmt{s.saveStmt, s.getStmt, s.deleteStmt, s.countStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	if err := s.db.Close(); err != nil {
		return draft.NewStorageError("sqlite", "close", err)
	}
	return nil
}

// scanDraft scans one drafts row via the supplied Scan function, shared by
// the single-row and multi-row paths.
func scanDraft(scan func(dest ...any) error) (*draft.Draft, error) {
	var d draft.Draft
	var formType, valuesJSON string

	err := scan(&d.ID, &formType, &valuesJSON, &d.ContentHash, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	d.FormType = forms.FormType(formType)
	if err := json.Unmarshal([]byte(valuesJSON), &d.Values); err != nil {
		return nil, err
	}
	return &d, nil
}
