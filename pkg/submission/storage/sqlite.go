package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/submission"
)

// SQLiteConfig contains configuration for the SQLite submission backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections to the database.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/submissions.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStorage implements submission.Storage using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStorage creates a new SQLite submission backend. It initializes
// the database schema and enables WAL mode if configured.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "submission.storage.sqlite")

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, submission.NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("submission storage initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize sets up the database schema and enables WAL mode.
func (s *SQLiteStorage) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return submission.NewStorageError("sqlite", "enable_wal", err)
		}
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return submission.NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return submission.NewStorageError("sqlite", "create_schema", err)
	}

	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return submission.NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(GetSchemaVersion).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return submission.NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return submission.NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Store persists a submission record.
func (s *SQLiteStorage) Store(ctx context.Context, record *submission.SubmissionRecord) error {
	valuesJSON, err := json.Marshal(record.Values)
	if err != nil {
		return submission.NewStorageError("sqlite", "store", err)
	}

	var schemaVersion interface{}
	if record.SchemaVersion != nil {
		data, err := json.Marshal(record.SchemaVersion)
		if err != nil {
			return submission.NewStorageError("sqlite", "store", err)
		}
		schemaVersion = string(data)
	}

	var draftID interface{}
	if record.DraftID != "" {
		draftID = record.DraftID
	}

	query := `
		INSERT INTO submissions (
			id, draft_id,
			form_type, occurrence_number,
			submitted_at, recorded_at,
			values_json, content_hash, field_count,
			schema_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID, draftID,
		string(record.FormType), record.OccurrenceNumber,
		record.SubmittedAt, record.RecordedAt,
		string(valuesJSON), record.ContentHash, record.FieldCount,
		schemaVersion,
	)
	if err != nil {
		return submission.NewStorageError("sqlite", "store", err)
	}

	return nil
}

// Get retrieves a single record by ID.
func (s *SQLiteStorage) Get(ctx context.Context, id string) (*submission.SubmissionRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM submissions WHERE id = ?", id)
	if err != nil {
		return nil, submission.NewStorageError("sqlite", "get", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, submission.NewStorageError("sqlite", "get", err)
		}
		return nil, submission.ErrNotFound
	}
	record, err := s.scanRow(rows)
	if err != nil {
		return nil, submission.NewStorageError("sqlite", "scan", err)
	}
	return record, nil
}

const selectColumns = `SELECT id, draft_id, form_type, occurrence_number,
	submitted_at, recorded_at, values_json, content_hash, field_count, schema_version`

// Query retrieves records matching the query filters.
func (s *SQLiteStorage) Query(ctx context.Context, query *submission.Query) ([]*submission.SubmissionRecord, error) {
	whereClause, args := s.buildWhereClause(query)

	sqlQuery := selectColumns + " FROM submissions"
	if whereClause != "" {
		sqlQuery += " WHERE " + whereClause
	}

	sortOrder := "DESC"
	if strings.EqualFold(query.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	sqlQuery += " ORDER BY submitted_at " + sortOrder

	limit := 100
	if query.Limit > 0 {
		limit = query.Limit
	}
	sqlQuery += fmt.Sprintf(" LIMIT %d", limit)
	if query.Offset > 0 {
		sqlQuery += fmt.Sprintf(" OFFSET %d", query.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, submission.NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	records := []*submission.SubmissionRecord{}
	for rows.Next() {
		record, err := s.scanRow(rows)
		if err != nil {
			return nil, submission.NewStorageError("sqlite", "scan", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, submission.NewStorageError("sqlite", "query", err)
	}

	return records, nil
}

// Count returns the number of records matching the query filters.
func (s *SQLiteStorage) Count(ctx context.Context, query *submission.Query) (int64, error) {
	whereClause, args := s.buildWhereClause(query)

	sqlQuery := "SELECT COUNT(*) FROM submissions"
	if whereClause != "" {
		sqlQuery += " WHERE " + whereClause
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, submission.NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// Delete removes records matching the query filters.
func (s *SQLiteStorage) Delete(ctx context.Context, query *submission.Query) (int64, error) {
	whereClause, args := s.buildWhereClause(query)

	sqlQuery := "DELETE FROM submissions"
	if whereClause != "" {
		sqlQuery += " WHERE " + whereClause
	}

	result, err := s.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, submission.NewStorageError("sqlite", "delete", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, submission.NewStorageError("sqlite", "delete", err)
	}
	return count, nil
}

// Close releases resources held by the storage backend.
func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return submission.NewStorageError("sqlite", "close", err)
	}
	s.logger.Info("submission storage closed")
	return nil
}

// buildWhereClause builds a SQL WHERE clause from query filters.
// Returns the WHERE clause (without "WHERE" keyword) and the query arguments.
func (s *SQLiteStorage) buildWhereClause(query *submission.Query) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if query.StartTime != nil {
		conditions = append(conditions, "submitted_at >= ?")
		args = append(args, *query.StartTime)
	}
	if query.EndTime != nil {
		conditions = append(conditions, "submitted_at <= ?")
		args = append(args, *query.EndTime)
	}
	if query.FormType != "" {
		conditions = append(conditions, "form_type = ?")
		args = append(args, string(query.FormType))
	}
	if query.OccurrenceNumber != "" {
		conditions = append(conditions, "occurrence_number = ?")
		args = append(args, strings.ToUpper(query.OccurrenceNumber))
	}

	return strings.Join(conditions, " AND "), args
}

// scanRow scans a database row into a SubmissionRecord.
func (s *SQLiteStorage) scanRow(rows *sql.Rows) (*submission.SubmissionRecord, error) {
	var record submission.SubmissionRecord
	var formType, valuesJSON string
	var draftID, schemaVersion sql.NullString

	err := rows.Scan(
		&record.ID, &draftID,
		&formType, &record.OccurrenceNumber,
		&record.SubmittedAt, &record.RecordedAt,
		&valuesJSON, &record.ContentHash, &record.FieldCount,
		&schemaVersion,
	)
	if err != nil {
		return nil, err
	}

	record.FormType = forms.FormType(formType)
	if draftID.Valid {
		record.DraftID = draftID.String
	}
	if err := json.Unmarshal([]byte(valuesJSON), &record.Values); err != nil {
		return nil, err
	}
	if schemaVersion.Valid && schemaVersion.String != "" {
		var info schema.VersionInfo
		if err := json.Unmarshal([]byte(schemaVersion.String), &info); err != nil {
			return nil, err
		}
		record.SchemaVersion = &info
	}

	return &record, nil
}
