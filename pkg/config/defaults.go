package config

import "time"

// Default values applied to unset configuration fields.
const (
	// Schema defaults
	DefaultSchemaDebounceInterval = 200 * time.Millisecond

	// Draft defaults
	DefaultDraftBackend          = "sqlite"
	DefaultDraftSQLitePath       = "data/drafts.db"
	DefaultDraftBusyTimeout      = 5 * time.Second
	DefaultAutosaveDebounce      = 500 * time.Millisecond
	DefaultAutosaveFlushSchedule = "@every 30s"
	DefaultRetentionDays         = 30
	DefaultRetentionMaxDrafts    = 200
	DefaultRetentionSchedule     = "0 3 * * *"

	// Submission defaults
	DefaultSubmissionBackend      = "sqlite"
	DefaultSubmissionSQLitePath   = "data/submissions.db"
	DefaultSQLiteMaxOpenConns     = 10
	DefaultSQLiteMaxIdleConns     = 5
	DefaultSQLiteWALMode          = true
	DefaultSQLiteBusyTimeout      = 5 * time.Second
	DefaultRecorderAsyncBuffer    = 1000
	DefaultRecorderWriteTimeout   = 5 * time.Second
	DefaultRecorderRedactContacts = true
	DefaultRecorderMaxFieldLength = 2000

	// Export defaults
	DefaultExportFormat     = "text"
	DefaultExportJSONPretty = true
	DefaultExportCSVHeader  = true

	// Telemetry defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "console"
)

// DefaultConfig returns a fully populated configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset configuration fields.
// Fields already set by the caller are left untouched. Boolean fields whose
// default is true are forced on when unset; turning them off requires the
// matching INTAKE_* environment variable.
func ApplyDefaults(cfg *Config) {
	// Schema defaults
	if cfg.Schemas.DebounceInterval == 0 {
		cfg.Schemas.DebounceInterval = DefaultSchemaDebounceInterval
	}

	// Draft defaults
	if cfg.Drafts.Backend == "" {
		cfg.Drafts.Backend = DefaultDraftBackend
	}
	if cfg.Drafts.SQLitePath == "" {
		cfg.Drafts.SQLitePath = DefaultDraftSQLitePath
	}
	if cfg.Drafts.BusyTimeout == 0 {
		cfg.Drafts.BusyTimeout = DefaultDraftBusyTimeout
	}
	if cfg.Drafts.Autosave.DebounceInterval == 0 {
		cfg.Drafts.Autosave.DebounceInterval = DefaultAutosaveDebounce
	}
	if cfg.Drafts.Autosave.FlushSchedule == "" {
		cfg.Drafts.Autosave.FlushSchedule = DefaultAutosaveFlushSchedule
	}
	if cfg.Drafts.Retention.Days == 0 {
		cfg.Drafts.Retention.Days = DefaultRetentionDays
	}
	if cfg.Drafts.Retention.MaxDrafts == 0 {
		cfg.Drafts.Retention.MaxDrafts = DefaultRetentionMaxDrafts
	}
	if cfg.Drafts.Retention.PruneSchedule == "" {
		cfg.Drafts.Retention.PruneSchedule = DefaultRetentionSchedule
	}

	// Submission defaults
	if cfg.Submissions.Backend == "" {
		cfg.Submissions.Backend = DefaultSubmissionBackend
	}
	if cfg.Submissions.SQLite.Path == "" {
		cfg.Submissions.SQLite.Path = DefaultSubmissionSQLitePath
	}
	if cfg.Submissions.SQLite.MaxOpenConns == 0 {
		cfg.Submissions.SQLite.MaxOpenConns = DefaultSQLiteMaxOpenConns
	}
	if cfg.Submissions.SQLite.MaxIdleConns == 0 {
		cfg.Submissions.SQLite.MaxIdleConns = DefaultSQLiteMaxIdleConns
	}
	if !cfg.Submissions.SQLite.WALMode {
		cfg.Submissions.SQLite.WALMode = DefaultSQLiteWALMode
	}
	if cfg.Submissions.SQLite.BusyTimeout == 0 {
		cfg.Submissions.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}
	if cfg.Submissions.Recorder.AsyncBuffer == 0 {
		cfg.Submissions.Recorder.AsyncBuffer = DefaultRecorderAsyncBuffer
	}
	if cfg.Submissions.Recorder.WriteTimeout == 0 {
		cfg.Submissions.Recorder.WriteTimeout = DefaultRecorderWriteTimeout
	}
	if !cfg.Submissions.Recorder.RedactContacts {
		cfg.Submissions.Recorder.RedactContacts = DefaultRecorderRedactContacts
	}
	if cfg.Submissions.Recorder.MaxFieldLength == 0 {
		cfg.Submissions.Recorder.MaxFieldLength = DefaultRecorderMaxFieldLength
	}

	// Export defaults
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
	if !cfg.Export.JSONPretty {
		cfg.Export.JSONPretty = DefaultExportJSONPretty
	}
	if !cfg.Export.CSVHeader {
		cfg.Export.CSVHeader = DefaultExportCSVHeader
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
}
