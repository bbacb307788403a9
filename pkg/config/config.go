package config

import "time"

// Config is the root configuration for the intake tool.
type Config struct {
	// Schemas configures form schema loading.
	Schemas SchemasConfig `yaml:"schemas"`

	// Drafts configures draft persistence and auto-save.
	Drafts DraftsConfig `yaml:"drafts"`

	// Submissions configures the submission ledger.
	Submissions SubmissionsConfig `yaml:"submissions"`

	// Export configures submission export.
	Export ExportConfig `yaml:"export"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SchemasConfig configures form schema loading.
type SchemasConfig struct {
	// Path is a YAML schema file or directory overlaid on the builtin
	// schemas. Empty means builtin schemas only.
	Path string `yaml:"path"`

	// Watch reloads schemas on file changes during long-running commands.
	Watch bool `yaml:"watch"`

	// DebounceInterval is the quiet period before a watched reload fires.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// VersionFromGit stamps submissions with the git version of the schema
	// directory when it is under version control.
	VersionFromGit bool `yaml:"version_from_git"`
}

// DraftsConfig configures draft persistence.
type DraftsConfig struct {
	// Backend selects the draft storage backend: "sqlite" or "memory".
	Backend string `yaml:"backend"`

	// SQLitePath is the draft database file path.
	SQLitePath string `yaml:"sqlite_path"`

	// BusyTimeout is how long to wait for database locks.
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// Autosave configures auto-save sessions.
	Autosave AutosaveConfig `yaml:"autosave"`

	// Retention configures draft pruning.
	Retention RetentionConfig `yaml:"retention"`
}

// AutosaveConfig configures auto-save sessions.
type AutosaveConfig struct {
	// DebounceInterval is the quiet period after a file change before a
	// flush triggers.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// FlushSchedule is a cron expression for the periodic safety flush.
	FlushSchedule string `yaml:"flush_schedule"`
}

// RetentionConfig configures draft pruning.
type RetentionConfig struct {
	// Days is the number of days an untouched draft is kept.
	// 0 disables age-based pruning.
	Days int `yaml:"days"`

	// MaxDrafts is the maximum number of drafts to keep. 0 means unlimited.
	MaxDrafts int64 `yaml:"max_drafts"`

	// PruneSchedule is a cron expression for scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// SubmissionsConfig configures the submission ledger.
type SubmissionsConfig struct {
	// Backend selects the submission storage backend: "sqlite" or "memory".
	Backend string `yaml:"backend"`

	// SQLite configures the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Recorder configures the async submission recorder.
	Recorder RecorderConfig `yaml:"recorder"`
}

// SQLiteConfig configures a SQLite database.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open connections.
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables Write-Ahead Logging.
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is how long to wait for database locks.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// RecorderConfig configures the async submission recorder.
type RecorderConfig struct {
	// AsyncBuffer is the size of the async write channel.
	AsyncBuffer int `yaml:"async_buffer"`

	// WriteTimeout bounds each storage write.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// RedactContacts masks officer contact details in stored values.
	RedactContacts bool `yaml:"redact_contacts"`

	// MaxFieldLength truncates free-text fields beyond this length.
	MaxFieldLength int `yaml:"max_field_length"`
}

// ExportConfig configures submission export.
type ExportConfig struct {
	// Format is the default export format: "json", "csv" or "text".
	Format string `yaml:"format"`

	// JSONPretty pretty-prints JSON exports.
	JSONPretty bool `yaml:"json_pretty"`

	// CSVHeader includes a header row in CSV exports.
	CSVHeader bool `yaml:"csv_header"`
}

// TelemetryConfig configures logging and metrics.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the metrics textfile dump.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	Level string `yaml:"level"`

	// Format is the output format: "json", "text" or "console".
	Format string `yaml:"format"`

	// RedactPII masks occurrence numbers, emails and phone numbers in log
	// output.
	RedactPII bool `yaml:"redact_pii"`
}

// MetricsConfig configures the metrics textfile dump.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	Enabled bool `yaml:"enabled"`

	// TextfilePath is where command metrics are written in Prometheus text
	// format, for node-exporter textfile collection. Empty disables the dump.
	TextfilePath string `yaml:"textfile_path"`
}
