package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// Defaults are applied for unset fields and the result is validated.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that behavior.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention INTAKE_SECTION_FIELD (e.g. INTAKE_DRAFTS_SQLITE_PATH) and always
// take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadConfigOrDefault behaves like LoadConfigWithEnvOverrides, except that a
// missing file yields the default configuration instead of an error. This is
// the loader the command layer uses: running intake without a config file is
// normal operation.
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		applyEnvOverrides(cfg)

		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
		}
		return cfg, nil
	}

	return LoadConfigWithEnvOverrides(path)
}

// applyEnvOverrides applies INTAKE_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	// Schema overrides
	if val := os.Getenv("INTAKE_SCHEMAS_PATH"); val != "" {
		cfg.Schemas.Path = val
	}
	if val := os.Getenv("INTAKE_SCHEMAS_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Schemas.Watch = b
		}
	}
	if val := os.Getenv("INTAKE_SCHEMAS_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Schemas.DebounceInterval = d
		}
	}
	if val := os.Getenv("INTAKE_SCHEMAS_VERSION_FROM_GIT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Schemas.VersionFromGit = b
		}
	}

	// Draft overrides
	if val := os.Getenv("INTAKE_DRAFTS_BACKEND"); val != "" {
		cfg.Drafts.Backend = val
	}
	if val := os.Getenv("INTAKE_DRAFTS_SQLITE_PATH"); val != "" {
		cfg.Drafts.SQLitePath = val
	}
	if val := os.Getenv("INTAKE_DRAFTS_AUTOSAVE_FLUSH_SCHEDULE"); val != "" {
		cfg.Drafts.Autosave.FlushSchedule = val
	}
	if val := os.Getenv("INTAKE_DRAFTS_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Drafts.Retention.Days = i
		}
	}
	if val := os.Getenv("INTAKE_DRAFTS_RETENTION_MAX_DRAFTS"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Drafts.Retention.MaxDrafts = i
		}
	}
	if val := os.Getenv("INTAKE_DRAFTS_RETENTION_PRUNE_SCHEDULE"); val != "" {
		cfg.Drafts.Retention.PruneSchedule = val
	}

	// Submission overrides
	if val := os.Getenv("INTAKE_SUBMISSIONS_BACKEND"); val != "" {
		cfg.Submissions.Backend = val
	}
	if val := os.Getenv("INTAKE_SUBMISSIONS_SQLITE_PATH"); val != "" {
		cfg.Submissions.SQLite.Path = val
	}
	if val := os.Getenv("INTAKE_SUBMISSIONS_RECORDER_REDACT_CONTACTS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Submissions.Recorder.RedactContacts = b
		}
	}
	if val := os.Getenv("INTAKE_SUBMISSIONS_RECORDER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Submissions.Recorder.WriteTimeout = d
		}
	}

	// Export overrides
	if val := os.Getenv("INTAKE_EXPORT_FORMAT"); val != "" {
		cfg.Export.Format = val
	}
	if val := os.Getenv("INTAKE_EXPORT_JSON_PRETTY"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Export.JSONPretty = b
		}
	}
	if val := os.Getenv("INTAKE_EXPORT_CSV_HEADER"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Export.CSVHeader = b
		}
	}

	// Telemetry overrides
	if val := os.Getenv("INTAKE_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("INTAKE_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("INTAKE_TELEMETRY_LOGGING_REDACT_PII"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Logging.RedactPII = b
		}
	}
	if val := os.Getenv("INTAKE_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("INTAKE_TELEMETRY_METRICS_TEXTFILE_PATH"); val != "" {
		cfg.Telemetry.Metrics.TextfilePath = val
	}
}
