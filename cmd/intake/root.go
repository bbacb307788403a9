package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/config"
	"peelvsu/intake/pkg/draft"
	draftstorage "peelvsu/intake/pkg/draft/storage"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/submission"
	substorage "peelvsu/intake/pkg/submission/storage"
	"peelvsu/intake/pkg/telemetry/logging"
	"peelvsu/intake/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Peel VSU Intake - evidence request form tool",
	Long: `Intake is a local-first tool for police evidence request forms.

It handles the three request form families (Upload, Analysis, Recovery),
providing:
  - Field validation with conditional requirements
  - Draft persistence with auto-save and retention pruning
  - A local submission ledger with contact redaction and content hashing
  - Submission export as JSON, CSV or a printable text report

All state lives on the local filesystem; no network access is required.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "intake.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration file (or defaults when it is absent)
// and installs the configured logger as the process default.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigOrDefault(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		RedactPII: cfg.Telemetry.Logging.RedactPII,
	})
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	logger.Install()

	return cfg, nil
}

// newCollector creates the metrics collector for one command invocation.
// The returned flush writes the textfile dump and is meant to be deferred.
func newCollector(cfg *config.Config) (*metrics.Collector, func()) {
	collector := metrics.NewCollector(metrics.Config{
		Enabled:      cfg.Telemetry.Metrics.Enabled,
		TextfilePath: cfg.Telemetry.Metrics.TextfilePath,
	}, nil)

	flush := func() {
		if err := collector.WriteTextfile(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return collector, flush
}

// openDraftStorage opens the configured draft storage backend.
func openDraftStorage(cfg *config.Config) (draft.Storage, error) {
	switch cfg.Drafts.Backend {
	case "sqlite":
		return draftstorage.NewSQLiteStorage(draftstorage.SQLiteConfig{
			Path:        cfg.Drafts.SQLitePath,
			BusyTimeout: cfg.Drafts.BusyTimeout,
		})
	case "memory":
		return draftstorage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported draft backend: %s (supported: sqlite, memory)", cfg.Drafts.Backend)
	}
}

// openSubmissionStorage opens the configured submission storage backend.
func openSubmissionStorage(cfg *config.Config) (submission.Storage, error) {
	switch cfg.Submissions.Backend {
	case "sqlite":
		return substorage.NewSQLiteStorage(&substorage.SQLiteConfig{
			Path:         cfg.Submissions.SQLite.Path,
			MaxOpenConns: cfg.Submissions.SQLite.MaxOpenConns,
			MaxIdleConns: cfg.Submissions.SQLite.MaxIdleConns,
			WALMode:      cfg.Submissions.SQLite.WALMode,
			BusyTimeout:  cfg.Submissions.SQLite.BusyTimeout,
		})
	case "memory":
		return substorage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported submission backend: %s (supported: sqlite, memory)", cfg.Submissions.Backend)
	}
}

// loadSchemas returns the builtin schema set overlaid with any configured
// schema files.
func loadSchemas(cfg *config.Config) (schema.Set, error) {
	if cfg.Schemas.Path == "" {
		return schema.Builtin(), nil
	}
	return schema.NewFileSource(cfg.Schemas.Path, nil).Load()
}

// schemaVersion reads git provenance for the schema path when enabled.
// Returns nil when provenance is unavailable; that is not an error.
func schemaVersion(cfg *config.Config) *schema.VersionInfo {
	if !cfg.Schemas.VersionFromGit || cfg.Schemas.Path == "" {
		return nil
	}
	info, err := schema.Version(cfg.Schemas.Path)
	if err != nil {
		return nil
	}
	return info
}
