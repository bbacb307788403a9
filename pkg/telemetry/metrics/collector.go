package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config controls metric collection and the textfile dump.
type Config struct {
	// Enabled turns collection on. When false every recording method is a
	// no-op and WriteTextfile does nothing.
	Enabled bool

	// Namespace and Subsystem prefix every metric name. They default to
	// "peelvsu" and "intake".
	Namespace string
	Subsystem string

	// TextfilePath is where metrics are written in Prometheus text format.
	// Empty disables the dump.
	TextfilePath string
}

// Collector owns the Prometheus registry and all metric groups for an
// intake run. A Collector is created once per command invocation and
// dumped via WriteTextfile before exit.
type Collector struct {
	config   Config
	registry *prometheus.Registry

	validationMetrics *ValidationMetrics
	storeMetrics      *StoreMetrics
}

// NewCollector creates a collector backed by the given registry. If
// registry is nil a fresh one is used.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "peelvsu"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "intake"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.validationMetrics = NewValidationMetrics(cfg, registry)
	c.storeMetrics = NewStoreMetrics(cfg, registry)

	return c
}

// RecordValidation records one full-form validation pass.
//
// Parameters:
//   - formType: form identifier ("upload", "analysis", "recovery")
//   - failedFields: field names that failed; empty means the form passed
//   - duration: time spent validating
func (c *Collector) RecordValidation(formType string, failedFields []string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.validationMetrics.RecordValidation(formType, failedFields, duration)
}

// RecordDraftSaved records a draft write, whether initial or an autosave
// flush.
func (c *Collector) RecordDraftSaved(formType string) {
	if !c.config.Enabled {
		return
	}

	c.storeMetrics.RecordDraftSaved(formType)
}

// RecordSubmissionRecorded records a submission persisted by the recorder.
func (c *Collector) RecordSubmissionRecorded(formType string) {
	if !c.config.Enabled {
		return
	}

	c.storeMetrics.RecordSubmissionRecorded(formType)
}

// RecordPruneDeletions records drafts removed by a retention prune pass.
func (c *Collector) RecordPruneDeletions(deleted int) {
	if !c.config.Enabled {
		return
	}

	c.storeMetrics.RecordPruneDeletions(deleted)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile dumps the registry to the configured textfile path in
// Prometheus exposition format. It is a no-op when collection is disabled
// or no path is configured.
func (c *Collector) WriteTextfile() error {
	if !c.config.Enabled || c.config.TextfilePath == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(c.config.TextfilePath, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", c.config.TextfilePath, err)
	}

	return nil
}
