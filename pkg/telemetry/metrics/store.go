package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics tracks persistence activity across the draft and
// submission stores.
//
// Metrics:
//   - peelvsu_intake_drafts_saved_total: draft writes by form type
//   - peelvsu_intake_submissions_recorded_total: submissions persisted by form type
//   - peelvsu_intake_prune_deletions_total: drafts removed by retention pruning
type StoreMetrics struct {
	draftsSavedTotal         *prometheus.CounterVec
	submissionsRecordedTotal *prometheus.CounterVec
	pruneDeletionsTotal      prometheus.Counter
}

// NewStoreMetrics creates and registers store metrics with the provided
// registry.
func NewStoreMetrics(cfg Config, registry *prometheus.Registry) *StoreMetrics {
	sm := &StoreMetrics{
		draftsSavedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "drafts_saved_total",
				Help:      "Total number of draft writes, including autosave flushes",
			},
			[]string{"form_type"},
		),

		submissionsRecordedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "submissions_recorded_total",
				Help:      "Total number of submissions persisted",
			},
			[]string{"form_type"},
		),

		pruneDeletionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "prune_deletions_total",
				Help:      "Total number of drafts removed by retention pruning",
			},
		),
	}

	registry.MustRegister(
		sm.draftsSavedTotal,
		sm.submissionsRecordedTotal,
		sm.pruneDeletionsTotal,
	)

	return sm
}

// RecordDraftSaved increments the draft write counter.
func (sm *StoreMetrics) RecordDraftSaved(formType string) {
	sm.draftsSavedTotal.WithLabelValues(formType).Inc()
}

// RecordSubmissionRecorded increments the submission counter.
func (sm *StoreMetrics) RecordSubmissionRecorded(formType string) {
	sm.submissionsRecordedTotal.WithLabelValues(formType).Inc()
}

// RecordPruneDeletions adds the number of drafts removed by a prune pass.
func (sm *StoreMetrics) RecordPruneDeletions(deleted int) {
	if deleted > 0 {
		sm.pruneDeletionsTotal.Add(float64(deleted))
	}
}
