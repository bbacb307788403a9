package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ValidationMetrics tracks form validation activity.
//
// Metrics:
//   - peelvsu_intake_validations_total: validations run by form type and result
//   - peelvsu_intake_field_failures_total: field failures by form type and field
//   - peelvsu_intake_validation_duration_seconds: validation duration histogram
type ValidationMetrics struct {
	validationsTotal   *prometheus.CounterVec
	fieldFailuresTotal *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(cfg Config, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validations_total",
				Help:      "Total number of full-form validations run",
			},
			[]string{"form_type", "result"},
		),

		fieldFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "field_failures_total",
				Help:      "Total number of field validation failures",
			},
			[]string{"form_type", "field"},
		),

		validationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_duration_seconds",
				Help:      "Duration of full-form validation in seconds",
				// Validation is in-memory rule evaluation, so the
				// interesting range is well under a second.
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"form_type"},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.fieldFailuresTotal,
		vm.validationDuration,
	)

	return vm
}

// RecordValidation records one validation pass. The result label is "pass"
// when failedFields is empty and "fail" otherwise.
func (vm *ValidationMetrics) RecordValidation(formType string, failedFields []string, duration time.Duration) {
	result := "pass"
	if len(failedFields) > 0 {
		result = "fail"
	}

	vm.validationsTotal.WithLabelValues(formType, result).Inc()
	vm.validationDuration.WithLabelValues(formType).Observe(duration.Seconds())

	for _, field := range failedFields {
		vm.fieldFailuresTotal.WithLabelValues(formType, field).Inc()
	}
}
