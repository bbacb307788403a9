package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() Config {
	return Config{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "intake",
	}
}

func TestNewCollectorDefaults(t *testing.T) {
	collector := NewCollector(Config{Enabled: true}, nil)

	if collector.registry == nil {
		t.Fatal("expected collector to create a registry")
	}
	if collector.config.Namespace != "peelvsu" {
		t.Errorf("Namespace = %q, want %q", collector.config.Namespace, "peelvsu")
	}
	if collector.config.Subsystem != "intake" {
		t.Errorf("Subsystem = %q, want %q", collector.config.Subsystem, "intake")
	}
}

func TestRecordValidation(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(testConfig(), registry)

	collector.RecordValidation("upload", nil, 2*time.Millisecond)
	collector.RecordValidation("upload", []string{"occurrence_number", "field_officer_email"}, time.Millisecond)
	collector.RecordValidation("analysis", []string{"occurrence_number"}, time.Millisecond)

	passes := testutil.ToFloat64(collector.validationMetrics.validationsTotal.WithLabelValues("upload", "pass"))
	if passes != 1 {
		t.Errorf("upload pass count = %v, want 1", passes)
	}
	fails := testutil.ToFloat64(collector.validationMetrics.validationsTotal.WithLabelValues("upload", "fail"))
	if fails != 1 {
		t.Errorf("upload fail count = %v, want 1", fails)
	}

	occFailures := testutil.ToFloat64(collector.validationMetrics.fieldFailuresTotal.WithLabelValues("upload", "occurrence_number")) +
		testutil.ToFloat64(collector.validationMetrics.fieldFailuresTotal.WithLabelValues("analysis", "occurrence_number"))
	if occFailures != 2 {
		t.Errorf("occurrence_number failures = %v, want 2", occFailures)
	}
}

func TestRecordStoreActivity(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(testConfig(), registry)

	collector.RecordDraftSaved("recovery")
	collector.RecordDraftSaved("recovery")
	collector.RecordSubmissionRecorded("recovery")
	collector.RecordPruneDeletions(3)
	collector.RecordPruneDeletions(0)

	if got := testutil.ToFloat64(collector.storeMetrics.draftsSavedTotal.WithLabelValues("recovery")); got != 2 {
		t.Errorf("drafts saved = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.storeMetrics.submissionsRecordedTotal.WithLabelValues("recovery")); got != 1 {
		t.Errorf("submissions recorded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.storeMetrics.pruneDeletionsTotal); got != 3 {
		t.Errorf("prune deletions = %v, want 3", got)
	}
}

func TestDisabledCollectorIsNoOp(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(Config{Enabled: false, Namespace: "test", Subsystem: "intake"}, registry)

	collector.RecordValidation("upload", []string{"occurrence_number"}, time.Millisecond)
	collector.RecordDraftSaved("upload")
	collector.RecordSubmissionRecorded("upload")
	collector.RecordPruneDeletions(5)

	if got := testutil.ToFloat64(collector.storeMetrics.draftsSavedTotal.WithLabelValues("upload")); got != 0 {
		t.Errorf("drafts saved = %v, want 0 when disabled", got)
	}
	if got := testutil.ToFloat64(collector.validationMetrics.validationsTotal.WithLabelValues("upload", "fail")); got != 0 {
		t.Errorf("validations = %v, want 0 when disabled", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.prom")
	cfg := testConfig()
	cfg.TextfilePath = path

	collector := NewCollector(cfg, prometheus.NewRegistry())
	collector.RecordDraftSaved("upload")
	collector.RecordValidation("upload", nil, time.Millisecond)

	if err := collector.WriteTextfile(); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `test_intake_drafts_saved_total{form_type="upload"} 1`) {
		t.Errorf("textfile missing drafts counter:\n%s", out)
	}
	if !strings.Contains(out, `test_intake_validations_total{form_type="upload",result="pass"} 1`) {
		t.Errorf("textfile missing validations counter:\n%s", out)
	}
}

func TestWriteTextfileSkips(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"disabled", Config{Enabled: false, TextfilePath: "/nonexistent/dir/out.prom"}},
		{"no path", Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := NewCollector(tt.cfg, prometheus.NewRegistry())
			if err := collector.WriteTextfile(); err != nil {
				t.Errorf("WriteTextfile() error = %v, want nil", err)
			}
		})
	}
}
