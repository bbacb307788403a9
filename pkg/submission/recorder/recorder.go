package recorder

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/submission"
)

// Config contains configuration for the submission recorder.
type Config struct {
	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout is the timeout for writing a record to storage.
	// Default: 5 seconds
	WriteTimeout time.Duration

	// RedactContacts masks officer email and phone in the stored values.
	// The content hash always covers the unredacted values.
	// Default: true
	RedactContacts bool

	// MaxFieldLength is the maximum length for free-text fields before
	// truncation. Default: 2000
	MaxFieldLength int
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		AsyncBuffer:    1000,
		WriteTimeout:   5 * time.Second,
		RedactContacts: true,
		MaxFieldLength: 2000,
	}
}

// Request carries everything needed to record one submission.
type Request struct {
	// FormType is the form being submitted.
	FormType forms.FormType

	// Values are the validated field values.
	Values forms.Values

	// DraftID is the draft this submission finalizes, if any.
	DraftID string

	// SubmittedAt is when the officer submitted. Zero means now.
	SubmittedAt time.Time

	// SchemaVersion is the git version of the schema set the form was
	// validated against, when available.
	SchemaVersion *schema.VersionInfo
}

// Recorder builds and persists submission records asynchronously.
type Recorder struct {
	storage    submission.Storage
	config     *Config
	recordChan chan *submission.SubmissionRecord
	wg         sync.WaitGroup
	done       chan struct{}
	logger     *slog.Logger
}

// NewRecorder creates a submission recorder backed by the given storage and
// starts its background write worker.
func NewRecorder(storage submission.Storage, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}

	r := &Recorder{
		storage:    storage,
		config:     config,
		recordChan: make(chan *submission.SubmissionRecord, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "submission.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("submission recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
		"redact_contacts", config.RedactContacts,
	)

	return r
}

// Record builds a submission record from the request and enqueues it for
// async writing. The returned record is the caller's receipt: its ID and
// content hash are final even though the storage write happens later.
func (r *Recorder) Record(ctx context.Context, req *Request) (*submission.SubmissionRecord, error) {
	record := r.buildRecord(req)

	// A buffered send would still succeed after shutdown with nobody left
	// to drain it, so check for shutdown first.
	select {
	case <-r.done:
		return nil, submission.NewRecorderError(record.ID, context.Canceled)
	default:
	}

	select {
	case r.recordChan <- record:
		r.logger.Debug("submission record enqueued",
			"record_id", record.ID,
			"form_type", record.FormType,
			"occurrence_number", record.OccurrenceNumber,
		)
	case <-time.After(r.config.WriteTimeout):
		r.logger.Error("submission channel full, dropping record",
			"record_id", record.ID,
			"channel_capacity", r.config.AsyncBuffer,
		)
		return nil, submission.NewRecorderError(record.ID, context.DeadlineExceeded)
	case <-r.done:
		r.logger.Warn("recorder shutting down, dropping record",
			"record_id", record.ID,
		)
		return nil, submission.NewRecorderError(record.ID, context.Canceled)
	}

	return record, nil
}

// Close gracefully shuts down the recorder by draining the async channel and
// waiting for all pending writes to complete.
func (r *Recorder) Close() error {
	r.logger.Info("shutting down submission recorder")

	close(r.done)
	r.wg.Wait()

	r.logger.Info("submission recorder shut down complete")
	return nil
}

// buildRecord assembles a SubmissionRecord from a request.
func (r *Recorder) buildRecord(req *Request) *submission.SubmissionRecord {
	submittedAt := req.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	occurrence := strings.ToUpper(strings.TrimSpace(req.Values.Get(forms.FieldOccurrenceNumber)))

	fieldCount := 0
	for _, value := range req.Values {
		if strings.TrimSpace(value) != "" {
			fieldCount++
		}
	}

	stored := req.Values.Clone()
	if r.config.RedactContacts {
		stored = RedactValues(stored)
	}
	for name, value := range stored {
		stored[name] = TruncateString(value, r.config.MaxFieldLength)
	}

	return &submission.SubmissionRecord{
		ID:               uuid.New().String(),
		DraftID:          req.DraftID,
		FormType:         req.FormType,
		OccurrenceNumber: occurrence,
		SubmittedAt:      submittedAt,
		RecordedAt:       time.Now().UTC(),
		Values:           stored,
		ContentHash:      HashValues(req.Values),
		FieldCount:       fieldCount,
		SchemaVersion:    req.SchemaVersion,
	}
}

// worker drains the record channel and writes records to storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.recordChan:
			r.writeRecord(record)

		case <-r.done:
			r.logger.Info("draining submission channel before shutdown",
				"pending_count", len(r.recordChan),
			)
			for {
				select {
				case record := <-r.recordChan:
					r.writeRecord(record)
				default:
					r.logger.Info("submission channel drained")
					return
				}
			}
		}
	}
}

// writeRecord writes a single record to storage.
func (r *Recorder) writeRecord(record *submission.SubmissionRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	start := time.Now()

	if err := r.storage.Store(ctx, record); err != nil {
		r.logger.Error("failed to store submission record",
			"record_id", record.ID,
			"occurrence_number", record.OccurrenceNumber,
			"error", err,
		)
		return
	}

	duration := time.Since(start)

	r.logger.Info("submission recorded",
		"record_id", record.ID,
		"form_type", record.FormType,
		"occurrence_number", record.OccurrenceNumber,
		"duration_ms", duration.Milliseconds(),
	)

	if duration > r.config.WriteTimeout/2 {
		r.logger.Warn("slow submission write",
			"record_id", record.ID,
			"duration_ms", duration.Milliseconds(),
			"threshold_ms", (r.config.WriteTimeout / 2).Milliseconds(),
		)
	}
}
