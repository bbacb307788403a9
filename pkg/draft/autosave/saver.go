package autosave

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"peelvsu/intake/pkg/draft"
	"peelvsu/intake/pkg/forms"
)

// Config contains configuration for an auto-save session.
type Config struct {
	// ValuesPath is the YAML values file being edited.
	ValuesPath string

	// FormType is the form the draft belongs to.
	FormType forms.FormType

	// DraftID resumes an existing draft instead of creating a new one.
	DraftID string

	// DebounceInterval is the quiet period after the last file change before
	// a flush triggers. Default: 500ms.
	DebounceInterval time.Duration

	// FlushSchedule is a cron expression for the periodic safety flush.
	// Default: "@every 30s". Empty disables periodic flushing.
	FlushSchedule string
}

// Saver runs one auto-save session: it watches a values file and keeps a
// single draft in storage up to date with its contents.
type Saver struct {
	storage draft.Storage
	config  Config
	logger  *slog.Logger

	mu    sync.Mutex
	draft *draft.Draft
}

// NewSaver creates an auto-save session. When config.DraftID is set, the
// draft is loaded from storage and subsequent flushes update it in place.
func NewSaver(ctx context.Context, storage draft.Storage, config Config) (*Saver, error) {
	if config.ValuesPath == "" {
		return nil, fmt.Errorf("values path cannot be empty")
	}
	if !forms.ValidFormTypes[config.FormType] {
		return nil, fmt.Errorf("unknown form type %q", config.FormType)
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 500 * time.Millisecond
	}
	if config.FlushSchedule == "" {
		config.FlushSchedule = "@every 30s"
	}

	s := &Saver{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "draft.autosave"),
	}

	if config.DraftID != "" {
		d, err := storage.Get(ctx, config.DraftID)
		if err != nil {
			return nil, fmt.Errorf("failed to resume draft %s: %w", config.DraftID, err)
		}
		if d.FormType != config.FormType {
			return nil, fmt.Errorf("draft %s is a %s draft, not %s",
				config.DraftID, d.FormType, config.FormType)
		}
		s.draft = d
	} else {
		values, err := forms.LoadValues(config.ValuesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load values file: %w", err)
		}
		s.draft = draft.New(config.FormType, values)
		if err := storage.Save(ctx, s.draft); err != nil {
			return nil, fmt.Errorf("failed to save initial draft: %w", err)
		}
	}

	return s, nil
}

// DraftID returns the ID of the draft this session maintains.
func (s *Saver) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.ID
}

// Run blocks until the context is cancelled, flushing the draft after each
// debounced change to the values file and on the periodic schedule. A final
// flush runs on shutdown so the last edit is never lost.
func (s *Saver) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors replace files on save, which
	// drops a watch placed on the file itself.
	dir := filepath.Dir(s.config.ValuesPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	var scheduler *cron.Cron
	if s.config.FlushSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(s.config.FlushSchedule, func() {
			s.Flush(ctx)
		})
		if err != nil {
			return fmt.Errorf("invalid flush schedule %q: %w", s.config.FlushSchedule, err)
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	s.logger.Info("auto-save session started",
		"draft_id", s.DraftID(),
		"values_path", s.config.ValuesPath,
		"flush_schedule", s.config.FlushSchedule,
	)

	for {
		select {
		case <-ctx.Done():
			// Final flush with a fresh context; the session context is
			// already cancelled.
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.Flush(flushCtx)
			cancel()
			s.logger.Info("auto-save session stopped", "draft_id", s.DraftID())
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !s.isValuesEvent(event) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(s.config.DebounceInterval, func() {
				s.Flush(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("auto-save watcher error", "error", err)
		}
	}
}

// Flush re-reads the values file and saves the draft when its contents
// changed. Returns true when a save happened.
func (s *Saver) Flush(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := forms.LoadValues(s.config.ValuesPath)
	if err != nil {
		// A half-written file parses as garbage; keep the last good draft
		// and wait for the next event.
		s.logger.Warn("skipping flush, values file unreadable", "error", err)
		return false
	}

	if !s.draft.Touch(values) {
		s.logger.Debug("skipping flush, content unchanged", "draft_id", s.draft.ID)
		return false
	}

	if err := s.storage.Save(ctx, s.draft); err != nil {
		s.logger.Error("auto-save flush failed", "error", err, "draft_id", s.draft.ID)
		return false
	}

	s.logger.Debug("draft flushed",
		"draft_id", s.draft.ID,
		"content_hash", s.draft.ContentHash,
	)
	return true
}

func (s *Saver) isValuesEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(s.config.ValuesPath)
}
