package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"peelvsu/intake/pkg/draft"
)

// Config contains configuration for the draft retention pruner.
type Config struct {
	// RetentionDays is the number of days an untouched draft is kept.
	// 0 means keep drafts forever (no age-based pruning).
	RetentionDays int

	// MaxDrafts is the maximum number of drafts to keep.
	// 0 means unlimited.
	MaxDrafts int64

	// PruneSchedule is a cron expression for scheduling pruning.
	// Example: "0 3 * * *" (daily at 3 AM). Empty disables the scheduler.
	PruneSchedule string
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays: 30,
		MaxDrafts:     200,
		PruneSchedule: "0 3 * * *",
	}
}

// Pruner enforces retention policies on stored drafts.
type Pruner struct {
	storage   draft.Storage
	config    *Config
	logger    *slog.Logger
	scheduler *Scheduler
}

// NewPruner creates a new draft retention pruner.
func NewPruner(storage draft.Storage, config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}

	pruner := &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "draft.retention"),
	}
	pruner.scheduler = NewScheduler(pruner)

	return pruner
}

// Prune deletes drafts older than the retention period or exceeding the
// maximum draft count.
//
// Pruning happens in two phases:
//  1. Age-based: delete drafts untouched for longer than RetentionDays.
//  2. Count-based: if the total count still exceeds MaxDrafts, delete the
//     oldest remaining drafts.
//
// Returns the total number of drafts deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
		deleted, err := p.storage.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by age failed: %w", err)
		}
		totalDeleted += deleted
		p.logger.Info("pruned drafts by age",
			"deleted_count", deleted,
			"retention_days", p.config.RetentionDays,
		)
	}

	if p.config.MaxDrafts > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by count failed: %w", err)
		}
		totalDeleted += deleted
		p.logger.Info("pruned drafts by count",
			"deleted_count", deleted,
			"max_drafts", p.config.MaxDrafts,
		)
	}

	if totalDeleted == 0 {
		p.logger.Debug("no drafts pruned",
			"retention_days", p.config.RetentionDays,
			"max_drafts", p.config.MaxDrafts,
		)
	}

	return totalDeleted, nil
}

// pruneByCount deletes the oldest drafts until the count is within MaxDrafts.
func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	count, err := p.storage.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count drafts: %w", err)
	}
	if count <= p.config.MaxDrafts {
		return 0, nil
	}

	// List returns newest-first, so the tail is the oldest drafts.
	all, err := p.storage.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list drafts: %w", err)
	}

	toDelete := len(all) - int(p.config.MaxDrafts)
	if toDelete <= 0 {
		return 0, nil
	}

	var deleted int64
	for _, d := range all[len(all)-toDelete:] {
		if err := p.storage.Delete(ctx, d.ID); err != nil {
			return deleted, fmt.Errorf("failed to delete draft %s: %w", d.ID, err)
		}
		deleted++
	}

	return deleted, nil
}

// Start starts the automatic pruning scheduler.
func (p *Pruner) Start(ctx context.Context) error {
	return p.scheduler.Start(ctx)
}

// Stop stops the automatic pruning scheduler.
func (p *Pruner) Stop() {
	p.scheduler.Stop()
}

// NextPruning returns the time of the next scheduled pruning.
func (p *Pruner) NextPruning() *time.Time {
	return p.scheduler.NextRun()
}
