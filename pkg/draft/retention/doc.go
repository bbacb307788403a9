// Package retention enforces retention policies on stored drafts.
//
// Drafts accumulate during auto-save sessions and most are superseded by a
// submission; the pruner keeps the local store bounded:
//
//   - Age-based pruning: drafts untouched for longer than the retention
//     period are deleted.
//   - Count-based pruning: when the total draft count exceeds the limit,
//     the oldest drafts are deleted first.
//
// The pruner can run on demand (the prune command) or on a cron schedule
// via Start/Stop.
package retention
