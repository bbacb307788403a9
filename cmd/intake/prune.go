package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/draft/retention"
)

var pruneFlags struct {
	watch bool
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Prune old drafts",
	Long: `Enforce the draft retention policy.

Pruning removes drafts untouched for longer than the retention period,
then removes the oldest drafts beyond the maximum count. By default one
prune pass runs and the command exits; with --watch the pass runs on the
configured cron schedule until interrupted.

Examples:
  # One prune pass
  intake prune

  # Run on the configured schedule (e.g. daily at 3 AM)
  intake prune --watch`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().BoolVar(&pruneFlags.watch, "watch", false, "keep running on the configured schedule")
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	collector, flush := newCollector(cfg)
	defer flush()

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("prune", err)
	}
	defer store.Close()

	pruner := retention.NewPruner(store, &retention.Config{
		RetentionDays: cfg.Drafts.Retention.Days,
		MaxDrafts:     cfg.Drafts.Retention.MaxDrafts,
		PruneSchedule: cfg.Drafts.Retention.PruneSchedule,
	})

	if !pruneFlags.watch {
		deleted, err := pruner.Prune(context.Background())
		if err != nil {
			return cli.NewCommandError("prune", err)
		}
		collector.RecordPruneDeletions(int(deleted))

		fmt.Printf("Pruned %d draft(s).\n", deleted)
		return nil
	}

	ctx := cli.SetupSignalHandler()
	if err := pruner.Start(ctx); err != nil {
		return cli.NewCommandError("prune", err)
	}
	defer pruner.Stop()

	fmt.Println("Prune scheduler started.")
	if next := pruner.NextPruning(); next != nil {
		fmt.Printf("  Next run: %s\n", next.Local().Format(time.RFC3339))
	}
	fmt.Println("Press Ctrl-C to stop.")

	<-ctx.Done()
	fmt.Println("Prune scheduler stopped.")
	return nil
}
