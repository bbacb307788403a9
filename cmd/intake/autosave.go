package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/draft/autosave"
	"peelvsu/intake/pkg/forms"
)

var autosaveFlags struct {
	draftID string
}

var autosaveCmd = &cobra.Command{
	Use:   "autosave <form-type> <values-file>",
	Short: "Keep a draft in sync while editing a values file",
	Long: `Watch a YAML values file and keep a draft up to date with its
contents.

A flush runs after each debounced file change and on a periodic safety
schedule; unchanged content is never rewritten. The session runs until
interrupted (Ctrl-C), with a final flush on shutdown so the last edit is
never lost.

Examples:
  # Start a new draft session
  intake autosave upload request.yaml

  # Resume an existing draft
  intake autosave upload request.yaml --draft 5f0c...`,
	Args: cobra.ExactArgs(2),
	RunE: runAutosave,
}

func init() {
	rootCmd.AddCommand(autosaveCmd)

	autosaveCmd.Flags().StringVar(&autosaveFlags.draftID, "draft", "", "resume an existing draft instead of creating one")
}

func runAutosave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	collector, flush := newCollector(cfg)
	defer flush()

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("autosave", err)
	}
	defer store.Close()

	ctx := cli.SetupSignalHandler()

	saver, err := autosave.NewSaver(ctx, store, autosave.Config{
		ValuesPath:       args[1],
		FormType:         forms.FormType(args[0]),
		DraftID:          autosaveFlags.draftID,
		DebounceInterval: cfg.Drafts.Autosave.DebounceInterval,
		FlushSchedule:    cfg.Drafts.Autosave.FlushSchedule,
	})
	if err != nil {
		return cli.NewCommandError("autosave", err)
	}
	collector.RecordDraftSaved(args[0])

	fmt.Printf("Auto-save session started.\n")
	fmt.Printf("  Draft: %s\n", saver.DraftID())
	fmt.Printf("  File:  %s\n", args[1])
	fmt.Println("Press Ctrl-C to stop.")

	if err := saver.Run(ctx); err != nil {
		return cli.NewCommandError("autosave", err)
	}

	fmt.Printf("Auto-save session ended. Draft %s is up to date.\n", saver.DraftID())
	return nil
}
