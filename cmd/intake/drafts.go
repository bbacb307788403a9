package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/draft"
	"peelvsu/intake/pkg/forms"
)

var draftFlags struct {
	form   string
	format string
	output string
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage form drafts",
	Long: `Manage saved drafts of in-progress forms.

Subcommands:
  save     - Save a values file as a new draft
  list     - List stored drafts
  show     - Show a draft's values
  delete   - Delete a draft
  restore  - Write a draft's values back to a YAML file

Examples:
  # Save the current state of a form
  intake draft save upload request.yaml

  # List upload drafts
  intake draft list --form upload

  # Continue editing a draft
  intake draft restore 5f0c... --output request.yaml`,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save <form-type> <values-file>",
	Short: "Save a values file as a new draft",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftSave,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drafts",
	Args:  cobra.NoArgs,
	RunE:  runDraftList,
}

var draftShowCmd = &cobra.Command{
	Use:   "show <draft-id>",
	Short: "Show a draft's values",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete <draft-id>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDelete,
}

var draftRestoreCmd = &cobra.Command{
	Use:   "restore <draft-id>",
	Short: "Write a draft's values back to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftRestore,
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftSaveCmd, draftListCmd, draftShowCmd, draftDeleteCmd, draftRestoreCmd)

	draftListCmd.Flags().StringVar(&draftFlags.form, "form", "", "filter by form type: upload, analysis, recovery")
	draftListCmd.Flags().StringVar(&draftFlags.format, "format", "text", "output format: text, json")
	draftShowCmd.Flags().StringVar(&draftFlags.format, "format", "text", "output format: text, json")
	draftRestoreCmd.Flags().StringVarP(&draftFlags.output, "output", "o", "", "output file (default: stdout)")
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	collector, flush := newCollector(cfg)
	defer flush()

	formType := forms.FormType(args[0])
	if !forms.ValidFormTypes[formType] {
		return cli.NewCommandError("draft", fmt.Errorf("unknown form type %q (valid: upload, analysis, recovery)", formType))
	}

	values, err := forms.LoadValues(args[1])
	if err != nil {
		return cli.NewCommandError("draft", fmt.Errorf("failed to load values file: %w", err))
	}

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	defer store.Close()

	d := draft.New(formType, values)
	if err := store.Save(context.Background(), d); err != nil {
		return cli.NewCommandError("draft", err)
	}
	collector.RecordDraftSaved(string(formType))

	fmt.Printf("Draft saved.\n")
	fmt.Printf("  ID:   %s\n", d.ID)
	fmt.Printf("  Form: %s\n", d.FormType)
	return nil
}

func runDraftList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	defer store.Close()

	drafts, err := store.List(context.Background(), forms.FormType(draftFlags.form))
	if err != nil {
		return cli.NewCommandError("draft", err)
	}

	if draftFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, drafts)
	}

	if len(drafts) == 0 {
		fmt.Println("No drafts found.")
		return nil
	}

	for _, d := range drafts {
		fmt.Printf("%s  %-8s  updated %s\n",
			d.ID, d.FormType, d.UpdatedAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("\n%d draft(s)\n", len(drafts))
	return nil
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	defer store.Close()

	d, err := store.Get(context.Background(), args[0])
	if err != nil {
		return cli.NewCommandError("draft", err)
	}

	if draftFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, d)
	}

	fmt.Printf("Draft %s\n", d.ID)
	fmt.Printf("  Form:    %s\n", d.FormType)
	fmt.Printf("  Created: %s\n", d.CreatedAt.Local().Format(time.RFC3339))
	fmt.Printf("  Updated: %s\n", d.UpdatedAt.Local().Format(time.RFC3339))
	fmt.Printf("  Hash:    %s\n", d.ContentHash)
	fmt.Println()

	data, err := yaml.Marshal(d.Values)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	fmt.Print(string(data))
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	defer store.Close()

	if err := store.Delete(context.Background(), args[0]); err != nil {
		return cli.NewCommandError("draft", err)
	}

	fmt.Printf("Draft %s deleted.\n", args[0])
	return nil
}

func runDraftRestore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openDraftStorage(cfg)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}
	defer store.Close()

	d, err := store.Get(context.Background(), args[0])
	if err != nil {
		return cli.NewCommandError("draft", err)
	}

	data, err := yaml.Marshal(d.Values)
	if err != nil {
		return cli.NewCommandError("draft", err)
	}

	if draftFlags.output == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(draftFlags.output, data, 0o644); err != nil {
		return cli.NewCommandError("draft", fmt.Errorf("failed to write output file: %w", err))
	}
	fmt.Printf("Draft %s restored to %s.\n", d.ID, draftFlags.output)
	return nil
}
