package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/forms/validation"
	"peelvsu/intake/pkg/submission"
	"peelvsu/intake/pkg/submission/recorder"
)

var submitFlags struct {
	draftID     string
	deleteDraft bool
}

var submitCmd = &cobra.Command{
	Use:   "submit <form-type> <values-file>",
	Short: "Validate and record a form submission",
	Long: `Validate a YAML values file and record it in the submission ledger.

Submission is refused when any field fails validation. Recorded values
have officer contact details redacted (configurable); the content hash
always covers the unredacted values so integrity can be verified against
the original.

Examples:
  # Submit an upload request
  intake submit upload request.yaml

  # Finalize a draft
  intake submit upload request.yaml --draft 5f0c... --delete-draft`,
	Args: cobra.ExactArgs(2),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&submitFlags.draftID, "draft", "", "draft ID this submission finalizes")
	submitCmd.Flags().BoolVar(&submitFlags.deleteDraft, "delete-draft", false, "delete the draft after a successful submission")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	collector, flush := newCollector(cfg)
	defer flush()

	formType := forms.FormType(args[0])
	valuesPath := args[1]

	schemas, err := loadSchemas(cfg)
	if err != nil {
		return cli.NewCommandError("submit", err)
	}
	formSchema, err := schemas.Get(formType)
	if err != nil {
		return cli.NewCommandError("submit", err)
	}

	values, err := forms.LoadValues(valuesPath)
	if err != nil {
		return cli.NewCommandError("submit", fmt.Errorf("failed to load values file: %w", err))
	}

	start := time.Now()
	validator := validation.New(nil)
	errs := schema.ValidateForm(validator, formSchema, values)
	collector.RecordValidation(string(formType), sortedFieldNames(errs), time.Since(start))

	if !errs.OK() {
		for _, field := range sortedFieldNames(errs) {
			fmt.Printf("✗ %s: %s\n", field, errs[forms.FieldName(field)])
		}

		failedErrs := make(map[string]string, len(errs))
		for field, msg := range errs {
			failedErrs[string(field)] = msg
		}
		return &submission.ValidationFailedError{
			FormType: string(formType),
			Errors:   failedErrs,
		}
	}

	store, err := openSubmissionStorage(cfg)
	if err != nil {
		return cli.NewCommandError("submit", err)
	}
	defer store.Close()

	rec := recorder.NewRecorder(store, &recorder.Config{
		AsyncBuffer:    cfg.Submissions.Recorder.AsyncBuffer,
		WriteTimeout:   cfg.Submissions.Recorder.WriteTimeout,
		RedactContacts: cfg.Submissions.Recorder.RedactContacts,
		MaxFieldLength: cfg.Submissions.Recorder.MaxFieldLength,
	})

	ctx := context.Background()
	record, err := rec.Record(ctx, &recorder.Request{
		FormType:      formType,
		Values:        values,
		DraftID:       submitFlags.draftID,
		SchemaVersion: schemaVersion(cfg),
	})
	if err != nil {
		rec.Close()
		return cli.NewCommandError("submit", err)
	}

	// Close drains the write queue, so the record is persisted before we
	// report success.
	if err := rec.Close(); err != nil {
		return cli.NewCommandError("submit", err)
	}
	collector.RecordSubmissionRecorded(string(formType))

	fmt.Printf("Submission recorded.\n")
	fmt.Printf("  ID:           %s\n", record.ID)
	fmt.Printf("  Occurrence:   %s\n", record.OccurrenceNumber)
	fmt.Printf("  Content hash: %s\n", record.ContentHash)

	if submitFlags.deleteDraft && submitFlags.draftID != "" {
		draftStore, err := openDraftStorage(cfg)
		if err != nil {
			return cli.NewCommandError("submit", err)
		}
		defer draftStore.Close()

		if err := draftStore.Delete(ctx, submitFlags.draftID); err != nil {
			return cli.NewCommandError("submit", fmt.Errorf("submission recorded but draft cleanup failed: %w", err))
		}
		fmt.Printf("  Draft %s deleted.\n", submitFlags.draftID)
	}

	return nil
}
