package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
	"peelvsu/intake/pkg/forms/validation"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate <form-type> <values-file>",
	Short: "Validate a filled-in form",
	Long: `Validate a YAML values file against a form schema.

Every field is checked against its validation rule (occurrence number
format, officer email domain, phone digits, locker range, recording date)
and the conditional requirements are resolved: selecting "Other" for
offence type, video location or service required makes the matching
detail field mandatory.

Examples:
  # Validate an upload request
  intake validate upload request.yaml

  # JSON output for scripting
  intake validate analysis request.yaml --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationResult is the JSON shape of one validation run.
type validationResult struct {
	FormType string            `json:"form_type"`
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
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
		return cli.NewCommandError("validate", err)
	}
	formSchema, err := schemas.Get(formType)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	values, err := forms.LoadValues(valuesPath)
	if err != nil {
		return cli.NewCommandError("validate", fmt.Errorf("failed to load values file: %w", err))
	}

	start := time.Now()
	validator := validation.New(nil)
	errs := schema.ValidateForm(validator, formSchema, values)
	collector.RecordValidation(string(formType), sortedFieldNames(errs), time.Since(start))

	result := validationResult{
		FormType: string(formType),
		File:     valuesPath,
		Valid:    errs.OK(),
	}
	if !errs.OK() {
		result.Errors = make(map[string]string, len(errs))
		for field, msg := range errs {
			result.Errors[string(field)] = msg
		}
	}

	if validateFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		printValidationText(result, errs)
	}

	if !errs.OK() {
		return cli.NewCommandError("validate", fmt.Errorf("%d field(s) failed validation", len(errs)))
	}
	return nil
}

func printValidationText(result validationResult, errs forms.Errors) {
	fmt.Printf("Validating %s (%s form)...\n", result.File, result.FormType)

	if errs.OK() {
		fmt.Println("✓ All fields valid")
		return
	}

	for _, field := range sortedFieldNames(errs) {
		fmt.Printf("✗ %s: %s\n", field, errs[forms.FieldName(field)])
	}
	fmt.Println()
	fmt.Printf("%d field(s) failed validation\n", len(errs))
}

// sortedFieldNames returns the failing field names in deterministic order.
func sortedFieldNames(errs forms.Errors) []string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	return fields
}
