package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/forms/schema"
)

var schemaFlags struct {
	path   string
	format string
	watch  bool
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and lint form schemas",
	Long: `Inspect and lint form schema definitions.

Subcommands:
  lint - Check schema files for problems
  show - Show the resolved schema for a form type

Examples:
  # Lint the configured schema directory
  intake schema lint

  # Lint a specific directory, re-checking on changes
  intake schema lint --path schemas/ --watch

  # Show the resolved upload schema
  intake schema show upload`,
}

var schemaLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check schema files for problems",
	Args:  cobra.NoArgs,
	RunE:  runSchemaLint,
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <form-type>",
	Short: "Show the resolved schema for a form type",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaShow,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaLintCmd, schemaShowCmd)

	schemaLintCmd.Flags().StringVar(&schemaFlags.path, "path", "", "schema file or directory (default from config)")
	schemaLintCmd.Flags().StringVar(&schemaFlags.format, "format", "text", "output format: text, json")
	schemaLintCmd.Flags().BoolVar(&schemaFlags.watch, "watch", false, "re-lint on schema file changes")
	schemaShowCmd.Flags().StringVar(&schemaFlags.format, "format", "text", "output format: text, json")
}

// lintResult is the lint outcome for a single schema file.
type lintResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

func runSchemaLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := schemaFlags.path
	if path == "" {
		path = cfg.Schemas.Path
	}
	if path == "" {
		return fmt.Errorf("no schema path: pass --path or set schemas.path in the config")
	}

	if err := lintSchemaPath(path); err != nil {
		if !schemaFlags.watch {
			return err
		}
		// In watch mode a failing initial pass is reported, not fatal;
		// the point is to re-check as the files are fixed.
		fmt.Fprintln(os.Stderr, err)
	}

	if !schemaFlags.watch {
		return nil
	}

	watcher, err := schema.NewWatcher(schema.WatcherConfig{
		Path:             path,
		DebounceInterval: cfg.Schemas.DebounceInterval,
	}, nil)
	if err != nil {
		return cli.NewCommandError("schema", err)
	}
	defer watcher.Close()

	ctx := cli.SetupSignalHandler()
	fmt.Println("Watching for schema changes. Press Ctrl-C to stop.")

	return watcher.Watch(ctx, func() error {
		if err := lintSchemaPath(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return nil
	})
}

func lintSchemaPath(path string) error {
	files, err := collectSchemaFiles(path)
	if err != nil {
		return cli.NewCommandError("schema", err)
	}
	if len(files) == 0 {
		return cli.NewCommandError("schema", fmt.Errorf("no schema files found at %q", path))
	}

	results := make([]lintResult, 0, len(files))
	totalIssues := 0
	for _, file := range files {
		result := lintSchemaFile(file)
		totalIssues += len(result.Issues)
		results = append(results, result)
	}

	if schemaFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			fmt.Printf("Checking %s...\n", result.File)
			if result.Valid {
				fmt.Println("✓ Schema valid")
			}
			for _, issue := range result.Issues {
				fmt.Printf("✗ %s\n", issue)
			}
		}
		fmt.Println()
		fmt.Printf("Summary: %d file(s), %d issue(s)\n", len(results), totalIssues)
	}

	if totalIssues > 0 {
		return cli.NewCommandError("schema", fmt.Errorf("lint failed"))
	}
	return nil
}

func collectSchemaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat schema path %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list schema files: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func lintSchemaFile(path string) lintResult {
	result := lintResult{File: path, Valid: true}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Issues = append(result.Issues, err.Error())
		return result
	}

	var formSchema schema.FormSchema
	if err := yaml.Unmarshal(data, &formSchema); err != nil {
		result.Valid = false
		result.Issues = append(result.Issues, fmt.Sprintf("invalid YAML: %v", err))
		return result
	}

	for _, issue := range schema.Lint(&formSchema) {
		result.Valid = false
		result.Issues = append(result.Issues, issue.String())
	}
	return result
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemas, err := loadSchemas(cfg)
	if err != nil {
		return cli.NewCommandError("schema", err)
	}

	formSchema, err := schemas.Get(forms.FormType(args[0]))
	if err != nil {
		return cli.NewCommandError("schema", err)
	}

	if schemaFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, formSchema)
	}

	fmt.Printf("%s (%s form)\n", formSchema.Title, formSchema.Type)
	if version := schemaVersion(cfg); version != nil {
		fmt.Printf("Schema version: %s (%s, %s)\n",
			version.CommitSHA, version.Branch, version.CommitTime.Format(time.RFC3339))
	}
	fmt.Println()

	for _, fd := range formSchema.Fields {
		required := "optional"
		if fd.Required {
			required = "required"
		}
		fmt.Printf("  %-22s %-18s %-9s %s\n", fd.Name, fd.Kind, required, fd.Label)
	}
	return nil
}
