package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"peelvsu/intake/pkg/cli"
	"peelvsu/intake/pkg/config"
	"peelvsu/intake/pkg/forms"
	"peelvsu/intake/pkg/report"
	"peelvsu/intake/pkg/submission"
)

var exportFlags struct {
	timeRange  string
	form       string
	occurrence string
	limit      int
	offset     int
	order      string
	format     string
	output     string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded submissions",
	Long: `Query the submission ledger and export matching records.

Time Range Format:
  RFC3339 interval format: "start/end"
  Example: "2026-08-01T00:00:00Z/2026-09-01T00:00:00Z"

Examples:
  # Export everything as a printable report
  intake export

  # Export one occurrence as JSON
  intake export --occurrence PR260001234 --format json

  # Export a month of upload requests to CSV
  intake export --form upload \
    --time-range "2026-08-01T00:00:00Z/2026-09-01T00:00:00Z" \
    --format csv --output august.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFlags.timeRange, "time-range", "", "time range (RFC3339 interval: start/end)")
	exportCmd.Flags().StringVar(&exportFlags.form, "form", "", "filter by form type: upload, analysis, recovery")
	exportCmd.Flags().StringVar(&exportFlags.occurrence, "occurrence", "", "filter by occurrence number")
	exportCmd.Flags().IntVar(&exportFlags.limit, "limit", 100, "max results")
	exportCmd.Flags().IntVar(&exportFlags.offset, "offset", 0, "pagination offset")
	exportCmd.Flags().StringVar(&exportFlags.order, "order", "desc", "sort order on submission time: asc, desc")
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "", "output format: text, json, csv (default from config)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openSubmissionStorage(cfg)
	if err != nil {
		return cli.NewCommandError("export", err)
	}
	defer store.Close()

	query := &submission.Query{
		FormType:         forms.FormType(exportFlags.form),
		OccurrenceNumber: exportFlags.occurrence,
		Limit:            exportFlags.limit,
		Offset:           exportFlags.offset,
		SortOrder:        exportFlags.order,
	}

	if exportFlags.timeRange != "" {
		parts := strings.Split(exportFlags.timeRange, "/")
		if len(parts) != 2 {
			return fmt.Errorf("invalid time range format (expected: start/end)")
		}

		startTime, err := time.Parse(time.RFC3339, parts[0])
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		query.StartTime = &startTime

		endTime, err := time.Parse(time.RFC3339, parts[1])
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}
		query.EndTime = &endTime
	}

	ctx := context.Background()
	records, err := store.Query(ctx, query)
	if err != nil {
		return cli.NewCommandError("export", fmt.Errorf("query failed: %w", err))
	}

	exporter, err := newExporter(cfg, exportFlags.format)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	var out io.Writer = os.Stdout
	if exportFlags.output != "" {
		f, err := os.Create(exportFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := exporter.Export(ctx, records, out); err != nil {
		return cli.NewCommandError("export", err)
	}

	if exportFlags.output != "" {
		fmt.Printf("Exported %d record(s) to %s.\n", len(records), exportFlags.output)
	}
	return nil
}

// newExporter builds the exporter for the requested format, falling back to
// the configured default format when the flag is empty.
func newExporter(cfg *config.Config, format string) (submission.Exporter, error) {
	if format == "" {
		format = cfg.Export.Format
	}

	switch format {
	case "json":
		return report.NewJSONExporter(cfg.Export.JSONPretty), nil
	case "csv":
		return report.NewCSVExporter(cfg.Export.CSVHeader), nil
	case "text":
		schemas, err := loadSchemas(cfg)
		if err != nil {
			return nil, err
		}
		return report.NewTextExporter(schemas), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, csv)", format)
	}
}
