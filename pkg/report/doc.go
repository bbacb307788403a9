// Package report exports submission records for records-unit workflows.
//
// Three formats are supported:
//
//   - JSON for machine consumption and archival
//   - CSV for spreadsheet review
//   - Text for printable one-per-page request summaries
//
// All exporters satisfy submission.Exporter.
package report
