// Package telemetry groups the observability subpackages for the intake
// tool.
//
//   - logging: structured slog-based logging with PII redaction
//   - metrics: Prometheus counters dumped to a textfile on exit
//
// Intake is a command-line program, so there is no scrape endpoint and no
// tracing backend; both subpackages are wired for local operation.
package telemetry
