// Package logging provides structured logging for the intake tool.
//
// The Logger wraps log/slog with configurable level and output format plus
// optional PII redaction: intake forms carry occurrence numbers, officer
// emails and phone numbers, none of which belong in plaintext logs.
package logging
