// Package recorder writes submission records asynchronously.
//
// Record builds a SubmissionRecord from validated form values, hashes the
// content, redacts officer contact details, and enqueues the record on a
// buffered channel. A background worker drains the channel into storage so
// the submit path never blocks on disk. Close drains the channel before
// returning, so no accepted submission is lost on shutdown.
package recorder
