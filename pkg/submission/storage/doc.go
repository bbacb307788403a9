// Package storage provides submission persistence backends.
//
// The SQLite backend is the durable store for the submission ledger; the
// in-memory backend exists for tests. Both satisfy submission.Storage.
package storage
