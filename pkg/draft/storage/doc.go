// Package storage provides draft persistence backends: a SQLite backend for
// durable local storage and an in-memory backend for tests. Both satisfy
// draft.Storage.
package storage
