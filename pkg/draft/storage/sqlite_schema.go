package storage

// Schema creates the drafts table and its indexes. Timestamps are stored as
// SQLite TIMESTAMP values so age-based pruning can compare them directly.
const Schema = `
CREATE TABLE IF NOT EXISTS drafts (
	id           TEXT PRIMARY KEY,
	form_type    TEXT NOT NULL,
	values_json  TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_drafts_form_type ON drafts(form_type);
CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at);
`

const (
	saveDraftSQL = `
INSERT INTO drafts (id, form_type, values_json, content_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	form_type    = excluded.form_type,
	values_json  = excluded.values_json,
	content_hash = excluded.content_hash,
	updated_at   = excluded.updated_at`

	getDraftSQL = `
SELECT id, form_type, values_json, content_hash, created_at, updated_at
FROM drafts WHERE id = ?`

	deleteDraftSQL = `DELETE FROM drafts WHERE id = ?`

	countDraftsSQL = `SELECT COUNT(*) FROM drafts`
)
