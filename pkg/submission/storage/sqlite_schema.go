package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the submission database schema.
const Schema = `
-- Submission ledger
CREATE TABLE IF NOT EXISTS submissions (
    id TEXT PRIMARY KEY,
    draft_id TEXT,

    -- Classification
    form_type TEXT NOT NULL,
    occurrence_number TEXT NOT NULL,

    -- Timestamps
    submitted_at TIMESTAMP NOT NULL,
    recorded_at TIMESTAMP NOT NULL,

    -- Content
    values_json TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    field_count INTEGER NOT NULL,

    -- Provenance
    schema_version TEXT
);

-- Schema version table
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at);
CREATE INDEX IF NOT EXISTS idx_submissions_form_type ON submissions(form_type);
CREATE INDEX IF NOT EXISTS idx_submissions_occurrence ON submissions(occurrence_number);
`

// InsertSchemaVersion inserts the schema version into the schema_version table.
const InsertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// GetSchemaVersion retrieves the current schema version from the database.
const GetSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
