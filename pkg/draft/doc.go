// Package draft provides local persistence for in-progress evidence request
// forms. A draft is a point-in-time snapshot of a form's value mapping,
// identified by a stable UUID so repeated auto-saves update the same record
// instead of piling up copies.
//
// Storage backends live in the storage subpackage (SQLite for durable
// single-device persistence, memory for tests). The autosave subpackage
// watches a values file and saves debounced snapshots; the retention
// subpackage prunes stale drafts on a cron schedule.
//
// Drafts never leave the device. There is no sync, no server, and no
// account; the only durability domain is the local database file.
package draft
