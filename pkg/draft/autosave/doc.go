// Package autosave keeps a draft in sync with a values file while an officer
// fills in a form.
//
// The Saver watches the values file with fsnotify and flushes a draft to
// storage after each debounced change; a cron-driven periodic flush covers
// filesystems where change events are unreliable. Flushes are skipped when
// the content hash is unchanged, so an idle session never churns the store.
package autosave
