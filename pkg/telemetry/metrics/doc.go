// Package metrics provides Prometheus metric collection for the intake
// tool. Because intake is a command-line program with no network surface,
// metrics are not scraped: they are dumped to a textfile in Prometheus
// exposition format on exit, suitable for node-exporter's textfile
// collector.
//
// The Collector aggregates per-concern metric groups:
//
//   - ValidationMetrics: form validations run and field failures
//   - StoreMetrics: drafts saved, submissions recorded, prune deletions
//
// All recording methods are no-ops when collection is disabled, so callers
// never need to guard their call sites.
package metrics
