// Intake is a local-first intake tool for police evidence request forms.
//
// It validates Upload, Analysis and Recovery request forms against their
// schemas, keeps work-in-progress drafts with auto-save, and records
// finalized submissions to a local ledger:
//   - Field validation with conditional requirements (e.g. "Other" fields)
//   - Draft persistence with auto-save and retention pruning
//   - Async submission recording with contact redaction and content hashing
//   - Submission export as JSON, CSV or a printable text report
//
// Usage:
//
//	# Validate a filled-in values file
//	intake validate upload request.yaml
//
//	# Submit a validated form
//	intake submit upload request.yaml
//
//	# Keep a draft in sync while editing
//	intake autosave upload request.yaml
//
//	# Export recorded submissions
//	intake export --form upload --format csv --output submissions.csv
//
//	# Lint schema files
//	intake schema lint --path schemas/
package main

func main() {
	Execute()
}
