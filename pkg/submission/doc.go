// Package submission defines the permanent record written when an intake
// form is submitted.
//
// A SubmissionRecord is the audit trail for one evidence request: the final
// validated field values (with contact details redacted for at-rest storage),
// a SHA-256 content hash for tamper detection, and the schema version the
// form was validated against.
//
// Records are written through the recorder subpackage, persisted by the
// storage subpackage and exported by pkg/report.
package submission
