// Package audit provides an optional audit trail of Cryptr operations.
//
// When [audit] enabled = true, every successful command appends one JSON
// object per line to the audit log (by default
// <config dir>/cryptr/audit.jsonl). Each entry carries a random UUID, a UTC
// timestamp, the operation name and the files involved. Key material is
// never logged.
//
//	audit.Log(audit.Entry{
//	    Operation: "encryptfile",
//	    Input:     "report.pdf",
//	    Output:    "report.pdf.enc",
//	})
//
// Audit logging is best-effort. If writing fails the operation still
// succeeds.
//
// Use ReadEntries() to parse the log for display. Malformed lines are
// skipped to tolerate partial writes.
package audit
