package domain

import "time"

// Audit actions recorded by the reconciliation workflow.
const (
	AuditActionBulkApproved     = "bulk_approved"
	AuditActionHoursApproved    = "hours_approved"
	AuditActionReconCompleted   = "reconciliation_completed"
	BulkApprovalReasonUnder5Pct = "bulk_auto_approved_under_5_percent"
)

// AuditLogEntry is one append-only record of a state-changing reconciliation
// decision. Entries are never mutated or deleted.
type AuditLogEntry struct {
	EntryID          string            `json:"entryID"`
	ReconciliationID string            `json:"reconciliationID"`
	Action           string            `json:"action"`
	EmployeeID       string            `json:"employeeID,omitempty"`
	Details          map[string]string `json:"details,omitempty"`
	Actor            string            `json:"actor"`
	CreatedAt        time.Time         `json:"createdAt"`
}
