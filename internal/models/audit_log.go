package models

import "time"

// AuditLogEntry mirrors the audit_logs table. Rows are insert-only.
type AuditLogEntry struct {
	EntryID          string    `json:"entryID"`
	ReconciliationID string    `json:"reconciliationID"`
	Action           string    `json:"action"`
	EmployeeID       *string   `json:"employeeID"`
	Details          []byte    `json:"details"` // jsonb payload
	Actor            string    `json:"actor"`
	CreatedAt        time.Time `json:"createdAt"`
}
