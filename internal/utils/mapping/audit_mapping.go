package mapping

import (
	"encoding/json"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/models"
)

// ToModelAuditEntry converts a domain audit entry for insertion, encoding
// the details map as JSON.
func ToModelAuditEntry(d domain.AuditLogEntry) (models.AuditLogEntry, error) {
	var details []byte
	if d.Details != nil {
		b, err := json.Marshal(d.Details)
		if err != nil {
			return models.AuditLogEntry{}, err
		}
		details = b
	}
	m := models.AuditLogEntry{
		EntryID:          d.EntryID,
		ReconciliationID: d.ReconciliationID,
		Action:           d.Action,
		Details:          details,
		Actor:            d.Actor,
		CreatedAt:        d.CreatedAt,
	}
	if d.EmployeeID != "" {
		emp := d.EmployeeID
		m.EmployeeID = &emp
	}
	return m, nil
}

// ToDomainAuditEntry converts a model audit row back to its domain form.
func ToDomainAuditEntry(m models.AuditLogEntry) domain.AuditLogEntry {
	entry := domain.AuditLogEntry{
		EntryID:          m.EntryID,
		ReconciliationID: m.ReconciliationID,
		Action:           m.Action,
		Actor:            m.Actor,
		CreatedAt:        m.CreatedAt,
	}
	if m.EmployeeID != nil {
		entry.EmployeeID = *m.EmployeeID
	}
	if len(m.Details) > 0 {
		details := make(map[string]string)
		if err := json.Unmarshal(m.Details, &details); err == nil {
			entry.Details = details
		}
	}
	return entry
}
