package repositories

import (
	"context"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// AuditLogAppender appends reconciliation decisions to the audit log. The
// log is append-only: there are deliberately no update or delete operations
// on this interface.
type AuditLogAppender interface {
	AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error
}

// AuditLogReader lists audit entries for review surfaces.
type AuditLogReader interface {
	ListEntriesByReconciliation(ctx context.Context, reconciliationID string) ([]domain.AuditLogEntry, error)
}

// AuditLogRepositoryFacade combines audit log appender and reader.
type AuditLogRepositoryFacade interface {
	AuditLogAppender
	AuditLogReader
}
