package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	"github.com/mosshrp/payroll_backend/internal/models"
	"github.com/mosshrp/payroll_backend/internal/utils/mapping"
)

// PgxAuditLogRepository persists reconciliation audit entries. The table is
// append-only; no update or delete statement exists here.
type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit log.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// AppendEntry inserts one audit entry.
func (r *PgxAuditLogRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	modelEntry, err := mapping.ToModelAuditEntry(entry)
	if err != nil {
		return fmt.Errorf("failed to encode audit entry details: %w", err)
	}

	query := `
		INSERT INTO audit_logs (entry_id, reconciliation_id, action, employee_id, details, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.ReconciliationID,
		modelEntry.Action,
		modelEntry.EmployeeID,
		modelEntry.Details,
		modelEntry.Actor,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry for reconciliation %s: %w", entry.ReconciliationID, err)
	}
	return nil
}

// ListEntriesByReconciliation retrieves a reconciliation's audit entries,
// oldest first.
func (r *PgxAuditLogRepository) ListEntriesByReconciliation(ctx context.Context, reconciliationID string) ([]domain.AuditLogEntry, error) {
	query := `
		SELECT entry_id, reconciliation_id, action, employee_id, details, actor, created_at
		FROM audit_logs
		WHERE reconciliation_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, reconciliationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for reconciliation %s: %w", reconciliationID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditLogEntry, error) {
		var entry models.AuditLogEntry
		err := row.Scan(
			&entry.EntryID,
			&entry.ReconciliationID,
			&entry.Action,
			&entry.EmployeeID,
			&entry.Details,
			&entry.Actor,
			&entry.CreatedAt,
		)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit entries for reconciliation %s: %w", reconciliationID, err)
	}

	entries := make([]domain.AuditLogEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainAuditEntry(m)
	}
	return entries, nil
}
