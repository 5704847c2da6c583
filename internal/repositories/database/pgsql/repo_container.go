package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	punchRepo := newPgxPunchRepository(dbPool)
	payrollRepo := newPgxPayrollRepository(dbPool)
	reconRepo := newPgxReconciliationRepository(dbPool)
	auditLogRepo := newPgxAuditLogRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PunchRepo:    punchRepo,
		PayrollRepo:  payrollRepo,
		ReconRepo:    reconRepo,
		AuditLogRepo: auditLogRepo,
	}
}
