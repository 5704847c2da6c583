package services

import (
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, resultCache portsrepo.ResultCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Timesheet aggregation first; the payroll batch endpoint fans out to it.
	container.Timesheet = NewTimesheetService(repos.PunchRepo, repos.PayrollRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo, container.Timesheet)
	container.Reconciliation = NewReconciliationService(repos.ReconRepo, repos.AuditLogRepo, resultCache)

	return container
}
