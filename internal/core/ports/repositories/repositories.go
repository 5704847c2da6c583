package repositories

// RepositoryProvider holds instances of all repositories.
type RepositoryProvider struct {
	PunchRepo    PunchRepositoryFacade
	PayrollRepo  PayrollRepositoryFacade
	ReconRepo    ReconciliationRepositoryFacade
	AuditLogRepo AuditLogRepositoryFacade
}
