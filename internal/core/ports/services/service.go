package services

// ServiceContainer holds instances of all the application services. It is
// the main entry point for accessing service functionality and is used by
// the handlers.
type ServiceContainer struct {
	Timesheet      TimesheetSvcFacade
	Payroll        PayrollSvcFacade
	Reconciliation ReconciliationSvcFacade
}
