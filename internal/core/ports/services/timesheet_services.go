package services

import (
	"context"
	"time"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// TimesheetSvcFacade exposes punch aggregation and per-employee period
// summaries.
type TimesheetSvcFacade interface {
	// ComputeDailyHours groups raw punches into one WorkDay per work date.
	// Parse failures are returned alongside the (still complete) result; the
	// affected days carry zero hours and hasGap.
	ComputeDailyHours(ctx context.Context, punches []domain.Punch) ([]domain.WorkDay, []error)

	// GetWeeklySummary fetches the employee's punches for the 7-day window
	// starting at weekStart and aggregates them into a PeriodSummary.
	GetWeeklySummary(ctx context.Context, employeeID string, weekStart time.Time) (*domain.PeriodSummary, error)

	// GetEmployeePayrollHistory lists the employee's payroll items for a year.
	GetEmployeePayrollHistory(ctx context.Context, employeeID string, year int) ([]domain.PayrollItem, error)
}
