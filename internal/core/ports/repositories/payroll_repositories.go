package repositories

import (
	"context"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// PayrollReader defines read operations for persisted payroll records and
// their per-employee items.
type PayrollReader interface {
	// ListPayrollRecords retrieves a hotel's payroll rows whose week_start
	// falls inside the inclusive [startDate, endDate] window, filtered to the
	// given statuses. An empty status filter means all non-draft rows.
	ListPayrollRecords(ctx context.Context, hotelID string, startDate, endDate string, statuses []domain.PayrollStatus) ([]domain.PayrollRecord, error)

	// FindPayrollByID retrieves one payroll record.
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// ListPayrollItems retrieves all per-employee items of one payroll.
	ListPayrollItems(ctx context.Context, payrollID string) ([]domain.PayrollItem, error)

	// ListPayrollItemsByEmployee retrieves an employee's payroll items across
	// all payrolls whose week_start falls inside the given year.
	ListPayrollItemsByEmployee(ctx context.Context, employeeID string, year int) ([]domain.PayrollItem, error)
}

// PayrollRepositoryFacade is the full payroll record-store surface consumed
// by the aggregation core. Summation always happens in the aggregator's own
// memory, never in the store.
type PayrollRepositoryFacade interface {
	PayrollReader
}
