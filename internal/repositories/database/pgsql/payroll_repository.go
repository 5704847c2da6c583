package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	"github.com/mosshrp/payroll_backend/internal/models"
	"github.com/mosshrp/payroll_backend/internal/utils/mapping"
)

type PgxPayrollRepository struct {
	BaseRepository
}

// newPgxPayrollRepository creates a new repository for payroll records.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const payrollColumns = `payroll_id, hotel_id, week_start, week_end, total_hours, total_amount, status, quickbooks_batch_id, generated_at`

func scanPayroll(row pgx.CollectableRow) (models.Payroll, error) {
	var payroll models.Payroll
	err := row.Scan(
		&payroll.PayrollID,
		&payroll.HotelID,
		&payroll.WeekStart,
		&payroll.WeekEnd,
		&payroll.TotalHours,
		&payroll.TotalAmount,
		&payroll.Status,
		&payroll.QuickbooksBatchID,
		&payroll.GeneratedAt,
	)
	return payroll, err
}

// ListPayrollRecords retrieves a hotel's payroll rows whose week_start falls
// inside the window, filtered to the given statuses. An empty status filter
// returns every non-draft row.
func (r *PgxPayrollRepository) ListPayrollRecords(ctx context.Context, hotelID string, startDate, endDate string, statuses []domain.PayrollStatus) ([]domain.PayrollRecord, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + payrollColumns + ` FROM payroll WHERE hotel_id = $1`)
	args := []any{hotelID}

	if startDate != "" {
		args = append(args, startDate)
		fmt.Fprintf(&sb, ` AND week_start >= $%d`, len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		fmt.Fprintf(&sb, ` AND week_start <= $%d`, len(args))
	}
	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, st := range statuses {
			statusStrings[i] = string(st)
		}
		args = append(args, statusStrings)
		fmt.Fprintf(&sb, ` AND status = ANY($%d)`, len(args))
	} else {
		fmt.Fprintf(&sb, ` AND status <> '%s'`, domain.PayrollDraft)
	}
	sb.WriteString(` ORDER BY week_start;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records for hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	modelPayrolls, err := pgx.CollectRows(rows, scanPayroll)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll records for hotel %s: %w", hotelID, err)
	}

	return mapping.ToDomainPayrollRecords(modelPayrolls), nil
}

// FindPayrollByID retrieves one payroll record.
func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE payroll_id = $1;`

	rows, err := r.Pool.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll %s: %w", payrollID, err)
	}

	modelPayroll, err := pgx.CollectOneRow(rows, scanPayroll)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll %s: %w", payrollID, err)
	}

	rec := mapping.ToDomainPayrollRecord(modelPayroll)
	return &rec, nil
}

// ListPayrollItems retrieves all per-employee items of one payroll, carrying
// the owning payroll's week_start on each item.
func (r *PgxPayrollRepository) ListPayrollItems(ctx context.Context, payrollID string) ([]domain.PayrollItem, error) {
	query := `
		SELECT pi.payroll_item_id, pi.payroll_id, pi.assignment_id, pi.employee_id, pi.hours_worked, pi.amount, p.week_start
		FROM payroll_items pi
		JOIN payroll p ON p.payroll_id = pi.payroll_id
		WHERE pi.payroll_id = $1
		ORDER BY pi.employee_id;
	`
	rows, err := r.Pool.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items of payroll %s: %w", payrollID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanPayrollItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan items of payroll %s: %w", payrollID, err)
	}

	return mapping.ToDomainPayrollItems(modelItems), nil
}

// ListPayrollItemsByEmployee retrieves an employee's payroll items across
// all payrolls whose week_start falls inside the given year.
func (r *PgxPayrollRepository) ListPayrollItemsByEmployee(ctx context.Context, employeeID string, year int) ([]domain.PayrollItem, error) {
	query := `
		SELECT pi.payroll_item_id, pi.payroll_id, pi.assignment_id, pi.employee_id, pi.hours_worked, pi.amount, p.week_start
		FROM payroll_items pi
		JOIN payroll p ON p.payroll_id = pi.payroll_id
		WHERE pi.employee_id = $1
		  AND EXTRACT(YEAR FROM p.week_start) = $2
		ORDER BY p.week_start;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll items for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanPayrollItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll items for employee %s: %w", employeeID, err)
	}

	return mapping.ToDomainPayrollItems(modelItems), nil
}

func scanPayrollItem(row pgx.CollectableRow) (models.PayrollItem, error) {
	var item models.PayrollItem
	err := row.Scan(
		&item.PayrollItemID,
		&item.PayrollID,
		&item.AssignmentID,
		&item.EmployeeID,
		&item.HoursWorked,
		&item.Amount,
		&item.WeekStart,
	)
	return item, err
}
