package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	"github.com/mosshrp/payroll_backend/internal/models"
	"github.com/mosshrp/payroll_backend/internal/utils/mapping"
)

type PgxPunchRepository struct {
	BaseRepository
}

// newPgxPunchRepository creates a new repository over the time-clock tables.
func newPgxPunchRepository(pool *pgxpool.Pool) portsrepo.PunchRepositoryFacade {
	return &PgxPunchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PunchRepositoryFacade = (*PgxPunchRepository)(nil)

// ListPunches retrieves an employee's punches inside the inclusive calendar
// date window. The timestamp column is raw time-clock text, so the window is
// matched on its date prefix and the value is passed through unparsed.
func (r *PgxPunchRepository) ListPunches(ctx context.Context, employeeID string, startDate, endDate string) ([]domain.Punch, error) {
	query := `
		SELECT punch_id, assignment_id, employee_id, punch_type, punch_timestamp
		FROM punches
		WHERE employee_id = $1
		  AND left(punch_timestamp, 10) >= $2
		  AND left(punch_timestamp, 10) <= $3
		ORDER BY punch_timestamp;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelPunches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Punch, error) {
		var punch models.Punch
		err := row.Scan(
			&punch.PunchID,
			&punch.AssignmentID,
			&punch.EmployeeID,
			&punch.Type,
			&punch.Timestamp,
		)
		return punch, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan punches for employee %s: %w", employeeID, err)
	}

	return mapping.ToDomainPunches(modelPunches), nil
}

// FindCurrentAssignment returns the employee's active assignment. The most
// recently created active assignment wins when several exist.
func (r *PgxPunchRepository) FindCurrentAssignment(ctx context.Context, employeeID string) (*domain.Assignment, error) {
	query := `
		SELECT assignment_id, employee_id, hotel_id, position_id, hourly_rate::text, active
		FROM assignments
		WHERE employee_id = $1 AND active
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var modelAssignment models.Assignment
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&modelAssignment.AssignmentID,
		&modelAssignment.EmployeeID,
		&modelAssignment.HotelID,
		&modelAssignment.PositionID,
		&modelAssignment.HourlyRate,
		&modelAssignment.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active assignment for employee %s: %w", employeeID, err)
	}

	domainAssignment := mapping.ToDomainAssignment(modelAssignment)
	return &domainAssignment, nil
}
