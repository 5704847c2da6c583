package repositories

import (
	"context"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// PunchReader defines read operations against the time-clock record store.
// Punches are owned by the time-clock subsystem and are immutable here.
type PunchReader interface {
	// ListPunches retrieves an employee's punches with timestamps inside the
	// inclusive [startDate, endDate] calendar-date window.
	ListPunches(ctx context.Context, employeeID string, startDate, endDate string) ([]domain.Punch, error)
}

// AssignmentReader resolves employee assignments, the source of hourly rates.
type AssignmentReader interface {
	// FindCurrentAssignment returns the employee's active assignment, or
	// apperrors.ErrNotFound when the employee has none.
	FindCurrentAssignment(ctx context.Context, employeeID string) (*domain.Assignment, error)
}

// PunchRepositoryFacade combines time-clock read interfaces.
type PunchRepositoryFacade interface {
	PunchReader
	AssignmentReader
}
