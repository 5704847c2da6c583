package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/utils/timeclock"
	"github.com/shopspring/decimal"
)

// weeklyOvertimeCutoff is the number of hours in a week beyond which hours
// count as overtime. Overtime is a weekly concept; monthly and yearly
// aggregation never re-slices it.
var weeklyOvertimeCutoff = decimal.NewFromInt(40)

// timesheetService aggregates raw time-clock punches into work days and
// per-employee period summaries.
type timesheetService struct {
	BaseService
	punchRepo   portsrepo.PunchRepositoryFacade
	payrollRepo portsrepo.PayrollRepositoryFacade
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(punchRepo portsrepo.PunchRepositoryFacade, payrollRepo portsrepo.PayrollRepositoryFacade) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		punchRepo:   punchRepo,
		payrollRepo: payrollRepo,
	}
}

var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// ComputeDailyHours groups an unordered punch collection into one WorkDay
// per work date. Parse failures degrade single days and are returned as
// warnings alongside the complete result.
func (s *timesheetService) ComputeDailyHours(ctx context.Context, punches []domain.Punch) ([]domain.WorkDay, []error) {
	days, parseErrs := timeclock.ComputeDailyHours(punches)
	for _, perr := range parseErrs {
		s.LogWarn(ctx, "Malformed punch timestamp, work day degraded", slog.String("error", perr.Error()))
	}
	return days, parseErrs
}

// GetWeeklySummary fetches and aggregates one employee's punches for the
// 7-day window starting at weekStart.
func (s *timesheetService) GetWeeklySummary(ctx context.Context, employeeID string, weekStart time.Time) (*domain.PeriodSummary, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if weekStart.IsZero() {
		return nil, fmt.Errorf("%w: weekStart is required", apperrors.ErrValidation)
	}

	startDate := weekStart.UTC().Format(timeclock.DateLayout)
	endDate := weekStart.UTC().AddDate(0, 0, 6).Format(timeclock.DateLayout)

	punches, err := s.punchRepo.ListPunches(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list punches for weekly summary", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("%w: listing punches for employee %s: %w", apperrors.ErrDependency, employeeID, err)
	}

	days, _ := s.ComputeDailyHours(ctx, punches)

	totalHours := decimal.Zero
	daysWorked := 0
	for _, day := range days {
		totalHours = totalHours.Add(day.TotalHours)
		if day.TotalHours.IsPositive() {
			daysWorked++
		}
	}

	overtime := decimal.Zero
	if totalHours.GreaterThan(weeklyOvertimeCutoff) {
		overtime = totalHours.Sub(weeklyOvertimeCutoff)
	}

	summary := &domain.PeriodSummary{
		SubjectID:     employeeID,
		PeriodStart:   startDate,
		PeriodEnd:     endDate,
		TotalHours:    totalHours,
		DaysWorked:    daysWorked,
		OvertimeHours: overtime,
		EstimatedPay:  decimal.Zero,
	}

	// A missing hourly rate is a data-completeness warning, not an error:
	// the summary still reports hours, with estimated pay zeroed.
	rate, err := s.resolveHourlyRate(ctx, employeeID)
	if err != nil {
		s.LogWarn(ctx, "Hourly rate unavailable, estimated pay zeroed",
			slog.String("employee_id", employeeID),
			slog.String("reason", err.Error()))
		summary.RateMissing = true
	} else {
		summary.EstimatedPay = totalHours.Mul(rate)
	}

	s.LogInfo(ctx, "Weekly summary computed",
		slog.String("employee_id", employeeID),
		slog.String("week_start", startDate),
		slog.String("total_hours", totalHours.String()),
		slog.Int("days_worked", daysWorked))
	return summary, nil
}

// resolveHourlyRate looks up the employee's current assignment rate.
func (s *timesheetService) resolveHourlyRate(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	assignment, err := s.punchRepo.FindCurrentAssignment(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("no active assignment for employee %s", employeeID)
		}
		return decimal.Zero, err
	}
	if !assignment.HourlyRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("assignment %s has no hourly rate", assignment.AssignmentID)
	}
	return assignment.HourlyRate, nil
}

// GetEmployeePayrollHistory lists an employee's payroll items across a year.
func (s *timesheetService) GetEmployeePayrollHistory(ctx context.Context, employeeID string, year int) ([]domain.PayrollItem, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", apperrors.ErrValidation)
	}

	items, err := s.payrollRepo.ListPayrollItemsByEmployee(ctx, employeeID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll history", slog.String("employee_id", employeeID), slog.Int("year", year))
		return nil, fmt.Errorf("%w: listing payroll items for employee %s: %w", apperrors.ErrDependency, employeeID, err)
	}

	s.LogInfo(ctx, "Payroll history retrieved", slog.String("employee_id", employeeID), slog.Int("year", year), slog.Int("item_count", len(items)))
	return items, nil
}
