package dto

import (
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PunchInput is one raw clock event submitted for daily-hours computation.
// The timestamp is passed through verbatim; a malformed value degrades its
// work day instead of rejecting the request.
type PunchInput struct {
	PunchID      string `json:"punchID"`
	AssignmentID string `json:"assignmentID"`
	EmployeeID   string `json:"employeeID"`
	Type         string `json:"type" binding:"required"`
	Timestamp    string `json:"timestamp" binding:"required"`
}

// ComputeDailyHoursRequest carries the punches of one employee over a date
// window.
type ComputeDailyHoursRequest struct {
	Punches []PunchInput `json:"punches" binding:"required,dive"`
}

// ToDomainPunches converts the request payload into domain punches.
func (r ComputeDailyHoursRequest) ToDomainPunches() []domain.Punch {
	punches := make([]domain.Punch, len(r.Punches))
	for i, p := range r.Punches {
		punches[i] = domain.Punch{
			PunchID:      p.PunchID,
			AssignmentID: p.AssignmentID,
			EmployeeID:   p.EmployeeID,
			Type:         domain.PunchType(p.Type),
			Timestamp:    p.Timestamp,
		}
	}
	return punches
}

// WorkDayResponse is one computed work day in the daily-hours response.
type WorkDayResponse struct {
	WorkDate            string          `json:"workDate"`
	ClockIn             string          `json:"clockIn,omitempty"`
	BreakStart          string          `json:"breakStart,omitempty"`
	BreakEnd            string          `json:"breakEnd,omitempty"`
	ClockOut            string          `json:"clockOut,omitempty"`
	TotalHours          decimal.Decimal `json:"totalHours"`
	HasCompleteSequence bool            `json:"hasCompleteSequence"`
	HasGap              bool            `json:"hasGap"`
}

// ComputeDailyHoursResponse carries computed work days plus any per-record
// parse warnings.
type ComputeDailyHoursResponse struct {
	WorkDays []WorkDayResponse `json:"workDays"`
	Warnings []string          `json:"warnings,omitempty"`
}

// ToWorkDayResponses converts domain work days into the response shape.
func ToWorkDayResponses(days []domain.WorkDay) []WorkDayResponse {
	out := make([]WorkDayResponse, len(days))
	for i, d := range days {
		resp := WorkDayResponse{
			WorkDate:            d.WorkDate,
			TotalHours:          d.TotalHours,
			HasCompleteSequence: d.HasCompleteSequence,
			HasGap:              d.HasGap,
		}
		if d.ClockIn != nil {
			resp.ClockIn = d.ClockIn.Format("2006-01-02T15:04:05Z07:00")
		}
		if d.BreakStart != nil {
			resp.BreakStart = d.BreakStart.Format("2006-01-02T15:04:05Z07:00")
		}
		if d.BreakEnd != nil {
			resp.BreakEnd = d.BreakEnd.Format("2006-01-02T15:04:05Z07:00")
		}
		if d.ClockOut != nil {
			resp.ClockOut = d.ClockOut.Format("2006-01-02T15:04:05Z07:00")
		}
		out[i] = resp
	}
	return out
}

// WeeklySummaryResponse is an employee's aggregated week.
type WeeklySummaryResponse struct {
	EmployeeID    string          `json:"employeeID"`
	WeekStart     string          `json:"weekStart"`
	WeekEnd       string          `json:"weekEnd"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	DaysWorked    int             `json:"daysWorked"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	EstimatedPay  decimal.Decimal `json:"estimatedPay"`
	RateMissing   bool            `json:"rateMissing,omitempty"`
}

// ToWeeklySummaryResponse converts a domain period summary into the weekly
// response shape.
func ToWeeklySummaryResponse(s *domain.PeriodSummary) WeeklySummaryResponse {
	return WeeklySummaryResponse{
		EmployeeID:    s.SubjectID,
		WeekStart:     s.PeriodStart,
		WeekEnd:       s.PeriodEnd,
		TotalHours:    s.TotalHours,
		DaysWorked:    s.DaysWorked,
		OvertimeHours: s.OvertimeHours,
		EstimatedPay:  s.EstimatedPay,
		RateMissing:   s.RateMissing,
	}
}
