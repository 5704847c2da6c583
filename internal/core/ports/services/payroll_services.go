package services

import (
	"context"
	"time"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/dto"
)

// PayrollSvcFacade exposes hotel-level payroll aggregation over persisted
// payroll records. All folds run in the service's own memory so rounding is
// controlled identically regardless of record-store capability.
type PayrollSvcFacade interface {
	// ListPayrollHistory lists completed payroll records matching the filters.
	ListPayrollHistory(ctx context.Context, filters dto.PayrollHistoryFilters) ([]domain.PayrollRecord, error)

	// GetPayrollDetails returns one payroll record with its items.
	GetPayrollDetails(ctx context.Context, payrollID string) (*domain.PayrollRecord, []domain.PayrollItem, error)

	// GetMonthlyAggregation folds a hotel's non-draft payroll rows for one month.
	GetMonthlyAggregation(ctx context.Context, hotelID string, year, month int) (*domain.MonthlyAggregation, error)

	// GetYTDSummary folds a hotel's year with a per-month breakdown.
	GetYTDSummary(ctx context.Context, hotelID string, year int) (*domain.YTDSummary, error)

	// GetPayrollSummary folds a hotel's year into overall totals.
	GetPayrollSummary(ctx context.Context, hotelID string, year int) (*domain.PayrollYearSummary, error)

	// GetWeeklySummaries computes weekly summaries for many employees
	// concurrently. Per-employee failures are collected, not fatal: the
	// second map carries the error per failed employee ID.
	GetWeeklySummaries(ctx context.Context, employeeIDs []string, weekStart time.Time) (map[string]*domain.PeriodSummary, map[string]error, error)
}
