package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/dto"
	"github.com/mosshrp/payroll_backend/internal/utils/timeclock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// weeklySummaryConcurrency bounds the fan-out of the batch weekly summary
// endpoint so one large request cannot exhaust the store's connection pool.
const weeklySummaryConcurrency = 8

// payrollService folds persisted payroll records into period views. Every
// sum runs in this process; the record store is only ever asked for rows.
type payrollService struct {
	BaseService
	payrollRepo  portsrepo.PayrollRepositoryFacade
	timesheetSvc portssvc.TimesheetSvcFacade
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, timesheetSvc portssvc.TimesheetSvcFacade) portssvc.PayrollSvcFacade {
	return &payrollService{
		payrollRepo:  payrollRepo,
		timesheetSvc: timesheetSvc,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// ListPayrollHistory lists payroll records matching the filters. An empty
// status filter defaults to the completed statuses.
func (s *payrollService) ListPayrollHistory(ctx context.Context, filters dto.PayrollHistoryFilters) ([]domain.PayrollRecord, error) {
	if filters.HotelID == "" {
		return nil, fmt.Errorf("%w: hotelID is required", apperrors.ErrValidation)
	}

	statuses := make([]domain.PayrollStatus, 0, len(filters.Statuses))
	for _, st := range filters.Statuses {
		statuses = append(statuses, domain.PayrollStatus(st))
	}
	if len(statuses) == 0 {
		statuses = domain.CompletedPayrollStatuses
	}

	records, err := s.payrollRepo.ListPayrollRecords(ctx, filters.HotelID, filters.StartDate, filters.EndDate, statuses)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll records", slog.String("hotel_id", filters.HotelID))
		return nil, fmt.Errorf("%w: listing payroll records for hotel %s: %w", apperrors.ErrDependency, filters.HotelID, err)
	}
	return records, nil
}

// GetPayrollDetails returns one payroll record with its items.
func (s *payrollService) GetPayrollDetails(ctx context.Context, payrollID string) (*domain.PayrollRecord, []domain.PayrollItem, error) {
	if payrollID == "" {
		return nil, nil, fmt.Errorf("%w: payrollID is required", apperrors.ErrValidation)
	}

	record, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find payroll", slog.String("payroll_id", payrollID))
		return nil, nil, err
	}

	items, err := s.payrollRepo.ListPayrollItems(ctx, payrollID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll items", slog.String("payroll_id", payrollID))
		return nil, nil, fmt.Errorf("%w: listing items of payroll %s: %w", apperrors.ErrDependency, payrollID, err)
	}
	return record, items, nil
}

// GetMonthlyAggregation folds a hotel's non-draft payroll rows whose
// week_start falls in the given month.
func (s *payrollService) GetMonthlyAggregation(ctx context.Context, hotelID string, year, month int) (*domain.MonthlyAggregation, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotelID is required", apperrors.ErrValidation)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := s.listNonDraft(ctx, hotelID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	agg := &domain.MonthlyAggregation{
		HotelID:     hotelID,
		Year:        year,
		Month:       month,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
	}
	for _, rec := range records {
		agg.TotalHours = agg.TotalHours.Add(rec.TotalHours)
		agg.TotalAmount = agg.TotalAmount.Add(rec.TotalAmount)
		agg.WeekCount++
	}
	agg.AvgWeeklyHours = decimal.Zero
	if agg.WeekCount > 0 {
		agg.AvgWeeklyHours = agg.TotalHours.Div(decimal.NewFromInt(int64(agg.WeekCount)))
	}

	s.LogInfo(ctx, "Monthly aggregation computed",
		slog.String("hotel_id", hotelID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("week_count", agg.WeekCount))
	return agg, nil
}

// GetYTDSummary folds a hotel's year with a per-month breakdown keyed by the
// month of each record's week start.
func (s *payrollService) GetYTDSummary(ctx context.Context, hotelID string, year int) (*domain.YTDSummary, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotelID is required", apperrors.ErrValidation)
	}

	records, err := s.listNonDraft(ctx, hotelID, yearStart(year), yearEnd(year))
	if err != nil {
		return nil, err
	}

	summary := &domain.YTDSummary{
		HotelID:          hotelID,
		Year:             year,
		TotalHours:       decimal.Zero,
		TotalAmount:      decimal.Zero,
		MonthlyBreakdown: make(map[int]domain.MonthBucket),
	}
	for _, rec := range records {
		summary.TotalHours = summary.TotalHours.Add(rec.TotalHours)
		summary.TotalAmount = summary.TotalAmount.Add(rec.TotalAmount)

		weekStart, err := timeclock.ParseDate(rec.WeekStart)
		if err != nil {
			s.LogWarn(ctx, "Payroll record has unparseable week start, excluded from monthly breakdown",
				slog.String("payroll_id", rec.PayrollID),
				slog.String("week_start", rec.WeekStart))
			continue
		}
		m := int(weekStart.Month())
		bucket := summary.MonthlyBreakdown[m]
		bucket.TotalHours = bucket.TotalHours.Add(rec.TotalHours)
		bucket.TotalAmount = bucket.TotalAmount.Add(rec.TotalAmount)
		bucket.WeekCount++
		summary.MonthlyBreakdown[m] = bucket
	}

	s.LogInfo(ctx, "YTD summary computed",
		slog.String("hotel_id", hotelID),
		slog.Int("year", year),
		slog.Int("record_count", len(records)))
	return summary, nil
}

// GetPayrollSummary folds a hotel's year into overall totals.
func (s *payrollService) GetPayrollSummary(ctx context.Context, hotelID string, year int) (*domain.PayrollYearSummary, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotelID is required", apperrors.ErrValidation)
	}

	records, err := s.listNonDraft(ctx, hotelID, yearStart(year), yearEnd(year))
	if err != nil {
		return nil, err
	}

	summary := &domain.PayrollYearSummary{
		HotelID:     hotelID,
		Year:        year,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
		AvgWeekly:   decimal.Zero,
		PeriodCount: len(records),
	}
	for _, rec := range records {
		summary.TotalHours = summary.TotalHours.Add(rec.TotalHours)
		summary.TotalAmount = summary.TotalAmount.Add(rec.TotalAmount)
	}
	if summary.PeriodCount > 0 {
		summary.AvgWeekly = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.PeriodCount)))
	}
	return summary, nil
}

// GetWeeklySummaries computes weekly summaries for many employees
// concurrently. A failed employee never voids the batch: failures are
// collected per employee ID. The returned error is non-nil only when the
// whole batch was aborted, for example by context cancellation.
func (s *payrollService) GetWeeklySummaries(ctx context.Context, employeeIDs []string, weekStart time.Time) (map[string]*domain.PeriodSummary, map[string]error, error) {
	if len(employeeIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: employeeIDs is required", apperrors.ErrValidation)
	}

	var mu sync.Mutex
	summaries := make(map[string]*domain.PeriodSummary, len(employeeIDs))
	failures := make(map[string]error)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(weeklySummaryConcurrency)
	for _, employeeID := range employeeIDs {
		employeeID := employeeID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.timesheetSvc.GetWeeklySummary(gctx, employeeID, weekStart)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[employeeID] = err
				return nil
			}
			summaries[employeeID] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Batch weekly summary aborted", slog.Int("employee_count", len(employeeIDs)))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Batch weekly summaries computed",
		slog.Int("employee_count", len(employeeIDs)),
		slog.Int("failure_count", len(failures)))
	return summaries, failures, nil
}

// listNonDraft fetches a hotel's payroll records in a date window excluding
// drafts. Passing no statuses to the reader means all non-draft rows.
func (s *payrollService) listNonDraft(ctx context.Context, hotelID string, start, end time.Time) ([]domain.PayrollRecord, error) {
	startDate := start.Format(timeclock.DateLayout)
	endDate := end.Format(timeclock.DateLayout)
	records, err := s.payrollRepo.ListPayrollRecords(ctx, hotelID, startDate, endDate, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll records",
			slog.String("hotel_id", hotelID),
			slog.String("start_date", startDate),
			slog.String("end_date", endDate))
		return nil, fmt.Errorf("%w: listing payroll records for hotel %s: %w", apperrors.ErrDependency, hotelID, err)
	}
	return records, nil
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func yearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
