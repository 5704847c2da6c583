package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PunchRepository ---
type MockPunchRepository struct {
	mock.Mock
}

func (m *MockPunchRepository) ListPunches(ctx context.Context, employeeID string, startDate, endDate string) ([]domain.Punch, error) {
	args := m.Called(ctx, employeeID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Punch), args.Error(1)
}

func (m *MockPunchRepository) FindCurrentAssignment(ctx context.Context, employeeID string) (*domain.Assignment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) ListPayrollRecords(ctx context.Context, hotelID string, startDate, endDate string, statuses []domain.PayrollStatus) ([]domain.PayrollRecord, error) {
	args := m.Called(ctx, hotelID, startDate, endDate, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) ListPayrollItems(ctx context.Context, payrollID string) ([]domain.PayrollItem, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollItem), args.Error(1)
}

func (m *MockPayrollRepository) ListPayrollItemsByEmployee(ctx context.Context, employeeID string, year int) ([]domain.PayrollItem, error) {
	args := m.Called(ctx, employeeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollItem), args.Error(1)
}

// spanPunches builds a clock_in/clock_out pair covering [in, out) on a date.
func spanPunches(employeeID, date, in, out string) []domain.Punch {
	return []domain.Punch{
		{EmployeeID: employeeID, Type: domain.ClockIn, Timestamp: fmt.Sprintf("%s %s:00.000Z", date, in)},
		{EmployeeID: employeeID, Type: domain.ClockOut, Timestamp: fmt.Sprintf("%s %s:00.000Z", date, out)},
	}
}

// --- Test Suite ---
type TimesheetServiceTestSuite struct {
	suite.Suite
	mockPunchRepo   *MockPunchRepository
	mockPayrollRepo *MockPayrollRepository
	service         portssvc.TimesheetSvcFacade
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.mockPunchRepo = new(MockPunchRepository)
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.service = services.NewTimesheetService(suite.mockPunchRepo, suite.mockPayrollRepo)
}

// --- Test Cases ---

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_Overtime() {
	ctx := context.Background()
	employeeID := "emp-1"
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// Five 9-hour days: 45 total, 5 over the weekly cutoff.
	var punches []domain.Punch
	for day := 3; day <= 7; day++ {
		punches = append(punches, spanPunches(employeeID, fmt.Sprintf("2025-03-%02d", day), "09:00", "18:00")...)
	}

	suite.mockPunchRepo.On("ListPunches", ctx, employeeID, "2025-03-03", "2025-03-09").Return(punches, nil).Once()
	suite.mockPunchRepo.On("FindCurrentAssignment", ctx, employeeID).Return(&domain.Assignment{
		AssignmentID: "asg-1",
		EmployeeID:   employeeID,
		HourlyRate:   decimal.RequireFromString("20.50"),
		Active:       true,
	}, nil).Once()

	summary, err := suite.service.GetWeeklySummary(ctx, employeeID, weekStart)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(employeeID, summary.SubjectID)
	suite.Equal("2025-03-03", summary.PeriodStart)
	suite.Equal("2025-03-09", summary.PeriodEnd)
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(45)), "got %s", summary.TotalHours)
	suite.Equal(5, summary.DaysWorked)
	suite.True(summary.OvertimeHours.Equal(decimal.NewFromInt(5)), "got %s", summary.OvertimeHours)
	suite.True(summary.EstimatedPay.Equal(decimal.RequireFromString("922.50")), "got %s", summary.EstimatedPay)
	suite.False(summary.RateMissing)
	suite.mockPunchRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_NoOvertimeUnderCutoff() {
	ctx := context.Background()
	employeeID := "emp-2"
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// Four 8-hour days plus one 6-hour day: 38 total, no overtime.
	var punches []domain.Punch
	for day := 3; day <= 6; day++ {
		punches = append(punches, spanPunches(employeeID, fmt.Sprintf("2025-03-%02d", day), "09:00", "17:00")...)
	}
	punches = append(punches, spanPunches(employeeID, "2025-03-07", "09:00", "15:00")...)

	suite.mockPunchRepo.On("ListPunches", ctx, employeeID, "2025-03-03", "2025-03-09").Return(punches, nil).Once()
	suite.mockPunchRepo.On("FindCurrentAssignment", ctx, employeeID).Return(&domain.Assignment{
		AssignmentID: "asg-2",
		EmployeeID:   employeeID,
		HourlyRate:   decimal.NewFromInt(15),
		Active:       true,
	}, nil).Once()

	summary, err := suite.service.GetWeeklySummary(ctx, employeeID, weekStart)

	suite.Require().NoError(err)
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(38)), "got %s", summary.TotalHours)
	suite.True(summary.OvertimeHours.IsZero())
	suite.Equal(5, summary.DaysWorked)
	suite.True(summary.EstimatedPay.Equal(decimal.NewFromInt(570)))
	suite.mockPunchRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_RateMissing() {
	ctx := context.Background()
	employeeID := "emp-3"
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	punches := spanPunches(employeeID, "2025-03-03", "09:00", "17:00")

	suite.mockPunchRepo.On("ListPunches", ctx, employeeID, "2025-03-03", "2025-03-09").Return(punches, nil).Once()
	suite.mockPunchRepo.On("FindCurrentAssignment", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetWeeklySummary(ctx, employeeID, weekStart)

	suite.Require().NoError(err, "a missing rate degrades the summary, it does not fail it")
	suite.True(summary.RateMissing)
	suite.True(summary.EstimatedPay.IsZero())
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(8)))
	suite.mockPunchRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_ZeroRateTreatedAsMissing() {
	ctx := context.Background()
	employeeID := "emp-4"
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	suite.mockPunchRepo.On("ListPunches", ctx, employeeID, "2025-03-03", "2025-03-09").
		Return(spanPunches(employeeID, "2025-03-03", "09:00", "17:00"), nil).Once()
	suite.mockPunchRepo.On("FindCurrentAssignment", ctx, employeeID).Return(&domain.Assignment{
		AssignmentID: "asg-4",
		EmployeeID:   employeeID,
		HourlyRate:   decimal.Zero,
		Active:       true,
	}, nil).Once()

	summary, err := suite.service.GetWeeklySummary(ctx, employeeID, weekStart)

	suite.Require().NoError(err)
	suite.True(summary.RateMissing)
	suite.True(summary.EstimatedPay.IsZero())
	suite.mockPunchRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_ValidationErrors() {
	ctx := context.Background()

	_, err := suite.service.GetWeeklySummary(ctx, "", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetWeeklySummary(ctx, "emp-1", time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestGetWeeklySummary_StoreFailure() {
	ctx := context.Background()
	employeeID := "emp-5"
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	suite.mockPunchRepo.On("ListPunches", ctx, employeeID, "2025-03-03", "2025-03-09").
		Return(nil, assert.AnError).Once()

	summary, err := suite.service.GetWeeklySummary(ctx, employeeID, weekStart)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrDependency)
	suite.ErrorIs(err, assert.AnError)
	suite.mockPunchRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestComputeDailyHours_WarnsOnMalformed() {
	ctx := context.Background()
	punches := []domain.Punch{
		{EmployeeID: "emp-1", Type: domain.ClockIn, Timestamp: "2025-03-03 09:00:00.000Z"},
		{EmployeeID: "emp-1", Type: domain.ClockOut, Timestamp: "not a timestamp"},
	}

	days, warnings := suite.service.ComputeDailyHours(ctx, punches)

	suite.Len(warnings, 1)
	suite.NotEmpty(days)
}

func (suite *TimesheetServiceTestSuite) TestGetEmployeePayrollHistory_Success() {
	ctx := context.Background()
	employeeID := "emp-1"
	items := []domain.PayrollItem{
		{PayrollItemID: "pi-1", EmployeeID: employeeID, HoursWorked: decimal.NewFromInt(40), Amount: decimal.NewFromInt(600), WeekStart: "2025-01-06"},
		{PayrollItemID: "pi-2", EmployeeID: employeeID, HoursWorked: decimal.NewFromInt(38), Amount: decimal.NewFromInt(570), WeekStart: "2025-01-13"},
	}

	suite.mockPayrollRepo.On("ListPayrollItemsByEmployee", ctx, employeeID, 2025).Return(items, nil).Once()

	got, err := suite.service.GetEmployeePayrollHistory(ctx, employeeID, 2025)

	suite.Require().NoError(err)
	suite.Equal(items, got)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestGetEmployeePayrollHistory_Validation() {
	ctx := context.Background()

	_, err := suite.service.GetEmployeePayrollHistory(ctx, "", 2025)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetEmployeePayrollHistory(ctx, "emp-1", 0)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
