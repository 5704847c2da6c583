package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/core/services"
	"github.com/mosshrp/payroll_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReconciliationRepository ---
type MockReconciliationRepository struct {
	mock.Mock
}

func (m *MockReconciliationRepository) FindReconciliationByPeriod(ctx context.Context, periodID string) (*domain.Reconciliation, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.Reconciliation, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) ListLineItems(ctx context.Context, reconciliationID string) ([]domain.ReconciliationLineItem, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationLineItem), args.Error(1)
}

func (m *MockReconciliationRepository) ListLineItemsByPeriod(ctx context.Context, periodID string) ([]domain.ReconciliationLineItem, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationLineItem), args.Error(1)
}

func (m *MockReconciliationRepository) UpdateLineItem(ctx context.Context, item domain.ReconciliationLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockReconciliationRepository) UpdateReconciliationStatus(ctx context.Context, reconciliationID string, status domain.ReconciliationStatus, approvedBy string, approvedAt *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, reconciliationID, status, approvedBy, approvedAt, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockReconciliationRepository) UpdateLineItemAndStatus(ctx context.Context, item domain.ReconciliationLineItem, reconciliationID string, status domain.ReconciliationStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, item, reconciliationID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListEntriesByReconciliation(ctx context.Context, reconciliationID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

// --- Mock ResultCache ---
type MockResultCache struct {
	mock.Mock
}

func (m *MockResultCache) Get(ctx context.Context, periodID string) (*domain.Reconciliation, bool) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Bool(1)
}

func (m *MockResultCache) Set(ctx context.Context, periodID string, rec *domain.Reconciliation) error {
	args := m.Called(ctx, periodID, rec)
	return args.Error(0)
}

func (m *MockResultCache) Invalidate(ctx context.Context, periodID string) error {
	args := m.Called(ctx, periodID)
	return args.Error(0)
}

func lineItem(employeeID string, hotelHours, mossHours string) domain.ReconciliationLineItem {
	return domain.ReconciliationLineItem{
		LineItemID:       "li-" + employeeID,
		ReconciliationID: "recon-1",
		EmployeeID:       employeeID,
		HotelHours:       decimal.RequireFromString(hotelHours),
		MossHours:        decimal.RequireFromString(mossHours),
	}
}

// --- Test Suite ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconRepo *MockReconciliationRepository
	mockAuditRepo *MockAuditLogRepository
	mockCache     *MockResultCache
	service       portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReconRepo = new(MockReconciliationRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockCache = new(MockResultCache)
	suite.service = services.NewReconciliationService(suite.mockReconRepo, suite.mockAuditRepo, suite.mockCache)
}

func (suite *ReconciliationServiceTestSuite) pendingReconciliation(items ...domain.ReconciliationLineItem) *domain.Reconciliation {
	rec := &domain.Reconciliation{
		ReconciliationID: "recon-1",
		PayrollPeriodID:  "period-1",
		Status:           domain.ReconciliationPending,
	}
	suite.mockReconRepo.On("FindReconciliationByID", mock.Anything, "recon-1").Return(rec, nil).Once()
	suite.mockReconRepo.On("ListLineItems", mock.Anything, "recon-1").Return(items, nil).Once()
	return rec
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestLoadReconciliation_CacheHit() {
	ctx := context.Background()
	cached := &domain.Reconciliation{ReconciliationID: "recon-1", PayrollPeriodID: "period-1"}

	suite.mockCache.On("Get", ctx, "period-1").Return(cached, true).Once()

	rec, err := suite.service.LoadReconciliation(ctx, "period-1")

	suite.Require().NoError(err)
	suite.Equal(cached, rec)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "FindReconciliationByPeriod", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestLoadReconciliation_CacheMissStitchesAndCaches() {
	ctx := context.Background()
	header := &domain.Reconciliation{ReconciliationID: "recon-1", PayrollPeriodID: "period-1", Status: domain.ReconciliationPending}
	items := []domain.ReconciliationLineItem{lineItem("emp-1", "40", "41")}

	suite.mockCache.On("Get", ctx, "period-1").Return(nil, false).Once()
	suite.mockReconRepo.On("FindReconciliationByPeriod", mock.Anything, "period-1").Return(header, nil).Once()
	suite.mockReconRepo.On("ListLineItemsByPeriod", mock.Anything, "period-1").Return(items, nil).Once()
	suite.mockCache.On("Set", ctx, "period-1", mock.AnythingOfType("*domain.Reconciliation")).Return(nil).Once()

	rec, err := suite.service.LoadReconciliation(ctx, "period-1")

	suite.Require().NoError(err)
	suite.Require().Len(rec.LineItems, 1)
	suite.Equal("emp-1", rec.LineItems[0].EmployeeID)
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestLoadReconciliation_CacheSetFailureIsNotFatal() {
	ctx := context.Background()
	header := &domain.Reconciliation{ReconciliationID: "recon-1", PayrollPeriodID: "period-1"}

	suite.mockCache.On("Get", ctx, "period-1").Return(nil, false).Once()
	suite.mockReconRepo.On("FindReconciliationByPeriod", mock.Anything, "period-1").Return(header, nil).Once()
	suite.mockReconRepo.On("ListLineItemsByPeriod", mock.Anything, "period-1").Return([]domain.ReconciliationLineItem{}, nil).Once()
	suite.mockCache.On("Set", ctx, "period-1", mock.Anything).Return(assert.AnError).Once()

	rec, err := suite.service.LoadReconciliation(ctx, "period-1")

	suite.Require().NoError(err)
	suite.NotNil(rec)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestLoadReconciliation_NotFound() {
	ctx := context.Background()

	suite.mockCache.On("Get", ctx, "period-9").Return(nil, false).Once()
	suite.mockReconRepo.On("FindReconciliationByPeriod", mock.Anything, "period-9").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReconRepo.On("ListLineItemsByPeriod", mock.Anything, "period-9").Return([]domain.ReconciliationLineItem{}, nil).Maybe()

	rec, err := suite.service.LoadReconciliation(ctx, "period-9")

	suite.Require().Error(err)
	suite.Nil(rec)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestClassifyDiscrepancies_Bands() {
	rec := &domain.Reconciliation{
		LineItems: []domain.ReconciliationLineItem{
			lineItem("emp-low", "40", "41"),   // 2.5%
			lineItem("emp-high", "40", "46"),  // 15%
			lineItem("emp-exact", "40", "40"), // 0%
			lineItem("emp-nohotel", "0", "12"),
		},
	}

	groups := suite.service.ClassifyDiscrepancies(rec)

	suite.Require().Len(groups.High, 1)
	suite.Equal("emp-high", groups.High[0].EmployeeID)
	suite.True(groups.High[0].DiscrepancyPercent.Equal(decimal.NewFromInt(15)), "got %s", groups.High[0].DiscrepancyPercent)

	suite.Require().Len(groups.Low, 1)
	suite.Equal("emp-low", groups.Low[0].EmployeeID)
	suite.True(groups.Low[0].DiscrepancyPercent.Equal(decimal.RequireFromString("2.5")), "got %s", groups.Low[0].DiscrepancyPercent)

	suite.Require().Len(groups.None, 2)
	suite.Equal("emp-exact", groups.None[0].EmployeeID)
	suite.Equal("emp-nohotel", groups.None[1].EmployeeID, "zero hotel hours never divides, classifies as none")
}

func (suite *ReconciliationServiceTestSuite) TestClassifyDiscrepancies_Idempotent() {
	rec := &domain.Reconciliation{
		LineItems: []domain.ReconciliationLineItem{
			lineItem("emp-1", "40", "41"),
			lineItem("emp-2", "40", "46"),
		},
	}

	first := suite.service.ClassifyDiscrepancies(rec)
	second := suite.service.ClassifyDiscrepancies(rec)

	suite.Equal(first, second)
}

func (suite *ReconciliationServiceTestSuite) TestBulkApprove_SkipsHighSeverity() {
	ctx := context.Background()
	alreadyApproved := lineItem("emp-done", "40", "40")
	alreadyApproved.IsApproved = true
	suite.pendingReconciliation(
		lineItem("emp-low", "40", "41"),
		lineItem("emp-high", "40", "46"),
		alreadyApproved,
	)

	suite.mockReconRepo.On("UpdateLineItem", ctx, mock.MatchedBy(func(li domain.ReconciliationLineItem) bool {
		return li.EmployeeID == "emp-low" &&
			li.IsApproved &&
			li.FinalHours != nil && li.FinalHours.Equal(decimal.NewFromInt(41)) &&
			li.ApprovalReason == domain.BulkApprovalReasonUnder5Pct
	})).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditActionBulkApproved && e.EmployeeID == "emp-low" && e.Actor == "manager-1"
	})).Return(nil).Once()
	suite.mockReconRepo.On("UpdateReconciliationStatus", ctx, "recon-1", domain.ReconciliationInProgress, "", (*time.Time)(nil), "manager-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockCache.On("Invalidate", mock.Anything, "period-1").Return(nil).Once()

	count, err := suite.service.BulkApprove(ctx, "recon-1", []string{"emp-low", "emp-high", "emp-done", "emp-ghost"}, "manager-1")

	suite.Require().NoError(err)
	suite.Equal(1, count, "high severity, already approved and unknown employees are skipped")
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestBulkApprove_TerminalReconciliation() {
	ctx := context.Background()
	approvedAt := time.Now().UTC()
	rec := &domain.Reconciliation{
		ReconciliationID: "recon-1",
		PayrollPeriodID:  "period-1",
		Status:           domain.ReconciliationApproved,
		ApprovedAt:       &approvedAt,
	}
	suite.mockReconRepo.On("FindReconciliationByID", mock.Anything, "recon-1").Return(rec, nil).Once()

	count, err := suite.service.BulkApprove(ctx, "recon-1", []string{"emp-1"}, "manager-1")

	suite.Require().Error(err)
	suite.Equal(0, count)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "UpdateLineItem", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestBulkApprove_AuditFailureSurfacesAsWarning() {
	ctx := context.Background()
	suite.pendingReconciliation(lineItem("emp-low", "40", "41"))

	suite.mockReconRepo.On("UpdateLineItem", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.Anything).Return(assert.AnError).Once()
	suite.mockCache.On("Invalidate", mock.Anything, "period-1").Return(nil).Once()

	count, err := suite.service.BulkApprove(ctx, "recon-1", []string{"emp-low"}, "manager-1")

	suite.Require().Error(err)
	suite.Equal(1, count, "the committed approval stands")
	var warn *apperrors.AuditWriteWarning
	suite.ErrorAs(err, &warn)
	suite.Equal(domain.AuditActionBulkApproved, warn.Action)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestBulkApprove_InvalidatesCacheAfterCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	suite.pendingReconciliation(
		lineItem("emp-1", "40", "41"),
		lineItem("emp-2", "40", "41"),
	)

	// Cancel between the first committed approval and the second employee.
	suite.mockReconRepo.On("UpdateLineItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		cancel()
	}).Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockCache.On("Invalidate", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), "period-1").Return(nil).Once()

	count, err := suite.service.BulkApprove(ctx, "recon-1", []string{"emp-1", "emp-2"}, "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.Equal(1, count)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSaveLineItem_HighSeverityRequiresJustification() {
	ctx := context.Background()
	suite.pendingReconciliation(lineItem("emp-high", "40", "46"))

	err := suite.service.SaveLineItem(ctx, "recon-1", dto.SaveLineItemRequest{
		EmployeeID: "emp-high",
		FinalHours: decimal.NewFromInt(44),
	}, "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "UpdateLineItem", mock.Anything, mock.Anything)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "UpdateLineItemAndStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestSaveLineItem_HighSeverityWithJustification() {
	ctx := context.Background()
	suite.pendingReconciliation(lineItem("emp-high", "40", "46"))

	suite.mockReconRepo.On("UpdateLineItemAndStatus", ctx, mock.MatchedBy(func(li domain.ReconciliationLineItem) bool {
		return li.EmployeeID == "emp-high" &&
			li.IsApproved &&
			li.FinalHours != nil && li.FinalHours.Equal(decimal.NewFromInt(44)) &&
			li.Justification == "hotel clock drift confirmed with GM"
	}), "recon-1", domain.ReconciliationInProgress, "manager-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockCache.On("Invalidate", mock.Anything, "period-1").Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditActionHoursApproved && e.EmployeeID == "emp-high"
	})).Return(nil).Once()

	err := suite.service.SaveLineItem(ctx, "recon-1", dto.SaveLineItemRequest{
		EmployeeID:    "emp-high",
		FinalHours:    decimal.NewFromInt(44),
		Justification: "hotel clock drift confirmed with GM",
	}, "manager-1")

	suite.Require().NoError(err)
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSaveLineItem_InProgressUpdatesItemOnly() {
	ctx := context.Background()
	rec := &domain.Reconciliation{
		ReconciliationID: "recon-1",
		PayrollPeriodID:  "period-1",
		Status:           domain.ReconciliationInProgress,
	}
	suite.mockReconRepo.On("FindReconciliationByID", mock.Anything, "recon-1").Return(rec, nil).Once()
	suite.mockReconRepo.On("ListLineItems", mock.Anything, "recon-1").Return([]domain.ReconciliationLineItem{lineItem("emp-1", "40", "41")}, nil).Once()

	suite.mockReconRepo.On("UpdateLineItem", ctx, mock.MatchedBy(func(li domain.ReconciliationLineItem) bool {
		return li.EmployeeID == "emp-1" && li.IsApproved
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", mock.Anything, "period-1").Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.SaveLineItem(ctx, "recon-1", dto.SaveLineItemRequest{
		EmployeeID: "emp-1",
		FinalHours: decimal.NewFromInt(41),
	}, "manager-1")

	suite.Require().NoError(err)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "UpdateLineItemAndStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSaveLineItem_UnknownEmployee() {
	ctx := context.Background()
	suite.pendingReconciliation(lineItem("emp-1", "40", "41"))

	err := suite.service.SaveLineItem(ctx, "recon-1", dto.SaveLineItemRequest{
		EmployeeID: "emp-ghost",
		FinalHours: decimal.NewFromInt(40),
	}, "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestSaveLineItem_NegativeHours() {
	err := suite.service.SaveLineItem(context.Background(), "recon-1", dto.SaveLineItemRequest{
		EmployeeID: "emp-1",
		FinalHours: decimal.NewFromInt(-1),
	}, "manager-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestFinalizeReconciliation_RequiresAllApproved() {
	ctx := context.Background()
	approved := lineItem("emp-1", "40", "40")
	approved.IsApproved = true
	suite.pendingReconciliation(approved, lineItem("emp-2", "40", "41"))

	rec, err := suite.service.FinalizeReconciliation(ctx, "recon-1", dto.FinalizeReconciliationRequest{}, "manager-1")

	suite.Require().Error(err)
	suite.Nil(rec)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "UpdateReconciliationStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestFinalizeReconciliation_Success() {
	ctx := context.Background()
	first := lineItem("emp-1", "40", "40")
	first.IsApproved = true
	second := lineItem("emp-2", "40", "41")
	second.IsApproved = true
	suite.pendingReconciliation(first, second)

	suite.mockReconRepo.On("UpdateReconciliationStatus", ctx, "recon-1", domain.ReconciliationApproved, "manager-1", mock.AnythingOfType("*time.Time"), "manager-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockCache.On("Invalidate", mock.Anything, "period-1").Return(nil).Once()
	suite.mockAuditRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.AuditLogEntry) bool {
		return e.Action == domain.AuditActionReconCompleted && e.Actor == "manager-1"
	})).Return(nil).Once()

	finalHours := map[string]decimal.Decimal{
		"emp-1": decimal.NewFromInt(40),
		"emp-2": decimal.NewFromInt(41),
	}
	rec, err := suite.service.FinalizeReconciliation(ctx, "recon-1", dto.FinalizeReconciliationRequest{FinalData: finalHours}, "manager-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ReconciliationApproved, rec.Status)
	suite.Equal("manager-1", rec.ApprovedBy)
	suite.NotNil(rec.ApprovedAt)
	suite.Len(rec.LineItems, 2)
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestFinalizeReconciliation_AlreadyApproved() {
	ctx := context.Background()
	rec := &domain.Reconciliation{
		ReconciliationID: "recon-1",
		PayrollPeriodID:  "period-1",
		Status:           domain.ReconciliationApproved,
	}
	suite.mockReconRepo.On("FindReconciliationByID", mock.Anything, "recon-1").Return(rec, nil).Once()

	got, err := suite.service.FinalizeReconciliation(ctx, "recon-1", dto.FinalizeReconciliationRequest{}, "manager-1")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *ReconciliationServiceTestSuite) TestListAuditTrail() {
	ctx := context.Background()
	entries := []domain.AuditLogEntry{
		{EntryID: "ae-1", ReconciliationID: "recon-1", Action: domain.AuditActionBulkApproved},
		{EntryID: "ae-2", ReconciliationID: "recon-1", Action: domain.AuditActionReconCompleted},
	}

	suite.mockAuditRepo.On("ListEntriesByReconciliation", ctx, "recon-1").Return(entries, nil).Once()

	got, err := suite.service.ListAuditTrail(ctx, "recon-1")

	suite.Require().NoError(err)
	suite.Equal(entries, got)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
