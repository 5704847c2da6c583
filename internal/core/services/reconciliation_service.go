package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/dto"
	"golang.org/x/sync/errgroup"
)

// reconciliationService drives the hotel-vs-MOSS approval workflow. Each
// mutation invalidates the period's cached result before returning.
type reconciliationService struct {
	BaseService
	reconRepo portsrepo.ReconciliationRepositoryFacade
	auditRepo portsrepo.AuditLogRepositoryFacade
	cache     portsrepo.ResultCache
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepositoryFacade, auditRepo portsrepo.AuditLogRepositoryFacade, cache portsrepo.ResultCache) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		reconRepo: reconRepo,
		auditRepo: auditRepo,
		cache:     cache,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// LoadReconciliation returns the reconciliation for a payroll period with
// its line items stitched in. Header and items are fetched concurrently on a
// cache miss, and the stitched result is cached for the standard TTL.
func (s *reconciliationService) LoadReconciliation(ctx context.Context, periodID string) (*domain.Reconciliation, error) {
	if periodID == "" {
		return nil, fmt.Errorf("%w: periodID is required", apperrors.ErrValidation)
	}

	if rec, ok := s.cache.Get(ctx, periodID); ok {
		s.LogInfo(ctx, "Reconciliation served from cache", slog.String("period_id", periodID))
		return rec, nil
	}

	var (
		rec   *domain.Reconciliation
		items []domain.ReconciliationLineItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = s.reconRepo.FindReconciliationByPeriod(gctx, periodID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.reconRepo.ListLineItemsByPeriod(gctx, periodID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load reconciliation", slog.String("period_id", periodID))
		return nil, err
	}
	rec.LineItems = items

	if err := s.cache.Set(ctx, periodID, rec); err != nil {
		s.LogWarn(ctx, "Failed to cache reconciliation result",
			slog.String("period_id", periodID),
			slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Reconciliation loaded",
		slog.String("period_id", periodID),
		slog.String("reconciliation_id", rec.ReconciliationID),
		slog.Int("line_item_count", len(items)))
	return rec, nil
}

// ClassifyDiscrepancies groups a reconciliation's line items by severity
// band, preserving the stored line item order within each band.
func (s *reconciliationService) ClassifyDiscrepancies(rec *domain.Reconciliation) domain.DiscrepancyGroups {
	var groups domain.DiscrepancyGroups
	if rec == nil {
		return groups
	}
	for _, li := range rec.LineItems {
		d := domain.Discrepancy{
			EmployeeID:         li.EmployeeID,
			EmployeeName:       li.EmployeeName,
			HotelHours:         li.HotelHours,
			MossHours:          li.MossHours,
			Discrepancy:        li.MossHours.Sub(li.HotelHours).Abs(),
			DiscrepancyPercent: li.DiscrepancyPercent(),
			Severity:           li.Severity(),
		}
		switch d.Severity {
		case domain.SeverityHigh:
			groups.High = append(groups.High, d)
		case domain.SeverityLow:
			groups.Low = append(groups.Low, d)
		default:
			groups.None = append(groups.None, d)
		}
	}
	return groups
}

// BulkApprove approves every listed employee whose discrepancy is at or
// under the high-severity threshold. High-severity items are skipped, not
// errored. Each employee is its own unit of work: an item update plus its
// audit entry, so a mid-batch failure leaves earlier approvals standing.
func (s *reconciliationService) BulkApprove(ctx context.Context, reconciliationID string, employeeIDs []string, actor string) (int, error) {
	if reconciliationID == "" {
		return 0, fmt.Errorf("%w: reconciliationID is required", apperrors.ErrValidation)
	}
	if len(employeeIDs) == 0 {
		return 0, fmt.Errorf("%w: employeeIDs is required", apperrors.ErrValidation)
	}

	rec, items, err := s.loadForMutation(ctx, reconciliationID)
	if err != nil {
		return 0, err
	}

	byEmployee := make(map[string]domain.ReconciliationLineItem, len(items))
	for _, li := range items {
		byEmployee[li.EmployeeID] = li
	}

	// Anything approved must drop the period's cached result, even when the
	// batch stops early on a failure or cancellation.
	approved := 0
	defer func() {
		if approved > 0 {
			s.invalidate(ctx, rec.PayrollPeriodID)
		}
	}()

	now := time.Now().UTC()
	for _, employeeID := range employeeIDs {
		if err := ctx.Err(); err != nil {
			return approved, err
		}

		li, ok := byEmployee[employeeID]
		if !ok {
			s.LogWarn(ctx, "Bulk approve skipped unknown employee",
				slog.String("reconciliation_id", reconciliationID),
				slog.String("employee_id", employeeID))
			continue
		}
		if li.Severity() == domain.SeverityHigh {
			continue
		}
		if li.IsApproved {
			continue
		}

		final := li.MossHours
		li.FinalHours = &final
		li.IsApproved = true
		approvedAt := now
		li.ApprovedAt = &approvedAt
		li.ApprovalReason = domain.BulkApprovalReasonUnder5Pct
		if err := s.reconRepo.UpdateLineItem(ctx, li); err != nil {
			s.LogError(ctx, err, "Bulk approve failed mid-batch",
				slog.String("reconciliation_id", reconciliationID),
				slog.String("employee_id", employeeID),
				slog.Int("approved_so_far", approved))
			return approved, fmt.Errorf("%w: approving employee %s: %w", apperrors.ErrDependency, employeeID, err)
		}
		approved++

		if err := s.appendAudit(ctx, domain.AuditLogEntry{
			ReconciliationID: reconciliationID,
			Action:           domain.AuditActionBulkApproved,
			EmployeeID:       employeeID,
			Details: map[string]string{
				"reason":      domain.BulkApprovalReasonUnder5Pct,
				"final_hours": final.String(),
			},
			Actor: actor,
		}); err != nil {
			return approved, &apperrors.AuditWriteWarning{Action: domain.AuditActionBulkApproved, Err: err}
		}
	}

	if approved > 0 && rec.Status == domain.ReconciliationPending {
		if err := s.reconRepo.UpdateReconciliationStatus(ctx, reconciliationID, domain.ReconciliationInProgress, "", nil, actor, now); err != nil {
			s.LogError(ctx, err, "Failed to advance reconciliation to in_progress", slog.String("reconciliation_id", reconciliationID))
			return approved, fmt.Errorf("%w: advancing reconciliation %s: %w", apperrors.ErrDependency, reconciliationID, err)
		}
	}

	s.LogInfo(ctx, "Bulk approval completed",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("actor", actor),
		slog.Int("requested", len(employeeIDs)),
		slog.Int("approved", approved))
	return approved, nil
}

// SaveLineItem records a manual approval of one employee's hours. A
// high-severity discrepancy requires a justification.
func (s *reconciliationService) SaveLineItem(ctx context.Context, reconciliationID string, req dto.SaveLineItemRequest, actor string) error {
	if reconciliationID == "" {
		return fmt.Errorf("%w: reconciliationID is required", apperrors.ErrValidation)
	}
	if req.EmployeeID == "" {
		return fmt.Errorf("%w: employeeID is required", apperrors.ErrValidation)
	}
	if req.FinalHours.IsNegative() {
		return fmt.Errorf("%w: finalHours cannot be negative", apperrors.ErrValidation)
	}

	rec, items, err := s.loadForMutation(ctx, reconciliationID)
	if err != nil {
		return err
	}

	var target *domain.ReconciliationLineItem
	for i := range items {
		if items[i].EmployeeID == req.EmployeeID {
			target = &items[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: employee %s has no line item in reconciliation %s", apperrors.ErrNotFound, req.EmployeeID, reconciliationID)
	}

	if target.Severity() == domain.SeverityHigh && req.Justification == "" {
		return fmt.Errorf("%w: justification is required for discrepancies above %s%%", apperrors.ErrValidation, domain.HighSeverityThresholdPercent)
	}

	now := time.Now().UTC()
	final := req.FinalHours
	target.FinalHours = &final
	target.Justification = req.Justification
	target.IsApproved = true
	target.ApprovedAt = &now
	target.ApprovalReason = ""

	// The first manual save also advances the reconciliation to in_progress;
	// both writes ride one transaction so the status never advances without
	// its line item.
	var saveErr error
	if rec.Status == domain.ReconciliationPending {
		saveErr = s.reconRepo.UpdateLineItemAndStatus(ctx, *target, reconciliationID, domain.ReconciliationInProgress, actor, now)
	} else {
		saveErr = s.reconRepo.UpdateLineItem(ctx, *target)
	}
	if saveErr != nil {
		s.LogError(ctx, saveErr, "Failed to save line item",
			slog.String("reconciliation_id", reconciliationID),
			slog.String("employee_id", req.EmployeeID))
		return fmt.Errorf("%w: saving line item for employee %s: %w", apperrors.ErrDependency, req.EmployeeID, saveErr)
	}

	s.invalidate(ctx, rec.PayrollPeriodID)

	auditErr := s.appendAudit(ctx, domain.AuditLogEntry{
		ReconciliationID: reconciliationID,
		Action:           domain.AuditActionHoursApproved,
		EmployeeID:       req.EmployeeID,
		Details: map[string]string{
			"final_hours":   final.String(),
			"justification": req.Justification,
		},
		Actor: actor,
	})
	if auditErr != nil {
		return &apperrors.AuditWriteWarning{Action: domain.AuditActionHoursApproved, Err: auditErr}
	}

	s.LogInfo(ctx, "Line item saved",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("employee_id", req.EmployeeID),
		slog.String("actor", actor))
	return nil
}

// FinalizeReconciliation moves the reconciliation to its terminal approved
// state. Every line item must already be approved.
func (s *reconciliationService) FinalizeReconciliation(ctx context.Context, reconciliationID string, req dto.FinalizeReconciliationRequest, actor string) (*domain.Reconciliation, error) {
	if reconciliationID == "" {
		return nil, fmt.Errorf("%w: reconciliationID is required", apperrors.ErrValidation)
	}

	rec, items, err := s.loadForMutation(ctx, reconciliationID)
	if err != nil {
		return nil, err
	}

	for _, li := range items {
		if !li.IsApproved {
			return nil, fmt.Errorf("%w: line item for employee %s is not approved", apperrors.ErrPrecondition, li.EmployeeID)
		}
	}

	now := time.Now().UTC()
	if err := s.reconRepo.UpdateReconciliationStatus(ctx, reconciliationID, domain.ReconciliationApproved, actor, &now, actor, now); err != nil {
		s.LogError(ctx, err, "Failed to finalize reconciliation", slog.String("reconciliation_id", reconciliationID))
		return nil, fmt.Errorf("%w: finalizing reconciliation %s: %w", apperrors.ErrDependency, reconciliationID, err)
	}

	rec.Status = domain.ReconciliationApproved
	rec.ApprovedAt = &now
	rec.ApprovedBy = actor
	rec.LineItems = items
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = actor

	s.invalidate(ctx, rec.PayrollPeriodID)

	auditErr := s.appendAudit(ctx, domain.AuditLogEntry{
		ReconciliationID: reconciliationID,
		Action:           domain.AuditActionReconCompleted,
		Details: map[string]string{
			"line_item_count":  fmt.Sprintf("%d", len(items)),
			"final_data_count": fmt.Sprintf("%d", len(req.FinalData)),
		},
		Actor: actor,
	})
	if auditErr != nil {
		return rec, &apperrors.AuditWriteWarning{Action: domain.AuditActionReconCompleted, Err: auditErr}
	}

	s.LogInfo(ctx, "Reconciliation finalized",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("actor", actor),
		slog.Int("line_item_count", len(items)))
	return rec, nil
}

// ListAuditTrail returns the append-only audit entries for a reconciliation.
func (s *reconciliationService) ListAuditTrail(ctx context.Context, reconciliationID string) ([]domain.AuditLogEntry, error) {
	if reconciliationID == "" {
		return nil, fmt.Errorf("%w: reconciliationID is required", apperrors.ErrValidation)
	}
	entries, err := s.auditRepo.ListEntriesByReconciliation(ctx, reconciliationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit trail", slog.String("reconciliation_id", reconciliationID))
		return nil, fmt.Errorf("%w: listing audit trail of reconciliation %s: %w", apperrors.ErrDependency, reconciliationID, err)
	}
	return entries, nil
}

// loadForMutation fetches a reconciliation with its line items and rejects
// mutations against a terminal record.
func (s *reconciliationService) loadForMutation(ctx context.Context, reconciliationID string) (*domain.Reconciliation, []domain.ReconciliationLineItem, error) {
	rec, err := s.reconRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find reconciliation", slog.String("reconciliation_id", reconciliationID))
		return nil, nil, err
	}
	if rec.Status.Terminal() {
		return nil, nil, fmt.Errorf("%w: reconciliation %s is already approved", apperrors.ErrPrecondition, reconciliationID)
	}

	items, err := s.reconRepo.ListLineItems(ctx, reconciliationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items", slog.String("reconciliation_id", reconciliationID))
		return nil, nil, fmt.Errorf("%w: listing line items of reconciliation %s: %w", apperrors.ErrDependency, reconciliationID, err)
	}
	return rec, items, nil
}

// appendAudit writes one audit entry, stamping identity and time.
func (s *reconciliationService) appendAudit(ctx context.Context, entry domain.AuditLogEntry) error {
	entry.EntryID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit entry",
			slog.String("reconciliation_id", entry.ReconciliationID),
			slog.String("action", entry.Action))
		return err
	}
	return nil
}

// invalidate drops the period's cached result, logging on failure. The next
// read falls back to the record store either way. It must still run when the
// request context is already cancelled, or committed approvals would stay
// cached until the TTL expires.
func (s *reconciliationService) invalidate(ctx context.Context, periodID string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.cache.Invalidate(ctx, periodID); err != nil {
		s.LogWarn(ctx, "Failed to invalidate cached reconciliation",
			slog.String("period_id", periodID),
			slog.String("error", err.Error()))
	}
}
