package services

import (
	"context"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/dto"
)

// ReconciliationSvcFacade drives the hotel-vs-MOSS hours approval workflow.
type ReconciliationSvcFacade interface {
	// LoadReconciliation returns the reconciliation for a payroll period with
	// line items stitched in, served from the result cache when fresh.
	LoadReconciliation(ctx context.Context, periodID string) (*domain.Reconciliation, error)

	// ClassifyDiscrepancies groups a reconciliation's line items by severity
	// band. Pure: identical inputs yield identical groupings.
	ClassifyDiscrepancies(rec *domain.Reconciliation) domain.DiscrepancyGroups

	// BulkApprove approves every listed employee whose discrepancy is at or
	// under the high-severity threshold, skipping the rest silently, and
	// returns how many were approved.
	BulkApprove(ctx context.Context, reconciliationID string, employeeIDs []string, actor string) (int, error)

	// SaveLineItem records a manual single-item approval. Justification is
	// mandatory for high-severity items.
	SaveLineItem(ctx context.Context, reconciliationID string, req dto.SaveLineItemRequest, actor string) error

	// FinalizeReconciliation moves the reconciliation to its terminal
	// approved state. Every line item must already be approved.
	FinalizeReconciliation(ctx context.Context, reconciliationID string, req dto.FinalizeReconciliationRequest, actor string) (*domain.Reconciliation, error)

	// ListAuditTrail returns the append-only audit entries for a
	// reconciliation, oldest first.
	ListAuditTrail(ctx context.Context, reconciliationID string) ([]domain.AuditLogEntry, error)
}
