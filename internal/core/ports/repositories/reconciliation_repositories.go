package repositories

import (
	"context"
	"time"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// ReconciliationReader defines read operations for reconciliation records.
type ReconciliationReader interface {
	// FindReconciliationByPeriod retrieves the reconciliation created for a
	// payroll period, without line items.
	FindReconciliationByPeriod(ctx context.Context, periodID string) (*domain.Reconciliation, error)

	// FindReconciliationByID retrieves one reconciliation, without line items.
	FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.Reconciliation, error)

	// ListLineItems retrieves all line items of a reconciliation.
	ListLineItems(ctx context.Context, reconciliationID string) ([]domain.ReconciliationLineItem, error)

	// ListLineItemsByPeriod retrieves the line items of the reconciliation
	// belonging to a payroll period, so header and items can be fetched
	// concurrently.
	ListLineItemsByPeriod(ctx context.Context, periodID string) ([]domain.ReconciliationLineItem, error)
}

// ReconciliationWriter defines the mutations the approval workflow performs.
type ReconciliationWriter interface {
	// UpdateLineItem persists the approval fields of one line item.
	UpdateLineItem(ctx context.Context, item domain.ReconciliationLineItem) error

	// UpdateReconciliationStatus moves a reconciliation through its state
	// machine, stamping approver and approval time on the terminal
	// transition.
	UpdateReconciliationStatus(ctx context.Context, reconciliationID string, status domain.ReconciliationStatus, approvedBy string, approvedAt *time.Time, updatedBy string, updatedAt time.Time) error

	// UpdateLineItemAndStatus persists one line item and a non-terminal
	// status change as a single transaction, so a manual save and its
	// pending to in_progress advance commit or roll back together.
	UpdateLineItemAndStatus(ctx context.Context, item domain.ReconciliationLineItem, reconciliationID string, status domain.ReconciliationStatus, updatedBy string, updatedAt time.Time) error
}

// ReconciliationRepositoryFacade combines reconciliation reader and writer.
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
