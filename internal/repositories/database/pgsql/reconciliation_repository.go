package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	"github.com/mosshrp/payroll_backend/internal/models"
	"github.com/mosshrp/payroll_backend/internal/utils/mapping"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for reconciliation
// records and their line items.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

const reconciliationColumns = `reconciliation_id, payroll_period_id, status, approved_at, approved_by, created_at, created_by, last_updated_at, last_updated_by`

const lineItemColumns = `line_item_id, reconciliation_id, employee_id, employee_name, hotel_hours, moss_hours, final_hours, justification, is_approved, approved_at, approval_reason`

func scanReconciliation(row pgx.CollectableRow) (models.Reconciliation, error) {
	var rec models.Reconciliation
	err := row.Scan(
		&rec.ReconciliationID,
		&rec.PayrollPeriodID,
		&rec.Status,
		&rec.ApprovedAt,
		&rec.ApprovedBy,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	return rec, err
}

func scanLineItem(row pgx.CollectableRow) (models.ReconciliationLineItem, error) {
	var li models.ReconciliationLineItem
	err := row.Scan(
		&li.LineItemID,
		&li.ReconciliationID,
		&li.EmployeeID,
		&li.EmployeeName,
		&li.HotelHours,
		&li.MossHours,
		&li.FinalHours,
		&li.Justification,
		&li.IsApproved,
		&li.ApprovedAt,
		&li.ApprovalReason,
	)
	return li, err
}

// FindReconciliationByPeriod retrieves the reconciliation created for a
// payroll period, without line items.
func (r *PgxReconciliationRepository) FindReconciliationByPeriod(ctx context.Context, periodID string) (*domain.Reconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE payroll_period_id = $1;`
	return r.findOne(ctx, query, periodID)
}

// FindReconciliationByID retrieves one reconciliation, without line items.
func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.Reconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE reconciliation_id = $1;`
	return r.findOne(ctx, query, reconciliationID)
}

func (r *PgxReconciliationRepository) findOne(ctx context.Context, query, arg string) (*domain.Reconciliation, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliation %s: %w", arg, err)
	}

	modelRec, err := pgx.CollectOneRow(rows, scanReconciliation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reconciliation %s: %w", arg, err)
	}

	rec := mapping.ToDomainReconciliation(modelRec)
	return &rec, nil
}

// ListLineItems retrieves all line items of a reconciliation.
func (r *PgxReconciliationRepository) ListLineItems(ctx context.Context, reconciliationID string) ([]domain.ReconciliationLineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM reconciliation_line_items
		WHERE reconciliation_id = $1
		ORDER BY employee_name NULLS LAST, employee_id;
	`
	return r.listItems(ctx, query, reconciliationID)
}

// ListLineItemsByPeriod retrieves the line items of a period's
// reconciliation directly, so header and items can be fetched concurrently.
func (r *PgxReconciliationRepository) ListLineItemsByPeriod(ctx context.Context, periodID string) ([]domain.ReconciliationLineItem, error) {
	query := `
		SELECT ` + qualifiedLineItemColumns + `
		FROM reconciliation_line_items li
		JOIN reconciliations rec ON rec.reconciliation_id = li.reconciliation_id
		WHERE rec.payroll_period_id = $1
		ORDER BY li.employee_name NULLS LAST, li.employee_id;
	`
	return r.listItems(ctx, query, periodID)
}

const qualifiedLineItemColumns = `li.line_item_id, li.reconciliation_id, li.employee_id, li.employee_name, li.hotel_hours, li.moss_hours, li.final_hours, li.justification, li.is_approved, li.approved_at, li.approval_reason`

func (r *PgxReconciliationRepository) listItems(ctx context.Context, query, arg string) ([]domain.ReconciliationLineItem, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for %s: %w", arg, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanLineItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items for %s: %w", arg, err)
	}

	return mapping.ToDomainLineItems(modelItems), nil
}

// pgxExecutor is satisfied by both *pgxpool.Pool and pgx.Tx, so the update
// statements can run standalone or inside a transaction.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UpdateLineItem persists the approval fields of one line item.
func (r *PgxReconciliationRepository) UpdateLineItem(ctx context.Context, item domain.ReconciliationLineItem) error {
	return execUpdateLineItem(ctx, r.Pool, item)
}

// UpdateReconciliationStatus moves a reconciliation through its state
// machine, stamping approver and approval time on the terminal transition.
func (r *PgxReconciliationRepository) UpdateReconciliationStatus(ctx context.Context, reconciliationID string, status domain.ReconciliationStatus, approvedBy string, approvedAt *time.Time, updatedBy string, updatedAt time.Time) error {
	return execUpdateReconciliationStatus(ctx, r.Pool, reconciliationID, status, approvedBy, approvedAt, updatedBy, updatedAt)
}

// UpdateLineItemAndStatus persists one line item and a non-terminal status
// change as a single transaction.
func (r *PgxReconciliationRepository) UpdateLineItemAndStatus(ctx context.Context, item domain.ReconciliationLineItem, reconciliationID string, status domain.ReconciliationStatus, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := execUpdateLineItem(ctx, tx, item); err != nil {
		return err
	}
	if err := execUpdateReconciliationStatus(ctx, tx, reconciliationID, status, "", nil, updatedBy, updatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func execUpdateLineItem(ctx context.Context, db pgxExecutor, item domain.ReconciliationLineItem) error {
	query := `
		UPDATE reconciliation_line_items SET
			final_hours = $2,
			justification = NULLIF($3, ''),
			is_approved = $4,
			approved_at = $5,
			approval_reason = NULLIF($6, '')
		WHERE line_item_id = $1;
	`
	tag, err := db.Exec(ctx, query,
		item.LineItemID,
		item.FinalHours,
		item.Justification,
		item.IsApproved,
		item.ApprovedAt,
		item.ApprovalReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update line item %s: %w", item.LineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func execUpdateReconciliationStatus(ctx context.Context, db pgxExecutor, reconciliationID string, status domain.ReconciliationStatus, approvedBy string, approvedAt *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE reconciliations SET
			status = $2,
			approved_by = NULLIF($3, ''),
			approved_at = $4,
			last_updated_by = $5,
			last_updated_at = $6
		WHERE reconciliation_id = $1;
	`
	tag, err := db.Exec(ctx, query, reconciliationID, string(status), approvedBy, approvedAt, updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of reconciliation %s: %w", reconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
