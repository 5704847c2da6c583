package mapping

import (
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/models"
)

// ToDomainReconciliation converts a model Reconciliation (header only).
func ToDomainReconciliation(m models.Reconciliation) domain.Reconciliation {
	rec := domain.Reconciliation{
		ReconciliationID: m.ReconciliationID,
		PayrollPeriodID:  m.PayrollPeriodID,
		Status:           domain.ReconciliationStatus(m.Status),
		ApprovedAt:       m.ApprovedAt,
	}
	if m.ApprovedBy != nil {
		rec.ApprovedBy = *m.ApprovedBy
	}
	rec.CreatedAt = m.CreatedAt
	rec.CreatedBy = m.CreatedBy
	rec.LastUpdatedAt = m.LastUpdatedAt
	rec.LastUpdatedBy = m.LastUpdatedBy
	return rec
}

// ToDomainLineItem converts a model line item.
func ToDomainLineItem(m models.ReconciliationLineItem) domain.ReconciliationLineItem {
	li := domain.ReconciliationLineItem{
		LineItemID:       m.LineItemID,
		ReconciliationID: m.ReconciliationID,
		EmployeeID:       m.EmployeeID,
		HotelHours:       m.HotelHours,
		MossHours:        m.MossHours,
		FinalHours:       m.FinalHours,
		IsApproved:       m.IsApproved,
		ApprovedAt:       m.ApprovedAt,
	}
	if m.EmployeeName != nil {
		li.EmployeeName = *m.EmployeeName
	}
	if m.Justification != nil {
		li.Justification = *m.Justification
	}
	if m.ApprovalReason != nil {
		li.ApprovalReason = *m.ApprovalReason
	}
	return li
}

// ToDomainLineItems converts a slice of model line items.
func ToDomainLineItems(ms []models.ReconciliationLineItem) []domain.ReconciliationLineItem {
	out := make([]domain.ReconciliationLineItem, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLineItem(m)
	}
	return out
}
