package dto

import (
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BulkApproveRequest lists the employees to auto-approve. Employees whose
// discrepancy exceeds the policy threshold are skipped, not errored; check
// the returned count.
type BulkApproveRequest struct {
	EmployeeIDs []string `json:"employeeIDs" binding:"required,min=1"`
}

// BulkApproveResponse reports how many line items were actually approved.
type BulkApproveResponse struct {
	ApprovedCount int `json:"approvedCount"`
}

// SaveLineItemRequest records a manual approval of one employee's hours.
type SaveLineItemRequest struct {
	EmployeeID    string          `json:"employeeID" binding:"required"`
	FinalHours    decimal.Decimal `json:"finalHours" binding:"required"`
	Justification string          `json:"justification"`
}

// FinalizeReconciliationRequest carries the final approved hours per
// employee for the terminal transition.
type FinalizeReconciliationRequest struct {
	FinalData map[string]decimal.Decimal `json:"finalData" binding:"required"`
}

// LineItemResponse is one employee's reconciliation row with its computed
// discrepancy classification.
type LineItemResponse struct {
	LineItemID         string           `json:"lineItemID"`
	EmployeeID         string           `json:"employeeID"`
	EmployeeName       string           `json:"employeeName,omitempty"`
	HotelHours         decimal.Decimal  `json:"hotelHours"`
	MossHours          decimal.Decimal  `json:"mossHours"`
	FinalHours         *decimal.Decimal `json:"finalHours,omitempty"`
	DiscrepancyPercent decimal.Decimal  `json:"discrepancyPercent"`
	Severity           string           `json:"severity"`
	IsApproved         bool             `json:"isApproved"`
	Justification      string           `json:"justification,omitempty"`
	ApprovedAt         string           `json:"approvedAt,omitempty"`
}

// ReconciliationResponse is the stitched reconciliation detail.
type ReconciliationResponse struct {
	ReconciliationID string             `json:"reconciliationID"`
	PayrollPeriodID  string             `json:"payrollPeriodID"`
	Status           string             `json:"status"`
	LineItems        []LineItemResponse `json:"lineItems"`
	ApprovedAt       string             `json:"approvedAt,omitempty"`
	ApprovedBy       string             `json:"approvedBy,omitempty"`
}

// ToReconciliationResponse converts a domain reconciliation into the
// response shape, computing classification per line item.
func ToReconciliationResponse(rec *domain.Reconciliation) ReconciliationResponse {
	resp := ReconciliationResponse{
		ReconciliationID: rec.ReconciliationID,
		PayrollPeriodID:  rec.PayrollPeriodID,
		Status:           string(rec.Status),
		LineItems:        make([]LineItemResponse, len(rec.LineItems)),
		ApprovedBy:       rec.ApprovedBy,
	}
	if rec.ApprovedAt != nil {
		resp.ApprovedAt = rec.ApprovedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	for i, li := range rec.LineItems {
		item := LineItemResponse{
			LineItemID:         li.LineItemID,
			EmployeeID:         li.EmployeeID,
			EmployeeName:       li.EmployeeName,
			HotelHours:         li.HotelHours,
			MossHours:          li.MossHours,
			FinalHours:         li.FinalHours,
			DiscrepancyPercent: li.DiscrepancyPercent(),
			Severity:           string(li.Severity()),
			IsApproved:         li.IsApproved,
			Justification:      li.Justification,
		}
		if li.ApprovedAt != nil {
			item.ApprovedAt = li.ApprovedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		resp.LineItems[i] = item
	}
	return resp
}
