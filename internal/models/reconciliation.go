package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reconciliation mirrors the reconciliations table.
type Reconciliation struct {
	ReconciliationID string     `json:"reconciliationID"`
	PayrollPeriodID  string     `json:"payrollPeriodID"`
	Status           string     `json:"status"`
	ApprovedAt       *time.Time `json:"approvedAt"`
	ApprovedBy       *string    `json:"approvedBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	CreatedBy        string     `json:"createdBy"`
	LastUpdatedAt    time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy    string     `json:"lastUpdatedBy"`
}

// ReconciliationLineItem mirrors the reconciliation_line_items table.
type ReconciliationLineItem struct {
	LineItemID       string           `json:"lineItemID"`
	ReconciliationID string           `json:"reconciliationID"`
	EmployeeID       string           `json:"employeeID"`
	EmployeeName     *string          `json:"employeeName"`
	HotelHours       decimal.Decimal  `json:"hotelHours"`
	MossHours        decimal.Decimal  `json:"mossHours"`
	FinalHours       *decimal.Decimal `json:"finalHours"`
	Justification    *string          `json:"justification"`
	IsApproved       bool             `json:"isApproved"`
	ApprovedAt       *time.Time       `json:"approvedAt"`
	ApprovalReason   *string          `json:"approvalReason"`
}
