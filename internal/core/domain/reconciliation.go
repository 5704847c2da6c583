package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus models the approval state machine of a reconciliation:
// pending -> in_progress -> approved. There is no transition back; an
// approved reconciliation is immutable except for superseding audit entries.
type ReconciliationStatus string

const (
	ReconciliationPending    ReconciliationStatus = "pending"
	ReconciliationInProgress ReconciliationStatus = "in_progress"
	ReconciliationApproved   ReconciliationStatus = "approved"
)

// Terminal reports whether the status permits no further mutation.
func (s ReconciliationStatus) Terminal() bool {
	return s == ReconciliationApproved
}

// Severity is the discrepancy classification band driving the approval
// workflow.
type Severity string

const (
	SeverityNone Severity = "none"
	SeverityLow  Severity = "low"
	SeverityHigh Severity = "high"
)

// HighSeverityThresholdPercent is the fixed policy cutoff above which a line
// item requires manual review with justification. Not configurable per call.
var HighSeverityThresholdPercent = decimal.NewFromInt(5)

// Reconciliation compares hotel-reported hours against internally computed
// hours for one payroll period. Created once per period, mutated by approval
// operations, immutable once approved.
type Reconciliation struct {
	ReconciliationID string                   `json:"reconciliationID"`
	PayrollPeriodID  string                   `json:"payrollPeriodID"`
	Status           ReconciliationStatus     `json:"status"`
	LineItems        []ReconciliationLineItem `json:"lineItems,omitempty"`
	ApprovedAt       *time.Time               `json:"approvedAt,omitempty"`
	ApprovedBy       string                   `json:"approvedBy,omitempty"`
	AuditFields
}

// ReconciliationLineItem is one employee's row in a reconciliation. Mutable
// until the owning reconciliation reaches terminal status.
type ReconciliationLineItem struct {
	LineItemID       string           `json:"lineItemID"`
	ReconciliationID string           `json:"reconciliationID"`
	EmployeeID       string           `json:"employeeID"`
	EmployeeName     string           `json:"employeeName,omitempty"`
	HotelHours       decimal.Decimal  `json:"hotelHours"`
	MossHours        decimal.Decimal  `json:"mossHours"`
	FinalHours       *decimal.Decimal `json:"finalHours,omitempty"`
	Justification    string           `json:"justification,omitempty"`
	IsApproved       bool             `json:"isApproved"`
	ApprovedAt       *time.Time       `json:"approvedAt,omitempty"`
	ApprovalReason   string           `json:"approvalReason,omitempty"`
}

// DiscrepancyPercent returns |moss - hotel| / hotel * 100, defined as zero
// when hotel hours are zero to avoid division by zero.
func (li ReconciliationLineItem) DiscrepancyPercent() decimal.Decimal {
	if !li.HotelHours.IsPositive() {
		return decimal.Zero
	}
	return li.MossHours.Sub(li.HotelHours).Abs().
		Div(li.HotelHours).
		Mul(decimal.NewFromInt(100))
}

// Severity classifies the line item's discrepancy percentage into its band.
func (li ReconciliationLineItem) Severity() Severity {
	return ClassifySeverity(li.DiscrepancyPercent())
}

// ClassifySeverity maps a discrepancy percentage to its severity band:
// > 5% high, (0%, 5%] low, 0% none.
func ClassifySeverity(percent decimal.Decimal) Severity {
	switch {
	case percent.GreaterThan(HighSeverityThresholdPercent):
		return SeverityHigh
	case percent.IsPositive():
		return SeverityLow
	default:
		return SeverityNone
	}
}

// Discrepancy is one classified row of a reconciliation comparison.
type Discrepancy struct {
	EmployeeID         string          `json:"employeeID"`
	EmployeeName       string          `json:"employeeName"`
	HotelHours         decimal.Decimal `json:"hotelHours"`
	MossHours          decimal.Decimal `json:"mossHours"`
	Discrepancy        decimal.Decimal `json:"discrepancy"`
	DiscrepancyPercent decimal.Decimal `json:"discrepancyPercent"`
	Severity           Severity        `json:"severity"`
}

// DiscrepancyGroups holds classified line items grouped by severity band.
type DiscrepancyGroups struct {
	High []Discrepancy `json:"high"`
	Low  []Discrepancy `json:"low"`
	None []Discrepancy `json:"none"`
}
