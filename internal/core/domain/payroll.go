package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus indicates where a hotel-week payroll record sits in its
// lifecycle. Draft records are excluded from every aggregation.
type PayrollStatus string

const (
	PayrollDraft         PayrollStatus = "draft"
	PayrollPendingReview PayrollStatus = "pending_review"
	PayrollApproved      PayrollStatus = "approved"
	PayrollSentToQB      PayrollStatus = "sent_to_quickbooks"
	PayrollPaid          PayrollStatus = "paid"
)

// CompletedPayrollStatuses are the statuses treated as payable history.
var CompletedPayrollStatuses = []PayrollStatus{PayrollApproved, PayrollSentToQB, PayrollPaid}

// PayrollRecord is one hotel's payroll for one week. Once approved it is the
// authoritative record of hours and amount for that week.
type PayrollRecord struct {
	PayrollID         string          `json:"payrollID"`
	HotelID           string          `json:"hotelID"`
	WeekStart         string          `json:"weekStart"` // YYYY-MM-DD
	WeekEnd           string          `json:"weekEnd"`   // YYYY-MM-DD
	TotalHours        decimal.Decimal `json:"totalHours"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Status            PayrollStatus   `json:"status"`
	QuickbooksBatchID string          `json:"quickbooksBatchID,omitempty"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// PayrollItem is a single employee assignment's line within a PayrollRecord.
type PayrollItem struct {
	PayrollItemID string          `json:"payrollItemID"`
	PayrollID     string          `json:"payrollID"`
	AssignmentID  string          `json:"assignmentID"`
	EmployeeID    string          `json:"employeeID"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	Amount        decimal.Decimal `json:"amount"`
	WeekStart     string          `json:"weekStart"` // denormalized from the owning payroll
}

// Assignment links an employee to a position at a hotel with an hourly rate.
type Assignment struct {
	AssignmentID string          `json:"assignmentID"`
	EmployeeID   string          `json:"employeeID"`
	HotelID      string          `json:"hotelID"`
	PositionID   string          `json:"positionID"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	Active       bool            `json:"active"`
}

// PeriodSummary aggregates worked hours for one employee or hotel over a
// period. It is derived on demand; the approved payroll record stays
// authoritative.
type PeriodSummary struct {
	SubjectID     string          `json:"subjectID"`
	PeriodStart   string          `json:"periodStart"` // YYYY-MM-DD
	PeriodEnd     string          `json:"periodEnd"`   // YYYY-MM-DD
	TotalHours    decimal.Decimal `json:"totalHours"`
	DaysWorked    int             `json:"daysWorked"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	EstimatedPay  decimal.Decimal `json:"estimatedPay"`
	RateMissing   bool            `json:"rateMissing,omitempty"`
}

// MonthBucket is one month's slice of a year-to-date fold.
type MonthBucket struct {
	TotalHours  decimal.Decimal `json:"totalHours"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	WeekCount   int             `json:"weekCount"`
}

// MonthlyAggregation is the in-memory fold of a hotel's non-draft payroll
// records for one month.
type MonthlyAggregation struct {
	HotelID        string          `json:"hotelID"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalHours     decimal.Decimal `json:"totalHours"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	WeekCount      int             `json:"weekCount"`
	AvgWeeklyHours decimal.Decimal `json:"avgWeeklyHours"`
}

// YTDSummary is the year-to-date fold of a hotel's payroll records with a
// per-month breakdown keyed by the month of week_start.
type YTDSummary struct {
	HotelID          string              `json:"hotelID"`
	Year             int                 `json:"year"`
	TotalHours       decimal.Decimal     `json:"totalHours"`
	TotalAmount      decimal.Decimal     `json:"totalAmount"`
	MonthlyBreakdown map[int]MonthBucket `json:"monthlyBreakdown"`
}

// PayrollYearSummary is the whole-year fold used by history views.
type PayrollYearSummary struct {
	HotelID     string          `json:"hotelID"`
	Year        int             `json:"year"`
	TotalHours  decimal.Decimal `json:"totalHours"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AvgWeekly   decimal.Decimal `json:"avgWeekly"`
	PeriodCount int             `json:"periodCount"`
}
