package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll mirrors the payroll table: one hotel-week row.
type Payroll struct {
	PayrollID         string          `json:"payrollID"`
	HotelID           string          `json:"hotelID"`
	WeekStart         time.Time       `json:"weekStart"`
	WeekEnd           time.Time       `json:"weekEnd"`
	TotalHours        decimal.Decimal `json:"totalHours"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Status            string          `json:"status"`
	QuickbooksBatchID *string         `json:"quickbooksBatchID"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// PayrollItem mirrors the payroll_items table.
type PayrollItem struct {
	PayrollItemID string          `json:"payrollItemID"`
	PayrollID     string          `json:"payrollID"`
	AssignmentID  string          `json:"assignmentID"`
	EmployeeID    string          `json:"employeeID"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	Amount        decimal.Decimal `json:"amount"`
	WeekStart     time.Time       `json:"weekStart"`
}
