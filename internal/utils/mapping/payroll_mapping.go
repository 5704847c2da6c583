package mapping

import (
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/models"
)

const dateLayout = "2006-01-02"

// ToDomainPayrollRecord converts a model Payroll to a domain PayrollRecord.
func ToDomainPayrollRecord(m models.Payroll) domain.PayrollRecord {
	rec := domain.PayrollRecord{
		PayrollID:   m.PayrollID,
		HotelID:     m.HotelID,
		WeekStart:   m.WeekStart.UTC().Format(dateLayout),
		WeekEnd:     m.WeekEnd.UTC().Format(dateLayout),
		TotalHours:  m.TotalHours,
		TotalAmount: m.TotalAmount,
		Status:      domain.PayrollStatus(m.Status),
		GeneratedAt: m.GeneratedAt,
	}
	if m.QuickbooksBatchID != nil {
		rec.QuickbooksBatchID = *m.QuickbooksBatchID
	}
	return rec
}

// ToDomainPayrollRecords converts a slice of model payroll rows.
func ToDomainPayrollRecords(ms []models.Payroll) []domain.PayrollRecord {
	out := make([]domain.PayrollRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayrollRecord(m)
	}
	return out
}

// ToDomainPayrollItem converts a model PayrollItem to its domain form.
func ToDomainPayrollItem(m models.PayrollItem) domain.PayrollItem {
	return domain.PayrollItem{
		PayrollItemID: m.PayrollItemID,
		PayrollID:     m.PayrollID,
		AssignmentID:  m.AssignmentID,
		EmployeeID:    m.EmployeeID,
		HoursWorked:   m.HoursWorked,
		Amount:        m.Amount,
		WeekStart:     m.WeekStart.UTC().Format(dateLayout),
	}
}

// ToDomainPayrollItems converts a slice of model payroll items.
func ToDomainPayrollItems(ms []models.PayrollItem) []domain.PayrollItem {
	out := make([]domain.PayrollItem, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayrollItem(m)
	}
	return out
}
