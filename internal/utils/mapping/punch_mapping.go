package mapping

import (
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/mosshrp/payroll_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainPunch converts a model Punch to a domain Punch.
func ToDomainPunch(m models.Punch) domain.Punch {
	return domain.Punch{
		PunchID:      m.PunchID,
		AssignmentID: m.AssignmentID,
		EmployeeID:   m.EmployeeID,
		Type:         domain.PunchType(m.Type),
		Timestamp:    m.Timestamp,
	}
}

// ToDomainPunches converts a slice of model punches.
func ToDomainPunches(ms []models.Punch) []domain.Punch {
	out := make([]domain.Punch, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPunch(m)
	}
	return out
}

// ToDomainAssignment converts a model Assignment to a domain Assignment.
// A rate that fails to parse is treated as absent (zero) so estimated pay
// degrades to a data-completeness warning upstream instead of an error.
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	rate, err := decimal.NewFromString(m.HourlyRate)
	if err != nil {
		rate = decimal.Zero
	}
	return domain.Assignment{
		AssignmentID: m.AssignmentID,
		EmployeeID:   m.EmployeeID,
		HotelID:      m.HotelID,
		PositionID:   m.PositionID,
		HourlyRate:   rate,
		Active:       m.Active,
	}
}
