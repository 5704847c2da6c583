package dto

// PayrollHistoryFilters narrows a payroll history query. Empty fields are
// ignored; an empty status list defaults to the completed statuses.
type PayrollHistoryFilters struct {
	HotelID   string   `form:"hotelID"`
	StartDate string   `form:"startDate"` // YYYY-MM-DD, inclusive lower bound on week_start
	EndDate   string   `form:"endDate"`   // YYYY-MM-DD, inclusive upper bound on week_start
	Statuses  []string `form:"status"`
}

// WeeklySummariesRequest asks for concurrent weekly summaries of many
// employees.
type WeeklySummariesRequest struct {
	EmployeeIDs []string `json:"employeeIDs" binding:"required,min=1"`
	WeekStart   string   `json:"weekStart" binding:"required"` // YYYY-MM-DD
}

// WeeklySummariesResponse returns per-employee summaries plus per-employee
// fetch failures, so one slow or broken record does not void the batch.
type WeeklySummariesResponse struct {
	Summaries map[string]WeeklySummaryResponse `json:"summaries"`
	Failures  map[string]string                `json:"failures,omitempty"`
}
