package models

// Punch mirrors the punches table. The timestamp column is carried as text
// exactly as the time-clock feed wrote it; parsing is the aggregator's job.
type Punch struct {
	PunchID      string `json:"punchID"`
	AssignmentID string `json:"assignmentID"`
	EmployeeID   string `json:"employeeID"`
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"`
}

// Assignment mirrors the assignments table.
type Assignment struct {
	AssignmentID string `json:"assignmentID"`
	EmployeeID   string `json:"employeeID"`
	HotelID      string `json:"hotelID"`
	PositionID   string `json:"positionID"`
	HourlyRate   string `json:"hourlyRate"` // numeric column scanned as text
	Active       bool   `json:"active"`
}
