package domain

// PunchType identifies one of the four clock events that make up a work cycle.
type PunchType string

const (
	ClockIn    PunchType = "clock_in"
	BreakStart PunchType = "break_start"
	BreakEnd   PunchType = "break_end"
	ClockOut   PunchType = "clock_out"
)

// punchTypeOrder is the canonical in-day ordering of punch types. Unknown
// types sort last.
var punchTypeOrder = map[PunchType]int{
	ClockIn:    0,
	BreakStart: 1,
	BreakEnd:   2,
	ClockOut:   3,
}

// Order returns the sort rank of the punch type within a work date.
func (t PunchType) Order() int {
	if o, ok := punchTypeOrder[t]; ok {
		return o
	}
	return 99
}

// Punch is a single timestamped clock event recorded by the time-clock
// subsystem. Punches are immutable once recorded.
//
// Timestamp is kept as the raw record-store string so that a malformed value
// degrades only the work day it belongs to instead of failing the whole
// fetch. Parsing happens inside the daily-hours aggregation.
type Punch struct {
	PunchID      string    `json:"punchID"`
	AssignmentID string    `json:"assignmentID"`
	EmployeeID   string    `json:"employeeID"`
	Type         PunchType `json:"type"`
	Timestamp    string    `json:"timestamp"`
}
