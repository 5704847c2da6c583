package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkDay is the derived result of grouping one employee's punches into a
// single payroll work date. It is recomputed on demand and never persisted.
//
// WorkDate is the calendar date of the cycle's clock_in punch, which is not
// necessarily the date of every punch in the cycle (a cycle may cross
// midnight). When no clock_in exists in a raw-date bucket the bucket's own
// date is used.
type WorkDay struct {
	WorkDate            string          `json:"workDate"` // YYYY-MM-DD
	Punches             []Punch         `json:"punches"`
	ClockIn             *time.Time      `json:"clockIn,omitempty"`
	BreakStart          *time.Time      `json:"breakStart,omitempty"`
	BreakEnd            *time.Time      `json:"breakEnd,omitempty"`
	ClockOut            *time.Time      `json:"clockOut,omitempty"`
	TotalHours          decimal.Decimal `json:"totalHours"`
	HasCompleteSequence bool            `json:"hasCompleteSequence"`
	HasGap              bool            `json:"hasGap"`
}
