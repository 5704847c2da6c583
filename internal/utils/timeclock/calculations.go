package timeclock

import (
	"sort"
	"time"

	"github.com/mosshrp/payroll_backend/internal/apperrors"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for work dates and period
// boundaries throughout the aggregation core.
const DateLayout = "2006-01-02"

// punchTimeLayouts are the timestamp formats accepted from the time-clock
// record store, in order of likelihood.
var punchTimeLayouts = []string{
	"2006-01-02 15:04:05.000Z",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339,
}

// ParsePunchTime parses a raw punch timestamp. A failure is returned as a
// *apperrors.ParseError so callers can degrade the single record.
func ParsePunchTime(raw string) (time.Time, error) {
	for _, layout := range punchTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &apperrors.ParseError{Field: "timestamp", Value: raw, Err: apperrors.ErrValidation}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, raw)
}

// DateKey returns the UTC calendar date of an instant.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// HoursBetween converts the span between two instants into decimal hours at
// whole-second resolution.
func HoursBetween(from, to time.Time) decimal.Decimal {
	seconds := int64(to.Sub(from) / time.Second)
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600))
}

// parsedPunch pairs a punch with its parsed instant. ok is false when the
// timestamp was malformed.
type parsedPunch struct {
	punch domain.Punch
	at    time.Time
	ok    bool
}

// ComputeDailyHours groups an unordered collection of one employee's punches
// into one WorkDay per distinct work date and computes worked hours per day.
//
// The work date of a cycle is the calendar date of its clock_in punch, so a
// clock_out after midnight lands on the clock_in's date. Raw-date buckets
// that resolve to the same work date are merged. Within a work date punches
// are ordered clock_in < break_start < break_end < clock_out (unknown types
// last) and the first punch of each type is canonical.
//
// Malformed timestamps are reported as ParseError values; the affected
// WorkDay is kept in the output with zero hours and hasGap set rather than
// discarded.
func ComputeDailyHours(punches []domain.Punch) ([]domain.WorkDay, []error) {
	if len(punches) == 0 {
		return nil, nil
	}

	var parseErrs []error

	// First pass: bucket by the calendar date of each punch's own timestamp.
	// Malformed punches are bucketed best-effort by the date prefix of the
	// raw string so they still surface in the output.
	rawBuckets := make(map[string][]parsedPunch)
	for _, p := range punches {
		at, err := ParsePunchTime(p.Timestamp)
		if err != nil {
			parseErrs = append(parseErrs, err)
			key := p.Timestamp
			if len(key) > len(DateLayout) {
				key = key[:len(DateLayout)]
			}
			rawBuckets[key] = append(rawBuckets[key], parsedPunch{punch: p})
			continue
		}
		key := DateKey(at)
		rawBuckets[key] = append(rawBuckets[key], parsedPunch{punch: p, at: at, ok: true})
	}

	// Second pass: re-key each raw bucket to the calendar date of its
	// clock_in punch and merge buckets resolving to the same work date. A
	// bucket without a clock_in joins the previous calendar day's cycle when
	// that day clocked in (a clock_out landing after midnight); otherwise it
	// falls back to its own raw date.
	rawDates := make([]string, 0, len(rawBuckets))
	for rawDate := range rawBuckets {
		rawDates = append(rawDates, rawDate)
	}
	sort.Strings(rawDates)

	resolved := make(map[string]string, len(rawBuckets)) // raw date -> work date
	byWorkDate := make(map[string][]parsedPunch)
	for _, rawDate := range rawDates {
		bucket := rawBuckets[rawDate]
		workDate := rawDate
		if ci := earliestOfType(bucket, domain.ClockIn); ci != nil {
			workDate = DateKey(ci.at)
		} else if prev, ok := previousDate(rawDate); ok && hasParseable(bucket) {
			if prevWork, merged := resolved[prev]; merged {
				if prevBucket := rawBuckets[prev]; earliestOfType(prevBucket, domain.ClockIn) != nil {
					workDate = prevWork
				}
			}
		}
		resolved[rawDate] = workDate
		byWorkDate[workDate] = append(byWorkDate[workDate], bucket...)
	}

	result := make([]domain.WorkDay, 0, len(byWorkDate))
	for workDate, bucket := range byWorkDate {
		result = append(result, buildWorkDay(workDate, bucket))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkDate < result[j].WorkDate
	})
	return result, parseErrs
}

// previousDate returns the calendar date one day before the given date key.
func previousDate(dateKey string) (string, bool) {
	d, err := time.Parse(DateLayout, dateKey)
	if err != nil {
		return "", false
	}
	return d.AddDate(0, 0, -1).Format(DateLayout), true
}

// hasParseable reports whether any punch in the bucket parsed. A bucket of
// only malformed punches never merges into another day.
func hasParseable(bucket []parsedPunch) bool {
	for i := range bucket {
		if bucket[i].ok {
			return true
		}
	}
	return false
}

// earliestOfType returns the parseable punch of the given type with the
// smallest timestamp, or nil.
func earliestOfType(bucket []parsedPunch, t domain.PunchType) *parsedPunch {
	var found *parsedPunch
	for i := range bucket {
		pp := &bucket[i]
		if !pp.ok || pp.punch.Type != t {
			continue
		}
		if found == nil || pp.at.Before(found.at) {
			found = pp
		}
	}
	return found
}

// buildWorkDay sorts one resolved work date's punches, selects the canonical
// punch per type and computes worked hours by data completeness.
func buildWorkDay(workDate string, bucket []parsedPunch) domain.WorkDay {
	sort.SliceStable(bucket, func(i, j int) bool {
		oi, oj := bucket[i].punch.Type.Order(), bucket[j].punch.Type.Order()
		if oi != oj {
			return oi < oj
		}
		return bucket[i].at.Before(bucket[j].at)
	})

	day := domain.WorkDay{
		WorkDate:   workDate,
		TotalHours: decimal.Zero,
	}
	poisoned := false
	for _, pp := range bucket {
		day.Punches = append(day.Punches, pp.punch)
		if !pp.ok {
			poisoned = true
		}
	}

	// First occurrence of each expected type in sorted order is canonical;
	// duplicates of the same type are ignored beyond the first.
	canonical := make(map[domain.PunchType]time.Time, 4)
	for _, pp := range bucket {
		if !pp.ok {
			continue
		}
		if _, seen := canonical[pp.punch.Type]; !seen {
			canonical[pp.punch.Type] = pp.at
		}
	}

	clockIn, hasClockIn := canonical[domain.ClockIn]
	breakStart, hasBreakStart := canonical[domain.BreakStart]
	breakEnd, hasBreakEnd := canonical[domain.BreakEnd]
	clockOut, hasClockOut := canonical[domain.ClockOut]

	if hasClockIn {
		day.ClockIn = &clockIn
	}
	if hasBreakStart {
		day.BreakStart = &breakStart
	}
	if hasBreakEnd {
		day.BreakEnd = &breakEnd
	}
	if hasClockOut {
		day.ClockOut = &clockOut
	}
	day.HasCompleteSequence = hasClockIn && hasBreakStart && hasBreakEnd && hasClockOut

	if poisoned {
		// A malformed punch disqualifies the day from hour totals.
		day.HasGap = true
		return day
	}

	switch {
	case day.HasCompleteSequence:
		first := HoursBetween(clockIn, breakStart)
		second := HoursBetween(breakEnd, clockOut)
		if first.IsNegative() || second.IsNegative() {
			// Out-of-order punches never produce negative hours.
			day.HasGap = true
			return day
		}
		day.TotalHours = first.Add(second)
	case hasClockIn && hasClockOut:
		span := HoursBetween(clockIn, clockOut)
		if span.IsNegative() {
			day.HasGap = true
			return day
		}
		// Break punches missing: full span counted, flagged rather than
		// silently corrected.
		day.TotalHours = span
		day.HasGap = true
	default:
		day.HasGap = true
	}
	return day
}
