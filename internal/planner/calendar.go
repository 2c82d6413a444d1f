package planner

import "time"

const (
	// DefaultHorizonDays is the planning horizon when no exam date is set.
	DefaultHorizonDays = 14

	// MaxHorizonDays caps the horizon at 16 weeks so a far-future exam
	// date cannot blow up the amount of work the assembler does.
	MaxHorizonDays = 112
)

// CalendarDay is one date in the planning window.
type CalendarDay struct {
	Date    time.Time
	Weekday time.Weekday
}

// Calendar is the ordered planning window: every date from the start
// through the horizon, plus the same dates grouped into Monday-start
// weeks. The first week is partial when the start date is not a Monday.
type Calendar struct {
	Days  []CalendarDay
	Weeks [][]CalendarDay
}

// BuildCalendar constructs the calendar for horizonDays days beginning
// at start (normalized to midnight).
func BuildCalendar(start time.Time, horizonDays int) Calendar {
	start = midnight(start)

	days := make([]CalendarDay, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{Date: d, Weekday: d.Weekday()})
	}

	var weeks [][]CalendarDay
	var current []CalendarDay
	for _, d := range days {
		if d.Weekday == time.Monday && len(current) > 0 {
			weeks = append(weeks, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		weeks = append(weeks, current)
	}

	return Calendar{Days: days, Weeks: weeks}
}

// HorizonFromExamDate derives the horizon from an exam date: the number
// of days from start through the exam date inclusive, capped at
// MaxHorizonDays. The exam date must not precede the start date.
func HorizonFromExamDate(start, exam time.Time) (int, error) {
	start = midnight(start)
	exam = midnight(exam)

	if exam.Before(start) {
		return 0, &InvalidDateRangeError{Start: start, End: exam}
	}

	// Count calendar dates in UTC so a DST transition in the local zone
	// (23 or 25 hour day) cannot skew the division.
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	examDate := time.Date(exam.Year(), exam.Month(), exam.Day(), 0, 0, 0, 0, time.UTC)

	days := int(examDate.Sub(startDate).Hours()/24) + 1
	if days > MaxHorizonDays {
		days = MaxHorizonDays
	}
	return days, nil
}
