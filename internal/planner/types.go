package planner

import (
	"fmt"
	"time"
)

// Priority is a subject's study priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight returns the proportional allocation weight for the priority.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// MinShare returns the fairness floor as a fraction of a subject's fair
// share. Lower priorities get a smaller guaranteed floor, but never zero.
func (p Priority) MinShare() float64 {
	switch p {
	case PriorityHigh:
		return 0.25
	case PriorityMedium:
		return 0.20
	default:
		return 0.15
	}
}

// ParsePriority parses a priority string, defaulting to medium for
// unrecognized values.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Subject is a study subject with its priority and display color.
type Subject struct {
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
	Color    string   `json:"color,omitempty"`
}

// ClockTime is a time of day in minutes since midnight. It marshals to
// and from "HH:MM" strings.
type ClockTime int

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

// String formats the time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns the clock time advanced by the given number of minutes.
func (c ClockTime) Add(minutes int) ClockTime {
	return c + ClockTime(minutes)
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes an "HH:MM" string.
func (c *ClockTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("clock time must be a string, got %s", b)
	}
	parsed, err := ParseClock(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TimeWindow is a recurring weekly availability window. End must be
// strictly after Start. Overlapping windows on the same day double-book
// capacity; callers are expected not to provide them.
type TimeWindow struct {
	Day   time.Weekday `json:"day"`
	Start ClockTime    `json:"start"`
	End   ClockTime    `json:"end"`
}

// DurationMinutes returns the window length in minutes.
func (w TimeWindow) DurationMinutes() int {
	return int(w.End - w.Start)
}

// StudyMode selects the overall planning mode.
type StudyMode string

const (
	ModeRegular  StudyMode = "regular"
	ModeExamPrep StudyMode = "examPrep"
)

// SessionParameters holds the per-session timing configuration.
type SessionParameters struct {
	SessionLengthMinutes int       `json:"sessionLengthMinutes"`
	BreakMinutes         int       `json:"breakMinutes"`
	StudyMode            StudyMode `json:"studyMode"`
}

// UnitKind distinguishes first-exposure units from spaced review passes.
type UnitKind string

const (
	KindNew    UnitKind = "new"
	KindReview UnitKind = "review"
)

// ScheduleUnit is a single schedulable obligation for one topic: either
// its first exposure or one review pass. Units move one way from pending
// to consumed; a consumed unit is never scheduled again.
type ScheduleUnit struct {
	Subject          string
	Topic            string
	DueDate          time.Time
	Kind             UnitKind
	ReviewOffsetDays int

	// index is the position in expansion order, used as the final
	// deterministic tiebreaker when picking candidates.
	index    int
	consumed bool
}

// Slot is a bookable interval on a specific day, sized to one session.
type Slot struct {
	Start           ClockTime `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
}

// ScheduledSession is one concrete study session in the generated plan.
// Immutable once generated; completion is tracked separately as a key set.
type ScheduledSession struct {
	Date            time.Time `json:"date"`
	StartTime       ClockTime `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Subject         string    `json:"subject"`
	Topic           string    `json:"topic"`
	Kind            UnitKind  `json:"kind"`
}

// TaskKey returns the session's completion-tracking key.
func (s ScheduledSession) TaskKey() string {
	return TaskKey(s.Date, s.Subject, s.Topic)
}

// TaskKey builds the completion key for a (date, subject, topic) triple.
func TaskKey(date time.Time, subject, topic string) string {
	return fmt.Sprintf("%s-%s-%s", date.Format("2006-01-02"), subject, topic)
}

// DaySchedule groups the sessions scheduled on one calendar day,
// ordered ascending by start time.
type DaySchedule struct {
	Date     time.Time          `json:"date"`
	Weekday  string             `json:"dayOfWeek"`
	Sessions []ScheduledSession `json:"sessions"`
}

// StudyPlan is a generated plan: its input parameters, the day-by-day
// schedule sorted ascending by date, and the total planned study hours.
// Plans are read-only after generation; editing means regenerating.
type StudyPlan struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	CreatedAt  time.Time         `json:"createdAt"`
	Parameters GenerationRequest `json:"parameters"`
	Schedule   []DaySchedule     `json:"schedule"`
	TotalHours float64           `json:"totalHours"`
}

// Overflow counts the units left unscheduled after the horizon is
// exhausted. Missing a first exposure is more severe than missing a
// review pass, which a later plan can recover.
type Overflow struct {
	NewUnits    int `json:"newUnits"`
	ReviewUnits int `json:"reviewUnits"`
}

// Total returns the combined overflow count.
func (o Overflow) Total() int {
	return o.NewUnits + o.ReviewUnits
}

// midnight normalizes a time to local midnight.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
