package planner

import (
	"math"
	"time"
)

// CompletionSet is the externally-tracked set of completed task keys.
// Completion lives outside the plan so the generated schedule stays
// reproducible and exportable independent of progress. Marking is
// idempotent: adding the same key twice changes nothing.
type CompletionSet map[string]struct{}

// NewCompletionSet builds a set from the given keys.
func NewCompletionSet(keys ...string) CompletionSet {
	set := make(CompletionSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Add marks a task key complete.
func (c CompletionSet) Add(key string) { c[key] = struct{}{} }

// Remove unmarks a task key.
func (c CompletionSet) Remove(key string) { delete(c, key) }

// Has reports whether the key is marked complete.
func (c CompletionSet) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Keys returns the completed keys in unspecified order.
func (c CompletionSet) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// Summary is a completed/total pair with its rounded percentage.
type Summary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// summarize counts completions over a set of days. A zero total yields
// 0%, not a division error.
func summarize(days []DaySchedule, done CompletionSet) Summary {
	var s Summary
	for _, day := range days {
		for _, session := range day.Sessions {
			s.Total++
			if done.Has(session.TaskKey()) {
				s.Completed++
			}
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// SummarizeDay reports completion for a single day.
func SummarizeDay(day DaySchedule, done CompletionSet) Summary {
	return summarize([]DaySchedule{day}, done)
}

// SummarizeWeek reports completion for a group of days.
func SummarizeWeek(days []DaySchedule, done CompletionSet) Summary {
	return summarize(days, done)
}

// SummarizePlan reports completion across the whole plan.
func SummarizePlan(plan *StudyPlan, done CompletionSet) Summary {
	if plan == nil {
		return Summary{}
	}
	return summarize(plan.Schedule, done)
}

// WeekGroups splits a plan's schedule into Monday-start weeks for
// display, mirroring the calendar grouping. The first group is partial
// when the plan does not start on a Monday.
func WeekGroups(plan *StudyPlan) [][]DaySchedule {
	if plan == nil || len(plan.Schedule) == 0 {
		return nil
	}

	var groups [][]DaySchedule
	var current []DaySchedule
	var currentWeek time.Time
	for _, day := range plan.Schedule {
		// Days with no sessions are absent from the schedule, so group
		// by each day's Monday rather than watching for Mondays.
		week := weekStart(day.Date)
		if len(current) > 0 && !week.Equal(currentWeek) {
			groups = append(groups, current)
			current = nil
		}
		currentWeek = week
		current = append(current, day)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// weekStart returns the Monday on or before the date.
func weekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return midnight(date).AddDate(0, 0, -offset)
}
