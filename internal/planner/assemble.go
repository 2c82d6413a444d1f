package planner

import (
	"sort"
	"time"
)

// Generate builds a study plan from the request. The caller supplies
// "now" so generation is a pure function of its inputs: identical
// requests with an identical now produce identical schedules.
//
// Scheduling pressure is not an error. When the horizon runs out before
// every unit is placed, the partial plan is returned together with the
// overflow counts and the caller decides how loudly to warn. ID and
// CreatedAt are left for the caller to assign, outside the deterministic
// computation.
func Generate(req GenerationRequest, now time.Time) (*StudyPlan, Overflow, error) {
	if err := req.Validate(); err != nil {
		return nil, Overflow{}, err
	}

	start := req.StartDate
	if start.IsZero() {
		start = now
	}
	start = midnight(start)
	req.StartDate = start

	horizon := req.HorizonDays
	if !req.ExamDate.IsZero() {
		h, err := HorizonFromExamDate(start, req.ExamDate)
		if err != nil {
			return nil, Overflow{}, err
		}
		horizon = h
	} else if horizon == 0 {
		horizon = DefaultHorizonDays
	}

	cal := BuildCalendar(start, horizon)
	units := ExpandTopics(req.Subjects, req.Topics, req.reviewOffsets(), start)
	byDay := windowsByWeekday(req.AvailableSlots)

	allocations := DistributeLoad(req.Subjects, totalWindowMinutes(cal, byDay), req.Session.SessionLengthMinutes)
	budget := make(map[string]int, len(allocations))
	for _, a := range allocations {
		budget[a.Subject] = a.SessionsAllocated
	}

	weight := make(map[string]int, len(req.Subjects))
	for _, s := range req.Subjects {
		weight[s.Name] = s.Priority.Weight()
	}

	// Candidate order: earliest due first, then subject priority, then
	// expansion order (subject and topic insertion, new before reviews).
	// Consumption never reorders the remaining units, so one sort up
	// front is enough.
	sorted := make([]*ScheduleUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].DueDate.Equal(sorted[j].DueDate) {
			return sorted[i].DueDate.Before(sorted[j].DueDate)
		}
		wi, wj := weight[sorted[i].Subject], weight[sorted[j].Subject]
		if wi != wj {
			return wi > wj
		}
		return sorted[i].index < sorted[j].index
	})

	var schedule []DaySchedule
	for _, day := range cal.Days {
		slots := DaySlots(byDay[int(day.Weekday)], req.Session.SessionLengthMinutes, req.Session.BreakMinutes)

		var sessions []ScheduledSession
		for _, slot := range slots {
			unit := nextCandidate(sorted, day.Date, budget)
			if unit == nil {
				// Leave remaining slots unused rather than repeating
				// already-consumed units or pulling past the horizon.
				break
			}
			unit.consumed = true
			budget[unit.Subject]--

			sessions = append(sessions, ScheduledSession{
				Date:            day.Date,
				StartTime:       slot.Start,
				DurationMinutes: slot.DurationMinutes,
				Subject:         unit.Subject,
				Topic:           unit.Topic,
				Kind:            unit.Kind,
			})
		}

		if len(sessions) > 0 {
			schedule = append(schedule, DaySchedule{
				Date:     day.Date,
				Weekday:  day.Weekday.String(),
				Sessions: sessions,
			})
		}
	}

	var overflow Overflow
	for _, u := range sorted {
		if u.consumed {
			continue
		}
		if u.Kind == KindNew {
			overflow.NewUnits++
		} else {
			overflow.ReviewUnits++
		}
	}

	plan := &StudyPlan{
		Name:       "Study Plan " + start.Format("2006-01-02"),
		Parameters: req,
		Schedule:   schedule,
		TotalHours: totalHours(schedule),
	}
	return plan, overflow, nil
}

// nextCandidate returns the next pending unit due on or before the day.
// Overdue units keep their original due date for ordering, so the most
// overdue work is always pulled first. Within the earliest due date, a
// review unit whose subject has exhausted its advisory session budget
// yields to later candidates on that date; first exposures never yield.
func nextCandidate(sorted []*ScheduleUnit, day time.Time, budget map[string]int) *ScheduleUnit {
	var fallback *ScheduleUnit
	for _, u := range sorted {
		if u.consumed || u.DueDate.After(day) {
			continue
		}
		if fallback == nil {
			fallback = u
		}
		// The budget preference only reorders within a single due date;
		// it never lets a later-due unit jump an earlier-due one.
		if !u.DueDate.Equal(fallback.DueDate) {
			break
		}
		if u.Kind == KindNew || budget[u.Subject] > 0 {
			return u
		}
	}
	return fallback
}

// totalWindowMinutes sums the availability across the whole horizon.
func totalWindowMinutes(cal Calendar, byDay map[int][]TimeWindow) int {
	total := 0
	for _, day := range cal.Days {
		for _, w := range byDay[int(day.Weekday)] {
			total += w.DurationMinutes()
		}
	}
	return total
}

// totalHours sums the scheduled session durations in hours.
func totalHours(schedule []DaySchedule) float64 {
	minutes := 0
	for _, day := range schedule {
		for _, s := range day.Sessions {
			minutes += s.DurationMinutes
		}
	}
	return float64(minutes) / 60
}
