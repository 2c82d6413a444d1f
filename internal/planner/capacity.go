package planner

import "sort"

// DaySlots computes the bookable slots for one day's windows. Each
// window fits floor(windowMinutes / (session + break)) sessions, placed
// back-to-back from the window's start with the break reserved between
// sessions. The break is not appended after a window's final session, so
// no slot ever extends past its window's end.
func DaySlots(windows []TimeWindow, sessionMinutes, breakMinutes int) []Slot {
	if sessionMinutes <= 0 {
		return nil
	}

	ordered := make([]TimeWindow, len(windows))
	copy(ordered, windows)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	stride := sessionMinutes + breakMinutes

	var slots []Slot
	for _, w := range ordered {
		count := w.DurationMinutes() / stride
		for i := 0; i < count; i++ {
			slots = append(slots, Slot{
				Start:           w.Start.Add(i * stride),
				DurationMinutes: sessionMinutes,
			})
		}
	}
	return slots
}

// windowsByWeekday indexes the availability windows by weekday for the
// assembler's per-day lookups.
func windowsByWeekday(windows []TimeWindow) map[int][]TimeWindow {
	byDay := make(map[int][]TimeWindow)
	for _, w := range windows {
		byDay[int(w.Day)] = append(byDay[int(w.Day)], w)
	}
	return byDay
}
