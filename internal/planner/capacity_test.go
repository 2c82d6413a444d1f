package planner

import (
	"testing"
	"time"
)

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("parse clock %q: %v", s, err)
	}
	return c
}

func TestDaySlots_FloorOfWindowOverStride(t *testing.T) {
	tests := []struct {
		name    string
		window  string
		end     string
		session int
		brk     int
		want    int
	}{
		{"ninety minutes fits one", "16:00", "17:30", 45, 10, 1},
		{"two hours fits two", "16:00", "18:00", 45, 10, 2},
		{"exact multiple", "09:00", "10:50", 45, 10, 2},
		{"window shorter than session", "16:00", "16:30", 45, 10, 0},
		{"zero break", "09:00", "10:30", 45, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := TimeWindow{Day: time.Monday, Start: mustClock(t, tt.window), End: mustClock(t, tt.end)}
			slots := DaySlots([]TimeWindow{w}, tt.session, tt.brk)
			if len(slots) != tt.want {
				t.Errorf("len(slots) = %d, want %d", len(slots), tt.want)
			}
		})
	}
}

func TestDaySlots_BackToBackWithReservedBreaks(t *testing.T) {
	w := TimeWindow{Day: time.Monday, Start: mustClock(t, "16:00"), End: mustClock(t, "18:00")}
	slots := DaySlots([]TimeWindow{w}, 45, 10)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if got := slots[0].Start.String(); got != "16:00" {
		t.Errorf("slots[0].Start = %s, want 16:00", got)
	}
	if got := slots[1].Start.String(); got != "16:55" {
		t.Errorf("slots[1].Start = %s, want 16:55", got)
	}
}

func TestDaySlots_NeverExtendsPastWindowEnd(t *testing.T) {
	windows := []TimeWindow{
		{Day: time.Monday, Start: mustClock(t, "06:00"), End: mustClock(t, "07:45")},
		{Day: time.Monday, Start: mustClock(t, "18:15"), End: mustClock(t, "21:00")},
	}
	slots := DaySlots(windows, 40, 5)

	for _, slot := range slots {
		end := slot.Start.Add(slot.DurationMinutes)
		inside := false
		for _, w := range windows {
			if slot.Start >= w.Start && end <= w.End {
				inside = true
			}
		}
		if !inside {
			t.Errorf("slot %s+%dm escapes every window", slot.Start, slot.DurationMinutes)
		}
	}
}

func TestDaySlots_WindowsOrderedByStart(t *testing.T) {
	windows := []TimeWindow{
		{Day: time.Monday, Start: mustClock(t, "18:00"), End: mustClock(t, "19:00")},
		{Day: time.Monday, Start: mustClock(t, "07:00"), End: mustClock(t, "08:00")},
	}
	slots := DaySlots(windows, 45, 10)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if slots[0].Start > slots[1].Start {
		t.Errorf("slots not ordered: %s before %s", slots[0].Start, slots[1].Start)
	}
}
