package planner

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCalendar_DaysAreContiguous(t *testing.T) {
	start := date(2025, time.September, 1) // a Monday
	cal := BuildCalendar(start, 14)

	if len(cal.Days) != 14 {
		t.Fatalf("len(Days) = %d, want 14", len(cal.Days))
	}
	for i, d := range cal.Days {
		want := start.AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Errorf("Days[%d] = %v, want %v", i, d.Date, want)
		}
		if d.Weekday != want.Weekday() {
			t.Errorf("Days[%d].Weekday = %v, want %v", i, d.Weekday, want.Weekday())
		}
	}
}

func TestBuildCalendar_NormalizesStartToMidnight(t *testing.T) {
	start := time.Date(2025, time.September, 1, 17, 45, 12, 0, time.UTC)
	cal := BuildCalendar(start, 1)

	if got, want := cal.Days[0].Date, date(2025, time.September, 1); !got.Equal(want) {
		t.Errorf("Days[0] = %v, want %v", got, want)
	}
}

func TestBuildCalendar_MondayStartWeeks(t *testing.T) {
	// Starting Thursday: first week is partial (Thu-Sun), then full weeks.
	start := date(2025, time.September, 4)
	cal := BuildCalendar(start, 14)

	if len(cal.Weeks) != 3 {
		t.Fatalf("len(Weeks) = %d, want 3", len(cal.Weeks))
	}
	if len(cal.Weeks[0]) != 4 {
		t.Errorf("len(Weeks[0]) = %d, want 4 (Thu-Sun)", len(cal.Weeks[0]))
	}
	if len(cal.Weeks[1]) != 7 {
		t.Errorf("len(Weeks[1]) = %d, want 7", len(cal.Weeks[1]))
	}
	if cal.Weeks[1][0].Weekday != time.Monday {
		t.Errorf("Weeks[1] starts on %v, want Monday", cal.Weeks[1][0].Weekday)
	}
	if len(cal.Weeks[2]) != 3 {
		t.Errorf("len(Weeks[2]) = %d, want 3", len(cal.Weeks[2]))
	}
}

func TestHorizonFromExamDate(t *testing.T) {
	start := date(2025, time.September, 1)

	tests := []struct {
		name string
		exam time.Time
		want int
	}{
		{"same day", start, 1},
		{"one week out", date(2025, time.September, 7), 7},
		{"capped at sixteen weeks", date(2026, time.September, 1), MaxHorizonDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HorizonFromExamDate(start, tt.exam)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("horizon = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHorizonFromExamDate_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name        string
		start, exam time.Time
		want        int
	}{
		{
			// Mar 8 2026 is a 23-hour day; the lost hour must not
			// shrink the count.
			"spring forward",
			time.Date(2026, time.March, 2, 0, 0, 0, 0, loc),
			time.Date(2026, time.March, 11, 0, 0, 0, 0, loc),
			10,
		},
		{
			// Nov 1 2026 is a 25-hour day.
			"fall back",
			time.Date(2026, time.October, 26, 0, 0, 0, 0, loc),
			time.Date(2026, time.November, 4, 0, 0, 0, 0, loc),
			10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HorizonFromExamDate(tt.start, tt.exam)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("horizon = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHorizonFromExamDate_PastExamDate(t *testing.T) {
	start := date(2025, time.September, 1)
	_, err := HorizonFromExamDate(start, date(2025, time.August, 31))

	var rangeErr *InvalidDateRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want InvalidDateRangeError", err)
	}
}
