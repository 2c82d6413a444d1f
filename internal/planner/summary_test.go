package planner

import (
	"testing"
	"time"
)

func sampleSchedule() []DaySchedule {
	day1 := date(2025, time.September, 1)
	day2 := date(2025, time.September, 2)
	return []DaySchedule{
		{
			Date:    day1,
			Weekday: "Monday",
			Sessions: []ScheduledSession{
				{Date: day1, StartTime: 960, DurationMinutes: 45, Subject: "Math", Topic: "Algebra", Kind: KindNew},
				{Date: day1, StartTime: 1015, DurationMinutes: 45, Subject: "Science", Topic: "Cells", Kind: KindNew},
			},
		},
		{
			Date:    day2,
			Weekday: "Tuesday",
			Sessions: []ScheduledSession{
				{Date: day2, StartTime: 960, DurationMinutes: 45, Subject: "Math", Topic: "Algebra", Kind: KindReview},
			},
		},
	}
}

func TestSummarizePlan_EmptySchedule(t *testing.T) {
	got := SummarizePlan(&StudyPlan{}, NewCompletionSet())
	if got.Percent != 0 || got.Total != 0 {
		t.Errorf("summary = %+v, want zero summary", got)
	}
}

func TestSummarizeDay_Percentage(t *testing.T) {
	schedule := sampleSchedule()
	done := NewCompletionSet(schedule[0].Sessions[0].TaskKey())

	got := SummarizeDay(schedule[0], done)
	if got.Completed != 1 || got.Total != 2 || got.Percent != 50 {
		t.Errorf("summary = %+v, want 1/2 = 50%%", got)
	}
}

func TestSummarizePlan_AllComplete(t *testing.T) {
	schedule := sampleSchedule()
	done := NewCompletionSet()
	for _, day := range schedule {
		for _, s := range day.Sessions {
			done.Add(s.TaskKey())
		}
	}

	got := SummarizePlan(&StudyPlan{Schedule: schedule}, done)
	if got.Percent != 100 {
		t.Errorf("percent = %d, want 100", got.Percent)
	}
}

func TestCompletionSet_IdempotentMarking(t *testing.T) {
	done := NewCompletionSet()
	key := TaskKey(date(2025, time.September, 1), "Math", "Algebra")

	done.Add(key)
	done.Add(key)
	if len(done) != 1 {
		t.Errorf("len(done) = %d after double add, want 1", len(done))
	}

	done.Remove(key)
	if done.Has(key) {
		t.Error("key still present after remove")
	}
	done.Remove(key) // removing again is a no-op
}

func TestWeekGroups_SplitsOnWeekBoundary(t *testing.T) {
	// Two scheduled days a week apart, with the empty days between them
	// absent from the schedule. They belong to different weeks even
	// though the second group does not begin on a Monday.
	day1 := date(2025, time.September, 4) // Thursday
	day2 := date(2025, time.September, 9) // Tuesday next week
	plan := &StudyPlan{Schedule: []DaySchedule{
		{Date: day1, Weekday: "Thursday"},
		{Date: day2, Weekday: "Tuesday"},
	}}

	groups := WeekGroups(plan)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if !groups[0][0].Date.Equal(day1) || !groups[1][0].Date.Equal(day2) {
		t.Error("days grouped into wrong weeks")
	}
}

func TestWeekGroups_NilPlan(t *testing.T) {
	if got := WeekGroups(nil); got != nil {
		t.Errorf("WeekGroups(nil) = %v, want nil", got)
	}
}
