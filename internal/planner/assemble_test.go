package planner

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// monday is a fixed Monday used as "today" across assembler tests.
var monday = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

func twoSubjectRequest(t *testing.T) GenerationRequest {
	t.Helper()
	return GenerationRequest{
		Subjects: []Subject{
			{Name: "Math", Priority: PriorityHigh},
			{Name: "Science", Priority: PriorityMedium},
		},
		Topics: map[string][]string{
			"Math":    {"Algebra"},
			"Science": {"Cells"},
		},
		AvailableSlots: []TimeWindow{
			{Day: time.Monday, Start: mustClock(t, "16:00"), End: mustClock(t, "17:30")},
		},
		Session: SessionParameters{SessionLengthMinutes: 45, BreakMinutes: 10, StudyMode: ModeRegular},
	}
}

// ampleRequest has far more capacity than units, so nothing overflows.
func ampleRequest(t *testing.T) GenerationRequest {
	t.Helper()
	req := twoSubjectRequest(t)
	req.Topics = map[string][]string{
		"Math":    {"Algebra", "Geometry"},
		"Science": {"Cells", "Plants"},
	}
	req.AvailableSlots = nil
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		req.AvailableSlots = append(req.AvailableSlots, TimeWindow{
			Day: wd, Start: mustClock(t, "09:00"), End: mustClock(t, "13:00"),
		})
	}
	return req
}

func TestGenerate_SingleSlotGoesToHigherPriority(t *testing.T) {
	// Monday 16:00-17:30 fits exactly one 45-minute session with its
	// reserved break: 90/(45+10) = 1. The one slot must take the
	// higher-priority subject's first exposure.
	plan, _, err := Generate(twoSubjectRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(plan.Schedule) == 0 {
		t.Fatal("expected a scheduled day")
	}
	day := plan.Schedule[0]
	if !day.Date.Equal(monday) {
		t.Fatalf("first day = %v, want %v", day.Date, monday)
	}
	if len(day.Sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(day.Sessions))
	}

	s := day.Sessions[0]
	if s.Subject != "Math" || s.Topic != "Algebra" || s.Kind != KindNew {
		t.Errorf("session = %s/%s %s, want Math/Algebra new", s.Subject, s.Topic, s.Kind)
	}
	if s.StartTime.String() != "16:00" {
		t.Errorf("start = %s, want 16:00", s.StartTime)
	}
}

func TestGenerate_CoverageWhenCapacitySuffices(t *testing.T) {
	plan, overflow, err := Generate(ampleRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if overflow.Total() != 0 {
		t.Fatalf("overflow = %+v, want none", overflow)
	}

	type counts struct{ newCount, reviewCount int }
	seen := make(map[string]*counts)
	for _, day := range plan.Schedule {
		for _, s := range day.Sessions {
			key := s.Subject + "/" + s.Topic
			if seen[key] == nil {
				seen[key] = &counts{}
			}
			if s.Kind == KindNew {
				seen[key].newCount++
			} else {
				seen[key].reviewCount++
			}
		}
	}

	if len(seen) != 4 {
		t.Fatalf("topics covered = %d, want 4", len(seen))
	}
	for key, c := range seen {
		if c.newCount != 1 {
			t.Errorf("%s: new sessions = %d, want exactly 1", key, c.newCount)
		}
		if c.reviewCount != len(DefaultReviewOffsets) {
			t.Errorf("%s: review sessions = %d, want %d", key, c.reviewCount, len(DefaultReviewOffsets))
		}
	}
}

func TestGenerate_NoOverlappingSessions(t *testing.T) {
	plan, _, err := Generate(ampleRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, day := range plan.Schedule {
		for i := 1; i < len(day.Sessions); i++ {
			prev, cur := day.Sessions[i-1], day.Sessions[i]
			if cur.StartTime < prev.StartTime.Add(prev.DurationMinutes) {
				t.Errorf("%s: session at %s overlaps previous at %s",
					day.Date.Format("2006-01-02"), cur.StartTime, prev.StartTime)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, _, err := Generate(ampleRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, _, err := Generate(ampleRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	a, err := json.Marshal(first.Schedule)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second.Schedule)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Error("identical inputs produced different schedules")
	}
}

func TestGenerate_OverflowReported(t *testing.T) {
	// One slot per week against eight units: most units overflow, and
	// generation still succeeds with a partial schedule.
	req := twoSubjectRequest(t)
	plan, overflow, err := Generate(req, monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	scheduled := 0
	for _, day := range plan.Schedule {
		scheduled += len(day.Sessions)
	}
	// 14-day horizon holds two Mondays with one slot each.
	if scheduled != 2 {
		t.Fatalf("scheduled sessions = %d, want 2", scheduled)
	}
	if overflow.Total() != 8-scheduled {
		t.Errorf("overflow total = %d, want %d", overflow.Total(), 8-scheduled)
	}
	// Both first exposures fit (they are due earliest), so the overflow
	// is entirely review passes.
	if overflow.NewUnits != 0 {
		t.Errorf("new overflow = %d, want 0", overflow.NewUnits)
	}
	if overflow.ReviewUnits != 6 {
		t.Errorf("review overflow = %d, want 6", overflow.ReviewUnits)
	}
}

func TestGenerate_OverdueBeforeFuture(t *testing.T) {
	// No Tuesday..Sunday windows, so reviews due midweek are overdue by
	// the second Monday and must be scheduled before later-due work.
	req := twoSubjectRequest(t)
	req.Topics = map[string][]string{"Math": {"Algebra"}}
	req.Subjects = req.Subjects[:1]

	plan, _, err := Generate(req, monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(plan.Schedule) != 2 {
		t.Fatalf("scheduled days = %d, want 2", len(plan.Schedule))
	}

	second := plan.Schedule[1].Sessions[0]
	if second.Kind != KindReview || second.Subject != "Math" || second.Topic != "Algebra" {
		t.Errorf("second Monday = %s/%s %s, want overdue Math/Algebra review",
			second.Subject, second.Topic, second.Kind)
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationRequest)
		field  string
	}{
		{"no subjects", func(r *GenerationRequest) { r.Subjects = nil }, "subjects"},
		{"no topics", func(r *GenerationRequest) { r.Topics = nil }, "topics"},
		{"no time windows", func(r *GenerationRequest) { r.AvailableSlots = nil }, "availableSlots"},
		{"zero session length", func(r *GenerationRequest) { r.Session.SessionLengthMinutes = 0 }, "sessionLengthMinutes"},
		{"negative break", func(r *GenerationRequest) { r.Session.BreakMinutes = -5 }, "breakMinutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := twoSubjectRequest(t)
			tt.mutate(&req)

			_, _, err := Generate(req, monday)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestGenerate_ExamDateInPast(t *testing.T) {
	req := twoSubjectRequest(t)
	req.ExamDate = monday.AddDate(0, 0, -1)

	_, _, err := Generate(req, monday)
	var rangeErr *InvalidDateRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want InvalidDateRangeError", err)
	}
}

func TestGenerate_ExamDateSetsHorizon(t *testing.T) {
	req := ampleRequest(t)
	req.ExamDate = monday.AddDate(0, 0, 2)

	plan, _, err := Generate(req, monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	last := plan.Schedule[len(plan.Schedule)-1].Date
	// Horizon runs through the exam date inclusive.
	if limit := monday.AddDate(0, 0, 2); last.After(limit) {
		t.Errorf("last scheduled day %v past horizon %v", last, limit)
	}
}

func TestGenerate_TotalHours(t *testing.T) {
	plan, _, err := Generate(twoSubjectRequest(t), monday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Two 45-minute sessions.
	if want := 1.5; plan.TotalHours != want {
		t.Errorf("TotalHours = %v, want %v", plan.TotalHours, want)
	}
}
