package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/padhai/internal/planner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPlan(name string) *planner.StudyPlan {
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return &planner.StudyPlan{
		Name:      name,
		CreatedAt: date,
		Parameters: planner.GenerationRequest{
			Subjects: []planner.Subject{{Name: "Math", Priority: planner.PriorityHigh}},
			Topics:   map[string][]string{"Math": {"Algebra"}},
			AvailableSlots: []planner.TimeWindow{
				{Day: time.Monday, Start: 16 * 60, End: 17*60 + 30},
			},
			Session: planner.SessionParameters{
				SessionLengthMinutes: 45,
				BreakMinutes:         10,
				StudyMode:            planner.ModeRegular,
			},
			StartDate: date,
		},
		Schedule: []planner.DaySchedule{
			{
				Date:    date,
				Weekday: "Monday",
				Sessions: []planner.ScheduledSession{
					{
						Date:            date,
						StartTime:       16 * 60,
						DurationMinutes: 45,
						Subject:         "Math",
						Topic:           "Algebra",
						Kind:            planner.KindNew,
					},
				},
			},
		},
		TotalHours: 0.75,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlanSaveAssignsIdentity(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plan := testPlan("Study Plan 2025-09-01")
	plan.CreatedAt = time.Time{}
	if err := repo.Save(ctx, plan); err != nil {
		t.Fatalf("save: %v", err)
	}
	if plan.ID == "" {
		t.Error("expected ID to be assigned on save")
	}
	if plan.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned on save")
	}
}

func TestPlanSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plan := testPlan("Study Plan 2025-09-01")
	if err := repo.Save(ctx, plan); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, plan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != plan.Name {
		t.Errorf("name = %q, want %q", got.Name, plan.Name)
	}
	if got.TotalHours != 0.75 {
		t.Errorf("total hours = %v, want 0.75", got.TotalHours)
	}
	if len(got.Schedule) != 1 || len(got.Schedule[0].Sessions) != 1 {
		t.Fatalf("schedule shape = %d days, want 1 day with 1 session", len(got.Schedule))
	}
	sess := got.Schedule[0].Sessions[0]
	if sess.Subject != "Math" || sess.Topic != "Algebra" || sess.Kind != planner.KindNew {
		t.Errorf("session = %+v, want Math/Algebra/new", sess)
	}
	if sess.StartTime.String() != "16:00" {
		t.Errorf("start time = %s, want 16:00", sess.StartTime)
	}
}

func TestPlanSaveFlipsActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	first := testPlan("first")
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := testPlan("second")
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	active, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active == nil {
		t.Fatal("expected an active plan")
	}
	if active.ID != second.ID {
		t.Errorf("active = %s, want %s", active.ID, second.ID)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("listed %d plans, want 2", len(summaries))
	}
	activeCount := 0
	for _, sum := range summaries {
		if sum.Active {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Errorf("active plans = %d, want exactly 1", activeCount)
	}
}

func TestPlanActiveEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	active, err := s.PlanRepo().Active(ctx)
	if err != nil {
		t.Fatalf("active (empty): %v", err)
	}
	if active != nil {
		t.Fatal("expected nil active plan when none exist")
	}
}

func TestProgressMarkIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	key := "2025-09-01-Math-Algebra"
	if err := repo.Mark(ctx, "plan-1", key); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.Mark(ctx, "plan-1", key); err != nil {
		t.Fatalf("re-mark: %v", err)
	}

	set, err := repo.CompletedKeys(ctx, "plan-1")
	if err != nil {
		t.Fatalf("completed keys: %v", err)
	}
	if len(set.Keys()) != 1 {
		t.Errorf("completed = %d keys, want 1", len(set.Keys()))
	}
	if !set.Has(key) {
		t.Errorf("expected %s to be marked", key)
	}
}

func TestProgressUnmark(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	key := "2025-09-01-Math-Algebra"
	if err := repo.Mark(ctx, "plan-1", key); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.Unmark(ctx, "plan-1", key); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	// Unmarking again is a no-op.
	if err := repo.Unmark(ctx, "plan-1", key); err != nil {
		t.Fatalf("re-unmark: %v", err)
	}

	set, err := repo.CompletedKeys(ctx, "plan-1")
	if err != nil {
		t.Fatalf("completed keys: %v", err)
	}
	if set.Has(key) {
		t.Errorf("expected %s to be unmarked", key)
	}
}

func TestProgressScopedToPlan(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	key := "2025-09-01-Math-Algebra"
	if err := repo.Mark(ctx, "plan-1", key); err != nil {
		t.Fatalf("mark: %v", err)
	}

	set, err := repo.CompletedKeys(ctx, "plan-2")
	if err != nil {
		t.Fatalf("completed keys: %v", err)
	}
	if set.Has(key) {
		t.Error("mark on plan-1 leaked into plan-2")
	}
}

func TestParamsSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ParamsRepo()
	ctx := context.Background()

	// Nothing saved yet.
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil parameters when none saved")
	}

	req := testPlan("p").Parameters
	req.HorizonDays = 14
	if err := repo.Save(ctx, &req); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved parameters")
	}
	if got.HorizonDays != 14 {
		t.Errorf("horizon = %d, want 14", got.HorizonDays)
	}
	if len(got.Subjects) != 1 || got.Subjects[0].Name != "Math" {
		t.Errorf("subjects = %+v, want [Math]", got.Subjects)
	}
	if len(got.AvailableSlots) != 1 || got.AvailableSlots[0].Start.String() != "16:00" {
		t.Errorf("slots = %+v, want one starting 16:00", got.AvailableSlots)
	}

	// Saving again replaces, not appends.
	req.HorizonDays = 28
	if err := repo.Save(ctx, &req); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("re-load: %v", err)
	}
	if got.HorizonDays != 28 {
		t.Errorf("horizon after re-save = %d, want 28", got.HorizonDays)
	}
	count, err := s.Client().ParameterSet.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("parameter rows = %d, want 1", count)
	}
}

func TestDoubtAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.DoubtRepo()
	ctx := context.Background()

	for i, q := range []string{"first", "second", "third"} {
		err := repo.Append(ctx, DoubtRecord{
			Question: q,
			Language: "english",
			Solution: map[string]any{"finalAnswer": q},
			Model:    "mock",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("recent = %d records, want 2", len(recs))
	}
	if recs[0].Question != "third" || recs[1].Question != "second" {
		t.Errorf("order = %q, %q, want third, second", recs[0].Question, recs[1].Question)
	}
	if recs[0].Solution["finalAnswer"] != "third" {
		t.Errorf("solution = %v, want finalAnswer third", recs[0].Solution)
	}
}

func TestRequestLogAppendAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.RequestLogRepo()
	ctx := context.Background()

	// Empty log totals to zero.
	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals (empty): %v", err)
	}
	if totals.Requests != 0 || totals.InputTokens != 0 || totals.OutputTokens != 0 {
		t.Errorf("empty totals = %+v, want zeros", totals)
	}

	entries := []RequestLogEntry{
		{Provider: "anthropic", Model: "m", Purpose: "tutor", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "ocr", InputTokens: 30, OutputTokens: 10, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "doubt-solver", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range entries {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	totals, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Requests != 3 {
		t.Errorf("requests = %d, want 3", totals.Requests)
	}
	if totals.InputTokens != 130 {
		t.Errorf("input tokens = %d, want 130", totals.InputTokens)
	}
	if totals.OutputTokens != 60 {
		t.Errorf("output tokens = %d, want 60", totals.OutputTokens)
	}
}

func TestSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.DoubtRepo().Append(ctx, DoubtRecord{
		Question: "q",
		Solution: map[string]any{},
	})
	if err != nil {
		t.Fatalf("append doubt: %v", err)
	}
	err = s.RequestLogRepo().Append(ctx, RequestLogEntry{
		Provider: "mock", Model: "m", Purpose: "tutor", Success: true,
	})
	if err != nil {
		t.Fatalf("append log: %v", err)
	}

	recs, err := s.DoubtRepo().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatal("expected one doubt")
	}
	if recs[0].Sequence != 1 {
		t.Errorf("doubt sequence = %d, want 1", recs[0].Sequence)
	}

	row, err := s.Client().LLMRequestLog.Query().First(ctx)
	if err != nil {
		t.Fatalf("query log: %v", err)
	}
	if row.Sequence != 2 {
		t.Errorf("log sequence = %d, want 2", row.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}
