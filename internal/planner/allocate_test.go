package planner

import (
	"math"
	"testing"
)

func TestDistributeLoad_ProportionalByWeight(t *testing.T) {
	// Weights: high=3, high=3, medium=2.
	subjects := []Subject{
		{Name: "Math", Priority: PriorityHigh},
		{Name: "Science", Priority: PriorityHigh},
		{Name: "English", Priority: PriorityMedium},
	}

	allocations := DistributeLoad(subjects, 800, 40)

	if len(allocations) != 3 {
		t.Fatalf("len(allocations) = %d, want 3", len(allocations))
	}
	// 800 * 3/8 = 300, 800 * 2/8 = 200; floors (25%/20% of 266.7) are lower.
	if got := allocations[0].MinutesAllocated; got != 300 {
		t.Errorf("Math minutes = %d, want 300", got)
	}
	if got := allocations[2].MinutesAllocated; got != 200 {
		t.Errorf("English minutes = %d, want 200", got)
	}
	// ceil(300/40) = 8 sessions.
	if got := allocations[0].SessionsAllocated; got != 8 {
		t.Errorf("Math sessions = %d, want 8", got)
	}
}

func TestDistributeLoad_FairnessFloor(t *testing.T) {
	// One low-priority subject among many high-priority ones: pure
	// proportion would give it 1/16 of the budget, the floor guarantees
	// 15% of its fair share.
	subjects := []Subject{
		{Name: "A", Priority: PriorityHigh},
		{Name: "B", Priority: PriorityHigh},
		{Name: "C", Priority: PriorityHigh},
		{Name: "D", Priority: PriorityHigh},
		{Name: "E", Priority: PriorityHigh},
		{Name: "Low", Priority: PriorityLow},
	}

	total := 960
	allocations := DistributeLoad(subjects, total, 30)

	fairShare := float64(total) / float64(len(subjects))
	for _, a := range allocations {
		floor := fairShare * a.Priority.MinShare()
		if float64(a.MinutesAllocated) < math.Floor(floor) {
			t.Errorf("%s allocated %d minutes, below floor %.1f", a.Subject, a.MinutesAllocated, floor)
		}
	}
}

func TestDistributeLoad_SessionsRoundUp(t *testing.T) {
	subjects := []Subject{{Name: "Math", Priority: PriorityMedium}}
	allocations := DistributeLoad(subjects, 100, 45)

	// 100 minutes at 45 per session needs 3 sessions.
	if got := allocations[0].SessionsAllocated; got != 3 {
		t.Errorf("sessions = %d, want 3", got)
	}
}

func TestDistributeLoad_NoSubjects(t *testing.T) {
	if got := DistributeLoad(nil, 500, 45); got != nil {
		t.Errorf("allocations = %v, want nil", got)
	}
}
