package planner

import (
	"testing"
	"time"
)

func TestExpandTopics_OneNewPlusReviewsPerTopic(t *testing.T) {
	start := date(2025, time.September, 1)
	subjects := []Subject{
		{Name: "Math", Priority: PriorityHigh},
		{Name: "Science", Priority: PriorityMedium},
	}
	topics := map[string][]string{
		"Math":    {"Algebra", "Geometry"},
		"Science": {"Cells"},
	}

	units := ExpandTopics(subjects, topics, DefaultReviewOffsets, start)

	if got, want := len(units), 3*(1+len(DefaultReviewOffsets)); got != want {
		t.Fatalf("len(units) = %d, want %d", got, want)
	}

	// Expansion order: subjects in order, topics in insertion order,
	// new before its reviews.
	first := units[0]
	if first.Subject != "Math" || first.Topic != "Algebra" || first.Kind != KindNew {
		t.Errorf("units[0] = %s/%s %s, want Math/Algebra new", first.Subject, first.Topic, first.Kind)
	}
	if !first.DueDate.Equal(start) {
		t.Errorf("new unit due %v, want %v", first.DueDate, start)
	}

	for i, offset := range DefaultReviewOffsets {
		u := units[1+i]
		if u.Kind != KindReview || u.ReviewOffsetDays != offset {
			t.Errorf("units[%d] = %s offset %d, want review offset %d", 1+i, u.Kind, u.ReviewOffsetDays, offset)
		}
		want := start.AddDate(0, 0, offset)
		if !u.DueDate.Equal(want) {
			t.Errorf("review due %v, want %v", u.DueDate, want)
		}
	}

	last := units[len(units)-1]
	if last.Subject != "Science" || last.Topic != "Cells" {
		t.Errorf("last unit = %s/%s, want Science/Cells", last.Subject, last.Topic)
	}
}

func TestExpandTopics_CustomOffsets(t *testing.T) {
	start := date(2025, time.September, 1)
	subjects := []Subject{{Name: "Math", Priority: PriorityHigh}}
	topics := map[string][]string{"Math": {"Algebra"}}

	units := ExpandTopics(subjects, topics, []int{2, 5}, start)

	if len(units) != 3 {
		t.Fatalf("len(units) = %d, want 3", len(units))
	}
	if !units[1].DueDate.Equal(start.AddDate(0, 0, 2)) {
		t.Errorf("first review due %v, want start+2d", units[1].DueDate)
	}
	if !units[2].DueDate.Equal(start.AddDate(0, 0, 5)) {
		t.Errorf("second review due %v, want start+5d", units[2].DueDate)
	}
}

func TestExpandTopics_EmptyInput(t *testing.T) {
	units := ExpandTopics(nil, nil, DefaultReviewOffsets, date(2025, time.September, 1))
	if len(units) != 0 {
		t.Errorf("len(units) = %d, want 0", len(units))
	}
}
