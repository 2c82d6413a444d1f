package planner

import (
	"errors"
	"testing"
	"time"
)

func TestValidate_DuplicateSubject(t *testing.T) {
	req := twoSubjectRequest(t)
	req.Subjects = append(req.Subjects, Subject{Name: "Math", Priority: PriorityLow})

	var vErr *ValidationError
	if err := req.Validate(); !errors.As(err, &vErr) || vErr.Field != "subjects" {
		t.Fatalf("error = %v, want subjects ValidationError", err)
	}
}

func TestValidate_TopicsForUnknownSubject(t *testing.T) {
	req := twoSubjectRequest(t)
	req.Topics["History"] = []string{"Mughal Empire"}

	var vErr *ValidationError
	if err := req.Validate(); !errors.As(err, &vErr) || vErr.Field != "topics" {
		t.Fatalf("error = %v, want topics ValidationError", err)
	}
}

func TestValidate_WindowEndBeforeStart(t *testing.T) {
	req := twoSubjectRequest(t)
	req.AvailableSlots = []TimeWindow{
		{Day: time.Monday, Start: mustClock(t, "17:00"), End: mustClock(t, "16:00")},
	}

	var vErr *ValidationError
	if err := req.Validate(); !errors.As(err, &vErr) || vErr.Field != "availableSlots" {
		t.Fatalf("error = %v, want availableSlots ValidationError", err)
	}
}

func TestValidate_AcceptsWellFormedRequest(t *testing.T) {
	req := twoSubjectRequest(t)
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
