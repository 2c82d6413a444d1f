package planner

import "time"

// DefaultReviewOffsets is the spaced repetition schedule: review passes
// 1, 3 and 7 days after first exposure.
var DefaultReviewOffsets = []int{1, 3, 7}

// GenerationRequest is the validated input to plan generation. Subjects
// and their topic lists keep insertion order; that order is the final
// tiebreaker when the assembler picks candidates.
type GenerationRequest struct {
	Subjects       []Subject           `json:"subjects"`
	Topics         map[string][]string `json:"topics"`
	AvailableSlots []TimeWindow        `json:"availableSlots"`
	Session        SessionParameters   `json:"session"`

	// StartDate is normalized to midnight. Zero means "today", supplied
	// by the caller so generation itself stays deterministic.
	StartDate time.Time `json:"startDate"`

	// ExamDate, when set, derives the horizon; otherwise HorizonDays
	// (or the default) applies.
	ExamDate    time.Time `json:"examDate,omitempty"`
	HorizonDays int       `json:"horizonDays,omitempty"`

	// ReviewOffsets overrides DefaultReviewOffsets when non-empty.
	ReviewOffsets []int `json:"reviewOffsets,omitempty"`
}

// Validate checks the request and returns a field-attributable
// ValidationError for the first problem found. Generation must not run
// on an invalid request.
func (r *GenerationRequest) Validate() error {
	if len(r.Subjects) == 0 {
		return &ValidationError{Field: "subjects", Message: "select at least one subject to study"}
	}

	seen := make(map[string]bool, len(r.Subjects))
	for _, s := range r.Subjects {
		if s.Name == "" {
			return &ValidationError{Field: "subjects", Message: "subject name must not be empty"}
		}
		if seen[s.Name] {
			return &ValidationError{Field: "subjects", Message: "duplicate subject " + s.Name}
		}
		seen[s.Name] = true
	}

	topicCount := 0
	for subject, topics := range r.Topics {
		if !seen[subject] {
			return &ValidationError{Field: "topics", Message: "topics listed for unknown subject " + subject}
		}
		topicCount += len(topics)
	}
	if topicCount == 0 {
		return &ValidationError{Field: "topics", Message: "add at least one topic"}
	}

	if len(r.AvailableSlots) == 0 {
		return &ValidationError{Field: "availableSlots", Message: "add your available study times"}
	}
	for _, w := range r.AvailableSlots {
		if w.End <= w.Start {
			return &ValidationError{Field: "availableSlots", Message: "time window end must be after its start"}
		}
	}

	if r.Session.SessionLengthMinutes <= 0 {
		return &ValidationError{Field: "sessionLengthMinutes", Message: "session length must be positive"}
	}
	if r.Session.BreakMinutes < 0 {
		return &ValidationError{Field: "breakMinutes", Message: "break length must not be negative"}
	}
	if r.HorizonDays < 0 {
		return &ValidationError{Field: "horizonDays", Message: "horizon must not be negative"}
	}

	return nil
}

// TopicsFor returns the subject's topic list in insertion order.
func (r *GenerationRequest) TopicsFor(subject string) []string {
	return r.Topics[subject]
}

// reviewOffsets returns the effective spaced repetition offsets.
func (r *GenerationRequest) reviewOffsets() []int {
	if len(r.ReviewOffsets) > 0 {
		return r.ReviewOffsets
	}
	return DefaultReviewOffsets
}
