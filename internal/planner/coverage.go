package planner

import "time"

// ExpandTopics turns every (subject, topic) pair into its schedulable
// units: one first-exposure unit due on the start date, then one review
// unit per offset. Units come out in expansion order (subjects in the
// order given, topics in insertion order, new before reviews), which the
// assembler relies on for deterministic tiebreaking.
//
// Fixed offsets rather than performance-adaptive spacing keep the
// scheduler deterministic; empty input yields an empty slice.
func ExpandTopics(subjects []Subject, topics map[string][]string, offsets []int, start time.Time) []*ScheduleUnit {
	start = midnight(start)

	var units []*ScheduleUnit
	for _, subject := range subjects {
		for _, topic := range topics[subject.Name] {
			units = append(units, &ScheduleUnit{
				Subject: subject.Name,
				Topic:   topic,
				DueDate: start,
				Kind:    KindNew,
				index:   len(units),
			})
			for _, offset := range offsets {
				units = append(units, &ScheduleUnit{
					Subject:          subject.Name,
					Topic:            topic,
					DueDate:          start.AddDate(0, 0, offset),
					Kind:             KindReview,
					ReviewOffsetDays: offset,
					index:            len(units),
				})
			}
		}
	}
	return units
}
