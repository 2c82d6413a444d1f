package planner

import "math"

// Allocation is the advisory per-subject share of the total time budget.
// It informs how review passes are prioritized when slots are scarce;
// first-exposure units are always scheduled regardless of allocation.
type Allocation struct {
	Subject           string   `json:"subject"`
	Priority          Priority `json:"priority"`
	MinutesAllocated  int      `json:"minutesAllocated"`
	SessionsAllocated int      `json:"sessionsAllocated"`
}

// DistributeLoad splits totalAvailableMinutes across the subjects by
// priority weight, with a fairness floor so low-priority subjects keep
// meaningful coverage on short horizons: each subject gets at least
// MinShare of its fair (equal) share, and otherwise its proportional
// share of the total. Returns allocations in subject order.
func DistributeLoad(subjects []Subject, totalAvailableMinutes, sessionMinutes int) []Allocation {
	if len(subjects) == 0 {
		return nil
	}

	totalWeight := 0
	for _, s := range subjects {
		totalWeight += s.Priority.Weight()
	}

	fairShare := float64(totalAvailableMinutes) / float64(len(subjects))

	allocations := make([]Allocation, 0, len(subjects))
	for _, s := range subjects {
		var minutes float64
		if totalWeight == 0 {
			// Unreachable while every priority carries weight, kept so a
			// zero-weight priority added later cannot divide by zero.
			minutes = fairShare
		} else {
			proportional := float64(s.Priority.Weight()) / float64(totalWeight) * float64(totalAvailableMinutes)
			floor := fairShare * s.Priority.MinShare()
			minutes = math.Max(floor, proportional)
		}

		sessions := 0
		if sessionMinutes > 0 {
			sessions = int(math.Ceil(minutes / float64(sessionMinutes)))
		}

		allocations = append(allocations, Allocation{
			Subject:           s.Name,
			Priority:          s.Priority,
			MinutesAllocated:  int(math.Round(minutes)),
			SessionsAllocated: sessions,
		})
	}
	return allocations
}
