package planner

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The exported JSON document is the plan's durable representation, so a
// decode of an encode must reproduce the plan exactly.
func TestStudyPlan_JSONRoundTrip(t *testing.T) {
	plan, _, err := Generate(twoSubjectRequest(t), monday)
	require.NoError(t, err)

	plan.ID = "7b6de2f0-8b0f-4a3c-9a78-1f8f51f0a001"
	plan.CreatedAt = time.Date(2025, time.September, 1, 9, 30, 0, 0, time.UTC)

	encoded, err := json.Marshal(plan)
	require.NoError(t, err)

	var decoded StudyPlan
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, plan.ID, decoded.ID)
	require.True(t, plan.CreatedAt.Equal(decoded.CreatedAt))
	require.Equal(t, plan.TotalHours, decoded.TotalHours)
	require.Equal(t, plan.Parameters.Subjects, decoded.Parameters.Subjects)
	require.Equal(t, plan.Parameters.Topics, decoded.Parameters.Topics)
	require.Equal(t, plan.Parameters.AvailableSlots, decoded.Parameters.AvailableSlots)
	require.Len(t, decoded.Schedule, len(plan.Schedule))

	// Re-encoding the decoded plan is byte-identical, which covers the
	// session-level fields without tripping over time.Time internals.
	reencoded, err := json.Marshal(&decoded)
	require.NoError(t, err)
	require.Equal(t, string(encoded), string(reencoded))
}
