package planner

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"00:00", 0, false},
		{"16:00", 960, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"16:60", 0, true},
		{"afternoon", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClockTime_JSONRoundTrip(t *testing.T) {
	in := ClockTime(995) // 16:35

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"16:35"` {
		t.Errorf("marshal = %s, want \"16:35\"", b)
	}

	var out ClockTime
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %d, want %d", out, in)
	}
}

func TestTaskKey(t *testing.T) {
	key := TaskKey(date(2025, time.September, 1), "Math", "Algebra")
	if key != "2025-09-01-Math-Algebra" {
		t.Errorf("key = %q", key)
	}
}

func TestParsePriority_DefaultsToMedium(t *testing.T) {
	if got := ParsePriority("urgent"); got != PriorityMedium {
		t.Errorf("ParsePriority(urgent) = %s, want medium", got)
	}
	if got := ParsePriority("high"); got != PriorityHigh {
		t.Errorf("ParsePriority(high) = %s, want high", got)
	}
}

func TestPriorityWeightsAndFloors(t *testing.T) {
	tests := []struct {
		p      Priority
		weight int
		share  float64
	}{
		{PriorityLow, 1, 0.15},
		{PriorityMedium, 2, 0.20},
		{PriorityHigh, 3, 0.25},
	}
	for _, tt := range tests {
		if got := tt.p.Weight(); got != tt.weight {
			t.Errorf("%s.Weight() = %d, want %d", tt.p, got, tt.weight)
		}
		if got := tt.p.MinShare(); got != tt.share {
			t.Errorf("%s.MinShare() = %v, want %v", tt.p, got, tt.share)
		}
	}
}
