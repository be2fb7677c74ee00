package gamification

import (
	"testing"

	"bowelBuddiesAPI/internal/types/movement"
)

func TestHealthStatusEmpty(t *testing.T) {
	hs := HealthStatus(nil)
	if hs.Status != "fair" {
		t.Errorf("empty logs: status = %q, want fair", hs.Status)
	}
	if hs.Message == "" {
		t.Error("empty logs should carry an onboarding message")
	}
}

func TestHealthStatusBands(t *testing.T) {
	tests := []struct {
		name     string
		bristols []int
		want     string
	}{
		{"all ideal", []int{4, 4, 3, 4, 3, 4, 4}, "excellent"},
		{"five of seven", []int{4, 4, 3, 4, 3, 1, 6}, "good"},
		{"three of seven", []int{4, 4, 3, 1, 2, 6, 7}, "fair"},
		{"one of seven", []int{4, 1, 2, 1, 6, 7, 5}, "poor"},
	}

	for _, tt := range tests {
		var logs []*movement.Log
		for i, b := range tt.bristols {
			logs = append(logs, logOnDay(b, i))
		}
		if got := HealthStatus(logs).Status; got != tt.want {
			t.Errorf("%s: status = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHealthStatusOnlyCountsRecentSeven(t *testing.T) {
	// Seven recent ideal logs, then a long tail of poor ones that must be
	// ignored.
	var logs []*movement.Log
	for i := 0; i < 7; i++ {
		logs = append(logs, logOnDay(4, i))
	}
	for i := 7; i < 20; i++ {
		logs = append(logs, logOnDay(7, i))
	}

	if got := HealthStatus(logs).Status; got != "excellent" {
		t.Errorf("status = %q, want excellent (older logs should be ignored)", got)
	}
}

func TestConsistencyBreakdownEmpty(t *testing.T) {
	buckets := ConsistencyBreakdown(nil)
	if len(buckets) != 1 {
		t.Fatalf("expected a single No Data bucket, got %d buckets", len(buckets))
	}
	if buckets[0].Name != "No Data" || buckets[0].Value != 100 {
		t.Errorf("got %+v, want {No Data 100}", buckets[0])
	}
}

func TestConsistencyBreakdownBuckets(t *testing.T) {
	logs := []*movement.Log{
		logOnDay(1, 0), logOnDay(2, 1), // constipated
		logOnDay(3, 2), logOnDay(4, 3), logOnDay(4, 4), // ideal
		logOnDay(5, 5), // lacking fiber
		logOnDay(6, 6), logOnDay(7, 7), // liquid
	}

	buckets := ConsistencyBreakdown(logs)
	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}

	want := map[string]int{
		"Constipated":   25,
		"Ideal":         38,
		"Lacking Fiber": 13,
		"Liquid":        25,
	}
	for _, b := range buckets {
		if b.Value != want[b.Name] {
			t.Errorf("%s = %d, want %d", b.Name, b.Value, want[b.Name])
		}
	}
}

func TestWeightLost(t *testing.T) {
	pre1, post1 := 10.0, 9.0
	pre2 := 5.0

	logs := []*movement.Log{
		{PreWeight: &pre1, PostWeight: &post1},
		{PreWeight: &pre2}, // missing post weight contributes 0
	}

	if got := WeightLost(logs); got != 1 {
		t.Errorf("WeightLost = %v, want 1", got)
	}
}

func TestWeightLostIncludesNegativeDeltas(t *testing.T) {
	pre1, post1 := 10.0, 9.0
	pre2, post2 := 5.0, 6.5

	logs := []*movement.Log{
		{PreWeight: &pre1, PostWeight: &post1},
		{PreWeight: &pre2, PostWeight: &post2},
	}

	if got := WeightLost(logs); got != -0.5 {
		t.Errorf("WeightLost = %v, want -0.5 (weight gained is not clamped)", got)
	}
}
