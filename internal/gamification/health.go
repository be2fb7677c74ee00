package gamification

import (
	"math"
	"sort"

	"bowelBuddiesAPI/internal/stats"
	"bowelBuddiesAPI/internal/types/movement"
)

// HealthStatus summarises the most recent seven logs into a status band
// based on the share of ideal-consistency movements. Logs are sorted
// internally, so callers can pass them in any order.
func HealthStatus(logs []*movement.Log) *stats.HealthStatus {
	if len(logs) == 0 {
		return &stats.HealthStatus{
			Status:  "fair",
			Message: "Log your first movement to start tracking your gut health.",
		}
	}

	sorted := make([]*movement.Log, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.After(sorted[j].LoggedAt)
	})
	recent := sorted
	if len(recent) > 7 {
		recent = recent[:7]
	}

	ideal := 0
	for _, l := range recent {
		if l.IsIdeal() {
			ideal++
		}
	}
	pct := float64(ideal) / float64(len(recent)) * 100

	switch {
	case pct >= 80:
		return &stats.HealthStatus{Status: "excellent", Message: "Your gut is thriving. Keep doing what you're doing!"}
	case pct >= 60:
		return &stats.HealthStatus{Status: "good", Message: "Solid work. A little more fiber and water wouldn't hurt."}
	case pct >= 40:
		return &stats.HealthStatus{Status: "fair", Message: "Your consistency is drifting. Watch your diet this week."}
	default:
		return &stats.HealthStatus{Status: "poor", Message: "Your recent movements look off. Consider talking to a doctor."}
	}
}

// ConsistencyBreakdown partitions logs into the four Bristol bands the
// dashboard chart shows. Percentages are rounded independently and may not
// sum to exactly 100.
func ConsistencyBreakdown(logs []*movement.Log) []stats.ConsistencyBucket {
	if len(logs) == 0 {
		return []stats.ConsistencyBucket{{Name: "No Data", Value: 100, Color: "#9ca3af"}}
	}

	var constipated, ideal, lackingFiber, liquid int
	for _, l := range logs {
		switch {
		case l.BristolType <= 2:
			constipated++
		case l.BristolType <= 4:
			ideal++
		case l.BristolType == 5:
			lackingFiber++
		default:
			liquid++
		}
	}

	total := float64(len(logs))
	pct := func(n int) int {
		return int(math.Round(float64(n) / total * 100))
	}

	return []stats.ConsistencyBucket{
		{Name: "Constipated", Value: pct(constipated), Color: "#b45309"},
		{Name: "Ideal", Value: pct(ideal), Color: "#22c55e"},
		{Name: "Lacking Fiber", Value: pct(lackingFiber), Color: "#eab308"},
		{Name: "Liquid", Value: pct(liquid), Color: "#ef4444"},
	}
}

// WeightLost sums pre minus post weight across logs that carry both values.
// Logs missing either weight contribute nothing. Negative deltas (weight
// gained) are included as-is.
func WeightLost(logs []*movement.Log) float64 {
	total := 0.0
	for _, l := range logs {
		if l.PreWeight != nil && l.PostWeight != nil {
			total += *l.PreWeight - *l.PostWeight
		}
	}
	return total
}
