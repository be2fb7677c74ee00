package gamification

import (
	"math"
	"sort"
	"time"

	"bowelBuddiesAPI/internal/types/challenge"
	"bowelBuddiesAPI/internal/types/movement"
)

// ChallengeProgress computes one participant's score for a challenge over
// the inclusive [start, end] calendar-date window. The window closes at
// 23:59:59 on the end date.
func ChallengeProgress(ctype challenge.ChallengeType, logs []*movement.Log, start, end time.Time) float64 {
	windowStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)

	var inWindow []*movement.Log
	for _, l := range logs {
		at := l.LoggedAt.UTC()
		if !at.Before(windowStart) && !at.After(windowEnd) {
			inWindow = append(inWindow, l)
		}
	}

	switch ctype {
	case challenge.TypeMostLogs:
		return float64(len(inWindow))
	case challenge.TypeMostWeightLost:
		return math.Round(WeightLost(inWindow)*10) / 10
	case challenge.TypeLongestStreak:
		return float64(LongestDayStreak(inWindow))
	default:
		return 0
	}
}

// LongestDayStreak returns the longest run of consecutive calendar days
// (UTC) with at least one log. Gaps reset the run; multiple logs on one day
// count as a single day.
func LongestDayStreak(logs []*movement.Log) int {
	if len(logs) == 0 {
		return 0
	}

	days := make(map[time.Time]struct{})
	for _, l := range logs {
		at := l.LoggedAt.UTC()
		days[time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)] = struct{}{}
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	maxStreak, current := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > maxStreak {
			maxStreak = current
		}
	}

	return maxStreak
}

// RankParticipants filters to accepted participants, orders them by progress
// descending and assigns positional ranks. Ties keep their input order.
// Invited and declined participants are left out; callers still surface them
// with zero progress.
func RankParticipants(participants []*challenge.Participant) []*challenge.Participant {
	var accepted []*challenge.Participant
	for _, p := range participants {
		if p.Status == challenge.ParticipantAccepted {
			accepted = append(accepted, p)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Progress > accepted[j].Progress
	})
	for i, p := range accepted {
		p.Rank = i + 1
	}

	return accepted
}
