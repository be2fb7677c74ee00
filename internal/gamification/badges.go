package gamification

import (
	"sort"

	"bowelBuddiesAPI/internal/types/badge"
	"bowelBuddiesAPI/internal/types/movement"
	"bowelBuddiesAPI/internal/user"
)

// CheckBadgeEligibility reports whether the profile currently satisfies the
// badge's criteria. Callers are expected to skip badges the user already
// holds, so awarding stays at-most-once per (user, badge) pair. Unknown
// criteria types are never eligible.
func CheckBadgeEligibility(profile *user.User, logs []*movement.Log, b *badge.Badge) bool {
	if profile == nil || b == nil {
		return false
	}

	switch b.CriteriaType {
	case badge.CriteriaFirstLog:
		return len(logs) >= 1
	case badge.CriteriaStreak:
		return profile.LongestStreak >= b.CriteriaValue
	case badge.CriteriaIdealCount:
		count := 0
		for _, l := range logs {
			if l.IsIdeal() {
				count++
			}
		}
		return count >= b.CriteriaValue
	case badge.CriteriaTotalLogs:
		return len(logs) >= b.CriteriaValue
	case badge.CriteriaXPMilestone:
		return profile.XPTotal >= b.CriteriaValue
	case badge.CriteriaIdealStreak:
		return IdealStreak(logs) >= b.CriteriaValue
	default:
		return false
	}
}

// IdealStreak counts consecutive calendar days of ideal-consistency logs,
// walking back from the most recent log and stopping at the first log
// outside the ideal Bristol range. Several logs on the same day count once.
// Calendar days are taken in UTC.
func IdealStreak(logs []*movement.Log) int {
	sorted := make([]*movement.Log, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.After(sorted[j].LoggedAt)
	})

	streak := 0
	lastDate := ""
	for _, l := range sorted {
		if !l.IsIdeal() {
			break
		}
		date := l.LoggedAt.UTC().Format("2006-01-02")
		if date != lastDate {
			streak++
			lastDate = date
		}
	}

	return streak
}
