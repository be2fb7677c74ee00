package gamification

import (
	"testing"
	"time"

	"bowelBuddiesAPI/internal/types/badge"
	"bowelBuddiesAPI/internal/types/movement"
	"bowelBuddiesAPI/internal/user"
)

func logOnDay(bristolType, daysAgo int) *movement.Log {
	return &movement.Log{
		BristolType: bristolType,
		LoggedAt:    time.Now().UTC().AddDate(0, 0, -daysAgo),
	}
}

func nLogs(n int) []*movement.Log {
	logs := make([]*movement.Log, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, logOnDay(4, i))
	}
	return logs
}

func TestCheckBadgeEligibilityFirstLog(t *testing.T) {
	profile := &user.User{}
	b := &badge.Badge{CriteriaType: badge.CriteriaFirstLog}

	if CheckBadgeEligibility(profile, nil, b) {
		t.Error("first_log should not be eligible with no logs")
	}
	if !CheckBadgeEligibility(profile, nLogs(1), b) {
		t.Error("first_log should be eligible with one log")
	}
}

func TestCheckBadgeEligibilityTotalLogs(t *testing.T) {
	profile := &user.User{}
	b := &badge.Badge{CriteriaType: badge.CriteriaTotalLogs, CriteriaValue: 5}

	if CheckBadgeEligibility(profile, nLogs(4), b) {
		t.Error("4 logs should not satisfy total_logs 5")
	}
	if !CheckBadgeEligibility(profile, nLogs(5), b) {
		t.Error("5 logs should satisfy total_logs 5")
	}
}

func TestCheckBadgeEligibilityStreakUsesLongest(t *testing.T) {
	profile := &user.User{CurrentStreak: 2, LongestStreak: 10}
	b := &badge.Badge{CriteriaType: badge.CriteriaStreak, CriteriaValue: 7}

	if !CheckBadgeEligibility(profile, nil, b) {
		t.Error("longest_streak 10 should satisfy streak 7 even with a lower current streak")
	}
}

func TestCheckBadgeEligibilityIdealCount(t *testing.T) {
	profile := &user.User{}
	b := &badge.Badge{CriteriaType: badge.CriteriaIdealCount, CriteriaValue: 2}

	logs := []*movement.Log{logOnDay(1, 0), logOnDay(3, 1), logOnDay(7, 2), logOnDay(4, 3)}
	if !CheckBadgeEligibility(profile, logs, b) {
		t.Error("two ideal logs should satisfy ideal_count 2")
	}

	logs = []*movement.Log{logOnDay(1, 0), logOnDay(3, 1), logOnDay(7, 2)}
	if CheckBadgeEligibility(profile, logs, b) {
		t.Error("one ideal log should not satisfy ideal_count 2")
	}
}

func TestCheckBadgeEligibilityXPMilestone(t *testing.T) {
	b := &badge.Badge{CriteriaType: badge.CriteriaXPMilestone, CriteriaValue: 1000}

	if CheckBadgeEligibility(&user.User{XPTotal: 999}, nil, b) {
		t.Error("999 XP should not satisfy xp_milestone 1000")
	}
	if !CheckBadgeEligibility(&user.User{XPTotal: 1000}, nil, b) {
		t.Error("1000 XP should satisfy xp_milestone 1000")
	}
}

func TestCheckBadgeEligibilityUnknownCriteria(t *testing.T) {
	profile := &user.User{XPTotal: 99999, LongestStreak: 99}
	b := &badge.Badge{CriteriaType: "golden_plunger", CriteriaValue: 1}

	if CheckBadgeEligibility(profile, nLogs(50), b) {
		t.Error("unrecognized criteria type must never be eligible")
	}
}

func TestIdealStreakThreeDays(t *testing.T) {
	profile := &user.User{}
	b := &badge.Badge{CriteriaType: badge.CriteriaIdealStreak, CriteriaValue: 3}

	logs := []*movement.Log{logOnDay(4, 0), logOnDay(4, 1), logOnDay(4, 2)}
	if !CheckBadgeEligibility(profile, logs, b) {
		t.Error("three consecutive ideal days should satisfy ideal_streak 3")
	}
}

func TestIdealStreakBrokenByNonIdealDay(t *testing.T) {
	profile := &user.User{}
	b := &badge.Badge{CriteriaType: badge.CriteriaIdealStreak, CriteriaValue: 3}

	// A type-1 log on the middle day cuts the walk short.
	logs := []*movement.Log{logOnDay(4, 0), logOnDay(1, 1), logOnDay(4, 1), logOnDay(4, 2)}
	if CheckBadgeEligibility(profile, logs, b) {
		t.Error("a non-ideal log inside the run should break the streak")
	}
}

func TestIdealStreakSameDayDuplicates(t *testing.T) {
	logs := []*movement.Log{logOnDay(4, 0), logOnDay(3, 0), logOnDay(4, 1)}
	if got := IdealStreak(logs); got != 2 {
		t.Errorf("IdealStreak = %d, want 2 (duplicate same-day logs count once)", got)
	}
}

func TestIdealStreakEmpty(t *testing.T) {
	if got := IdealStreak(nil); got != 0 {
		t.Errorf("IdealStreak(nil) = %d, want 0", got)
	}
}
