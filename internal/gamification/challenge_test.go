package gamification

import (
	"testing"
	"time"

	"bowelBuddiesAPI/internal/types/challenge"
	"bowelBuddiesAPI/internal/types/movement"
)

func logAt(t time.Time) *movement.Log {
	return &movement.Log{BristolType: 4, LoggedAt: t}
}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 12, 0, 0, 0, time.UTC)
}

func TestLongestDayStreakWithGap(t *testing.T) {
	// Logs on days 1,2,3,5,6: the longest run is 3, not 5.
	logs := []*movement.Log{logAt(day(1)), logAt(day(2)), logAt(day(3)), logAt(day(5)), logAt(day(6))}
	if got := LongestDayStreak(logs); got != 3 {
		t.Errorf("LongestDayStreak = %d, want 3", got)
	}
}

func TestLongestDayStreakSameDayDuplicates(t *testing.T) {
	logs := []*movement.Log{
		logAt(day(1)),
		logAt(day(1).Add(4 * time.Hour)),
		logAt(day(2)),
	}
	if got := LongestDayStreak(logs); got != 2 {
		t.Errorf("LongestDayStreak = %d, want 2", got)
	}
}

func TestLongestDayStreakEmpty(t *testing.T) {
	if got := LongestDayStreak(nil); got != 0 {
		t.Errorf("LongestDayStreak(nil) = %d, want 0", got)
	}
}

func TestChallengeProgressMostLogs(t *testing.T) {
	start, end := day(1), day(7)

	logs := []*movement.Log{
		logAt(day(1)),
		logAt(day(3)),
		logAt(day(7).Add(11 * time.Hour)), // 23:00 on the end date, still inside
		logAt(day(8)),                     // past the window
	}

	if got := ChallengeProgress(challenge.TypeMostLogs, logs, start, end); got != 3 {
		t.Errorf("most_logs progress = %v, want 3", got)
	}
}

func TestChallengeProgressMostWeightLost(t *testing.T) {
	start, end := day(1), day(7)

	pre1, post1 := 180.5, 179.0
	pre2, post2 := 179.0, 178.0
	pre3 := 178.0

	logs := []*movement.Log{
		{BristolType: 4, LoggedAt: day(2), PreWeight: &pre1, PostWeight: &post1},
		{BristolType: 4, LoggedAt: day(3), PreWeight: &pre2, PostWeight: &post2},
		{BristolType: 4, LoggedAt: day(4), PreWeight: &pre3}, // no post weight
	}

	if got := ChallengeProgress(challenge.TypeMostWeightLost, logs, start, end); got != 2.5 {
		t.Errorf("most_weight_lost progress = %v, want 2.5", got)
	}
}

func TestChallengeProgressLongestStreak(t *testing.T) {
	start, end := day(1), day(10)

	logs := []*movement.Log{
		logAt(day(1)), logAt(day(2)), logAt(day(3)),
		logAt(day(5)), logAt(day(6)),
	}

	if got := ChallengeProgress(challenge.TypeLongestStreak, logs, start, end); got != 3 {
		t.Errorf("longest_streak progress = %v, want 3", got)
	}
}

func TestChallengeProgressUnknownType(t *testing.T) {
	if got := ChallengeProgress("hot_dog_eating", []*movement.Log{logAt(day(1))}, day(1), day(7)); got != 0 {
		t.Errorf("unknown challenge type progress = %v, want 0", got)
	}
}

func TestRankParticipants(t *testing.T) {
	alice := &challenge.Participant{UserName: "alice", Status: challenge.ParticipantAccepted, Progress: 5}
	bob := &challenge.Participant{UserName: "bob", Status: challenge.ParticipantAccepted, Progress: 9}
	cara := &challenge.Participant{UserName: "cara", Status: challenge.ParticipantAccepted, Progress: 9}
	dave := &challenge.Participant{UserName: "dave", Status: challenge.ParticipantInvited, Progress: 0}

	ranked := RankParticipants([]*challenge.Participant{alice, bob, cara, dave})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked participants, got %d", len(ranked))
	}
	// Ties keep input order: bob before cara.
	if ranked[0] != bob || ranked[1] != cara || ranked[2] != alice {
		t.Errorf("unexpected order: %s, %s, %s", ranked[0].UserName, ranked[1].UserName, ranked[2].UserName)
	}
	if bob.Rank != 1 || cara.Rank != 2 || alice.Rank != 3 {
		t.Errorf("ranks = %d, %d, %d, want 1, 2, 3", bob.Rank, cara.Rank, alice.Rank)
	}
	if dave.Rank != 0 {
		t.Errorf("invited participant should stay unranked, got rank %d", dave.Rank)
	}
}
