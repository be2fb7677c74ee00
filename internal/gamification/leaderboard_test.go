package gamification

import (
	"testing"

	"bowelBuddiesAPI/internal/types/leaderboard"
)

func TestRankEntriesPositional(t *testing.T) {
	a := &leaderboard.Entry{Username: "a", Points: 100}
	b := &leaderboard.Entry{Username: "b", Points: 300}
	c := &leaderboard.Entry{Username: "c", Points: 300}

	entries := []*leaderboard.Entry{a, b, c}
	RankEntries(entries)

	// The two 300s get distinct ranks 1 and 2 in stable input order; no
	// shared ranks.
	if b.Rank != 1 || c.Rank != 2 || a.Rank != 3 {
		t.Errorf("ranks = b:%d c:%d a:%d, want b:1 c:2 a:3", b.Rank, c.Rank, a.Rank)
	}
	if entries[0] != b || entries[1] != c || entries[2] != a {
		t.Errorf("unexpected sort order: %s, %s, %s",
			entries[0].Username, entries[1].Username, entries[2].Username)
	}
}

func TestRankEntriesDerivesLevel(t *testing.T) {
	e := &leaderboard.Entry{Username: "a", Points: 2450}
	RankEntries([]*leaderboard.Entry{e})
	if e.Level != 5 {
		t.Errorf("level = %d, want 5", e.Level)
	}
}

func TestPodium(t *testing.T) {
	entries := []*leaderboard.Entry{
		{Username: "a", Points: 500},
		{Username: "b", Points: 400},
	}
	RankEntries(entries)
	if Podium(entries) != nil {
		t.Error("podium should be suppressed with fewer than 3 entries")
	}

	entries = append(entries, &leaderboard.Entry{Username: "c", Points: 300}, &leaderboard.Entry{Username: "d", Points: 200})
	RankEntries(entries)

	podium := Podium(entries)
	if len(podium) != 3 {
		t.Fatalf("podium size = %d, want 3", len(podium))
	}
	if podium[0].Username != "a" || podium[2].Username != "c" {
		t.Errorf("unexpected podium: %s, %s, %s", podium[0].Username, podium[1].Username, podium[2].Username)
	}
}
