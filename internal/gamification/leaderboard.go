package gamification

import (
	"sort"

	"bowelBuddiesAPI/internal/types/leaderboard"
)

// RankEntries sorts entries by points descending and assigns 1-based
// positional ranks in place. Equal scores get distinct consecutive ranks in
// input order: this is positional ranking, not competition ranking (no
// shared "1,1,3" ranks).
func RankEntries(entries []*leaderboard.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i, e := range entries {
		e.Rank = i + 1
		e.Level = CalculateLevel(e.Points)
	}
}

// Podium returns the top three ranked entries. With fewer than three ranked
// entries it returns nil so the display layer suppresses the podium.
func Podium(entries []*leaderboard.Entry) []*leaderboard.Entry {
	if len(entries) < 3 {
		return nil
	}
	return entries[:3]
}
