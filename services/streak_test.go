package services

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNextStreakFirstLogEver(t *testing.T) {
	streak, first := nextStreak(nil, day("2025-06-10"), 0)
	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
	if !first {
		t.Error("expected first log of day")
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	last := day("2025-06-09")
	streak, first := nextStreak(&last, day("2025-06-10"), 4)
	if streak != 5 {
		t.Errorf("expected streak 5, got %d", streak)
	}
	if !first {
		t.Error("expected first log of day")
	}
}

func TestNextStreakSameDay(t *testing.T) {
	last := day("2025-06-10")
	streak, first := nextStreak(&last, day("2025-06-10"), 4)
	if streak != 4 {
		t.Errorf("expected streak unchanged at 4, got %d", streak)
	}
	if first {
		t.Error("expected not first log of day")
	}
}

func TestNextStreakGapResets(t *testing.T) {
	last := day("2025-06-07")
	streak, first := nextStreak(&last, day("2025-06-10"), 12)
	if streak != 1 {
		t.Errorf("expected streak reset to 1, got %d", streak)
	}
	if !first {
		t.Error("expected first log of day")
	}
}
