package gamification

import "testing"

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{2450, 5},
		{25000, 51},
	}

	for _, tt := range tests {
		if got := CalculateLevel(tt.xp); got != tt.level {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tt.xp, got, tt.level)
		}
		if got := XPForNextLevel(tt.xp); got != tt.level*500 {
			t.Errorf("XPForNextLevel(%d) = %d, want %d", tt.xp, got, tt.level*500)
		}
	}
}

func TestXPProgress(t *testing.T) {
	tests := []struct {
		xp   int
		want float64
	}{
		{0, 0},
		{250, 50},
		{400, 80},
		{500, 0},
		{2450, 90},
	}

	for _, tt := range tests {
		if got := XPProgress(tt.xp); got != tt.want {
			t.Errorf("XPProgress(%d) = %v, want %v", tt.xp, got, tt.want)
		}
	}
}

func TestStreakBonusBreakpoints(t *testing.T) {
	tests := []struct {
		streak int
		bonus  int
	}{
		{0, 0},
		{2, 0},
		{3, 25},
		{6, 25},
		{7, 50},
		{13, 50},
		{14, 100},
		{29, 100},
		{30, 250},
		{365, 250},
	}

	for _, tt := range tests {
		if got := StreakBonus(tt.streak); got != tt.bonus {
			t.Errorf("StreakBonus(%d) = %d, want %d", tt.streak, got, tt.bonus)
		}
	}
}

func TestStreakBonusMonotonic(t *testing.T) {
	prev := 0
	for streak := 0; streak <= 60; streak++ {
		bonus := StreakBonus(streak)
		if bonus < prev {
			t.Fatalf("StreakBonus decreased at streak %d: %d < %d", streak, bonus, prev)
		}
		prev = bonus
	}
}

func TestLevelTitle(t *testing.T) {
	tests := []struct {
		level int
		title string
	}{
		{1, "Bowel Beginner"},
		{4, "Bowel Beginner"},
		{5, "Movement Apprentice"},
		{9, "Movement Apprentice"},
		{10, "Stool Scholar"},
		{25, "Gut Guardian"},
		{49, "Digestive Dynamo"},
		{50, "Porcelain Legend"},
		{99, "Porcelain Legend"},
	}

	for _, tt := range tests {
		if got := LevelTitle(tt.level); got != tt.title {
			t.Errorf("LevelTitle(%d) = %q, want %q", tt.level, got, tt.title)
		}
	}
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{2450, "2.5k"},
		{10050, "10.1k"},
	}

	for _, tt := range tests {
		if got := FormatPoints(tt.points); got != tt.want {
			t.Errorf("FormatPoints(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

// Mirrors the profile summary the app shows for a mid-game user.
func TestLevelSummaryEndToEnd(t *testing.T) {
	xp := 2450

	level := CalculateLevel(xp)
	if level != 5 {
		t.Fatalf("expected level 5, got %d", level)
	}
	if title := LevelTitle(level); title != "Movement Apprentice" {
		t.Errorf("expected title Movement Apprentice, got %q", title)
	}
	if bonus := StreakBonus(7); bonus != 50 {
		t.Errorf("expected streak bonus 50, got %d", bonus)
	}
	if formatted := FormatPoints(xp); formatted != "2.5k" {
		t.Errorf("expected formatted points 2.5k, got %q", formatted)
	}
}
