package gamification

import (
	"fmt"
	"strconv"
)

// Levels are flat 500 XP bands: level 1 covers 0-499, level 2 covers
// 500-999, and so on.
const xpPerLevel = 500

func CalculateLevel(xp int) int {
	return xp/xpPerLevel + 1
}

// XPForNextLevel returns the XP total at which the next level begins.
func XPForNextLevel(xp int) int {
	return CalculateLevel(xp) * xpPerLevel
}

// XPProgress returns how far into the current level band xp sits, 0-100.
func XPProgress(xp int) float64 {
	floor := (CalculateLevel(xp) - 1) * xpPerLevel
	return float64(xp-floor) / float64(xpPerLevel) * 100
}

// StreakBonus returns the bonus XP for a streak length. Highest threshold
// wins, checked in descending order.
func StreakBonus(streak int) int {
	switch {
	case streak >= 30:
		return 250
	case streak >= 14:
		return 100
	case streak >= 7:
		return 50
	case streak >= 3:
		return 25
	default:
		return 0
	}
}

func LevelTitle(level int) string {
	switch {
	case level >= 50:
		return "Porcelain Legend"
	case level >= 45:
		return "Digestive Dynamo"
	case level >= 40:
		return "Bristol Virtuoso"
	case level >= 35:
		return "Peristalsis Pro"
	case level >= 30:
		return "Colon Commander"
	case level >= 25:
		return "Gut Guardian"
	case level >= 20:
		return "Throne Regular"
	case level >= 15:
		return "Fiber Fanatic"
	case level >= 10:
		return "Stool Scholar"
	case level >= 5:
		return "Movement Apprentice"
	default:
		return "Bowel Beginner"
	}
}

// FormatPoints renders point totals the way the UI displays them. The exact
// strings are load-bearing: snapshot tests on the frontend assert on them.
func FormatPoints(points int) string {
	if points >= 1000 {
		return fmt.Sprintf("%.1fk", float64(points)/1000)
	}
	return strconv.Itoa(points)
}
