package badge

import (
	"time"

	"github.com/google/uuid"
)

type CriteriaType string

const (
	CriteriaFirstLog    CriteriaType = "first_log"
	CriteriaStreak      CriteriaType = "streak"
	CriteriaIdealCount  CriteriaType = "ideal_count"
	CriteriaTotalLogs   CriteriaType = "total_logs"
	CriteriaXPMilestone CriteriaType = "xp_milestone"
	CriteriaIdealStreak CriteriaType = "ideal_streak"
)

// CriteriaValue carries the threshold for the criteria type: days for
// streak/ideal_streak, a count for ideal_count/total_logs, an XP amount for
// xp_milestone. Zero for first_log.
type Badge struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Description   string       `json:"description" db:"description"`
	Icon          string       `json:"icon" db:"icon"`
	CriteriaType  CriteriaType `json:"criteria_type" db:"criteria_type"`
	CriteriaValue int          `json:"criteria_value" db:"criteria_value"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
}

type UserBadge struct {
	ID       uuid.UUID `json:"id" db:"id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	BadgeID  uuid.UUID `json:"badge_id" db:"badge_id"`
	EarnedAt time.Time `json:"earned_at" db:"earned_at"`
}

type BadgeWithStatus struct {
	Badge
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}
