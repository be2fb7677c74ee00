package movement

import (
	"time"

	"github.com/google/uuid"
)

type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"
)

// Bristol types 3 and 4 count as the healthy "ideal" range.
const (
	BristolMin = 1
	BristolMax = 7
	IdealMin   = 3
	IdealMax   = 4
)

type Log struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"user_id" db:"user_id"`
	BristolType int         `json:"bristol_type" db:"bristol_type"`
	PreWeight   *float64    `json:"pre_weight" db:"pre_weight"`
	PostWeight  *float64    `json:"post_weight" db:"post_weight"`
	WeightUnit  *WeightUnit `json:"weight_unit" db:"weight_unit"`
	Note        *string     `json:"note" db:"note"`
	XPEarned    int         `json:"xp_earned" db:"xp_earned"`
	LoggedAt    time.Time   `json:"logged_at" db:"logged_at"`
}

// IsIdeal reports whether the log falls in the healthy Bristol range.
func (l *Log) IsIdeal() bool {
	return l.BristolType >= IdealMin && l.BristolType <= IdealMax
}

type CreateLogRequest struct {
	BristolType int         `json:"bristol_type"`
	PreWeight   *float64    `json:"pre_weight,omitempty"`
	PostWeight  *float64    `json:"post_weight,omitempty"`
	WeightUnit  *WeightUnit `json:"weight_unit,omitempty"`
	Note        *string     `json:"note,omitempty"`
}

type CreateLogResponse struct {
	Log           *Log     `json:"log"`
	XPEarned      int      `json:"xp_earned"`
	CurrentStreak int      `json:"current_streak"`
	NewBadges     []string `json:"new_badges"`
}
