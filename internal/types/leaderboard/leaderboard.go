package leaderboard

import "github.com/google/uuid"

type Entry struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Username      string    `json:"username" db:"username"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	Points        int       `json:"points" db:"points"`
	Level         int       `json:"level"`
	CurrentStreak int       `json:"current_streak" db:"current_streak"`
	Rank          int       `json:"rank"`
}

type Leaderboard struct {
	Entries      []*Entry `json:"entries"`
	Podium       []*Entry `json:"podium,omitempty"`
	UserPosition *Entry   `json:"user_position"`
	TotalUsers   int      `json:"total_users"`
}
