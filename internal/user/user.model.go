package user

import "time"

type User struct {
	ID            string     `json:"id"`
	ClerkID       string     `json:"clerkId"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	IsPrivate     bool       `json:"is_private"`
	XPTotal       int        `json:"xp_total"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastLogDate   *time.Time `json:"last_log_date,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
