package pin

import (
	"time"

	"github.com/google/uuid"
)

type Pin struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Username  string    `json:"username"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Title     string    `json:"title" db:"title"`
	Note      *string   `json:"note" db:"note"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	LoggedAt  time.Time `json:"logged_at" db:"logged_at"`
}

type CreatePinRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
	Note      *string `json:"note,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}
