package challenge

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeType string

const (
	TypeMostLogs       ChallengeType = "most_logs"
	TypeLongestStreak  ChallengeType = "longest_streak"
	TypeMostWeightLost ChallengeType = "most_weight_lost"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type ParticipantStatus string

const (
	ParticipantInvited  ParticipantStatus = "invited"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

type Challenge struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	CreatorID     uuid.UUID     `json:"creator_id" db:"creator_id"`
	Title         string        `json:"title" db:"title"`
	ChallengeType ChallengeType `json:"challenge_type" db:"challenge_type"`
	StartDate     time.Time     `json:"start_date" db:"start_date"`
	EndDate       time.Time     `json:"end_date" db:"end_date"`
	Status        Status        `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

type Participant struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	UserID    uuid.UUID         `json:"user_id" db:"user_id"`
	UserName  string            `json:"userName"`
	AvatarURL string            `json:"avatarUrl"`
	Status    ParticipantStatus `json:"status" db:"status"`
	// Progress is recomputed from log history on every read, never stored.
	Progress float64   `json:"progress"`
	Rank     int       `json:"rank,omitempty"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

type ChallengeWithParticipants struct {
	Challenge
	Participants []*Participant `json:"participants"`
}

type CreateChallengeRequest struct {
	Title         string   `json:"title"`
	ChallengeType string   `json:"challenge_type"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	FriendIDs     []string `json:"friend_ids"`
}

type RespondRequest struct {
	ChallengeID string `json:"challenge_id"`
	Accept      bool   `json:"accept"`
}
