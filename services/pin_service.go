package services

import (
	"context"
	"fmt"
	"time"

	"bowelBuddiesAPI/internal/types/pin"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PinService struct {
	db *pgxpool.Pool
}

func NewPinService(db *pgxpool.Pool) *PinService {
	return &PinService{db: db}
}

// GetPins returns the caller's own map pins plus pins from accepted friends,
// newest first.
func (s *PinService) GetPins(ctx context.Context, clerkID string) ([]*pin.Pin, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT p.id, p.user_id, u.username, p.latitude, p.longitude, p.title, p.note, p.image_url, p.logged_at
	FROM map_pins p
	INNER JOIN users u ON u.id = p.user_id
	WHERE p.user_id = $1
		OR p.user_id IN (
			SELECT f.friend_id FROM friendships f
			WHERE f.user_id = $1 AND f.status = 'accepted'
			UNION
			SELECT f.user_id FROM friendships f
			WHERE f.friend_id = $1 AND f.status = 'accepted'
		)
	ORDER BY p.logged_at DESC
	LIMIT 200
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pins: %w", err)
	}
	defer rows.Close()

	pins := []*pin.Pin{}
	for rows.Next() {
		p := &pin.Pin{}
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Username,
			&p.Latitude,
			&p.Longitude,
			&p.Title,
			&p.Note,
			&p.ImageURL,
			&p.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pin: %w", err)
		}
		pins = append(pins, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return pins, nil
}

func (s *PinService) CreatePin(ctx context.Context, clerkID string, req *pin.CreatePinRequest) (*pin.Pin, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("invalid coordinates")
	}

	var userID uuid.UUID
	var username string
	err := s.db.QueryRow(ctx, `SELECT id, username FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID, &username)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	p := &pin.Pin{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Title:     req.Title,
		Note:      req.Note,
		ImageURL:  req.ImageURL,
		LoggedAt:  time.Now(),
	}

	query := `
	INSERT INTO map_pins (id, user_id, latitude, longitude, title, note, image_url, logged_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = s.db.Exec(ctx, query, p.ID, p.UserID, p.Latitude, p.Longitude, p.Title, p.Note, p.ImageURL, p.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create pin: %w", err)
	}

	return p, nil
}

func (s *PinService) DeletePin(ctx context.Context, clerkID string, pinID uuid.UUID) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	result, err := s.db.Exec(ctx, `DELETE FROM map_pins WHERE id = $1 AND user_id = $2`, pinID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete pin: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pin not found")
	}

	return nil
}
