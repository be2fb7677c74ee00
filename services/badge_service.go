package services

import (
	"context"
	"fmt"

	"bowelBuddiesAPI/internal/types/badge"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BadgeService struct {
	db *pgxpool.Pool
}

func NewBadgeService(db *pgxpool.Pool) *BadgeService {
	return &BadgeService{db: db}
}

// GetBadges returns the full badge catalog with the caller's earned status on
// each entry. Unearned badges are included so the client can render them
// locked.
func (s *BadgeService) GetBadges(ctx context.Context, clerkID string) ([]*badge.BadgeWithStatus, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT
		b.id,
		b.name,
		b.description,
		b.icon,
		b.criteria_type,
		b.criteria_value,
		b.created_at,
		ub.earned_at
	FROM badges b
	LEFT JOIN user_badges ub ON ub.badge_id = b.id AND ub.user_id = $1
	ORDER BY b.criteria_type, b.criteria_value
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges: %w", err)
	}
	defer rows.Close()

	badges := []*badge.BadgeWithStatus{}
	for rows.Next() {
		b := &badge.BadgeWithStatus{}
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Description,
			&b.Icon,
			&b.CriteriaType,
			&b.CriteriaValue,
			&b.CreatedAt,
			&b.EarnedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		b.Earned = b.EarnedAt != nil
		badges = append(badges, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return badges, nil
}
