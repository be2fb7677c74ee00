package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bowelBuddiesAPI/internal/gamification"
	"bowelBuddiesAPI/internal/types/badge"
	"bowelBuddiesAPI/internal/types/movement"
	"bowelBuddiesAPI/internal/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// baseLogXP is awarded for every logged movement. The first log of a calendar
// day additionally earns the current streak bonus.
const baseLogXP = 25

type MovementService struct {
	db *pgxpool.Pool
}

func NewMovementService(db *pgxpool.Pool) *MovementService {
	return &MovementService{db: db}
}

func (s *MovementService) LogMovement(ctx context.Context, clerkID string, req *movement.CreateLogRequest) (*movement.CreateLogResponse, error) {
	if req.BristolType < movement.BristolMin || req.BristolType > movement.BristolMax {
		return nil, fmt.Errorf("bristol_type must be between %d and %d", movement.BristolMin, movement.BristolMax)
	}

	u := &user.User{}
	query := `
	SELECT id, clerk_id, xp_total, current_streak, longest_streak, last_log_date
	FROM users
	WHERE clerk_id = $1
	`
	err := s.db.QueryRow(ctx, query, clerkID).Scan(
		&u.ID,
		&u.ClerkID,
		&u.XPTotal,
		&u.CurrentStreak,
		&u.LongestStreak,
		&u.LastLogDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	userID, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	newStreak, firstLogToday := nextStreak(u.LastLogDate, today, u.CurrentStreak)

	xp := baseLogXP
	if firstLogToday {
		xp += gamification.StreakBonus(newStreak)
	}

	l := &movement.Log{
		ID:          uuid.New(),
		UserID:      userID,
		BristolType: req.BristolType,
		PreWeight:   req.PreWeight,
		PostWeight:  req.PostWeight,
		WeightUnit:  req.WeightUnit,
		Note:        req.Note,
		XPEarned:    xp,
		LoggedAt:    now,
	}

	insertQuery := `
	INSERT INTO movement_logs (id, user_id, bristol_type, pre_weight, post_weight, weight_unit, note, xp_earned, logged_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.Exec(
		ctx,
		insertQuery,
		l.ID,
		l.UserID,
		l.BristolType,
		l.PreWeight,
		l.PostWeight,
		l.WeightUnit,
		l.Note,
		l.XPEarned,
		l.LoggedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert log: %w", err)
	}

	longest := u.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	updateQuery := `
	UPDATE users
	SET xp_total = xp_total + $2,
		current_streak = $3,
		longest_streak = $4,
		last_log_date = $5,
		updated_at = NOW()
	WHERE id = $1
	`
	_, err = s.db.Exec(ctx, updateQuery, userID, xp, newStreak, longest, today)
	if err != nil {
		return nil, fmt.Errorf("failed to update user totals: %w", err)
	}

	u.XPTotal += xp
	u.CurrentStreak = newStreak
	u.LongestStreak = longest

	newBadges := s.awardEligibleBadges(ctx, u, userID)

	return &movement.CreateLogResponse{
		Log:           l,
		XPEarned:      xp,
		CurrentStreak: newStreak,
		NewBadges:     newBadges,
	}, nil
}

// nextStreak applies the daily streak rules: a log on the day after the last
// one extends the streak, a second log on the same day leaves it unchanged,
// and any longer gap resets it to 1.
func nextStreak(lastLogDate *time.Time, today time.Time, current int) (streak int, firstLogToday bool) {
	if lastLogDate == nil {
		return 1, true
	}

	last := lastLogDate.UTC().Truncate(24 * time.Hour)
	switch {
	case last.Equal(today):
		return current, false
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1, true
	default:
		return 1, true
	}
}

// awardEligibleBadges sweeps the badge catalog and grants any badge the user
// now qualifies for. A failed grant is logged and skipped so one bad row never
// blocks the movement log itself.
func (s *MovementService) awardEligibleBadges(ctx context.Context, u *user.User, userID uuid.UUID) []string {
	logs, err := s.allLogs(ctx, userID)
	if err != nil {
		log.Printf("awardEligibleBadges: Failed to fetch logs for user %s: %v", u.ClerkID, err)
		return []string{}
	}

	held := make(map[uuid.UUID]bool)
	heldRows, err := s.db.Query(ctx, `SELECT badge_id FROM user_badges WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("awardEligibleBadges: Failed to fetch held badges for user %s: %v", u.ClerkID, err)
		return []string{}
	}
	for heldRows.Next() {
		var id uuid.UUID
		if err := heldRows.Scan(&id); err != nil {
			heldRows.Close()
			log.Printf("awardEligibleBadges: Failed to scan badge id: %v", err)
			return []string{}
		}
		held[id] = true
	}
	heldRows.Close()

	catalogRows, err := s.db.Query(ctx, `SELECT id, name, description, icon, criteria_type, criteria_value, created_at FROM badges`)
	if err != nil {
		log.Printf("awardEligibleBadges: Failed to fetch badge catalog: %v", err)
		return []string{}
	}
	defer catalogRows.Close()

	var catalog []*badge.Badge
	for catalogRows.Next() {
		b := &badge.Badge{}
		err := catalogRows.Scan(&b.ID, &b.Name, &b.Description, &b.Icon, &b.CriteriaType, &b.CriteriaValue, &b.CreatedAt)
		if err != nil {
			log.Printf("awardEligibleBadges: Failed to scan badge: %v", err)
			return []string{}
		}
		catalog = append(catalog, b)
	}

	newBadges := []string{}
	for _, b := range catalog {
		if held[b.ID] {
			continue
		}
		if !gamification.CheckBadgeEligibility(u, logs, b) {
			continue
		}

		insertQuery := `
		INSERT INTO user_badges (id, user_id, badge_id, earned_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, badge_id) DO NOTHING
		`
		_, err := s.db.Exec(ctx, insertQuery, uuid.New(), userID, b.ID)
		if err != nil {
			log.Printf("awardEligibleBadges: Failed to grant badge %s to user %s: %v", b.Name, u.ClerkID, err)
			continue
		}
		newBadges = append(newBadges, b.Name)
	}

	return newBadges
}

func (s *MovementService) allLogs(ctx context.Context, userID uuid.UUID) ([]*movement.Log, error) {
	query := `
	SELECT id, user_id, bristol_type, pre_weight, post_weight, weight_unit, note, xp_earned, logged_at
	FROM movement_logs
	WHERE user_id = $1
	ORDER BY logged_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	defer rows.Close()

	var logs []*movement.Log
	for rows.Next() {
		l := &movement.Log{}
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.BristolType,
			&l.PreWeight,
			&l.PostWeight,
			&l.WeightUnit,
			&l.Note,
			&l.XPEarned,
			&l.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return logs, nil
}

func (s *MovementService) GetLogs(ctx context.Context, clerkID string, limit int) ([]*movement.Log, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
	SELECT id, user_id, bristol_type, pre_weight, post_weight, weight_unit, note, xp_earned, logged_at
	FROM movement_logs
	WHERE user_id = $1
	ORDER BY logged_at DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	defer rows.Close()

	logs := []*movement.Log{}
	for rows.Next() {
		l := &movement.Log{}
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.BristolType,
			&l.PreWeight,
			&l.PostWeight,
			&l.WeightUnit,
			&l.Note,
			&l.XPEarned,
			&l.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return logs, nil
}

// DeleteLog removes a log the caller owns. XP and streaks already earned are
// kept; history edits never claw back rewards.
func (s *MovementService) DeleteLog(ctx context.Context, clerkID string, logID uuid.UUID) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	result, err := s.db.Exec(ctx, `DELETE FROM movement_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("log not found")
	}

	return nil
}
