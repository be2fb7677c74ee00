package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bowelBuddiesAPI/internal/gamification"
	"bowelBuddiesAPI/internal/stats"
	"bowelBuddiesAPI/internal/types/calendar"
	"bowelBuddiesAPI/internal/types/friendship"
	"bowelBuddiesAPI/internal/types/leaderboard"
	"bowelBuddiesAPI/internal/types/movement"
	"bowelBuddiesAPI/internal/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	u := &user.User{
		ID:        uuid.New().String(),
		ClerkID:   req.ClerkID,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
	INSERT INTO users (id, clerk_id, email, username, first_name, last_name, image_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, clerk_id, email, username, first_name, last_name, image_url, email_verified, created_at, updated_at
	`

	err := s.db.QueryRow(
		ctx,
		query,
		u.ID,
		u.ClerkID,
		u.Email,
		u.Username,
		u.FirstName,
		u.LastName,
		u.ImageURL,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserService) GetUserByClerkID(ctx context.Context, clerkID string) (*user.User, error) {
	query := `
	SELECT id, clerk_id, email, username, first_name, last_name, image_url, email_verified, is_private, xp_total, current_streak, longest_streak, last_log_date, created_at, updated_at
	FROM users
	WHERE clerk_id = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, clerkID).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.EmailVerified,
		&u.IsPrivate,
		&u.XPTotal,
		&u.CurrentStreak,
		&u.LongestStreak,
		&u.LastLogDate,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateProfileByClerkID(ctx context.Context, clerkID string, req *user.UpdateProfileRequest) (*user.User, error) {
	query := `
	UPDATE users
	SET
		username = COALESCE(NULLIF($2, ''), username),
		first_name = COALESCE(NULLIF($3, ''), first_name),
		last_name = COALESCE(NULLIF($4, ''), last_name),
		image_url = COALESCE(NULLIF($5, ''), image_url),
		is_private = COALESCE($6, is_private),
		updated_at = NOW()
	WHERE clerk_id = $1
	RETURNING id, clerk_id, email, username, first_name, last_name, image_url, email_verified, is_private, xp_total, current_streak, longest_streak, created_at, updated_at
	`

	u := &user.User{}
	err := s.db.QueryRow(
		ctx,
		query,
		clerkID,
		req.Username,
		req.FirstName,
		req.LastName,
		req.ImageURL,
		req.IsPrivate,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.EmailVerified,
		&u.IsPrivate,
		&u.XPTotal,
		&u.CurrentStreak,
		&u.LongestStreak,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (s *UserService) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	query := `DELETE FROM users WHERE clerk_id = $1`

	result, err := s.db.Exec(ctx, query, clerkID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (s *UserService) UpdateEmailVerification(ctx context.Context, clerkID string, verified bool) error {
	query := `
	UPDATE users
	SET email_verified = $2, updated_at = NOW()
	WHERE clerk_id = $1
	`

	_, err := s.db.Exec(ctx, query, clerkID, verified)
	return err
}

func (s *UserService) GetFriends(ctx context.Context, clerkID string) ([]*user.User, error) {
	query := `
    SELECT DISTINCT
        u.id,
        u.clerk_id,
        u.email,
        u.username,
        u.first_name,
        u.last_name,
        u.image_url,
        u.email_verified,
        u.xp_total,
        u.current_streak,
        u.longest_streak,
        u.created_at,
        u.updated_at
    FROM users u
    INNER JOIN friendships f ON (
        (f.user_id = u.id AND f.friend_id = (SELECT id FROM users WHERE clerk_id = $1))
        OR
        (f.friend_id = u.id AND f.user_id = (SELECT id FROM users WHERE clerk_id = $1))
    )
    WHERE f.status = 'accepted'
    AND u.clerk_id != $1
    ORDER BY u.username
    `

	rows, err := s.db.Query(ctx, query, clerkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []*user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.ClerkID,
			&u.Email,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.ImageURL,
			&u.EmailVerified,
			&u.XPTotal,
			&u.CurrentStreak,
			&u.LongestStreak,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		friends = append(friends, &u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return friends, nil
}

func (s *UserService) AddFriend(ctx context.Context, clerkID string, friendClerkID string) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		log.Printf("AddFriend: Failed to find user with clerk_id %s: %v", clerkID, err)
		return fmt.Errorf("user not found")
	}

	var friendID uuid.UUID
	err = s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, friendClerkID).Scan(&friendID)
	if err != nil {
		log.Printf("AddFriend: Failed to find friend with clerk_id %s: %v", friendClerkID, err)
		return fmt.Errorf("friend user not found")
	}

	if userID == friendID {
		log.Printf("AddFriend: User %s attempted to add themselves", clerkID)
		return fmt.Errorf("cannot add yourself as a friend")
	}

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM friendships
			WHERE (user_id = $1 AND friend_id = $2)
			   OR (user_id = $2 AND friend_id = $1)
		)
	`
	err = s.db.QueryRow(ctx, checkQuery, userID, friendID).Scan(&exists)
	if err != nil {
		log.Printf("AddFriend: Failed to check existing friendship: %v", err)
		return fmt.Errorf("failed to check existing friendship")
	}

	if exists {
		log.Printf("AddFriend: Friendship already exists between %s and %s", clerkID, friendClerkID)
		return fmt.Errorf("friendship already exists")
	}

	f := &friendship.Friendship{
		ID:        uuid.New(),
		UserID:    userID,
		FriendID:  friendID,
		Status:    friendship.FriendshipAccepted,
		CreatedAt: time.Now(),
	}

	insertQuery := `
		INSERT INTO friendships (id, user_id, friend_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = s.db.Exec(ctx, insertQuery, f.ID, f.UserID, f.FriendID, f.Status, f.CreatedAt)
	if err != nil {
		log.Printf("AddFriend: Failed to insert friendship: %v", err)
		return fmt.Errorf("failed to create friendship")
	}

	log.Printf("AddFriend: Successfully created friendship between %s and %s", clerkID, friendClerkID)
	return nil
}

func (s *UserService) RemoveFriend(ctx context.Context, clerkID string, friendClerkID string) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		log.Printf("RemoveFriend: Failed to find user with clerk_id %s: %v", clerkID, err)
		return fmt.Errorf("user not found")
	}

	var friendID uuid.UUID
	err = s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, friendClerkID).Scan(&friendID)
	if err != nil {
		log.Printf("RemoveFriend: Failed to find friend with clerk_id %s: %v", friendClerkID, err)
		return fmt.Errorf("friend user not found")
	}

	deleteQuery := `
		DELETE FROM friendships
		WHERE (user_id = $1 AND friend_id = $2)
		   OR (user_id = $2 AND friend_id = $1)
	`

	result, err := s.db.Exec(ctx, deleteQuery, userID, friendID)
	if err != nil {
		log.Printf("RemoveFriend: Failed to delete friendship: %v", err)
		return fmt.Errorf("failed to remove friendship")
	}

	if result.RowsAffected() == 0 {
		log.Printf("RemoveFriend: No friendship found between %s and %s", clerkID, friendClerkID)
		return fmt.Errorf("friendship not found")
	}

	log.Printf("RemoveFriend: Successfully removed friendship between %s and %s", clerkID, friendClerkID)
	return nil
}

func (s *UserService) GetDiscovery(ctx context.Context, clerkID string) ([]*user.User, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT
		u.id,
		u.clerk_id,
		u.email,
		u.username,
		u.first_name,
		u.last_name,
		u.image_url,
		u.email_verified,
		u.xp_total,
		u.current_streak,
		u.longest_streak,
		u.created_at,
		u.updated_at
	FROM users u
	WHERE u.id != $1
		AND u.is_private = false
		AND u.id NOT IN (
			SELECT f.friend_id
			FROM friendships f
			WHERE f.user_id = $1 AND f.status = 'accepted'
			UNION
			SELECT f.user_id
			FROM friendships f
			WHERE f.friend_id = $1 AND f.status = 'accepted'
		)
	ORDER BY RANDOM()
	LIMIT 30
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		err := rows.Scan(
			&u.ID,
			&u.ClerkID,
			&u.Email,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.ImageURL,
			&u.EmailVerified,
			&u.XPTotal,
			&u.CurrentStreak,
			&u.LongestStreak,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if users == nil {
		users = []*user.User{}
	}

	return users, nil
}

func (s *UserService) SearchUsers(ctx context.Context, clerkID string, query string) ([]*user.User, error) {
	cleanQuery := strings.TrimSpace(query)
	searchPattern := "%" + cleanQuery + "%"
	startsWithPattern := cleanQuery + "%"

	sqlQuery := `
	SELECT
		id,
		clerk_id,
		email,
		username,
		first_name,
		last_name,
		image_url,
		email_verified,
		xp_total,
		current_streak,
		longest_streak,
		created_at,
		updated_at
	FROM (
		SELECT
			*,
			GREATEST(
				CASE
					WHEN LOWER(username) = LOWER($2) THEN 100
					WHEN LOWER(email) = LOWER($2) THEN 100
					WHEN LOWER(first_name) = LOWER($2) THEN 95
					WHEN LOWER(last_name) = LOWER($2) THEN 95
					ELSE 0
				END,
				CASE
					WHEN LOWER(username) LIKE LOWER($3) THEN 90
					WHEN LOWER(first_name) LIKE LOWER($3) THEN 85
					WHEN LOWER(last_name) LIKE LOWER($3) THEN 85
					ELSE 0
				END,
				CASE
					WHEN LOWER(username) LIKE LOWER($1) THEN 70
					WHEN LOWER(first_name) LIKE LOWER($1) THEN 60
					WHEN LOWER(last_name) LIKE LOWER($1) THEN 60
					WHEN LOWER(email) LIKE LOWER($1) THEN 50
					ELSE 0
				END
			) AS similarity_score
		FROM users
		WHERE
			(
				username ILIKE $1 OR
				email ILIKE $1 OR
				first_name ILIKE $1 OR
				last_name ILIKE $1
			)
			AND clerk_id != $4
	) AS scored_users
	WHERE similarity_score >= 30
	ORDER BY
		similarity_score DESC,
		username
	LIMIT 50
	`

	rows, err := s.db.Query(ctx, sqlQuery, searchPattern, cleanQuery, startsWithPattern, clerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		err := rows.Scan(
			&u.ID,
			&u.ClerkID,
			&u.Email,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.ImageURL,
			&u.EmailVerified,
			&u.XPTotal,
			&u.CurrentStreak,
			&u.LongestStreak,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if users == nil {
		users = []*user.User{}
	}

	return users, nil
}

// GetGlobalLeaderboard returns the top users by lifetime XP. created_at
// breaks score ties so the read order, and with it the positional ranks, are
// deterministic across requests.
func (s *UserService) GetGlobalLeaderboard(ctx context.Context, clerkID string) (*leaderboard.Leaderboard, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT
		u.id AS user_id,
		u.username,
		u.image_url,
		u.xp_total,
		u.current_streak
	FROM users u
	ORDER BY u.xp_total DESC, u.created_at ASC
	LIMIT 50
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer rows.Close()

	entries, err := scanLeaderboardEntries(rows)
	if err != nil {
		return nil, err
	}

	return buildLeaderboard(entries, userID), nil
}

// GetFriendsLeaderboard ranks the caller and their accepted friends by XP.
func (s *UserService) GetFriendsLeaderboard(ctx context.Context, clerkID string) (*leaderboard.Leaderboard, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT
		u.id AS user_id,
		u.username,
		u.image_url,
		u.xp_total,
		u.current_streak
	FROM users u
	WHERE u.id = $1
		OR u.id IN (
			SELECT f.friend_id FROM friendships f
			WHERE f.user_id = $1 AND f.status = 'accepted'
			UNION
			SELECT f.user_id FROM friendships f
			WHERE f.friend_id = $1 AND f.status = 'accepted'
		)
	ORDER BY u.xp_total DESC, u.created_at ASC
	LIMIT 50
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	defer rows.Close()

	entries, err := scanLeaderboardEntries(rows)
	if err != nil {
		return nil, err
	}

	return buildLeaderboard(entries, userID), nil
}

func scanLeaderboardEntries(rows pgx.Rows) ([]*leaderboard.Entry, error) {
	var entries []*leaderboard.Entry
	for rows.Next() {
		entry := &leaderboard.Entry{}
		err := rows.Scan(
			&entry.UserID,
			&entry.Username,
			&entry.ImageURL,
			&entry.Points,
			&entry.CurrentStreak,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func buildLeaderboard(entries []*leaderboard.Entry, userID uuid.UUID) *leaderboard.Leaderboard {
	gamification.RankEntries(entries)

	var userPosition *leaderboard.Entry
	for _, entry := range entries {
		if entry.UserID == userID {
			userPosition = entry
			break
		}
	}

	return &leaderboard.Leaderboard{
		Entries:      entries,
		Podium:       gamification.Podium(entries),
		UserPosition: userPosition,
		TotalUsers:   len(entries),
	}
}

func (s *UserService) GetUserStats(ctx context.Context, clerkID string) (*stats.UserStats, error) {
	u, err := s.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	query := `
	SELECT
		COALESCE(COUNT(*) FILTER (WHERE ml.logged_at::date = CURRENT_DATE), 0) > 0 AS today_logged,
		COALESCE(COUNT(*) FILTER (WHERE ml.logged_at >= DATE_TRUNC('week', CURRENT_DATE)), 0) AS logs_this_week,
		COALESCE(COUNT(*) FILTER (WHERE ml.logged_at >= DATE_TRUNC('month', CURRENT_DATE)), 0) AS logs_this_month,
		COUNT(ml.id) AS total_logs,
		(SELECT COUNT(*) FROM user_badges ub WHERE ub.user_id = $1) AS badges_count,
		(SELECT COUNT(*) FROM friendships f WHERE (f.user_id = $1 OR f.friend_id = $1) AND f.status = 'accepted') AS friends_count
	FROM movement_logs ml
	WHERE ml.user_id = $1
	`

	st := &stats.UserStats{}
	err = s.db.QueryRow(ctx, query, userID).Scan(
		&st.TodayLogged,
		&st.LogsThisWeek,
		&st.LogsThisMonth,
		&st.TotalLogs,
		&st.BadgesCount,
		&st.FriendsCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	rankQuery := `
	SELECT COUNT(*) + 1
	FROM users u2, users me
	WHERE me.id = $1
		AND (u2.xp_total > me.xp_total
			OR (u2.xp_total = me.xp_total AND u2.created_at < me.created_at))
	`
	if err := s.db.QueryRow(ctx, rankQuery, userID).Scan(&st.Rank); err != nil {
		return nil, fmt.Errorf("failed to calculate rank: %w", err)
	}

	recent, err := s.recentLogs(ctx, userID, 50)
	if err != nil {
		return nil, err
	}

	st.CurrentStreak = u.CurrentStreak
	st.LongestStreak = u.LongestStreak
	st.XPTotal = u.XPTotal
	st.Level = gamification.CalculateLevel(u.XPTotal)
	st.LevelTitle = gamification.LevelTitle(st.Level)
	st.XPProgress = gamification.XPProgress(u.XPTotal)
	st.NextLevelXP = gamification.XPForNextLevel(u.XPTotal)
	st.StreakBonus = gamification.StreakBonus(u.CurrentStreak)
	st.FormattedXP = gamification.FormatPoints(u.XPTotal)
	st.WeightLost = gamification.WeightLost(recent)
	st.HealthStatus = gamification.HealthStatus(recent)
	st.ConsistencyBreakdown = gamification.ConsistencyBreakdown(recent)

	return st, nil
}

func (s *UserService) recentLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*movement.Log, error) {
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

func (s *UserService) GetCalendar(ctx context.Context, clerkID string, year int, month int) (*calendar.CalendarResponse, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	query := `
	SELECT logged_at::date AS date, COUNT(*) AS log_count
	FROM movement_logs
	WHERE user_id = $1
		AND logged_at::date >= $2
		AND logged_at::date <= $3
	GROUP BY logged_at::date
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts[date.Format("2006-01-02")] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	var days []*calendar.CalendarDay
	today := time.Now().UTC().Format("2006-01-02")

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		days = append(days, &calendar.CalendarDay{
			Date:     d,
			Logged:   counts[dateStr] > 0,
			LogCount: counts[dateStr],
			IsToday:  dateStr == today,
		})
	}

	return &calendar.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}
