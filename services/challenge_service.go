package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bowelBuddiesAPI/internal/gamification"
	"bowelBuddiesAPI/internal/types/challenge"
	"bowelBuddiesAPI/internal/types/movement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChallengeService struct {
	db *pgxpool.Pool
}

func NewChallengeService(db *pgxpool.Pool) *ChallengeService {
	return &ChallengeService{db: db}
}

// GetChallenges returns every challenge the caller created or was invited to,
// with participant progress recomputed from log history on each read.
func (s *ChallengeService) GetChallenges(ctx context.Context, clerkID string) ([]*challenge.ChallengeWithParticipants, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT DISTINCT c.id, c.creator_id, c.title, c.challenge_type, c.start_date, c.end_date, c.status, c.created_at
	FROM challenges c
	LEFT JOIN challenge_participants cp ON cp.challenge_id = c.id
	WHERE c.creator_id = $1 OR cp.user_id = $1
	ORDER BY c.created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*challenge.ChallengeWithParticipants
	for rows.Next() {
		c := &challenge.ChallengeWithParticipants{}
		err := rows.Scan(
			&c.ID,
			&c.CreatorID,
			&c.Title,
			&c.ChallengeType,
			&c.StartDate,
			&c.EndDate,
			&c.Status,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	for _, c := range challenges {
		participants, err := s.loadParticipants(ctx, c)
		if err != nil {
			return nil, err
		}
		c.Participants = participants
	}

	if challenges == nil {
		challenges = []*challenge.ChallengeWithParticipants{}
	}

	return challenges, nil
}

// loadParticipants fetches every participant of a challenge, scores the
// accepted ones and ranks them. Invited and declined participants are
// appended after the ranked block with zero progress.
func (s *ChallengeService) loadParticipants(ctx context.Context, c *challenge.ChallengeWithParticipants) ([]*challenge.Participant, error) {
	query := `
	SELECT cp.id, cp.user_id, u.username, COALESCE(u.image_url, ''), cp.status, cp.joined_at
	FROM challenge_participants cp
	INNER JOIN users u ON u.id = cp.user_id
	WHERE cp.challenge_id = $1
	ORDER BY cp.joined_at ASC
	`

	rows, err := s.db.Query(ctx, query, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}
	defer rows.Close()

	var all []*challenge.Participant
	for rows.Next() {
		p := &challenge.Participant{}
		err := rows.Scan(&p.ID, &p.UserID, &p.UserName, &p.AvatarURL, &p.Status, &p.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		all = append(all, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	for _, p := range all {
		if p.Status != challenge.ParticipantAccepted {
			continue
		}
		logs, err := s.participantLogs(ctx, p.UserID, c.StartDate, c.EndDate)
		if err != nil {
			log.Printf("loadParticipants: Failed to fetch logs for participant %s: %v", p.UserID, err)
			continue
		}
		p.Progress = gamification.ChallengeProgress(c.ChallengeType, logs, c.StartDate, c.EndDate)
	}

	ranked := gamification.RankParticipants(all)
	for _, p := range all {
		if p.Status != challenge.ParticipantAccepted {
			ranked = append(ranked, p)
		}
	}

	return ranked, nil
}

func (s *ChallengeService) participantLogs(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*movement.Log, error) {
	windowStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)

	query := `
	SELECT id, user_id, bristol_type, pre_weight, post_weight, weight_unit, note, xp_earned, logged_at
	FROM movement_logs
	WHERE user_id = $1
		AND logged_at >= $2
		AND logged_at <= $3
	ORDER BY logged_at ASC
	`

	rows, err := s.db.Query(ctx, query, userID, windowStart, windowEnd)
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

func (s *ChallengeService) CreateChallenge(ctx context.Context, clerkID string, req *challenge.CreateChallengeRequest) (*challenge.Challenge, error) {
	var creatorID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&creatorID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	ctype := challenge.ChallengeType(req.ChallengeType)
	switch ctype {
	case challenge.TypeMostLogs, challenge.TypeLongestStreak, challenge.TypeMostWeightLost:
	default:
		return nil, fmt.Errorf("unknown challenge type: %s", req.ChallengeType)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}

	status := challenge.StatusPending
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !startDate.After(today) {
		status = challenge.StatusActive
	}

	c := &challenge.Challenge{
		ID:            uuid.New(),
		CreatorID:     creatorID,
		Title:         req.Title,
		ChallengeType: ctype,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	insertQuery := `
	INSERT INTO challenges (id, creator_id, title, challenge_type, start_date, end_date, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.Exec(ctx, insertQuery, c.ID, c.CreatorID, c.Title, c.ChallengeType, c.StartDate, c.EndDate, c.Status, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	participantQuery := `
	INSERT INTO challenge_participants (id, challenge_id, user_id, status, joined_at)
	VALUES ($1, $2, $3, $4, NOW())
	`

	// The creator joins their own challenge immediately.
	_, err = s.db.Exec(ctx, participantQuery, uuid.New(), c.ID, creatorID, challenge.ParticipantAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to add creator as participant: %w", err)
	}

	for _, friendID := range req.FriendIDs {
		fid, err := uuid.Parse(friendID)
		if err != nil {
			log.Printf("CreateChallenge: Skipping invalid friend id %s: %v", friendID, err)
			continue
		}
		if fid == creatorID {
			continue
		}
		_, err = s.db.Exec(ctx, participantQuery, uuid.New(), c.ID, fid, challenge.ParticipantInvited)
		if err != nil {
			log.Printf("CreateChallenge: Failed to invite friend %s: %v", friendID, err)
		}
	}

	return c, nil
}

func (s *ChallengeService) RespondToInvite(ctx context.Context, clerkID string, challengeID uuid.UUID, accept bool) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if _, err := s.GetChallengeByID(ctx, challengeID); err != nil {
		return err
	}

	status := challenge.ParticipantDeclined
	if accept {
		status = challenge.ParticipantAccepted
	}

	query := `
	UPDATE challenge_participants
	SET status = $3
	WHERE challenge_id = $1 AND user_id = $2 AND status = 'invited'
	`

	result, err := s.db.Exec(ctx, query, challengeID, userID, status)
	if err != nil {
		return fmt.Errorf("failed to respond to invite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("invite not found")
	}

	return nil
}

// UpdateChallengeStatuses advances challenge lifecycles against today's date:
// pending challenges whose window has opened become active, active ones whose
// window has closed become completed. Run periodically by the scheduler.
func (s *ChallengeService) UpdateChallengeStatuses(ctx context.Context) error {
	activated, err := s.db.Exec(ctx, `
		UPDATE challenges
		SET status = 'active'
		WHERE status = 'pending' AND start_date <= CURRENT_DATE
	`)
	if err != nil {
		return fmt.Errorf("failed to activate challenges: %w", err)
	}

	completed, err := s.db.Exec(ctx, `
		UPDATE challenges
		SET status = 'completed'
		WHERE status = 'active' AND end_date < CURRENT_DATE
	`)
	if err != nil {
		return fmt.Errorf("failed to complete challenges: %w", err)
	}

	if activated.RowsAffected() > 0 || completed.RowsAffected() > 0 {
		log.Printf("UpdateChallengeStatuses: activated %d, completed %d", activated.RowsAffected(), completed.RowsAffected())
	}

	return nil
}

func (s *ChallengeService) GetChallengeByID(ctx context.Context, challengeID uuid.UUID) (*challenge.Challenge, error) {
	query := `
	SELECT id, creator_id, title, challenge_type, start_date, end_date, status, created_at
	FROM challenges
	WHERE id = $1
	`

	c := &challenge.Challenge{}
	err := s.db.QueryRow(ctx, query, challengeID).Scan(
		&c.ID,
		&c.CreatorID,
		&c.Title,
		&c.ChallengeType,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("challenge not found")
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return c, nil
}
