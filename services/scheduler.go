package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartLifecycleScheduler runs the challenge status sweep in the background.
// One pass runs immediately at startup so restarts never leave stale
// statuses until the first tick.
func (s *ChallengeService) StartLifecycleScheduler() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.UpdateChallengeStatuses(ctx); err != nil {
			log.Printf("[Scheduler] Challenge status sweep failed: %v", err)
		}
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(task),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	log.Println("Challenge lifecycle scheduler started")

	return sched, nil
}
