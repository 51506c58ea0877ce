package sync

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"league-tracker/internal/config"
)

// Scheduler enqueues a full sync for every linked player on a cron schedule.
// It only feeds the queue; the poller does the actual work.
type Scheduler struct {
	cron   *cron.Cron
	orch   *Orchestrator
	cfg    *config.Config
	logger zerolog.Logger
}

func NewScheduler(orch *Orchestrator, cfg *config.Config, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		orch:   orch,
		cfg:    cfg,
		logger: logger.With().Str("component", "scheduler").Logger(),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.SyncSchedule, s.enqueueAll)
	if err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", s.cfg.SyncSchedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", s.cfg.SyncSchedule).Msg("sync scheduler started")
	return nil
}

func (s *Scheduler) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.logger.Info().Msg("sync scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) enqueueAll() {
	created, err := s.orch.EnqueueAll(context.Background())
	if err != nil {
		s.logger.Error().Err(err).Msg("scheduled enqueue failed")
		return
	}
	s.logger.Info().Int("created", len(created)).Msg("scheduled sync enqueued")
}
