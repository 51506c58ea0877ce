package sync

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"league-tracker/internal/config"
)

// Poller drives the job queue from a single background goroutine: claim the
// oldest pending job, process it, short pause, repeat. An empty queue backs
// off to the idle interval. Sequential on purpose, so match history lands in
// chronological job order and the rate limiter is never fought over.
type Poller struct {
	orch   *Orchestrator
	cfg    *config.Config
	logger zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(orch *Orchestrator, cfg *config.Config, logger zerolog.Logger) *Poller {
	return &Poller{
		orch:   orch,
		cfg:    cfg,
		logger: logger.With().Str("component", "poller").Logger(),
		done:   make(chan struct{}),
	}
}

// Start recovers jobs abandoned by a previous run, then launches the poll
// loop. The loop runs on its own context so it outlives the fx start hook.
func (p *Poller) Start(ctx context.Context) error {
	if err := p.orch.RecoverStaleJobs(ctx); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.run(loopCtx)

	p.logger.Info().
		Dur("idle_interval", p.cfg.IdleInterval).
		Dur("inter_job_interval", p.cfg.InterJobInterval).
		Msg("sync poller started")
	return nil
}

// Stop cancels the loop and waits for the in-flight job to yield, up to the
// stop context's deadline.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	select {
	case <-p.done:
		p.logger.Info().Msg("sync poller stopped")
		return nil
	case <-ctx.Done():
		p.logger.Warn().Msg("sync poller did not stop in time")
		return ctx.Err()
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	for {
		wait := p.cfg.IdleInterval

		job, err := p.orch.ClaimNext(ctx)
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			p.logger.Error().Err(err).Msg("failed to claim next job")
		case job != nil:
			p.orch.Process(ctx, job)
			wait = p.cfg.InterJobInterval
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}
