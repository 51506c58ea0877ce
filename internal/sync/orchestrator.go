package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"league-tracker/internal/config"
	"league-tracker/internal/domain"
	"league-tracker/internal/metrics"
	"league-tracker/internal/riot"
)

// RiotAPI is the slice of the Riot client the orchestrator consumes. The
// client paces itself; the orchestrator never sleeps between calls.
type RiotAPI interface {
	GetLeagueEntries(ctx context.Context, platform, puuid string) ([]riot.LeagueEntry, error)
	GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, platform, matchID string) (*riot.Match, error)
}

type PlayerStore interface {
	Get(ctx context.Context, puuid string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	SetLastSyncAt(ctx context.Context, puuid string, lastSyncAt time.Time) error
}

type RankedStore interface {
	Upsert(ctx context.Context, stat *domain.RankedStat) error
}

type MatchStore interface {
	Exists(ctx context.Context, matchID string) (bool, error)
	InsertWithParticipants(ctx context.Context, match *domain.Match, participants []domain.MatchParticipant) error
}

type JobStore interface {
	Create(ctx context.Context, job *domain.SyncJob) error
	GetByID(ctx context.Context, id string) (*domain.SyncJob, error)
	GetActiveForPuuid(ctx context.Context, puuid string) (*domain.SyncJob, error)
	GetOldestPending(ctx context.Context) (*domain.SyncJob, error)
	MarkProcessing(ctx context.Context, id string, startedAt time.Time) (bool, error)
	Finish(ctx context.Context, id string, status domain.JobStatus, matchesProcessed int, errorMessage string, completedAt time.Time) error
	Counts(ctx context.Context) (*domain.SyncStatus, error)
	FailStale(ctx context.Context, cutoff time.Time, errorMessage string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SyncJob, error)
}

// Orchestrator turns pending sync jobs into persisted ranked stats and match
// history. It owns every sync_jobs mutation; no other component writes that
// table.
type Orchestrator struct {
	cfg     *config.Config
	riot    RiotAPI
	players PlayerStore
	ranked  RankedStore
	matches MatchStore
	jobs    JobStore
	metrics *metrics.Collector
	logger  zerolog.Logger
}

func NewOrchestrator(
	cfg *config.Config,
	riotAPI RiotAPI,
	players PlayerStore,
	ranked RankedStore,
	matches MatchStore,
	jobs JobStore,
	collector *metrics.Collector,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		riot:    riotAPI,
		players: players,
		ranked:  ranked,
		matches: matches,
		jobs:    jobs,
		metrics: collector,
		logger:  logger.With().Str("component", "orchestrator").Logger(),
	}
}

// EnqueueJob creates a pending full-sync job for a linked player. When a
// pending or processing job already exists for the puuid, that job is
// returned instead of creating a duplicate.
func (o *Orchestrator) EnqueueJob(ctx context.Context, puuid string) (*domain.SyncJob, error) {
	job, _, err := o.enqueue(ctx, puuid)
	return job, err
}

func (o *Orchestrator) enqueue(ctx context.Context, puuid string) (*domain.SyncJob, bool, error) {
	if _, err := o.players.Get(ctx, puuid); err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, false, domain.ErrNotLinked
		}
		return nil, false, err
	}

	existing, err := o.jobs.GetActiveForPuuid(ctx, puuid)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		o.logger.Debug().
			Str("puuid", puuid).
			Str("job_id", existing.ID).
			Str("status", string(existing.Status)).
			Msg("sync job already queued, suppressing duplicate")
		return existing, false, nil
	}

	job := &domain.SyncJob{
		Puuid:   puuid,
		JobType: domain.JobTypeFullSync,
		Status:  domain.JobStatusPending,
	}
	if err := o.jobs.Create(ctx, job); err != nil {
		return nil, false, err
	}

	o.metrics.RecordEnqueue()
	o.logger.Info().Str("puuid", puuid).Str("job_id", job.ID).Msg("sync job enqueued")
	return job, true, nil
}

// EnqueueAll creates jobs for every linked player, with the same per-player
// duplicate guard as EnqueueJob. Returns only the jobs actually created.
func (o *Orchestrator) EnqueueAll(ctx context.Context) ([]domain.SyncJob, error) {
	players, err := o.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	var created []domain.SyncJob
	for _, p := range players {
		job, isNew, err := o.enqueue(ctx, p.Puuid)
		if err != nil {
			o.logger.Warn().Err(err).Str("puuid", p.Puuid).Msg("failed to enqueue sync job")
			continue
		}
		if isNew {
			created = append(created, *job)
		}
	}

	o.logger.Info().Int("players", len(players)).Int("created", len(created)).Msg("batch enqueue finished")
	return created, nil
}

// ClaimNext dequeues the oldest pending job and transitions it to
// processing. The transition is a conditional update on the current status,
// so concurrent claimers get each job at most once. Returns nil when the
// queue is empty.
func (o *Orchestrator) ClaimNext(ctx context.Context) (*domain.SyncJob, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		job, err := o.jobs.GetOldestPending(ctx)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, nil
		}

		now := time.Now()
		claimed, err := o.jobs.MarkProcessing(ctx, job.ID, now)
		if err != nil {
			return nil, err
		}
		if !claimed {
			// Lost the race for this job; try the next oldest.
			continue
		}

		job.Status = domain.JobStatusProcessing
		job.StartedAt = &now
		o.logger.Info().Str("job_id", job.ID).Str("puuid", job.Puuid).Msg("sync job claimed")
		return job, nil
	}
}

// Process runs the fetch-and-upsert sequence for one claimed job and always
// leaves it completed or failed, except on shutdown: a cancelled context
// aborts mid-job and leaves the row processing for the startup reaper.
func (o *Orchestrator) Process(ctx context.Context, job *domain.SyncJob) {
	start := time.Now()
	logger := o.logger.With().Str("job_id", job.ID).Str("puuid", job.Puuid).Logger()

	player, err := o.players.Get(ctx, job.Puuid)
	if err != nil {
		o.fail(ctx, job, 0, fmt.Errorf("failed to resolve player: %w", err), logger)
		return
	}

	if err := o.syncRankedStats(ctx, player, logger); err != nil {
		o.fail(ctx, job, 0, err, logger)
		return
	}

	processed, err := o.syncMatches(ctx, player, logger)
	if err != nil {
		o.fail(ctx, job, processed, err, logger)
		return
	}
	if ctx.Err() != nil {
		logger.Warn().Msg("shutdown during sync, job left processing")
		return
	}

	now := time.Now()
	if err := o.players.SetLastSyncAt(ctx, player.Puuid, now); err != nil {
		o.fail(ctx, job, processed, fmt.Errorf("failed to set last sync at: %w", err), logger)
		return
	}

	if err := o.jobs.Finish(ctx, job.ID, domain.JobStatusCompleted, processed, "", now); err != nil {
		logger.Error().Err(err).Msg("failed to mark job completed")
		return
	}

	o.metrics.RecordCompleted(time.Since(start).Seconds())
	logger.Info().
		Int("matches_processed", processed).
		Dur("duration", time.Since(start)).
		Msg("sync job completed")
}

// syncRankedStats upserts one row per ranked queue. A fetch failure is not
// an error: the queue entries simply are not updated this run. Persistence
// failures propagate and fail the job.
func (o *Orchestrator) syncRankedStats(ctx context.Context, player *domain.Player, logger zerolog.Logger) error {
	entries, err := o.riot.GetLeagueEntries(ctx, player.Region, player.Puuid)
	if err != nil {
		o.metrics.RecordRiotRequest("error")
		logger.Warn().Err(err).Msg("failed to fetch ranked entries, skipping")
		return nil
	}
	o.metrics.RecordRiotRequest("ok")

	for _, entry := range entries {
		queue, ok := queueTypeFor(entry.QueueType)
		if !ok {
			logger.Debug().Str("queue_type", entry.QueueType).Msg("unhandled queue type, skipping")
			continue
		}

		stat := &domain.RankedStat{
			Puuid:        player.Puuid,
			QueueType:    queue,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
		}
		if err := o.ranked.Upsert(ctx, stat); err != nil {
			return fmt.Errorf("failed to upsert ranked stat: %w", err)
		}

		logger.Debug().
			Str("queue", string(queue)).
			Str("tier", entry.Tier).
			Str("rank", entry.Rank).
			Int("lp", entry.LeaguePoints).
			Msg("ranked stat upserted")
	}

	return nil
}

// syncMatches fetches the recent match ID list and stores every match not
// already present. A failed match-detail fetch skips that one match; stored
// matches are never re-fetched.
func (o *Orchestrator) syncMatches(ctx context.Context, player *domain.Player, logger zerolog.Logger) (int, error) {
	matchIDs, err := o.riot.GetMatchIDs(ctx, player.Region, player.Puuid, o.cfg.MatchSyncCount)
	if err != nil {
		o.metrics.RecordRiotRequest("error")
		logger.Warn().Err(err).Msg("failed to fetch match IDs, skipping match sync")
		return 0, nil
	}
	o.metrics.RecordRiotRequest("ok")

	processed := 0
	for _, matchID := range matchIDs {
		if ctx.Err() != nil {
			return processed, nil
		}

		exists, err := o.matches.Exists(ctx, matchID)
		if err != nil {
			return processed, fmt.Errorf("failed to check match %s: %w", matchID, err)
		}
		if exists {
			o.metrics.RecordMatchSkipped()
			logger.Debug().Str("match_id", matchID).Msg("match already stored, skipping")
			continue
		}

		detail, err := o.riot.GetMatch(ctx, player.Region, matchID)
		if err != nil {
			o.metrics.RecordRiotRequest("error")
			logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to fetch match detail, skipping")
			continue
		}
		o.metrics.RecordRiotRequest("ok")

		match, participants := toDomainMatch(detail)
		if err := o.matches.InsertWithParticipants(ctx, match, participants); err != nil {
			return processed, fmt.Errorf("failed to store match %s: %w", matchID, err)
		}

		processed++
		o.metrics.RecordMatchStored()
		logger.Debug().Str("match_id", matchID).Int("participants", len(participants)).Msg("match stored")
	}

	return processed, nil
}

func (o *Orchestrator) fail(ctx context.Context, job *domain.SyncJob, processed int, cause error, logger zerolog.Logger) {
	if err := o.jobs.Finish(ctx, job.ID, domain.JobStatusFailed, processed, cause.Error(), time.Now()); err != nil {
		logger.Error().Err(err).Msg("failed to mark job failed")
		return
	}
	o.metrics.RecordFailed()
	logger.Error().Err(cause).Msg("sync job failed")
}

// Snapshot returns the aggregate job counts for status reporting.
func (o *Orchestrator) Snapshot(ctx context.Context) (*domain.SyncStatus, error) {
	status, err := o.jobs.Counts(ctx)
	if err != nil {
		return nil, err
	}
	o.metrics.SetPendingJobs(status.Pending)
	return status, nil
}

// GetJob returns one job by ID for status polling.
func (o *Orchestrator) GetJob(ctx context.Context, id string) (*domain.SyncJob, error) {
	return o.jobs.GetByID(ctx, id)
}

// RecentJobs returns the newest jobs for admin reporting.
func (o *Orchestrator) RecentJobs(ctx context.Context, limit int) ([]domain.SyncJob, error) {
	return o.jobs.ListRecent(ctx, limit)
}

// RecoverStaleJobs fails processing jobs abandoned by a previous run. Called
// once at poller startup.
func (o *Orchestrator) RecoverStaleJobs(ctx context.Context) error {
	cutoff := time.Now().Add(-o.cfg.StaleJobTimeout)
	n, err := o.jobs.FailStale(ctx, cutoff, "abandoned: job was processing past the stale timeout")
	if err != nil {
		return fmt.Errorf("failed to recover stale jobs: %w", err)
	}
	if n > 0 {
		o.logger.Warn().Int64("count", n).Msg("stale processing jobs marked failed")
	}
	return nil
}

func queueTypeFor(riotQueue string) (domain.QueueType, bool) {
	switch riotQueue {
	case riot.QueueRankedSolo:
		return domain.QueueSolo, true
	case riot.QueueRankedFlex:
		return domain.QueueFlex, true
	default:
		return "", false
	}
}

func toDomainMatch(m *riot.Match) (*domain.Match, []domain.MatchParticipant) {
	match := &domain.Match{
		MatchID:      m.Metadata.MatchID,
		GameCreation: m.Info.GameCreation,
		GameDuration: m.Info.GameDuration,
		GameMode:     m.Info.GameMode,
		QueueID:      m.Info.QueueID,
		PlatformID:   m.Info.PlatformID,
		GameVersion:  m.Info.GameVersion,
	}

	participants := make([]domain.MatchParticipant, len(m.Info.Participants))
	for i, p := range m.Info.Participants {
		participants[i] = domain.MatchParticipant{
			MatchID:      m.Metadata.MatchID,
			Puuid:        p.Puuid,
			SummonerName: p.Name(),
			ChampionID:   p.ChampionID,
			ChampionName: p.ChampionName,
			TeamID:       p.TeamID,
			TeamPosition: p.TeamPosition,
			Win:          p.Win,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
			TotalMinions: p.TotalMinionsKilled + p.NeutralMinionsKilled,
			GoldEarned:   p.GoldEarned,
			DamageDealt:  p.TotalDamageDealtToChampions,
			VisionScore:  p.VisionScore,
			Item0:        p.Item0,
			Item1:        p.Item1,
			Item2:        p.Item2,
			Item3:        p.Item3,
			Item4:        p.Item4,
			Item5:        p.Item5,
			Item6:        p.Item6,
			Spell1:       p.Summoner1ID,
			Spell2:       p.Summoner2ID,
			PrimaryStyle: p.Perks.StyleFor("primaryStyle"),
			SubStyle:     p.Perks.StyleFor("subStyle"),
		}
	}

	return match, participants
}
