package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"league-tracker/internal/db"
	"league-tracker/internal/domain"
)

type SyncJobRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSyncJobRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SyncJobRepository {
	return &SyncJobRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SyncJobRepository) Create(ctx context.Context, job *domain.SyncJob) error {
	if job.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		job.ID = id
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	err := r.queries.CreateSyncJob(ctx, db.CreateSyncJobParams{
		ID:        job.ID,
		Puuid:     job.Puuid,
		JobType:   string(job.JobType),
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", job.Puuid).Msg("failed to create sync job")
		return fmt.Errorf("failed to create sync job: %w", err)
	}
	return nil
}

func (r *SyncJobRepository) GetByID(ctx context.Context, id string) (*domain.SyncJob, error) {
	job, err := r.queries.GetSyncJobByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainJob(job), nil
}

// GetActiveForPuuid returns the pending or processing job for a player, or
// nil when there is none. This backs the duplicate-suppression guard.
func (r *SyncJobRepository) GetActiveForPuuid(ctx context.Context, puuid string) (*domain.SyncJob, error) {
	job, err := r.queries.GetActiveSyncJobForPuuid(ctx, puuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainJob(job), nil
}

func (r *SyncJobRepository) GetOldestPending(ctx context.Context) (*domain.SyncJob, error) {
	job, err := r.queries.GetOldestPendingJob(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainJob(job), nil
}

// MarkProcessing performs the pending -> processing transition as a
// conditional update guarded on the current status. Returns false when the
// job was not pending anymore, i.e. another claimer won the race.
func (r *SyncJobRepository) MarkProcessing(ctx context.Context, id string, startedAt time.Time) (bool, error) {
	affected, err := r.queries.MarkJobProcessing(ctx, db.MarkJobProcessingParams{
		StartedAt: sql.NullTime{Time: startedAt, Valid: true},
		ID:        id,
	})
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *SyncJobRepository) Finish(ctx context.Context, id string, status domain.JobStatus, matchesProcessed int, errorMessage string, completedAt time.Time) error {
	err := r.queries.FinishSyncJob(ctx, db.FinishSyncJobParams{
		Status:           string(status),
		MatchesProcessed: int64(matchesProcessed),
		ErrorMessage:     sql.NullString{String: errorMessage, Valid: errorMessage != ""},
		CompletedAt:      sql.NullTime{Time: completedAt, Valid: true},
		ID:               id,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("job_id", id).Msg("failed to finish sync job")
		return fmt.Errorf("failed to finish sync job: %w", err)
	}
	return nil
}

func (r *SyncJobRepository) Counts(ctx context.Context) (*domain.SyncStatus, error) {
	counts, err := r.queries.CountSyncJobsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	status := &domain.SyncStatus{
		Pending:    int(counts.Pending.Int64),
		Processing: int(counts.Processing.Int64),
		Completed:  int(counts.Completed.Int64),
		Failed:     int(counts.Failed.Int64),
	}

	lastCompleted, err := r.queries.GetLastCompletedAt(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if lastCompleted.Valid {
		t := lastCompleted.Time
		status.LastCompletedAt = &t
	}
	return status, nil
}

// FailStale marks processing jobs started before the cutoff as failed. Used
// by the startup reaper for jobs abandoned by a killed process.
func (r *SyncJobRepository) FailStale(ctx context.Context, cutoff time.Time, errorMessage string) (int64, error) {
	return r.queries.FailStaleProcessingJobs(ctx, db.FailStaleProcessingJobsParams{
		ErrorMessage: sql.NullString{String: errorMessage, Valid: true},
		CompletedAt:  sql.NullTime{Time: time.Now(), Valid: true},
		StartedAt:    sql.NullTime{Time: cutoff, Valid: true},
	})
}

func (r *SyncJobRepository) ListRecent(ctx context.Context, limit int) ([]domain.SyncJob, error) {
	jobs, err := r.queries.ListRecentSyncJobs(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	result := make([]domain.SyncJob, len(jobs))
	for i, j := range jobs {
		result[i] = *toDomainJob(j)
	}
	return result, nil
}

func toDomainJob(j db.SyncJob) *domain.SyncJob {
	job := &domain.SyncJob{
		ID:               j.ID,
		Puuid:            j.Puuid,
		JobType:          domain.JobType(j.JobType),
		Status:           domain.JobStatus(j.Status),
		MatchesProcessed: int(j.MatchesProcessed),
		CreatedAt:        j.CreatedAt,
	}
	if j.ErrorMessage.Valid {
		job.ErrorMessage = j.ErrorMessage.String
	}
	if j.StartedAt.Valid {
		t := j.StartedAt.Time
		job.StartedAt = &t
	}
	if j.CompletedAt.Valid {
		t := j.CompletedAt.Time
		job.CompletedAt = &t
	}
	return job
}
