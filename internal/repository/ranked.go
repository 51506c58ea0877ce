package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"league-tracker/internal/db"
	"league-tracker/internal/domain"
)

type RankedRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRankedRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RankedRepository {
	return &RankedRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Upsert keeps exactly one row per (puuid, queue type), updating in place
// when the row already exists.
func (r *RankedRepository) Upsert(ctx context.Context, stat *domain.RankedStat) error {
	err := r.queries.UpsertRankedStat(ctx, db.UpsertRankedStatParams{
		Puuid:        stat.Puuid,
		QueueType:    string(stat.QueueType),
		Tier:         stat.Tier,
		Rank:         stat.Rank,
		LeaguePoints: int64(stat.LeaguePoints),
		Wins:         int64(stat.Wins),
		Losses:       int64(stat.Losses),
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", stat.Puuid).Str("queue", string(stat.QueueType)).Msg("failed to upsert ranked stat")
		return fmt.Errorf("failed to upsert ranked stat: %w", err)
	}
	return nil
}

func (r *RankedRepository) GetByPuuid(ctx context.Context, puuid string) ([]domain.RankedStat, error) {
	stats, err := r.queries.GetRankedStatsByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RankedStat, len(stats))
	for i, s := range stats {
		result[i] = domain.RankedStat{
			Puuid:        s.Puuid,
			QueueType:    domain.QueueType(s.QueueType),
			Tier:         s.Tier,
			Rank:         s.Rank,
			LeaguePoints: int(s.LeaguePoints),
			Wins:         int(s.Wins),
			Losses:       int(s.Losses),
			UpdatedAt:    s.UpdatedAt,
		}
	}
	return result, nil
}
