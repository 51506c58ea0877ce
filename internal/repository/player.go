package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"league-tracker/internal/db"
	"league-tracker/internal/domain"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByPuuid(ctx, puuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) GetByRiotID(ctx context.Context, gameName, tagLine string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByRiotID(ctx, db.GetPlayerByRiotIDParams{
		GameName: gameName,
		TagLine:  tagLine,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	now := time.Now()
	createdAt := player.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	err := r.queries.UpsertPlayer(ctx, db.UpsertPlayerParams{
		Puuid:         player.Puuid,
		GameName:      player.GameName,
		TagLine:       player.TagLine,
		Region:        player.Region,
		SummonerLevel: int64(player.SummonerLevel),
		ProfileIconID: int64(player.ProfileIconID),
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", player.Puuid).Msg("failed to upsert player")
		return fmt.Errorf("failed to upsert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) SetLastSyncAt(ctx context.Context, puuid string, lastSyncAt time.Time) error {
	err := r.queries.UpdatePlayerLastSyncAt(ctx, db.UpdatePlayerLastSyncAtParams{
		LastSyncAt: sql.NullTime{Time: lastSyncAt, Valid: true},
		UpdatedAt:  time.Now(),
		Puuid:      puuid,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to set last sync at")
		return err
	}

	r.logger.Debug().Str("puuid", puuid).Time("last_sync_at", lastSyncAt).Msg("last sync at set")
	return nil
}

func toDomainPlayer(p db.Player) *domain.Player {
	player := &domain.Player{
		Puuid:         p.Puuid,
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		Region:        p.Region,
		SummonerLevel: int(p.SummonerLevel),
		ProfileIconID: int(p.ProfileIconID),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.LastSyncAt.Valid {
		t := p.LastSyncAt.Time
		player.LastSyncAt = &t
	}
	return player
}
