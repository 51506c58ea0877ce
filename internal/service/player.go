package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"
)

type PlayerService struct {
	riot   *riot.Client
	repo   *repository.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(riotClient *riot.Client, repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: riotClient, repo: repo, logger: logger}
}

// Link resolves a riot ID against the Riot API and stores the player so the
// sync pipeline starts tracking them. Linking an already linked player
// refreshes the identity fields and is otherwise a no-op.
func (s *PlayerService) Link(ctx context.Context, gameName, tagLine, platform string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	gameName, err := url.QueryUnescape(gameName)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape game name: %w", err)
	}
	tagLine, err = url.QueryUnescape(tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape tag line: %w", err)
	}
	if !riot.ValidPlatform(platform) {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}

	s.logger.Info().Str("game_name", gameName).Str("tag_line", tagLine).Str("platform", platform).Msg("linking player")

	account, err := s.riot.GetAccountByRiotID(ctx, platform, gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("failed to resolve riot ID")
		return nil, fmt.Errorf("failed to resolve riot ID: %w", err)
	}

	summoner, err := s.riot.GetSummonerByPuuid(ctx, platform, account.Puuid)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("failed to fetch summoner: %w", err)
	}

	player := &domain.Player{
		Puuid:         account.Puuid,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		Region:        platform,
		SummonerLevel: summoner.SummonerLevel,
		ProfileIconID: summoner.ProfileIconID,
	}
	if existing, err := s.repo.Get(ctx, account.Puuid); err == nil {
		player.LastSyncAt = existing.LastSyncAt
		player.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info().Str("puuid", player.Puuid).Msg("player linked")
	return player, nil
}

func (s *PlayerService) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.Get(ctx, puuid)
}

func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.List(ctx)
}
