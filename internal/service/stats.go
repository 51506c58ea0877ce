package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/repository"
)

type StatsService struct {
	players *repository.PlayerRepository
	ranked  *repository.RankedRepository
	matches *repository.MatchRepository
	logger  zerolog.Logger
}

func NewStatsService(
	players *repository.PlayerRepository,
	ranked *repository.RankedRepository,
	matches *repository.MatchRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{players: players, ranked: ranked, matches: matches, logger: logger}
}

// Profile is the aggregate read model for one tracked player. Everything in
// it comes from local storage; profile reads never touch the Riot API.
type Profile struct {
	Player        domain.Player
	RankedStats   []domain.RankedStat
	RecentMatches []repository.PlayerMatch
}

func (s *StatsService) GetProfile(ctx context.Context, puuid string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.players.Get(ctx, puuid)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Player: *player}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.ranked.GetByPuuid(gctx, puuid)
		if err != nil {
			return err
		}
		profile.RankedStats = stats
		return nil
	})
	g.Go(func() error {
		matches, err := s.matches.GetByPuuid(gctx, puuid, constants.DefaultMatchSyncCount)
		if err != nil {
			return err
		}
		profile.RecentMatches = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to load profile")
		return nil, err
	}

	return profile, nil
}

func (s *StatsService) GetRankedStats(ctx context.Context, puuid string) ([]domain.RankedStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.players.Get(ctx, puuid); err != nil {
		return nil, err
	}
	return s.ranked.GetByPuuid(ctx, puuid)
}

// GetMatches returns stored matches from the player's perspective, newest
// first. The limit is clamped to the storage page size.
func (s *StatsService) GetMatches(ctx context.Context, puuid string, limit int) ([]repository.PlayerMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.MatchListLimit {
		limit = constants.MatchListLimit
	}

	if _, err := s.players.Get(ctx, puuid); err != nil {
		return nil, err
	}
	return s.matches.GetByPuuid(ctx, puuid, limit)
}

func (s *StatsService) GetChampionStats(ctx context.Context, puuid string) ([]repository.ChampionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.players.Get(ctx, puuid); err != nil {
		return nil, err
	}
	return s.matches.GetChampionStats(ctx, puuid, constants.ChampionStatsLimit)
}
