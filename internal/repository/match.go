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

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// PlayerMatch is one stored match seen from a single player's perspective.
type PlayerMatch struct {
	Match       domain.Match
	Participant domain.MatchParticipant
}

// ChampionStats aggregates a player's stored games on one champion.
type ChampionStats struct {
	ChampionID   int
	ChampionName string
	Games        int
	Wins         int
	Kills        int
	Deaths       int
	Assists      int
}

func (r *MatchRepository) Exists(ctx context.Context, matchID string) (bool, error) {
	exists, err := r.queries.MatchExists(ctx, matchID)
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// InsertWithParticipants stores a match and all of its participant rows in a
// single transaction. Matches are immutable: the caller checks Exists first
// and never re-inserts.
func (r *MatchRepository) InsertWithParticipants(ctx context.Context, match *domain.Match, participants []domain.MatchParticipant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now()

	err = qtx.InsertMatch(ctx, db.InsertMatchParams{
		MatchID:      match.MatchID,
		GameCreation: match.GameCreation,
		GameDuration: int64(match.GameDuration),
		GameMode:     match.GameMode,
		QueueID:      int64(match.QueueID),
		PlatformID:   match.PlatformID,
		GameVersion:  match.GameVersion,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.MatchID, err)
	}

	for _, p := range participants {
		err = qtx.InsertMatchParticipant(ctx, db.InsertMatchParticipantParams{
			MatchID:      p.MatchID,
			Puuid:        p.Puuid,
			SummonerName: p.SummonerName,
			ChampionID:   int64(p.ChampionID),
			ChampionName: p.ChampionName,
			TeamID:       int64(p.TeamID),
			TeamPosition: p.TeamPosition,
			Win:          p.Win,
			Kills:        int64(p.Kills),
			Deaths:       int64(p.Deaths),
			Assists:      int64(p.Assists),
			TotalMinions: int64(p.TotalMinions),
			GoldEarned:   int64(p.GoldEarned),
			DamageDealt:  int64(p.DamageDealt),
			VisionScore:  int64(p.VisionScore),
			Item0:        int64(p.Item0),
			Item1:        int64(p.Item1),
			Item2:        int64(p.Item2),
			Item3:        int64(p.Item3),
			Item4:        int64(p.Item4),
			Item5:        int64(p.Item5),
			Item6:        int64(p.Item6),
			Spell1:       int64(p.Spell1),
			Spell2:       int64(p.Spell2),
			PrimaryStyle: int64(p.PrimaryStyle),
			SubStyle:     int64(p.SubStyle),
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert participant %s/%s: %w", p.MatchID, p.Puuid, err)
		}
	}

	return tx.Commit()
}

func (r *MatchRepository) GetByPuuid(ctx context.Context, puuid string, limit int) ([]PlayerMatch, error) {
	rows, err := r.queries.GetMatchesByPuuid(ctx, db.GetMatchesByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	results := make([]PlayerMatch, len(rows))
	for i, row := range rows {
		results[i] = PlayerMatch{
			Match: domain.Match{
				MatchID:      row.MatchID,
				GameCreation: row.GameCreation,
				GameDuration: int(row.GameDuration),
				GameMode:     row.GameMode,
				QueueID:      int(row.QueueID),
				PlatformID:   row.PlatformID,
				GameVersion:  row.GameVersion,
			},
			Participant: domain.MatchParticipant{
				MatchID:      row.MatchID,
				Puuid:        puuid,
				ChampionID:   int(row.ChampionID),
				ChampionName: row.ChampionName,
				TeamID:       int(row.TeamID),
				TeamPosition: row.TeamPosition,
				Win:          row.Win,
				Kills:        int(row.Kills),
				Deaths:       int(row.Deaths),
				Assists:      int(row.Assists),
				TotalMinions: int(row.TotalMinions),
				GoldEarned:   int(row.GoldEarned),
				DamageDealt:  int(row.DamageDealt),
				VisionScore:  int(row.VisionScore),
				Item0:        int(row.Item0),
				Item1:        int(row.Item1),
				Item2:        int(row.Item2),
				Item3:        int(row.Item3),
				Item4:        int(row.Item4),
				Item5:        int(row.Item5),
				Item6:        int(row.Item6),
				Spell1:       int(row.Spell1),
				Spell2:       int(row.Spell2),
				PrimaryStyle: int(row.PrimaryStyle),
				SubStyle:     int(row.SubStyle),
			},
		}
	}
	return results, nil
}

func (r *MatchRepository) GetChampionStats(ctx context.Context, puuid string, limit int) ([]ChampionStats, error) {
	rows, err := r.queries.GetChampionStatsByPuuid(ctx, db.GetChampionStatsByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	results := make([]ChampionStats, len(rows))
	for i, row := range rows {
		results[i] = ChampionStats{
			ChampionID:   int(row.ChampionID),
			ChampionName: row.ChampionName,
			Games:        int(row.Games),
			Wins:         int(row.Wins.Int64),
			Kills:        int(row.Kills.Int64),
			Deaths:       int(row.Deaths.Int64),
			Assists:      int(row.Assists.Int64),
		}
	}
	return results, nil
}
