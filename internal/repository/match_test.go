package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-tracker/internal/domain"
)

func buildMatch(matchID string, gameCreation int64, subject string, win bool, champion string) (*domain.Match, []domain.MatchParticipant) {
	match := &domain.Match{
		MatchID:      matchID,
		GameCreation: gameCreation,
		GameDuration: 1800,
		GameMode:     "CLASSIC",
		QueueID:      420,
		PlatformID:   "NA1",
		GameVersion:  "14.1.1",
	}

	participants := make([]domain.MatchParticipant, 10)
	for i := range participants {
		participants[i] = domain.MatchParticipant{
			MatchID:      matchID,
			Puuid:        fmt.Sprintf("%s-p%d", matchID, i),
			SummonerName: fmt.Sprintf("Player%d", i),
			ChampionID:   i + 1,
			ChampionName: "Zed",
			TeamID:       100 + (i%2)*100,
			Kills:        i,
			Deaths:       2,
			Assists:      i,
		}
	}

	// Slot the subject into the first seat so the perspective queries find
	// them.
	participants[0].Puuid = subject
	participants[0].Win = win
	participants[0].ChampionID = 103
	participants[0].ChampionName = champion
	participants[0].Kills = 7
	participants[0].Deaths = 3
	participants[0].Assists = 9
	return match, participants
}

func TestMatchInsertWithParticipants(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewMatchRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "NA1_1")
	require.NoError(t, err)
	assert.False(t, exists)

	match, participants := buildMatch("NA1_1", 1700000000000, "puuid-1", true, "Ahri")
	require.NoError(t, repo.InsertWithParticipants(ctx, match, participants))

	exists, err = repo.Exists(ctx, "NA1_1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMatchGetByPuuidNewestFirst(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewMatchRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	for i, creation := range []int64{1700000001000, 1700000003000, 1700000002000} {
		match, participants := buildMatch(fmt.Sprintf("NA1_%d", i+1), creation, "puuid-1", i%2 == 0, "Ahri")
		require.NoError(t, repo.InsertWithParticipants(ctx, match, participants))
	}

	got, err := repo.GetByPuuid(ctx, "puuid-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "NA1_2", got[0].Match.MatchID)
	assert.Equal(t, "NA1_3", got[1].Match.MatchID)
	assert.Equal(t, "NA1_1", got[2].Match.MatchID)

	// Each row carries only the subject's participant line.
	assert.Equal(t, 7, got[0].Participant.Kills)
	assert.Equal(t, "Ahri", got[0].Participant.ChampionName)

	limited, err := repo.GetByPuuid(ctx, "puuid-1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := repo.GetByPuuid(ctx, "puuid-unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMatchGetChampionStats(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewMatchRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	wins := []bool{true, true, false}
	for i, win := range wins {
		match, participants := buildMatch(fmt.Sprintf("NA1_%d", i+1), 1700000000000+int64(i), "puuid-1", win, "Ahri")
		require.NoError(t, repo.InsertWithParticipants(ctx, match, participants))
	}

	match, participants := buildMatch("NA1_4", 1700000004000, "puuid-1", false, "Zed")
	participants[0].ChampionID = 238
	require.NoError(t, repo.InsertWithParticipants(ctx, match, participants))

	stats, err := repo.GetChampionStats(ctx, "puuid-1", 10)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Most played champion first.
	assert.Equal(t, "Ahri", stats[0].ChampionName)
	assert.Equal(t, 3, stats[0].Games)
	assert.Equal(t, 2, stats[0].Wins)
	assert.Equal(t, 21, stats[0].Kills)
	assert.Equal(t, 9, stats[0].Deaths)

	assert.Equal(t, "Zed", stats[1].ChampionName)
	assert.Equal(t, 1, stats[1].Games)
	assert.Equal(t, 0, stats[1].Wins)
}
