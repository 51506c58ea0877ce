package server

import (
	"time"

	"league-tracker/internal/domain"
	"league-tracker/internal/repository"
)

type playerResponse struct {
	Puuid         string `json:"puuid"`
	GameName      string `json:"game_name"`
	TagLine       string `json:"tag_line"`
	Region        string `json:"region"`
	SummonerLevel int    `json:"summoner_level"`
	ProfileIconID int    `json:"profile_icon_id"`
	LastSyncAt    string `json:"last_sync_at,omitempty"`
}

type jobResponse struct {
	ID               string `json:"id"`
	Puuid            string `json:"puuid"`
	JobType          string `json:"job_type"`
	Status           string `json:"status"`
	MatchesProcessed int    `json:"matches_processed"`
	ErrorMessage     string `json:"error_message,omitempty"`
	CreatedAt        string `json:"created_at"`
	StartedAt        string `json:"started_at,omitempty"`
	CompletedAt      string `json:"completed_at,omitempty"`
}

type linkResponse struct {
	Player playerResponse `json:"player"`
	Job    jobResponse    `json:"job"`
}

type rankedResponse struct {
	QueueType    string `json:"queue_type"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"league_points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	UpdatedAt    string `json:"updated_at"`
}

type matchResponse struct {
	MatchID      string `json:"match_id"`
	GameCreation int64  `json:"game_creation"`
	GameDuration int    `json:"game_duration"`
	GameMode     string `json:"game_mode"`
	QueueID      int    `json:"queue_id"`
	GameVersion  string `json:"game_version"`
	ChampionID   int    `json:"champion_id"`
	ChampionName string `json:"champion_name"`
	TeamPosition string `json:"team_position"`
	Win          bool   `json:"win"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	TotalMinions int    `json:"total_minions"`
	GoldEarned   int    `json:"gold_earned"`
	DamageDealt  int    `json:"damage_dealt"`
	VisionScore  int    `json:"vision_score"`
	Items        []int  `json:"items"`
	Spells       []int  `json:"spells"`
	PrimaryStyle int    `json:"primary_style"`
	SubStyle     int    `json:"sub_style"`
}

type championResponse struct {
	ChampionID   int    `json:"champion_id"`
	ChampionName string `json:"champion_name"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
}

type profileResponse struct {
	Player      playerResponse   `json:"player"`
	RankedStats []rankedResponse `json:"ranked_stats"`
	Matches     []matchResponse  `json:"matches"`
}

type syncStatusResponse struct {
	Pending         int    `json:"pending"`
	Processing      int    `json:"processing"`
	Completed       int    `json:"completed"`
	Failed          int    `json:"failed"`
	LastCompletedAt string `json:"last_completed_at,omitempty"`
}

func toPlayerResponse(p *domain.Player) playerResponse {
	resp := playerResponse{
		Puuid:         p.Puuid,
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		Region:        p.Region,
		SummonerLevel: p.SummonerLevel,
		ProfileIconID: p.ProfileIconID,
	}
	if p.LastSyncAt != nil {
		resp.LastSyncAt = p.LastSyncAt.Format(time.RFC3339)
	}
	return resp
}

func toJobResponse(j *domain.SyncJob) jobResponse {
	resp := jobResponse{
		ID:               j.ID,
		Puuid:            j.Puuid,
		JobType:          string(j.JobType),
		Status:           string(j.Status),
		MatchesProcessed: j.MatchesProcessed,
		ErrorMessage:     j.ErrorMessage,
		CreatedAt:        j.CreatedAt.Format(time.RFC3339),
	}
	if j.StartedAt != nil {
		resp.StartedAt = j.StartedAt.Format(time.RFC3339)
	}
	if j.CompletedAt != nil {
		resp.CompletedAt = j.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func toRankedResponse(s domain.RankedStat) rankedResponse {
	return rankedResponse{
		QueueType:    string(s.QueueType),
		Tier:         s.Tier,
		Rank:         s.Rank,
		LeaguePoints: s.LeaguePoints,
		Wins:         s.Wins,
		Losses:       s.Losses,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func toMatchResponse(m repository.PlayerMatch) matchResponse {
	return matchResponse{
		MatchID:      m.Match.MatchID,
		GameCreation: m.Match.GameCreation,
		GameDuration: m.Match.GameDuration,
		GameMode:     m.Match.GameMode,
		QueueID:      m.Match.QueueID,
		GameVersion:  m.Match.GameVersion,
		ChampionID:   m.Participant.ChampionID,
		ChampionName: m.Participant.ChampionName,
		TeamPosition: m.Participant.TeamPosition,
		Win:          m.Participant.Win,
		Kills:        m.Participant.Kills,
		Deaths:       m.Participant.Deaths,
		Assists:      m.Participant.Assists,
		TotalMinions: m.Participant.TotalMinions,
		GoldEarned:   m.Participant.GoldEarned,
		DamageDealt:  m.Participant.DamageDealt,
		VisionScore:  m.Participant.VisionScore,
		Items:        []int{m.Participant.Item0, m.Participant.Item1, m.Participant.Item2, m.Participant.Item3, m.Participant.Item4, m.Participant.Item5, m.Participant.Item6},
		Spells:       []int{m.Participant.Spell1, m.Participant.Spell2},
		PrimaryStyle: m.Participant.PrimaryStyle,
		SubStyle:     m.Participant.SubStyle,
	}
}
