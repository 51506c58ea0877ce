package domain

import (
	"time"
)

type Player struct {
	Puuid         string
	GameName      string
	TagLine       string
	Region        string // platform routing code, e.g. "na1", "euw1"
	SummonerLevel int
	ProfileIconID int
	LastSyncAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type QueueType string

const (
	QueueSolo QueueType = "solo"
	QueueFlex QueueType = "flex"
)

type RankedStat struct {
	Puuid        string
	QueueType    QueueType
	Tier         string // "GOLD", "DIAMOND", ...
	Rank         string // division within tier: "I" - "IV"
	LeaguePoints int
	Wins         int
	Losses       int
	UpdatedAt    time.Time
}

type Match struct {
	MatchID      string
	GameCreation int64 // epoch millis
	GameDuration int   // seconds
	GameMode     string
	QueueID      int
	PlatformID   string
	GameVersion  string
	CreatedAt    time.Time
}

type MatchParticipant struct {
	MatchID      string
	Puuid        string
	SummonerName string
	ChampionID   int
	ChampionName string
	TeamID       int // 100 or 200
	TeamPosition string
	Win          bool
	Kills        int
	Deaths       int
	Assists      int
	TotalMinions int
	GoldEarned   int
	DamageDealt  int
	VisionScore  int
	Item0        int
	Item1        int
	Item2        int
	Item3        int
	Item4        int
	Item5        int
	Item6        int
	Spell1       int
	Spell2       int
	PrimaryStyle int
	SubStyle     int
	CreatedAt    time.Time
}
