package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Riot development keys allow 20 requests per second and 100 per
	// rolling two minutes. Both ceilings are enforced client-side.
	DefaultRequestsPerSecond = 20
	DefaultRequestsPerWindow = 100
	RateLimitWindow          = 2 * time.Minute
)

const (
	DefaultMatchSyncCount   = 20
	DefaultIdleInterval     = 10 * time.Second
	DefaultInterJobInterval = 2 * time.Second
	DefaultStaleJobTimeout  = 30 * time.Minute
	DefaultSyncSchedule     = "@every 1h"
)

const (
	MatchListLimit     = 50
	ChampionStatsLimit = 100
)
