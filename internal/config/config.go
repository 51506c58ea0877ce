package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"league-tracker/internal/constants"
)

type Config struct {
	RiotAPIKey string
	DBPath     string
	ServerPort string
	LogLevel   string

	// Sync pipeline tuning.
	MatchSyncCount   int
	IdleInterval     time.Duration
	InterJobInterval time.Duration
	StaleJobTimeout  time.Duration
	SyncSchedule     string

	// Client-side ceilings for the Riot API.
	RequestsPerSecond int
	RequestsPerWindow int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		DBPath:            getEnv("DB_PATH", "league.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MatchSyncCount:    getEnvInt("SYNC_MATCH_COUNT", constants.DefaultMatchSyncCount),
		IdleInterval:      getEnvDuration("SYNC_IDLE_INTERVAL", constants.DefaultIdleInterval),
		InterJobInterval:  getEnvDuration("SYNC_INTER_JOB_INTERVAL", constants.DefaultInterJobInterval),
		StaleJobTimeout:   getEnvDuration("SYNC_STALE_JOB_TIMEOUT", constants.DefaultStaleJobTimeout),
		SyncSchedule:      getEnv("SYNC_SCHEDULE", constants.DefaultSyncSchedule),
		RequestsPerSecond: getEnvInt("RIOT_REQUESTS_PER_SECOND", constants.DefaultRequestsPerSecond),
		RequestsPerWindow: getEnvInt("RIOT_REQUESTS_PER_WINDOW", constants.DefaultRequestsPerWindow),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("match_sync_count", cfg.MatchSyncCount).
		Dur("idle_interval", cfg.IdleInterval).
		Dur("inter_job_interval", cfg.InterJobInterval).
		Str("sync_schedule", cfg.SyncSchedule).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
