package fx

import (
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"league-tracker/internal/config"
	"league-tracker/internal/database"
	"league-tracker/internal/db"
	"league-tracker/internal/logger"
	"league-tracker/internal/metrics"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"
	syncpkg "league-tracker/internal/sync"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// ProvideOrchestrator binds the concrete repositories and Riot client to the
// orchestrator's store and API interfaces.
func ProvideOrchestrator(
	cfg *config.Config,
	riotClient *riot.Client,
	players *repository.PlayerRepository,
	ranked *repository.RankedRepository,
	matches *repository.MatchRepository,
	jobs *repository.SyncJobRepository,
	collector *metrics.Collector,
	log zerolog.Logger,
) *syncpkg.Orchestrator {
	return syncpkg.NewOrchestrator(cfg, riotClient, players, ranked, matches, jobs, collector, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewRankedRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewSyncJobRepository),
	// api client
	fx.Provide(riot.NewClient),
	// sync pipeline
	fx.Provide(metrics.NewCollector),
	fx.Provide(ProvideOrchestrator),
	fx.Provide(syncpkg.NewPoller),
	fx.Provide(syncpkg.NewScheduler),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewStatsService),
	// server
	fx.Provide(server.NewServer),
)
