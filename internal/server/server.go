package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/metrics"
	"league-tracker/internal/riot"
	"league-tracker/internal/service"
	syncpkg "league-tracker/internal/sync"
)

// Server is the JSON API over the tracker. All reads come from local
// storage; writes are limited to linking players and enqueueing sync jobs.
type Server struct {
	players   *service.PlayerService
	stats     *service.StatsService
	orch      *syncpkg.Orchestrator
	riot      *riot.Client
	collector *metrics.Collector
	logger    zerolog.Logger
}

func NewServer(
	players *service.PlayerService,
	stats *service.StatsService,
	orch *syncpkg.Orchestrator,
	riotClient *riot.Client,
	collector *metrics.Collector,
	logger zerolog.Logger,
) *Server {
	return &Server{
		players:   players,
		stats:     stats,
		orch:      orch,
		riot:      riotClient,
		collector: collector,
		logger:    logger,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.collector.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.handleListPlayers)
			r.Post("/{gameName}/{tagLine}/link", s.handleLinkPlayer)
			r.Route("/{puuid}", func(r chi.Router) {
				r.Get("/", s.handleGetProfile)
				r.Get("/ranked", s.handleGetRankedStats)
				r.Get("/matches", s.handleGetMatches)
				r.Get("/champions", s.handleGetChampionStats)
			})
		})

		r.Route("/sync", func(r chi.Router) {
			r.Post("/", s.handleSyncAll)
			r.Get("/status", s.handleSyncStatus)
			r.Post("/players/{puuid}", s.handleSyncPlayer)
			r.Get("/jobs", s.handleListJobs)
			r.Get("/jobs/{id}", s.handleGetJob)
		})

		r.Get("/ratelimit", s.handleRateLimit)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLinkPlayer registers a riot ID for tracking and queues the first
// sync. The platform defaults to NA when not given.
func (s *Server) handleLinkPlayer(w http.ResponseWriter, r *http.Request) {
	gameName := chi.URLParam(r, "gameName")
	tagLine := chi.URLParam(r, "tagLine")
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = "na1"
	}

	player, err := s.players.Link(r.Context(), gameName, tagLine, platform)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	job, err := s.orch.EnqueueJob(r.Context(), player.Puuid)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, linkResponse{
		Player: toPlayerResponse(player),
		Job:    toJobResponse(job),
	})
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := make([]playerResponse, len(players))
	for i := range players {
		resp[i] = toPlayerResponse(&players[i])
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.stats.GetProfile(r.Context(), chi.URLParam(r, "puuid"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := profileResponse{
		Player:      toPlayerResponse(&profile.Player),
		RankedStats: make([]rankedResponse, len(profile.RankedStats)),
		Matches:     make([]matchResponse, len(profile.RecentMatches)),
	}
	for i, stat := range profile.RankedStats {
		resp.RankedStats[i] = toRankedResponse(stat)
	}
	for i, m := range profile.RecentMatches {
		resp.Matches[i] = toMatchResponse(m)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRankedStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetRankedStats(r.Context(), chi.URLParam(r, "puuid"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := make([]rankedResponse, len(stats))
	for i, stat := range stats {
		resp[i] = toRankedResponse(stat)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	limit := constants.DefaultMatchSyncCount
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	matches, err := s.stats.GetMatches(r.Context(), chi.URLParam(r, "puuid"), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := make([]matchResponse, len(matches))
	for i, m := range matches {
		resp[i] = toMatchResponse(m)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetChampionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetChampionStats(r.Context(), chi.URLParam(r, "puuid"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := make([]championResponse, len(stats))
	for i, c := range stats {
		resp[i] = championResponse{
			ChampionID:   c.ChampionID,
			ChampionName: c.ChampionName,
			Games:        c.Games,
			Wins:         c.Wins,
			Kills:        c.Kills,
			Deaths:       c.Deaths,
			Assists:      c.Assists,
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// handleSyncPlayer enqueues a sync for one player. Returns 202 with the job,
// which may be a still-active earlier job rather than a new one.
func (s *Server) handleSyncPlayer(w http.ResponseWriter, r *http.Request) {
	job, err := s.orch.EnqueueJob(r.Context(), chi.URLParam(r, "puuid"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusAccepted, toJobResponse(job))
}

func (s *Server) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	created, err := s.orch.EnqueueAll(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	jobs := make([]jobResponse, len(created))
	for i := range created {
		jobs[i] = toJobResponse(&created[i])
	}
	s.respondJSON(w, http.StatusAccepted, map[string]any{
		"created": len(created),
		"jobs":    jobs,
	})
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.orch.Snapshot(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := syncStatusResponse{
		Pending:    status.Pending,
		Processing: status.Processing,
		Completed:  status.Completed,
		Failed:     status.Failed,
	}
	if status.LastCompletedAt != nil {
		resp.LastCompletedAt = status.LastCompletedAt.Format(time.RFC3339)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.orch.RecentJobs(r.Context(), constants.MatchListLimit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := make([]jobResponse, len(jobs))
	for i := range jobs {
		resp[i] = toJobResponse(&jobs[i])
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.orch.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toJobResponse(job))
}

func (s *Server) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.riot.GetRateLimitInfo())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrNotLinked),
		errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}
