package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	stdsync "sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/metrics"
	"league-tracker/internal/riot"
)

type fakeRiot struct {
	entries     []riot.LeagueEntry
	entriesErr  error
	matchIDs    []string
	matchIDsErr error
	matchData   map[string]*riot.Match
	matchErrs   map[string]error
	detailCalls int
}

func (f *fakeRiot) GetLeagueEntries(ctx context.Context, platform, puuid string) ([]riot.LeagueEntry, error) {
	return f.entries, f.entriesErr
}

func (f *fakeRiot) GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error) {
	return f.matchIDs, f.matchIDsErr
}

func (f *fakeRiot) GetMatch(ctx context.Context, platform, matchID string) (*riot.Match, error) {
	f.detailCalls++
	if err, ok := f.matchErrs[matchID]; ok {
		return nil, err
	}
	m, ok := f.matchData[matchID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

type fakePlayerStore struct {
	players  map[string]*domain.Player
	lastSync map[string]time.Time
}

func (f *fakePlayerStore) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	p, ok := f.players[puuid]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlayerStore) List(ctx context.Context) ([]domain.Player, error) {
	puuids := make([]string, 0, len(f.players))
	for puuid := range f.players {
		puuids = append(puuids, puuid)
	}
	sort.Strings(puuids)

	players := make([]domain.Player, len(puuids))
	for i, puuid := range puuids {
		players[i] = *f.players[puuid]
	}
	return players, nil
}

func (f *fakePlayerStore) SetLastSyncAt(ctx context.Context, puuid string, lastSyncAt time.Time) error {
	f.lastSync[puuid] = lastSyncAt
	return nil
}

type fakeRankedStore struct {
	stats     map[string]*domain.RankedStat // keyed puuid/queue
	upsertErr error
}

func (f *fakeRankedStore) Upsert(ctx context.Context, stat *domain.RankedStat) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *stat
	f.stats[stat.Puuid+"/"+string(stat.QueueType)] = &cp
	return nil
}

type storedMatch struct {
	match        domain.Match
	participants []domain.MatchParticipant
}

type fakeMatchStore struct {
	stored    map[string]storedMatch
	insertErr error
}

func (f *fakeMatchStore) Exists(ctx context.Context, matchID string) (bool, error) {
	_, ok := f.stored[matchID]
	return ok, nil
}

func (f *fakeMatchStore) InsertWithParticipants(ctx context.Context, match *domain.Match, participants []domain.MatchParticipant) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.stored[match.MatchID] = storedMatch{match: *match, participants: participants}
	return nil
}

// fakeJobStore is mutex-guarded so poller tests can inspect it while the
// poll loop runs.
type fakeJobStore struct {
	mu      stdsync.Mutex
	jobs    map[string]*domain.SyncJob
	order   []string
	nextID  int
	onClaim func(*domain.SyncJob) // invoked once after GetOldestPending picks a job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]*domain.SyncJob)}
}

func (f *fakeJobStore) Create(ctx context.Context, job *domain.SyncJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if job.ID == "" {
		f.nextID++
		job.ID = fmt.Sprintf("job-%d", f.nextID)
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	cp := *job
	f.jobs[job.ID] = &cp
	f.order = append(f.order, job.ID)
	return nil
}

func (f *fakeJobStore) GetByID(ctx context.Context, id string) (*domain.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	job, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobStore) GetActiveForPuuid(ctx context.Context, puuid string) (*domain.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range f.order {
		job := f.jobs[id]
		if job.Puuid != puuid {
			continue
		}
		if job.Status == domain.JobStatusPending || job.Status == domain.JobStatusProcessing {
			cp := *job
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeJobStore) GetOldestPending(ctx context.Context) (*domain.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range f.order {
		job := f.jobs[id]
		if job.Status != domain.JobStatusPending {
			continue
		}
		cp := *job
		if f.onClaim != nil {
			hook := f.onClaim
			f.onClaim = nil
			hook(job)
		}
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeJobStore) MarkProcessing(ctx context.Context, id string, startedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	job, ok := f.jobs[id]
	if !ok || job.Status != domain.JobStatusPending {
		return false, nil
	}
	job.Status = domain.JobStatusProcessing
	t := startedAt
	job.StartedAt = &t
	return true, nil
}

func (f *fakeJobStore) Finish(ctx context.Context, id string, status domain.JobStatus, matchesProcessed int, errorMessage string, completedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	job, ok := f.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	job.Status = status
	job.MatchesProcessed = matchesProcessed
	job.ErrorMessage = errorMessage
	t := completedAt
	job.CompletedAt = &t
	return nil
}

func (f *fakeJobStore) Counts(ctx context.Context) (*domain.SyncStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := &domain.SyncStatus{}
	for _, job := range f.jobs {
		switch job.Status {
		case domain.JobStatusPending:
			status.Pending++
		case domain.JobStatusProcessing:
			status.Processing++
		case domain.JobStatusCompleted:
			status.Completed++
			if job.CompletedAt != nil && (status.LastCompletedAt == nil || job.CompletedAt.After(*status.LastCompletedAt)) {
				status.LastCompletedAt = job.CompletedAt
			}
		case domain.JobStatusFailed:
			status.Failed++
		}
	}
	return status, nil
}

func (f *fakeJobStore) FailStale(ctx context.Context, cutoff time.Time, errorMessage string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, job := range f.jobs {
		if job.Status == domain.JobStatusProcessing && job.StartedAt != nil && job.StartedAt.Before(cutoff) {
			job.Status = domain.JobStatusFailed
			job.ErrorMessage = errorMessage
			now := time.Now()
			job.CompletedAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeJobStore) ListRecent(ctx context.Context, limit int) ([]domain.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var jobs []domain.SyncJob
	for i := len(f.order) - 1; i >= 0 && len(jobs) < limit; i-- {
		jobs = append(jobs, *f.jobs[f.order[i]])
	}
	return jobs, nil
}

func (f *fakeJobStore) status(id string) domain.JobStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jobs[id].Status
}

type fixture struct {
	orch    *Orchestrator
	riot    *fakeRiot
	players *fakePlayerStore
	ranked  *fakeRankedStore
	matches *fakeMatchStore
	jobs    *fakeJobStore
}

func newFixture() *fixture {
	f := &fixture{
		riot: &fakeRiot{
			matchData: make(map[string]*riot.Match),
			matchErrs: make(map[string]error),
		},
		players: &fakePlayerStore{
			players:  make(map[string]*domain.Player),
			lastSync: make(map[string]time.Time),
		},
		ranked:  &fakeRankedStore{stats: make(map[string]*domain.RankedStat)},
		matches: &fakeMatchStore{stored: make(map[string]storedMatch)},
		jobs:    newFakeJobStore(),
	}

	cfg := &config.Config{
		MatchSyncCount:  constants.DefaultMatchSyncCount,
		StaleJobTimeout: constants.DefaultStaleJobTimeout,
	}
	f.orch = NewOrchestrator(cfg, f.riot, f.players, f.ranked, f.matches, f.jobs, metrics.NewCollector(), zerolog.Nop())
	return f
}

func (f *fixture) addPlayer(puuid string) {
	f.players.players[puuid] = &domain.Player{
		Puuid:    puuid,
		GameName: "Tester",
		TagLine:  "NA1",
		Region:   "na1",
	}
}

func testMatch(matchID string, participants int) *riot.Match {
	m := &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: matchID},
		Info: riot.MatchInfo{
			GameCreation: 1700000000000,
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			QueueID:      420,
			PlatformID:   "NA1",
			GameVersion:  "14.1.1",
		},
	}
	for i := 0; i < participants; i++ {
		m.Info.Participants = append(m.Info.Participants, riot.Participant{
			Puuid:          fmt.Sprintf("%s-p%d", matchID, i),
			RiotIDGameName: fmt.Sprintf("Player%d", i),
			ChampionID:     i + 1,
			ChampionName:   "Ahri",
			TeamID:         100 + (i%2)*100,
			Kills:          i,
			Deaths:         1,
			Assists:        i * 2,
		})
	}
	return m
}

func TestEnqueueJobNotLinked(t *testing.T) {
	f := newFixture()

	job, err := f.orch.EnqueueJob(context.Background(), "unknown-puuid")
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domain.ErrNotLinked)
	assert.Empty(t, f.jobs.jobs)
}

func TestEnqueueJobCreatesPending(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	job, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, domain.JobStatusPending, job.Status)
	assert.Equal(t, domain.JobTypeFullSync, job.JobType)
	assert.NotEmpty(t, job.ID)
	assert.Zero(t, job.MatchesProcessed)
}

func TestEnqueueJobSuppressesDuplicates(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	first, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)

	second, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.jobs.jobs, 1)

	// A processing job also blocks new enqueues.
	claimed, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	require.NotNil(t, claimed)

	third, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Len(t, f.jobs.jobs, 1)
}

func TestEnqueueJobAfterTerminalJob(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	first, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	require.NoError(t, f.jobs.Finish(context.Background(), first.ID, domain.JobStatusCompleted, 0, "", time.Now()))

	second, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.jobs.jobs, 2)
}

func TestEnqueueAll(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")
	f.addPlayer("puuid-2")
	f.addPlayer("puuid-3")

	// puuid-2 already has an active job; it must not get a second one.
	_, err := f.orch.EnqueueJob(context.Background(), "puuid-2")
	require.NoError(t, err)

	created, err := f.orch.EnqueueAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, f.jobs.jobs, 3)
}

func TestClaimNextEmptyQueue(t *testing.T) {
	f := newFixture()

	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClaimNextOldestFirst(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")
	f.addPlayer("puuid-2")

	first, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	second, err := f.orch.EnqueueJob(context.Background(), "puuid-2")
	require.NoError(t, err)

	claimed, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, domain.JobStatusProcessing, claimed.Status)
	assert.NotNil(t, claimed.StartedAt)

	claimed, err = f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)

	claimed, err = f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestClaimNextLostRace(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")
	f.addPlayer("puuid-2")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	second, err := f.orch.EnqueueJob(context.Background(), "puuid-2")
	require.NoError(t, err)

	// Another claimer grabs the first job between the read and the
	// conditional update; ClaimNext must move on to the next job.
	f.jobs.onClaim = func(job *domain.SyncJob) {
		job.Status = domain.JobStatusProcessing
	}

	claimed, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)
}

func TestProcessFullSync(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.entries = []riot.LeagueEntry{
		{QueueType: riot.QueueRankedSolo, Tier: "GOLD", Rank: "II", LeaguePoints: 54, Wins: 30, Losses: 25},
		{QueueType: riot.QueueRankedFlex, Tier: "SILVER", Rank: "I", LeaguePoints: 12, Wins: 10, Losses: 8},
		{QueueType: "CHERRY", Tier: "GOLD"}, // unhandled queue, ignored
	}
	f.riot.matchIDs = []string{"NA1_1", "NA1_2", "NA1_3"}
	for _, id := range f.riot.matchIDs {
		f.riot.matchData[id] = testMatch(id, 10)
	}

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, 3, done.MatchesProcessed)
	assert.Empty(t, done.ErrorMessage)
	assert.NotNil(t, done.CompletedAt)

	solo := f.ranked.stats["puuid-1/solo"]
	require.NotNil(t, solo)
	assert.Equal(t, "GOLD", solo.Tier)
	assert.Equal(t, "II", solo.Rank)
	assert.Equal(t, 54, solo.LeaguePoints)

	flex := f.ranked.stats["puuid-1/flex"]
	require.NotNil(t, flex)
	assert.Equal(t, "SILVER", flex.Tier)
	assert.Len(t, f.ranked.stats, 2)

	assert.Len(t, f.matches.stored, 3)
	assert.Len(t, f.matches.stored["NA1_1"].participants, 10)
	assert.Contains(t, f.players.lastSync, "puuid-1")
}

func TestProcessSkipsStoredMatches(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.matchIDs = []string{"NA1_1", "NA1_2"}
	f.matches.stored["NA1_1"] = storedMatch{}
	f.matches.stored["NA1_2"] = storedMatch{}

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, 0, done.MatchesProcessed)
	// Stored matches never cost a detail request.
	assert.Zero(t, f.riot.detailCalls)
}

func TestProcessMatchDetailFailureSkipsMatch(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.matchIDs = []string{"NA1_1", "NA1_2", "NA1_3"}
	f.riot.matchData["NA1_1"] = testMatch("NA1_1", 10)
	f.riot.matchData["NA1_3"] = testMatch("NA1_3", 10)
	f.riot.matchErrs["NA1_2"] = errors.New("riot API error: 503")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, 2, done.MatchesProcessed)
	assert.Len(t, f.matches.stored, 2)
	assert.NotContains(t, f.matches.stored, "NA1_2")
}

func TestProcessRankedFetchFailureStillCompletes(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.entriesErr = errors.New("riot API error: 500")
	f.riot.matchIDs = []string{"NA1_1"}
	f.riot.matchData["NA1_1"] = testMatch("NA1_1", 10)

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, 1, done.MatchesProcessed)
	assert.Empty(t, f.ranked.stats)
}

func TestProcessMatchListFailureStillCompletes(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.matchIDsErr = errors.New("riot API error: 429")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusCompleted, done.Status)
	assert.Equal(t, 0, done.MatchesProcessed)
}

func TestProcessPlayerResolutionFailure(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	// Player row vanishes before the job runs.
	delete(f.players.players, "puuid-1")

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusFailed, done.Status)
	assert.Contains(t, done.ErrorMessage, "failed to resolve player")
	assert.NotNil(t, done.CompletedAt)
}

func TestProcessPersistenceFailureFailsJob(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.matchIDs = []string{"NA1_1"}
	f.riot.matchData["NA1_1"] = testMatch("NA1_1", 10)
	f.matches.insertErr = errors.New("disk I/O error")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	f.orch.Process(context.Background(), job)

	done := f.jobs.jobs[job.ID]
	assert.Equal(t, domain.JobStatusFailed, done.Status)
	assert.Contains(t, done.ErrorMessage, "failed to store match")
}

func TestProcessResyncIsIdempotent(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.entries = []riot.LeagueEntry{
		{QueueType: riot.QueueRankedSolo, Tier: "GOLD", Rank: "II", LeaguePoints: 54},
	}
	f.riot.matchIDs = []string{"NA1_1", "NA1_2"}
	f.riot.matchData["NA1_1"] = testMatch("NA1_1", 10)
	f.riot.matchData["NA1_2"] = testMatch("NA1_2", 10)

	runJob := func() *domain.SyncJob {
		_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
		require.NoError(t, err)
		job, err := f.orch.ClaimNext(context.Background())
		require.NoError(t, err)
		f.orch.Process(context.Background(), job)
		return f.jobs.jobs[job.ID]
	}

	first := runJob()
	assert.Equal(t, 2, first.MatchesProcessed)
	detailCallsAfterFirst := f.riot.detailCalls

	// Ranked climbs between syncs; the row is updated, not duplicated.
	f.riot.entries[0].Tier = "PLATINUM"
	f.riot.entries[0].LeaguePoints = 2

	second := runJob()
	assert.Equal(t, domain.JobStatusCompleted, second.Status)
	assert.Equal(t, 0, second.MatchesProcessed)
	assert.Equal(t, detailCallsAfterFirst, f.riot.detailCalls)

	assert.Len(t, f.matches.stored, 2)
	assert.Len(t, f.ranked.stats, 1)
	assert.Equal(t, "PLATINUM", f.ranked.stats["puuid-1/solo"].Tier)
}

func TestProcessCancelledContextLeavesJobProcessing(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")

	f.riot.matchIDs = []string{"NA1_1"}
	f.riot.matchData["NA1_1"] = testMatch("NA1_1", 10)

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	job, err := f.orch.ClaimNext(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.orch.Process(ctx, job)

	// Left for the startup reaper instead of a terminal write.
	assert.Equal(t, domain.JobStatusProcessing, f.jobs.jobs[job.ID].Status)
}

func TestSnapshot(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")
	f.addPlayer("puuid-2")

	_, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	second, err := f.orch.EnqueueJob(context.Background(), "puuid-2")
	require.NoError(t, err)

	completedAt := time.Now()
	require.NoError(t, f.jobs.Finish(context.Background(), second.ID, domain.JobStatusCompleted, 5, "", completedAt))

	status, err := f.orch.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Pending)
	assert.Equal(t, 0, status.Processing)
	assert.Equal(t, 1, status.Completed)
	assert.Equal(t, 0, status.Failed)
	require.NotNil(t, status.LastCompletedAt)
	assert.WithinDuration(t, completedAt, *status.LastCompletedAt, time.Second)
}

func TestRecoverStaleJobs(t *testing.T) {
	f := newFixture()
	f.addPlayer("puuid-1")
	f.addPlayer("puuid-2")

	stale, err := f.orch.EnqueueJob(context.Background(), "puuid-1")
	require.NoError(t, err)
	staleStart := time.Now().Add(-constants.DefaultStaleJobTimeout - time.Minute)
	_, err = f.jobs.MarkProcessing(context.Background(), stale.ID, staleStart)
	require.NoError(t, err)

	fresh, err := f.orch.EnqueueJob(context.Background(), "puuid-2")
	require.NoError(t, err)
	_, err = f.jobs.MarkProcessing(context.Background(), fresh.ID, time.Now())
	require.NoError(t, err)

	require.NoError(t, f.orch.RecoverStaleJobs(context.Background()))

	assert.Equal(t, domain.JobStatusFailed, f.jobs.jobs[stale.ID].Status)
	assert.NotEmpty(t, f.jobs.jobs[stale.ID].ErrorMessage)
	assert.Equal(t, domain.JobStatusProcessing, f.jobs.jobs[fresh.ID].Status)
}
