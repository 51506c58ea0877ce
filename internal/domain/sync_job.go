package domain

import (
	"time"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

type JobType string

const (
	JobTypeFullSync JobType = "full_sync"
)

// SyncJob is the only mutable in-flight entity in the store. Transitions are
// one-directional: pending -> processing -> completed | failed. Rows are
// never deleted; the table is an append-only audit trail.
type SyncJob struct {
	ID               string
	Puuid            string
	JobType          JobType
	Status           JobStatus
	MatchesProcessed int
	ErrorMessage     string
	CreatedAt        time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// SyncStatus is a point-in-time aggregate over all sync jobs.
type SyncStatus struct {
	Pending         int
	Processing      int
	Completed       int
	Failed          int
	LastCompletedAt *time.Time
}
