package jobstore

import (
	"context"
	"errors"
	"time"
)

// Status enumerates job lifecycle states on the service side.
type Status string

const (
	StatusQueued Status = "queued"
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)

// Job tracks one generation request from submission to rendered result.
type Job struct {
	ID        string
	Prompt    string
	Status    Status
	URLs      []string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrNotFound is returned when a job id is unknown.
var ErrNotFound = errors.New("jobstore: job not found")

// Store persists jobs. The memory implementation backs standalone runs;
// the Postgres implementation is used when DATABASE_URL is configured.
type Store interface {
	Create(ctx context.Context, job Job) error
	Get(ctx context.Context, id string) (Job, error)
	SetResult(ctx context.Context, id string, urls []string) error
	SetFailed(ctx context.Context, id string, msg string) error
}
