package jobstore

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps jobs in process memory. State is lost on restart, which
// is acceptable for local development: the client never re-polls a job after
// its first successful check.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[string]Job)}
}

func (s *MemoryStore) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; ok {
		return fmt.Errorf("jobstore: job %s already exists", job.ID)
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = StatusQueued
	}
	s.jobs[job.ID] = cloneJob(job)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return cloneJob(job), nil
}

func (s *MemoryStore) SetResult(ctx context.Context, id string, urls []string) error {
	return s.update(ctx, id, func(job *Job) {
		job.Status = StatusDone
		job.URLs = append([]string(nil), urls...)
	})
}

func (s *MemoryStore) SetFailed(ctx context.Context, id string, msg string) error {
	return s.update(ctx, id, func(job *Job) {
		job.Status = StatusFailed
		job.Error = msg
	})
}

func (s *MemoryStore) update(ctx context.Context, id string, mutate func(*Job)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	mutate(&job)
	job.UpdatedAt = time.Now()
	s.jobs[id] = job
	return nil
}

func cloneJob(job Job) Job {
	job.URLs = append([]string(nil), job.URLs...)
	return job
}

var _ Store = (*MemoryStore)(nil)
