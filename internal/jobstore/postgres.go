package jobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skygen/internal/sqlinline"
)

// PostgresStore persists jobs in Postgres so a skygend deployment can run
// more than one instance behind a load balancer.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, job Job) error {
	status := job.Status
	if status == "" {
		status = StatusQueued
	}
	if _, err := s.pool.Exec(ctx, sqlinline.QInsertJob, job.ID, job.Prompt, string(status)); err != nil {
		return fmt.Errorf("jobstore: insert job: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Job, error) {
	row := s.pool.QueryRow(ctx, sqlinline.QSelectJob, id)
	var job Job
	var status string
	if err := row.Scan(&job.ID, &job.Prompt, &status, &job.URLs, &job.Error, &job.CreatedAt, &job.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, fmt.Errorf("jobstore: select job: %w", err)
	}
	job.Status = Status(status)
	return job, nil
}

func (s *PostgresStore) SetResult(ctx context.Context, id string, urls []string) error {
	tag, err := s.pool.Exec(ctx, sqlinline.QMarkJobDone, id, urls)
	if err != nil {
		return fmt.Errorf("jobstore: mark done: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetFailed(ctx context.Context, id string, msg string) error {
	tag, err := s.pool.Exec(ctx, sqlinline.QMarkJobFailed, id, msg)
	if err != nil {
		return fmt.Errorf("jobstore: mark failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
