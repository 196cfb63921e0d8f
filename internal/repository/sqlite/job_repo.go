// Package sqlite stores jobs and messages in an embedded SQLite database,
// for single-node deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go-jobboard-backend/internal/domain"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type jobRepo struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

const insertJobQuery = `INSERT INTO jobs (id, title, company, location, salary, type, description, duration, working_period, contact_phone, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	return insertJob(ctx, r.db, insertJobQuery, job)
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, company, location, salary, type, description, duration, working_period, contact_phone, created_at
		FROM jobs ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		var workingPeriod, contactPhone sql.NullString
		var createdAt string
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Type,
			&job.Description, &job.Duration, &workingPeriod, &contactPhone, &createdAt); err != nil {
			return nil, err
		}
		job.WorkingPeriod = nullable(workingPeriod)
		job.ContactPhone = nullable(contactPhone)
		if job.CreatedAt, err = domain.ParseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("job %s: %w", job.ID, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func insertJob(ctx context.Context, db execer, query string, job *domain.Job) error {
	_, err := db.ExecContext(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Type,
		job.Description, job.Duration, job.WorkingPeriod, job.ContactPhone,
		job.CreatedAt.String(),
	)
	return err
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
