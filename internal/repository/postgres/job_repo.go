package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const insertJobQuery = `INSERT INTO jobs (id, title, company, location, salary, type, description, duration, working_period, contact_phone, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.db.Exec(ctx, insertJobQuery, jobArgs(job)...)
	return err
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT id, title, company, location, salary, type, description, duration, working_period, contact_phone, created_at
              FROM jobs ORDER BY created_at DESC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func jobArgs(job *domain.Job) []any {
	return []any{
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Type,
		job.Description, job.Duration, job.WorkingPeriod, job.ContactPhone,
		job.CreatedAt.String(),
	}
}

func scanJob(row pgx.Row) (domain.Job, error) {
	var job domain.Job
	var createdAt string
	if err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Type,
		&job.Description, &job.Duration, &job.WorkingPeriod, &job.ContactPhone, &createdAt,
	); err != nil {
		return job, err
	}
	ts, err := domain.ParseTimestamp(createdAt)
	if err != nil {
		return job, fmt.Errorf("job %s: %w", job.ID, err)
	}
	job.CreatedAt = ts
	return job, nil
}
