// Package hybrid implements the client-side job repository that switches
// between the in-memory mock list and the remote API.
package hybrid

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/nanoid"
)

type RemoteJobs interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.CreateResult, error)
}

type Publisher interface {
	Publish(event string, payload any) int
}

type Options struct {
	Mode   domain.ModeSource
	Remote RemoteJobs
	Store  *memory.JobStore
	Bus    Publisher
	// FallbackOnCreate stores the job locally when the API cannot be reached.
	// Such writes are not durable.
	FallbackOnCreate bool
	Logger           *slog.Logger
	Now              func() time.Time
	NewID            func() string
}

// Created is the outcome of CreateJob. Durable is false when the job only
// exists in the local store.
type Created struct {
	Job     domain.Job
	Durable bool
}

type JobRepository struct {
	mode             domain.ModeSource
	remote           RemoteJobs
	store            *memory.JobStore
	bus              Publisher
	fallbackOnCreate bool
	logger           *slog.Logger
	now              func() time.Time
	newID            func() string
}

func NewJobRepository(opts Options) *JobRepository {
	r := &JobRepository{
		mode:             opts.Mode,
		remote:           opts.Remote,
		store:            opts.Store,
		bus:              opts.Bus,
		fallbackOnCreate: opts.FallbackOnCreate,
		logger:           opts.Logger,
		now:              opts.Now,
		newID:            opts.NewID,
	}
	if r.mode == nil {
		r.mode = domain.FixedMode(domain.DefaultMode)
	}
	if r.store == nil {
		r.store = memory.NewJobStore(nil)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = func() string { return nanoid.Lower(13) }
	}
	return r
}

// GetJobs never surfaces a transport failure: in api mode an unreachable or
// failing API yields the local list, and only a log line tells them apart.
func (r *JobRepository) GetJobs(ctx context.Context) ([]domain.Job, error) {
	if r.mode.Mode(ctx) != domain.ModeAPI || r.remote == nil {
		return r.store.List(), nil
	}

	jobs, err := r.remote.ListJobs(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn("Failed to fetch jobs from API, falling back to local mock data", "error", err)
		return r.store.List(), nil
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// CreateJob expects a validated draft.
func (r *JobRepository) CreateJob(ctx context.Context, draft domain.JobDraft) (*Created, error) {
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = domain.NewTimestamp(r.now())
	}

	if r.mode.Mode(ctx) != domain.ModeAPI || r.remote == nil {
		return r.createLocal(draft), nil
	}

	result, err := r.remote.CreateJob(ctx, draft)
	if err != nil {
		if r.fallbackOnCreate && isUnreachable(err) {
			r.logger.Error("Failed to create job via API, using local mock creation", "error", err)
			return r.createLocal(draft), nil
		}
		return nil, err
	}

	createdAt := draft.CreatedAt
	if !result.CreatedAt.IsZero() {
		createdAt = result.CreatedAt
	}
	job := draft.Job(result.ID, createdAt)
	r.publish(job)
	return &Created{Job: job, Durable: true}, nil
}

func (r *JobRepository) createLocal(draft domain.JobDraft) *Created {
	job := draft.Job(r.newID(), draft.CreatedAt)
	r.store.Prepend(job)
	r.publish(job)
	return &Created{Job: job, Durable: false}
}

func (r *JobRepository) publish(job domain.Job) {
	if r.bus != nil {
		r.bus.Publish(domain.EventJobPosted, job)
	}
}

// isUnreachable is true for network failures and 5xx responses; a 4xx is the
// API rejecting the job and is never masked.
func isUnreachable(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindTransport {
		return false
	}
	return appErr.Code == 0 || appErr.Code >= 500
}
