package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/nanoid"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

func NewJobUsecase(jobRepo domain.JobRepository, logger *slog.Logger) domain.JobUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validation.New(),
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return nanoid.Lower() },
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, draft *domain.JobDraft) (*domain.Job, error) {
	if err := u.validate.Struct(draft); err != nil {
		if field, ok := validation.FirstMissingField(err); ok {
			return nil, apperror.Validation("Missing required field: " + field)
		}
		return nil, apperror.Validation(validation.FormatValidationErrors(err)[0])
	}

	createdAt := draft.CreatedAt
	if createdAt.IsZero() {
		createdAt = domain.NewTimestamp(u.now())
	}
	job := draft.Job(u.newID(), createdAt)

	if err := u.jobRepo.Create(ctx, &job); err != nil {
		u.logger.ErrorContext(ctx, "Failed to store job", "request_id", domain.RequestIDFrom(ctx), "error", err)
		return nil, apperror.Internal(err)
	}
	return &job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		u.logger.ErrorContext(ctx, "Failed to fetch jobs", "request_id", domain.RequestIDFrom(ctx), "error", err)
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
