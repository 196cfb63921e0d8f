package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type bootstrapUsecase struct {
	schemaRepo domain.SchemaRepository
	seed       func() []domain.Job
	logger     *slog.Logger

	done atomic.Bool
	mu   sync.Mutex
}

// NewBootstrapUsecase returns a usecase that migrates and seeds the store on
// first use. After one success further calls return immediately; a failure
// is retried by the next call.
func NewBootstrapUsecase(schemaRepo domain.SchemaRepository, seed func() []domain.Job, logger *slog.Logger) domain.BootstrapUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &bootstrapUsecase{schemaRepo: schemaRepo, seed: seed, logger: logger}
}

func (u *bootstrapUsecase) Ensure(ctx context.Context) error {
	if u.done.Load() {
		return nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.done.Load() {
		return nil
	}

	seeded, err := u.schemaRepo.Migrate(ctx, u.seed())
	if err != nil {
		u.logger.ErrorContext(ctx, "Bootstrap failed", "request_id", domain.RequestIDFrom(ctx), "error", err)
		return apperror.Internal(err)
	}
	if seeded {
		u.logger.Info("Seeded jobs table")
	}
	u.done.Store(true)
	return nil
}
