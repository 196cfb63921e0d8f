package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// Pinger is a dependency whose liveness is reported by /health.
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	checks map[string]Pinger
}

func NewHealthUsecase(checks map[string]Pinger) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	result := map[string]string{"status": "ok"}
	healthy := true
	for name, ping := range u.checks {
		if err := ping(ctx); err != nil {
			result[name] = "down"
			healthy = false
			continue
		}
		result[name] = "up"
	}
	if !healthy {
		result["status"] = "degraded"
	}
	return result, healthy
}
