package usecase

import (
	"context"
	"time"
)

// HealthCheck pings one dependency; a nil error means healthy
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]HealthCheck
}

// NewHealthUsecase reports on the optional dependencies that are wired in.
// Only registered checks show up in the report.
func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check runs every ping with a short deadline. The bool is false when any
// ping failed; the site itself keeps serving pages either way.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := map[string]string{"status": "ok"}
	healthy := true
	for name, check := range u.checks {
		if err := check(ctx); err != nil {
			report[name] = "unavailable"
			healthy = false
			continue
		}
		report[name] = "ok"
	}
	if !healthy {
		report["status"] = "degraded"
	}
	return report, healthy
}
