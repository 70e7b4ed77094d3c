package system_healthcheck

import (
	"context"
	"fmt"
	"time"

	"workhub/internal/storage"
)

type HealthcheckService struct{}

// CheckHealth pings the database with a short deadline so a stalled
// connection pool turns into an unhealthy response instead of a hang.
func (s *HealthcheckService) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	db, err := storage.GetDb().DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
