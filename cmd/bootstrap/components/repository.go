package components

import (
	"context"
	"log/slog"
	"time"

	"event-quote-sim/internal/infra/repository"
	"event-quote-sim/internal/pkg/config"

	"go.uber.org/fx"
)

// startIdempotencySweeper drops expired idempotency keys on a fixed interval
// for as long as the app runs.
func startIdempotencySweeper(lc fx.Lifecycle, repo *repository.IdempotencyRepository, cfg config.Config, logger *slog.Logger) {
	interval := cfg.Idempotency.SweepInterval
	if interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := repo.DeleteExpired(ctx)
						if err != nil {
							logger.Warn("idempotency sweep failed", "error", err)
							continue
						}
						if n > 0 {
							logger.Debug("expired idempotency keys removed", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
