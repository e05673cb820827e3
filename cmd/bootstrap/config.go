package bootstrap

import (
	"log/slog"

	"event-quote-sim/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

func logConfig(cfg config.Config, logger *slog.Logger) {
	p := cfg.Pipeline
	logger.Info("configuration loaded",
		"env", cfg.Env,
		"failure_probability", p.FailureProbability,
		"typewriter_interval", p.TypewriterInterval,
		"auto_dismiss_ready", p.AutoDismissReady,
		"remove_failed", p.RemoveFailed,
		"idempotency_ttl", cfg.Idempotency.TTL,
	)
}
