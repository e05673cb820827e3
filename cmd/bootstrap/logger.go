package bootstrap

import (
	"log/slog"

	"event-quote-sim/internal/handler/middleware"
	"event-quote-sim/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewSlogLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
