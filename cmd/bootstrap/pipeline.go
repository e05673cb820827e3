package bootstrap

import (
	"context"
	"log/slog"

	"event-quote-sim/internal/infra/readstore"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/config"
	"event-quote-sim/internal/pkg/random"
	"event-quote-sim/internal/usecase/commands"
	"event-quote-sim/internal/usecase/pipeline"

	"go.uber.org/fx"
)

var PipelineModule = fx.Module("pipeline",
	fx.Provide(
		clock.NewRealScheduler,
		func(s clock.Scheduler) clock.Clock { return s },
		NewRandomSource,
		fx.Annotate(
			NewPipeline,
			fx.As(fx.Self()),
			fx.As(new(commands.QuoteRequestDispatcher)),
			fx.As(new(readstore.PipelineSource)),
		),
	),
)

func NewRandomSource(cfg config.Config) random.Source {
	if cfg.Pipeline.RandomSeed == 0 {
		return random.NewTimeSeeded()
	}
	return random.NewSeeded(cfg.Pipeline.RandomSeed)
}

// NewPipeline closes the pipeline on stop so pending timers are cancelled and
// event subscribers see their channel close.
func NewPipeline(lc fx.Lifecycle, cfg config.Config, sched clock.Scheduler, rnd random.Source, logger *slog.Logger) (*pipeline.Pipeline, error) {
	p, err := pipeline.New(cfg.Pipeline, sched, rnd, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			p.Close()
			return nil
		},
	})

	return p, nil
}
