package components

import (
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/config"
	"event-quote-sim/internal/usecase/commands"
	"event-quote-sim/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewQuoteRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewQuoteRequestQueries,
		queries.NewQuoteQueries,
	),
)

func NewQuoteRequestCommands(
	venueRepo commands.VenueRepository,
	idempotencyRepo commands.IdempotencyRepository,
	dispatcher commands.QuoteRequestDispatcher,
	clk clock.Clock,
	cfg config.Config,
) commands.QuoteRequestCommands {
	return commands.NewQuoteRequestUseCase(venueRepo, idempotencyRepo, dispatcher, clk, cfg.Idempotency.TTL)
}
