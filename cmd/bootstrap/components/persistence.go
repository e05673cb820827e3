package components

import (
	"event-quote-sim/internal/infra/db"
	"event-quote-sim/internal/infra/readstore"
	"event-quote-sim/internal/infra/repository"
	"event-quote-sim/internal/pkg/config"
	"event-quote-sim/internal/usecase/commands"
	"event-quote-sim/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Venue
		fx.Annotate(
			NewCatalogQueries,
			fx.As(new(readstore.VenueReadQueries)),
		),
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
		),
		// Quote request
		fx.Annotate(
			NewQuoteRequestReadStore,
			fx.As(new(queries.QuoteRequestReadStore)),
		),
		// Completed quote
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Venue
		fx.Annotate(
			repository.NewVenueRepository,
			fx.As(new(commands.VenueRepository)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(fx.Self()),
			fx.As(new(commands.IdempotencyRepository)),
		),
	),
	fx.Invoke(startIdempotencySweeper),
)

func NewQuoteRequestReadStore(src readstore.PipelineSource, cfg config.Config) *readstore.QuoteRequestReadStore {
	return readstore.NewQuoteRequestReadStore(src, cfg.Pipeline.EventBuffer)
}

func NewCatalogQueries(c *db.Catalog) *db.Catalog {
	return c
}
