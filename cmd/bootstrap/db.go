package bootstrap

import (
	"context"
	"log/slog"

	"event-quote-sim/internal/infra/db"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB loads the venue catalog. It is read-only, so there is nothing to
// release on stop.
func NewDB(lc fx.Lifecycle, logger *slog.Logger) *db.Catalog {
	catalog := db.NewSeededCatalog()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			rows, err := catalog.GetAllVenues(ctx)
			if err != nil {
				return err
			}
			logger.Info("venue catalog loaded", "venues", len(rows))
			return nil
		},
	})

	return catalog
}
