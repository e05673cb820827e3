package components

import (
	"event-quote-sim/internal/handler"
	"event-quote-sim/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVenueHandler,
		api.NewQuoteRequestHandler,
		api.NewQuoteHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(v *api.VenueHandler, qr *api.QuoteRequestHandler, q *api.QuoteHandler) handler.Handlers {
	return handler.Handlers{Venue: v, QuoteRequest: qr, Quote: q}
}
