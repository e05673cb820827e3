package queries

//go:generate mockgen -source=quote_request.go -destination=../../../tests/mock/queries/quote_request.go -package=queriesmock

import (
	"context"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQuoteRequestNotFound = errs.Mark(errs.New("quote request not found"), errs.ErrNotFound)

type QuoteRequestReadStore interface {
	FindActive(ctx context.Context) ([]*QuoteRequestView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteRequestView, error)
	// Subscribe streams events until ctx is done or the source shuts down,
	// then closes the channel.
	Subscribe(ctx context.Context) (<-chan *QuoteRequestEvent, error)
}

type QuoteRequestQueries interface {
	ListActive(ctx context.Context) ([]*QuoteRequestView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*QuoteRequestView, error)
	Subscribe(ctx context.Context) (<-chan *QuoteRequestEvent, error)
}

type quoteRequestQueriesImpl struct {
	store QuoteRequestReadStore
	clock clock.Clock
}

func NewQuoteRequestQueries(store QuoteRequestReadStore, clk clock.Clock) QuoteRequestQueries {
	return &quoteRequestQueriesImpl{store: store, clock: clk}
}

func (q *quoteRequestQueriesImpl) ListActive(ctx context.Context) ([]*QuoteRequestView, error) {
	return q.store.FindActive(ctx)
}

func (q *quoteRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*QuoteRequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteRequestNotFound
		}
		return nil, err
	}
	return v, nil
}

// Subscribe fills in the banner line on every event, since it depends on the
// whole active set rather than the single request that changed.
func (q *quoteRequestQueriesImpl) Subscribe(ctx context.Context) (<-chan *QuoteRequestEvent, error) {
	src, err := q.store.Subscribe(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan *QuoteRequestEvent, cap(src))
	go func() {
		defer close(out)
		for ev := range src {
			if active, ferr := q.store.FindActive(ctx); ferr == nil {
				ev.Counters.Banner = Banner(active, q.clock.Now())
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				// keep draining so the source can observe cancellation and close
			}
		}
	}()
	return out, nil
}
