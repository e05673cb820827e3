package readstore

import (
	"context"
	"errors"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/domain/quoterequest"
	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/infra/converter"
	"event-quote-sim/internal/usecase/pipeline"
	"event-quote-sim/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	errRequestNotActive = errors.New("quote request is not active")
	errQuoteNotRecorded = errors.New("no completed quote with this id")
)

// PipelineSource is the read side of the quote pipeline.
type PipelineSource interface {
	Active() []*quoterequest.QuoteRequest
	Get(id uuid.UUID) (*quoterequest.QuoteRequest, bool)
	Completed() []*quote.CompletedQuote
	Counters() pipeline.Counters
	Subscribe(buffer int) (<-chan pipeline.Event, func())
}

type QuoteRequestReadStore struct {
	src    PipelineSource
	buffer int
}

func NewQuoteRequestReadStore(src PipelineSource, buffer int) *QuoteRequestReadStore {
	return &QuoteRequestReadStore{src: src, buffer: buffer}
}

func (r *QuoteRequestReadStore) FindActive(ctx context.Context) ([]*queries.QuoteRequestView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active quote requests", err, infra.KindCanceled)
	}
	active := r.src.Active()
	result := make([]*queries.QuoteRequestView, len(active))
	for i, req := range active {
		result[i] = converter.QuoteRequestToView(req)
	}
	return result, nil
}

func (r *QuoteRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteRequestView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find quote request", err, infra.KindCanceled)
	}
	req, ok := r.src.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr("quote request not found", errRequestNotActive, infra.KindNotFound)
	}
	return converter.QuoteRequestToView(req), nil
}

func (r *QuoteRequestReadStore) Subscribe(ctx context.Context) (<-chan *queries.QuoteRequestEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to subscribe to quote requests", err, infra.KindCanceled)
	}
	events, cancel := r.src.Subscribe(r.buffer)
	out := make(chan *queries.QuoteRequestEvent, r.buffer)

	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case out <- converter.EventToView(ev):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

type QuoteReadStore struct {
	src PipelineSource
}

func NewQuoteReadStore(src PipelineSource) *QuoteReadStore {
	return &QuoteReadStore{src: src}
}

func (r *QuoteReadStore) FindCompletedFirstPage(ctx context.Context, limit int) ([]*queries.CompletedQuoteView, error) {
	return r.findCompleted(ctx, nil, limit)
}

func (r *QuoteReadStore) FindCompletedKeyset(ctx context.Context, after ulid.ULID, limit int) ([]*queries.CompletedQuoteView, error) {
	return r.findCompleted(ctx, &after, limit)
}

// Completed quotes are appended in id order, so the keyset is a suffix.
func (r *QuoteReadStore) findCompleted(ctx context.Context, after *ulid.ULID, limit int) ([]*queries.CompletedQuoteView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list completed quotes", err, infra.KindCanceled)
	}
	result := make([]*queries.CompletedQuoteView, 0, limit)
	for _, q := range r.src.Completed() {
		if after != nil && q.ID().Compare(*after) <= 0 {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, converter.CompletedQuoteToView(q))
	}
	return result, nil
}

func (r *QuoteReadStore) FindComparable(ctx context.Context, ids []string) ([]quote.ComparableQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load quotes for comparison", err, infra.KindCanceled)
	}
	byID := make(map[string]*quote.CompletedQuote)
	for _, q := range r.src.Completed() {
		byID[q.ID().String()] = q
	}

	result := make([]quote.ComparableQuote, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, infra.WrapRepoErr("completed quote "+id+" not found", errQuoteNotRecorded, infra.KindNotFound)
		}
		result = append(result, q.Comparable())
	}
	return result, nil
}

func (r *QuoteReadStore) GetCounters(ctx context.Context) (*queries.CountersView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read counters", err, infra.KindCanceled)
	}
	return converter.CountersToView(r.src.Counters()), nil
}
