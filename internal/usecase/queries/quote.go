package queries

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/queries/quote.go -package=queriesmock

import (
	"context"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

var (
	ErrCompletedQuoteNotFound = errs.Mark(errs.New("completed quote not found"), errs.ErrNotFound)
	ErrInvalidCursor          = errs.New("invalid cursor")
	ErrInvalidComparison      = errs.Mark(errs.New("invalid quote selection"), errs.ErrDomainValidationFailed)
)

type QuoteReadStore interface {
	FindCompletedFirstPage(ctx context.Context, limit int) ([]*CompletedQuoteView, error)
	FindCompletedKeyset(ctx context.Context, after ulid.ULID, limit int) ([]*CompletedQuoteView, error)
	FindComparable(ctx context.Context, ids []string) ([]quote.ComparableQuote, error)
	GetCounters(ctx context.Context) (*CountersView, error)
}

// CompareInput mixes quotes sent by the caller with completed quotes referenced
// by id. Referenced quotes are appended after the inline ones.
type CompareInput struct {
	Quotes            []quote.ComparableQuote
	CompletedQuoteIDs []string
}

type QuoteQueries interface {
	ListCompleted(ctx context.Context, cursor *Cursor, limit int) ([]*CompletedQuoteView, *Cursor, error)
	Counters(ctx context.Context) (*CountersView, error)
	Compare(ctx context.Context, in CompareInput) (*ComparisonView, error)
}

type quoteQueriesImpl struct {
	store    QuoteReadStore
	requests QuoteRequestReadStore
	clock    clock.Clock
}

func NewQuoteQueries(store QuoteReadStore, requests QuoteRequestReadStore, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{store: store, requests: requests, clock: clk}
}

func (q *quoteQueriesImpl) ListCompleted(ctx context.Context, cursor *Cursor, limit int) ([]*CompletedQuoteView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*CompletedQuoteView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindCompletedFirstPage(ctx, limit+1)
	} else {
		after, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindCompletedKeyset(ctx, after, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		id, perr := ulid.ParseStrict(last.ID)
		if perr != nil {
			return nil, nil, errs.Wrap(perr, "completed quote id")
		}
		next = &Cursor{After: EncodeAfterCursor(id)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *quoteQueriesImpl) Counters(ctx context.Context) (*CountersView, error) {
	counters, err := q.store.GetCounters(ctx)
	if err != nil {
		return nil, err
	}
	active, err := q.requests.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	counters.Banner = Banner(active, q.clock.Now())
	return counters, nil
}

func (q *quoteQueriesImpl) Compare(ctx context.Context, in CompareInput) (*ComparisonView, error) {
	selection := append([]quote.ComparableQuote(nil), in.Quotes...)
	if len(in.CompletedQuoteIDs) > 0 {
		completed, err := q.store.FindComparable(ctx, in.CompletedQuoteIDs)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrCompletedQuoteNotFound)
			}
			return nil, err
		}
		selection = append(selection, completed...)
	}

	if err := quote.ValidateSelection(selection); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "compare quotes"), ErrInvalidComparison)
	}

	ids := make([]string, len(selection))
	for i, s := range selection {
		ids[i] = s.ID
	}
	return &ComparisonView{
		QuoteIDs:           ids,
		Summary:            quote.Summary(selection),
		SuggestedQuestions: quote.SuggestedQuestions(selection),
	}, nil
}
