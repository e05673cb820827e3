package queries

//go:generate mockgen -source=venue.go -destination=../../../tests/mock/queries/venue.go -package=queriesmock

import (
	"context"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/errs"
)

var ErrVenueNotFound = errs.Mark(errs.New("venue not found"), errs.ErrNotFound)

type VenueReadStore interface {
	FindAll(ctx context.Context) ([]*VenueView, error)
	FindByID(ctx context.Context, id string) (*VenueView, error)
}

type VenueQueries interface {
	List(ctx context.Context) ([]*VenueView, error)
	GetByID(ctx context.Context, id string) (*VenueView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) List(ctx context.Context) ([]*VenueView, error) {
	return q.store.FindAll(ctx)
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id string) (*VenueView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}
