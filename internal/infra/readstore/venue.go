package readstore

import (
	"context"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/infra/converter"
	"event-quote-sim/internal/infra/db"
	"event-quote-sim/internal/usecase/queries"
)

type VenueReadQueries interface {
	GetAllVenues(ctx context.Context) ([]db.VenueRow, error)
	GetVenueByID(ctx context.Context, id string) (db.VenueRow, error)
}

type VenueReadStore struct {
	queries VenueReadQueries
}

func NewVenueReadStore(queries VenueReadQueries) *VenueReadStore {
	return &VenueReadStore{
		queries: queries,
	}
}

func (r *VenueReadStore) FindAll(ctx context.Context) ([]*queries.VenueView, error) {
	rows, err := r.queries.GetAllVenues(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all venues", err, infra.Classify(err))
	}

	result := make([]*queries.VenueView, 0, len(rows))
	for _, row := range rows {
		v, cerr := converter.VenueFromRow(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid venue row "+row.ID, cerr)
		}
		result = append(result, converter.VenueToView(v))
	}

	return result, nil
}

func (r *VenueReadStore) FindByID(ctx context.Context, id string) (*queries.VenueView, error) {
	row, err := r.queries.GetVenueByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err, infra.Classify(err))
	}

	v, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid venue row "+row.ID, err)
	}
	return converter.VenueToView(v), nil
}
