package repository

import (
	"context"

	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/infra/converter"
	"event-quote-sim/internal/infra/db"
)

type VenueWriteQueries interface {
	GetVenueByID(ctx context.Context, id string) (db.VenueRow, error)
}

type VenueRepository struct {
	queries VenueWriteQueries
}

func NewVenueRepository(queries *db.Catalog) *VenueRepository {
	return &VenueRepository{queries: queries}
}

func (r *VenueRepository) FindByID(ctx context.Context, id string) (*venue.Venue, error) {
	row, err := r.queries.GetVenueByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err, infra.Classify(err))
	}

	v, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert venue row", err)
	}
	return v, nil
}
