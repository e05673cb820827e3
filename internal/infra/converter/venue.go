package converter

import (
	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/infra/db"
	"event-quote-sim/internal/usecase/queries"
)

func VenueFromRow(row db.VenueRow) (*venue.Venue, error) {
	return venue.NewVenue(venue.Attributes{
		ID:             row.ID,
		Name:           row.Name,
		Location:       row.Location,
		ImageURL:       row.ImageURL,
		EstimatedTotal: row.EstimatedTotal,
		Participants:   row.Participants,
		Currency:       row.Currency,
		Rating:         row.Rating,
	})
}

func VenueToView(v *venue.Venue) *queries.VenueView {
	return &queries.VenueView{
		ID:             v.ID(),
		Name:           v.Name(),
		Location:       v.Location(),
		ImageURL:       v.ImageURL(),
		EstimatedTotal: v.EstimatedTotal(),
		Participants:   v.Participants(),
		PerPerson:      v.PerPersonPrice(),
		Currency:       v.Currency(),
		Rating:         v.Rating(),
		HasPricing:     v.HasPricing(),
	}
}
